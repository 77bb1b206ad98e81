// Graphics-Assignment - a 2D rasterization and clipping kernel
// Copyright (C) 2026  The Graphics-Assignment Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import "image"

// ThickLine rasterises a line of the given width from (x0, y0) to
// (x1, y1), clipped to bounds. The centerline is generated with Line and
// a filled disk of radius width/2 is stamped at every centerline pixel.
// No pixel appears twice in the result; beyond that the order is
// unspecified and consumers must not rely on it.
//
// Stamping costs O(n*r*r) for n centerline pixels: neighbouring disks
// overlap almost entirely and the overlap is only removed by the
// deduplication step. A capsule-outline rasteriser would avoid the
// re-filling, at the price of a considerably more involved kernel.
func ThickLine(x0, y0, x1, y1, width int, bounds image.Rectangle) []image.Point {
	r := max(0, width/2)

	// Dedup by set insertion keyed on coordinate equality. A slice is
	// filled alongside the set so the result does not depend on map
	// iteration order for its contents.
	seen := make(map[image.Point]struct{})
	var pts []image.Point

	Line(x0, y0, x1, y1, func(x, y int) {
		FillDisk(x, y, r, bounds, func(sy, sx0, sx1 int) {
			for sx := sx0; sx <= sx1; sx++ {
				p := image.Point{X: sx, Y: sy}
				if _, dup := seen[p]; dup {
					continue
				}
				seen[p] = struct{}{}
				pts = append(pts, p)
			}
		})
	})

	return pts
}
