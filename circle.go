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

// FillDisk rasterises a solid disk of radius r centred at (cx, cy),
// clipped to bounds. The boundary is walked with the midpoint circle
// algorithm and the area between symmetric octant points is filled with
// horizontal runs. span receives each run as a row y together with the
// inclusive column range [x0, x1].
//
// A row outside bounds is skipped entirely; the column range of a
// surviving row is clamped to bounds. Out-of-canvas geometry is dropped
// silently, never reported as an error. Runs may overlap near the 45
// degree boundary, so the same pixel can be reported more than once;
// callers that need a strict set must deduplicate.
//
// For r <= 0 only the centre pixel is emitted, and only if it lies
// within bounds.
func FillDisk(cx, cy, r int, bounds image.Rectangle, span func(y, x0, x1 int)) {
	if r <= 0 {
		if (image.Point{X: cx, Y: cy}).In(bounds) {
			span(cy, cx, cx)
		}
		return
	}

	x := r
	y := 0
	d := 1 - r

	for x >= y {
		// Rows cy±y span the octant pair (±x, y), rows cy±x span
		// (±y, x). The y != 0, x != y and x != 0 guards avoid emitting
		// the same row twice on the symmetry axes.
		clipSpan(cy+y, cx-x, cx+x, bounds, span)
		if y != 0 {
			clipSpan(cy-y, cx-x, cx+x, bounds, span)
		}
		if x != y {
			clipSpan(cy+x, cx-y, cx+y, bounds, span)
			if x != 0 {
				clipSpan(cy-x, cx-y, cx+y, bounds, span)
			}
		}

		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// clipSpan clamps the run [x0, x1] at row y to bounds and forwards the
// surviving part to span. Rows outside bounds and runs that clamp to
// nothing are dropped.
func clipSpan(y, x0, x1 int, bounds image.Rectangle, span func(y, x0, x1 int)) {
	if y < bounds.Min.Y || y >= bounds.Max.Y {
		return
	}
	x0 = max(x0, bounds.Min.X)
	x1 = min(x1, bounds.Max.X-1)
	if x0 > x1 {
		return
	}
	span(y, x0, x1)
}

// DiskPoints returns the pixels of the disk as a flat list. The list may
// contain duplicates where the generating runs overlap; see FillDisk.
// The slice is freshly allocated and owned by the caller.
func DiskPoints(cx, cy, r int, bounds image.Rectangle) []image.Point {
	var pts []image.Point
	FillDisk(cx, cy, r, bounds, func(y, x0, x1 int) {
		for x := x0; x <= x1; x++ {
			pts = append(pts, image.Point{X: x, Y: y})
		}
	})
	return pts
}
