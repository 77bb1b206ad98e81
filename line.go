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

// Line rasterises the straight line from (x0, y0) to (x1, y1) using
// Bresenham's algorithm and passes every pixel to plot. Pixels are
// delivered in traversal order, starting at (x0, y0) and ending at
// (x1, y1). After the initial setup only integer additions and
// subtractions are used; the stepping loop contains no division.
//
// The output is 8-connected and its length is always
// max(|x1-x0|, |y1-y0|) + 1.
func Line(x0, y0, x1, y1 int, plot func(x, y int)) {
	if x0 == x1 && y0 == y1 {
		plot(x0, y0)
		return
	}

	// Work in an octant where the slope magnitude is <= 1. For steep
	// lines the roles of x and y are swapped here and swapped back at
	// emission time.
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}

	// Normalise to left-to-right stepping. The error term sequence is
	// defined for this orientation only, so a right-to-left input is
	// stepped left-to-right and replayed backwards afterwards.
	reversed := x0 > x1
	if reversed {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := abs(y1 - y0)
	ystep := 1
	if y1 < y0 {
		ystep = -1
	}

	// The accumulator starts at dx/2 and y advances on a strictly
	// negative value. This particular tie-break fixes the exact pixel
	// sequence, not just "a" valid Bresenham path.
	e := dx / 2
	y := y0

	if !reversed {
		for x := x0; x <= x1; x++ {
			if steep {
				plot(y, x)
			} else {
				plot(x, y)
			}
			e -= dy
			if e < 0 {
				y += ystep
				e += dx
			}
		}
		return
	}

	buf := make([]image.Point, 0, dx+1)
	for x := x0; x <= x1; x++ {
		if steep {
			buf = append(buf, image.Point{X: y, Y: x})
		} else {
			buf = append(buf, image.Point{X: x, Y: y})
		}
		e -= dy
		if e < 0 {
			y += ystep
			e += dx
		}
	}
	for i := len(buf) - 1; i >= 0; i-- {
		plot(buf[i].X, buf[i].Y)
	}
}

// LinePoints returns the pixels of the line from (x0, y0) to (x1, y1) in
// traversal order. The slice is freshly allocated and owned by the caller.
func LinePoints(x0, y0, x1, y1 int) []image.Point {
	n := max(abs(x1-x0), abs(y1-y0)) + 1
	pts := make([]image.Point, 0, n)
	Line(x0, y0, x1, y1, func(x, y int) {
		pts = append(pts, image.Point{X: x, Y: y})
	})
	return pts
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
