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

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Segment is a directed line segment between two real-valued points.
// Zero-length segments (A == B) are legal.
type Segment struct {
	A, B vec.Vec2
}

// ClipSegment intersects s with the axis-aligned window w using the
// Liang-Barsky parametric algorithm. It returns the visible sub-segment
// and true, or the zero Segment and false when s has no intersection
// with the window. The "not visible" outcome is a normal result, not an
// error. The window must satisfy LLx <= URx and LLy <= URy; callers with
// unordered corners normalise first, see NormalizeWindow.
//
// Points exactly on the window boundary count as visible. A zero-length
// segment is returned unchanged iff its single point lies within or on
// the window.
func ClipSegment(s Segment, w rect.Rect) (Segment, bool) {
	dx := s.B.X - s.A.X
	dy := s.B.Y - s.A.Y

	// One half-plane constraint per window edge, in the order left,
	// right, bottom, top.
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{s.A.X - w.LLx, w.URx - s.A.X, s.A.Y - w.LLy, w.URy - s.A.Y}

	u1 := 0.0 // maximum entering parameter
	u2 := 1.0 // minimum leaving parameter

	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				// Parallel to this edge and entirely outside.
				return Segment{}, false
			}
			// Parallel and inside: no restriction from this edge.
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			u1 = max(u1, t) // potential entering bound
		} else {
			u2 = min(u2, t) // potential leaving bound
		}
	}

	if u1 > u2 {
		return Segment{}, false
	}

	return Segment{
		A: vec.Vec2{X: s.A.X + u1*dx, Y: s.A.Y + u1*dy},
		B: vec.Vec2{X: s.A.X + u2*dx, Y: s.A.Y + u2*dy},
	}, true
}

// ClipSegments clips every segment in segs against w and returns the
// visible parts in input order. Segments outside the window are dropped.
// Each call allocates its own result; independent calls may run
// concurrently.
func ClipSegments(segs []Segment, w rect.Rect) []Segment {
	var out []Segment
	for _, s := range segs {
		if c, ok := ClipSegment(s, w); ok {
			out = append(out, c)
		}
	}
	return out
}

// NormalizeWindow builds a clip window from two opposite corners given in
// any order. The clipper itself never reorders window bounds; callers
// apply this before clipping when their input corners are unordered.
func NormalizeWindow(x0, y0, x1, y1 float64) rect.Rect {
	return rect.Rect{
		LLx: min(x0, x1),
		LLy: min(y0, y1),
		URx: max(x0, x1),
		URy: max(y0, y1),
	}
}
