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
	"image"
	"testing"
)

func TestThickLineNoDuplicates(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 100)

	for _, width := range []int{1, 2, 3, 5, 8, 13} {
		pts := ThickLine(5, 10, 90, 60, width, bounds)
		seen := make(map[image.Point]bool, len(pts))
		for _, p := range pts {
			if seen[p] {
				t.Errorf("width %d: duplicate pixel %v", width, p)
			}
			seen[p] = true
		}
	}
}

// TestThickLineWidthOne checks that width 1 degenerates to the plain
// centerline: the stamp radius is zero, so each centerline pixel stamps
// only itself.
func TestThickLineWidthOne(t *testing.T) {
	bounds := image.Rect(0, 0, 64, 64)

	got := pointSet(ThickLine(3, 4, 50, 20, 1, bounds))
	want := pointSet(LinePoints(3, 4, 50, 20))

	if len(got) != len(want) {
		t.Fatalf("got %d pixels, want %d", len(got), len(want))
	}
	for p := range want {
		if !got[p] {
			t.Errorf("centerline pixel %v missing", p)
		}
	}
}

func TestThickLineCoversCenterline(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 100)

	for _, width := range []int{2, 4, 7} {
		set := pointSet(ThickLine(10, 80, 85, 15, width, bounds))
		for _, c := range LinePoints(10, 80, 85, 15) {
			if !set[c] {
				t.Errorf("width %d: centerline pixel %v missing", width, c)
			}
		}
	}
}

// TestThickLineWidth checks the cross-section: perpendicular to a
// horizontal centerline, the line covers exactly the rows within the
// stamp radius.
func TestThickLineWidth(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 100)

	const y0, width = 50, 9
	r := width / 2
	set := pointSet(ThickLine(20, y0, 80, y0, width, bounds))

	// Away from the rounded ends every row within the radius is filled.
	for dy := -r; dy <= r; dy++ {
		if !set[image.Point{X: 50, Y: y0 + dy}] {
			t.Errorf("row offset %d not covered at mid-line", dy)
		}
	}
	if set[image.Point{X: 50, Y: y0 + r + 1}] || set[image.Point{X: 50, Y: y0 - r - 1}] {
		t.Error("line thicker than requested width")
	}
}

func TestThickLinePoint(t *testing.T) {
	bounds := image.Rect(0, 0, 64, 64)

	// A zero-length centerline stamps a single disk.
	got := pointSet(ThickLine(32, 32, 32, 32, 11, bounds))
	want := pointSet(DiskPoints(32, 32, 5, bounds))

	if len(got) != len(want) {
		t.Fatalf("got %d pixels, want %d", len(got), len(want))
	}
	for p := range want {
		if !got[p] {
			t.Errorf("disk pixel %v missing", p)
		}
	}
}

func TestThickLineClipped(t *testing.T) {
	bounds := image.Rect(0, 0, 32, 32)
	for _, p := range ThickLine(-10, 16, 40, 16, 8, bounds) {
		if !p.In(bounds) {
			t.Errorf("pixel %v outside canvas", p)
		}
	}
}
