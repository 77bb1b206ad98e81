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
	"slices"
	"testing"
)

func TestLineSinglePixel(t *testing.T) {
	got := LinePoints(5, 5, 5, 5)
	want := []image.Point{{X: 5, Y: 5}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// TestLineExactSequence pins the error-accumulator behaviour: the
// accumulator starts at dx/2 and y advances on a strictly negative value.
// The expected sequences below are wrong for any other tie-break.
func TestLineExactSequence(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           []image.Point
	}{
		{
			name: "shallow",
			x0:   0, y0: 0, x1: 4, y1: 2,
			want: []image.Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}},
		},
		{
			name: "steep",
			x0:   0, y0: 0, x1: 2, y1: 4,
			want: []image.Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}},
		},
		{
			name: "shallow_down",
			x0:   0, y0: 2, x1: 4, y1: 0,
			want: []image.Point{{0, 2}, {1, 2}, {2, 1}, {3, 1}, {4, 0}},
		},
		{
			name: "diagonal",
			x0:   1, y0: 1, x1: 4, y1: 4,
			want: []image.Point{{1, 1}, {2, 2}, {3, 3}, {4, 4}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := LinePoints(test.x0, test.y0, test.x1, test.y1)
			want := test.want
			if test.name == "steep" {
				// same sequence with x and y swapped
				want = make([]image.Point, len(test.want))
				for i, p := range test.want {
					want[i] = image.Point{X: p.Y, Y: p.X}
				}
			}
			if !slices.Equal(got, want) {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

// TestLineTraversalOrder checks that reversing the endpoints reverses the
// traversal but leaves the pixel set unchanged.
func TestLineTraversalOrder(t *testing.T) {
	fwd := LinePoints(3, 7, 40, 21)
	rev := LinePoints(40, 21, 3, 7)

	if len(fwd) != len(rev) {
		t.Fatalf("lengths differ: %d vs %d", len(fwd), len(rev))
	}
	for i := range fwd {
		if fwd[i] != rev[len(rev)-1-i] {
			t.Errorf("pixel %d: forward %v, backward %v", i, fwd[i], rev[len(rev)-1-i])
		}
	}
	if rev[0] != (image.Point{X: 40, Y: 21}) {
		t.Errorf("reversed line starts at %v, want (40,21)", rev[0])
	}
}

func TestLineSinkMatchesPoints(t *testing.T) {
	var got []image.Point
	Line(-4, 9, 13, -2, func(x, y int) {
		got = append(got, image.Point{X: x, Y: y})
	})
	want := LinePoints(-4, 9, 13, -2)
	if !slices.Equal(got, want) {
		t.Errorf("sink emitted %v, want %v", got, want)
	}
}
