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

// Package testcases defines the shared inputs exercised by the kernel
// tests, the benchmark suite, and the reference generators.
package testcases

// TestCase defines a single kernel operation.
type TestCase struct {
	Name   string    // lowercase a-z, 0-9 and _ only
	Width  int       // canvas width in pixels
	Height int       // canvas height in pixels
	Op     Operation // which kernel function to run, with its arguments
}

// Operation is the kernel operation to apply.
type Operation interface {
	isOperation()
}

// DrawLine rasterises a single Bresenham line.
type DrawLine struct {
	X0, Y0, X1, Y1 int
}

func (DrawLine) isOperation() {}

// FillDisk rasterises a solid disk clipped to the canvas.
type FillDisk struct {
	CX, CY, R int
}

func (FillDisk) isOperation() {}

// ThickLine rasterises a disk-stamped line of the given width.
type ThickLine struct {
	X0, Y0, X1, Y1 int
	LineWidth      int
}

func (ThickLine) isOperation() {}

// Clip clips a batch of segments against an axis-aligned window.
// Coordinates are real-valued; the canvas size of the surrounding
// TestCase is used only by the reference generators for page sizing.
type Clip struct {
	Window   [4]float64   // xmin, ymin, xmax, ymax (normalised)
	Segments [][4]float64 // x0, y0, x1, y1 per segment
}

func (Clip) isOperation() {}
