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

// Command genpdf generates visual references for the kernel test cases.
// It draws every case into a PDF and renders it to PNG using Ghostscript,
// so the rasterised pixels and clipped segments can be inspected by eye.
package main

import (
	"fmt"
	"image"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	raster "github.com/shormi6/Graphics-Assignment"
	"github.com/shormi6/Graphics-Assignment/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Black background: drawn pixels show up as white-on-black, the
	// same polarity a coverage buffer would have.
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; the kernel's canvas is top-left.
	// Apply a Y-axis flip.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	bounds := image.Rect(0, 0, tc.Width, tc.Height)

	switch op := tc.Op.(type) {
	case testcases.DrawLine:
		page.SetFillColor(color.DeviceGray(1))
		raster.Line(op.X0, op.Y0, op.X1, op.Y1, func(x, y int) {
			page.Rectangle(float64(x), float64(y), 1, 1)
		})
		page.Fill()

	case testcases.FillDisk:
		page.SetFillColor(color.DeviceGray(1))
		raster.FillDisk(op.CX, op.CY, op.R, bounds, func(y, x0, x1 int) {
			page.Rectangle(float64(x0), float64(y), float64(x1-x0+1), 1)
		})
		page.Fill()

	case testcases.ThickLine:
		page.SetFillColor(color.DeviceGray(1))
		for _, p := range raster.ThickLine(op.X0, op.Y0, op.X1, op.Y1, op.LineWidth, bounds) {
			page.Rectangle(float64(p.X), float64(p.Y), 1, 1)
		}
		page.Fill()

	case testcases.Clip:
		// Clip coordinates are centred on the origin; move the origin
		// to the page centre. The window is stroked in mid gray, the
		// input segments in dark gray, the visible parts in white.
		page.Transform(matrix.Matrix{1, 0, 0, 1, float64(tc.Width) / 2, float64(tc.Height) / 2})

		w := raster.NormalizeWindow(op.Window[0], op.Window[1], op.Window[2], op.Window[3])

		page.SetStrokeColor(color.DeviceGray(0.5))
		page.SetLineWidth(1)
		page.Rectangle(w.LLx, w.LLy, w.URx-w.LLx, w.URy-w.LLy)
		page.Stroke()

		segs := make([]raster.Segment, len(op.Segments))
		page.SetStrokeColor(color.DeviceGray(0.33))
		for i, c := range op.Segments {
			segs[i] = raster.Segment{
				A: vec.Vec2{X: c[0], Y: c[1]},
				B: vec.Vec2{X: c[2], Y: c[3]},
			}
			page.MoveTo(c[0], c[1])
			page.LineTo(c[2], c[3])
		}
		page.Stroke()

		page.SetStrokeColor(color.DeviceGray(1))
		page.SetLineWidth(2)
		for _, s := range raster.ClipSegments(segs, w) {
			page.MoveTo(s.A.X, s.A.Y)
			page.LineTo(s.B.X, s.B.Y)
		}
		page.Stroke()

	default:
		return fmt.Errorf("unknown operation %T", tc.Op)
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
