// Command export writes test case definitions to JSON so that external
// reference implementations can run the same cases.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"github.com/shormi6/Graphics-Assignment/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string       `json:"name"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Op        string       `json:"op"`
	Line      []int        `json:"line,omitempty"`
	Center    []int        `json:"center,omitempty"`
	Radius    int          `json:"radius,omitempty"`
	LineWidth int          `json:"line_width,omitempty"`
	Window    []float64    `json:"window,omitempty"`
	Segments  [][4]float64 `json:"segments,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
	}

	switch op := tc.Op.(type) {
	case testcases.DrawLine:
		jtc.Op = "line"
		jtc.Line = []int{op.X0, op.Y0, op.X1, op.Y1}
	case testcases.FillDisk:
		jtc.Op = "disk"
		jtc.Center = []int{op.CX, op.CY}
		jtc.Radius = op.R
	case testcases.ThickLine:
		jtc.Op = "thick"
		jtc.Line = []int{op.X0, op.Y0, op.X1, op.Y1}
		jtc.LineWidth = op.LineWidth
	case testcases.Clip:
		jtc.Op = "clip"
		jtc.Window = op.Window[:]
		jtc.Segments = op.Segments
	}
	return jtc
}
