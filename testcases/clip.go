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

package testcases

var clipCases = []TestCase{
	{
		Name:   "crossing_horizontal",
		Width:  200,
		Height: 200,
		Op: Clip{
			Window:   [4]float64{-50, -50, 50, 50},
			Segments: [][4]float64{{-100, 0, 100, 0}},
		},
	},
	{
		Name:   "fully_outside",
		Width:  200,
		Height: 200,
		Op: Clip{
			Window:   [4]float64{-50, -50, 50, 50},
			Segments: [][4]float64{{60, 60, 70, 70}},
		},
	},
	{
		Name:   "fully_inside",
		Width:  200,
		Height: 200,
		Op: Clip{
			Window:   [4]float64{-50, -50, 50, 50},
			Segments: [][4]float64{{-20, -10, 30, 40}},
		},
	},
	{
		Name:   "diagonal_through",
		Width:  200,
		Height: 200,
		Op: Clip{
			Window:   [4]float64{-50, -50, 50, 50},
			Segments: [][4]float64{{-80, -60, 80, 60}},
		},
	},
	{
		Name:   "on_edge",
		Width:  200,
		Height: 200,
		Op: Clip{
			Window:   [4]float64{-50, -50, 50, 50},
			Segments: [][4]float64{{-50, -20, -50, 20}},
		},
	},
	{
		Name:   "parallel_outside",
		Width:  200,
		Height: 200,
		Op: Clip{
			Window:   [4]float64{-50, -50, 50, 50},
			Segments: [][4]float64{{-100, 60, 100, 60}},
		},
	},
	{
		Name:   "degenerate_inside",
		Width:  200,
		Height: 200,
		Op: Clip{
			Window:   [4]float64{0, 0, 100, 100},
			Segments: [][4]float64{{10, 10, 10, 10}},
		},
	},
	{
		Name:   "degenerate_outside",
		Width:  200,
		Height: 200,
		Op: Clip{
			Window:   [4]float64{0, 0, 100, 100},
			Segments: [][4]float64{{-10, 50, -10, 50}},
		},
	},
	{
		Name:   "batch_mixed",
		Width:  200,
		Height: 200,
		Op: Clip{
			Window: [4]float64{-50, -50, 50, 50},
			Segments: [][4]float64{
				{-100, 0, 100, 0},
				{60, 60, 70, 70},
				{-20, -10, 30, 40},
				{0, -100, 0, 100},
				{-70, 55, 70, 55},
			},
		},
	},
}
