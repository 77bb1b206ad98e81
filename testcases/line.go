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

var lineCases = []TestCase{
	{
		Name:   "point",
		Width:  64,
		Height: 64,
		Op:     DrawLine{X0: 5, Y0: 5, X1: 5, Y1: 5},
	},
	{
		Name:   "horizontal",
		Width:  64,
		Height: 64,
		Op:     DrawLine{X0: 4, Y0: 32, X1: 59, Y1: 32},
	},
	{
		Name:   "horizontal_reversed",
		Width:  64,
		Height: 64,
		Op:     DrawLine{X0: 59, Y0: 32, X1: 4, Y1: 32},
	},
	{
		Name:   "vertical",
		Width:  64,
		Height: 64,
		Op:     DrawLine{X0: 32, Y0: 4, X1: 32, Y1: 59},
	},
	{
		Name:   "diagonal",
		Width:  64,
		Height: 64,
		Op:     DrawLine{X0: 4, Y0: 4, X1: 59, Y1: 59},
	},
	{
		Name:   "shallow",
		Width:  64,
		Height: 64,
		Op:     DrawLine{X0: 0, Y0: 0, X1: 4, Y1: 2},
	},
	{
		Name:   "shallow_long",
		Width:  64,
		Height: 64,
		Op:     DrawLine{X0: 2, Y0: 10, X1: 61, Y1: 27},
	},
	{
		Name:   "steep",
		Width:  64,
		Height: 64,
		Op:     DrawLine{X0: 10, Y0: 2, X1: 27, Y1: 61},
	},
	{
		Name:   "steep_down",
		Width:  64,
		Height: 64,
		Op:     DrawLine{X0: 27, Y0: 61, X1: 10, Y1: 2},
	},
	{
		Name:   "negative_slope",
		Width:  64,
		Height: 64,
		Op:     DrawLine{X0: 5, Y0: 50, X1: 55, Y1: 12},
	},
	{
		Name:   "negative_coords",
		Width:  64,
		Height: 64,
		Op:     DrawLine{X0: -10, Y0: -3, X1: 20, Y1: 9},
	},
}
