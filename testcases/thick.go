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

var thickCases = []TestCase{
	{
		Name:   "width_one",
		Width:  64,
		Height: 64,
		Op:     ThickLine{X0: 4, Y0: 8, X1: 59, Y1: 24, LineWidth: 1},
	},
	{
		Name:   "width_two",
		Width:  64,
		Height: 64,
		Op:     ThickLine{X0: 4, Y0: 8, X1: 59, Y1: 24, LineWidth: 2},
	},
	{
		Name:   "width_seven",
		Width:  64,
		Height: 64,
		Op:     ThickLine{X0: 6, Y0: 6, X1: 57, Y1: 50, LineWidth: 7},
	},
	{
		Name:   "steep_wide",
		Width:  64,
		Height: 64,
		Op:     ThickLine{X0: 20, Y0: 2, X1: 40, Y1: 61, LineWidth: 9},
	},
	{
		Name:   "point_wide",
		Width:  64,
		Height: 64,
		Op:     ThickLine{X0: 32, Y0: 32, X1: 32, Y1: 32, LineWidth: 11},
	},
	{
		Name:   "clipped",
		Width:  48,
		Height: 48,
		Op:     ThickLine{X0: -8, Y0: 24, X1: 56, Y1: 24, LineWidth: 6},
	},
}
