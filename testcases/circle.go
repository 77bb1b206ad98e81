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

var circleCases = []TestCase{
	{
		Name:   "radius_zero",
		Width:  64,
		Height: 64,
		Op:     FillDisk{CX: 32, CY: 32, R: 0},
	},
	{
		Name:   "radius_zero_outside",
		Width:  64,
		Height: 64,
		Op:     FillDisk{CX: -5, CY: 70, R: 0},
	},
	{
		Name:   "radius_one",
		Width:  64,
		Height: 64,
		Op:     FillDisk{CX: 32, CY: 32, R: 1},
	},
	{
		Name:   "small",
		Width:  64,
		Height: 64,
		Op:     FillDisk{CX: 32, CY: 32, R: 5},
	},
	{
		Name:   "large",
		Width:  64,
		Height: 64,
		Op:     FillDisk{CX: 32, CY: 32, R: 25},
	},
	{
		Name:   "clipped_left",
		Width:  64,
		Height: 64,
		Op:     FillDisk{CX: 2, CY: 32, R: 10},
	},
	{
		Name:   "clipped_corner",
		Width:  64,
		Height: 64,
		Op:     FillDisk{CX: 60, CY: 60, R: 12},
	},
	{
		Name:   "offscreen",
		Width:  64,
		Height: 64,
		Op:     FillDisk{CX: 200, CY: 200, R: 8},
	},
	{
		Name:   "covers_canvas",
		Width:  32,
		Height: 32,
		Op:     FillDisk{CX: 16, CY: 16, R: 40},
	},
}
