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

// Package raster implements a small computational-geometry kernel for 2D
// rasterization and clipping: Bresenham line stepping, midpoint-circle disk
// filling, disk-stamped thick lines, and Liang-Barsky segment clipping
// against axis-aligned rectangles.
//
// All operations are pure functions of their explicit inputs. Results are
// delivered to caller-supplied sinks (a pixel callback or a row-span
// callback) or returned as caller-owned slices, so the kernel carries no
// state between calls, has no dependency on any particular rendering
// backend, and is safe to use from multiple goroutines.
package raster
