// seehuhn.de/go/raster - scan conversion of 2D primitives
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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
		Name:   "dda_shallow",
		Points: pts(4, 10, 60, 30),
		Width:  64,
		Height: 64,
		Op:     Line{Algorithm: "DDA"},
	},
	{
		Name:   "dda_steep",
		Points: pts(10, 4, 30, 60),
		Width:  64,
		Height: 64,
		Op:     Line{Algorithm: "DDA"},
	},
	{
		Name:   "dda_reverse",
		Points: pts(60, 50, 3, 8),
		Width:  64,
		Height: 64,
		Op:     Line{Algorithm: "DDA"},
	},
	{
		Name:   "dda_vertical",
		Points: pts(32, 58, 32, 5),
		Width:  64,
		Height: 64,
		Op:     Line{Algorithm: "DDA"},
	},
	{
		Name:   "dda_horizontal",
		Points: pts(58, 20, 5, 20),
		Width:  64,
		Height: 64,
		Op:     Line{Algorithm: "DDA"},
	},
	{
		Name:   "bresenham_shallow",
		Points: pts(4, 10, 60, 30),
		Width:  64,
		Height: 64,
		Op:     Line{Algorithm: "Bresenham"},
	},
	{
		Name:   "bresenham_steep",
		Points: pts(10, 4, 30, 60),
		Width:  64,
		Height: 64,
		Op:     Line{Algorithm: "Bresenham"},
	},
	{
		Name:   "bresenham_reverse",
		Points: pts(60, 50, 3, 8),
		Width:  64,
		Height: 64,
		Op:     Line{Algorithm: "Bresenham"},
	},
	{
		Name:   "bresenham_diagonal",
		Points: pts(0, 63, 63, 0),
		Width:  64,
		Height: 64,
		Op:     Line{Algorithm: "Bresenham"},
	},
	{
		Name:   "naive_steep",
		Points: pts(10, 4, 30, 60),
		Width:  64,
		Height: 64,
		Op:     Line{Algorithm: "Naive"},
	},
}
