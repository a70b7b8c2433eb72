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

var polygonCases = []TestCase{
	{
		Name:   "triangle_dda",
		Points: pts(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Polygon{Algorithm: "DDA"},
	},
	{
		Name:   "triangle_bresenham",
		Points: pts(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Polygon{Algorithm: "Bresenham"},
	},
	{
		// five-pointed star, self-intersecting
		Name:   "star_bresenham",
		Points: pts(32, 7, 46, 52, 8, 24, 55, 24, 17, 52),
		Width:  64,
		Height: 64,
		Op:     Polygon{Algorithm: "Bresenham"},
	},
	{
		Name:   "rectangle_dda",
		Points: pts(10, 10, 54, 10, 54, 54, 10, 54),
		Width:  64,
		Height: 64,
		Op:     Polygon{Algorithm: "DDA"},
	},
	{
		Name:   "hexagon_dda",
		Points: pts(20, 6, 44, 6, 58, 32, 44, 58, 20, 58, 6, 32),
		Width:  64,
		Height: 64,
		Op:     Polygon{Algorithm: "DDA"},
	},
}
