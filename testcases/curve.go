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

var curveCases = []TestCase{
	{
		Name:   "bezier_line",
		Points: pts(6, 58, 58, 6),
		Width:  64,
		Height: 64,
		Op:     Curve{Algorithm: "Bezier"},
	},
	{
		Name:   "bezier_quadratic",
		Points: pts(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Curve{Algorithm: "Bezier"},
	},
	{
		Name:   "bezier_cubic",
		Points: pts(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Curve{Algorithm: "Bezier"},
	},
	{
		// the control polygon crosses itself
		Name:   "bezier_loop",
		Points: pts(10, 50, 60, 10, 4, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Curve{Algorithm: "Bezier"},
	},
	{
		Name:   "bezier_high_degree",
		Points: pts(4, 32, 12, 4, 24, 60, 32, 4, 40, 60, 52, 4, 60, 32),
		Width:  64,
		Height: 64,
		Op:     Curve{Algorithm: "Bezier"},
	},
	{
		Name:   "bspline_cubic",
		Points: pts(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Curve{Algorithm: "B-spline"},
	},
	{
		Name:   "bspline_wave",
		Points: pts(4, 32, 12, 4, 24, 60, 32, 4, 40, 60, 52, 4, 60, 32),
		Width:  64,
		Height: 64,
		Op:     Curve{Algorithm: "B-spline"},
	},
}
