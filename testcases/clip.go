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

var clipCases = []TestCase{
	{
		Name:   "horizontal_cohen_sutherland",
		Points: pts(0, 32, 63, 32),
		Width:  64,
		Height: 64,
		Op:     Clip{XMin: 16, YMin: 16, XMax: 48, YMax: 48, Algorithm: "Cohen-Sutherland"},
	},
	{
		Name:   "horizontal_liang_barsky",
		Points: pts(0, 32, 63, 32),
		Width:  64,
		Height: 64,
		Op:     Clip{XMin: 16, YMin: 16, XMax: 48, YMax: 48, Algorithm: "Liang-Barsky"},
	},
	{
		Name:   "diagonal_cohen_sutherland",
		Points: pts(2, 60, 62, 4),
		Width:  64,
		Height: 64,
		Op:     Clip{XMin: 16, YMin: 16, XMax: 48, YMax: 48, Algorithm: "Cohen-Sutherland"},
	},
	{
		Name:   "diagonal_liang_barsky",
		Points: pts(2, 60, 62, 4),
		Width:  64,
		Height: 64,
		Op:     Clip{XMin: 16, YMin: 16, XMax: 48, YMax: 48, Algorithm: "Liang-Barsky"},
	},
	{
		// enters through the left edge, leaves through the top
		Name:   "corner_cohen_sutherland",
		Points: pts(4, 30, 40, 60),
		Width:  64,
		Height: 64,
		Op:     Clip{XMin: 16, YMin: 16, XMax: 48, YMax: 48, Algorithm: "Cohen-Sutherland"},
	},
	{
		Name:   "corner_liang_barsky",
		Points: pts(4, 30, 40, 60),
		Width:  64,
		Height: 64,
		Op:     Clip{XMin: 16, YMin: 16, XMax: 48, YMax: 48, Algorithm: "Liang-Barsky"},
	},
}
