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

var ellipseCases = []TestCase{
	{
		Name:   "circle",
		Points: pts(8, 8, 56, 56),
		Width:  64,
		Height: 64,
		Op:     Ellipse{},
	},
	{
		Name:   "wide",
		Points: pts(4, 20, 60, 44),
		Width:  64,
		Height: 64,
		Op:     Ellipse{},
	},
	{
		Name:   "tall",
		Points: pts(22, 60, 42, 4),
		Width:  64,
		Height: 64,
		Op:     Ellipse{},
	},
	{
		Name:   "small",
		Points: pts(30, 30, 34, 34),
		Width:  64,
		Height: 64,
		Op:     Ellipse{},
	},
	{
		// the box has zero height
		Name:   "flat",
		Points: pts(10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Op:     Ellipse{},
	},
}
