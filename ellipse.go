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

package raster

import "image"

// Ellipse returns the pixels of the axis-aligned ellipse inscribed in the
// bounding box with opposite corners p0 and p1.  The corners may be given
// in any order.
//
// The outline is generated by the midpoint algorithm, one quadrant at a
// time: every step emits the four points (x,y), (-x,y), (-x,-y), (x,-y)
// relative to the centre.  Points on the axes are therefore repeated.
func Ellipse(p0, p1 image.Point) []image.Point {
	return AppendEllipse(nil, p0, p1)
}

// AppendEllipse appends the pixels of the ellipse to dst and returns the
// extended slice.
func AppendEllipse(dst []image.Point, p0, p1 image.Point) []image.Point {
	// normalize so that x0 <= x1 and y0 >= y1
	x0, x1 := min(p0.X, p1.X), max(p0.X, p1.X)
	y0, y1 := max(p0.Y, p1.Y), min(p0.Y, p1.Y)

	xc := (x0 + x1) / 2
	yc := (y0 + y1) / 2
	rx := float64(x1 - xc)
	ry := float64(y0 - yc)
	rx2 := rx * rx
	ry2 := ry * ry

	emit := func(x, y int) {
		dst = append(dst,
			image.Pt(xc+x, yc+y),
			image.Pt(xc-x, yc+y),
			image.Pt(xc-x, yc-y),
			image.Pt(xc+x, yc-y))
	}

	// region 1: |slope| < 1, x is the major axis
	x, y := 0, y0-yc
	p := ry2 + rx2/4 - rx2*ry
	for ry2*float64(x) < rx2*float64(y) {
		emit(x, y)
		x++
		if p < 0 {
			p += 2*ry2*float64(x) + ry2
		} else {
			y--
			p += 2*ry2*float64(x) + ry2 - 2*rx2*float64(y)
		}
	}

	// region 2: y is the major axis
	fx := float64(x) + 0.5
	fy := float64(y) - 1
	p = ry2*fx*fx + rx2*fy*fy - rx2*ry2
	for y >= 0 {
		emit(x, y)
		y--
		if p > 0 {
			p += rx2 - 2*rx2*float64(y)
		} else {
			x++
			p += 2*ry2*float64(x) - 2*rx2*float64(y) + rx2
		}
	}

	return dst
}
