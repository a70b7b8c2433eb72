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

import (
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
)

// Translate returns a copy of pts with every point shifted by (dx, dy).
// Translation is exact, so translating by (-dx, -dy) restores the input.
func Translate(pts []image.Point, dx, dy int) []image.Point {
	res := make([]image.Point, len(pts))
	d := image.Pt(dx, dy)
	for i, p := range pts {
		res[i] = p.Add(d)
	}
	return res
}

// Rotate returns a copy of pts rotated by deg degrees about pivot.
//
// The rotation uses the standard counter-clockwise rotation matrix.  Since
// the vertical axis points down, positive angles turn clockwise on screen.
// Coordinates are truncated toward zero.
//
// Rotation cannot be expressed by the bounding box representation of an
// ellipse; callers must not apply it to ellipse corners.
func Rotate(pts []image.Point, pivot image.Point, deg float64) []image.Point {
	return Transform(pts, pivot, rotation(deg))
}

// Scale returns a copy of pts scaled by the factor s about pivot.
// Coordinates are truncated toward zero.
func Scale(pts []image.Point, pivot image.Point, s float64) []image.Point {
	return Transform(pts, pivot, matrix.Scale(s, s))
}

// Transform returns a copy of pts mapped by the affine transformation m,
// applied relative to pivot:
//
//	x' = cx + m[0]*(x-cx) + m[2]*(y-cy) + m[4]
//	y' = cy + m[1]*(x-cx) + m[3]*(y-cy) + m[5]
//
// The results are truncated toward zero.
func Transform(pts []image.Point, pivot image.Point, m matrix.Matrix) []image.Point {
	cx, cy := float64(pivot.X), float64(pivot.Y)
	res := make([]image.Point, len(pts))
	for i, p := range pts {
		dx := float64(p.X - pivot.X)
		dy := float64(p.Y - pivot.Y)
		// Left-to-right evaluation order is part of the result: changing
		// it can move truncated coordinates by one pixel.
		x := cx + m[0]*dx + m[2]*dy + m[4]
		y := cy + m[1]*dx + m[3]*dy + m[5]
		res[i] = image.Pt(int(x), int(y))
	}
	return res
}

// rotation returns the matrix of a rotation by deg degrees.
func rotation(deg float64) matrix.Matrix {
	sin, cos := math.Sincos(deg * (math.Pi / 180))
	return matrix.Matrix{cos, sin, -sin, cos, 0, 0}
}
