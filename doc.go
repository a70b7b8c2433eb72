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

// Package raster converts geometric primitives into integer pixel
// coordinates.
//
// Line segments, polygon outlines, axis-aligned ellipses and parametric
// curves (Bézier and uniform cubic B-splines) are scan converted into
// ordered slices of [image.Point]. The package also provides affine
// transforms of point lists (translation, rotation and scaling about a
// pivot) and clipping of line segments against an axis-aligned window.
//
// All coordinates are integers. Intermediate computations use float64;
// unless stated otherwise, emitted coordinates are truncated toward zero.
// The vertical axis is assumed to point down, as in [image.Image].
//
// Every function in this package is a pure function of its arguments and
// is safe for concurrent use. Input slices are never modified.
package raster

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
