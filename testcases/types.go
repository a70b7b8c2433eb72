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

import (
	"fmt"
	"image"
	"strings"
)

// TestCase defines a single scan conversion test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Points []image.Point // control points or vertices
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Op     Operation     // the primitive to draw
}

// Operation is the drawing operation applied to the points.
type Operation interface {
	isOperation()
}

// Line draws a segment between the two points.
type Line struct {
	Algorithm string // "DDA", "Bresenham" or "Naive"
}

func (Line) isOperation() {}

// Polygon draws the closed outline through the points.
type Polygon struct {
	Algorithm string // "DDA" or "Bresenham"
}

func (Polygon) isOperation() {}

// Ellipse draws the ellipse inscribed in the box with corners Points[0]
// and Points[1].
type Ellipse struct{}

func (Ellipse) isOperation() {}

// Curve draws a parametric curve through the control points.
type Curve struct {
	Algorithm string // "Bezier" or "B-spline"
}

func (Curve) isOperation() {}

// Clip draws the segment between the two points with Bresenham's
// algorithm, clipped to the window.
type Clip struct {
	XMin, YMin, XMax, YMax int
	Algorithm              string // "Cohen-Sutherland" or "Liang-Barsky"
}

func (Clip) isOperation() {}

// Script returns the test case as a drawing script, in the format read by
// canvas.Interpreter.  The item is called id and the canvas is saved under
// the given name.
func (tc TestCase) Script(id, name string) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "resetCanvas %d %d\n", tc.Width, tc.Height)

	coords := func() string {
		parts := make([]string, 0, 2*len(tc.Points))
		for _, p := range tc.Points {
			parts = append(parts, fmt.Sprint(p.X), fmt.Sprint(p.Y))
		}
		return strings.Join(parts, " ")
	}

	switch op := tc.Op.(type) {
	case Line:
		fmt.Fprintf(b, "drawLine %s %s %s\n", id, coords(), op.Algorithm)
	case Polygon:
		fmt.Fprintf(b, "drawPolygon %s %s %s\n", id, coords(), op.Algorithm)
	case Ellipse:
		fmt.Fprintf(b, "drawEllipse %s %s\n", id, coords())
	case Curve:
		fmt.Fprintf(b, "drawCurve %s %s %s\n", id, coords(), op.Algorithm)
	case Clip:
		fmt.Fprintf(b, "drawLine %s %s Bresenham\n", id, coords())
		fmt.Fprintf(b, "clip %s %d %d %d %d %s\n", id, op.XMin, op.YMin, op.XMax, op.YMax, op.Algorithm)
	}

	fmt.Fprintf(b, "saveCanvas %s\n", name)
	return b.String()
}

// pts is a helper to build a point list from x, y pairs.
func pts(coords ...int) []image.Point {
	res := make([]image.Point, len(coords)/2)
	for i := range res {
		res[i] = image.Pt(coords[2*i], coords[2*i+1])
	}
	return res
}
