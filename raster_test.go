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
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/raster/testcases"
)

// TestCases checks properties shared by all primitives for every test
// case: the output is non-empty and stays on the canvas.
func TestCases(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				pixels := renderCase(tc)
				if len(pixels) == 0 {
					t.Fatal("no pixels")
				}
				canvas := image.Rect(0, 0, tc.Width, tc.Height)
				for _, p := range pixels {
					if !p.In(canvas) {
						_ = writeDebugImage(name, pixels, tc.Width, tc.Height)
						t.Fatalf("pixel %v outside canvas %v", p, canvas)
					}
				}
			})
		}
	}
}

// TestLineCases checks the endpoints and connectivity of the line test
// cases drawn with the connected algorithms.
func TestLineCases(t *testing.T) {
	for _, tc := range testcases.All["line"] {
		op := tc.Op.(testcases.Line)
		if op.Algorithm == "Naive" {
			continue
		}
		t.Run(tc.Name, func(t *testing.T) {
			pixels := renderCase(tc)
			p0, p1 := tc.Points[0], tc.Points[1]
			if !slices.Contains(pixels, p0) || !slices.Contains(pixels, p1) {
				t.Errorf("endpoints %v, %v missing", p0, p1)
			}
			for i := 1; i < len(pixels); i++ {
				d := pixels[i].Sub(pixels[i-1])
				if abs(d.X) > 1 || abs(d.Y) > 1 {
					_ = writeDebugImage("line_"+tc.Name, pixels, tc.Width, tc.Height)
					t.Fatalf("gap between %v and %v", pixels[i-1], pixels[i])
				}
			}
		})
	}
}

// TestClipCases checks that clipped segments stay inside the window.
func TestClipCases(t *testing.T) {
	for _, tc := range testcases.All["clip"] {
		op := tc.Op.(testcases.Clip)
		t.Run(tc.Name, func(t *testing.T) {
			alg, err := ParseClipAlgorithm(op.Algorithm)
			if err != nil {
				t.Fatal(err)
			}
			w := Window{XMin: op.XMin, YMin: op.YMin, XMax: op.XMax, YMax: op.YMax}
			q0, q1, ok := ClipLine(tc.Points[0], tc.Points[1], w, alg)
			if !ok {
				t.Fatal("segment clipped away")
			}
			for _, p := range Line(q0, q1, Bresenham) {
				if !w.Contains(p) {
					t.Fatalf("pixel %v outside window %+v", p, w)
				}
			}
		})
	}
}

// renderCase scan converts a test case.
func renderCase(tc testcases.TestCase) []image.Point {
	switch op := tc.Op.(type) {
	case testcases.Line:
		return Line(tc.Points[0], tc.Points[1], mustLine(op.Algorithm))
	case testcases.Polygon:
		return Polygon(tc.Points, mustLine(op.Algorithm))
	case testcases.Ellipse:
		return Ellipse(tc.Points[0], tc.Points[1])
	case testcases.Curve:
		alg, err := ParseCurveAlgorithm(op.Algorithm)
		if err != nil {
			panic(err)
		}
		return Curve(tc.Points, alg)
	case testcases.Clip:
		alg, err := ParseClipAlgorithm(op.Algorithm)
		if err != nil {
			panic(err)
		}
		w := Window{XMin: op.XMin, YMin: op.YMin, XMax: op.XMax, YMax: op.YMax}
		q0, q1, ok := ClipLine(tc.Points[0], tc.Points[1], w, alg)
		if !ok {
			return nil
		}
		return Line(q0, q1, Bresenham)
	default:
		panic(fmt.Sprintf("unknown operation %T", tc.Op))
	}
}

func mustLine(tag string) LineAlgorithm {
	alg, err := ParseLineAlgorithm(tag)
	if err != nil {
		panic(err)
	}
	return alg
}

// writeDebugImage saves the pixels of a failing test case in debug/, for
// inspection.  Pixels outside the canvas are drawn onto an enlarged image
// in red.
func writeDebugImage(name string, pixels []image.Point, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	bounds := image.Rect(0, 0, w, h)
	for _, p := range pixels {
		bounds = bounds.Union(image.Rect(p.X, p.Y, p.X+1, p.Y+1))
	}
	img := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBA{R: 64, G: 64, B: 64, A: 255}
			if image.Pt(x, y).In(image.Rect(0, 0, w, h)) {
				c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	for _, p := range pixels {
		c := color.RGBA{A: 255}
		if !p.In(image.Rect(0, 0, w, h)) {
			c = color.RGBA{R: 255, A: 255}
		}
		img.SetRGBA(p.X, p.Y, c)
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
