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


package canvas

import (
	"errors"
	"image"
	"image/color"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/bmp"

	"seehuhn.de/go/raster"
	"seehuhn.de/go/raster/testcases"
)

func TestRunScript(t *testing.T) {
	script := `
resetCanvas 40 30
setColor 0 0 255
drawLine l1 0 0 20 10 DDA

drawPolygon p1 1 1 10 1 10 10 Bresenham
drawEllipse e1 5 5 25 15
drawCurve c1 0 0 10 20 20 0 30 20 B-spline
translate l1 3 4
rotate p1 0 0 90
scale c1 0 0 0.5
clip l1 5 5 15 12 Liang-Barsky
`
	in := &Interpreter{}
	if err := in.Run(strings.NewReader(script)); err != nil {
		t.Fatal(err)
	}

	c := in.Canvas
	if w, h := c.Size(); w != 40 || h != 30 {
		t.Errorf("size %dx%d, want 40x30", w, h)
	}

	ctrl := []image.Point{{0, 0}, {10, 20}, {20, 0}, {30, 20}}
	want := []Item{
		{ID: "l1", Kind: KindLine, Points: []image.Point{{5, 5}, {15, 10}}, Color: blue, Line: raster.DDA},
		{ID: "p1", Kind: KindPolygon, Points: raster.Rotate([]image.Point{{1, 1}, {10, 1}, {10, 10}}, image.Pt(0, 0), 90),
			Color: blue, Line: raster.Bresenham},
		{ID: "e1", Kind: KindEllipse, Points: []image.Point{{5, 5}, {25, 15}}, Color: blue},
		{ID: "c1", Kind: KindCurve, Points: raster.Scale(ctrl, image.Pt(0, 0), 0.5), Color: blue, Curve: raster.BSpline},
	}
	if d := cmp.Diff(want, c.Items()); d != "" {
		t.Errorf("diff (-want +got):\n%s", d)
	}
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name   string
		script string
		want   error
		line   string
	}{
		{"unknown", "resetCanvas 10 10\nfillRect 1 2 3 4\n", ErrUnknownCommand, "line 2:"},
		{"args", "drawLine a 1 2 3 DDA\n", ErrSyntax, "line 1:"},
		{"number", "drawLine a 1 2 x 4 DDA\n", ErrSyntax, "line 1:"},
		{"odd_coords", "drawPolygon p 1 2 3 DDA\n", ErrSyntax, "line 1:"},
		{"polygon_two_vertices", "drawPolygon p 1 2 3 4 DDA\n", ErrSyntax, "line 1:"},
		{"polygon_one_vertex", "drawPolygon p 1 2 Bresenham\n", ErrSyntax, "line 1:"},
		{"curve_one_point", "drawCurve c 1 2 Bezier\n", ErrSyntax, "line 1:"},
		{"size", "resetCanvas 0 10\n", ErrSyntax, "line 1:"},
		{"color", "\n\nsetColor 0 256 0\n", ErrSyntax, "line 3:"},
		{"angle", "drawLine a 0 0 5 5 DDA\nrotate a 0 0 ninety\n", ErrSyntax, "line 2:"},
		{"algorithm", "drawLine a 1 2 3 4 Wu\n", raster.ErrUnknownAlgorithm, "line 1:"},
		{"clip_algorithm", "drawLine a 1 2 3 4 DDA\nclip a 0 0 5 5 Sutherland-Hodgman\n", raster.ErrUnknownAlgorithm, "line 2:"},
		{"item", "translate x 1 1\n", ErrUnknownItem, "line 1:"},
		{"clip_ellipse", "drawEllipse e 0 0 4 4\nclip e 0 0 2 2 Cohen-Sutherland\n", ErrNotLine, "line 2:"},
		{"rotate_ellipse", "drawEllipse e 0 0 4 4\nrotate e 0 0 10\n", ErrRotateEllipse, "line 2:"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := &Interpreter{OutDir: t.TempDir()}
			err := in.Run(strings.NewReader(c.script))
			if !errors.Is(err, c.want) {
				t.Fatalf("got %v, want %v", err, c.want)
			}
			if !strings.HasPrefix(err.Error(), c.line) {
				t.Errorf("error %q does not start with %q", err, c.line)
			}
		})
	}
}

func TestRunShortCurves(t *testing.T) {
	script := "drawCurve b 0 0 9 9 Bezier\ndrawCurve s 0 0 5 9 9 0 B-spline\n"
	in := &Interpreter{}
	if err := in.Run(strings.NewReader(script)); err != nil {
		t.Fatal(err)
	}
	if len(in.Canvas.Items()) != 2 {
		t.Errorf("got %d items, want 2", len(in.Canvas.Items()))
	}
	if it, _ := in.Canvas.Item("s"); len(it.Pixels()) != 0 {
		t.Errorf("three point B-spline drew %d pixels", len(it.Pixels()))
	}
}

func TestRunStopsAtError(t *testing.T) {
	script := "drawLine a 0 0 1 1 DDA\nbogus\ndrawLine b 0 0 1 1 DDA\n"
	in := &Interpreter{}
	if err := in.Run(strings.NewReader(script)); err == nil {
		t.Fatal("missing error")
	}
	if _, ok := in.Canvas.Item("b"); ok {
		t.Error("command after the error was executed")
	}
}

func TestSaveCanvas(t *testing.T) {
	dir := t.TempDir()
	in := &Interpreter{OutDir: dir}
	script := "resetCanvas 16 8\nsetColor 255 0 0\ndrawLine a 0 3 15 3 Bresenham\nsaveCanvas out\n"
	if err := in.Run(strings.NewReader(script)); err != nil {
		t.Fatal(err)
	}

	img := loadBMP(t, filepath.Join(dir, "out.bmp"))
	if img.Bounds() != image.Rect(0, 0, 16, 8) {
		t.Fatalf("bounds %v", img.Bounds())
	}
	for x := range 16 {
		got := color.RGBAModel.Convert(img.At(x, 3)).(color.RGBA)
		if got != red {
			t.Errorf("pixel (%d,3) = %v, want %v", x, got, red)
		}
		got = color.RGBAModel.Convert(img.At(x, 4)).(color.RGBA)
		if got != white {
			t.Errorf("pixel (%d,4) = %v, want %v", x, got, white)
		}
	}
}

// TestCases runs the scripts of the shared test cases and compares the
// saved bitmaps with the pixels computed by package raster.
func TestCases(t *testing.T) {
	dir := t.TempDir()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				in := &Interpreter{OutDir: dir}
				if err := in.Run(strings.NewReader(tc.Script("item", name))); err != nil {
					t.Fatal(err)
				}
				img := loadBMP(t, filepath.Join(dir, name+".bmp"))

				want := make(map[image.Point]bool)
				for _, p := range expectedPixels(t, tc) {
					if p.In(img.Bounds()) {
						want[p] = true
					}
				}
				if len(want) == 0 {
					t.Fatal("test case draws nothing")
				}

				b := img.Bounds()
				for y := b.Min.Y; y < b.Max.Y; y++ {
					for x := b.Min.X; x < b.Max.X; x++ {
						g := color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
						p := image.Pt(x, y)
						if ink := g < 128; ink != want[p] {
							t.Errorf("pixel %v: ink=%t, want %t", p, ink, want[p])
						}
					}
				}
			})
		}
	}
}

func expectedPixels(t *testing.T, tc testcases.TestCase) []image.Point {
	t.Helper()
	switch op := tc.Op.(type) {
	case testcases.Line:
		alg, err := raster.ParseLineAlgorithm(op.Algorithm)
		if err != nil {
			t.Fatal(err)
		}
		return raster.Line(tc.Points[0], tc.Points[1], alg)
	case testcases.Polygon:
		alg, err := raster.ParseLineAlgorithm(op.Algorithm)
		if err != nil {
			t.Fatal(err)
		}
		return raster.Polygon(tc.Points, alg)
	case testcases.Ellipse:
		return raster.Ellipse(tc.Points[0], tc.Points[1])
	case testcases.Curve:
		alg, err := raster.ParseCurveAlgorithm(op.Algorithm)
		if err != nil {
			t.Fatal(err)
		}
		return raster.Curve(tc.Points, alg)
	case testcases.Clip:
		alg, err := raster.ParseClipAlgorithm(op.Algorithm)
		if err != nil {
			t.Fatal(err)
		}
		w := raster.Window{XMin: op.XMin, YMin: op.YMin, XMax: op.XMax, YMax: op.YMax}
		q0, q1, ok := raster.ClipLine(tc.Points[0], tc.Points[1], w, alg)
		if !ok {
			return nil
		}
		return raster.Line(q0, q1, raster.Bresenham)
	}
	t.Fatalf("unknown operation %T", tc.Op)
	return nil
}

func loadBMP(t *testing.T, fileName string) image.Image {
	t.Helper()
	f, err := os.Open(fileName)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := bmp.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	return img
}
