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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEllipseCircle(t *testing.T) {
	got := Ellipse(image.Pt(0, 0), image.Pt(4, 4))
	want := pts(
		2, 4, 2, 4, 2, 0, 2, 0,
		3, 4, 1, 4, 1, 0, 3, 0,
		4, 3, 0, 3, 0, 1, 4, 1,
		4, 2, 0, 2, 0, 2, 4, 2,
	)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("diff (-want +got):\n%s", d)
	}
}

func TestEllipseCornerOrder(t *testing.T) {
	a, b := image.Pt(3, 40), image.Pt(51, 7)
	want := Ellipse(a, b)
	others := [][2]image.Point{
		{b, a},
		{image.Pt(a.X, b.Y), image.Pt(b.X, a.Y)},
		{image.Pt(b.X, a.Y), image.Pt(a.X, b.Y)},
	}
	for _, c := range others {
		got := Ellipse(c[0], c[1])
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("corners %v: diff (-want +got):\n%s", c, d)
		}
	}
}

func TestEllipseSymmetry(t *testing.T) {
	boxes := [][2]image.Point{
		{{0, 0}, {4, 4}},
		{{10, 10}, {70, 30}},
		{{-15, 8}, {6, 61}},
		{{5, 5}, {6, 17}},
		{{0, 0}, {100, 1}},
	}
	for _, box := range boxes {
		got := Ellipse(box[0], box[1])
		if len(got) == 0 {
			t.Errorf("%v: empty", box)
			continue
		}
		xc := (min(box[0].X, box[1].X) + max(box[0].X, box[1].X)) / 2
		yc := (min(box[0].Y, box[1].Y) + max(box[0].Y, box[1].Y)) / 2

		set := make(map[image.Point]bool, len(got))
		for _, p := range got {
			set[p] = true
		}
		for _, p := range got {
			if !set[image.Pt(2*xc-p.X, p.Y)] {
				t.Errorf("%v: %v has no mirror image in the vertical axis", box, p)
			}
			if !set[image.Pt(p.X, 2*yc-p.Y)] {
				t.Errorf("%v: %v has no mirror image in the horizontal axis", box, p)
			}
		}
	}
}

// TestEllipseInsideBox checks that the outline stays within one pixel of
// the bounding box.
func TestEllipseInsideBox(t *testing.T) {
	a, b := image.Pt(-20, 4), image.Pt(30, 44)
	r := image.Rect(a.X-1, a.Y-1, b.X+2, b.Y+2)
	for _, p := range Ellipse(a, b) {
		if !p.In(r) {
			t.Errorf("%v outside bounding box %v", p, r)
		}
	}
}

func TestEllipseKnownRun(t *testing.T) {
	got := Ellipse(image.Pt(3, 40), image.Pt(51, 7))
	if len(got) != 120 {
		t.Errorf("got %d points, want 120", len(got))
	}
	want := pts(
		27, 40, 27, 40, 27, 6, 27, 6,
		28, 40, 26, 40, 26, 6, 28, 6,
		29, 40, 25, 40, 25, 6, 29, 6,
		30, 40, 24, 40, 24, 6, 30, 6,
		31, 40, 23, 40, 23, 6, 31, 6,
		32, 40, 22, 40, 22, 6, 32, 6,
	)
	if len(got) < len(want) {
		t.Fatalf("only %d points", len(got))
	}
	if d := cmp.Diff(want, got[:len(want)]); d != "" {
		t.Errorf("diff (-want +got):\n%s", d)
	}
}
