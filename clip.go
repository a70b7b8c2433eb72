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

// Window is an axis-aligned clip rectangle.  Both bounds are inclusive.
// A valid window has XMin <= XMax and YMin <= YMax.
type Window struct {
	XMin, YMin int
	XMax, YMax int
}

// NewWindow returns the window spanned by two opposite corners, given in
// any order.
func NewWindow(a, b image.Point) Window {
	return Window{
		XMin: min(a.X, b.X),
		YMin: min(a.Y, b.Y),
		XMax: max(a.X, b.X),
		YMax: max(a.Y, b.Y),
	}
}

// Contains reports whether p lies inside w or on its boundary.
func (w Window) Contains(p image.Point) bool {
	return w.XMin <= p.X && p.X <= w.XMax && w.YMin <= p.Y && p.Y <= w.YMax
}

// Outcode classifies a point relative to a [Window].
type Outcode uint8

// Outcode bits.  A point inside the window has outcode 0.
const (
	Left  Outcode = 1 << iota // x < XMin
	Right                     // x > XMax
	Below                     // y < YMin
	Above                     // y > YMax
)

// ComputeOutcode returns the outcode of p with respect to w.
func ComputeOutcode(p image.Point, w Window) Outcode {
	var code Outcode
	if p.X < w.XMin {
		code |= Left
	}
	if p.X > w.XMax {
		code |= Right
	}
	if p.Y < w.YMin {
		code |= Below
	}
	if p.Y > w.YMax {
		code |= Above
	}
	return code
}

// ClipLine clips the segment from p0 to p1 against w.  If any part of the
// segment lies inside the window, the clipped endpoints are returned
// together with ok == true.  Otherwise ok is false and there is nothing to
// draw.  A segment touching the window in a single point is returned as
// a zero-length segment with ok == true.
//
// Intersection coordinates are truncated toward zero.  The clipped
// segment may run in the opposite direction from the input.
func ClipLine(p0, p1 image.Point, w Window, alg ClipAlgorithm) (q0, q1 image.Point, ok bool) {
	switch alg {
	case CohenSutherland:
		return clipCohenSutherland(p0, p1, w)
	case LiangBarsky:
		return clipLiangBarsky(p0, p1, w)
	default:
		panic("raster: invalid " + alg.String())
	}
}

// clipAxisAligned clips a vertical or horizontal segment by clamping its
// span to the window.  The endpoints are returned in increasing order.
func clipAxisAligned(p0, p1 image.Point, w Window) (q0, q1 image.Point, ok bool) {
	if p0.X == p1.X {
		if p0.X < w.XMin || p0.X > w.XMax {
			return q0, q1, false
		}
		lo := max(min(p0.Y, p1.Y), w.YMin)
		hi := min(max(p0.Y, p1.Y), w.YMax)
		if lo > hi {
			return q0, q1, false
		}
		return image.Pt(p0.X, lo), image.Pt(p0.X, hi), true
	}

	if p0.Y < w.YMin || p0.Y > w.YMax {
		return q0, q1, false
	}
	lo := max(min(p0.X, p1.X), w.XMin)
	hi := min(max(p0.X, p1.X), w.XMax)
	if lo > hi {
		return q0, q1, false
	}
	return image.Pt(lo, p0.Y), image.Pt(hi, p0.Y), true
}

// clipCohenSutherland implements the region code algorithm.  Each pass
// either decides the segment, or moves one outside endpoint onto a window
// boundary.  Boundaries are resolved in the order Above, Below, Right,
// Left.
func clipCohenSutherland(p0, p1 image.Point, w Window) (q0, q1 image.Point, ok bool) {
	for {
		code0 := ComputeOutcode(p0, w)
		code1 := ComputeOutcode(p1, w)
		switch {
		case code0&code1 != 0:
			return q0, q1, false
		case code0|code1 == 0:
			return p0, p1, true
		case p0.X == p1.X || p0.Y == p1.Y:
			return clipAxisAligned(p0, p1, w)
		}

		if code0 == 0 {
			p0, p1 = p1, p0
			continue
		}

		m := float64(p1.Y-p0.Y) / float64(p1.X-p0.X)
		x0, y0 := float64(p0.X), float64(p0.Y)
		switch {
		case code0&Above != 0:
			p0 = image.Pt(int(x0+float64(w.YMax-p0.Y)/m), w.YMax)
		case code0&Below != 0:
			p0 = image.Pt(int(x0+float64(w.YMin-p0.Y)/m), w.YMin)
		case code0&Right != 0:
			p0 = image.Pt(w.XMax, int(y0+m*float64(w.XMax-p0.X)))
		case code0&Left != 0:
			p0 = image.Pt(w.XMin, int(y0+m*float64(w.XMin-p0.X)))
		}
	}
}

// clipLiangBarsky implements the parametric algorithm.  The segment is
// P(u) = p0 + u*(p1-p0); each window boundary narrows the admissible
// range [u0, u1].
func clipLiangBarsky(p0, p1 image.Point, w Window) (q0, q1 image.Point, ok bool) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	if dx == 0 || dy == 0 {
		// parallel to a boundary
		return clipAxisAligned(p0, p1, w)
	}

	u0, u1 := 0.0, 1.0
	cut := func(p, q int) {
		u := float64(q) / float64(p)
		if p > 0 {
			u1 = min(u1, u)
		} else {
			u0 = max(u0, u)
		}
	}
	cut(-dx, p0.X-w.XMin)
	cut(dx, w.XMax-p0.X)
	cut(-dy, p0.Y-w.YMin)
	cut(dy, w.YMax-p0.Y)

	if u0 > u1 {
		return q0, q1, false
	}

	start := toVec(p0)
	d := toVec(p1).Sub(start)
	q0 = truncate(start.Add(d.Mul(u0)))
	q1 = truncate(start.Add(d.Mul(u1)))
	return q0, q1, true
}
