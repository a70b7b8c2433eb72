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
)

// Line returns the pixels covering the segment from p0 to p1, including
// both endpoints.
//
// With [Bresenham] the result has max(|dx|,|dy|)+1 pixels and runs from p0
// to p1.  With [DDA], axis-aligned segments are emitted in increasing
// coordinate order; all other segments run from p0 to p1.
func Line(p0, p1 image.Point, alg LineAlgorithm) []image.Point {
	return AppendLine(nil, p0, p1, alg)
}

// AppendLine appends the pixels of the segment from p0 to p1 to dst and
// returns the extended slice.
func AppendLine(dst []image.Point, p0, p1 image.Point, alg LineAlgorithm) []image.Point {
	switch alg {
	case DDA:
		return appendDDA(dst, p0, p1)
	case Bresenham:
		return appendBresenham(dst, p0, p1)
	case Naive:
		return appendNaive(dst, p0, p1)
	default:
		panic("raster: invalid " + alg.String())
	}
}

func appendDDA(dst []image.Point, p0, p1 image.Point) []image.Point {
	x0, y0 := p0.X, p0.Y
	x1, y1 := p1.X, p1.Y

	if x0 == x1 {
		for y := min(y0, y1); y <= max(y0, y1); y++ {
			dst = append(dst, image.Pt(x0, y))
		}
		return dst
	}

	k := float64(y1-y0) / float64(x1-x0)
	switch {
	case k == 0:
		for x := min(x0, x1); x <= max(x0, x1); x++ {
			dst = append(dst, image.Pt(x, y0))
		}

	case math.Abs(k) <= 1:
		// x is the major axis
		y := float64(y0)
		if x1 >= x0 {
			for x := x0; x <= x1; x++ {
				dst = append(dst, image.Pt(x, roundInt(y)))
				y += k
			}
		} else {
			for x := x0; x >= x1; x-- {
				dst = append(dst, image.Pt(x, roundInt(y)))
				y -= k
			}
		}

	default:
		// y is the major axis
		k = 1 / k
		x := float64(x0)
		if y1 >= y0 {
			for y := y0; y <= y1; y++ {
				dst = append(dst, image.Pt(roundInt(x), y))
				x += k
			}
		} else {
			for y := y0; y >= y1; y-- {
				dst = append(dst, image.Pt(roundInt(x), y))
				x -= k
			}
		}
	}
	return dst
}

func appendBresenham(dst []image.Point, p0, p1 image.Point) []image.Point {
	dx := abs(p1.X - p0.X)
	dy := abs(p1.Y - p0.Y)
	sx, sy := 1, 1
	if p0.X >= p1.X {
		sx = -1
	}
	if p0.Y >= p1.Y {
		sy = -1
	}

	x, y := p0.X, p0.Y
	if dy < dx {
		p := 2*dy - dx
		for range dx + 1 {
			dst = append(dst, image.Pt(x, y))
			x += sx
			if p > 0 {
				y += sy
				p += 2 * (dy - dx)
			} else {
				p += 2 * dy
			}
		}
		return dst
	}

	p := 2*dx - dy
	for range dy + 1 {
		dst = append(dst, image.Pt(x, y))
		y += sy
		if p > 0 {
			x += sx
			p += 2 * (dx - dy)
		} else {
			p += 2 * dx
		}
	}
	return dst
}

func appendNaive(dst []image.Point, p0, p1 image.Point) []image.Point {
	if p0.X == p1.X {
		for y := min(p0.Y, p1.Y); y <= max(p0.Y, p1.Y); y++ {
			dst = append(dst, image.Pt(p0.X, y))
		}
		return dst
	}

	if p0.X > p1.X {
		p0, p1 = p1, p0
	}
	k := float64(p1.Y-p0.Y) / float64(p1.X-p0.X)
	for x := p0.X; x <= p1.X; x++ {
		y := float64(p0.Y) + k*float64(x-p0.X)
		dst = append(dst, image.Pt(x, int(y)))
	}
	return dst
}

// roundInt rounds to the nearest integer, with ties going to the even
// neighbour.
func roundInt(x float64) int {
	return int(math.RoundToEven(x))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
