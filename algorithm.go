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
	"errors"
	"fmt"
)

// ErrUnknownAlgorithm is returned by the Parse functions when a tag does
// not name a supported algorithm.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// LineAlgorithm selects the scan conversion method for lines and polygons.
type LineAlgorithm int

const (
	// DDA is the digital differential analyser.  It steps along the major
	// axis and rounds the accumulated minor coordinate.
	DDA LineAlgorithm = iota

	// Bresenham is the integer-only midpoint line algorithm.
	Bresenham

	// Naive evaluates y = y0 + k(x-x0) for every x and truncates.
	// It leaves gaps on steep lines and exists for demonstration only.
	Naive
)

func (a LineAlgorithm) String() string {
	switch a {
	case DDA:
		return "DDA"
	case Bresenham:
		return "Bresenham"
	case Naive:
		return "Naive"
	default:
		return fmt.Sprintf("LineAlgorithm(%d)", int(a))
	}
}

// ParseLineAlgorithm converts a tag ("DDA", "Bresenham" or "Naive") into
// a LineAlgorithm.
func ParseLineAlgorithm(tag string) (LineAlgorithm, error) {
	switch tag {
	case "DDA":
		return DDA, nil
	case "Bresenham":
		return Bresenham, nil
	case "Naive":
		return Naive, nil
	}
	return 0, fmt.Errorf("line algorithm %q: %w", tag, ErrUnknownAlgorithm)
}

// CurveAlgorithm selects the curve family used by [Curve].
type CurveAlgorithm int

const (
	// Bezier interpolates the first and last control points, using the
	// Bernstein basis of degree N-1.
	Bezier CurveAlgorithm = iota

	// BSpline is a uniform cubic B-spline.  The curve does not in general
	// pass through any control point.
	BSpline
)

func (a CurveAlgorithm) String() string {
	switch a {
	case Bezier:
		return "Bezier"
	case BSpline:
		return "B-spline"
	default:
		return fmt.Sprintf("CurveAlgorithm(%d)", int(a))
	}
}

// ParseCurveAlgorithm converts a tag ("Bezier" or "B-spline") into a
// CurveAlgorithm.
func ParseCurveAlgorithm(tag string) (CurveAlgorithm, error) {
	switch tag {
	case "Bezier":
		return Bezier, nil
	case "B-spline":
		return BSpline, nil
	}
	return 0, fmt.Errorf("curve algorithm %q: %w", tag, ErrUnknownAlgorithm)
}

// ClipAlgorithm selects the line clipping method used by [ClipLine].
type ClipAlgorithm int

const (
	CohenSutherland ClipAlgorithm = iota
	LiangBarsky
)

func (a ClipAlgorithm) String() string {
	switch a {
	case CohenSutherland:
		return "Cohen-Sutherland"
	case LiangBarsky:
		return "Liang-Barsky"
	default:
		return fmt.Sprintf("ClipAlgorithm(%d)", int(a))
	}
}

// ParseClipAlgorithm converts a tag ("Cohen-Sutherland" or "Liang-Barsky")
// into a ClipAlgorithm.
func ParseClipAlgorithm(tag string) (ClipAlgorithm, error) {
	switch tag {
	case "Cohen-Sutherland":
		return CohenSutherland, nil
	case "Liang-Barsky":
		return LiangBarsky, nil
	}
	return 0, fmt.Errorf("clip algorithm %q: %w", tag, ErrUnknownAlgorithm)
}
