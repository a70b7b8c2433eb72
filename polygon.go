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

// Polygon returns the pixels of the closed outline through the given
// vertices.  A polygon with N vertices has N edges; edge i runs from
// vertex i-1 to vertex i, so that edge 0 is the closing edge from the last
// vertex back to the first.  Edges are concatenated in this order and
// shared vertices appear once per edge.
func Polygon(vertices []image.Point, alg LineAlgorithm) []image.Point {
	return AppendPolygon(nil, vertices, alg)
}

// AppendPolygon appends the outline pixels of the polygon to dst and
// returns the extended slice.
func AppendPolygon(dst []image.Point, vertices []image.Point, alg LineAlgorithm) []image.Point {
	n := len(vertices)
	for i := range n {
		dst = AppendLine(dst, vertices[(i+n-1)%n], vertices[i], alg)
	}
	return dst
}
