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


// Package canvas keeps a list of named drawing items and renders them into
// images and documents.
//
// A [Canvas] stores the control points of every item, not its pixels.
// Transforms and clipping act on the control points, and the pixels are
// regenerated with the functions of package raster whenever the canvas is
// rendered.  Canvas coordinates have the origin in the top-left corner and
// the y axis points down.
//
// A Canvas is not safe for concurrent use.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"slices"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/raster"
)

var (
	// ErrUnknownItem is returned when an operation names an item ID which
	// is not on the canvas.
	ErrUnknownItem = errors.New("unknown item")

	// ErrNotLine is returned when clipping is requested for an item which
	// is not a line.
	ErrNotLine = errors.New("only lines can be clipped")

	// ErrRotateEllipse is returned when rotation is requested for an
	// ellipse.  Ellipses are always axis-aligned.
	ErrRotateEllipse = errors.New("ellipses cannot be rotated")
)

// Kind is the type of a drawing item.
type Kind int

const (
	KindLine Kind = iota
	KindPolygon
	KindEllipse
	KindCurve
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindPolygon:
		return "polygon"
	case KindEllipse:
		return "ellipse"
	case KindCurve:
		return "curve"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Item is a single drawing on the canvas.
type Item struct {
	ID     string
	Kind   Kind
	Points []image.Point // control points, vertices or box corners
	Color  color.RGBA

	// Line is used for KindLine and KindPolygon.
	Line raster.LineAlgorithm

	// Curve is used for KindCurve.
	Curve raster.CurveAlgorithm
}

// Pixels scan converts the item.
func (it *Item) Pixels() []image.Point {
	switch it.Kind {
	case KindLine:
		return raster.Line(it.Points[0], it.Points[1], it.Line)
	case KindPolygon:
		return raster.Polygon(it.Points, it.Line)
	case KindEllipse:
		return raster.Ellipse(it.Points[0], it.Points[1])
	case KindCurve:
		return raster.Curve(it.Points, it.Curve)
	default:
		panic("canvas: invalid item kind " + it.Kind.String())
	}
}

// Bounds returns the selection rectangle of the item: the bounding box of
// the control points, extended by one unit on every side.
func (it *Item) Bounds() rect.Rect {
	if len(it.Points) == 0 {
		return rect.Rect{}
	}
	xMin, yMin := it.Points[0].X, it.Points[0].Y
	xMax, yMax := xMin, yMin
	for _, p := range it.Points[1:] {
		xMin = min(xMin, p.X)
		xMax = max(xMax, p.X)
		yMin = min(yMin, p.Y)
		yMax = max(yMax, p.Y)
	}
	return rect.Rect{
		LLx: float64(xMin - 1),
		LLy: float64(yMin - 1),
		URx: float64(xMax + 1),
		URy: float64(yMax + 1),
	}
}

func (it *Item) clone() Item {
	res := *it
	res.Points = slices.Clone(it.Points)
	return res
}

// Canvas is a fixed-size drawing area holding named items.
type Canvas struct {
	width, height int
	color         color.RGBA

	items    map[string]*Item
	order    []string // item IDs in drawing order
	selected string
}

// New allocates an empty canvas.  The pen color is black.
func New(width, height int) *Canvas {
	c := &Canvas{}
	c.Reset(width, height)
	return c
}

// Reset removes all items, changes the canvas size and restores the black
// pen.
func (c *Canvas) Reset(width, height int) {
	c.width = max(width, 0)
	c.height = max(height, 0)
	c.color = color.RGBA{A: 0xff}
	c.items = make(map[string]*Item)
	c.order = c.order[:0]
	c.selected = ""
	Logger().Debug("canvas reset", "width", c.width, "height", c.height)
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// SetColor sets the pen color used by subsequently drawn items.
func (c *Canvas) SetColor(col color.RGBA) {
	c.color = col
}

// DrawLine adds a line segment.  An existing item with the same ID is
// replaced.
func (c *Canvas) DrawLine(id string, p0, p1 image.Point, alg raster.LineAlgorithm) {
	c.add(&Item{ID: id, Kind: KindLine, Points: []image.Point{p0, p1}, Line: alg})
}

// DrawPolygon adds a closed polygon outline.
func (c *Canvas) DrawPolygon(id string, vertices []image.Point, alg raster.LineAlgorithm) {
	c.add(&Item{ID: id, Kind: KindPolygon, Points: slices.Clone(vertices), Line: alg})
}

// DrawEllipse adds the axis-aligned ellipse inscribed in the box with
// corners p0 and p1.
func (c *Canvas) DrawEllipse(id string, p0, p1 image.Point) {
	c.add(&Item{ID: id, Kind: KindEllipse, Points: []image.Point{p0, p1}})
}

// DrawCurve adds a parametric curve.
func (c *Canvas) DrawCurve(id string, control []image.Point, alg raster.CurveAlgorithm) {
	c.add(&Item{ID: id, Kind: KindCurve, Points: slices.Clone(control), Curve: alg})
}

func (c *Canvas) add(it *Item) {
	it.Color = c.color
	if _, exists := c.items[it.ID]; !exists {
		c.order = append(c.order, it.ID)
	}
	c.items[it.ID] = it
	Logger().Debug("item added", "id", it.ID, "kind", it.Kind, "points", len(it.Points))
}

// Item returns a copy of the item with the given ID.
func (c *Canvas) Item(id string) (Item, bool) {
	it, ok := c.items[id]
	if !ok {
		return Item{}, false
	}
	return it.clone(), true
}

// Items returns copies of all items, in drawing order.
func (c *Canvas) Items() []Item {
	res := make([]Item, 0, len(c.order))
	for _, id := range c.order {
		res = append(res, c.items[id].clone())
	}
	return res
}

// Delete removes an item from the canvas.
func (c *Canvas) Delete(id string) error {
	if _, ok := c.items[id]; !ok {
		return fmt.Errorf("%q: %w", id, ErrUnknownItem)
	}
	delete(c.items, id)
	c.order = slices.DeleteFunc(c.order, func(s string) bool { return s == id })
	if c.selected == id {
		c.selected = ""
	}
	Logger().Debug("item deleted", "id", id)
	return nil
}

// Select marks an item as selected.  The selected item is outlined by its
// [Item.Bounds] rectangle when the canvas is rendered.  An empty ID clears
// the selection.
func (c *Canvas) Select(id string) error {
	if id != "" {
		if _, ok := c.items[id]; !ok {
			return fmt.Errorf("%q: %w", id, ErrUnknownItem)
		}
	}
	c.selected = id
	return nil
}

// Translate moves an item by (dx, dy).
func (c *Canvas) Translate(id string, dx, dy int) error {
	it, err := c.lookup(id)
	if err != nil {
		return err
	}
	it.Points = raster.Translate(it.Points, dx, dy)
	return nil
}

// Rotate turns an item by deg degrees about the pivot.  With the y axis
// pointing down, positive angles turn clockwise on screen.
func (c *Canvas) Rotate(id string, pivot image.Point, deg float64) error {
	it, err := c.lookup(id)
	if err != nil {
		return err
	}
	if it.Kind == KindEllipse {
		return fmt.Errorf("%q: %w", id, ErrRotateEllipse)
	}
	it.Points = raster.Rotate(it.Points, pivot, deg)
	return nil
}

// Scale scales an item by the factor s about the pivot.
func (c *Canvas) Scale(id string, pivot image.Point, s float64) error {
	it, err := c.lookup(id)
	if err != nil {
		return err
	}
	it.Points = raster.Scale(it.Points, pivot, s)
	return nil
}

// Clip clips a line item to the window.  If no part of the line lies
// inside the window, the item is removed from the canvas.
func (c *Canvas) Clip(id string, w raster.Window, alg raster.ClipAlgorithm) error {
	it, err := c.lookup(id)
	if err != nil {
		return err
	}
	if it.Kind != KindLine {
		return fmt.Errorf("%q is a %s: %w", id, it.Kind, ErrNotLine)
	}
	q0, q1, ok := raster.ClipLine(it.Points[0], it.Points[1], w, alg)
	if !ok {
		Logger().Debug("line clipped away", "id", id)
		return c.Delete(id)
	}
	it.Points = []image.Point{q0, q1}
	return nil
}

func (c *Canvas) lookup(id string) (*Item, error) {
	it, ok := c.items[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrUnknownItem)
	}
	return it, nil
}

var selectionColor = color.RGBA{R: 0xff, A: 0xff}

// Image renders the canvas.  The background is white and the items are
// painted in drawing order, so later items cover earlier ones.  Pixels
// outside the canvas are dropped.
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for _, id := range c.order {
		it := c.items[id]
		for _, p := range it.Pixels() {
			if p.In(img.Rect) {
				img.SetRGBA(p.X, p.Y, it.Color)
			}
		}
	}

	if it, ok := c.items[c.selected]; ok {
		b := it.Bounds()
		outline := raster.Polygon([]image.Point{
			image.Pt(int(b.LLx), int(b.LLy)),
			image.Pt(int(b.URx), int(b.LLy)),
			image.Pt(int(b.URx), int(b.URy)),
			image.Pt(int(b.LLx), int(b.URy)),
		}, raster.Bresenham)
		for _, p := range outline {
			if p.In(img.Rect) {
				img.SetRGBA(p.X, p.Y, selectionColor)
			}
		}
	}
	return img
}
