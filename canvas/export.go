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
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

// ErrFormat is returned by [Canvas.Save] for unsupported file extensions.
var ErrFormat = errors.New("unsupported image format")

// WritePNG writes the rendered canvas in PNG format.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}

// WriteBMP writes the rendered canvas in BMP format.
func (c *Canvas) WriteBMP(w io.Writer) error {
	return bmp.Encode(w, c.Image())
}

// WritePDF writes the canvas as a single-page PDF file.  One canvas pixel
// becomes a square of one PDF unit.  Items are painted in gray, with the
// gray level taken from the luminance of the item color.  The selected
// item is outlined by a mid-gray stroke along its [Item.Bounds].
func (c *Canvas) WritePDF(fileName string) error {
	w, h := float64(c.width), float64(c.height)
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(pdfcolor.DeviceGray(1))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// PDF origin is bottom-left, the canvas origin is top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	clip := image.Rect(0, 0, c.width, c.height)
	for _, id := range c.order {
		it := c.items[id]
		squares := pixelSquares(it.Pixels(), clip)
		if len(squares.Cmds) == 0 {
			continue
		}

		g := color.GrayModel.Convert(it.Color).(color.Gray)
		page.SetFillColor(pdfcolor.DeviceGray(float64(g.Y) / 255))

		coordIdx := 0
		for _, cmd := range squares.Cmds {
			switch cmd {
			case path.CmdMoveTo:
				p := squares.Coords[coordIdx]
				page.MoveTo(p.X, p.Y)
				coordIdx++
			case path.CmdLineTo:
				p := squares.Coords[coordIdx]
				page.LineTo(p.X, p.Y)
				coordIdx++
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Fill()
	}

	if it, ok := c.items[c.selected]; ok {
		box := selectionBox(it.Bounds())
		page.SetStrokeColor(pdfcolor.DeviceGray(0.5))
		page.SetLineWidth(1)
		page.Rectangle(box.LLx, box.LLy, box.URx-box.LLx, box.URy-box.LLy)
		page.Stroke()
	}

	return page.Close()
}

// selectionBox maps the selection rectangle of an item, given in pixel
// coordinates, to the stroke path through the centres of the outline
// pixels.
func selectionBox(b rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: b.LLx + 0.5,
		LLy: b.LLy + 0.5,
		URx: b.URx + 0.5,
		URy: b.URy + 0.5,
	}
}

// pixelSquares returns the outlines of the unit squares covered by the
// pixels inside clip.  Each pixel is included at most once.
func pixelSquares(pixels []image.Point, clip image.Rectangle) *path.Data {
	seen := make(map[image.Point]bool, len(pixels))
	res := &path.Data{}
	for _, p := range pixels {
		if !p.In(clip) || seen[p] {
			continue
		}
		seen[p] = true

		x, y := float64(p.X), float64(p.Y)
		res.MoveTo(vec.Vec2{X: x, Y: y}).
			LineTo(vec.Vec2{X: x + 1, Y: y}).
			LineTo(vec.Vec2{X: x + 1, Y: y + 1}).
			LineTo(vec.Vec2{X: x, Y: y + 1}).
			Close()
	}
	return res
}

// Save writes the canvas to a file.  The format is chosen by the file name
// extension: ".png", ".bmp" or ".pdf".
func (c *Canvas) Save(fileName string) (err error) {
	ext := strings.ToLower(filepath.Ext(fileName))

	var write func(io.Writer) error
	switch ext {
	case ".png":
		write = c.WritePNG
	case ".bmp":
		write = c.WriteBMP
	case ".pdf":
		if err := c.WritePDF(fileName); err != nil {
			return err
		}
		Logger().Info("canvas saved", "file", fileName)
		return nil
	default:
		return fmt.Errorf("%s: %w", fileName, ErrFormat)
	}

	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := write(f); err != nil {
		return err
	}
	Logger().Info("canvas saved", "file", fileName)
	return nil
}
