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
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"seehuhn.de/go/raster"
)

var (
	// ErrUnknownCommand is returned for script lines starting with an
	// unknown command word.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrSyntax is returned for script lines with malformed arguments.
	ErrSyntax = errors.New("syntax error")
)

// Minimum number of points accepted by drawPolygon and drawCurve.
// B-spline curves with fewer than four control points are accepted and
// draw nothing.
const (
	minPolygonVertices = 3
	minCurvePoints     = 2
)

// DefaultSize is the width and height of the canvas used by an
// [Interpreter] before the first resetCanvas command.
const DefaultSize = 1000

// Interpreter executes drawing scripts.
//
// A script has one command per line.  Fields are separated by white
// space and blank lines are ignored.  The commands are
//
//	resetCanvas W H
//	saveCanvas NAME
//	setColor R G B
//	drawLine ID X0 Y0 X1 Y1 ALG
//	drawPolygon ID X0 Y0 X1 Y1 ... ALG
//	drawEllipse ID X0 Y0 X1 Y1
//	drawCurve ID X0 Y0 X1 Y1 ... ALG
//	translate ID DX DY
//	rotate ID X Y DEG
//	scale ID X Y S
//	clip ID X0 Y0 X1 Y1 ALG
//
// ALG is one of the tags accepted by [raster.ParseLineAlgorithm],
// [raster.ParseCurveAlgorithm] or [raster.ParseClipAlgorithm].
// saveCanvas writes the file NAME.bmp in OutDir.
type Interpreter struct {
	// Canvas receives the drawing commands.  If Canvas is nil, Run
	// allocates a canvas of size DefaultSize×DefaultSize.
	Canvas *Canvas

	// OutDir is the directory for saveCanvas.  The empty string means the
	// current directory.
	OutDir string
}

// Run executes the script read from r.  It stops at the first failing
// command and returns its error, prefixed with the line number.
func (in *Interpreter) Run(r io.Reader) error {
	if in.Canvas == nil {
		in.Canvas = New(DefaultSize, DefaultSize)
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if err := in.Exec(fields[0], fields[1:]); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

// Exec executes a single command.
func (in *Interpreter) Exec(cmd string, args []string) error {
	if in.Canvas == nil {
		in.Canvas = New(DefaultSize, DefaultSize)
	}
	run, ok := commands[cmd]
	if !ok {
		return fmt.Errorf("%q: %w", cmd, ErrUnknownCommand)
	}
	Logger().Debug("exec", "cmd", cmd, "args", args)
	return run(in, args)
}

var commands map[string]func(*Interpreter, []string) error

func init() {
	commands = map[string]func(*Interpreter, []string) error{
		"resetCanvas": (*Interpreter).resetCanvas,
		"saveCanvas":  (*Interpreter).saveCanvas,
		"setColor":    (*Interpreter).setColor,
		"drawLine":    (*Interpreter).drawLine,
		"drawPolygon": (*Interpreter).drawPolygon,
		"drawEllipse": (*Interpreter).drawEllipse,
		"drawCurve":   (*Interpreter).drawCurve,
		"translate":   (*Interpreter).translate,
		"rotate":      (*Interpreter).rotate,
		"scale":       (*Interpreter).scale,
		"clip":        (*Interpreter).clip,
	}
}

func (in *Interpreter) resetCanvas(args []string) error {
	v, err := ints("resetCanvas", args, 2)
	if err != nil {
		return err
	}
	if v[0] <= 0 || v[1] <= 0 {
		return fmt.Errorf("resetCanvas: invalid size %dx%d: %w", v[0], v[1], ErrSyntax)
	}
	in.Canvas.Reset(v[0], v[1])
	return nil
}

func (in *Interpreter) saveCanvas(args []string) error {
	if len(args) != 1 {
		return argCount("saveCanvas", args, 1)
	}
	return in.Canvas.Save(filepath.Join(in.OutDir, args[0]+".bmp"))
}

func (in *Interpreter) setColor(args []string) error {
	v, err := ints("setColor", args, 3)
	if err != nil {
		return err
	}
	for _, x := range v {
		if x < 0 || x > 255 {
			return fmt.Errorf("setColor: component %d out of range: %w", x, ErrSyntax)
		}
	}
	in.Canvas.SetColor(color.RGBA{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2]), A: 0xff})
	return nil
}

func (in *Interpreter) drawLine(args []string) error {
	if len(args) != 6 {
		return argCount("drawLine", args, 6)
	}
	p, err := points("drawLine", args[1:5])
	if err != nil {
		return err
	}
	alg, err := raster.ParseLineAlgorithm(args[5])
	if err != nil {
		return err
	}
	in.Canvas.DrawLine(args[0], p[0], p[1], alg)
	return nil
}

func (in *Interpreter) drawPolygon(args []string) error {
	if len(args) < 2+2*minPolygonVertices || len(args)%2 != 0 {
		return fmt.Errorf("drawPolygon: want ID, at least %d coordinate pairs and ALG, got %d arguments: %w",
			minPolygonVertices, len(args), ErrSyntax)
	}
	p, err := points("drawPolygon", args[1:len(args)-1])
	if err != nil {
		return err
	}
	alg, err := raster.ParseLineAlgorithm(args[len(args)-1])
	if err != nil {
		return err
	}
	in.Canvas.DrawPolygon(args[0], p, alg)
	return nil
}

func (in *Interpreter) drawEllipse(args []string) error {
	if len(args) != 5 {
		return argCount("drawEllipse", args, 5)
	}
	p, err := points("drawEllipse", args[1:])
	if err != nil {
		return err
	}
	in.Canvas.DrawEllipse(args[0], p[0], p[1])
	return nil
}

func (in *Interpreter) drawCurve(args []string) error {
	if len(args) < 2+2*minCurvePoints || len(args)%2 != 0 {
		return fmt.Errorf("drawCurve: want ID, at least %d coordinate pairs and ALG, got %d arguments: %w",
			minCurvePoints, len(args), ErrSyntax)
	}
	p, err := points("drawCurve", args[1:len(args)-1])
	if err != nil {
		return err
	}
	alg, err := raster.ParseCurveAlgorithm(args[len(args)-1])
	if err != nil {
		return err
	}
	in.Canvas.DrawCurve(args[0], p, alg)
	return nil
}

func (in *Interpreter) translate(args []string) error {
	if len(args) != 3 {
		return argCount("translate", args, 3)
	}
	v, err := ints("translate", args[1:], 2)
	if err != nil {
		return err
	}
	return in.Canvas.Translate(args[0], v[0], v[1])
}

func (in *Interpreter) rotate(args []string) error {
	id, pivot, x, err := pivotArgs("rotate", args)
	if err != nil {
		return err
	}
	return in.Canvas.Rotate(id, pivot, x)
}

func (in *Interpreter) scale(args []string) error {
	id, pivot, x, err := pivotArgs("scale", args)
	if err != nil {
		return err
	}
	return in.Canvas.Scale(id, pivot, x)
}

func (in *Interpreter) clip(args []string) error {
	if len(args) != 6 {
		return argCount("clip", args, 6)
	}
	p, err := points("clip", args[1:5])
	if err != nil {
		return err
	}
	alg, err := raster.ParseClipAlgorithm(args[5])
	if err != nil {
		return err
	}
	return in.Canvas.Clip(args[0], raster.NewWindow(p[0], p[1]), alg)
}

// pivotArgs parses the arguments "ID X Y F" of rotate and scale.
func pivotArgs(cmd string, args []string) (string, image.Point, float64, error) {
	if len(args) != 4 {
		return "", image.Point{}, 0, argCount(cmd, args, 4)
	}
	p, err := points(cmd, args[1:3])
	if err != nil {
		return "", image.Point{}, 0, err
	}
	x, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return "", image.Point{}, 0, fmt.Errorf("%s: %q is not a number: %w", cmd, args[3], ErrSyntax)
	}
	return args[0], p[0], x, nil
}

func ints(cmd string, args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, argCount(cmd, args, n)
	}
	res := make([]int, n)
	for i, s := range args {
		x, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not an integer: %w", cmd, s, ErrSyntax)
		}
		res[i] = x
	}
	return res, nil
}

// points parses x y coordinate pairs.
func points(cmd string, args []string) ([]image.Point, error) {
	v, err := ints(cmd, args, len(args))
	if err != nil {
		return nil, err
	}
	res := make([]image.Point, len(v)/2)
	for i := range res {
		res[i] = image.Pt(v[2*i], v[2*i+1])
	}
	return res, nil
}

func argCount(cmd string, args []string, want int) error {
	return fmt.Errorf("%s: want %d arguments, got %d: %w", cmd, want, len(args), ErrSyntax)
}
