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


// Command rasterdraw executes drawing scripts.
//
// The script is read from the file given by -input, or from standard
// input.  Every saveCanvas command writes a BMP file into the -output
// directory.  See [canvas.Interpreter] for the script format.
package main

import (
	"flag"
	"io"
	"log/slog"
	"os"

	"seehuhn.de/go/raster/canvas"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	inputFile := flag.String("input", "", "script file (if not provided, stdin is used)")
	outDir := flag.String("output", ".", "directory for saved images")
	width := flag.Int("width", canvas.DefaultSize, "initial canvas width")
	height := flag.Int("height", canvas.DefaultSize, "initial canvas height")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	canvas.SetLogger(logger)

	if err := run(*inputFile, *outDir, *width, *height); err != nil {
		logger.Error("script failed", "input", *inputFile, "err", err)
		os.Exit(1)
	}
}

func run(inputFile, outDir string, width, height int) error {
	var input io.Reader = os.Stdin
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	in := &canvas.Interpreter{
		Canvas: canvas.New(width, height),
		OutDir: outDir,
	}
	if err := in.Run(input); err != nil {
		return err
	}
	canvas.Logger().Debug("done", "items", len(in.Canvas.Items()))
	return nil
}
