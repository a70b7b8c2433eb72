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


// Command genpdf generates reference images for the test cases.
// Every case is run as a drawing script; the script saves a BMP file and
// the resulting canvas is also written as PDF and PNG.
package main

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"seehuhn.de/go/raster/canvas"
	"seehuhn.de/go/raster/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, name); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(tc testcases.TestCase, name string) error {
	in := &canvas.Interpreter{OutDir: refDir}
	if err := in.Run(strings.NewReader(tc.Script(tc.Name, name))); err != nil {
		return err
	}
	if err := in.Canvas.Save(filepath.Join(refDir, name+".pdf")); err != nil {
		return err
	}
	return in.Canvas.Save(filepath.Join(refDir, name+".png"))
}
