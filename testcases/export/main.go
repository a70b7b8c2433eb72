// Command export writes all test cases, together with the pixels computed
// for them, to testdata/testcases.json.  The file can be used to compare
// other implementations against this package.
package main

import (
	"encoding/json"
	"image"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/raster"
	"seehuhn.de/go/raster/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string   `json:"name"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	Op        string   `json:"op"`
	Algorithm string   `json:"algorithm,omitempty"`
	Points    [][2]int `json:"points"`
	Window    []int    `json:"window,omitempty"`
	Pixels    [][2]int `json:"pixels"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Points: pointsToJSON(tc.Points),
	}

	var pixels []image.Point
	switch op := tc.Op.(type) {
	case testcases.Line:
		jtc.Op = "line"
		jtc.Algorithm = op.Algorithm
		pixels = raster.Line(tc.Points[0], tc.Points[1], mustParse(raster.ParseLineAlgorithm, op.Algorithm))
	case testcases.Polygon:
		jtc.Op = "polygon"
		jtc.Algorithm = op.Algorithm
		pixels = raster.Polygon(tc.Points, mustParse(raster.ParseLineAlgorithm, op.Algorithm))
	case testcases.Ellipse:
		jtc.Op = "ellipse"
		pixels = raster.Ellipse(tc.Points[0], tc.Points[1])
	case testcases.Curve:
		jtc.Op = "curve"
		jtc.Algorithm = op.Algorithm
		pixels = raster.Curve(tc.Points, mustParse(raster.ParseCurveAlgorithm, op.Algorithm))
	case testcases.Clip:
		jtc.Op = "clip"
		jtc.Algorithm = op.Algorithm
		jtc.Window = []int{op.XMin, op.YMin, op.XMax, op.YMax}
		w := raster.Window{XMin: op.XMin, YMin: op.YMin, XMax: op.XMax, YMax: op.YMax}
		alg := mustParse(raster.ParseClipAlgorithm, op.Algorithm)
		if q0, q1, ok := raster.ClipLine(tc.Points[0], tc.Points[1], w, alg); ok {
			pixels = raster.Line(q0, q1, raster.Bresenham)
		}
	}
	jtc.Pixels = pointsToJSON(pixels)
	return jtc
}

func pointsToJSON(pts []image.Point) [][2]int {
	res := make([][2]int, len(pts))
	for i, p := range pts {
		res[i] = [2]int{p.X, p.Y}
	}
	return res
}

func mustParse[T any](parse func(string) (T, error), tag string) T {
	alg, err := parse(tag)
	if err != nil {
		panic(err)
	}
	return alg
}
