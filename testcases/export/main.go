// seehuhn.de/go/pixels - integer rasterization and clipping primitives
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

// Command export writes the test cases, together with the pixels they
// produce, to a JSON file for use by external tools.
//
// Settings are read from the environment:
//
//	PIXELS_OUTPUT  output file (default testdata/testcases.json)
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/kelseyhightower/envconfig"

	"seehuhn.de/go/pixels"
	"seehuhn.de/go/pixels/testcases"
)

type config struct {
	Output string `envconfig:"OUTPUT" default:"testdata/testcases.json"`
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	var cfg config
	if err := envconfig.Process("pixels", &cfg); err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		slog.Error("export", "error", err)
		os.Exit(1)
	}
}

func run(cfg config) (err error) {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				return err
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

type jsonTestCase struct {
	Name   string   `json:"name"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Origin [2]int   `json:"origin"`
	Op     string   `json:"op"`
	Params any      `json:"params"`
	Pixels [][2]int `json:"pixels"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	name := category + "_" + tc.Name
	pts, err := testcases.Pixels(tc)
	if err != nil {
		return jsonTestCase{}, fmt.Errorf("%s: %w", name, err)
	}

	jtc := jsonTestCase{
		Name:   name,
		Width:  tc.Width,
		Height: tc.Height,
		Origin: point(tc.Origin),
		Pixels: make([][2]int, len(pts)),
	}
	for i, p := range pts {
		jtc.Pixels[i] = point(p)
	}

	switch op := tc.Op.(type) {
	case testcases.Line:
		jtc.Op = "line"
		jtc.Params = map[string]any{
			"p0":        point(op.P0),
			"p1":        point(op.P1),
			"algorithm": op.Alg.String(),
		}
	case testcases.Circle:
		jtc.Op = "circle"
		jtc.Params = map[string]any{"center": point(op.Center), "radius": op.Radius}
	case testcases.Arc:
		jtc.Op = "arc"
		jtc.Params = map[string]any{
			"center": point(op.Center),
			"radius": op.Radius,
			"start":  op.Start,
			"end":    op.End,
		}
	case testcases.RoundedSquare:
		jtc.Op = "rounded_square"
		jtc.Params = map[string]any{"center": point(op.Center), "size": op.Size}
	case testcases.ClipLines:
		jtc.Op = "clip_lines"
		segs := make([][2][2]int, len(op.Segments))
		for i, s := range op.Segments {
			segs[i] = [2][2]int{point(s.P0), point(s.P1)}
		}
		jtc.Params = map[string]any{"segments": segs, "clip": rectangle(op.Clip)}
	case testcases.ClipPolygon:
		jtc.Op = "clip_polygon"
		params := map[string]any{
			"polygon": polygon(op.Polygon),
			"clip":    rectangle(op.Clip),
			"method":  op.Method.String(),
			"fill":    op.Fill,
		}
		if op.Viewport != (pixels.Rect{}) {
			params["viewport"] = rectangle(op.Viewport)
		}
		jtc.Params = params
	case testcases.Fill:
		jtc.Op = "fill"
		rule := "nonzero"
		if op.Rule == testcases.EvenOdd {
			rule = "evenodd"
		}
		jtc.Params = map[string]any{"polygon": polygon(op.Polygon), "fill_rule": rule}
	}
	return jtc, nil
}

func point(p pixels.Point) [2]int {
	return [2]int{p.X, p.Y}
}

func rectangle(r pixels.Rect) [4]int {
	return [4]int{r.XMin, r.YMin, r.XMax, r.YMax}
}

func polygon(p pixels.Polygon) [][2]int {
	res := make([][2]int, len(p))
	for i, q := range p {
		res[i] = point(q)
	}
	return res
}
