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

// Command genpdf writes one PDF file per test case, showing the plotted
// pixels as enlarged squares together with the clip window and the input
// outline where the scene has one.
//
// Settings are read from the environment:
//
//	PIXELS_OUT_DIR  output directory (default testdata/pdf)
//	PIXELS_SCALE    size of one pixel in PDF points (default 8)
//	PIXELS_DEBUG    enable debug logging (default false)
package main

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/kelseyhightower/envconfig"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/pixels"
	"seehuhn.de/go/pixels/testcases"
)

type config struct {
	OutDir string  `envconfig:"OUT_DIR" default:"testdata/pdf"`
	Scale  float64 `envconfig:"SCALE" default:"8"`
	Debug  bool    `envconfig:"DEBUG" default:"false"`
}

func main() {
	var cfg config
	if err := envconfig.Process("pixels", &cfg); err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	pixels.SetLogger(logger)

	if cfg.Scale <= 0 {
		slog.Error("invalid scale", "scale", cfg.Scale)
		os.Exit(1)
	}
	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		slog.Error("create output directory", "error", err)
		os.Exit(1)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(cfg.OutDir, name+".pdf")
			if err := generatePDF(tc, pdfPath, cfg.Scale); err != nil {
				slog.Error("generate PDF", "case", name, "error", err)
				os.Exit(1)
			}
			slog.Debug("wrote", "file", pdfPath)
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string, scale float64) error {
	pts, err := testcases.Pixels(tc)
	if err != nil {
		return err
	}

	paper := &pdf.Rectangle{
		URx: float64(tc.Width) * scale,
		URy: float64(tc.Height) * scale,
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background, white pixels
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, paper.URx, paper.URy)
	page.Fill()

	// From here on, scene coordinates are used. Pixel centres are at
	// integer positions.
	page.Transform(matrix.Matrix{
		scale, 0,
		0, scale,
		(0.5 - float64(tc.Origin.X)) * scale,
		(0.5 - float64(tc.Origin.Y)) * scale,
	})

	page.SetFillColor(color.DeviceGray(1))
	for _, p := range pts {
		page.Rectangle(float64(p.X)-0.5, float64(p.Y)-0.5, 1, 1)
	}
	if len(pts) > 0 {
		page.Fill()
	}

	var clip pixels.Rect
	var outline pixels.Polygon
	switch op := tc.Op.(type) {
	case testcases.ClipLines:
		clip = op.Clip
	case testcases.ClipPolygon:
		if op.Viewport == (pixels.Rect{}) {
			clip = op.Clip
			outline = op.Polygon
		}
	case testcases.Fill:
		outline = op.Polygon
	}

	page.SetLineWidth(0.15)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	if clip != (pixels.Rect{}) {
		g := clip.Geom()
		page.SetStrokeColor(color.DeviceGray(0.5))
		page.Rectangle(g.LLx, g.LLy, g.URx-g.LLx, g.URy-g.LLy)
		page.Stroke()
	}
	if len(outline) > 0 {
		page.SetStrokeColor(color.DeviceGray(0.75))
		for cmd, pts := range outline.Path() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Stroke()
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("close %s: %w", pdfPath, err)
	}
	return nil
}
