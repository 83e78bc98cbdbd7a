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

package testcases

import (
	"fmt"
	"iter"

	"seehuhn.de/go/pixels"
)

// Render draws a test case into a grayscale buffer of size tc.Width by
// tc.Height with the given stride. The buffer must be pre-initialized with
// zeros, in row-major order with the top row first. Plotted pixels are set
// to 255.
func Render(tc TestCase, buf []byte, stride int) error {
	plot := pixels.Plot(buf, tc.Width, tc.Height, stride, tc.Origin)

	switch op := tc.Op.(type) {
	case Line:
		plotAll(pixels.Line(op.P0, op.P1, op.Alg), plot)

	case Circle:
		seq, err := pixels.Circle(op.Center, op.Radius)
		if err != nil {
			return err
		}
		plotAll(seq, plot)

	case Arc:
		seq, err := pixels.Arc(op.Center, op.Radius, op.Start, op.End)
		if err != nil {
			return err
		}
		plotAll(seq, plot)

	case RoundedSquare:
		seq, err := pixels.RoundedSquare(op.Center, op.Size)
		if err != nil {
			return err
		}
		plotAll(seq, plot)

	case ClipLines:
		c, err := pixels.NewClipper(op.Clip)
		if err != nil {
			return err
		}
		for _, s := range op.Segments {
			if s, ok := c.ClipLine(s); ok {
				plotAll(pixels.LineBresenham(s.P0, s.P1), plot)
			}
		}

	case ClipPolygon:
		c, err := pixels.NewClipper(op.Clip)
		if err != nil {
			return err
		}
		clipped := c.ClipPolygonWith(op.Polygon, op.Method)
		if op.Viewport != (pixels.Rect{}) {
			m, err := pixels.WindowToViewport(op.Clip, op.Viewport)
			if err != nil {
				return err
			}
			clipped = pixels.MapPolygon(m, clipped)
		}
		if op.Fill {
			f, err := pixels.NewFiller(tc.Bounds())
			if err != nil {
				return err
			}
			f.FillNonZero(clipped, pixels.PlotSpan(buf, tc.Width, tc.Height, stride, tc.Origin))
		}
		plotOutline(clipped, plot)

	case Fill:
		f, err := pixels.NewFiller(tc.Bounds())
		if err != nil {
			return err
		}
		span := pixels.PlotSpan(buf, tc.Width, tc.Height, stride, tc.Origin)
		if op.Rule == EvenOdd {
			f.FillEvenOdd(op.Polygon, span)
		} else {
			f.FillNonZero(op.Polygon, span)
		}

	default:
		return fmt.Errorf("%s: unsupported operation %T", tc.Name, tc.Op)
	}
	return nil
}

// Pixels renders a test case and returns the plotted pixels in scene
// coordinates, ordered by x and then y.
func Pixels(tc TestCase) ([]pixels.Point, error) {
	buf := make([]byte, tc.Width*tc.Height)
	if err := Render(tc, buf, tc.Width); err != nil {
		return nil, err
	}

	var res []pixels.Point
	for x := range tc.Width {
		for y := range tc.Height {
			if buf[(tc.Height-1-y)*tc.Width+x] != 0 {
				res = append(res, tc.Origin.Add(pixels.Pt(x, y)))
			}
		}
	}
	return res, nil
}

func plotAll(seq iter.Seq[pixels.Point], plot func(pixels.Point)) {
	for p := range seq {
		plot(p)
	}
}

// plotOutline draws the edges of a closed polygon.
func plotOutline(p pixels.Polygon, plot func(pixels.Point)) {
	for i, a := range p {
		b := p[(i+1)%len(p)]
		plotAll(pixels.LineBresenham(a, b), plot)
	}
}
