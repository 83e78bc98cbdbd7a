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
	"math"

	"seehuhn.de/go/pixels"
)

// pentagon crosses all four sides of the window [12,51]x[12,51].
var pentagon = pixels.Polygon{
	{X: 5, Y: 20}, {X: 40, Y: 2}, {X: 60, Y: 30}, {X: 35, Y: 60}, {X: 8, Y: 50},
}

var clipCases = []TestCase{
	{
		Name:   "lines",
		Width:  64,
		Height: 64,
		Op: ClipLines{
			Segments: []pixels.Segment{
				pixels.Seg(0, 32, 63, 32),
				pixels.Seg(32, 0, 32, 63),
				pixels.Seg(0, 0, 63, 63),
				pixels.Seg(0, 0, 10, 10), // rejected
			},
			Clip: pixels.NewRect(16, 16, 47, 47),
		},
		Pixels: 94,
	},
	{
		Name:   "polygon_edge_walk",
		Width:  64,
		Height: 64,
		Op: ClipPolygon{
			Polygon: pentagon,
			Clip:    pixels.NewRect(12, 12, 51, 51),
			Method:  pixels.EdgeWalk,
		},
	},
	{
		Name:   "polygon_half_planes",
		Width:  64,
		Height: 64,
		Op: ClipPolygon{
			Polygon: pentagon,
			Clip:    pixels.NewRect(12, 12, 51, 51),
			Method:  pixels.HalfPlanes,
		},
	},
	{
		// the polygon surrounds the clip window: the edge walk loses everything
		Name:   "enclosing_edge_walk",
		Width:  64,
		Height: 64,
		Op: ClipPolygon{
			Polygon: pixels.Polygon{{X: 0, Y: 0}, {X: 63, Y: 0}, {X: 63, Y: 63}, {X: 0, Y: 63}},
			Clip:    pixels.NewRect(16, 16, 47, 47),
			Method:  pixels.EdgeWalk,
		},
	},
	{
		Name:   "enclosing_half_planes",
		Width:  64,
		Height: 64,
		Op: ClipPolygon{
			Polygon: pixels.Polygon{{X: 0, Y: 0}, {X: 63, Y: 0}, {X: 63, Y: 63}, {X: 0, Y: 63}},
			Clip:    pixels.NewRect(16, 16, 47, 47),
			Method:  pixels.HalfPlanes,
		},
		Pixels: 4 * 31,
	},
	{
		// the polygon clipping demo: the clipped polygon is filled and
		// shown in a viewport
		Name:   "viewport",
		Width:  64,
		Height: 64,
		Op: ClipPolygon{
			Polygon:  pixels.Polygon{{X: 0, Y: 20}, {X: 30, Y: 5}, {X: 55, Y: 30}, {X: 25, Y: 60}},
			Clip:     pixels.NewRect(10, 10, 40, 50),
			Method:   pixels.HalfPlanes,
			Fill:     true,
			Viewport: pixels.NewRect(0, 0, 63, 63),
		},
	},
}

var fillCases = []TestCase{
	{
		Name:   "square",
		Width:  32,
		Height: 32,
		Op: Fill{
			Polygon: pixels.Polygon{{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 20}, {X: 10, Y: 20}},
		},
		Pixels: 100,
	},
	{
		Name:   "triangle",
		Width:  32,
		Height: 32,
		Op: Fill{
			Polygon: pixels.Polygon{{X: 10, Y: 10}, {X: 14, Y: 10}, {X: 10, Y: 14}},
		},
		Pixels: 10,
	},
	{
		Name:   "star_nonzero",
		Width:  64,
		Height: 64,
		Op:     Fill{Polygon: fivePointStar(32, 32, 25), Rule: NonZero},
	},
	{
		Name:   "star_evenodd",
		Width:  64,
		Height: 64,
		Op:     Fill{Polygon: fivePointStar(32, 32, 25), Rule: EvenOdd},
	},
}

// fivePointStar builds a five-pointed star (self-intersecting) with
// vertices rounded to the pixel grid.
func fivePointStar(cx, cy, r float64) pixels.Polygon {
	var pts [5]pixels.Point
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 + math.Pi/2
		pts[i] = pixels.Point{
			X: int(math.Round(cx + r*math.Cos(angle))),
			Y: int(math.Round(cy + r*math.Sin(angle))),
		}
	}

	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	order := []int{0, 2, 4, 1, 3}
	star := make(pixels.Polygon, len(order))
	for i, j := range order {
		star[i] = pts[j]
	}
	return star
}
