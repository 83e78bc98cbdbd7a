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

package pixels

import (
	"cmp"
	"math"
	"slices"
)

// edge is a non-horizontal polygon edge.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0), precomputed for x-intercept calculation
}

// crossing is the intersection of an edge with a scanline.
type crossing struct {
	x   float64
	dir int // +1 for upward edges, -1 for downward edges
}

// Filler computes the pixels inside a polygon, one scanline at a time.
// Create one instance and reuse it for multiple polygons. Internal buffers
// grow as needed but never shrink.
//
// Pixel (x, y) is inside if the point (x, y) is inside the polygon. Points
// on a left or bottom edge count as inside, points on a right or top edge
// do not. With this rule, polygons which share an edge never fill the same
// pixel, and an axis-aligned square with side length n covers n*n pixels.
//
// A Filler is not safe for concurrent use.
type Filler struct {
	// Clip restricts the output to this rectangle (bounds inclusive).
	Clip Rect

	edges     []edge     // edge list for the current polygon
	activeIdx []int      // indices of active edges
	crossings []crossing // crossings for the current scanline
}

// NewFiller returns a Filler with the given clip rectangle.
func NewFiller(clip Rect) (*Filler, error) {
	if err := clip.Validate(); err != nil {
		return nil, err
	}
	return &Filler{Clip: clip}, nil
}

// FillNonZero fills the polygon using the nonzero winding rule. The emit
// callback is called once for every run of inside pixels, with xMax
// exclusive. Rows are visited bottom to top, runs left to right.
func (f *Filler) FillNonZero(p Polygon, emit func(y, xMin, xMax int)) {
	f.fill(p, fillNonZero, emit)
}

// FillEvenOdd fills the polygon using the even-odd rule. The emit callback
// is called as for FillNonZero.
func (f *Filler) FillEvenOdd(p Polygon, emit func(y, xMin, xMax int)) {
	f.fill(p, fillEvenOdd, emit)
}

// fillRule identifies which fill rule to apply.
type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

// fill is the implementation shared by FillNonZero and FillEvenOdd.
func (f *Filler) fill(p Polygon, rule fillRule, emit func(y, xMin, xMax int)) {
	yMin, yMax, ok := f.collectEdges(p)
	if !ok {
		return
	}

	// Sort edges by y_min
	slices.SortFunc(f.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	f.activeIdx = f.activeIdx[:0]
	nextEdge := 0
	for y := yMin; y <= yMax; y++ {
		yf := float64(y)

		// Add edges that start at or below this scanline
		for nextEdge < len(f.edges) && min(f.edges[nextEdge].y0, f.edges[nextEdge].y1) <= yf {
			f.activeIdx = append(f.activeIdx, nextEdge)
			nextEdge++
		}

		// Collect crossings; edges cover [y_min, y_max)
		f.crossings = f.crossings[:0]
		for i := 0; i < len(f.activeIdx); {
			e := &f.edges[f.activeIdx[i]]
			if max(e.y0, e.y1) <= yf {
				// Remove from active list (swap with last)
				f.activeIdx[i] = f.activeIdx[len(f.activeIdx)-1]
				f.activeIdx = f.activeIdx[:len(f.activeIdx)-1]
				continue
			}
			dir := 1
			if e.y1 < e.y0 {
				dir = -1
			}
			f.crossings = append(f.crossings, crossing{
				x:   e.x0 + e.dxdy*(yf-e.y0),
				dir: dir,
			})
			i++
		}
		if len(f.crossings) < 2 {
			continue
		}
		slices.SortFunc(f.crossings, func(a, b crossing) int {
			return cmp.Compare(a.x, b.x)
		})

		winding := 0
		for i, c := range f.crossings[:len(f.crossings)-1] {
			if rule == fillNonZero {
				winding += c.dir
			} else {
				winding ^= 1
			}
			if winding == 0 {
				continue
			}
			xl := int(math.Ceil(c.x))
			xr := int(math.Ceil(f.crossings[i+1].x))
			f.emitSpan(y, xl, xr, emit)
		}
	}
}

// emitSpan clamps the half-open span [xl, xr) to the clip rectangle and
// passes it on if it is not empty.
func (f *Filler) emitSpan(y, xl, xr int, emit func(y, xMin, xMax int)) {
	xl = max(xl, f.Clip.XMin)
	xr = min(xr, f.Clip.XMax+1)
	if xl < xr {
		emit(y, xl, xr)
	}
}

// collectEdges builds the edge list of the closed polygon p and returns
// the range of scanlines to visit, clamped to the clip rectangle.
func (f *Filler) collectEdges(p Polygon) (yMin, yMax int, ok bool) {
	f.edges = f.edges[:0]
	if len(p) < 3 {
		return 0, 0, false
	}

	lo, hi := p[0].Y, p[0].Y
	for i, a := range p {
		b := p[(i+1)%len(p)]
		lo = min(lo, a.Y)
		hi = max(hi, a.Y)

		// Skip horizontal edges
		if a.Y == b.Y {
			continue
		}
		f.edges = append(f.edges, edge{
			x0: float64(a.X), y0: float64(a.Y),
			x1: float64(b.X), y1: float64(b.Y),
			dxdy: float64(b.X-a.X) / float64(b.Y-a.Y),
		})
	}
	if len(f.edges) == 0 {
		return 0, 0, false
	}

	// The top scanline is never inside, since edges cover [y_min, y_max).
	yMin = max(lo, f.Clip.YMin)
	yMax = min(hi-1, f.Clip.YMax)
	if yMin > yMax {
		return 0, 0, false
	}
	return yMin, yMax, true
}
