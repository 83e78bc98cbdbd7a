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
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Clipper clips segments and polygons against an axis-aligned rectangle.
// A Clipper has no mutable state and is safe for concurrent use.
type Clipper struct {
	clip Rect
}

// NewClipper returns a Clipper for the given clip window.
func NewClipper(clip Rect) (*Clipper, error) {
	if err := clip.Validate(); err != nil {
		return nil, fmt.Errorf("clip window: %w", err)
	}
	return &Clipper{clip: clip}, nil
}

// Clip returns the clip window.
func (c *Clipper) Clip() Rect {
	return c.clip
}

// maxClipIterations bounds the Cohen-Sutherland loop. Every iteration
// clears one boundary bit, so four suffice in exact arithmetic; the extra
// rounds absorb rounding noise at the corners.
const maxClipIterations = 8

// ClipLine clips s against the clip window with the Cohen-Sutherland
// algorithm. It returns the visible part of the segment and true, or
// false if the segment lies entirely outside the window.
//
// Intersections are computed in floating point and the end points are
// rounded to the nearest integer only once, at the end. Clipping an
// accepted result again returns it unchanged.
func (c *Clipper) ClipLine(s Segment) (Segment, bool) {
	v0, v1, ok := c.clipVec(s.P0.Vec(), s.P1.Vec())
	if !ok {
		return Segment{}, false
	}
	return Segment{P0: roundVec(v0), P1: roundVec(v1)}, true
}

// clipVec is the real-valued core of ClipLine.
func (c *Clipper) clipVec(v0, v1 vec.Vec2) (vec.Vec2, vec.Vec2, bool) {
	r := c.clip
	code0 := r.classifyVec(v0)
	code1 := r.classifyVec(v1)

	for range maxClipIterations {
		if code0|code1 == Inside {
			return v0, v1, true
		}
		if code0&code1 != 0 {
			return v0, v1, false
		}

		codeOut := code0
		if codeOut == Inside {
			codeOut = code1
		}

		d := v1.Sub(v0)
		var p vec.Vec2
		switch {
		case codeOut&Top != 0:
			p = vec.Vec2{X: v0.X, Y: float64(r.YMax)}
			if d.Y != 0 {
				p.X = v0.X + d.X*(float64(r.YMax)-v0.Y)/d.Y
			}
		case codeOut&Bottom != 0:
			p = vec.Vec2{X: v0.X, Y: float64(r.YMin)}
			if d.Y != 0 {
				p.X = v0.X + d.X*(float64(r.YMin)-v0.Y)/d.Y
			}
		case codeOut&Right != 0:
			p = vec.Vec2{X: float64(r.XMax), Y: v0.Y}
			if d.X != 0 {
				p.Y = v0.Y + d.Y*(float64(r.XMax)-v0.X)/d.X
			}
		case codeOut&Left != 0:
			p = vec.Vec2{X: float64(r.XMin), Y: v0.Y}
			if d.X != 0 {
				p.Y = v0.Y + d.Y*(float64(r.XMin)-v0.X)/d.X
			}
		}
		p = r.snapVec(p)

		if codeOut == code0 {
			v0 = p
			code0 = r.classifyVec(v0)
		} else {
			v1 = p
			code1 = r.classifyVec(v1)
		}
	}

	Logger().Debug("line clipping did not converge",
		"p0", v0, "p1", v1, "clip", r)
	return v0, v1, false
}

// boundarySnap is the distance below which an intersection point is moved
// onto a window bound. A segment between integer points which misses the
// window passes it at a distance of at least 1/max(|dx|,|dy|).
const boundarySnap = 1e-9

// snapVec moves coordinates which lie within boundarySnap of a bound of r
// onto that bound, so that a segment through a corner of the window is
// not lost to rounding errors.
func (r Rect) snapVec(v vec.Vec2) vec.Vec2 {
	snap := func(x float64, lo, hi int) float64 {
		switch {
		case math.Abs(x-float64(lo)) < boundarySnap:
			return float64(lo)
		case math.Abs(x-float64(hi)) < boundarySnap:
			return float64(hi)
		}
		return x
	}
	return vec.Vec2{
		X: snap(v.X, r.XMin, r.XMax),
		Y: snap(v.Y, r.YMin, r.YMax),
	}
}

// PolygonMethod selects the polygon clipping algorithm.
type PolygonMethod int

const (
	// EdgeWalk clips every polygon edge on its own and collects the end
	// points of the visible parts, see [Clipper.ClipPolygon].
	EdgeWalk PolygonMethod = iota

	// HalfPlanes is the Sutherland-Hodgman algorithm, see
	// [Clipper.ClipPolygonHalfPlanes].
	HalfPlanes
)

func (m PolygonMethod) String() string {
	switch m {
	case EdgeWalk:
		return "edge walk"
	case HalfPlanes:
		return "half planes"
	default:
		return fmt.Sprintf("PolygonMethod(%d)", int(m))
	}
}

// ClipPolygonWith clips p using the given method.
// It panics if m is not a known method.
func (c *Clipper) ClipPolygonWith(p Polygon, m PolygonMethod) Polygon {
	switch m {
	case EdgeWalk:
		return c.ClipPolygon(p)
	case HalfPlanes:
		return c.ClipPolygonHalfPlanes(p)
	default:
		panic("pixels: unknown polygon clipping method " + m.String())
	}
}

// ClipPolygon clips the edges of p one by one with [Clipper.ClipLine].
// For every edge which is not rejected, the start point of the visible
// part is appended to the result, followed by its end point unless the
// end point equals the start point.
//
// This keeps the parts of the outline which lie inside the clip window,
// but it does not add the pieces of the window boundary needed to close
// the clipped shape. For a polygon which surrounds the whole window every
// edge is rejected and the result is empty. Use
// [Clipper.ClipPolygonHalfPlanes] for a geometrically correct result.
//
// The result is empty if p has fewer than three vertices, or if fewer than
// three points survive.
func (c *Clipper) ClipPolygon(p Polygon) Polygon {
	n := len(p)
	if n < 3 {
		return nil
	}

	var out Polygon
	for i, start := range p {
		end := p[(i+1)%n]
		s, ok := c.ClipLine(Segment{P0: start, P1: end})
		if !ok {
			continue
		}
		out = append(out, s.P0)
		if out[len(out)-1] != s.P1 {
			out = append(out, s.P1)
		}
	}

	if len(out) < 3 {
		Logger().Debug("polygon clipped away",
			"method", EdgeWalk, "vertices", n, "survivors", len(out))
		return nil
	}
	return out
}

// clipPlane describes one boundary half-plane of the clip window.
type clipPlane struct {
	inside    func(v vec.Vec2) bool
	intersect func(a, b vec.Vec2) vec.Vec2
}

// planes returns the four boundary half-planes in the order left, right,
// bottom, top.
func (c *Clipper) planes() [4]clipPlane {
	xMin := float64(c.clip.XMin)
	xMax := float64(c.clip.XMax)
	yMin := float64(c.clip.YMin)
	yMax := float64(c.clip.YMax)

	atX := func(x float64) func(a, b vec.Vec2) vec.Vec2 {
		return func(a, b vec.Vec2) vec.Vec2 {
			t := (x - a.X) / (b.X - a.X)
			return vec.Vec2{X: x, Y: a.Y + t*(b.Y-a.Y)}
		}
	}
	atY := func(y float64) func(a, b vec.Vec2) vec.Vec2 {
		return func(a, b vec.Vec2) vec.Vec2 {
			t := (y - a.Y) / (b.Y - a.Y)
			return vec.Vec2{X: a.X + t*(b.X-a.X), Y: y}
		}
	}

	return [4]clipPlane{
		{inside: func(v vec.Vec2) bool { return v.X >= xMin }, intersect: atX(xMin)},
		{inside: func(v vec.Vec2) bool { return v.X <= xMax }, intersect: atX(xMax)},
		{inside: func(v vec.Vec2) bool { return v.Y >= yMin }, intersect: atY(yMin)},
		{inside: func(v vec.Vec2) bool { return v.Y <= yMax }, intersect: atY(yMax)},
	}
}

// ClipPolygonHalfPlanes clips p with the Sutherland-Hodgman algorithm:
// the polygon is clipped against the left, right, bottom and top boundary
// in turn, each pass consuming the output of the previous one. Parts of
// the window boundary are inserted where the polygon leaves and re-enters
// the window, so the result is always a closed outline.
//
// Vertices are rounded to integers after the last pass. Consecutive
// duplicate vertices (including last and first) are merged. The result is
// empty if p has fewer than three vertices, or if fewer than three
// vertices remain.
func (c *Clipper) ClipPolygonHalfPlanes(p Polygon) Polygon {
	if len(p) < 3 {
		return nil
	}

	output := make([]vec.Vec2, len(p))
	for i, q := range p {
		output[i] = q.Vec()
	}
	var input []vec.Vec2
	for _, plane := range c.planes() {
		if len(output) == 0 {
			break
		}
		input, output = output, input[:0]

		prev := input[len(input)-1]
		for _, cur := range input {
			if plane.inside(cur) {
				if !plane.inside(prev) {
					output = append(output, plane.intersect(prev, cur))
				}
				output = append(output, cur)
			} else if plane.inside(prev) {
				output = append(output, plane.intersect(prev, cur))
			}
			prev = cur
		}
	}

	var out Polygon
	for _, v := range output {
		q := roundVec(v)
		if len(out) > 0 && out[len(out)-1] == q {
			continue
		}
		out = append(out, q)
	}
	for len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}

	if len(out) < 3 {
		Logger().Debug("polygon clipped away",
			"method", HalfPlanes, "vertices", len(p), "survivors", len(out))
		return nil
	}
	return out
}
