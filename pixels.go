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

// Package pixels implements integer rasterization and clipping primitives:
// DDA and Bresenham lines, midpoint circles and arcs, Cohen-Sutherland line
// clipping and polygon clipping against an axis-aligned rectangle.
//
// The package never draws anything itself. Rasterizers return sequences of
// pixel coordinates, and the caller decides how to turn these into visible
// output (see [Plot] for a simple grayscale buffer target).
//
// Coordinates follow the usual mathematical convention: x grows to the
// right and y grows upwards.
package pixels

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrInvalidArgument is returned (wrapped) when an operation receives
// parameters outside its domain, for example a negative radius.
var ErrInvalidArgument = errors.New("invalid argument")

// Point is a pixel position.
type Point struct {
	X, Y int
}

// Pt is a shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec converts p to a real-valued vector.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// less orders points by x, then by y.
func (p Point) less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// roundVec rounds both coordinates of v half away from zero.
func roundVec(v vec.Vec2) Point {
	return Point{X: roundInt(v.X), Y: roundInt(v.Y)}
}

// Segment is a directed line segment.
type Segment struct {
	P0, P1 Point
}

// Seg is a shorthand for a Segment from (x0, y0) to (x1, y1).
func Seg(x0, y0, x1, y1 int) Segment {
	return Segment{P0: Point{X: x0, Y: y0}, P1: Point{X: x1, Y: y1}}
}

// Reverse returns the segment with its end points swapped.
func (s Segment) Reverse() Segment {
	return Segment{P0: s.P1, P1: s.P0}
}

// Rect is an axis-aligned rectangle. All four bounds are inclusive:
// a point on the boundary belongs to the rectangle.
type Rect struct {
	XMin, YMin int
	XMax, YMax int
}

// NewRect returns the rectangle with the given bounds.
// The bounds are not checked; use [Rect.Validate] for that.
func NewRect(xMin, yMin, xMax, yMax int) Rect {
	return Rect{XMin: xMin, YMin: yMin, XMax: xMax, YMax: yMax}
}

// Validate checks that XMin <= XMax and YMin <= YMax.
func (r Rect) Validate() error {
	if r.XMin > r.XMax || r.YMin > r.YMax {
		return fmt.Errorf("rectangle [%d,%d]x[%d,%d]: %w",
			r.XMin, r.XMax, r.YMin, r.YMax, ErrInvalidArgument)
	}
	return nil
}

// Contains reports whether p lies inside r or on its boundary.
func (r Rect) Contains(p Point) bool {
	return r.Classify(p) == Inside
}

// Dx returns the width of r, measured between the bounds.
func (r Rect) Dx() int {
	return r.XMax - r.XMin
}

// Dy returns the height of r, measured between the bounds.
func (r Rect) Dy() int {
	return r.YMax - r.YMin
}

// Geom converts r to a [rect.Rect].
func (r Rect) Geom() rect.Rect {
	return rect.Rect{
		LLx: float64(r.XMin),
		LLy: float64(r.YMin),
		URx: float64(r.XMax),
		URy: float64(r.YMax),
	}
}

// Polygon is a closed polygon. The last vertex connects back to the first.
type Polygon []Point

// Path returns the outline of the polygon as a closed path.
// An empty polygon gives an empty path.
func (p Polygon) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(p) == 0 {
			return
		}
		if !yield(path.CmdMoveTo, []vec.Vec2{p[0].Vec()}) {
			return
		}
		for _, q := range p[1:] {
			if !yield(path.CmdLineTo, []vec.Vec2{q.Vec()}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}
