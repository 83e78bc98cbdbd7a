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

// Package testcases defines named demo scenes for the pixels package.
// The scenes are used by the tests and by the reference generators in the
// genpdf and export subdirectories.
package testcases

import (
	"seehuhn.de/go/pixels"
)

// TestCase defines a single scene.
type TestCase struct {
	Name   string       // lowercase a-z, 0-9 and _ only
	Width  int          // canvas width in pixels
	Height int          // canvas height in pixels
	Origin pixels.Point // coordinates of the bottom-left canvas pixel
	Op     Operation    // what to draw

	// Pixels is the expected number of plotted pixels,
	// or 0 if the scene is not checked this way.
	Pixels int
}

// Bounds returns the canvas area in scene coordinates.
func (tc TestCase) Bounds() pixels.Rect {
	return pixels.NewRect(tc.Origin.X, tc.Origin.Y,
		tc.Origin.X+tc.Width-1, tc.Origin.Y+tc.Height-1)
}

// Operation is the drawing operation of a scene.
type Operation interface {
	isOperation()
}

// Line draws a single line segment.
type Line struct {
	P0, P1 pixels.Point
	Alg    pixels.Algorithm
}

func (Line) isOperation() {}

// Circle draws a full circle.
type Circle struct {
	Center pixels.Point
	Radius int
}

func (Circle) isOperation() {}

// Arc draws a circular arc, angles in radians.
type Arc struct {
	Center     pixels.Point
	Radius     int
	Start, End float64
}

func (Arc) isOperation() {}

// RoundedSquare draws a square outline with rounded corners.
type RoundedSquare struct {
	Center pixels.Point
	Size   int
}

func (RoundedSquare) isOperation() {}

// ClipLines clips a set of segments and draws the visible parts.
type ClipLines struct {
	Segments []pixels.Segment
	Clip     pixels.Rect
}

func (ClipLines) isOperation() {}

// ClipPolygon clips a polygon and draws the outline of the result.
type ClipPolygon struct {
	Polygon pixels.Polygon
	Clip    pixels.Rect
	Method  pixels.PolygonMethod

	// Fill, if set, fills the interior of the clipped polygon.
	Fill bool

	// Viewport, if non-zero, is the rectangle the clip window is mapped
	// to before drawing.
	Viewport pixels.Rect
}

func (ClipPolygon) isOperation() {}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// Fill fills a polygon.
type Fill struct {
	Polygon pixels.Polygon
	Rule    FillRule
}

func (Fill) isOperation() {}
