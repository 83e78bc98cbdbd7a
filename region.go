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
	"strings"

	"seehuhn.de/go/geom/vec"
)

// RegionCode is the Cohen-Sutherland out-code of a point relative to a
// rectangle: one bit for every boundary half-plane the point violates.
type RegionCode uint8

// Region code bits.
const (
	Inside RegionCode = 0
	Left   RegionCode = 1
	Right  RegionCode = 2
	Bottom RegionCode = 4
	Top    RegionCode = 8
)

func (c RegionCode) String() string {
	if c == Inside {
		return "INSIDE"
	}
	var parts []string
	for _, b := range []struct {
		bit  RegionCode
		name string
	}{
		{Left, "LEFT"},
		{Right, "RIGHT"},
		{Bottom, "BOTTOM"},
		{Top, "TOP"},
	} {
		if c&b.bit != 0 {
			parts = append(parts, b.name)
		}
	}
	return strings.Join(parts, "|")
}

// Classify returns the region code of p relative to r.
// Points on the boundary are inside.
func (r Rect) Classify(p Point) RegionCode {
	return r.classifyVec(p.Vec())
}

// classifyVec is the real-valued version of Classify, used for the
// intermediate points of the clipping algorithms.
func (r Rect) classifyVec(v vec.Vec2) RegionCode {
	code := Inside

	if v.X < float64(r.XMin) {
		code |= Left
	} else if v.X > float64(r.XMax) {
		code |= Right
	}

	if v.Y < float64(r.YMin) {
		code |= Bottom
	} else if v.Y > float64(r.YMax) {
		code |= Top
	}

	return code
}
