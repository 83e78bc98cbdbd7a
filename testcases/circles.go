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

var circleCases = []TestCase{
	{
		Name:   "midpoint_r25",
		Width:  64,
		Height: 64,
		Op:     Circle{Center: pixels.Pt(32, 32), Radius: 25},
	},
	{
		Name:   "midpoint_r3",
		Width:  16,
		Height: 16,
		Op:     Circle{Center: pixels.Pt(8, 8), Radius: 3},
	},
	{
		Name:   "radius_zero",
		Width:  16,
		Height: 16,
		Op:     Circle{Center: pixels.Pt(8, 8), Radius: 0},
		Pixels: 1,
	},
}

var arcCases = []TestCase{
	{
		// the arc demo, -30° to 15°, scaled down to fit the canvas
		Name:   "demo",
		Width:  64,
		Height: 64,
		Op:     Arc{Center: pixels.Pt(32, 32), Radius: 25, Start: -math.Pi / 6, End: math.Pi / 12},
	},
	{
		Name:   "wrap",
		Width:  64,
		Height: 64,
		Op:     Arc{Center: pixels.Pt(32, 32), Radius: 25, Start: 3 * math.Pi / 2, End: 2 * math.Pi},
	},
	{
		Name:   "reverse_wrap",
		Width:  64,
		Height: 64,
		Op:     Arc{Center: pixels.Pt(32, 32), Radius: 25, Start: 3, End: 1},
	},
	{
		Name:   "full",
		Width:  64,
		Height: 64,
		Op:     Arc{Center: pixels.Pt(32, 32), Radius: 25, Start: 0, End: 2 * math.Pi},
	},
	{
		Name:   "zero_sweep",
		Width:  64,
		Height: 64,
		Op:     Arc{Center: pixels.Pt(32, 32), Radius: 25, Start: math.Pi / 2, End: math.Pi / 2},
		Pixels: 1,
	},
}

var shapeCases = []TestCase{
	{
		Name:   "rounded_square",
		Width:  64,
		Height: 64,
		Op:     RoundedSquare{Center: pixels.Pt(32, 32), Size: 48},
	},
	{
		Name:   "rounded_square_small",
		Width:  16,
		Height: 16,
		Op:     RoundedSquare{Center: pixels.Pt(8, 8), Size: 9},
	},
}
