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

import "seehuhn.de/go/pixels"

var lineCases = []TestCase{
	{
		// the line from the DDA demo window, axes range [-10,10]x[-5,15]
		Name:   "dda_demo",
		Width:  21,
		Height: 21,
		Origin: pixels.Pt(-10, -5),
		Op:     Line{P0: pixels.Pt(-6, 13), P1: pixels.Pt(8, 2), Alg: pixels.DDA},
		Pixels: 15,
	},
	{
		Name:   "bresenham_demo",
		Width:  21,
		Height: 21,
		Origin: pixels.Pt(-10, -5),
		Op:     Line{P0: pixels.Pt(-6, 13), P1: pixels.Pt(8, 2), Alg: pixels.Bresenham},
		Pixels: 15,
	},
	{
		Name:   "steep_bresenham",
		Width:  64,
		Height: 64,
		Op:     Line{P0: pixels.Pt(5, 2), P1: pixels.Pt(9, 60), Alg: pixels.Bresenham},
		Pixels: 59,
	},
	{
		Name:   "steep_dda",
		Width:  64,
		Height: 64,
		Op:     Line{P0: pixels.Pt(5, 2), P1: pixels.Pt(9, 60), Alg: pixels.DDA},
		Pixels: 59,
	},
	{
		Name:   "shallow_dda",
		Width:  64,
		Height: 64,
		Op:     Line{P0: pixels.Pt(60, 30), P1: pixels.Pt(2, 5), Alg: pixels.DDA},
		Pixels: 59,
	},
	{
		Name:   "diagonal",
		Width:  64,
		Height: 64,
		Op:     Line{P0: pixels.Pt(0, 0), P1: pixels.Pt(63, 63), Alg: pixels.Bresenham},
		Pixels: 64,
	},
	{
		Name:   "horizontal",
		Width:  64,
		Height: 64,
		Op:     Line{P0: pixels.Pt(3, 40), P1: pixels.Pt(60, 40), Alg: pixels.DDA},
		Pixels: 58,
	},
	{
		Name:   "single_point",
		Width:  16,
		Height: 16,
		Op:     Line{P0: pixels.Pt(7, 7), P1: pixels.Pt(7, 7), Alg: pixels.Bresenham},
		Pixels: 1,
	},
}
