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

package pixels_test

import (
	"fmt"
	"math"

	"seehuhn.de/go/pixels"
)

func ExampleLine() {
	for _, alg := range []pixels.Algorithm{pixels.DDA, pixels.Bresenham} {
		fmt.Print(alg, ":")
		for p := range pixels.Line(pixels.Pt(0, 0), pixels.Pt(4, 2), alg) {
			fmt.Print(" ", p)
		}
		fmt.Println()
	}
	// Output:
	// DDA: (0,0) (1,1) (2,1) (3,2) (4,2)
	// Bresenham: (0,0) (1,0) (2,1) (3,1) (4,2)
}

func ExampleArc() {
	arc, err := pixels.Arc(pixels.Pt(0, 0), 3, 0, math.Pi/2)
	if err != nil {
		panic(err)
	}
	n := 0
	for range arc {
		n++
	}
	fmt.Println(n, "pixels")
	// Output:
	// 5 pixels
}

func ExampleClipper_ClipLine() {
	c, err := pixels.NewClipper(pixels.NewRect(0, 0, 10, 10))
	if err != nil {
		panic(err)
	}
	for _, s := range []pixels.Segment{
		pixels.Seg(-5, 5, 15, 5),
		pixels.Seg(-5, -5, 15, 15),
		pixels.Seg(-5, -5, -1, 20),
	} {
		if clipped, ok := c.ClipLine(s); ok {
			fmt.Println(clipped.P0, clipped.P1)
		} else {
			fmt.Println("rejected")
		}
	}
	// Output:
	// (0,5) (10,5)
	// (0,0) (10,10)
	// rejected
}

func ExampleRect_Classify() {
	r := pixels.NewRect(0, 0, 10, 10)
	fmt.Println(r.Classify(pixels.Pt(5, 5)))
	fmt.Println(r.Classify(pixels.Pt(-3, 12)))
	// Output:
	// INSIDE
	// LEFT|TOP
}
