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
	"errors"
	"slices"
	"testing"
)

func TestRoundedSquare(t *testing.T) {
	center := Pt(7, -3)
	const size = 48
	seq, err := RoundedSquare(center, size)
	if err != nil {
		t.Fatal(err)
	}
	set := collectSet(t, seq)

	const half, r = size / 2, size / 4
	for p := range set {
		d := p.Sub(center)
		if abs(d.X) > half || abs(d.Y) > half {
			t.Errorf("pixel %v outside the bounding box", p)
		}
		for _, q := range []Point{{-d.X, d.Y}, {d.X, -d.Y}, {d.Y, d.X}} {
			if !set[center.Add(q)] {
				t.Errorf("offset %v present but mirror image %v missing", d, q)
			}
		}
	}

	// arc tangent points and edge mid points
	for _, d := range []Point{
		{-half + r, half}, {half - r, half},
		{half, half - r}, {half, -half + r},
		{0, half}, {half, 0}, {0, -half}, {-half, 0},
	} {
		if !set[center.Add(d)] {
			t.Errorf("missing pixel at offset %v", d)
		}
	}

	// the corners themselves are cut off
	if set[center.Add(Pt(half, half))] {
		t.Error("corner pixel present")
	}
}

func TestRoundedSquareSmall(t *testing.T) {
	seq, err := RoundedSquare(Pt(2, 2), 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := slices.Collect(seq); !slices.Equal(got, []Point{{2, 2}}) {
		t.Errorf("size 0: got %v", got)
	}

	for size := 1; size < 12; size++ {
		seq, err := RoundedSquare(Pt(0, 0), size)
		if err != nil {
			t.Fatal(err)
		}
		if len(collectSet(t, seq)) == 0 {
			t.Errorf("size %d: empty outline", size)
		}
	}
}

func TestRoundedSquareNegative(t *testing.T) {
	if _, err := RoundedSquare(Pt(0, 0), -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}
