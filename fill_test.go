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
	"testing"
)

// fillSet fills p and returns the covered pixels.
func fillSet(t *testing.T, f *Filler, p Polygon, evenOdd bool) map[Point]bool {
	t.Helper()
	set := make(map[Point]bool)
	emit := func(y, xMin, xMax int) {
		if xMin >= xMax {
			t.Errorf("empty span at y=%d: [%d, %d)", y, xMin, xMax)
		}
		for x := xMin; x < xMax; x++ {
			p := Pt(x, y)
			if set[p] {
				t.Errorf("pixel %v emitted twice", p)
			}
			set[p] = true
		}
	}
	if evenOdd {
		f.FillEvenOdd(p, emit)
	} else {
		f.FillNonZero(p, emit)
	}
	return set
}

func mustFiller(t *testing.T, clip Rect) *Filler {
	t.Helper()
	f, err := NewFiller(clip)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

var testStar = Polygon{{32, 60}, {40, 8}, {0, 40}, {64, 40}, {24, 8}}

func TestFillCounts(t *testing.T) {
	f := mustFiller(t, NewRect(-100, -100, 100, 100))
	cases := []struct {
		name string
		p    Polygon
		want int
	}{
		{"square", Polygon{{0, 0}, {4, 0}, {4, 4}, {0, 4}}, 16},
		{"square clockwise", Polygon{{0, 0}, {0, 4}, {4, 4}, {4, 0}}, 16},
		{"triangle", Polygon{{0, 0}, {4, 0}, {0, 4}}, 10},
		{"rectangle", Polygon{{-3, 2}, {7, 2}, {7, 5}, {-3, 5}}, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, evenOdd := range []bool{false, true} {
				got := fillSet(t, f, tc.p, evenOdd)
				if len(got) != tc.want {
					t.Errorf("evenOdd=%t: %d pixels, want %d", evenOdd, len(got), tc.want)
				}
			}
		})
	}
}

func TestFillSharedEdge(t *testing.T) {
	f := mustFiller(t, NewRect(-100, -100, 100, 100))
	a := fillSet(t, f, Polygon{{0, 0}, {4, 0}, {4, 4}, {0, 4}}, false)
	b := fillSet(t, f, Polygon{{4, 0}, {8, 0}, {8, 4}, {4, 4}}, false)
	for p := range b {
		if a[p] {
			t.Errorf("pixel %v filled by both squares", p)
		}
	}
	if len(a)+len(b) != 32 {
		t.Errorf("got %d+%d pixels, want 32", len(a), len(b))
	}
}

func TestFillClip(t *testing.T) {
	clip := NewRect(0, 0, 4, 4)
	f := mustFiller(t, clip)
	got := fillSet(t, f, Polygon{{-10, -10}, {10, -10}, {10, 10}, {-10, 10}}, false)
	if len(got) != 25 {
		t.Errorf("got %d pixels, want 25", len(got))
	}
	for p := range got {
		if !clip.Contains(p) {
			t.Errorf("pixel %v outside the clip rectangle", p)
		}
	}

	got = fillSet(t, f, Polygon{{20, 20}, {30, 20}, {30, 30}}, false)
	if len(got) != 0 {
		t.Errorf("polygon outside the clip rectangle: %d pixels", len(got))
	}
}

func TestFillRules(t *testing.T) {
	f := mustFiller(t, NewRect(0, 0, 63, 63))
	nonZero := fillSet(t, f, testStar, false)
	evenOdd := fillSet(t, f, testStar, true)

	center := Pt(32, 30)
	if !nonZero[center] {
		t.Errorf("nonzero: center %v not filled", center)
	}
	if evenOdd[center] {
		t.Errorf("evenodd: center %v filled", center)
	}
	for p := range evenOdd {
		if !nonZero[p] {
			t.Errorf("pixel %v filled by evenodd but not by nonzero", p)
		}
	}
	if !evenOdd[Pt(20, 30)] {
		t.Error("evenodd: star point (20,30) not filled")
	}
}

func TestFillerReuse(t *testing.T) {
	square := Polygon{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	f := mustFiller(t, NewRect(0, 0, 63, 63))
	before := fillSet(t, f, square, false)
	fillSet(t, f, testStar, true)
	after := fillSet(t, f, square, false)
	if len(before) != len(after) {
		t.Fatalf("reused filler: %d pixels, fresh filler: %d", len(after), len(before))
	}
	for p := range before {
		if !after[p] {
			t.Errorf("pixel %v missing after reuse", p)
		}
	}
}

func TestFillDegenerate(t *testing.T) {
	f := mustFiller(t, NewRect(-10, -10, 10, 10))
	for _, p := range []Polygon{
		nil,
		{{0, 0}, {5, 5}},
		{{0, 0}, {5, 0}, {9, 0}},
		{{0, 0}, {0, 5}, {0, 5}},
	} {
		f.FillNonZero(p, func(y, xMin, xMax int) {
			t.Errorf("%v: unexpected span y=%d [%d, %d)", p, y, xMin, xMax)
		})
	}
}

func TestNewFillerInvalid(t *testing.T) {
	if _, err := NewFiller(NewRect(1, 0, 0, 0)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}
