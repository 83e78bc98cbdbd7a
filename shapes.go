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
	"iter"
	"math"
)

// RoundedSquare returns the outline of an axis-aligned square with the
// given center and side length whose corners are replaced by quarter
// circles of radius size/4. Each pixel is produced once.
func RoundedSquare(center Point, size int) (iter.Seq[Point], error) {
	if size < 0 {
		return nil, fmt.Errorf("square size %d: %w", size, ErrInvalidArgument)
	}

	half := size / 2
	r := size / 4
	xl, xr := center.X-half, center.X+half
	yb, yt := center.Y-half, center.Y+half

	edges := [...]Segment{
		Seg(xl+r, yt, xr-r, yt), // top
		Seg(xr, yt-r, xr, yb+r), // right
		Seg(xr-r, yb, xl+r, yb), // bottom
		Seg(xl, yb+r, xl, yt-r), // left
	}
	type corner struct {
		center     Point
		start, end float64
	}
	corners := [...]corner{
		{Pt(xr-r, yt-r), 0, math.Pi / 2},
		{Pt(xl+r, yt-r), math.Pi / 2, math.Pi},
		{Pt(xl+r, yb+r), math.Pi, 3 * math.Pi / 2},
		{Pt(xr-r, yb+r), 3 * math.Pi / 2, 2 * math.Pi},
	}

	return func(yield func(Point) bool) {
		seen := make(map[Point]struct{})
		emit := func(p Point) bool {
			if _, dup := seen[p]; dup {
				return true
			}
			seen[p] = struct{}{}
			return yield(p)
		}

		for _, e := range edges {
			for p := range LineBresenham(e.P0, e.P1) {
				if !emit(p) {
					return
				}
			}
		}
		for _, c := range corners {
			arc, _ := Arc(c.center, r, c.start, c.end) // r >= 0 here
			for p := range arc {
				if !emit(p) {
					return
				}
			}
		}
	}, nil
}
