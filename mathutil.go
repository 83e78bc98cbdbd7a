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
	"math"

	"golang.org/x/exp/constraints"
)

// abs returns the absolute value of x.
func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns -1, 0 or +1 according to the sign of x.
func sign[T constraints.Signed](x T) T {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// roundInt rounds x to the nearest integer, with halves rounded away
// from zero.
func roundInt(x float64) int {
	return int(math.Round(x))
}

// roundOffset returns base + n/d rounded to the nearest integer, with
// halves rounded away from zero. The denominator must be positive.
// Intermediate values stay within the range of n and 2*d, so base may be
// any value as long as the exact result is representable.
func roundOffset(base, n, d int) int {
	q := n / d
	r := n % d
	if r < 0 {
		q--
		r += d
	}
	// base + q + r/d with 0 <= r < d
	k := base + q
	switch {
	case 2*r > d:
		return k + 1
	case 2*r < d:
		return k
	case k >= 0:
		return k + 1
	default:
		return k
	}
}
