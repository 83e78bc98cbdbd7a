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

const twoPi = 2 * math.Pi

// Circle returns the pixels of the circle with the given center and
// radius, computed with the midpoint algorithm. Each pixel is produced
// once. A radius of zero gives the center point.
func Circle(center Point, radius int) (iter.Seq[Point], error) {
	if radius < 0 {
		return nil, fmt.Errorf("circle radius %d: %w", radius, ErrInvalidArgument)
	}
	return func(yield func(Point) bool) {
		seen := make(map[Point]struct{}, min(radius, 1<<13)*8+1)
		circleOctants(radius, func(off Point) bool {
			if _, dup := seen[off]; dup {
				return true
			}
			seen[off] = struct{}{}
			return yield(center.Add(off))
		})
	}, nil
}

// Arc returns the pixels of the circle with the given center and radius
// whose angle, measured counter-clockwise from the positive x-axis, lies in
// the sweep from startAngle to endAngle (radians).
//
// Both angles are reduced to [0, 2π). If the reduced end angle is smaller
// than the start angle, the sweep wraps through 2π. A sweep of 2π or more
// (endAngle - startAngle >= 2π before reduction) selects the whole circle.
// If both angles reduce to the same value, only pixels at exactly this
// angle are included.
//
// The center of a zero-radius arc has angle 0.
func Arc(center Point, radius int, startAngle, endAngle float64) (iter.Seq[Point], error) {
	if radius < 0 {
		return nil, fmt.Errorf("arc radius %d: %w", radius, ErrInvalidArgument)
	}
	if math.IsNaN(startAngle) || math.IsNaN(endAngle) ||
		math.IsInf(startAngle, 0) || math.IsInf(endAngle, 0) {
		return nil, fmt.Errorf("arc angles %g, %g: %w", startAngle, endAngle, ErrInvalidArgument)
	}
	if endAngle-startAngle >= twoPi {
		return Circle(center, radius)
	}

	start, end := arcSweep(startAngle, endAngle)
	return func(yield func(Point) bool) {
		seen := make(map[Point]struct{})
		circleOctants(radius, func(off Point) bool {
			if !arcContains(off, start, end) {
				return true
			}
			if _, dup := seen[off]; dup {
				return true
			}
			seen[off] = struct{}{}
			return yield(center.Add(off))
		})
	}, nil
}

// circleOctants runs the midpoint circle algorithm for the first octant
// and calls plot with all eight reflections of every computed offset.
// Offsets may be repeated where octants meet.
func circleOctants(radius int, plot func(off Point) bool) {
	x, y := 0, radius
	p := 1 - radius
	for x <= y {
		if !plot(Point{x, y}) || !plot(Point{y, x}) ||
			!plot(Point{-x, y}) || !plot(Point{-y, x}) ||
			!plot(Point{-x, -y}) || !plot(Point{-y, -x}) ||
			!plot(Point{x, -y}) || !plot(Point{y, -x}) {
			return
		}

		x++
		if p < 0 {
			p += 2*x + 1
		} else {
			y--
			p += 2*(x-y) + 1
		}
	}
}

// normalizeAngle reduces a to the interval [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	if a >= twoPi {
		// a was a tiny negative number
		a = 0
	}
	return a
}

// arcSweep reduces the angles of an arc to a sweep start <= end with
// start in [0, 2π) and end < start + 2π.
func arcSweep(startAngle, endAngle float64) (start, end float64) {
	start = normalizeAngle(startAngle)
	end = normalizeAngle(endAngle)
	if end < start {
		end += twoPi
	}
	return start, end
}

// arcContains reports whether the direction of the offset off lies in the
// sweep [start, end]. Since the sweep may extend past 2π, the angle of off
// is tested together with its representatives shifted by ±2π.
func arcContains(off Point, start, end float64) bool {
	theta := math.Atan2(float64(off.Y), float64(off.X))
	if theta < 0 {
		theta += twoPi
	}
	for _, a := range [...]float64{theta, theta + twoPi, theta - twoPi} {
		if a >= start && a <= end {
			return true
		}
	}
	return false
}
