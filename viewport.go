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
	"math"

	"seehuhn.de/go/geom/matrix"
)

// WindowToViewport returns the transformation which maps the window
// rectangle onto the viewport rectangle, corner to corner.
// The window must have non-zero width and height.
func WindowToViewport(window, viewport Rect) (matrix.Matrix, error) {
	if err := window.Validate(); err != nil {
		return matrix.Matrix{}, fmt.Errorf("window: %w", err)
	}
	if err := viewport.Validate(); err != nil {
		return matrix.Matrix{}, fmt.Errorf("viewport: %w", err)
	}
	if window.Dx() == 0 || window.Dy() == 0 {
		return matrix.Matrix{}, fmt.Errorf("degenerate window %v: %w", window, ErrInvalidArgument)
	}

	sx := float64(viewport.Dx()) / float64(window.Dx())
	sy := float64(viewport.Dy()) / float64(window.Dy())
	tx := float64(viewport.XMin) - sx*float64(window.XMin)
	ty := float64(viewport.YMin) - sy*float64(window.YMin)
	return matrix.Matrix{sx, 0, 0, sy, tx, ty}, nil
}

// MapPoint applies the affine transformation m to p and rounds the
// result to the nearest pixel.
func MapPoint(m matrix.Matrix, p Point) Point {
	x := float64(p.X)
	y := float64(p.Y)
	return Point{
		X: int(math.Round(m[0]*x + m[2]*y + m[4])),
		Y: int(math.Round(m[1]*x + m[3]*y + m[5])),
	}
}

// MapPolygon applies MapPoint to every vertex of p.
func MapPolygon(m matrix.Matrix, p Polygon) Polygon {
	if p == nil {
		return nil
	}
	out := make(Polygon, len(p))
	for i, q := range p {
		out[i] = MapPoint(m, q)
	}
	return out
}
