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

// Plot returns a callback which marks pixels in a grayscale buffer.
//
// The buffer is in row-major order with the top row first, one byte per
// pixel. Since y grows upwards in this package, the point origin is mapped
// to the bottom-left pixel of the buffer, and origin + (0, height-1) to
// the top-left pixel. Plotted pixels are set to 255. Points outside the
// buffer are ignored.
func Plot(buf []byte, width, height, stride int, origin Point) func(Point) {
	return func(p Point) {
		x := p.X - origin.X
		row := height - 1 - (p.Y - origin.Y)
		if x < 0 || x >= width || row < 0 || row >= height {
			return
		}
		buf[row*stride+x] = 255
	}
}

// PlotSpan returns a callback which marks runs of pixels, for use with
// [Filler]. The arguments are as for [Plot].
func PlotSpan(buf []byte, width, height, stride int, origin Point) func(y, xMin, xMax int) {
	plot := Plot(buf, width, height, stride, origin)
	return func(y, xMin, xMax int) {
		for x := xMin; x < xMax; x++ {
			plot(Point{X: x, Y: y})
		}
	}
}
