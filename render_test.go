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
	"image"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"testing"

	"seehuhn.de/go/pixels"
	"seehuhn.de/go/pixels/testcases"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestScenes(t *testing.T) {
	seen := make(map[string]bool)
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				if !validName.MatchString(tc.Name) {
					t.Errorf("invalid scene name %q", tc.Name)
				}
				if seen[name] {
					t.Errorf("duplicate scene name %q", name)
				}
				seen[name] = true

				w, h := tc.Width, tc.Height
				buf := make([]byte, w*h)
				if err := testcases.Render(tc, buf, w); err != nil {
					t.Fatalf("render: %v", err)
				}

				pts, err := testcases.Pixels(tc)
				if err != nil {
					t.Fatal(err)
				}
				bounds := tc.Bounds()
				for _, p := range pts {
					if !bounds.Contains(p) {
						t.Errorf("pixel %v outside the canvas %v", p, bounds)
					}
				}
				if tc.Pixels != 0 && len(pts) != tc.Pixels {
					t.Errorf("%d pixels plotted, want %d", len(pts), tc.Pixels)
				}
				if t.Failed() {
					writeDebugImage(name, buf, w, h)
				}
			})
		}
	}
}

func TestSceneEnclosingClip(t *testing.T) {
	byName := make(map[string]testcases.TestCase)
	for _, tc := range testcases.All["clip"] {
		byName[tc.Name] = tc
	}

	edgeWalk, err := testcases.Pixels(byName["enclosing_edge_walk"])
	if err != nil {
		t.Fatal(err)
	}
	if len(edgeWalk) != 0 {
		t.Errorf("edge walk: %d pixels, want none", len(edgeWalk))
	}

	halfPlanes, err := testcases.Pixels(byName["enclosing_half_planes"])
	if err != nil {
		t.Fatal(err)
	}
	for _, corner := range []pixels.Point{{X: 16, Y: 16}, {X: 47, Y: 16}, {X: 47, Y: 47}, {X: 16, Y: 47}} {
		if !slices.Contains(halfPlanes, corner) {
			t.Errorf("half planes: corner %v missing", corner)
		}
	}
}

func TestPlot(t *testing.T) {
	const w, h, stride = 4, 3, 5
	buf := make([]byte, stride*h)
	plot := pixels.Plot(buf, w, h, stride, pixels.Pt(10, 20))

	plot(pixels.Pt(10, 20)) // bottom left
	plot(pixels.Pt(13, 22)) // top right
	plot(pixels.Pt(14, 22)) // outside
	plot(pixels.Pt(9, 20))  // outside
	plot(pixels.Pt(10, 23)) // outside

	want := []byte{
		0, 0, 0, 255, 0,
		0, 0, 0, 0, 0,
		255, 0, 0, 0, 0,
	}
	if !slices.Equal(buf, want) {
		t.Errorf("got %v, want %v", buf, want)
	}
}

// writeDebugImage saves a rendered scene to debug/ for inspection.
func writeDebugImage(name string, buf []byte, w, h int) {
	os.MkdirAll("debug", 0755)

	img := &image.Gray{
		Pix:    buf,
		Stride: w,
		Rect:   image.Rect(0, 0, w, h),
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}
