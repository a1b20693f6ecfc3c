// seehuhn.de/go/panel - bevelled and stepped panel outlines
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

package render

import (
	"bytes"
	"errors"
	"image/color"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/panel"
	"seehuhn.de/go/panel/testcases"
	"seehuhn.de/go/panel/theme"
)

func TestCatalogue(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				l := tc.Layout()

				var buf bytes.Buffer
				err := WriteSVG(&buf, l, theme.Default, panel.ShadowOffset{X: 2, Y: 2})
				if err != nil {
					t.Fatal(err)
				}
				if !strings.Contains(buf.String(), `d="`+l.FillString()+`"`) {
					t.Error("SVG output does not contain the fill path")
				}

				img := Rasterize(l, theme.Default, panel.ShadowOffset{})
				cx := int((l.Content.LLx + l.Content.URx) / 2)
				cy := int((l.Content.LLy + l.Content.URy) / 2)
				if c := img.RGBAAt(cx, cy); c.A == 0 {
					t.Errorf("content centre (%d, %d) is not covered", cx, cy)
				}
			})
		}
	}
}

func TestWriteSVG(t *testing.T) {
	l := panel.NewLayout(20, 10, &panel.Config{StrokeWidth: "2px"})
	st := theme.Style{Fill: "#102030", Stroke: "cyan", Shadow: "black"}

	var buf bytes.Buffer
	if err := WriteSVG(&buf, l, st, panel.ShadowOffset{X: 3, Y: 4}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		`width="20" height="10"`,
		`d="M 0 0 L 20 0 L 20 10 L 0 10 Z"`,
		`d="M 0 0 L 20 0 L 20 10 L 0 10 L 0 0 Z"`,
		`fill:#102030`,
		`stroke:cyan;stroke-width:2;`,
		`<filter id="panel-shadow"`,
		`dx="3" dy="4"`,
		`filter="url(#panel-shadow)"`,
		`</svg>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestWriteSVGNoShadow(t *testing.T) {
	l := panel.NewLayout(20, 10, nil)
	st := theme.Style{Fill: "red", Stroke: "blue", StrokeWidth: "0", Shadow: "none"}

	for _, off := range []panel.ShadowOffset{{}, {X: 2, Y: 2}} {
		var buf bytes.Buffer
		if err := WriteSVG(&buf, l, st, off); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		if strings.Contains(out, "filter") {
			t.Errorf("unexpected shadow filter for offset %v", off)
		}
		if strings.Contains(out, "stroke:") {
			t.Errorf("unexpected outline for zero stroke width")
		}
	}
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestWriteSVGError(t *testing.T) {
	l := panel.NewLayout(20, 10, nil)
	err := WriteSVG(failWriter{}, l, theme.Default, panel.ShadowOffset{})
	if !errors.Is(err, errWrite) {
		t.Errorf("got error %v, want %v", err, errWrite)
	}
}

func TestRasterizeFill(t *testing.T) {
	cfg := &panel.Config{
		Bevels: panel.BevelConfig{TopLeft: &panel.CornerBevel{Size: 10}},
	}
	l := panel.NewLayout(20, 20, cfg)
	st := theme.Style{Fill: "#ff0000", Stroke: "none", StrokeWidth: "0", Shadow: "none"}

	img := Rasterize(l, st, panel.ShadowOffset{})
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 20 {
		t.Fatalf("image size %v", b)
	}

	inside := img.RGBAAt(10, 10)
	if inside.R < 250 || inside.G != 0 || inside.A < 250 {
		t.Errorf("inside pixel %v, want red", inside)
	}
	for _, p := range [][2]int{{0, 0}, {1, 1}, {4, 0}} {
		if c := img.RGBAAt(p[0], p[1]); c.A != 0 {
			t.Errorf("pixel %v in the bevel is %v, want transparent", p, c)
		}
	}
}

func TestRasterizeOutline(t *testing.T) {
	l := panel.NewLayout(20, 20, &panel.Config{StrokeWidth: 2})
	st := theme.Style{Fill: "none", Stroke: "#00ff00", Shadow: "none"}

	img := Rasterize(l, st, panel.ShadowOffset{})
	for _, p := range [][2]int{{10, 0}, {19, 10}, {10, 19}, {0, 10}, {0, 0}} {
		if c := img.RGBAAt(p[0], p[1]); c.G < 250 {
			t.Errorf("outline pixel %v is %v, want green", p, c)
		}
	}
	if c := img.RGBAAt(10, 10); c != (color.RGBA{}) {
		t.Errorf("centre pixel is %v, want transparent", c)
	}
}

func TestRasterizeShadow(t *testing.T) {
	l := panel.NewLayout(20, 20, nil)
	st := theme.Style{Fill: "none", Stroke: "none", StrokeWidth: "0", Shadow: "#0000ff"}

	img := Rasterize(l, st, panel.ShadowOffset{X: 5, Y: 5})
	if c := img.RGBAAt(1, 1); c.A != 0 {
		t.Errorf("pixel outside the shadow is %v", c)
	}
	if c := img.RGBAAt(10, 10); c.B < 250 || c.A < 250 {
		t.Errorf("pixel inside the shadow is %v, want blue", c)
	}
}

func TestRasterizeEmpty(t *testing.T) {
	img := Rasterize(panel.NewLayout(0, 10, nil), theme.Default, panel.ShadowOffset{})
	if !img.Bounds().Empty() {
		t.Errorf("got bounds %v for an empty layout", img.Bounds())
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	l := panel.NewLayout(8, 8, nil)
	if err := WritePNG(&buf, l, theme.Default, panel.ShadowOffset{}); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG file")
	}
}

func TestWritePDF(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "panel.pdf")
	cfg := &panel.Config{
		Bevels: panel.BevelConfig{BottomRight: &panel.CornerBevel{Size: 12}},
		Steps: panel.StepConfig{
			Top: &panel.EdgeSteps{Segments: []panel.StepSegment{{Start: 0.2, End: 0.6, Height: 4}}},
		},
	}
	if err := WritePDF(fname, panel.NewLayout(120, 60, cfg), theme.Default); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output is not a PDF file")
	}
}
