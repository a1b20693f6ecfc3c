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

package theme

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testSheet = `
:root {
	--accent: #00ffcc;
	--warn: var(--accent);
}
.panel {
	fill: #101820;
	stroke: var(--accent);
}
.alert, .danger {
	stroke: var(--missing, orangered);
	stroke-width: 3px;
}
.alert {
	shadow: #400000;
}
.danger:hover {
	stroke: white;
}
@media print {
	.alert { fill: white; }
}
.quiet {
	stroke: var(--warn);
	border-width: thin;
}
`

func TestResolve(t *testing.T) {
	th, err := Parse(testSheet)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		class string
		want  Style
	}{
		{"", Style{Fill: "#101820", Stroke: "#00ffcc", StrokeWidth: "1px", Shadow: "#000000"}},
		{"unknown", Style{Fill: "#101820", Stroke: "#00ffcc", StrokeWidth: "1px", Shadow: "#000000"}},
		{"alert", Style{Fill: "#101820", Stroke: "orangered", StrokeWidth: "3px", Shadow: "#400000"}},
		{"danger", Style{Fill: "#101820", Stroke: "orangered", StrokeWidth: "3px", Shadow: "#000000"}},
		{"quiet", Style{Fill: "#101820", Stroke: "#00ffcc", StrokeWidth: "thin", Shadow: "#000000"}},
	}
	for _, c := range cases {
		if d := cmp.Diff(c.want, th.Resolve(c.class)); d != "" {
			t.Errorf("class %q (-want +got):\n%s", c.class, d)
		}
	}
}

func TestResolveVarLoop(t *testing.T) {
	th, err := Parse(`:root { --a: var(--b); --b: var(--a); } .x { fill: var(--a); }`)
	if err != nil {
		t.Fatal(err)
	}
	if got := th.Resolve("x").Fill; got != Default.Fill {
		t.Errorf("cyclic variable gave fill %q, want the default", got)
	}
}

func TestFixed(t *testing.T) {
	var r Resolver = Fixed(Style{Fill: "red"})
	if got := r.Resolve("anything").Fill; got != "red" {
		t.Errorf("got %q", got)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#ff0000", color.RGBA{R: 255, A: 255}, true},
		{"#0F0", color.RGBA{G: 255, A: 255}, true},
		{" #00000080 ", color.RGBA{A: 128}, true},
		{"#ffffff80", color.RGBA{R: 128, G: 128, B: 128, A: 128}, true},
		{"white", color.RGBA{R: 255, G: 255, B: 255, A: 255}, true},
		{"OrangeRed", color.RGBA{R: 255, G: 69, A: 255}, true},
		{"none", color.RGBA{}, true},
		{"transparent", color.RGBA{}, true},
		{"#12345", color.RGBA{}, false},
		{"#gggggg", color.RGBA{}, false},
		{"var(--x)", color.RGBA{}, false},
		{"", color.RGBA{}, false},
	}
	for _, c := range cases {
		got, ok := ParseColor(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("ParseColor(%q) = %v, %t, want %v, %t", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestLuminance(t *testing.T) {
	if l := Luminance(color.RGBA{R: 255, G: 255, B: 255, A: 255}); l < 0.999 || l > 1.001 {
		t.Errorf("white: %g", l)
	}
	if l := Luminance(color.RGBA{A: 255}); l != 0 {
		t.Errorf("black: %g", l)
	}
}
