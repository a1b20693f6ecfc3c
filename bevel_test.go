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

package panel

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestBevelOffset(t *testing.T) {
	const eps = 1e-9
	cases := []struct {
		size, angle float64
		want        vec.Vec2
	}{
		{0, 45, vec.Vec2{}},
		{10, 45, vec.Vec2{X: 10 * math.Sqrt2 / 2, Y: 10 * math.Sqrt2 / 2}},
		{10, 0, vec.Vec2{X: 10, Y: 0}},
		{10, 90, vec.Vec2{X: 0, Y: 10}},
		{20, 30, vec.Vec2{X: 20 * math.Sqrt(3) / 2, Y: 10}},
		{-10, 60, vec.Vec2{X: 5, Y: 10 * math.Sqrt(3) / 2}},
		{10, 135, vec.Vec2{X: 10 * math.Sqrt2 / 2, Y: 10 * math.Sqrt2 / 2}},
	}
	for _, c := range cases {
		got := BevelOffset(c.size, c.angle)
		if math.Abs(got.X-c.want.X) > eps || math.Abs(got.Y-c.want.Y) > eps {
			t.Errorf("BevelOffset(%g, %g) = %v, want %v", c.size, c.angle, got, c.want)
		}
		if got.X < 0 || got.Y < 0 {
			t.Errorf("BevelOffset(%g, %g) = %v has negative components", c.size, c.angle, got)
		}
	}
}

func TestBevelOffset45(t *testing.T) {
	for _, size := range []float64{0.5, 1, 7, 10, 123.25} {
		got := BevelOffset(size, 45)
		want := size * 0.70710678
		if math.Abs(got.X-want) > 1e-6 || math.Abs(got.Y-want) > 1e-6 {
			t.Errorf("size %g: got %v, want %g for both components", size, got, want)
		}
	}
}

func TestBevelConfigDefaults(t *testing.T) {
	cfg := BevelConfig{
		TopRight:   &CornerBevel{Size: 8},
		BottomLeft: &CornerBevel{Size: 4, Angle: 30},
	}

	if got := cfg.Corner(TopLeft); got != (CornerBevel{Size: 0, Angle: 45}) {
		t.Errorf("missing corner: got %+v", got)
	}
	if got := cfg.Corner(TopRight); got != (CornerBevel{Size: 8, Angle: 45}) {
		t.Errorf("corner without angle: got %+v", got)
	}
	if got := cfg.Corner(BottomLeft); got != (CornerBevel{Size: 4, Angle: 30}) {
		t.Errorf("explicit corner: got %+v", got)
	}
	if cfg.cut(TopLeft) || !cfg.cut(TopRight) {
		t.Error("cut() does not match the configured sizes")
	}

	// Corner must not alias the caller's value
	c := cfg.Corner(TopRight)
	c.Size = 99
	if cfg.TopRight.Size != 8 {
		t.Error("Corner() returned an alias of the configuration")
	}
}

func TestCornerString(t *testing.T) {
	names := map[Corner]string{
		TopLeft:     "topLeft",
		TopRight:    "topRight",
		BottomRight: "bottomRight",
		BottomLeft:  "bottomLeft",
		Corner(7):   "Corner(7)",
	}
	for c, want := range names {
		if got := c.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(c), got, want)
		}
	}
}
