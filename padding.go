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

import "math"

// Padding is the minimum distance between the panel's bounding box and its
// content on each side.  All is a single value which is safe on every
// side.
type Padding struct {
	Top, Right, Bottom, Left float64
	All                      float64
}

// MinPadding computes the padding needed to keep content clear of the
// bevels, steps and stroke configured in cfg.
//
// On each side this is the larger of half of each adjoining bevel size and
// the tallest step, plus room for the stroke.
func MinPadding(cfg *Config) Padding {
	if cfg == nil {
		cfg = &Config{}
	}
	sw := StrokeWidthPixels(cfg.StrokeWidth)
	stroke := math.Ceil(sw/2) + 1

	half := func(c Corner) float64 {
		return cfg.Bevels.Corner(c).Size / 2
	}
	bounds := cfg.Steps.Bounds()

	p := Padding{
		Top:    max(half(TopLeft), half(TopRight), bounds.Top) + stroke,
		Right:  max(half(TopRight), half(BottomRight), bounds.Right) + stroke,
		Bottom: max(half(BottomRight), half(BottomLeft), bounds.Bottom) + stroke,
		Left:   max(half(BottomLeft), half(TopLeft), bounds.Left) + stroke,
	}
	p.All = max(p.Top, p.Right, p.Bottom, p.Left) + 2*stroke
	return p
}
