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

package testcases

import "seehuhn.de/go/panel"

var mixed = []TestCase{
	{
		Name:   "header",
		Width:  240,
		Height: 90,
		Config: panel.Config{
			Bevels: panel.BevelConfig{
				TopLeft:     bevel(14),
				BottomRight: bevel(14),
			},
			Steps: panel.StepConfig{
				Top: steps(seg(0.55, 1, 4)),
			},
			StrokeWidth: "2px",
		},
	},
	{
		Name:   "terminal",
		Width:  320,
		Height: 200,
		Config: panel.Config{
			Bevels: panel.BevelConfig{
				TopLeft:     bevel(20),
				TopRight:    bevel(10),
				BottomRight: bevel(20),
				BottomLeft:  bevel(10),
			},
			Steps: panel.StepConfig{
				Top:    steps(seg(0.1, 0.35, 6)),
				Right:  steps(seg(0.3, 0.7, 3)),
				Bottom: steps(seg(0.6, 0.9, -4)),
				Left:   steps(seg(0, 0.25, 3)),
			},
			StrokeWidth: "0.1em",
		},
		Class: "alert",
	},
	{
		Name:   "badge",
		Width:  96,
		Height: 32,
		Config: panel.Config{
			Bevels: panel.BevelConfig{
				TopRight:   &panel.CornerBevel{Size: 10, Angle: 60},
				BottomLeft: &panel.CornerBevel{Size: 10, Angle: 60},
			},
			Steps: panel.StepConfig{
				Bottom: steps(seg(0.2, 0.5, 3)),
			},
			StrokeWidth: 1,
		},
	},
}
