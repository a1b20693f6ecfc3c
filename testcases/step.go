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

var stepped = []TestCase{
	{
		Name:   "tab",
		Width:  160,
		Height: 80,
		Config: panel.Config{
			Steps: panel.StepConfig{
				Top: steps(seg(0.1, 0.4, 8)),
			},
			StrokeWidth: "2px",
		},
	},
	{
		Name:   "notch",
		Width:  160,
		Height: 80,
		Config: panel.Config{
			Steps: panel.StepConfig{
				Bottom: steps(seg(0.4, 0.6, -6)),
			},
			StrokeWidth: "2px",
		},
	},
	{
		Name:   "side_rails",
		Width:  120,
		Height: 160,
		Config: panel.Config{
			Steps: panel.StepConfig{
				Left:  steps(seg(0.2, 0.8, 4)),
				Right: steps(seg(0.2, 0.8, 4)),
			},
			StrokeWidth: "1px",
		},
	},
	{
		Name:   "full_edge",
		Width:  120,
		Height: 60,
		Config: panel.Config{
			Steps: panel.StepConfig{
				Top: steps(seg(0, 1, 5)),
			},
			StrokeWidth: "1px",
		},
	},
	{
		Name:   "castle",
		Width:  200,
		Height: 80,
		Config: panel.Config{
			Steps: panel.StepConfig{
				Top: steps(
					seg(0.05, 0.2, 6),
					seg(0.3, 0.45, 6),
					seg(0.55, 0.7, 6),
					seg(0.8, 0.95, 6),
				),
			},
			StrokeWidth: "2px",
		},
	},
	{
		Name:   "unsorted",
		Width:  200,
		Height: 80,
		Config: panel.Config{
			Steps: panel.StepConfig{
				Bottom: steps(seg(0.6, 0.9, 5), seg(0.1, 0.3, 3), seg(0.5, 0.4, 9)),
			},
			StrokeWidth: "1px",
		},
	},
}
