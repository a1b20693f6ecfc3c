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

var bevelled = []TestCase{
	{
		Name:   "top_left",
		Width:  120,
		Height: 60,
		Config: panel.Config{
			Bevels:      panel.BevelConfig{TopLeft: bevel(16)},
			StrokeWidth: "2px",
		},
	},
	{
		Name:   "all_corners",
		Width:  120,
		Height: 80,
		Config: panel.Config{
			Bevels: panel.BevelConfig{
				TopLeft:     bevel(12),
				TopRight:    bevel(12),
				BottomRight: bevel(12),
				BottomLeft:  bevel(12),
			},
			StrokeWidth: "2px",
		},
	},
	{
		Name:   "diagonal",
		Width:  160,
		Height: 90,
		Config: panel.Config{
			Bevels: panel.BevelConfig{
				TopRight:   bevel(30),
				BottomLeft: bevel(30),
			},
			StrokeWidth: "0.125em",
		},
		Class: "alert",
	},
	{
		Name:   "steep",
		Width:  120,
		Height: 60,
		Config: panel.Config{
			Bevels: panel.BevelConfig{
				TopLeft:     &panel.CornerBevel{Size: 20, Angle: 70},
				BottomRight: &panel.CornerBevel{Size: 20, Angle: 20},
			},
			StrokeWidth: "1px",
		},
	},
	{
		Name:   "tiny",
		Width:  24,
		Height: 24,
		Config: panel.Config{
			Bevels: panel.BevelConfig{
				TopLeft:     bevel(8),
				BottomRight: bevel(8),
			},
			StrokeWidth: "1pt",
		},
	},
}
