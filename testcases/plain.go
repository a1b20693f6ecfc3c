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

var plain = []TestCase{
	{
		Name:   "rectangle",
		Width:  120,
		Height: 60,
		Config: panel.Config{StrokeWidth: "1px"},
	},
	{
		Name:   "square_thick",
		Width:  64,
		Height: 64,
		Config: panel.Config{StrokeWidth: 6},
	},
	{
		Name:   "wide_strip",
		Width:  400,
		Height: 12,
		Config: panel.Config{StrokeWidth: "thin"},
	},
	{
		Name:   "no_outline",
		Width:  80,
		Height: 40,
		Config: panel.Config{StrokeWidth: "0"},
		Class:  "quiet",
	},
	{
		Name:   "fractional",
		Width:  33.3,
		Height: 17.7,
		Config: panel.Config{StrokeWidth: 1.5},
	},
}
