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

// TestCase defines a single panel used for tests and proof sheets.
type TestCase struct {
	Name   string  // lowercase a-z and _ only
	Width  float64 // box width in pixels
	Height float64 // box height in pixels
	Config panel.Config
	Class  string // theme class, empty for the base style
}

// Layout computes the layout of the test case.
func (tc TestCase) Layout() *panel.Layout {
	return panel.NewLayout(tc.Width, tc.Height, &tc.Config)
}

// bevel is a helper to create a corner bevel with the default angle.
func bevel(size float64) *panel.CornerBevel {
	return &panel.CornerBevel{Size: size}
}

// steps is a helper to create the steps of one edge.
func steps(segs ...panel.StepSegment) *panel.EdgeSteps {
	return &panel.EdgeSteps{Segments: segs}
}

// seg is a helper to create a step segment.
func seg(start, end, height float64) panel.StepSegment {
	return panel.StepSegment{Start: start, End: end, Height: height}
}
