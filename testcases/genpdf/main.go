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

// Command genpdf generates proof sheets for the panel test cases.
// For every case it writes a PDF, an SVG and a PNG file to testdata/proofs.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/panel"
	"seehuhn.de/go/panel/render"
	"seehuhn.de/go/panel/testcases"
	"seehuhn.de/go/panel/theme"
)

const proofDir = "testdata/proofs"

const proofTheme = `
:root  { --accent: #00e5ff; }
.panel { fill: #0b1a24; stroke: var(--accent); shadow: #00000080; }
.alert { fill: #2a0b0b; stroke: orangered; }
.quiet { fill: #1c1c1c; }
`

// shadowDistance is the shadow offset used for the proofs, in pixels.
const shadowDistance = 4

func main() {
	if err := os.MkdirAll(proofDir, 0755); err != nil {
		panic(err)
	}

	th, err := theme.Parse(proofTheme)
	if err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, th, filepath.Join(proofDir, name)); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(tc testcases.TestCase, th theme.Resolver, base string) error {
	l := tc.Layout()
	st := th.Resolve(tc.Class)

	// The shadow falls away from the top-left corner of the box.
	box := rect.Rect{URx: tc.Width, URy: tc.Height}
	vp := panel.Viewport{Width: tc.Width, Height: tc.Height}
	shadow := panel.DynamicShadow(box, shadowDistance, panel.Point{}, vp)

	if err := render.WritePDF(base+".pdf", l, st); err != nil {
		return err
	}

	svgFile, err := os.Create(base + ".svg")
	if err != nil {
		return err
	}
	if err := render.WriteSVG(svgFile, l, st, shadow); err != nil {
		svgFile.Close()
		return err
	}
	if err := svgFile.Close(); err != nil {
		return err
	}

	pngFile, err := os.Create(base + ".png")
	if err != nil {
		return err
	}
	if err := render.WritePNG(pngFile, l, st, shadow); err != nil {
		pngFile.Close()
		return err
	}
	return pngFile.Close()
}
