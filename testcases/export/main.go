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

// Command export writes the panel test cases, together with the computed
// outlines, to testdata/panels.json.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/panel"
	"seehuhn.de/go/panel/testcases"
)

func main() {
	var out struct {
		Panels []jsonPanel `json:"panels"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.Panels = append(out.Panels, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/panels.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonPanel struct {
	Name        string        `json:"name"`
	Class       string        `json:"class,omitempty"`
	Width       float64       `json:"width"`
	Height      float64       `json:"height"`
	StrokeWidth float64       `json:"stroke_width,omitempty"`
	Fill        string        `json:"fill"`
	Shape       string        `json:"shape"`
	Content     [4]float64    `json:"content"`
	Padding     panel.Padding `json:"padding"`
}

func toJSON(category string, tc testcases.TestCase) jsonPanel {
	l := tc.Layout()
	return jsonPanel{
		Name:        category + "_" + tc.Name,
		Class:       tc.Class,
		Width:       tc.Width,
		Height:      tc.Height,
		StrokeWidth: l.StrokeWidth,
		Fill:        l.FillString(),
		Shape:       l.ShapeString(),
		Content:     rectToJSON(l.Content),
		Padding:     l.Padding,
	}
}

// rectToJSON lists x, y, width and height of r.
func rectToJSON(r rect.Rect) [4]float64 {
	return [4]float64{r.LLx, r.LLy, r.URx - r.LLx, r.URy - r.LLy}
}
