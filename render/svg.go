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

// Package render draws panel layouts as SVG, PNG and PDF.
package render

import (
	"bufio"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"seehuhn.de/go/panel"
	"seehuhn.de/go/panel/theme"
)

// ShadowBlur is the blur radius of drop shadows, in pixels.
const ShadowBlur = 4

// WriteSVG writes l as a standalone SVG document.  The panel is drawn with
// the colours from st.  If shadow is non-zero and st.Shadow is not "none",
// a drop shadow displaced by shadow is added.
func WriteSVG(w io.Writer, l *panel.Layout, st theme.Style, shadow panel.ShadowOffset) error {
	buf := bufio.NewWriter(w)
	canvas := svg.New(buf)

	width := int(math.Ceil(l.Width))
	height := int(math.Ceil(l.Height))
	canvas.Startview(width, height, 0, 0, width, height)

	withShadow := hasShadow(st, shadow)
	if withShadow {
		canvas.Def()
		canvas.Filter("panel-shadow", `x="-50%" y="-50%" width="200%" height="200%"`)
		canvas.FeFlood(svg.Filterspec{Result: "colour"}, st.Shadow, 1)
		canvas.FeComposite(svg.Filterspec{In: "colour", In2: "SourceAlpha", Result: "shape"}, "in", 0, 0, 0, 0)
		canvas.FeOffset(svg.Filterspec{In: "shape", Result: "offset"}, shadow.X, shadow.Y)
		canvas.FeGaussianBlur(svg.Filterspec{In: "offset", Result: "blur"}, ShadowBlur/2, ShadowBlur/2)
		canvas.FeMerge([]string{"blur", "SourceGraphic"})
		canvas.Fend()
		canvas.DefEnd()
	}

	fill := []string{"fill:" + st.Fill}
	if withShadow {
		fill = append(fill, `filter="url(#panel-shadow)"`)
	}
	canvas.Path(l.FillString(), fill...)

	if sw := strokeWidth(l, st); sw > 0 {
		canvas.Path(l.ShapeString(), fmt.Sprintf(
			"fill:none;stroke:%s;stroke-width:%g;stroke-linejoin:miter;stroke-linecap:square",
			st.Stroke, math.Round(sw*100)/100))
	}
	canvas.End()

	return buf.Flush()
}

// strokeWidth returns the outline width in pixels.  A width set in the
// layout takes precedence over the one from the style.
func strokeWidth(l *panel.Layout, st theme.Style) float64 {
	if l.StrokeWidth > 0 {
		return l.StrokeWidth
	}
	return panel.StrokeWidthPixels(st.StrokeWidth)
}

func hasShadow(st theme.Style, shadow panel.ShadowOffset) bool {
	if shadow == (panel.ShadowOffset{}) {
		return false
	}
	c, ok := theme.ParseColor(st.Shadow)
	return !ok || c.A > 0
}
