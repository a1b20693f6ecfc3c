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

package render

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/panel"
	"seehuhn.de/go/panel/theme"
)

// WritePDF writes l as a single-page PDF file, one PDF point per pixel.
// Colours are converted to grey levels.  Shadows are not drawn.
func WritePDF(fname string, l *panel.Layout, st theme.Style) error {
	paper := &pdf.Rectangle{
		URx: max(l.Width, 1),
		URy: max(l.Height, 1),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left, panel coordinates start top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, paper.URy})

	drawPath := func(p path.Path) {
		for cmd, pts := range p {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo:
				end := pts[len(pts)-1]
				page.LineTo(end.X, end.Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}

	if c, ok := theme.ParseColor(st.Fill); ok && c.A > 0 {
		page.SetFillColor(color.DeviceGray(theme.Luminance(c)))
		drawPath(l.Fill.Iter())
		page.Fill()
	}

	if sw := strokeWidth(l, st); sw > 0 {
		if c, ok := theme.ParseColor(st.Stroke); ok && c.A > 0 {
			page.SetStrokeColor(color.DeviceGray(theme.Luminance(c)))
			page.SetLineWidth(sw)
			page.SetLineCap(graphics.LineCapSquare)
			page.SetLineJoin(graphics.LineJoinMiter)
			page.SetMiterLimit(10)
			drawPath(l.Shape.Iter())
			page.Stroke()
		}
	}

	return page.Close()
}
