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
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/panel"
	"seehuhn.de/go/panel/theme"
)

// Rasterize draws l into a new image of the size of the layout, rounded up
// to whole pixels.  The shadow is drawn first, displaced by shadow and
// without blur, followed by the fill and the outline.  Colours which
// [theme.ParseColor] does not understand are skipped.
func Rasterize(l *panel.Layout, st theme.Style, shadow panel.ShadowOffset) *image.RGBA {
	width := int(math.Ceil(l.Width))
	height := int(math.Ceil(l.Height))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if width == 0 || height == 0 {
		return img
	}

	r := vector.NewRasterizer(width, height)

	if hasShadow(st, shadow) {
		if c, ok := theme.ParseColor(st.Shadow); ok {
			r.Reset(width, height)
			addPath(r, l.Fill.Iter(), vec.Vec2{X: float64(shadow.X), Y: float64(shadow.Y)})
			paint(img, r, c)
		}
	}

	if c, ok := theme.ParseColor(st.Fill); ok {
		r.Reset(width, height)
		addPath(r, l.Fill.Iter(), vec.Vec2{})
		paint(img, r, c)
	}

	if sw := strokeWidth(l, st); sw > 0 {
		if c, ok := theme.ParseColor(st.Stroke); ok {
			r.Reset(width, height)
			for _, s := range outlineSegments(l.Shape.Iter()) {
				addStrokeQuad(r, s, sw/2)
			}
			paint(img, r, c)
		}
	}

	return img
}

// WritePNG encodes the result of [Rasterize] as PNG.
func WritePNG(w io.Writer, l *panel.Layout, st theme.Style, shadow panel.ShadowOffset) error {
	return png.Encode(w, Rasterize(l, st, shadow))
}

// addPath adds the subpaths of p, shifted by off, to r.
func addPath(r *vector.Rasterizer, p path.Path, off vec.Vec2) {
	open := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				r.ClosePath()
			}
			moveTo(r, pts[0].Add(off))
			open = true
		case path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo:
			lineTo(r, pts[len(pts)-1].Add(off))
		case path.CmdClose:
			r.ClosePath()
			open = false
		}
	}
	if open {
		r.ClosePath()
	}
}

func paint(dst *image.RGBA, r *vector.Rasterizer, c color.RGBA) {
	if c.A == 0 {
		return
	}
	r.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}
