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

// Package panel generates outlines for rectangular panels with bevelled
// corners and stepped edges, as used for angular user interface frames.
//
// The geometry is computed as [seehuhn.de/go/geom/path.Data] and can be
// converted into SVG path data with [FormatPath].  All functions are pure
// and safe for concurrent use.  Invalid settings never cause errors; they
// degrade to straight edges, sharp corners and zero offsets.
package panel

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Config describes the decoration of a panel.
type Config struct {
	Bevels BevelConfig
	Steps  StepConfig

	// StrokeWidth is the width of the outline, in any form accepted by
	// [StrokeWidthPixels].
	StrokeWidth any
}

// Layout collects everything needed to draw a panel into a box of a given
// size.  Coordinates use the SVG convention: the origin is the top-left
// corner of the box and y points down.  For rectangles, LLx/LLy hold the
// top-left and URx/URy the bottom-right corner.
//
// A Layout must not be modified, since [Cache] shares instances.
type Layout struct {
	Width, Height float64

	// Base is the rectangle which is bevelled and stepped.  It is the box
	// shrunk by Bounds, so that outward steps stay inside the box.
	Base rect.Rect

	Bounds      StepBounds
	Padding     Padding
	StrokeWidth float64

	// Content is the area available for the panel's content.
	Content rect.Rect

	// Fill is the closed outline used for the background, Shape the
	// outline used for the border.
	Fill  *path.Data
	Shape *path.Data
}

// NewLayout computes the layout of a width×height panel.
func NewLayout(width, height float64, cfg *Config) *Layout {
	if cfg == nil {
		cfg = &Config{}
	}
	width = max(width, 0)
	height = max(height, 0)

	bounds := cfg.Steps.Bounds()
	baseW := max(width-bounds.Left-bounds.Right, 0)
	baseH := max(height-bounds.Top-bounds.Bottom, 0)
	toBox := matrix.Matrix{1, 0, 0, 1, bounds.Left, bounds.Top}

	pad := MinPadding(cfg)
	l := &Layout{
		Width:  width,
		Height: height,
		Base: rect.Rect{
			LLx: bounds.Left,
			LLy: bounds.Top,
			URx: bounds.Left + baseW,
			URy: bounds.Top + baseH,
		},
		Bounds:      bounds,
		Padding:     pad,
		StrokeWidth: StrokeWidthPixels(cfg.StrokeWidth),
		Content:     insetRect(width, height, pad),
		Fill:        transformPath(FillPath(baseW, baseH, cfg.Bevels, cfg.Steps), toBox),
		Shape:       transformPath(ShapePath(baseW, baseH, cfg.Bevels, cfg.Steps), toBox),
	}
	return l
}

// FillString returns the fill outline as SVG path data.
func (l *Layout) FillString() string {
	return FormatPath(l.Fill)
}

// ShapeString returns the border outline as SVG path data.
func (l *Layout) ShapeString() string {
	return FormatPath(l.Shape)
}

// insetRect shrinks the box 0,0–width,height by the padding.  If nothing
// is left, the result is an empty rectangle at the centre of the padded
// region.
func insetRect(width, height float64, pad Padding) rect.Rect {
	r := rect.Rect{
		LLx: pad.Left,
		LLy: pad.Top,
		URx: width - pad.Right,
		URy: height - pad.Bottom,
	}
	if r.URx < r.LLx {
		mid := (r.LLx + r.URx) / 2
		r.LLx, r.URx = mid, mid
	}
	if r.URy < r.LLy {
		mid := (r.LLy + r.URy) / 2
		r.LLy, r.URy = mid, mid
	}
	return r
}

// transformPath applies the affine map m to all points of p, in place.
func transformPath(p *path.Data, m matrix.Matrix) *path.Data {
	for i, pt := range p.Coords {
		p.Coords[i] = applyMatrix(m, pt)
	}
	return p
}

func applyMatrix(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}
