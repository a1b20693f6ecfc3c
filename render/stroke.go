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
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// zeroLengthThreshold is the length below which outline segments are
// dropped.
const zeroLengthThreshold = 1e-9

// strokeSegment represents a straight piece of an outline.
type strokeSegment struct {
	A, B vec.Vec2 // endpoints
	T    vec.Vec2 // unit tangent (A→B direction)
	N    vec.Vec2 // unit normal (90° CCW from T)
}

func newStrokeSegment(a, b vec.Vec2) (strokeSegment, bool) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return strokeSegment{}, false
	}
	t := d.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	return strokeSegment{A: a, B: b, T: t, N: n}, true
}

// outlineSegments splits p into straight segments, including the closing
// segment of every closed subpath.  Curves are replaced by the chord to
// their end point; panel outlines only consist of lines.
func outlineSegments(p path.Path) []strokeSegment {
	var segs []strokeSegment
	var current, subpath vec.Vec2
	add := func(to vec.Vec2) {
		if s, ok := newStrokeSegment(current, to); ok {
			segs = append(segs, s)
		}
		current = to
	}
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			subpath = current
		case path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo:
			add(pts[len(pts)-1])
		case path.CmdClose:
			add(subpath)
		}
	}
	return segs
}

// addStrokeQuad adds the outline of a segment of width 2*d with square caps
// to r.  All quads have the same orientation, so that overlaps at the
// corners accumulate instead of cancelling.
func addStrokeQuad(r *vector.Rasterizer, s strokeSegment, d float64) {
	a := s.A.Sub(s.T.Mul(d))
	b := s.B.Add(s.T.Mul(d))
	n := s.N.Mul(d)

	moveTo(r, a.Add(n))
	lineTo(r, b.Add(n))
	lineTo(r, b.Sub(n))
	lineTo(r, a.Sub(n))
	r.ClosePath()
}

func moveTo(r *vector.Rasterizer, p vec.Vec2) {
	r.MoveTo(float32(p.X), float32(p.Y))
}

func lineTo(r *vector.Rasterizer, p vec.Vec2) {
	r.LineTo(float32(p.X), float32(p.Y))
}
