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

package panel

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// edgeFrame maps positions along an edge, together with an outward
// displacement, to points.
type edgeFrame struct {
	a, b   vec.Vec2 // edge end points, in traversal order
	dir    vec.Vec2 // unit tangent a→b
	normal vec.Vec2 // unit normal, pointing away from the panel interior
}

// newEdgeFrame sets up the frame for the edge a→b.  The outline runs
// clockwise on screen (y pointing down), so the outward normal is the
// tangent rotated by -90°.  For a degenerate edge the tangent defaults to
// the x-axis.
//
// Positive heights therefore point away from the panel: on the top edge a
// raised step has negative y in the untranslated FillPath output.
func newEdgeFrame(a, b vec.Vec2) edgeFrame {
	theta := math.Atan2(b.Y-a.Y, b.X-a.X)
	sin, cos := math.Sincos(theta)
	return edgeFrame{
		a:      a,
		b:      b,
		dir:    vec.Vec2{X: cos, Y: sin},
		normal: vec.Vec2{X: sin, Y: -cos},
	}
}

// at returns the point at position t along the edge, displaced by h along
// the normal.
func (f edgeFrame) at(t, h float64) vec.Vec2 {
	return f.a.Add(f.b.Sub(f.a).Mul(t)).Add(f.normal.Mul(h))
}

// EdgeStartOffset returns the displacement of the start point of the edge
// a→b caused by a step which begins at position 0.  Adjoining corners
// connect to the displaced point instead of a.
func EdgeStartOffset(a, b vec.Vec2, steps *EdgeSteps) vec.Vec2 {
	for _, seg := range steps.normalized() {
		if seg.Start == 0 {
			return newEdgeFrame(a, b).normal.Mul(math.Abs(seg.Height))
		}
	}
	return vec.Vec2{}
}

// EdgeEndOffset returns the displacement of the end point of the edge
// a→b caused by a step which reaches position 1.
func EdgeEndOffset(a, b vec.Vec2, steps *EdgeSteps) vec.Vec2 {
	for _, seg := range steps.normalized() {
		if seg.End == 1 {
			return newEdgeFrame(a, b).normal.Mul(math.Abs(seg.Height))
		}
	}
	return vec.Vec2{}
}

// EdgeTrace is the polyline generated for one stepped edge.
type EdgeTrace struct {
	// Points lists the vertices after the start point of the edge.  The
	// start point itself is supplied by the caller.
	Points []vec.Vec2

	// EndOffset is the outward displacement at which the trace ends.
	EndOffset vec.Vec2
}

// edgeState is the accumulator of the segment fold.
type edgeState struct {
	pos    float64 // position along the edge reached so far
	height float64 // current displacement
}

// SteppedEdgePath traces the edge a→b, rising by each segment's height over
// the segment's range.  Rises and falls are 45° slopes which take up
// Height units of the edge each.
//
// If bevelStart is not nil, a segment which reaches the end of the edge
// connects directly to bevelStart, so that the plateau runs into the
// adjoining bevel.  Otherwise such a segment stays raised up to the end of
// the edge.
func SteppedEdgePath(a, b vec.Vec2, steps *EdgeSteps, bevelStart *vec.Vec2) EdgeTrace {
	f := newEdgeFrame(a, b)

	var pts []vec.Vec2
	var st edgeState
	for _, seg := range steps.normalized() {
		var segPts []vec.Vec2
		segPts, st = f.step(st, seg, bevelStart)
		pts = append(pts, segPts...)
	}
	if st.pos < 1 {
		pts = append(pts, f.at(1, st.height))
	}

	return EdgeTrace{
		Points:    pts,
		EndOffset: f.normal.Mul(st.height),
	}
}

// step returns the vertices contributed by seg, when the trace is in state
// st, together with the state after the segment.
func (f edgeFrame) step(st edgeState, seg StepSegment, bevelStart *vec.Vec2) ([]vec.Vec2, edgeState) {
	var pts []vec.Vec2

	// close the gap to the segment at the current height
	if st.pos < seg.Start {
		pts = append(pts, f.at(seg.Start, st.height))
	}

	h := seg.Height
	base := f.at(seg.Start, st.height)
	ascent := base.Add(f.dir.Mul(h)).Add(f.normal.Mul(h))
	pts = append(pts, ascent)

	next := edgeState{pos: seg.End}
	switch {
	case seg.End == 1 && bevelStart != nil:
		pts = append(pts, *bevelStart)
		next.height = h
	case seg.End == 1:
		pts = append(pts, f.at(1, h))
		next.height = h
	default:
		farCorner := f.at(seg.End, 0).Sub(f.dir.Mul(h)).Add(f.normal.Mul(h))
		pts = append(pts, farCorner, f.at(seg.End, 0))
	}
	return pts, next
}
