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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// outlineEdge is one side of the outline after the corners have been cut.
type outlineEdge struct {
	side  Side
	a, b  vec.Vec2 // end points of the straight part, in traversal order
	steps *EdgeSteps

	startOffset vec.Vec2 // displacement of a by a step touching position 0
	endOffset   vec.Vec2 // displacement of b by a step touching position 1
	bevelled    bool     // whether the corner at b is cut
}

// start returns the point where the outline enters the edge.
func (e *outlineEdge) start() vec.Vec2 {
	return e.a.Add(e.startOffset)
}

// end returns the point where the outline leaves the edge.
func (e *outlineEdge) end() vec.Vec2 {
	return e.b.Add(e.endOffset)
}

// outlineEdges returns the four edges of a width×height panel in
// traversal order: top, right, bottom and left.
func outlineEdges(width, height float64, bevels BevelConfig, steps StepConfig) [4]outlineEdge {
	tl := bevels.Corner(TopLeft).Offset()
	tr := bevels.Corner(TopRight).Offset()
	br := bevels.Corner(BottomRight).Offset()
	bl := bevels.Corner(BottomLeft).Offset()

	edges := [4]outlineEdge{
		{
			side:     Top,
			a:        vec.Vec2{X: tl.X, Y: 0},
			b:        vec.Vec2{X: width - tr.X, Y: 0},
			bevelled: bevels.cut(TopRight),
		},
		{
			side:     Right,
			a:        vec.Vec2{X: width, Y: tr.Y},
			b:        vec.Vec2{X: width, Y: height - br.Y},
			bevelled: bevels.cut(BottomRight),
		},
		{
			side:     Bottom,
			a:        vec.Vec2{X: width - br.X, Y: height},
			b:        vec.Vec2{X: bl.X, Y: height},
			bevelled: bevels.cut(BottomLeft),
		},
		{
			side:     Left,
			a:        vec.Vec2{X: 0, Y: height - bl.Y},
			b:        vec.Vec2{X: 0, Y: tl.Y},
			bevelled: bevels.cut(TopLeft),
		},
	}
	for i := range edges {
		e := &edges[i]
		e.steps = steps.Edge(e.side)
		e.startOffset = EdgeStartOffset(e.a, e.b, e.steps)
		e.endOffset = EdgeEndOffset(e.a, e.b, e.steps)
	}
	return edges
}

// pathWriter appends straight lines to a path, skipping lines of zero
// length.
type pathWriter struct {
	data    *path.Data
	start   vec.Vec2
	current vec.Vec2
}

func newPathWriter(start vec.Vec2) *pathWriter {
	return &pathWriter{
		data:    (&path.Data{}).MoveTo(start),
		start:   start,
		current: start,
	}
}

func (w *pathWriter) lineTo(p vec.Vec2) {
	if p == w.current {
		return
	}
	w.data = w.data.LineTo(p)
	w.current = p
}

func (w *pathWriter) lineToAll(pts []vec.Vec2) {
	for _, p := range pts {
		w.lineTo(p)
	}
}

// close closes the subpath.  If dropReturn is set, a final line back to
// the start point is removed, since Close draws the same line.
func (w *pathWriter) close(dropReturn bool) *path.Data {
	n := len(w.data.Cmds)
	if dropReturn && n > 1 && w.data.Cmds[n-1] == path.CmdLineTo && w.current == w.start {
		w.data.Cmds = w.data.Cmds[:n-1]
		w.data.Coords = w.data.Coords[:len(w.data.Coords)-1]
	}
	return w.data.Close()
}

// FillPath returns the closed outline of a width×height panel, suitable
// for filling or clipping the panel background.
//
// The outline starts where the top-left bevel meets the top edge and runs
// clockwise.  Where a step reaches the end of an edge next to a bevel, the
// raised plateau runs straight into the bevel cut.  The path uses only
// MoveTo, LineTo and Close.
func FillPath(width, height float64, bevels BevelConfig, steps StepConfig) *path.Data {
	edges := outlineEdges(width, height, bevels, steps)

	w := newPathWriter(edges[Top].start())
	for i := range edges {
		e := &edges[i]

		var bevelStart *vec.Vec2
		if e.bevelled {
			p := e.end()
			bevelStart = &p
		}
		trace := SteppedEdgePath(e.a, e.b, e.steps, bevelStart)
		w.lineToAll(trace.Points)

		// the corner: a bevel cut, or the step back onto the next edge
		next := &edges[(i+1)%len(edges)]
		if i < len(edges)-1 {
			w.lineTo(next.start())
		}
	}
	return w.close(true)
}
