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
)

// ShapePath returns the outline of a width×height panel for stroking.
//
// The outline visits the same corners as [FillPath], but every edge is
// traced on its own and its last vertex is moved to the reconciled corner
// point, so that raised ends meet the neighbouring edge exactly.  Each
// bevel cut, including the one at the top-left corner, is emitted as an
// explicit line before the path is closed.
func ShapePath(width, height float64, bevels BevelConfig, steps StepConfig) *path.Data {
	edges := outlineEdges(width, height, bevels, steps)

	start := edges[Top].start()
	w := newPathWriter(start)
	for i := range edges {
		e := &edges[i]

		pts := SteppedEdgePath(e.a, e.b, e.steps, nil).Points
		if n := len(pts); n > 0 {
			pts[n-1] = e.end()
		}
		w.lineToAll(pts)

		next := &edges[(i+1)%len(edges)]
		w.lineTo(next.start())
	}
	return w.close(false)
}
