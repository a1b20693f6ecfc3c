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
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
)

// coordDigits is the number of decimal places kept in SVG path data.
const coordDigits = 2

// FormatPath converts p into SVG path data, for use in the "d" attribute
// of a <path> element.  Commands are written in absolute form and
// separated by single spaces, for example "M 0 0 L 10 0 L 10 5 Z".
// Curve segments are replaced by straight lines to their end points;
// the generators in this package never produce them.
func FormatPath(p *path.Data) string {
	if p == nil {
		return ""
	}

	var b strings.Builder
	coordIdx := 0
	point := func(cmd byte, n int) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		pt := p.Coords[coordIdx+n-1]
		b.WriteByte(cmd)
		b.WriteByte(' ')
		b.WriteString(formatCoord(pt.X))
		b.WriteByte(' ')
		b.WriteString(formatCoord(pt.Y))
		coordIdx += n
	}
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			point('M', 1)
		case path.CmdLineTo:
			point('L', 1)
		case path.CmdQuadTo:
			point('L', 2)
		case path.CmdCubeTo:
			point('L', 3)
		case path.CmdClose:
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte('Z')
		}
	}
	return b.String()
}

// formatCoord rounds x to coordDigits decimal places and returns the
// shortest representation.  Negative zero is written as "0", and so are
// values which SVG cannot represent.
func formatCoord(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "0"
	}
	scale := math.Pow10(coordDigits)
	x = math.Round(x*scale) / scale
	if x == 0 {
		return "0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// FillPathString is a shorthand for FormatPath(FillPath(...)).
func FillPathString(width, height float64, bevels BevelConfig, steps StepConfig) string {
	return FormatPath(FillPath(width, height, bevels, steps))
}

// ShapePathString is a shorthand for FormatPath(ShapePath(...)).
func ShapePathString(width, height float64, bevels BevelConfig, steps StepConfig) string {
	return FormatPath(ShapePath(width, height, bevels, steps))
}
