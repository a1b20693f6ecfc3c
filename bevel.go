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
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Corner identifies one of the four corners of a panel.
type Corner int

// The corners, in the order the outline visits them.
const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "topLeft"
	case TopRight:
		return "topRight"
	case BottomRight:
		return "bottomRight"
	case BottomLeft:
		return "bottomLeft"
	default:
		return fmt.Sprintf("Corner(%d)", int(c))
	}
}

// defaultBevelAngle is used when a bevel does not specify an angle.
const defaultBevelAngle = 45

// CornerBevel describes a straight diagonal cut across one corner.
type CornerBevel struct {
	// Size is the length of the cut.  Zero leaves a sharp corner.
	Size float64

	// Angle is the direction of the cut in degrees, measured from the
	// horizontal edge.  Zero selects the default of 45°.
	Angle float64
}

// Offset returns how far the cut reaches along the horizontal (X) and
// vertical (Y) edge meeting at the corner.
func (b CornerBevel) Offset() vec.Vec2 {
	angle := b.Angle
	if angle == 0 {
		angle = defaultBevelAngle
	}
	return BevelOffset(b.Size, angle)
}

// BevelConfig holds the bevels of all four corners.
// Nil entries are sharp corners.
type BevelConfig struct {
	TopLeft     *CornerBevel
	TopRight    *CornerBevel
	BottomRight *CornerBevel
	BottomLeft  *CornerBevel
}

// Corner returns the bevel of corner c, with defaults filled in.
func (cfg BevelConfig) Corner(c Corner) CornerBevel {
	var b *CornerBevel
	switch c {
	case TopLeft:
		b = cfg.TopLeft
	case TopRight:
		b = cfg.TopRight
	case BottomRight:
		b = cfg.BottomRight
	case BottomLeft:
		b = cfg.BottomLeft
	}
	if b == nil {
		return CornerBevel{Angle: defaultBevelAngle}
	}
	res := *b
	if res.Angle == 0 {
		res.Angle = defaultBevelAngle
	}
	return res
}

// cut reports whether corner c is bevelled at all.
func (cfg BevelConfig) cut(c Corner) bool {
	return cfg.Corner(c).Size != 0
}

// BevelOffset converts a bevel size and angle (in degrees) into the
// horizontal and vertical extent of the cut.  Both components are
// non-negative.
func BevelOffset(size, angle float64) vec.Vec2 {
	rad := angle * math.Pi / 180
	return vec.Vec2{
		X: math.Abs(size * math.Cos(rad)),
		Y: math.Abs(size * math.Sin(rad)),
	}
}
