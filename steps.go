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
	"cmp"
	"fmt"
	"slices"
)

// Side identifies one of the four edges of a panel.
type Side int

// The edges, in the order the outline visits them.
const (
	Top Side = iota
	Right
	Bottom
	Left
)

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// StepSegment is a raised section of an edge.
//
// Start and End are positions along the edge, normalised to [0, 1] in the
// direction the outline traverses the edge: left to right for the top
// edge, top to bottom for the right edge, right to left for the bottom
// edge and bottom to top for the left edge.  Height is the outward
// displacement of the raised plateau.
type StepSegment struct {
	Start  float64
	End    float64
	Height float64
}

// EdgeSteps lists the step segments of one edge, in any order.
type EdgeSteps struct {
	Segments []StepSegment
}

// normalized returns the usable segments of e, clamped to [0, 1] and
// sorted by start position.  Segments which are empty after clamping are
// dropped.  The receiver may be nil.
func (e *EdgeSteps) normalized() []StepSegment {
	if e == nil || len(e.Segments) == 0 {
		return nil
	}
	res := make([]StepSegment, 0, len(e.Segments))
	for _, seg := range e.Segments {
		seg.Start = clamp01(seg.Start)
		seg.End = clamp01(seg.End)
		if !(seg.Start < seg.End) { // also catches NaN
			continue
		}
		res = append(res, seg)
	}
	slices.SortStableFunc(res, func(a, b StepSegment) int {
		return cmp.Compare(a.Start, b.Start)
	})
	return res
}

// maxHeight returns the largest step height of the edge, or zero.
func (e *EdgeSteps) maxHeight() float64 {
	if e == nil {
		return 0
	}
	h := 0.0
	for _, seg := range e.Segments {
		if seg.Height > h {
			h = seg.Height
		}
	}
	return h
}

func clamp01(x float64) float64 {
	return max(0, min(1, x))
}

// StepConfig holds the steps of all four edges.  Nil entries are
// straight edges.
type StepConfig struct {
	Top    *EdgeSteps
	Right  *EdgeSteps
	Bottom *EdgeSteps
	Left   *EdgeSteps
}

// Edge returns the steps configured for side s, or nil.
func (cfg StepConfig) Edge(s Side) *EdgeSteps {
	switch s {
	case Top:
		return cfg.Top
	case Right:
		return cfg.Right
	case Bottom:
		return cfg.Bottom
	case Left:
		return cfg.Left
	default:
		return nil
	}
}

// StepBounds gives, for every side, how far steps reach beyond the base
// rectangle.
type StepBounds struct {
	Top, Right, Bottom, Left float64
}

// Bounds returns the maximal step height on each side.  Sides without
// steps, or with only inward steps, report zero.
func (cfg StepConfig) Bounds() StepBounds {
	return StepBounds{
		Top:    cfg.Top.maxHeight(),
		Right:  cfg.Right.maxHeight(),
		Bottom: cfg.Bottom.maxHeight(),
		Left:   cfg.Left.maxHeight(),
	}
}
