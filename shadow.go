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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Viewport is the size of the visible area, in pixels.
type Viewport struct {
	Width, Height float64
}

func (vp Viewport) center() vec.Vec2 {
	return vec.Vec2{X: vp.Width / 2, Y: vp.Height / 2}
}

// ShadowTarget is the reference point a dynamic shadow leans away from.
// The implementations in this package are [ViewportCenter], [Point],
// [ElementCenter] and [ViewportPercent].
type ShadowTarget interface {
	targetPoint(vp Viewport) vec.Vec2
}

// ViewportCenter targets the centre of the viewport.
type ViewportCenter struct{}

func (ViewportCenter) targetPoint(vp Viewport) vec.Vec2 {
	return vp.center()
}

// Point targets a fixed point, for example the mouse position.
type Point struct {
	X, Y float64
}

func (p Point) targetPoint(Viewport) vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// ElementCenter targets the centre of another element.
type ElementCenter struct {
	Rect rect.Rect
}

func (e ElementCenter) targetPoint(Viewport) vec.Vec2 {
	return rectCenter(e.Rect)
}

// ViewportPercent targets a point given in percent of the viewport size.
type ViewportPercent struct {
	X, Y float64
}

func (p ViewportPercent) targetPoint(vp Viewport) vec.Vec2 {
	return vec.Vec2{X: vp.Width * p.X / 100, Y: vp.Height * p.Y / 100}
}

// ShadowOffset is a shadow displacement in whole pixels.
type ShadowOffset struct {
	X, Y int
}

// DynamicShadow computes the offset of a drop shadow for the element
// occupying elem, so that the shadow points away from target.
//
// The distance between the element's centre and the target is measured
// in units of half the viewport size and scaled by maxDistance, so a
// target further away than half the viewport gives offsets beyond
// maxDistance.  Halves are rounded towards +∞.  A nil target refers to
// the origin.  An empty viewport gives no shadow offset.
func DynamicShadow(elem rect.Rect, maxDistance float64, target ShadowTarget, vp Viewport) ShadowOffset {
	if !(vp.Width > 0 && vp.Height > 0) {
		return ShadowOffset{}
	}

	var t vec.Vec2
	if target != nil {
		t = target.targetPoint(vp)
	}
	d := rectCenter(elem).Sub(t)

	nx := d.X / (vp.Width / 2)
	ny := d.Y / (vp.Height / 2)
	return ShadowOffset{
		X: roundInt(nx * maxDistance),
		Y: roundInt(ny * maxDistance),
	}
}

// DropShadowFilter formats a CSS filter value for the given offset, for
// example "drop-shadow(3px -2px 8px #00ffcc)".
func DropShadowFilter(off ShadowOffset, blur float64, color string) string {
	return fmt.Sprintf("drop-shadow(%dpx %dpx %spx %s)",
		off.X, off.Y, formatCoord(max(blur, 0)), color)
}

func rectCenter(r rect.Rect) vec.Vec2 {
	return vec.Vec2{X: (r.LLx + r.URx) / 2, Y: (r.LLy + r.URy) / 2}
}

// roundInt rounds x to the nearest integer, halves towards +∞.
// Non-finite values give 0.
func roundInt(x float64) int {
	r := math.Floor(x + 0.5)
	if r == 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return int(r)
}
