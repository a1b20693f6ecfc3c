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

package testcases

import (
	"math"
	"regexp"
	"slices"
	"testing"
)

var validName = regexp.MustCompile(`^[a-z_]+$`)

func TestNames(t *testing.T) {
	for category, cases := range All {
		seen := make(map[string]bool)
		for _, tc := range cases {
			if !validName.MatchString(tc.Name) {
				t.Errorf("%s: invalid name %q", category, tc.Name)
			}
			if seen[tc.Name] {
				t.Errorf("%s: duplicate name %q", category, tc.Name)
			}
			seen[tc.Name] = true
		}
	}
}

// TestInsideBox checks that outward steps are kept inside the box.
func TestInsideBox(t *testing.T) {
	const eps = 1e-9
	for category, cases := range All {
		for _, tc := range cases {
			l := tc.Layout()
			for _, p := range slices.Concat(l.Fill.Coords, l.Shape.Coords) {
				if math.IsNaN(p.X) || math.IsNaN(p.Y) ||
					p.X < -eps || p.X > tc.Width+eps ||
					p.Y < -eps || p.Y > tc.Height+eps {
					t.Errorf("%s_%s: point %v outside the %gx%g box",
						category, tc.Name, p, tc.Width, tc.Height)
				}
			}
		}
	}
}
