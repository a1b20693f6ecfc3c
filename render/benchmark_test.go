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
	"fmt"
	"io"
	"testing"

	"seehuhn.de/go/panel"
	"seehuhn.de/go/panel/testcases"
	"seehuhn.de/go/panel/theme"
)

func BenchmarkRasterize(b *testing.B) {
	tc := testcases.All["mixed"][1]
	sizes := []float64{1, 4}

	for _, scale := range sizes {
		b.Run(fmt.Sprintf("%gx%g", tc.Width*scale, tc.Height*scale), func(b *testing.B) {
			l := panel.NewLayout(tc.Width*scale, tc.Height*scale, &tc.Config)
			shadow := panel.ShadowOffset{X: 4, Y: 4}

			b.ReportAllocs()
			for b.Loop() {
				Rasterize(l, theme.Default, shadow)
			}
		})
	}
}

func BenchmarkWriteSVG(b *testing.B) {
	l := testcases.All["mixed"][1].Layout()
	b.ReportAllocs()
	for b.Loop() {
		if err := WriteSVG(io.Discard, l, theme.Default, panel.ShadowOffset{X: 2, Y: 2}); err != nil {
			b.Fatal(err)
		}
	}
}
