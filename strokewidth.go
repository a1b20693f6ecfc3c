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
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
)

// Conversion factors from CSS units to pixels.
const (
	pxPerEm = 16
	pxPerPt = 1.333
)

// strokeKeywords maps the CSS border-width keywords to pixels.
var strokeKeywords = map[string]float64{
	"thin":   1,
	"medium": 3,
	"thick":  5,
	"none":   0,
	"hidden": 0,
}

// StrokeWidthPixels converts a CSS-like stroke width to pixels.
//
// The value may be nil, a Go number, or a string such as "2", "2px",
// "0.5em", "1rem", "1.5pt", "50%" or one of the keywords thin, medium,
// thick, none and hidden.  Percentages are returned as fractions.  A
// string with an unknown unit yields its numeric part.  Anything else,
// and any negative result, gives 0.
func StrokeWidthPixels(v any) float64 {
	var w float64
	switch v := v.(type) {
	case nil:
		return 0
	case float64:
		w = v
	case float32:
		w = float64(v)
	case int:
		w = float64(v)
	case int8:
		w = float64(v)
	case int16:
		w = float64(v)
	case int32:
		w = float64(v)
	case int64:
		w = float64(v)
	case uint:
		w = float64(v)
	case uint8:
		w = float64(v)
	case uint16:
		w = float64(v)
	case uint32:
		w = float64(v)
	case uint64:
		w = float64(v)
	case uintptr:
		w = float64(v)
	case string:
		w = parseStrokeWidth(v)
	default:
		return 0
	}
	if !(w > 0) { // also catches NaN
		return 0
	}
	return w
}

func parseStrokeWidth(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	b := []byte(s)
	numLen, unitLen := parse.Dimension(b)
	if numLen == 0 {
		return strokeKeywords[strings.ToLower(s)]
	}
	x, n := strconv.ParseFloat(b[:numLen])
	if n != numLen {
		return 0
	}

	unit := strings.ToLower(string(b[numLen : numLen+unitLen]))
	switch unit {
	case "", "px":
		return x
	case "em", "rem":
		return x * pxPerEm
	case "pt":
		return x * pxPerPt
	case "%":
		return x / 100
	default:
		return x
	}
}
