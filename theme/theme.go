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

// Package theme resolves panel colours and stroke widths from CSS
// stylesheets.
//
// A stylesheet assigns properties to panel classes:
//
//	:root  { --accent: #00e5ff; }
//	.panel { fill: #0b1a24; stroke: var(--accent); stroke-width: 2px; }
//	.alert { stroke: orangered; shadow: #400000; }
//
// Rules for ":root", "*" and ".panel" apply to every class; a rule for
// ".name" applies to class name.  Later rules override earlier ones.
package theme

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Style holds the presentation attributes of a panel.  Values are CSS
// strings and are passed through to the output formats.
type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth string
	Shadow      string // colour of the drop shadow, "none" to disable
}

// Default is the style used for properties not set by a theme.
var Default = Style{
	Fill:        "#0b1a24",
	Stroke:      "#00e5ff",
	StrokeWidth: "1px",
	Shadow:      "#000000",
}

// Resolver maps a panel class to its style.
type Resolver interface {
	Resolve(class string) Style
}

// Fixed is a Resolver which returns the same style for every class.
type Fixed Style

// Resolve implements the [Resolver] interface.
func (f Fixed) Resolve(string) Style {
	return Style(f)
}

// Theme is a Resolver backed by a CSS stylesheet.
type Theme struct {
	vars  map[string]string
	rules []rule
}

type rule struct {
	selector string
	decls    []*css.Declaration
}

// Parse reads a stylesheet.  At-rules and selectors which do not name a
// panel class are ignored.
func Parse(src string) (*Theme, error) {
	sheet, err := parser.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}

	t := &Theme{vars: make(map[string]string)}
	for _, r := range sheet.Rules {
		if r.Kind != css.QualifiedRule {
			continue
		}
		for _, sel := range r.Selectors {
			switch {
			case sel == ":root":
				for _, d := range r.Declarations {
					if strings.HasPrefix(d.Property, "--") {
						t.vars[d.Property] = strings.TrimSpace(d.Value)
					}
				}
				t.rules = append(t.rules, rule{selector: "*", decls: r.Declarations})
			case sel == "*" || strings.HasPrefix(sel, ".") && !strings.ContainsAny(sel[1:], " >+~:.#["):
				t.rules = append(t.rules, rule{selector: sel, decls: r.Declarations})
			}
		}
	}
	return t, nil
}

// Resolve returns the style of the given class, starting from [Default].
func (t *Theme) Resolve(class string) Style {
	st := Default
	for _, base := range []bool{true, false} {
		for _, r := range t.rules {
			isBase := r.selector == "*" || r.selector == ".panel"
			if isBase != base || !isBase && r.selector != "."+class {
				continue
			}
			for _, d := range r.decls {
				t.apply(&st, d)
			}
		}
	}
	return st
}

func (t *Theme) apply(st *Style, d *css.Declaration) {
	val := t.expand(strings.TrimSpace(d.Value), 0)
	if val == "" {
		return
	}
	switch strings.ToLower(d.Property) {
	case "fill", "background", "background-color":
		st.Fill = val
	case "stroke", "border-color":
		st.Stroke = val
	case "stroke-width", "border-width":
		st.StrokeWidth = val
	case "shadow", "shadow-color":
		st.Shadow = val
	}
}

// maxVarDepth limits the nesting of var() references.
const maxVarDepth = 8

// expand replaces a var(--name, fallback) reference by its value.
func (t *Theme) expand(val string, depth int) string {
	if !strings.HasPrefix(val, "var(") || !strings.HasSuffix(val, ")") {
		return val
	}
	if depth >= maxVarDepth {
		return ""
	}
	inner := val[len("var(") : len(val)-1]
	name, fallback, _ := strings.Cut(inner, ",")
	name = strings.TrimSpace(name)
	fallback = strings.TrimSpace(fallback)

	if v, ok := t.vars[name]; ok {
		return t.expand(v, depth+1)
	}
	return t.expand(fallback, depth+1)
}
