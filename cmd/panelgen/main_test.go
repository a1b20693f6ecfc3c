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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testPanel = `
width: 100
height: 50
strokeWidth: 2
bevels:
  topLeft: {size: 10}
shadow:
  maxDistance: 4
  blur: 6
  target: {kind: point, x: 0, y: 0}
  viewport: {width: 100, height: 50}
`

// run executes panelgen with the given arguments and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	verbose, output, themeFile = false, "", ""

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writePanel(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "panel.yaml")
	if err := os.WriteFile(path, []byte(testPanel), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPaths(t *testing.T) {
	out, err := run(t, "paths", writePanel(t))
	if err != nil {
		t.Fatal(err)
	}
	want := "fill:  M 7.07 0 L 100 0 L 100 50 L 0 50 L 0 7.07 Z\n" +
		"shape: M 7.07 0 L 100 0 L 100 50 L 0 50 L 0 7.07 L 7.07 0 Z\n"
	if out != want {
		t.Errorf("got\n%s\nwant\n%s", out, want)
	}
}

func TestLayout(t *testing.T) {
	out, err := run(t, "layout", writePanel(t))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"width: 100\n", "strokeWidth: 2\n", "content: [", "padding: {top: "} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestShadow(t *testing.T) {
	out, err := run(t, "shadow", writePanel(t))
	if err != nil {
		t.Fatal(err)
	}
	if want := "filter: drop-shadow(4px 4px 6px #000000);\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRenderFiles(t *testing.T) {
	src := writePanel(t)
	dir := t.TempDir()

	cases := []struct {
		cmd    string
		prefix string
	}{
		{"svg", "<?xml"},
		{"png", "\x89PNG"},
		{"pdf", "%PDF-"},
	}
	for _, c := range cases {
		fname := filepath.Join(dir, "panel."+c.cmd)
		if _, err := run(t, c.cmd, "-o", fname, src); err != nil {
			t.Fatalf("%s: %v", c.cmd, err)
		}
		data, err := os.ReadFile(fname)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(data, []byte(c.prefix)) {
			t.Errorf("%s: unexpected file content %q", c.cmd, data[:min(len(data), 16)])
		}
	}
}

func TestThemeFlag(t *testing.T) {
	src := writePanel(t)
	css := filepath.Join(t.TempDir(), "theme.css")
	if err := os.WriteFile(css, []byte(".panel { fill: #123456; }"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "svg", "--theme", css, src)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "fill:#123456") {
		t.Errorf("theme not applied:\n%s", out)
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.yaml")
	if _, err := run(t, "init", path); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "paths", path); err != nil {
		t.Errorf("cannot read the generated file: %v", err)
	}
}

func TestMissingFile(t *testing.T) {
	if _, err := run(t, "paths", filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("missing panel file not reported")
	}
}
