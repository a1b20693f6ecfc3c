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

// Package config reads panel descriptions from YAML files.
//
// A panel file looks like this:
//
//	width: 240
//	height: 90
//	class: alert
//	strokeWidth: 2px
//	theme: panels.css
//	bevels:
//	  topLeft: {size: 14}
//	  bottomRight: {size: 14, angle: 60}
//	steps:
//	  top:
//	    - {start: 0.55, end: 1, height: 4}
//	shadow:
//	  maxDistance: 6
//	  target: {kind: point, x: 0, y: 0}
//	  viewport: {width: 1280, height: 720}
//	  element: {x: 100, y: 80, width: 240, height: 90}
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/panel"
	"seehuhn.de/go/panel/theme"
)

// File is the content of a panel file.
type File struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Class       string  `yaml:"class,omitempty"`
	StrokeWidth any     `yaml:"strokeWidth,omitempty"`
	Theme       string  `yaml:"theme,omitempty"`

	Bevels BevelsConfig `yaml:"bevels,omitempty"`
	Steps  StepsConfig  `yaml:"steps,omitempty"`
	Shadow ShadowConfig `yaml:"shadow,omitempty"`

	// dir is the directory of the file, used to resolve the theme path.
	dir string
}

// BevelsConfig lists the bevelled corners.
type BevelsConfig struct {
	TopLeft     *Bevel `yaml:"topLeft,omitempty"`
	TopRight    *Bevel `yaml:"topRight,omitempty"`
	BottomRight *Bevel `yaml:"bottomRight,omitempty"`
	BottomLeft  *Bevel `yaml:"bottomLeft,omitempty"`
}

// Bevel is a single corner cut.  An angle of zero selects 45 degrees.
type Bevel struct {
	Size  float64 `yaml:"size"`
	Angle float64 `yaml:"angle,omitempty"`
}

// StepsConfig lists the step segments of every edge.
type StepsConfig struct {
	Top    []Step `yaml:"top,omitempty"`
	Right  []Step `yaml:"right,omitempty"`
	Bottom []Step `yaml:"bottom,omitempty"`
	Left   []Step `yaml:"left,omitempty"`
}

// Step is a raised (positive height) or recessed (negative height) part
// of an edge, between the fractions start and end of the edge length.
type Step struct {
	Start  float64 `yaml:"start"`
	End    float64 `yaml:"end"`
	Height float64 `yaml:"height"`
}

// ShadowConfig describes the dynamic drop shadow.
type ShadowConfig struct {
	MaxDistance float64      `yaml:"maxDistance"`
	Blur        float64      `yaml:"blur,omitempty"`
	Target      TargetConfig `yaml:"target,omitempty"`
	Viewport    SizeConfig   `yaml:"viewport,omitempty"`

	// Element is the position of the panel in the viewport.  If the
	// size is zero, the panel size is used.
	Element RectConfig `yaml:"element,omitempty"`
}

// TargetConfig selects the point the shadow leans away from.  Kind is
// one of "center" (the default), "point", "element" and "percent".
type TargetConfig struct {
	Kind   string     `yaml:"kind,omitempty"`
	X      float64    `yaml:"x,omitempty"`
	Y      float64    `yaml:"y,omitempty"`
	Region RectConfig `yaml:"region,omitempty"`
}

// SizeConfig is a width and a height.
type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RectConfig is a rectangle given by its top-left corner and size.
type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (r RectConfig) rect() rect.Rect {
	return rect.Rect{LLx: r.X, LLy: r.Y, URx: r.X + r.Width, URy: r.Y + r.Height}
}

// Default returns the settings used for fields missing from a panel file.
func Default() *File {
	return &File{
		Width:       240,
		Height:      120,
		StrokeWidth: "1px",
		Shadow: ShadowConfig{
			MaxDistance: 8,
			Blur:        4,
			Target:      TargetConfig{Kind: "center"},
			Viewport:    SizeConfig{Width: 1280, Height: 720},
		},
	}
}

// Load reads a panel file.  Fields which are not set in the file keep
// their values from [Default].
func Load(path string) (*File, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read panel file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse panel file: %w", err)
	}
	cfg.dir = filepath.Dir(path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the panel file to path.
func (f *File) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal panel file: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write panel file: %w", err)
	}
	return nil
}

// ErrInvalid is returned by [File.Validate] for unusable settings.
var ErrInvalid = errors.New("invalid panel file")

// Validate checks the settings which cannot be repaired by the geometry
// code.
func (f *File) Validate() error {
	if !isSize(f.Width) || !isSize(f.Height) {
		return fmt.Errorf("%w: size %gx%g", ErrInvalid, f.Width, f.Height)
	}
	switch f.Shadow.Target.Kind {
	case "", "center", "point", "element", "percent":
	default:
		return fmt.Errorf("%w: unknown shadow target %q", ErrInvalid, f.Shadow.Target.Kind)
	}
	return nil
}

func isSize(x float64) bool {
	return x >= 0 && !math.IsInf(x, 1)
}

// Panel returns the geometry settings of the file.
func (f *File) Panel() *panel.Config {
	return &panel.Config{
		Bevels: panel.BevelConfig{
			TopLeft:     f.Bevels.TopLeft.corner(),
			TopRight:    f.Bevels.TopRight.corner(),
			BottomRight: f.Bevels.BottomRight.corner(),
			BottomLeft:  f.Bevels.BottomLeft.corner(),
		},
		Steps: panel.StepConfig{
			Top:    edgeSteps(f.Steps.Top),
			Right:  edgeSteps(f.Steps.Right),
			Bottom: edgeSteps(f.Steps.Bottom),
			Left:   edgeSteps(f.Steps.Left),
		},
		StrokeWidth: f.StrokeWidth,
	}
}

func (b *Bevel) corner() *panel.CornerBevel {
	if b == nil {
		return nil
	}
	return &panel.CornerBevel{Size: b.Size, Angle: b.Angle}
}

func edgeSteps(steps []Step) *panel.EdgeSteps {
	if len(steps) == 0 {
		return nil
	}
	res := &panel.EdgeSteps{Segments: make([]panel.StepSegment, len(steps))}
	for i, s := range steps {
		res.Segments[i] = panel.StepSegment{Start: s.Start, End: s.End, Height: s.Height}
	}
	return res
}

// Layout computes the layout of the panel.
func (f *File) Layout() *panel.Layout {
	return panel.NewLayout(f.Width, f.Height, f.Panel())
}

// ShadowTarget returns the target of the dynamic shadow.
func (f *File) ShadowTarget() panel.ShadowTarget {
	t := f.Shadow.Target
	switch t.Kind {
	case "point":
		return panel.Point{X: t.X, Y: t.Y}
	case "element":
		return panel.ElementCenter{Rect: t.Region.rect()}
	case "percent":
		return panel.ViewportPercent{X: t.X, Y: t.Y}
	default:
		return panel.ViewportCenter{}
	}
}

// ShadowOffset computes the offset of the dynamic drop shadow.
func (f *File) ShadowOffset() panel.ShadowOffset {
	s := f.Shadow
	elem := s.Element
	if elem.Width == 0 && elem.Height == 0 {
		elem.Width = f.Width
		elem.Height = f.Height
	}
	vp := panel.Viewport{Width: s.Viewport.Width, Height: s.Viewport.Height}
	return panel.DynamicShadow(elem.rect(), s.MaxDistance, f.ShadowTarget(), vp)
}

// Resolver loads the stylesheet named in the file.  A relative path is
// interpreted relative to the directory of the panel file.  Without a
// stylesheet, the default style is used for all classes.
func (f *File) Resolver() (theme.Resolver, error) {
	if f.Theme == "" {
		return theme.Fixed(theme.Default), nil
	}
	th, err := LoadTheme(f.resolve(f.Theme))
	if err != nil {
		return nil, err
	}
	return th, nil
}

// Style returns the style of the panel's class.
func (f *File) Style() (theme.Style, error) {
	r, err := f.Resolver()
	if err != nil {
		return theme.Style{}, err
	}
	return r.Resolve(f.Class), nil
}

func (f *File) resolve(name string) string {
	if filepath.IsAbs(name) || f.dir == "" {
		return name
	}
	return filepath.Join(f.dir, name)
}

// LoadTheme reads a CSS stylesheet.
func LoadTheme(path string) (*theme.Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}
	th, err := theme.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme %s: %w", path, err)
	}
	return th, nil
}
