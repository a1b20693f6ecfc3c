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
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/panel"
	"seehuhn.de/go/panel/config"
	"seehuhn.de/go/panel/render"
)

var initCmd = &cobra.Command{
	Use:   "init <file>",
	Short: "Write a panel file with default settings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Default().Save(args[0]); err != nil {
			return err
		}
		logger.Info("Created panel file", zap.String("path", args[0]))
		return nil
	},
}

var pathsCmd = &cobra.Command{
	Use:   "paths <file>",
	Short: "Print the fill and outline paths as SVG path data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := loadPanel(args[0])
		if err != nil {
			return err
		}
		l := f.Layout()
		return withOutput(cmd, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "fill:  %s\nshape: %s\n", l.FillString(), l.ShapeString())
			return err
		})
	},
}

// layoutReport is the output of the layout command.
type layoutReport struct {
	Width       float64       `yaml:"width"`
	Height      float64       `yaml:"height"`
	StrokeWidth float64       `yaml:"strokeWidth"`
	Base        [4]float64    `yaml:"base,flow"`
	Content     [4]float64    `yaml:"content,flow"`
	Bounds      reportSides   `yaml:"bounds,flow"`
	Padding     reportPadding `yaml:"padding,flow"`
	Fill        string        `yaml:"fill"`
	Shape       string        `yaml:"shape"`
}

type reportSides struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

type reportPadding struct {
	reportSides `yaml:",inline"`
	All         float64 `yaml:"all"`
}

// rectReport lists x, y, width and height of r.
func rectReport(r rect.Rect) [4]float64 {
	return [4]float64{r.LLx, r.LLy, r.URx - r.LLx, r.URy - r.LLy}
}

var layoutCmd = &cobra.Command{
	Use:   "layout <file>",
	Short: "Print the computed layout as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := loadPanel(args[0])
		if err != nil {
			return err
		}
		l := f.Layout()
		rep := layoutReport{
			Width:       l.Width,
			Height:      l.Height,
			StrokeWidth: l.StrokeWidth,
			Base:        rectReport(l.Base),
			Content:     rectReport(l.Content),
			Bounds:      reportSides(l.Bounds),
			Padding: reportPadding{
				reportSides: reportSides{
					Top:    l.Padding.Top,
					Right:  l.Padding.Right,
					Bottom: l.Padding.Bottom,
					Left:   l.Padding.Left,
				},
				All: l.Padding.All,
			},
			Fill:  l.FillString(),
			Shape: l.ShapeString(),
		}
		return withOutput(cmd, func(w io.Writer) error {
			enc := yaml.NewEncoder(w)
			if err := enc.Encode(rep); err != nil {
				return fmt.Errorf("failed to encode layout: %w", err)
			}
			return enc.Close()
		})
	},
}

var shadowCmd = &cobra.Command{
	Use:   "shadow <file>",
	Short: "Print the dynamic drop shadow as a CSS filter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := loadPanel(args[0])
		if err != nil {
			return err
		}
		st, err := f.Style()
		if err != nil {
			return err
		}
		off := f.ShadowOffset()
		logger.Debug("Shadow computed",
			zap.String("target", f.Shadow.Target.Kind),
			zap.Int("x", off.X),
			zap.Int("y", off.Y))
		return withOutput(cmd, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "filter: %s;\n",
				panel.DropShadowFilter(off, f.Shadow.Blur, st.Shadow))
			return err
		})
	},
}

var svgCmd = &cobra.Command{
	Use:   "svg <file>",
	Short: "Render the panel as an SVG document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, l, err := prepare(args[0])
		if err != nil {
			return err
		}
		st, err := f.Style()
		if err != nil {
			return err
		}
		return withOutput(cmd, func(w io.Writer) error {
			return render.WriteSVG(w, l, st, f.ShadowOffset())
		})
	},
}

var pngCmd = &cobra.Command{
	Use:   "png <file>",
	Short: "Render the panel as a PNG image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, l, err := prepare(args[0])
		if err != nil {
			return err
		}
		st, err := f.Style()
		if err != nil {
			return err
		}
		return withOutput(cmd, func(w io.Writer) error {
			return render.WritePNG(w, l, st, f.ShadowOffset())
		})
	},
}

var pdfCmd = &cobra.Command{
	Use:   "pdf <file>",
	Short: "Render the panel as a PDF file",
	Long: `Render the panel as a single-page PDF file.  Without --output, the
file name is derived from the panel file name.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, l, err := prepare(args[0])
		if err != nil {
			return err
		}
		st, err := f.Style()
		if err != nil {
			return err
		}
		fname := output
		if fname == "" {
			fname = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".pdf"
		}
		if err := render.WritePDF(fname, l, st); err != nil {
			return fmt.Errorf("failed to write PDF: %w", err)
		}
		logger.Info("Wrote output", zap.String("path", fname))
		return nil
	},
}

// prepare loads a panel file and computes its layout.
func prepare(path string) (*config.File, *panel.Layout, error) {
	f, err := loadPanel(path)
	if err != nil {
		return nil, nil, err
	}
	l := f.Layout()
	logger.Debug("Layout computed",
		zap.Float64("strokeWidth", l.StrokeWidth),
		zap.Float64("padding", l.Padding.All))
	return f, l, nil
}
