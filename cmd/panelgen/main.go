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

// Command panelgen computes bevelled and stepped panel outlines from YAML
// panel files and renders them as SVG, PNG or PDF.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"seehuhn.de/go/panel/config"
)

var (
	// Global flags
	verbose   bool
	output    string
	themeFile string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "panelgen",
	Short: "Generate bevelled and stepped panel outlines",
	Long: `panelgen reads a YAML panel file and computes the outline of the panel:
bevelled corners, raised or recessed steps along the edges, the padding
needed for the content and a drop shadow offset.

The result can be printed as SVG path data or rendered as SVG, PNG or PDF.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logCfg := zap.NewProductionConfig()
		if verbose {
			logCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = logCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output file (default: standard output)")
	rootCmd.PersistentFlags().StringVar(&themeFile, "theme", "", "CSS stylesheet, overrides the theme of the panel file")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(shadowCmd)
	rootCmd.AddCommand(svgCmd)
	rootCmd.AddCommand(pngCmd)
	rootCmd.AddCommand(pdfCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadPanel reads the panel file and applies the --theme flag.
func loadPanel(path string) (*config.File, error) {
	logger.Debug("Loading panel file", zap.String("path", path))
	f, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if themeFile != "" {
		f.Theme = themeFile
	}
	logger.Debug("Panel loaded",
		zap.Float64("width", f.Width),
		zap.Float64("height", f.Height),
		zap.String("class", f.Class),
		zap.String("theme", f.Theme))
	return f, nil
}

// withOutput calls write with the file named by --output, or with the
// command's standard output if the flag is not set.
func withOutput(cmd *cobra.Command, write func(w io.Writer) error) error {
	if output == "" {
		return write(cmd.OutOrStdout())
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := write(out); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("Wrote output", zap.String("path", output))
	return nil
}
