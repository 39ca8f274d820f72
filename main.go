// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/normanrichardson/structuralglass/inp"
	"github.com/normanrichardson/structuralglass/mdl/glass"
	"github.com/normanrichardson/structuralglass/mdl/layer"
	"github.com/normanrichardson/structuralglass/out"
	"github.com/normanrichardson/structuralglass/units"
)

// app holds global flags and the logger of one command execution
type app struct {
	verbose bool        // debug logging
	system  string      // unit system of reports; empty means the one of the input file
	format  string      // report format
	logger  *zap.Logger // logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd returns the sglass command with all subcommands
func newRootCmd() *cobra.Command {
	o := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "sglass",
		Short: "Structural glass design: equivalent thickness, allowable stress and wind demand",
		Long: `sglass computes laminated glass packages per ASTM E1300 and the NCSEA
Engineering Structural Glass Design Guide.

Input files are JSON (.json) or YAML (.yaml, .yml); quantities carry units:
  plies:
    - {name: outer, nominal: {v: 6, u: mm}}`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if o.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return chk.Err("failed to initialise logger: %v", err)
			}
			o.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = o.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVarP(&o.system, "units", "u", "", "unit system of reports: metric or imperial")
	root.PersistentFlags().StringVarP(&o.format, "format", "f", "text", "report format: text, json or yaml")
	root.AddCommand(o.solveCmd(), o.thicknessCmd(), o.allowableCmd(), o.productsCmd())
	return root
}

// solveCmd solves the panel of an input file
func (o *app) solveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <file>",
		Short: "Compute load share, stresses, deflections and edge reactions of a panel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.analysis(args[0])
			if err != nil {
				return err
			}
			if a.Panel == nil {
				return chk.Err("input file %q has no panel", args[0])
			}
			if err = a.Panel.Solve(); err != nil {
				return err
			}
			o.logger.Debug("panel solved", zap.Int("packages", len(a.Panel.Packages())))
			return o.report(cmd, a)
		},
	}
}

// thicknessCmd reports the equivalent thicknesses of the packages of an input file
func (o *app) thicknessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "thickness <file>",
		Short: "Compute equivalent thicknesses of the packages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.analysis(args[0])
			if err != nil {
				return err
			}
			a.Panel, a.Check = nil, nil
			return o.report(cmd, a)
		},
	}
}

// allowableCmd computes the allowable stress of a glass type
func (o *app) allowableCmd() *cobra.Command {
	var typ, duration, surface string
	var ratio float64
	var edge bool
	cmd := &cobra.Command{
		Use:   "allowable",
		Short: "Compute the allowable stress of a glass type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := glass.Default.Find(typ)
			if err != nil {
				return err
			}
			p := glass.Params{Ratio: ratio, Surface: surface, Edge: edge}
			q, err := units.ParseText(duration)
			if err != nil {
				return err
			}
			if p.Duration, err = units.Time(q, "duration"); err != nil {
				return err
			}
			allow, err := t.Allowable(p)
			if err != nil {
				return err
			}
			s, err := units.SystemByName(o.system)
			if err != nil {
				return err
			}
			o.logger.Debug("allowable stress", zap.String("type", t.Name), zap.Float64("ratio", ratio),
				zap.Float64("duration_s", float64(p.Duration)), zap.Float64("allowable_pa", float64(allow)))
			where := "surface"
			if edge {
				where = "edge"
			}
			_, err = cmd.OutOrStdout().Write([]byte(io.Sf("%s (%s) %s: %s\n", t.Name, t.Abbr, where, units.Format(allow, s.Stress, 3))))
			return err
		},
	}
	cmd.Flags().StringVarP(&typ, "type", "t", "AN", "glass type name or abbreviation")
	cmd.Flags().Float64VarP(&ratio, "ratio", "r", glass.RefRatio, "probability of breakage")
	cmd.Flags().StringVarP(&duration, "duration", "d", "3s", "load duration; e.g. 3s, 10min, 50year")
	cmd.Flags().StringVarP(&surface, "surface", "s", glass.SurfNone, "surface treatment")
	cmd.Flags().BoolVarP(&edge, "edge", "e", false, "edge allowable stress")
	return cmd
}

// productsCmd lists interlayer products and glass types
func (o *app) productsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "products [file]",
		Short: "List interlayer products and glass types, including those of an input file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			products, types := layer.Default, glass.Default
			if len(args) == 1 {
				a, err := o.analysis(args[0])
				if err != nil {
					return err
				}
				products, types = a.Products, a.Glass
			}
			var b bytes.Buffer
			io.Ff(&b, "interlayer products:\n")
			for _, name := range products.Names() {
				io.Ff(&b, "  %s\n", name)
			}
			abbrs := make(map[string]string)
			for abbr, name := range types.Abbrs() {
				abbrs[name] = abbr
			}
			io.Ff(&b, "glass types:\n")
			for _, name := range types.Names() {
				io.Ff(&b, "  %-6s %s\n", abbrs[name], name)
			}
			_, err := cmd.OutOrStdout().Write(b.Bytes())
			return err
		},
	}
}

// analysis reads and builds an input file
func (o *app) analysis(path string) (*inp.Analysis, error) {
	o.logger.Debug("reading input file", zap.String("path", path))
	dat, err := inp.Read(path)
	if err != nil {
		return nil, err
	}
	a, err := dat.Build()
	if err != nil {
		return nil, err
	}
	if o.system != "" {
		if a.System, err = units.SystemByName(o.system); err != nil {
			return nil, err
		}
	}
	o.logger.Debug("input built", zap.String("desc", a.Desc), zap.Int("plies", len(a.Plies)),
		zap.Int("interlayers", len(a.Interlayers)), zap.Int("packages", len(a.Packages)))
	return a, nil
}

// report writes the report of an analysis
func (o *app) report(cmd *cobra.Command, a *inp.Analysis) error {
	rep, err := out.NewReport(a)
	if err != nil {
		return err
	}
	if rep.Pass != nil && !*rep.Pass {
		o.logger.Warn("checks failed", zap.String("desc", a.Desc))
	}
	return rep.Write(cmd.OutOrStdout(), o.format)
}
