// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements reports of analysis results
package out

import (
	"bytes"
	"encoding/json"
	goio "io"
	"math"
	"strings"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/unit"
	"gopkg.in/yaml.v3"

	"github.com/normanrichardson/structuralglass/fault"
	"github.com/normanrichardson/structuralglass/inp"
	"github.com/normanrichardson/structuralglass/mdl/equiv"
	"github.com/normanrichardson/structuralglass/units"
)

// Report holds results expressed in the units of one unit system
type Report struct {
	Desc     string     `json:"desc" yaml:"desc"`                       // description
	Units    string     `json:"units" yaml:"units"`                     // name of unit system
	Symbols  Symbols    `json:"symbols" yaml:"symbols"`                 // unit symbols of values
	Panel    *Panel     `json:"panel,omitempty" yaml:"panel,omitempty"` // panel; nil if not given
	Packages []*Package `json:"packages" yaml:"packages"`               // packages in input order
	Pass     *bool      `json:"pass,omitempty" yaml:"pass,omitempty"`   // all checks pass; nil without checks
}

// Symbols holds the unit symbols of reported values
type Symbols struct {
	Span       string `json:"span" yaml:"span"`
	Thickness  string `json:"thickness" yaml:"thickness"`
	Deflection string `json:"deflection" yaml:"deflection"`
	Stress     string `json:"stress" yaml:"stress"`
	Pressure   string `json:"pressure" yaml:"pressure"`
	LineLoad   string `json:"lineload" yaml:"lineload"`
}

// Panel holds panel data
type Panel struct {
	DimX      float64 `json:"dimx" yaml:"dimx"`                               // dimension along x [span]
	DimY      float64 `json:"dimy" yaml:"dimy"`                               // dimension along y [span]
	Load      float64 `json:"load" yaml:"load"`                               // uniform lateral pressure [pressure]
	Glass     string  `json:"glass,omitempty" yaml:"glass,omitempty"`         // glass type of the check
	DeflLimit float64 `json:"defllimit,omitempty" yaml:"defllimit,omitempty"` // deflection limit as span ratio
}

// Package holds the results of a package
type Package struct {
	Name       string   `json:"name" yaml:"name"`                                 // name given in the input file
	Method     string   `json:"method" yaml:"method"`                             // equivalent thickness model
	Hefw       float64  `json:"hefw" yaml:"hefw"`                                 // deflection thickness [thickness]
	Gamma      *float64 `json:"gamma,omitempty" yaml:"gamma,omitempty"`           // shear transfer coefficient
	Stale      bool     `json:"stale,omitempty" yaml:"stale,omitempty"`           // interlayers changed after computing
	LSF        *float64 `json:"lsf,omitempty" yaml:"lsf,omitempty"`               // load share factor
	Deflection *float64 `json:"deflection,omitempty" yaml:"deflection,omitempty"` // maximum deflection [deflection]
	DeflAllow  *float64 `json:"deflallow,omitempty" yaml:"deflallow,omitempty"`   // allowable deflection [deflection]
	Reaction   *float64 `json:"reaction,omitempty" yaml:"reaction,omitempty"`     // maximum edge reaction [lineload]
	Plies      []*Ply   `json:"plies" yaml:"plies"`                               // plies in buildup order
}

// Ply holds the results of a ply
type Ply struct {
	Name        string   `json:"name" yaml:"name"`                                   // name given in the input file
	Thickness   float64  `json:"thickness" yaml:"thickness"`                         // minimum thickness [thickness]
	Hefs        float64  `json:"hefs" yaml:"hefs"`                                   // stress thickness [thickness]
	Stress      *float64 `json:"stress,omitempty" yaml:"stress,omitempty"`           // maximum stress [stress]
	Allowable   *float64 `json:"allowable,omitempty" yaml:"allowable,omitempty"`     // allowable stress [stress]
	Utilization *float64 `json:"utilization,omitempty" yaml:"utilization,omitempty"` // |stress| / allowable
}

// NewReport collects the results of an analysis
//  Note: the panel, if any, must be solved
func NewReport(a *inp.Analysis) (o *Report, err error) {
	s := a.System
	o = &Report{
		Desc:    a.Desc,
		Units:   s.Name,
		Symbols: Symbols{s.Span, s.Thickness, s.Deflection, s.Stress, s.Pressure, s.LineLoad},
	}

	// panel
	var lsf map[equiv.PackageID]float64
	if a.Panel != nil {
		if !a.Panel.Solved() {
			return nil, fault.Validation("panel must be solved before reporting")
		}
		dimX, dimY := a.Panel.Dims()
		o.Panel = &Panel{
			DimX: units.MustIn(dimX, s.Span),
			DimY: units.MustIn(dimY, s.Span),
			Load: units.MustIn(a.Panel.Pressure(), s.Pressure),
		}
		lsf = a.Panel.LSF()
	}

	// allowable stress and deflection
	var allow unit.Pressure
	var deflAllow unit.Length
	if a.Check != nil {
		if allow, err = a.Check.Type.Allowable(a.Check.Params); err != nil {
			return nil, err
		}
		if o.Panel != nil {
			o.Panel.Glass = a.Check.Type.Name
			o.Panel.DeflLimit = a.Check.DeflLimit
			if a.Check.DeflLimit > 0 {
				dimX, dimY := a.Panel.Dims()
				deflAllow = unit.Length(math.Min(float64(dimX), float64(dimY)) / a.Check.DeflLimit)
			}
		}
	}

	// packages
	checked, pass := false, true
	for _, pkg := range a.Packages {
		r := &Package{
			Name:   a.PkgNames[pkg.ID()],
			Method: pkg.Method().String(),
			Hefw:   units.MustIn(pkg.Hefw(), s.Thickness),
			Stale:  pkg.Stale(),
		}
		if Γ, ok := pkg.Gamma(); ok {
			r.Gamma = &Γ
		}
		share, inPanel := lsf[pkg.ID()]
		if inPanel {
			w := a.Panel.Deflection()[pkg.ID()]
			r.LSF = &share
			r.Deflection = ptr(units.MustIn(w, s.Deflection))
			r.Reaction = ptr(units.MustIn(a.Panel.Reaction()[pkg.ID()], s.LineLoad))
			if deflAllow > 0 {
				r.DeflAllow = ptr(units.MustIn(deflAllow, s.Deflection))
				checked = true
				pass = pass && math.Abs(float64(w)) <= float64(deflAllow)
			}
		}
		for _, ply := range pkg.Plies() {
			h, _ := pkg.Hefs(ply.ID())
			p := &Ply{
				Name:      a.PlyNames[ply.ID()],
				Thickness: units.MustIn(ply.TMin(), s.Thickness),
				Hefs:      units.MustIn(h, s.Thickness),
			}
			if inPanel {
				σ := a.Panel.Stress()[ply.ID()]
				p.Stress = ptr(units.MustIn(σ, s.Stress))
				if allow > 0 {
					p.Allowable = ptr(units.MustIn(allow, s.Stress))
					p.Utilization = ptr(math.Abs(float64(σ)) / float64(allow))
					checked = true
					pass = pass && *p.Utilization <= 1
				}
			}
			r.Plies = append(r.Plies, p)
		}
		o.Packages = append(o.Packages, r)
	}
	if checked {
		o.Pass = &pass
	}
	return
}

// Write writes the report in the given format: "text", "json" or "yaml"
func (o *Report) Write(w goio.Writer, format string) (err error) {
	var b []byte
	switch strings.ToLower(format) {
	case "", "text", "txt":
		b = []byte(o.Text())
	case "json":
		if b, err = json.MarshalIndent(o, "", "  "); err != nil {
			return
		}
		b = append(b, '\n')
	case "yaml", "yml":
		if b, err = yaml.Marshal(o); err != nil {
			return
		}
	default:
		return fault.Validation("report format %q is incorrect; options are \"text\", \"json\" and \"yaml\"", format)
	}
	_, err = w.Write(b)
	return
}

// Text returns the report as plain text
func (o *Report) Text() string {
	var b bytes.Buffer
	if o.Desc != "" {
		io.Ff(&b, "%s\n", o.Desc)
	}
	io.Ff(&b, "units: %s\n", o.Units)
	y := o.Symbols
	if o.Panel != nil {
		io.Ff(&b, "panel: %.3f %s x %.3f %s, load = %.3f %s\n", o.Panel.DimX, y.Span, o.Panel.DimY, y.Span, o.Panel.Load, y.Pressure)
		if o.Panel.Glass != "" {
			io.Ff(&b, "glass: %s", o.Panel.Glass)
			if o.Panel.DeflLimit > 0 {
				io.Ff(&b, ", deflection limit = span/%g", o.Panel.DeflLimit)
			}
			io.Ff(&b, "\n")
		}
	}
	for _, r := range o.Packages {
		io.Ff(&b, "\npackage %s (%s)\n", r.Name, r.Method)
		io.Ff(&b, "  h_efw      = %.3f %s\n", r.Hefw, y.Thickness)
		if r.Gamma != nil {
			io.Ff(&b, "  Γ          = %.4f\n", *r.Gamma)
		}
		if r.Stale {
			io.Ff(&b, "  warning: interlayers changed after computing this package\n")
		}
		if r.LSF != nil {
			io.Ff(&b, "  LSF        = %.4f\n", *r.LSF)
			io.Ff(&b, "  deflection = %.3f %s", *r.Deflection, y.Deflection)
			if r.DeflAllow != nil {
				io.Ff(&b, " (allowable %.3f %s: %s)", *r.DeflAllow, y.Deflection, okText(math.Abs(*r.Deflection) <= *r.DeflAllow))
			}
			io.Ff(&b, "\n")
			io.Ff(&b, "  reaction   = %.3f %s\n", *r.Reaction, y.LineLoad)
		}
		for _, p := range r.Plies {
			io.Ff(&b, "  ply %-8s t = %.3f %s, h_efs = %.3f %s", p.Name, p.Thickness, y.Thickness, p.Hefs, y.Thickness)
			if p.Stress != nil {
				io.Ff(&b, ", stress = %.3f %s", *p.Stress, y.Stress)
			}
			if p.Allowable != nil {
				io.Ff(&b, " (allowable %.3f %s, ratio %.3f: %s)", *p.Allowable, y.Stress, *p.Utilization, okText(*p.Utilization <= 1))
			}
			io.Ff(&b, "\n")
		}
	}
	if o.Pass != nil {
		io.Ff(&b, "\nresult: %s\n", okText(*o.Pass))
	}
	return b.String()
}

// okText returns "OK" or "NOT OK"
func okText(ok bool) string {
	if ok {
		return "OK"
	}
	return "NOT OK"
}

func ptr(v float64) *float64 { return &v }
