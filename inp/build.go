// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/fun/dbf"
	"gonum.org/v1/gonum/unit"

	"github.com/normanrichardson/structuralglass/ana"
	"github.com/normanrichardson/structuralglass/demand"
	"github.com/normanrichardson/structuralglass/fault"
	"github.com/normanrichardson/structuralglass/mdl/equiv"
	"github.com/normanrichardson/structuralglass/mdl/glass"
	"github.com/normanrichardson/structuralglass/mdl/layer"
	"github.com/normanrichardson/structuralglass/units"
)

// Check holds the resolved check data
type Check struct {
	Type      *glass.Type  // glass type
	Params    glass.Params // conditions of the allowable stress
	DeflLimit float64      // deflection limit as span ratio; 0 means no deflection check
}

// Analysis holds the objects built from input data
type Analysis struct {
	Desc     string          // description
	System   units.System    // unit system of reports
	Products *layer.Registry // default and additional interlayer products
	Glass    *glass.Registry // default and additional glass types

	// laminates in input order
	Plies       []*layer.Ply
	Interlayers []*layer.Interlayer
	Packages    []*equiv.Package

	// names
	PlyNames map[layer.PlyID]string
	PkgNames map[equiv.PackageID]string

	// demand
	Panel *demand.IGUWind // nil if no panel is given
	Check *Check          // nil if no check is given
}

// Build validates input data and builds all objects
func (o *Data) Build() (a *Analysis, err error) {

	// global
	a = &Analysis{
		Desc:     o.Desc,
		Products: layer.Default.Clone(),
		Glass:    glass.Default.Clone(),
		PlyNames: make(map[layer.PlyID]string),
		PkgNames: make(map[equiv.PackageID]string),
	}
	if a.System, err = units.SystemByName(o.Units); err != nil {
		return nil, err
	}

	// registries
	for i, p := range o.Products {
		if err = registerProduct(a.Products, i, p); err != nil {
			return nil, err
		}
	}
	for i, g := range o.GlassTypes {
		if err = registerGlass(a.Glass, i, g); err != nil {
			return nil, err
		}
	}

	// plies and interlayers
	layers := make(map[string]layer.Layer)
	for i, p := range o.Plies {
		if err = checkName(layers, "ply", i, pName(p)); err != nil {
			return nil, err
		}
		ply, err := p.build()
		if err != nil {
			return nil, fault.Wrap(err, "ply %q", p.Name)
		}
		layers[p.Name] = ply
		a.Plies = append(a.Plies, ply)
		a.PlyNames[ply.ID()] = p.Name
	}
	for i, d := range o.Interlayers {
		if err = checkName(layers, "interlayer", i, iName(d)); err != nil {
			return nil, err
		}
		il, err := d.build(a.Products)
		if err != nil {
			return nil, fault.Wrap(err, "interlayer %q", d.Name)
		}
		layers[d.Name] = il
		a.Interlayers = append(a.Interlayers, il)
	}

	// panel dimensions
	var dimX, dimY unit.Length
	if o.Panel != nil {
		if dimX, err = qtyLength(o.Panel.DimX, "panel.dimx"); err != nil {
			return nil, err
		}
		if dimY, err = qtyLength(o.Panel.DimY, "panel.dimy"); err != nil {
			return nil, err
		}
	}

	// packages
	pkgs := make(map[string]*equiv.Package)
	for i, d := range o.Packages {
		if d == nil || d.Name == "" {
			return nil, fault.Validation("package %d must have a name", i)
		}
		if _, ok := pkgs[d.Name]; ok {
			return nil, fault.Validation("package name %q is repeated", d.Name)
		}
		pkg, err := d.build(layers, math.Min(float64(dimX), float64(dimY)))
		if err != nil {
			return nil, fault.Wrap(err, "package %q", d.Name)
		}
		pkgs[d.Name] = pkg
		a.Packages = append(a.Packages, pkg)
		a.PkgNames[pkg.ID()] = d.Name
	}

	// panel
	if o.Panel != nil {
		load, err := qtyPressure(o.Panel.Load, "panel.load")
		if err != nil {
			return nil, err
		}
		selected := a.Packages
		if len(o.Panel.Packages) > 0 {
			selected = nil
			for _, name := range o.Panel.Packages {
				pkg, ok := pkgs[name]
				if !ok {
					return nil, fault.Lookup("panel: package %q is not defined", name)
				}
				selected = append(selected, pkg)
			}
		}
		if a.Panel, err = demand.NewIGUWind(selected, load, dimX, dimY); err != nil {
			return nil, fault.Wrap(err, "panel")
		}
	}

	// check
	if o.Check != nil {
		if a.Check, err = o.Check.build(a.Glass); err != nil {
			return nil, fault.Wrap(err, "check")
		}
	}
	return
}

// registerProduct adds an interlayer product to reg
func registerProduct(reg *layer.Registry, i int, p *ProductData) (err error) {
	if p == nil {
		return fault.Validation("product %d is empty", i)
	}
	temps := make([]unit.Temperature, len(p.Temps))
	for j, q := range p.Temps {
		if temps[j], err = qtyTemperature(q, "temps"); err != nil {
			return fault.Wrap(err, "product %q", p.Name)
		}
	}
	durs := make([]unit.Time, len(p.Durs))
	for j, q := range p.Durs {
		if durs[j], err = qtyTime(q, "durs"); err != nil {
			return fault.Wrap(err, "product %q", p.Name)
		}
	}
	gu := p.GU
	if gu == "" {
		gu = "MPa"
	}
	rows := make([][]unit.Pressure, len(p.G))
	for j, row := range p.G {
		rows[j] = make([]unit.Pressure, len(row))
		for k, v := range row {
			if rows[j][k], err = qtyPressure(Qty{v, gu}, "g"); err != nil {
				return fault.Wrap(err, "product %q", p.Name)
			}
		}
	}
	table, err := layer.NewTable(temps, durs, rows)
	if err != nil {
		return fault.Wrap(err, "product %q", p.Name)
	}
	return reg.Register(p.Name, table)
}

// registerGlass adds a glass type to reg
func registerGlass(reg *glass.Registry, i int, g *GlassTypeData) (err error) {
	if g == nil {
		return fault.Validation("glass type %d is empty", i)
	}
	var data glass.Data
	if data.StressSurface, err = qtyPressure(g.StressSurface, "stresssurface"); err != nil {
		return fault.Wrap(err, "glass type %q", g.Name)
	}
	if data.StressEdge, err = qtyPressure(g.StressEdge, "stressedge"); err != nil {
		return fault.Wrap(err, "glass type %q", g.Name)
	}
	data.DurationFactor = g.DurationFactor
	data.CoefVariation = g.CoefVariation
	data.SurfFactors = g.SurfFactors
	if data.SurfFactors == nil {
		data.SurfFactors = map[string]float64{glass.SurfNone: 1}
	}
	return reg.Register(g.Name, g.Abbr, data)
}

// build builds a ply
func (o *PlyData) build() (ply *layer.Ply, err error) {
	given := 0
	for _, q := range []*Qty{o.Nominal, o.Actual, o.TMin} {
		if q != nil {
			given++
		}
	}
	if given != 1 {
		return nil, fault.Validation("exactly one of nominal, actual or tmin must be given")
	}
	var tnom, tmin unit.Length
	switch {
	case o.Nominal != nil:
		if tnom, err = qtyLength(*o.Nominal, "nominal"); err != nil {
			return
		}
		if o.E == nil {
			return layer.FromNominal(tnom)
		}
		if tmin, err = layer.MinThickness(tnom); err != nil {
			return
		}
	case o.Actual != nil:
		if tmin, err = qtyLength(*o.Actual, "actual"); err != nil {
			return
		}
		if o.E == nil {
			return layer.FromActual(tmin)
		}
	default:
		if tmin, err = qtyLength(*o.TMin, "tmin"); err != nil {
			return
		}
	}
	E := ana.SodaLime().E
	if o.E != nil {
		if E, err = qtyPressure(*o.E, "e"); err != nil {
			return
		}
	}
	return layer.NewPly(tmin, E)
}

// build builds an interlayer
func (o *InterlayerData) build(reg *layer.Registry) (il *layer.Interlayer, err error) {
	t, err := qtyLength(o.T, "t")
	if err != nil {
		return nil, err
	}
	switch {
	case o.G != nil && o.Product != "":
		return nil, fault.Validation("g and product must not be given together")
	case o.G != nil:
		if o.Temp != nil || o.Dur != nil {
			return nil, fault.Validation("temp and dur must not be given with a static shear modulus")
		}
		G, err := qtyPressure(*o.G, "g")
		if err != nil {
			return nil, err
		}
		return layer.Static(t, G)
	case o.Product != "":
		if il, err = layer.FromProductIn(reg, t, o.Product); err != nil {
			return nil, err
		}
	default:
		return nil, fault.Validation("either g or product must be given")
	}
	if o.Temp != nil {
		q, err := o.Temp.Unit()
		if err != nil {
			return nil, err
		}
		if err = il.SetTemperature(q); err != nil {
			return nil, err
		}
	}
	if o.Dur != nil {
		q, err := o.Dur.Unit()
		if err != nil {
			return nil, err
		}
		if err = il.SetDuration(q); err != nil {
			return nil, err
		}
	}
	return
}

// build builds a package; span is the short panel dimension [m] or zero
//  Note: the shear transfer model takes the span of the panel unless given
func (o *PackageData) build(layers map[string]layer.Layer, span float64) (*equiv.Package, error) {
	model, err := equiv.New(o.Model)
	if err != nil {
		return nil, err
	}
	var prms dbf.Params
	hasSpan := false
	for _, p := range o.Prms {
		if p == nil {
			continue
		}
		name := strings.ToLower(p.N)
		isSpan := name == "span" || name == "a"
		hasSpan = hasSpan || isSpan
		v := p.V
		if p.U != "" {
			q, err := units.Parse(p.V, p.U)
			if err != nil {
				return nil, err
			}
			if isSpan {
				if _, err = units.Length(q, p.N); err != nil {
					return nil, err
				}
			} else if !unit.DimensionsMatch(q, unit.Dimless(1)) {
				return nil, fault.Unit("%s must be dimensionless; got %v", p.N, q)
			}
			v = q.Value()
		}
		prms = append(prms, &dbf.P{N: p.N, V: v})
	}
	if model.Method() == equiv.MethodShearTransfer && !hasSpan && span > 0 {
		prms = append(prms, &dbf.P{N: "span", V: span})
	}
	if err = model.Init(prms); err != nil {
		return nil, err
	}
	var list []layer.Layer
	for _, name := range o.Layers {
		l, ok := layers[name]
		if !ok {
			return nil, fault.Lookup("layer %q is not defined", name)
		}
		list = append(list, l)
	}
	b, err := layer.NewBuildup(list...)
	if err != nil {
		return nil, err
	}
	return equiv.NewPackage(model, b)
}

// build resolves the check data
func (o *CheckData) build(reg *glass.Registry) (c *Check, err error) {
	c = &Check{DeflLimit: o.DeflLimit}
	if c.Type, err = reg.Find(o.Glass); err != nil {
		return nil, err
	}
	c.Params = glass.Params{Ratio: o.Ratio, Surface: o.Surface, Edge: o.Edge}
	if o.Duration != nil {
		if c.Params.Duration, err = qtyTime(*o.Duration, "duration"); err != nil {
			return nil, err
		}
	}
	if o.DeflLimit < 0 {
		return nil, fault.Validation("defllimit must not be negative; got %g", o.DeflLimit)
	}
	if _, err = c.Type.Allowable(c.Params); err != nil {
		return nil, err
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////

// checkName checks that a layer name is given and unique
func checkName(layers map[string]layer.Layer, kind string, i int, name string) error {
	if name == "" {
		return fault.Validation("%s %d must have a name", kind, i)
	}
	if _, ok := layers[name]; ok {
		return fault.Validation("layer name %q is repeated", name)
	}
	return nil
}

func pName(p *PlyData) string {
	if p == nil {
		return ""
	}
	return p.Name
}

func iName(d *InterlayerData) string {
	if d == nil {
		return ""
	}
	return d.Name
}

// qtyLength converts q to a positive length
func qtyLength(q Qty, name string) (unit.Length, error) {
	u, err := q.Unit()
	if err != nil {
		return 0, err
	}
	l, err := units.Length(u, name)
	if err != nil {
		return 0, err
	}
	return l, units.Positive(float64(l), name)
}

// qtyPressure converts q to a pressure
func qtyPressure(q Qty, name string) (unit.Pressure, error) {
	u, err := q.Unit()
	if err != nil {
		return 0, err
	}
	return units.Pressure(u, name)
}

// qtyTime converts q to a positive time
func qtyTime(q Qty, name string) (unit.Time, error) {
	u, err := q.Unit()
	if err != nil {
		return 0, err
	}
	t, err := units.Time(u, name)
	if err != nil {
		return 0, err
	}
	return t, units.Positive(float64(t), name)
}

// qtyTemperature converts q to a temperature
func qtyTemperature(q Qty, name string) (unit.Temperature, error) {
	u, err := q.Unit()
	if err != nil {
		return 0, err
	}
	return units.Temperature(u, name)
}
