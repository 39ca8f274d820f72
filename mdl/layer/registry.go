// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layer

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/unit"

	"github.com/normanrichardson/structuralglass/fault"
	"github.com/normanrichardson/structuralglass/units"
)

// Key is a (temperature, load duration) entry of a shear relaxation table
type Key struct {
	Temperature unit.Temperature
	Duration    unit.Time
}

// Table holds the shear modulus of an interlayer product for combinations of
// temperature and load duration. Tables must be rectangular: every temperature
// is given for every duration
type Table map[Key]unit.Pressure

// grid holds a rectangular table sorted along both axes
type grid struct {
	temps []float64   // temperatures [°C]
	durs  []float64   // durations [s]
	g     [][]float64 // shear modulus [Pa]; g[idur][itemp]
}

// newGrid validates and sorts a table
func newGrid(name string, table Table) (*grid, error) {
	if len(table) == 0 {
		return nil, fault.Validation("table of product %q is empty", name)
	}
	tset := make(map[float64]bool)
	dset := make(map[float64]bool)
	for k, g := range table {
		if err := units.Positive(float64(k.Duration), "duration"); err != nil {
			return nil, err
		}
		if err := units.Positive(float64(k.Temperature), "temperature"); err != nil {
			return nil, err
		}
		if err := units.Positive(float64(g), "G"); err != nil {
			return nil, err
		}
		tset[celsius(k)] = true
		dset[seconds(k)] = true
	}
	if len(tset)*len(dset) != len(table) {
		return nil, fault.Validation("table of product %q is not rectangular: %d temperatures × %d durations != %d entries",
			name, len(tset), len(dset), len(table))
	}
	o := new(grid)
	for t := range tset {
		o.temps = append(o.temps, t)
	}
	for d := range dset {
		o.durs = append(o.durs, d)
	}
	sort.Float64s(o.temps)
	sort.Float64s(o.durs)
	o.g = make([][]float64, len(o.durs))
	for j := range o.durs {
		o.g[j] = make([]float64, len(o.temps))
	}
	for k, g := range table {
		i := sort.SearchFloat64s(o.temps, celsius(k))
		j := sort.SearchFloat64s(o.durs, seconds(k))
		o.g[j][i] = float64(g)
	}
	return o, nil
}

// celsius returns the temperature of k in °C rounded to absorb conversion noise
func celsius(k Key) float64 {
	return math.Round(units.Celsius(k.Temperature)*1e9) / 1e9
}

// seconds returns the duration of k in seconds rounded to absorb conversion noise
func seconds(k Key) float64 {
	return math.Round(float64(k.Duration)*1e6) / 1e6
}

// lerp interpolates linearly; x is capped to the range of xs
func lerp(xs, ys []float64, x float64) float64 {
	if len(xs) == 1 {
		return ys[0]
	}
	var pl interp.PiecewiseLinear
	pl.Fit(xs, ys)
	return pl.Predict(x)
}

// shear interpolates the shear modulus bilinearly in (°C, s)
func (o *grid) shear(tempC, dur float64) unit.Pressure {
	col := make([]float64, len(o.durs))
	for j, row := range o.g {
		col[j] = lerp(o.temps, row, tempC)
	}
	return unit.Pressure(lerp(o.durs, col, dur))
}

// table returns the grid as a Table
func (o *grid) table() Table {
	res := make(Table, len(o.temps)*len(o.durs))
	for j, d := range o.durs {
		for i, t := range o.temps {
			res[Key{units.DegC(t), unit.Time(d)}] = unit.Pressure(o.g[j][i])
		}
	}
	return res
}

// Registry holds interlayer product tables by name
type Registry struct {
	products map[string]*grid
}

// Default holds the interlayer products available to FromProduct
var Default = NewRegistry()

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{products: make(map[string]*grid)}
}

// Clone returns a registry with the same products
//  Note: tables are immutable and therefore shared
func (o *Registry) Clone() *Registry {
	res := NewRegistry()
	for name, g := range o.products {
		res.products[name] = g
	}
	return res
}

// Register adds a product table
func (o *Registry) Register(name string, table Table) error {
	if name == "" {
		return fault.Validation("product name must not be empty")
	}
	if _, ok := o.products[name]; ok {
		return fault.Validation("product %q is already registered", name)
	}
	g, err := newGrid(name, table)
	if err != nil {
		return err
	}
	o.products[name] = g
	return nil
}

// Deregister removes a product table; unknown names are ignored
func (o *Registry) Deregister(name string) {
	delete(o.products, name)
}

// Table returns a copy of the table of a product
func (o *Registry) Table(name string) (Table, error) {
	g, err := o.find(name)
	if err != nil {
		return nil, err
	}
	return g.table(), nil
}

// Names returns the sorted names of all registered products
func (o *Registry) Names() (names []string) {
	for name := range o.products {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// find returns the grid of a product
func (o *Registry) find(name string) (*grid, error) {
	g, ok := o.products[name]
	if !ok {
		return nil, fault.Lookup("interlayer product %q is not available in the product registry", name)
	}
	return g, nil
}
