// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package demand computes demands on glass panels
//  References:
//   [1] NCSEA (2021) Engineering Structural Glass Design Guide, chapter 8
//   [2] Young WC, Budynas RG (2002) Roark's Formulas for Stress and Strain, 7th ed., table 11.4
package demand

import (
	"math"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/unit"

	"github.com/normanrichardson/structuralglass/ana"
	"github.com/normanrichardson/structuralglass/fault"
	"github.com/normanrichardson/structuralglass/mdl/equiv"
	"github.com/normanrichardson/structuralglass/mdl/layer"
	"github.com/normanrichardson/structuralglass/units"
)

// IGUWind implements a simplified method for insulating glass units under (short duration)
// wind load. The load is shared by the packages in proportion to their stiffness
//   LSF_k = E_k h_efw,k³ / Σ E_j h_efw,j³
// and each package is treated as a four-side simply supported plate.
//  Note: all packages are assumed to span the same opening; this is not checked
type IGUWind struct {

	// input
	pkgs     []*equiv.Package // packages of the unit
	pressure unit.Pressure    // uniform lateral pressure
	dimX     unit.Length      // panel dimension along x
	dimY     unit.Length      // panel dimension along y

	// options
	Verbose bool // print results after Solve

	// results
	lsf        map[equiv.PackageID]float64        // load share factors
	deflection map[equiv.PackageID]unit.Length    // maximum deflection (negative in the load direction)
	reaction   map[equiv.PackageID]units.LineLoad // maximum edge reaction
	stress     map[layer.PlyID]unit.Pressure      // maximum stress in each ply
}

// NewIGUWind returns a new panel
func NewIGUWind(pkgs []*equiv.Package, pressure unit.Pressure, dimX, dimY unit.Length) (o *IGUWind, err error) {
	if len(pkgs) == 0 {
		return nil, fault.Validation("list of packages must not be empty")
	}
	seenPkg := make(map[equiv.PackageID]bool)
	seenPly := make(map[layer.PlyID]bool)
	for i, pkg := range pkgs {
		if pkg == nil {
			return nil, fault.Validation("package %d is nil", i)
		}
		if seenPkg[pkg.ID()] {
			return nil, fault.Validation("package %d (%v) appears more than once", i, pkg.ID())
		}
		seenPkg[pkg.ID()] = true
		for _, ply := range pkg.Plies() {
			if seenPly[ply.ID()] {
				return nil, fault.Validation("ply %v of package %d belongs to another package of the unit", ply.ID(), i)
			}
			seenPly[ply.ID()] = true
		}
	}
	o = &IGUWind{pkgs: append([]*equiv.Package{}, pkgs...)}
	if err = o.SetPressure(pressure); err != nil {
		return nil, err
	}
	if err = o.SetDims(dimX, dimY); err != nil {
		return nil, err
	}
	return
}

// SetPressure sets the uniform lateral pressure and clears the results
//  Note: negative pressures (suction) are allowed
func (o *IGUWind) SetPressure(pressure unit.Pressure) error {
	if math.IsNaN(float64(pressure)) || math.IsInf(float64(pressure), 0) {
		return fault.Validation("pressure must be finite; got %v", pressure)
	}
	o.pressure = pressure
	o.clear()
	return nil
}

// SetDims sets the panel dimensions and clears the results
func (o *IGUWind) SetDims(dimX, dimY unit.Length) error {
	if err := units.Positive(float64(dimX), "dim_x"); err != nil {
		return err
	}
	if err := units.Positive(float64(dimY), "dim_y"); err != nil {
		return err
	}
	o.dimX, o.dimY = dimX, dimY
	o.clear()
	return nil
}

// clear removes the results
func (o *IGUWind) clear() {
	o.lsf, o.deflection, o.reaction, o.stress = nil, nil, nil, nil
}

// Solve computes load share factors, deflections, edge reactions and ply stresses
//  Note: the load share is computed once from the stiffness ratios (no iteration)
func (o *IGUWind) Solve() error {

	// load share factors
	stiff := make([]float64, len(o.pkgs))
	sum := 0.0
	for k, pkg := range o.pkgs {
		h := float64(pkg.Hefw())
		stiff[k] = float64(pkg.E()) * h * h * h
		sum += stiff[k]
	}
	if err := units.Positive(sum, "total stiffness"); err != nil {
		return err
	}

	// demands
	lsf := make(map[equiv.PackageID]float64, len(o.pkgs))
	deflection := make(map[equiv.PackageID]unit.Length, len(o.pkgs))
	reaction := make(map[equiv.PackageID]units.LineLoad, len(o.pkgs))
	stress := make(map[layer.PlyID]unit.Pressure)
	for k, pkg := range o.pkgs {
		lsf[pkg.ID()] = stiff[k] / sum
		q := unit.Pressure(float64(o.pressure) * lsf[pkg.ID()])
		plate, err := ana.NewRoark4Side(pkg.E(), o.dimX, o.dimY, pkg.Hefw())
		if err != nil {
			return err
		}
		deflection[pkg.ID()] = plate.DeflectionMax(q)
		reaction[pkg.ID()] = plate.ReactionMax(q)
		for _, ply := range pkg.Plies() {
			h, ok := pkg.Hefs(ply.ID())
			if !ok {
				return fault.Validation("package %v has no stress thickness for ply %v", pkg.ID(), ply.ID())
			}
			if err = plate.SetT(h); err != nil {
				return err
			}
			stress[ply.ID()] = plate.StressMax(q)
		}
	}
	o.lsf, o.deflection, o.reaction, o.stress = lsf, deflection, reaction, stress

	if o.Verbose {
		o.Print()
	}
	return nil
}

// Solved tells whether results are available
func (o *IGUWind) Solved() bool { return o.lsf != nil }

// Packages returns the packages (copy)
func (o *IGUWind) Packages() []*equiv.Package { return append([]*equiv.Package{}, o.pkgs...) }

// Pressure returns the uniform lateral pressure
func (o *IGUWind) Pressure() unit.Pressure { return o.pressure }

// Dims returns the panel dimensions
func (o *IGUWind) Dims() (dimX, dimY unit.Length) { return o.dimX, o.dimY }

// LSF returns a copy of the load share factors; nil before Solve
func (o *IGUWind) LSF() map[equiv.PackageID]float64 {
	if o.lsf == nil {
		return nil
	}
	res := make(map[equiv.PackageID]float64, len(o.lsf))
	for k, v := range o.lsf {
		res[k] = v
	}
	return res
}

// Deflection returns a copy of the maximum deflections; nil before Solve
func (o *IGUWind) Deflection() map[equiv.PackageID]unit.Length {
	if o.deflection == nil {
		return nil
	}
	res := make(map[equiv.PackageID]unit.Length, len(o.deflection))
	for k, v := range o.deflection {
		res[k] = v
	}
	return res
}

// Reaction returns a copy of the maximum edge reactions; nil before Solve
func (o *IGUWind) Reaction() map[equiv.PackageID]units.LineLoad {
	if o.reaction == nil {
		return nil
	}
	res := make(map[equiv.PackageID]units.LineLoad, len(o.reaction))
	for k, v := range o.reaction {
		res[k] = v
	}
	return res
}

// Stress returns a copy of the maximum ply stresses; nil before Solve
func (o *IGUWind) Stress() map[layer.PlyID]unit.Pressure {
	if o.stress == nil {
		return nil
	}
	res := make(map[layer.PlyID]unit.Pressure, len(o.stress))
	for k, v := range o.stress {
		res[k] = v
	}
	return res
}

// Print prints the results
func (o *IGUWind) Print() {
	if !o.Solved() {
		io.Pfyel("IGU wind: not solved\n")
		return
	}
	io.Pf("%4s %-14s %10s %10s %12s %12s\n", "pkg", "method", "h_efw[mm]", "LSF", "defl[mm]", "R[kN/m]")
	for k, pkg := range o.pkgs {
		id := pkg.ID()
		io.Pf("%4d %-14s %10.3f %10.4f %12.3f %12.3f\n", k, pkg.Method(), units.MustIn(pkg.Hefw(), "mm"),
			o.lsf[id], units.MustIn(o.deflection[id], "mm"), units.MustIn(o.reaction[id], "kN/m"))
		for i, ply := range pkg.Plies() {
			io.Pf("%4s ply %-10d %10.3f %10s %12s %12s  σ = %.3f MPa\n", "", i, units.MustIn(ply.TMin(), "mm"),
				"", "", "", units.MustIn(o.stress[ply.ID()], "MPa"))
		}
	}
}
