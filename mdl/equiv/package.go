// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equiv

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/unit"

	"github.com/normanrichardson/structuralglass/mdl/layer"
)

// PackageID identifies a package in results
type PackageID uuid.UUID

// String returns the canonical representation of the id
func (id PackageID) String() string { return uuid.UUID(id).String() }

// Package holds the effective thicknesses of a buildup computed by one model
//  A package is immutable: it keeps a snapshot of the interlayer shear moduli used and is
//  not updated when an interlayer's temperature or duration changes afterwards.
//  Use Stale to detect such changes and Recompute to obtain a new package.
type Package struct {
	id    PackageID                   // identifier
	model Model                       // private copy of the equivalent thickness model
	prms  dbf.Params                  // parameters of the model
	b     *layer.Buildup              // laminate buildup
	sec   *Section                    // snapshot used to compute the thicknesses
	hefw  unit.Length                 // effective thickness for deflection
	hefs  map[layer.PlyID]unit.Length // effective thickness for stress of each ply
	gamma float64                     // shear transfer coefficient; coupled models only
	coupl bool                        // model is coupled (gamma is set)
}

// NewPackage applies model m to buildup b
//  Note: the package keeps its own copy of m, built from m.GetPrms(); later changes
//  to m do not affect the package or Recompute
func NewPackage(m Model, b *layer.Buildup) (o *Package, err error) {
	prms := m.GetPrms()
	if m, err = New(m.Method().String()); err != nil {
		return
	}
	if err = m.Init(prms); err != nil {
		return
	}
	if err = m.Validate(b); err != nil {
		return
	}
	_, coupled := m.(Coupled)
	sec, err := NewSection(b, coupled)
	if err != nil {
		return
	}
	hefw, hefs, err := m.Thickness(sec)
	if err != nil {
		return
	}
	o = &Package{
		id:    PackageID(uuid.New()),
		model: m,
		prms:  prms,
		b:     b,
		sec:   sec,
		hefw:  unit.Length(hefw),
		hefs:  make(map[layer.PlyID]unit.Length, len(hefs)),
	}
	for i, p := range b.Plies() {
		o.hefs[p.ID()] = unit.Length(hefs[i])
	}
	if c, ok := m.(Coupled); ok {
		o.gamma, o.coupl = c.Gamma(sec), true
	}
	return
}

// Monolithic returns a package computed with the monolithic method
func Monolithic(b *layer.Buildup) (*Package, error) {
	return NewPackage(new(Mono), b)
}

// NonComposite returns a package computed with the non-composite method
func NonComposite(b *layer.Buildup) (*Package, error) {
	return NewPackage(new(NonComp), b)
}

// ShearTransfer returns a package computed with the shear transfer coefficient method
//  span is the short dimension of the panel
func ShearTransfer(b *layer.Buildup, span unit.Length) (*Package, error) {
	m := new(Stc)
	if err := m.Init(dbf.Params{&dbf.P{N: "span", V: float64(span)}}); err != nil {
		return nil, err
	}
	return NewPackage(m, b)
}

// ID returns the package identifier
func (o *Package) ID() PackageID { return o.id }

// Method returns the method used to compute the thicknesses
func (o *Package) Method() Method { return o.model.Method() }

// Buildup returns the buildup
func (o *Package) Buildup() *layer.Buildup { return o.b }

// Plies returns the plies of the buildup
func (o *Package) Plies() []*layer.Ply { return o.b.Plies() }

// E returns the elastic modulus of the plies
func (o *Package) E() unit.Pressure { return unit.Pressure(o.sec.E) }

// Hefw returns the effective thickness for deflection
func (o *Package) Hefw() unit.Length { return o.hefw }

// Hefs returns the effective thickness for the stress in ply id
func (o *Package) Hefs(id layer.PlyID) (h unit.Length, ok bool) {
	h, ok = o.hefs[id]
	return
}

// HefsMap returns a copy of the effective thicknesses for stress
func (o *Package) HefsMap() map[layer.PlyID]unit.Length {
	res := make(map[layer.PlyID]unit.Length, len(o.hefs))
	for id, h := range o.hefs {
		res[id] = h
	}
	return res
}

// Gamma returns the shear transfer coefficient; ok is false for uncoupled models
func (o *Package) Gamma() (gamma float64, ok bool) { return o.gamma, o.coupl }

// ShearModuli returns the interlayer shear moduli used to compute the package
//  Note: nil for models ignoring interlayer shear
func (o *Package) ShearModuli() (res []unit.Pressure) {
	for _, G := range o.sec.G {
		res = append(res, unit.Pressure(G))
	}
	return
}

// Stale tells whether an interlayer's shear modulus differs from the one used to compute the package
func (o *Package) Stale() bool {
	if o.sec.G == nil {
		return false
	}
	for i, il := range o.b.Interlayers() {
		G, err := il.G()
		if err != nil || float64(G) != o.sec.G[i] {
			return true
		}
	}
	return false
}

// Recompute returns a new package computed from the current state of the buildup
// with the model parameters of this package
//  Note: the new package has a new ID
func (o *Package) Recompute() (*Package, error) {
	m, err := New(o.model.Method().String())
	if err != nil {
		return nil, err
	}
	if err = m.Init(o.Prms()); err != nil {
		return nil, err
	}
	return NewPackage(m, o.b)
}

// Prms returns a copy of the model parameters used to compute the package
func (o *Package) Prms() (res dbf.Params) {
	for _, p := range o.prms {
		res = append(res, &dbf.P{N: p.N, V: p.V})
	}
	return
}
