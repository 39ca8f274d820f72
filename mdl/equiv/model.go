// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package equiv implements equivalent thickness models of glass laminates
//  A model converts a buildup into one effective thickness for deflection (h_efw)
//  and one effective thickness for the stress of each ply (h_efs).
//  References:
//   [1] ASTM E1300-16 Standard Practice for Determining Load Resistance of Glass in Buildings,
//       appendix X9
//   [2] Bennison SJ, Wolfel E (2008) Glass Performance Days, 2008
//   [3] NCSEA (2021) Engineering Structural Glass Design Guide, chapter 8
package equiv

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/normanrichardson/structuralglass/fault"
	"github.com/normanrichardson/structuralglass/mdl/layer"
)

// Method identifies an equivalent thickness model
type Method int

// methods
const (
	MethodMonolithic    Method = iota // plies act as one solid section
	MethodNonComposite                // plies act independently
	MethodShearTransfer               // shear transfer coefficient (two plies)
)

// String returns the name of the method as used by New
func (o Method) String() string {
	switch o {
	case MethodMonolithic:
		return "monolithic"
	case MethodNonComposite:
		return "non-composite"
	case MethodShearTransfer:
		return "stc"
	}
	chk.Panic("equivalent thickness method %d is invalid", int(o))
	return ""
}

// Model implements an equivalent thickness model
type Model interface {
	Method() Method                                                 // returns the method
	Init(prms dbf.Params) error                                     // initialises model
	GetPrms() dbf.Params                                            // gets parameters
	Validate(b *layer.Buildup) error                                // checks whether the buildup suits the model
	Thickness(s *Section) (hefw float64, hefs []float64, err error) // computes effective thicknesses [m]
}

// Coupled is a subset of Model with interlayer shear coupling
type Coupled interface {
	Gamma(s *Section) float64 // returns the shear transfer coefficient Γ
}

// New returns new equivalent thickness model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, fault.Lookup("model %q is not available in 'equiv' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// Section is a snapshot of a buildup in SI units
type Section struct {
	E  float64   // Young's modulus of the plies [Pa]
	T  []float64 // minimum thickness of each ply [m]
	Tv []float64 // thickness of each interlayer [m]
	G  []float64 // shear modulus of each interlayer [Pa]; nil if not resolved
}

// NewSection takes a snapshot of b; the interlayer shear moduli are resolved if shear is true
func NewSection(b *layer.Buildup, shear bool) (o *Section, err error) {
	o = &Section{E: float64(b.E())}
	for _, p := range b.Plies() {
		o.T = append(o.T, float64(p.TMin()))
	}
	for _, il := range b.Interlayers() {
		o.Tv = append(o.Tv, float64(il.Thickness()))
		if shear {
			G, err := il.G()
			if err != nil {
				return nil, err
			}
			o.G = append(o.G, float64(G))
		}
	}
	return
}
