// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equiv

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/fun/dbf"

	"github.com/normanrichardson/structuralglass/fault"
	"github.com/normanrichardson/structuralglass/mdl/layer"
	"github.com/normanrichardson/structuralglass/units"
)

// Stc implements the shear transfer coefficient method for two plies bonded by one interlayer
//   h_s  = (h_1 + h_2)/2 + h_v
//   h_s1 = h_s h_1 / (h_1 + h_2)
//   h_s2 = h_s h_2 / (h_1 + h_2)
//   I_s  = h_1 h_s2² + h_2 h_s1²
//   Γ    = 1 / (1 + β E I_s h_v / (G h_s² a²))
//   h_efw   = (h_1³ + h_2³ + 12 Γ I_s)^(1/3)
//   h_efs,1 = sqrt(h_efw³ / (h_1 + 2 Γ h_s2))
//   h_efs,2 = sqrt(h_efw³ / (h_2 + 2 Γ h_s1))
//  where a is the short dimension of the panel. Γ = 0 yields the non-composite
//  deflection thickness and Γ = 1 a solid section with the interlayer in the lever arm
type Stc struct {

	// parameters
	Span float64 // short panel dimension a [m]
	Beta float64 // boundary condition coefficient β
}

// add model to factory
func init() {
	allocators["stc"] = func() Model { return new(Stc) }
}

// Method returns MethodShearTransfer
func (o *Stc) Method() Method { return MethodShearTransfer }

// Init initialises model
//  Note: parameters not given take their defaults (span = 0, β = 9.6); the model is
//  only modified if all parameters are valid
func (o *Stc) Init(prms dbf.Params) (err error) {
	span, beta := 0.0, 9.6
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "span", "a":
			span = p.V
		case "beta":
			beta = p.V
		default:
			return fault.Validation("stc: parameter named %q is incorrect", p.N)
		}
	}
	if err = units.Positive(span, "span"); err != nil {
		return
	}
	if err = units.Positive(beta, "beta"); err != nil {
		return
	}
	o.Span, o.Beta = span, beta
	return
}

// GetPrms gets parameters
func (o *Stc) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "span", V: o.Span},
		&dbf.P{N: "beta", V: o.Beta},
	}
}

// Validate checks whether the buildup suits the model
func (o *Stc) Validate(b *layer.Buildup) error {
	if b.NumPlies() != 2 || len(b.Interlayers()) != 1 {
		return fault.Validation("stc: buildup must be ply, interlayer, ply; got %d plies and %d interlayers",
			b.NumPlies(), len(b.Interlayers()))
	}
	return nil
}

// Gamma returns the shear transfer coefficient
func (o *Stc) Gamma(s *Section) float64 {
	h1, h2, hv, G := s.T[0], s.T[1], s.Tv[0], s.G[0]
	hs, _, _, Is := o.geometry(h1, h2, hv)
	return 1.0 / (1.0 + o.Beta*s.E*Is*hv/(G*hs*hs*o.Span*o.Span))
}

// geometry returns the lever arms and the section moment of the plies
func (o *Stc) geometry(h1, h2, hv float64) (hs, hs1, hs2, Is float64) {
	hs = 0.5*(h1+h2) + hv
	hs1 = hs * h1 / (h1 + h2)
	hs2 = hs * h2 / (h1 + h2)
	Is = h1*hs2*hs2 + h2*hs1*hs1
	return
}

// Thickness computes effective thicknesses
func (o *Stc) Thickness(s *Section) (hefw float64, hefs []float64, err error) {
	if err = checkPlies(s); err != nil {
		return
	}
	if len(s.T) != 2 || len(s.Tv) != 1 || len(s.G) != 1 {
		err = fault.Validation("stc: section must have 2 plies and 1 interlayer with known shear modulus")
		return
	}
	if err = units.Positive(s.Tv[0], "interlayer t"); err != nil {
		return
	}
	if err = units.Positive(s.G[0], "interlayer G"); err != nil {
		return
	}
	if err = units.Positive(o.Span, "span"); err != nil {
		return
	}
	h1, h2, hv := s.T[0], s.T[1], s.Tv[0]
	_, hs1, hs2, Is := o.geometry(h1, h2, hv)
	Γ := o.Gamma(s)
	hefw = math.Cbrt(h1*h1*h1 + h2*h2*h2 + 12.0*Γ*Is)
	w3 := hefw * hefw * hefw
	hefs = []float64{
		math.Sqrt(w3 / (h1 + 2.0*Γ*hs2)),
		math.Sqrt(w3 / (h2 + 2.0*Γ*hs1)),
	}
	return
}
