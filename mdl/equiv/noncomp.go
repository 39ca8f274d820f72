// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equiv

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"

	"github.com/normanrichardson/structuralglass/fault"
	"github.com/normanrichardson/structuralglass/mdl/layer"
)

// NonComp implements the non-composite method: the plies bend independently
//   h_efw   = (Σ t_j³)^(1/3)
//   h_efs,i = sqrt(Σ t_j³ / t_i)
//  Note: interlayers are ignored
type NonComp struct{}

// add model to factory
func init() {
	allocators["non-composite"] = func() Model { return new(NonComp) }
}

// Method returns MethodNonComposite
func (o *NonComp) Method() Method { return MethodNonComposite }

// Init initialises model
func (o *NonComp) Init(prms dbf.Params) error {
	if len(prms) > 0 {
		return fault.Validation("non-composite: parameter named %q is incorrect", prms[0].N)
	}
	return nil
}

// GetPrms gets parameters
func (o *NonComp) GetPrms() dbf.Params { return dbf.Params{} }

// Validate checks whether the buildup suits the model
func (o *NonComp) Validate(b *layer.Buildup) error { return nil }

// Thickness computes effective thicknesses
func (o *NonComp) Thickness(s *Section) (hefw float64, hefs []float64, err error) {
	if err = checkPlies(s); err != nil {
		return
	}
	sum3 := 0.0
	for _, t := range s.T {
		sum3 += t * t * t
	}
	hefw = math.Cbrt(sum3)
	hefs = make([]float64, len(s.T))
	for i, t := range s.T {
		hefs[i] = math.Sqrt(sum3 / t)
	}
	return
}
