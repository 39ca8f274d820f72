// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equiv

import (
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/normanrichardson/structuralglass/fault"
	"github.com/normanrichardson/structuralglass/mdl/layer"
	"github.com/normanrichardson/structuralglass/units"
)

// Mono implements the monolithic method: the plies act as one solid section
//   h_efw = Σ t_i
//   h_efs = h_efw  (all plies)
//  Note: interlayers are ignored; the method is unconservative for short duration loads
type Mono struct{}

// add model to factory
func init() {
	allocators["monolithic"] = func() Model { return new(Mono) }
}

// Method returns MethodMonolithic
func (o *Mono) Method() Method { return MethodMonolithic }

// Init initialises model
func (o *Mono) Init(prms dbf.Params) error {
	if len(prms) > 0 {
		return fault.Validation("monolithic: parameter named %q is incorrect", prms[0].N)
	}
	return nil
}

// GetPrms gets parameters
func (o *Mono) GetPrms() dbf.Params { return dbf.Params{} }

// Validate checks whether the buildup suits the model
func (o *Mono) Validate(b *layer.Buildup) error { return nil }

// Thickness computes effective thicknesses
func (o *Mono) Thickness(s *Section) (hefw float64, hefs []float64, err error) {
	if err = checkPlies(s); err != nil {
		return
	}
	for _, t := range s.T {
		hefw += t
	}
	hefs = make([]float64, len(s.T))
	for i := range hefs {
		hefs[i] = hefw
	}
	return
}

// checkPlies checks the ply data of a section
func checkPlies(s *Section) error {
	if len(s.T) == 0 {
		return fault.Validation("section must have at least one ply")
	}
	if err := units.Positive(s.E, "E"); err != nil {
		return err
	}
	for _, t := range s.T {
		if err := units.Positive(t, "t_min"); err != nil {
			return err
		}
	}
	return nil
}
