// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package glass implements the strength model of fabricated glass types
//  The allowable stress is the base stress multiplied by probability of breakage,
//  load duration and surface treatment factors.
//  References:
//   [1] NCSEA (2021) Engineering Structural Glass Design Guide, chapter 5
package glass

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/gonum/unit"

	"github.com/normanrichardson/structuralglass/fault"
	"github.com/normanrichardson/structuralglass/units"
)

// reference values
const (
	RefRatio    = 0.008 // failure ratio of the base stresses (8/1000)
	RefDuration = 3.0   // load duration of the base stresses [s]
	SurfNone    = "None"
)

// Data holds the strength parameters of a glass type
type Data struct {
	StressSurface  unit.Pressure      // base allowable surface stress
	StressEdge     unit.Pressure      // base allowable edge stress
	DurationFactor float64            // static fatigue exponent n
	CoefVariation  float64            // coefficient of variation of the failure stress
	SurfFactors    map[string]float64 // stress reduction factors per surface treatment
}

// validate checks the parameters
func (o Data) validate() error {
	if err := units.Positive(float64(o.StressSurface), "stress_surface"); err != nil {
		return err
	}
	if err := units.Positive(float64(o.StressEdge), "stress_edge"); err != nil {
		return err
	}
	if err := units.Positive(o.DurationFactor, "duration_factor"); err != nil {
		return err
	}
	if o.CoefVariation < 0 || o.CoefVariation >= 1 {
		return fault.Validation("coef_variation must be in [0, 1); got %g", o.CoefVariation)
	}
	for name, f := range o.SurfFactors {
		if f < 0 || math.IsNaN(f) {
			return fault.Validation("surface factor %q must not be negative; got %g", name, f)
		}
	}
	return nil
}

// clone returns a deep copy
func (o Data) clone() Data {
	res := o
	res.SurfFactors = make(map[string]float64, len(o.SurfFactors))
	for k, v := range o.SurfFactors {
		res.SurfFactors[k] = v
	}
	return res
}

// Type is a glass type; e.g. annealed
type Type struct {
	Name string // identifier
	Abbr string // abbreviation; may be empty
	data Data   // parameters
}

// Data returns a copy of the parameters
func (o *Type) Data() Data { return o.data.clone() }

// StressSurface returns the base allowable surface stress
func (o *Type) StressSurface() unit.Pressure { return o.data.StressSurface }

// StressEdge returns the base allowable edge stress
func (o *Type) StressEdge() unit.Pressure { return o.data.StressEdge }

// LoadDurationFactor returns the factor applied to the base stress for a load of duration t
//   kd = (t / 3s) ^ (-1/n)
func (o *Type) LoadDurationFactor(t unit.Time) (float64, error) {
	if err := units.Positive(float64(t), "duration"); err != nil {
		return 0, err
	}
	return math.Pow(float64(t)/RefDuration, -1.0/o.data.DurationFactor), nil
}

// DesignFactor returns the ratio of the mean breaking stress to the stress with failure ratio r
//   df = 1 / (1 - v Φ⁻¹(1 - r))
func (o *Type) DesignFactor(r float64) (float64, error) {
	if !(r > 0 && r < 1) {
		return 0, fault.Validation("failure ratio must be in (0, 1); got %g", r)
	}
	den := 1 - o.data.CoefVariation*distuv.UnitNormal.Quantile(1-r)
	if den <= 0 {
		return 0, fault.Validation("failure ratio %g is too small for coef_variation %g", r, o.data.CoefVariation)
	}
	return 1 / den, nil
}

// ProbBreakageFactor returns the factor applied to the base stress for failure ratio r
//   kp = df(0.008) / df(r)
func (o *Type) ProbBreakageFactor(r float64) (float64, error) {
	ref, err := o.DesignFactor(RefRatio)
	if err != nil {
		return 0, err
	}
	df, err := o.DesignFactor(r)
	if err != nil {
		return 0, err
	}
	return ref / df, nil
}

// SurfTreatFactor returns the factor applied to the base stress for a surface treatment
func (o *Type) SurfTreatFactor(treatment string) (float64, error) {
	f, ok := o.data.SurfFactors[treatment]
	if !ok {
		return 0, fault.Lookup("surface treatment %q is not available for glass type %q", treatment, o.Name)
	}
	return f, nil
}

// Params holds the conditions of an allowable stress check
//  Note: zero values select the reference conditions (8/1000, 3 s, no treatment)
type Params struct {
	Ratio    float64   // failure ratio; e.g. 1/1000
	Duration unit.Time // load duration
	Surface  string    // surface treatment; e.g. "Acid etching"
	Edge     bool      // edge stress instead of surface stress
}

// Allowable returns the allowable stress
func (o *Type) Allowable(p Params) (unit.Pressure, error) {
	if p.Ratio == 0 {
		p.Ratio = RefRatio
	}
	if p.Duration == 0 {
		p.Duration = unit.Time(RefDuration)
	}
	if p.Surface == "" {
		p.Surface = SurfNone
	}
	kp, err := o.ProbBreakageFactor(p.Ratio)
	if err != nil {
		return 0, err
	}
	kd, err := o.LoadDurationFactor(p.Duration)
	if err != nil {
		return 0, err
	}
	ks, err := o.SurfTreatFactor(p.Surface)
	if err != nil {
		return 0, err
	}
	base := o.data.StressSurface
	if p.Edge {
		base = o.data.StressEdge
	}
	return unit.Pressure(kp * kd * ks * float64(base)), nil
}
