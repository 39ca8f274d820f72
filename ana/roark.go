// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/unit"

	"github.com/normanrichardson/structuralglass/units"
)

// Roark's coefficients for a rectangular plate simply supported on four edges
//  Note: the last column (ratio → ∞) is used for ratios above 5
var (
	roarkRatio = []float64{1, 1.2, 1.4, 1.6, 1.8, 2, 3, 4, 5}
	roarkBeta  = []float64{0.2874, 0.3762, 0.4530, 0.5172, 0.5688, 0.6102, 0.7134, 0.7410, 0.7476, 0.7500}
	roarkAlpha = []float64{0.0440, 0.0616, 0.0770, 0.0906, 0.1017, 0.1110, 0.1335, 0.1400, 0.1417, 0.1421}
	roarkGamma = []float64{0.420, 0.455, 0.478, 0.491, 0.499, 0.503, 0.505, 0.502, 0.501, 0.500}
)

// roarkCoef interpolates one column of Roark's table
func roarkCoef(column []float64, ratio float64) float64 {
	n := len(roarkRatio)
	if ratio > roarkRatio[n-1] {
		return column[n]
	}
	var pl interp.PiecewiseLinear
	pl.Fit(roarkRatio, column[:n])
	return pl.Predict(math.Max(ratio, roarkRatio[0]))
}

// Roark4Side implements Roark's formulas for a uniformly loaded rectangular plate
// simply supported on all four edges
//
//            dimX
//    o-------------------o
//    |                   |
//    |     q (uniform)   | dimY     b = min(dimX, dimY)
//    |                   |          ratio = max/min
//    o-------------------o
//
//   σmax = β q b² / t²
//   ymax = -α q b⁴ / (E t³)
//   Rmax = γ q b
//
type Roark4Side struct {
	e     unit.Pressure // Young's modulus
	dimX  unit.Length   // plate dimension along x
	dimY  unit.Length   // plate dimension along y
	t     unit.Length   // plate thickness
	beta  float64       // stress coefficient
	alpha float64       // deflection coefficient
	gamma float64       // reaction coefficient
}

// NewRoark4Side returns a new plate
func NewRoark4Side(E unit.Pressure, dimX, dimY, t unit.Length) (o *Roark4Side, err error) {
	o = new(Roark4Side)
	if err = o.SetE(E); err != nil {
		return nil, err
	}
	if err = o.SetT(t); err != nil {
		return nil, err
	}
	o.dimX, o.dimY = dimX, dimY
	if err = o.update(); err != nil {
		return nil, err
	}
	return
}

// SetE sets Young's modulus
func (o *Roark4Side) SetE(E unit.Pressure) error {
	if err := units.Positive(float64(E), "E"); err != nil {
		return err
	}
	o.e = E
	return nil
}

// SetT sets the plate thickness
func (o *Roark4Side) SetT(t unit.Length) error {
	if err := units.Positive(float64(t), "t"); err != nil {
		return err
	}
	o.t = t
	return nil
}

// SetDims sets the plate dimensions and updates the coefficients
func (o *Roark4Side) SetDims(dimX, dimY unit.Length) error {
	old := [2]unit.Length{o.dimX, o.dimY}
	o.dimX, o.dimY = dimX, dimY
	if err := o.update(); err != nil {
		o.dimX, o.dimY = old[0], old[1]
		return err
	}
	return nil
}

// update validates the dimensions and interpolates the coefficients
func (o *Roark4Side) update() error {
	if err := units.Positive(float64(o.dimX), "dim_x"); err != nil {
		return err
	}
	if err := units.Positive(float64(o.dimY), "dim_y"); err != nil {
		return err
	}
	r := o.Ratio()
	o.beta = roarkCoef(roarkBeta, r)
	o.alpha = roarkCoef(roarkAlpha, r)
	o.gamma = roarkCoef(roarkGamma, r)
	return nil
}

// E returns Young's modulus
func (o *Roark4Side) E() unit.Pressure { return o.e }

// T returns the plate thickness
func (o *Roark4Side) T() unit.Length { return o.t }

// Short returns the short dimension of the plate
func (o *Roark4Side) Short() unit.Length {
	return unit.Length(math.Min(float64(o.dimX), float64(o.dimY)))
}

// Ratio returns the aspect ratio (long over short)
func (o *Roark4Side) Ratio() float64 {
	x, y := float64(o.dimX), float64(o.dimY)
	return math.Max(x, y) / math.Min(x, y)
}

// Coefficients returns the interpolated stress (β), deflection (α) and reaction (γ) coefficients
func (o *Roark4Side) Coefficients() (beta, alpha, gamma float64) {
	return o.beta, o.alpha, o.gamma
}

// StressMax returns the maximum bending stress due to the uniform load q
func (o *Roark4Side) StressMax(q unit.Pressure) unit.Pressure {
	b, t := float64(o.Short()), float64(o.t)
	return unit.Pressure(o.beta * float64(q) * b * b / (t * t))
}

// DeflectionMax returns the maximum deflection due to the uniform load q
//  Note: the deflection is negative in the direction of the load
func (o *Roark4Side) DeflectionMax(q unit.Pressure) unit.Length {
	b, t := float64(o.Short()), float64(o.t)
	return unit.Length(-o.alpha * float64(q) * math.Pow(b, 4) / (float64(o.e) * t * t * t))
}

// ReactionMax returns the maximum edge reaction (force per length) due to the uniform load q
func (o *Roark4Side) ReactionMax(q unit.Pressure) units.LineLoad {
	return units.LineLoad(o.gamma * float64(q) * float64(o.Short()))
}
