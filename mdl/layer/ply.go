// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package layer implements the layers of a glass laminate: glass plies, interlayers and buildups
//  References:
//   [1] ASTM E1300-16 Standard Practice for Determining Load Resistance of Glass in Buildings
//   [2] NCSEA (2021) Engineering Structural Glass Design Guide, chapter 8
package layer

import (
	"math"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/unit"

	"github.com/normanrichardson/structuralglass/ana"
	"github.com/normanrichardson/structuralglass/fault"
	"github.com/normanrichardson/structuralglass/units"
)

// PlyID identifies a glass ply in results
type PlyID uuid.UUID

// String returns the canonical representation of the id
func (id PlyID) String() string { return uuid.UUID(id).String() }

// minimum thickness [mm] for nominal thicknesses in mm (see [1] table 4)
var tminMetric = [][2]float64{
	{2.0, 1.80}, {2.5, 2.16}, {2.7, 2.59}, {3, 2.92}, {4, 3.78}, {5, 4.57}, {6, 5.56},
	{8, 7.42}, {10, 9.02}, {12, 11.91}, {16, 15.09}, {19, 18.26}, {22, 21.44}, {25, 24.61},
}

// minimum thickness [mm] for nominal thicknesses in inches (see [1] table 4)
var tminImperial = [][2]float64{
	{0.09375, 2.16}, {0.125, 2.92}, {0.15625, 3.78}, {0.1875, 4.57}, {0.25, 5.56}, {0.3125, 7.42},
	{0.375, 9.02}, {0.5, 11.91}, {0.625, 15.09}, {0.75, 18.26}, {0.875, 21.44}, {1, 24.61},
}

// MinThickness returns the minimum thickness corresponding to a nominal thickness
func MinThickness(tnom unit.Length) (unit.Length, error) {
	mm := units.MustIn(tnom, "mm")
	for _, row := range tminMetric {
		if math.Abs(mm-row[0]) < 1e-6 {
			return units.Mm(row[1]), nil
		}
	}
	in := units.MustIn(tnom, "in")
	for _, row := range tminImperial {
		if math.Abs(in-row[0]) < 1e-8 {
			return units.Mm(row[1]), nil
		}
	}
	return 0, fault.Validation("nominal thickness t_nom = %v is not in the nominal thickness lookup", units.Format(tnom, "mm", 3))
}

// Ply is a glass ply
//  Note: a ply is immutable; the same *Ply may take part in several packages and is
//  identified in results by its ID
type Ply struct {
	id   PlyID         // identifier
	tnom unit.Length   // nominal thickness; zero if unknown
	tmin unit.Length   // minimum thickness
	e    unit.Pressure // Young's modulus
}

// NewPly returns a new ply with given minimum thickness and Young's modulus
func NewPly(tmin unit.Length, E unit.Pressure) (*Ply, error) {
	if err := units.Positive(float64(tmin), "t_min"); err != nil {
		return nil, err
	}
	if err := units.Positive(float64(E), "E"); err != nil {
		return nil, err
	}
	return &Ply{id: PlyID(uuid.New()), tmin: tmin, e: E}, nil
}

// FromNominal returns a soda-lime ply with the minimum thickness of a nominal thickness
func FromNominal(tnom unit.Length) (*Ply, error) {
	if err := units.Positive(float64(tnom), "t_nom"); err != nil {
		return nil, err
	}
	tmin, err := MinThickness(tnom)
	if err != nil {
		return nil, err
	}
	o, err := NewPly(tmin, ana.SodaLime().E)
	if err != nil {
		return nil, err
	}
	o.tnom = tnom
	return o, nil
}

// FromActual returns a soda-lime ply with the given (minimum) thickness
func FromActual(tact unit.Length) (*Ply, error) {
	return NewPly(tact, ana.SodaLime().E)
}

// ID returns the ply identifier
func (o *Ply) ID() PlyID { return o.id }

// TNom returns the nominal thickness; ok is false if the ply was not built from a nominal thickness
func (o *Ply) TNom() (tnom unit.Length, ok bool) { return o.tnom, o.tnom > 0 }

// TMin returns the minimum thickness
func (o *Ply) TMin() unit.Length { return o.tmin }

// E returns Young's modulus
func (o *Ply) E() unit.Pressure { return o.e }

// Thickness returns the minimum thickness
func (o *Ply) Thickness() unit.Length { return o.tmin }
