// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"gonum.org/v1/gonum/unit"

	"github.com/normanrichardson/structuralglass/fault"
	"github.com/normanrichardson/structuralglass/units"
)

// Material holds parameters of some reference glass materials
type Material struct {

	// input
	Type string // type of material; e.g. "soda-lime"

	// derived
	Desc string        // description
	E    unit.Pressure // Young's modulus
	Nu   float64       // Poisson's coefficient
	G    unit.Pressure // shear modulus
	Rho  float64       // density [kg/m³]
}

// Init initialises material parameters
func (o *Material) Init(typ string) error {

	// material data
	o.Type = typ
	switch typ {
	case "soda-lime":
		o.Desc = "Glass: soda-lime silicate (EN 572-1, ASTM C1036)"
		o.E = units.GPa(71.7)
		o.Nu = 0.22
		o.Rho = 2500
	case "borosilicate":
		o.Desc = "Glass: borosilicate (EN 1748-1)"
		o.E = units.GPa(64)
		o.Nu = 0.20
		o.Rho = 2230
	default:
		return fault.Lookup("material type %q is unavailable", typ)
	}

	// derived quantity
	o.G = unit.Pressure(float64(o.E) / (2.0 * (1.0 + o.Nu)))
	return nil
}

// SodaLime returns the reference float glass used by default for new plies
func SodaLime() (o Material) {
	o.Init("soda-lime")
	return
}
