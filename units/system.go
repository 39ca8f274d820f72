// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"strings"

	"github.com/normanrichardson/structuralglass/fault"
)

// System holds the symbols used to report results
type System struct {
	Name       string // "metric" or "imperial"
	Span       string // panel dimensions
	Thickness  string // ply and effective thicknesses
	Deflection string // out-of-plane displacements
	Stress     string // stresses and moduli
	Pressure   string // applied loads
	LineLoad   string // edge reactions
}

// reporting systems
var (
	Metric   = System{"metric", "m", "mm", "mm", "MPa", "kPa", "kN/m"}
	Imperial = System{"imperial", "ft", "in", "in", "ksi", "psf", "plf"}
)

// SystemByName returns a reporting system
func SystemByName(name string) (System, error) {
	switch strings.ToLower(name) {
	case "", "metric", "si":
		return Metric, nil
	case "imperial", "us":
		return Imperial, nil
	}
	return System{}, fault.Lookup("unit system %q is not available; options are \"metric\" and \"imperial\"", name)
}
