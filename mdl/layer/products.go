// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layer

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/unit"

	"github.com/normanrichardson/structuralglass/fault"
	"github.com/normanrichardson/structuralglass/units"
)

// NewTable builds a table from temperatures, durations and the shear modulus
// of each duration (rows) at each temperature (columns)
func NewTable(temps []unit.Temperature, durs []unit.Time, G [][]unit.Pressure) (Table, error) {
	if len(G) != len(durs) {
		return nil, fault.Validation("number of rows (%d) must equal the number of durations (%d)", len(G), len(durs))
	}
	res := make(Table, len(temps)*len(durs))
	for j, d := range durs {
		if len(G[j]) != len(temps) {
			return nil, fault.Validation("row %d has %d values; %d temperatures are given", j, len(G[j]), len(temps))
		}
		for i, t := range temps {
			res[Key{t, d}] = G[j][i]
		}
	}
	return res, nil
}

// mpaTable builds a table from values in °C, seconds and MPa
func mpaTable(tempsC []float64, durs []unit.Time, G [][]float64) Table {
	temps := make([]unit.Temperature, len(tempsC))
	for i, t := range tempsC {
		temps[i] = units.DegC(t)
	}
	rows := make([][]unit.Pressure, len(G))
	for j, row := range G {
		rows[j] = make([]unit.Pressure, len(row))
		for i, v := range row {
			rows[j][i] = units.MPa(v)
		}
	}
	table, err := NewTable(temps, durs, rows)
	if err != nil {
		chk.Panic("%v", err)
	}
	return table
}

// product names available in the Default registry
const (
	Ionoplast = "Ionoplast Interlayer NCSEA"
	PVB       = "PVB NCSEA"
)

// add products to the default registry (see [2] tables 8.1 and 8.2)
func init() {
	ionoplast := mpaTable(
		[]float64{10, 20, 24, 30, 40, 50, 60, 70, 80},
		[]unit.Time{units.Sec(1), units.Sec(3), units.Minutes(1), units.Hours(1), units.Days(1), units.Months(1), units.Years(10)},
		[][]float64{
			{240, 217, 200, 151, 77.0, 36.2, 11.8, 3.77, 1.55},
			{236, 211, 193, 141, 63.0, 26.4, 8.18, 2.93, 1.32},
			{225, 195, 173, 110, 30.7, 11.3, 3.64, 1.88, 0.83},
			{206, 169, 142, 59.9, 9.28, 4.20, 1.70, 0.84, 0.32},
			{190, 146, 111, 49.7, 4.54, 2.82, 1.29, 0.59, 0.25},
			{171, 112, 73.2, 11.6, 3.29, 2.18, 1.08, 0.48, 0.21},
			{153, 86.6, 26.0, 5.31, 2.95, 2.00, 0.97, 0.45, 0.18},
		})
	pvb := mpaTable(
		[]float64{20, 30, 40, 50},
		[]unit.Time{units.Sec(3), units.Minutes(1), units.Hours(1), units.Days(1), units.Months(1), units.Years(1)},
		[][]float64{
			{8.060, 0.971, 0.610, 0.440},
			{1.640, 0.753, 0.455, 0.290},
			{0.840, 0.441, 0.234, 0.052},
			{0.508, 0.281, 0.234, 0.052},
			{0.372, 0.069, 0.052, 0.052},
			{0.266, 0.052, 0.052, 0.052},
		})
	for name, table := range map[string]Table{Ionoplast: ionoplast, PVB: pvb} {
		if err := Default.Register(name, table); err != nil {
			chk.Panic("%v", err)
		}
	}
}
