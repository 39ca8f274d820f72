// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package units implements physical quantities on top of gonum's unit package
//  All values are stored in SI (m, Pa, s, K). Symbols are only used at the boundaries:
//  when reading input data and when reporting results.
package units

import (
	"math"
	"regexp"
	"sort"
	"strconv"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/unit"

	"github.com/normanrichardson/structuralglass/fault"
)

// conversion factors to SI
const (
	inch   = 0.0254              // [m]
	foot   = 12 * inch           // [m]
	lbf    = 4.4482216152605     // [N]
	psi    = lbf / (inch * inch) // [Pa]
	psf    = lbf / (foot * foot) // [Pa]
	plf    = lbf / foot          // [N/m]
	minute = 60.0                // [s]
	hour   = 60 * minute         // [s]
	day    = 24 * hour           // [s]
	week   = 7 * day             // [s]
	year   = 365.25 * day        // [s] Julian year
	month  = year / 12           // [s]
	zeroC  = 273.15              // [K]
	rankin = 5.0 / 9.0           // [K/°R]
	zeroF  = 459.67 * rankin     // [K]
	kilo   = unit.Kilo           // [-]
	mega   = unit.Mega           // [-]
	giga   = unit.Giga           // [-]
	milli  = unit.Milli          // [-]
	centi  = unit.Centi          // [-]
)

// dimensions
var (
	dimLength   = unit.Dimensions{unit.LengthDim: 1}
	dimPressure = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -1, unit.TimeDim: -2}
	dimTime     = unit.Dimensions{unit.TimeDim: 1}
	dimTemp     = unit.Dimensions{unit.TemperatureDim: 1}
	dimLineLoad = unit.Dimensions{unit.MassDim: 1, unit.TimeDim: -2}
	dimNone     = unit.Dimensions{}
)

// symbol converts a value given in a named unit to SI: si = scale*v + offset
type symbol struct {
	scale  float64
	offset float64
	dims   unit.Dimensions
}

// symbols holds all known unit symbols
var symbols = map[string]symbol{

	// length
	"m":    {1, 0, dimLength},
	"cm":   {centi, 0, dimLength},
	"mm":   {milli, 0, dimLength},
	"in":   {inch, 0, dimLength},
	"inch": {inch, 0, dimLength},
	"ft":   {foot, 0, dimLength},

	// pressure and stress
	"Pa":  {1, 0, dimPressure},
	"kPa": {kilo, 0, dimPressure},
	"MPa": {mega, 0, dimPressure},
	"GPa": {giga, 0, dimPressure},
	"psf": {psf, 0, dimPressure},
	"psi": {psi, 0, dimPressure},
	"ksi": {kilo * psi, 0, dimPressure},

	// time
	"s":     {1, 0, dimTime},
	"sec":   {1, 0, dimTime},
	"min":   {minute, 0, dimTime},
	"h":     {hour, 0, dimTime},
	"hour":  {hour, 0, dimTime},
	"day":   {day, 0, dimTime},
	"week":  {week, 0, dimTime},
	"month": {month, 0, dimTime},
	"year":  {year, 0, dimTime},

	// temperature
	"K":    {1, 0, dimTemp},
	"degC": {1, zeroC, dimTemp},
	"°C":   {1, zeroC, dimTemp},
	"degF": {rankin, zeroF, dimTemp},

	// force per length
	"N/m":  {1, 0, dimLineLoad},
	"kN/m": {kilo, 0, dimLineLoad},
	"plf":  {plf, 0, dimLineLoad},

	// dimensionless
	"":  {1, 0, dimNone},
	"-": {1, 0, dimNone},
}

// Symbols returns all known unit symbols (sorted)
func Symbols() (res []string) {
	for s := range symbols {
		if s != "" {
			res = append(res, s)
		}
	}
	sort.Strings(res)
	return
}

// Parse returns the SI quantity corresponding to value given in the unit named sym
func Parse(value float64, sym string) (*unit.Unit, error) {
	s, ok := symbols[sym]
	if !ok {
		return nil, fault.Unit("unit symbol %q is not available", sym)
	}
	return unit.New(s.scale*value+s.offset, s.dims), nil
}

// textQty matches a value followed by a unit symbol; e.g. "3s", "10 min", "-1.5e3 Pa"
var textQty = regexp.MustCompile(`^\s*([-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?)\s*(\S*)\s*$`)

// ParseText returns the SI quantity written as value and unit symbol; e.g. "10 min"
func ParseText(text string) (*unit.Unit, error) {
	m := textQty.FindStringSubmatch(text)
	if m == nil {
		return nil, fault.Validation("cannot parse quantity %q; e.g. \"10 min\"", text)
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, fault.Validation("cannot parse value of quantity %q: %v", text, err)
	}
	return Parse(v, m[2])
}

// In returns the value of q expressed in the unit named sym
func In(q unit.Uniter, sym string) (float64, error) {
	s, ok := symbols[sym]
	if !ok {
		return 0, fault.Unit("unit symbol %q is not available", sym)
	}
	if !unit.DimensionsMatch(q, unit.New(1, s.dims)) {
		return 0, fault.Unit("cannot express %v in %q", q.Unit(), sym)
	}
	return (q.Unit().Value() - s.offset) / s.scale, nil
}

// MustIn returns the value of q expressed in the unit named sym and panics on mismatch
//  Note: only use with constant symbols known to match q
func MustIn(q unit.Uniter, sym string) float64 {
	v, err := In(q, sym)
	if err != nil {
		panic(err)
	}
	return v
}

// Format returns q expressed in the unit named sym; e.g. "5.56 mm"
func Format(q unit.Uniter, sym string, prec int) string {
	v, err := In(q, sym)
	if err != nil {
		return io.Sf("%v", q.Unit())
	}
	if sym == "" || sym == "-" {
		return io.Sf("%.*f", prec, v)
	}
	return io.Sf("%.*f %s", prec, v, sym)
}

// Length converts q to a length; name identifies the parameter in error messages
func Length(q unit.Uniter, name string) (unit.Length, error) {
	var l unit.Length
	if err := l.From(q); err != nil {
		return 0, fault.Unit("%s must be a length; got %v", name, q.Unit())
	}
	return l, nil
}

// Pressure converts q to a pressure (or stress, or modulus)
func Pressure(q unit.Uniter, name string) (unit.Pressure, error) {
	var p unit.Pressure
	if err := p.From(q); err != nil {
		return 0, fault.Unit("%s must be a pressure; got %v", name, q.Unit())
	}
	return p, nil
}

// Time converts q to a time
func Time(q unit.Uniter, name string) (unit.Time, error) {
	var t unit.Time
	if err := t.From(q); err != nil {
		return 0, fault.Unit("%s must be a time; got %v", name, q.Unit())
	}
	return t, nil
}

// Temperature converts q to an absolute temperature
func Temperature(q unit.Uniter, name string) (unit.Temperature, error) {
	var t unit.Temperature
	if err := t.From(q); err != nil {
		return 0, fault.Unit("%s must be a temperature; got %v", name, q.Unit())
	}
	return t, nil
}

// Positive returns a validation error if v is not a positive finite number
func Positive(v float64, name string) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return fault.Validation("%s must be greater than zero; got %g", name, v)
	}
	return nil
}

// LineLoad is a force per unit length [N/m]; e.g. an edge reaction
type LineLoad float64

// Unit returns l as a dimensional unit
func (l LineLoad) Unit() *unit.Unit {
	return unit.New(float64(l), dimLineLoad)
}

// constructors /////////////////////////////////////////////////////////////////////////////////

// Mm returns a length given in millimetres
func Mm(v float64) unit.Length { return unit.Length(v * milli) }

// Inch returns a length given in inches
func Inch(v float64) unit.Length { return unit.Length(v * inch) }

// Ft returns a length given in feet
func Ft(v float64) unit.Length { return unit.Length(v * foot) }

// Metre returns a length given in metres
func Metre(v float64) unit.Length { return unit.Length(v) }

// KPa returns a pressure given in kilopascal
func KPa(v float64) unit.Pressure { return unit.Pressure(v * kilo) }

// MPa returns a pressure given in megapascal
func MPa(v float64) unit.Pressure { return unit.Pressure(v * mega) }

// GPa returns a pressure given in gigapascal
func GPa(v float64) unit.Pressure { return unit.Pressure(v * giga) }

// Psf returns a pressure given in pounds-force per square foot
func Psf(v float64) unit.Pressure { return unit.Pressure(v * psf) }

// Psi returns a pressure given in pounds-force per square inch
func Psi(v float64) unit.Pressure { return unit.Pressure(v * psi) }

// Sec returns a time given in seconds
func Sec(v float64) unit.Time { return unit.Time(v) }

// Minutes returns a time given in minutes
func Minutes(v float64) unit.Time { return unit.Time(v * minute) }

// Hours returns a time given in hours
func Hours(v float64) unit.Time { return unit.Time(v * hour) }

// Days returns a time given in days
func Days(v float64) unit.Time { return unit.Time(v * day) }

// Months returns a time given in months (1/12 of a Julian year)
func Months(v float64) unit.Time { return unit.Time(v * month) }

// Years returns a time given in Julian years
func Years(v float64) unit.Time { return unit.Time(v * year) }

// DegC returns a temperature given in degrees Celsius
func DegC(v float64) unit.Temperature { return unit.Temperature(v + zeroC) }

// Celsius returns the value of t in degrees Celsius
func Celsius(t unit.Temperature) float64 { return float64(t) - zeroC }
