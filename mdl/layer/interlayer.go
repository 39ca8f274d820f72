// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layer

import (
	"gonum.org/v1/gonum/unit"

	"github.com/normanrichardson/structuralglass/fault"
	"github.com/normanrichardson/structuralglass/units"
)

// Interlayer is a bonding layer between two glass plies (e.g. PVB or ionoplast)
//  Static interlayers have a fixed shear modulus. Interlayers of a registered product
//  have a shear modulus that depends on temperature and load duration; it is
//  interpolated from the product table on every call to G
type Interlayer struct {
	t       unit.Length       // thickness
	g       unit.Pressure     // shear modulus of static interlayers
	product string            // product name; empty if static
	grid    *grid             // product table; nil if static
	temp    *unit.Temperature // reference temperature
	dur     *unit.Time        // reference load duration
}

// Static returns an interlayer with constant shear modulus
func Static(t unit.Length, G unit.Pressure) (*Interlayer, error) {
	if err := units.Positive(float64(t), "t"); err != nil {
		return nil, err
	}
	if err := units.Positive(float64(G), "G"); err != nil {
		return nil, err
	}
	return &Interlayer{t: t, g: G}, nil
}

// FromProduct returns an interlayer backed by a product of the Default registry
func FromProduct(t unit.Length, name string) (*Interlayer, error) {
	return FromProductIn(Default, t, name)
}

// FromProductIn returns an interlayer backed by a product of reg
//  Note: the interlayer keeps the table even if the product is deregistered later
func FromProductIn(reg *Registry, t unit.Length, name string) (*Interlayer, error) {
	if err := units.Positive(float64(t), "t"); err != nil {
		return nil, err
	}
	g, err := reg.find(name)
	if err != nil {
		return nil, err
	}
	return &Interlayer{t: t, product: name, grid: g}, nil
}

// Thickness returns the interlayer thickness
func (o *Interlayer) Thickness() unit.Length { return o.t }

// Product returns the product name; empty for static interlayers
func (o *Interlayer) Product() string { return o.product }

// IsStatic tells whether the shear modulus is constant
func (o *Interlayer) IsStatic() bool { return o.grid == nil }

// SetTemperature sets the reference temperature
func (o *Interlayer) SetTemperature(T unit.Uniter) error {
	if o.IsStatic() {
		return fault.Validation("temperature cannot be set: interlayer is static")
	}
	temp, err := units.Temperature(T, "temperature")
	if err != nil {
		return err
	}
	if err = units.Positive(float64(temp), "absolute temperature"); err != nil {
		return err
	}
	o.temp = &temp
	return nil
}

// SetDuration sets the reference load duration
func (o *Interlayer) SetDuration(d unit.Uniter) error {
	if o.IsStatic() {
		return fault.Validation("duration cannot be set: interlayer is static")
	}
	dur, err := units.Time(d, "duration")
	if err != nil {
		return err
	}
	if err = units.Positive(float64(dur), "duration"); err != nil {
		return err
	}
	o.dur = &dur
	return nil
}

// Temperature returns the reference temperature
func (o *Interlayer) Temperature() (unit.Temperature, error) {
	if o.IsStatic() {
		return 0, fault.Validation("interlayer is static: no reference temperature")
	}
	if o.temp == nil {
		return 0, fault.Validation("reference temperature of %q interlayer is not set", o.product)
	}
	return *o.temp, nil
}

// Duration returns the reference load duration
func (o *Interlayer) Duration() (unit.Time, error) {
	if o.IsStatic() {
		return 0, fault.Validation("interlayer is static: no reference duration")
	}
	if o.dur == nil {
		return 0, fault.Validation("reference duration of %q interlayer is not set", o.product)
	}
	return *o.dur, nil
}

// G returns the shear modulus at the reference temperature and duration
//  Note: values outside the table are capped to the table range
func (o *Interlayer) G() (unit.Pressure, error) {
	if o.IsStatic() {
		return o.g, nil
	}
	if o.temp == nil || o.dur == nil {
		return 0, fault.Validation("reference temperature and/or duration of %q interlayer are not set", o.product)
	}
	return o.grid.shear(units.Celsius(*o.temp), float64(*o.dur)), nil
}
