// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layer

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/unit"

	"github.com/normanrichardson/structuralglass/fault"
	"github.com/normanrichardson/structuralglass/units"
)

// productID1 returns a small custom product table
func productID1() Table {
	s3, m10 := units.Sec(3), units.Minutes(10)
	return Table{
		{units.DegC(20), s3}:  units.MPa(240),
		{units.DegC(30), s3}:  units.MPa(217),
		{units.DegC(40), s3}:  units.MPa(151),
		{units.DegC(20), m10}: units.MPa(77.0),
		{units.DegC(30), m10}: units.MPa(36.2),
		{units.DegC(40), m10}: units.MPa(11.8),
	}
}

func Test_registry01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("registry01. round trip")

	reg := NewRegistry()
	name := "product_ID_1"
	if err := reg.Register(name, productID1()); err != nil {
		tst.Errorf("Register failed: %v\n", err)
		return
	}
	chk.Strings(tst, "names", reg.Names(), []string{name})

	il, err := FromProductIn(reg, units.Mm(1.52), name)
	if err != nil {
		tst.Errorf("FromProductIn failed: %v\n", err)
		return
	}
	if err = il.SetDuration(units.Minutes(5)); err != nil {
		tst.Errorf("SetDuration failed: %v\n", err)
		return
	}
	if err = il.SetTemperature(units.DegC(35)); err != nil {
		tst.Errorf("SetTemperature failed: %v\n", err)
		return
	}
	G, err := il.G()
	if err != nil {
		tst.Errorf("G failed: %v\n", err)
		return
	}
	chk.Float64(tst, "G(35°C, 5 min)", 1e-9, units.MustIn(G, "MPa"), 104.40201005025126)

	table, err := reg.Table(name)
	if err != nil {
		tst.Errorf("Table failed: %v\n", err)
		return
	}
	chk.Int(tst, "len(table)", len(table), 6)
	chk.Float64(tst, "G(30°C, 3 s)", 1e-9, units.MustIn(table[Key{units.DegC(30), units.Sec(3)}], "MPa"), 217)

	if err = reg.Register(name, productID1()); !errors.Is(err, fault.ErrValidation) {
		tst.Errorf("duplicate product accepted: %v\n", err)
	}

	reg.Deregister(name)
	if _, err = reg.Table(name); !errors.Is(err, fault.ErrLookup) {
		tst.Errorf("deregistered product found: %v\n", err)
	}
	if _, err = FromProductIn(reg, units.Mm(1.52), name); !errors.Is(err, fault.ErrLookup) {
		tst.Errorf("deregistered product used: %v\n", err)
	}

	// existing interlayers keep their table
	G, err = il.G()
	if err != nil {
		tst.Errorf("G after deregistration failed: %v\n", err)
		return
	}
	chk.Float64(tst, "G kept", 1e-9, units.MustIn(G, "MPa"), 104.40201005025126)

	// the default registry is untouched
	chk.Strings(tst, "default", Default.Names(), []string{Ionoplast, PVB})
}

func Test_registry02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("registry02. invalid tables")

	reg := NewRegistry()
	table := productID1()
	delete(table, Key{units.DegC(40), units.Minutes(10)})
	if err := reg.Register("holes", table); !errors.Is(err, fault.ErrValidation) {
		tst.Errorf("non-rectangular table accepted: %v\n", err)
	}
	if err := reg.Register("empty", Table{}); !errors.Is(err, fault.ErrValidation) {
		tst.Errorf("empty table accepted: %v\n", err)
	}
	if err := reg.Register("", productID1()); !errors.Is(err, fault.ErrValidation) {
		tst.Errorf("empty name accepted: %v\n", err)
	}
	bad := productID1()
	bad[Key{units.DegC(20), units.Sec(3)}] = unit.Pressure(-1)
	if err := reg.Register("negative", bad); !errors.Is(err, fault.ErrValidation) {
		tst.Errorf("negative modulus accepted: %v\n", err)
	}
	if len(reg.Names()) != 0 {
		tst.Errorf("failed registrations must not add products: %v\n", reg.Names())
	}

	// single row tables are constant along the missing axis
	one := Table{{units.DegC(20), units.Sec(3)}: units.MPa(10), {units.DegC(40), units.Sec(3)}: units.MPa(20)}
	if err := reg.Register("one", one); err != nil {
		tst.Errorf("single duration table rejected: %v\n", err)
		return
	}
	il, err := FromProductIn(reg, units.Mm(1), "one")
	if err != nil {
		tst.Errorf("FromProductIn failed: %v\n", err)
		return
	}
	if err = il.SetTemperature(units.DegC(30)); err != nil {
		tst.Errorf("SetTemperature failed: %v\n", err)
		return
	}
	if err = il.SetDuration(units.Hours(1)); err != nil {
		tst.Errorf("SetDuration failed: %v\n", err)
		return
	}
	G, _ := il.G()
	chk.Float64(tst, "G(30°C, 1 h)", 1e-9, units.MustIn(G, "MPa"), 15)
}

func Test_registry03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("registry03. NewTable")

	temps := []unit.Temperature{units.DegC(20), units.DegC(30)}
	durs := []unit.Time{units.Sec(3)}
	if _, err := NewTable(temps, durs, [][]unit.Pressure{{units.MPa(1)}}); !errors.Is(err, fault.ErrValidation) {
		tst.Errorf("short row accepted: %v\n", err)
	}
	if _, err := NewTable(temps, durs, nil); !errors.Is(err, fault.ErrValidation) {
		tst.Errorf("missing rows accepted: %v\n", err)
	}
	table, err := NewTable(temps, durs, [][]unit.Pressure{{units.MPa(1), units.MPa(2)}})
	if err != nil {
		tst.Errorf("NewTable failed: %v\n", err)
		return
	}
	chk.Int(tst, "len", len(table), 2)
}

func Test_registry04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("registry04. clone")

	reg := Default.Clone()
	if err := reg.Register("product_ID_1", productID1()); err != nil {
		tst.Errorf("Register in clone failed: %v\n", err)
		return
	}
	reg.Deregister(PVB)
	chk.Strings(tst, "clone", reg.Names(), []string{Ionoplast, "product_ID_1"})
	chk.Strings(tst, "default", Default.Names(), []string{Ionoplast, PVB})
	if _, err := Default.Table("product_ID_1"); !errors.Is(err, fault.ErrLookup) {
		tst.Errorf("clone registration leaked into the default registry: %v\n", err)
	}
}
