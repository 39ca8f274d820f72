// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layer

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/normanrichardson/structuralglass/fault"
	"github.com/normanrichardson/structuralglass/units"
)

func Test_buildup01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("buildup01. valid shapes")

	p1, _ := FromNominal(units.Mm(8))
	p2, _ := FromNominal(units.Mm(6))
	p3, _ := FromNominal(units.Mm(6))
	il1, _ := Static(units.Mm(1.52), units.MPa(0.44))
	il2, _ := Static(units.Mm(0.76), units.MPa(0.44))

	b, err := NewBuildup(p1)
	if err != nil {
		tst.Errorf("single ply rejected: %v\n", err)
		return
	}
	chk.Int(tst, "nply", b.NumPlies(), 1)

	b, err = NewBuildup(p1, p2, p3)
	if err != nil {
		tst.Errorf("plies only rejected: %v\n", err)
		return
	}
	chk.Int(tst, "nply", b.NumPlies(), 3)
	chk.Int(tst, "ninter", len(b.Interlayers()), 0)

	b, err = NewBuildup(p1, il1, p2, il2, p3)
	if err != nil {
		tst.Errorf("alternating buildup rejected: %v\n", err)
		return
	}
	chk.Int(tst, "nply", b.NumPlies(), 3)
	chk.Int(tst, "ninter", len(b.Interlayers()), 2)
	chk.Int(tst, "nlayer", len(b.Layers()), 5)
	if b.Plies()[1] != p2 || b.Interlayers()[1] != il2 {
		tst.Errorf("layers out of order\n")
	}
	chk.Float64(tst, "E", 1e-6, units.MustIn(b.E(), "GPa"), 71.7)

	// returned slices are copies
	b.Plies()[0] = p3
	if b.Plies()[0] != p1 {
		tst.Errorf("buildup modified through Plies\n")
	}
}

func Test_buildup02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("buildup02. invalid shapes")

	p1, _ := FromNominal(units.Mm(8))
	p2, _ := FromNominal(units.Mm(6))
	soft, _ := NewPly(units.Mm(6), units.GPa(64))
	il, _ := Static(units.Mm(1.52), units.MPa(0.44))

	for name, layers := range map[string][]Layer{
		"empty":             {},
		"interlayer only":   {il},
		"ends with inter":   {p1, il},
		"starts with inter": {il, p1, il, p2},
		"two interlayers":   {p1, il, il, p2},
		"mixed":             {p1, p2, il, p1},
		"duplicate ply":     {p1, il, p1},
		"mixed moduli":      {p1, il, soft},
		"nil ply":           {p1, il, (*Ply)(nil)},
	} {
		if _, err := NewBuildup(layers...); !errors.Is(err, fault.ErrValidation) {
			tst.Errorf("%s: buildup accepted: %v\n", name, err)
		}
	}
}
