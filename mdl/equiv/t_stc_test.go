// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equiv

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/normanrichardson/structuralglass/fault"
	"github.com/normanrichardson/structuralglass/mdl/layer"
	"github.com/normanrichardson/structuralglass/units"
)

func Test_stc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stc01. reference laminates")

	// 8 mm + 6 mm with 1.52 mm PVB at 0.44 MPa; a = 1 m
	p := plies(tst, 8, 6)
	il, _ := layer.Static(units.Mm(1.52), units.MPa(0.44))
	pkg, err := ShearTransfer(buildup(tst, p[0], il, p[1]), units.Metre(1))
	if err != nil {
		tst.Errorf("ShearTransfer failed: %v\n", err)
		return
	}
	Γ, ok := pkg.Gamma()
	if !ok {
		tst.Errorf("stc package must have Γ\n")
		return
	}
	h1, _ := pkg.Hefs(p[0].ID())
	h2, _ := pkg.Hefs(p[1].ID())
	io.Pforan("Γ = %v  h_efw = %v  h_efs = %v, %v\n", Γ, units.Format(pkg.Hefw(), "mm", 3),
		units.Format(h1, "mm", 3), units.Format(h2, "mm", 3))
	chk.Float64(tst, "Γ", 1e-10, Γ, 0.11685485984127963)
	chk.Float64(tst, "h_efw  ", 1e-8, units.MustIn(pkg.Hefw(), "mm"), 9.533043518215715)
	chk.Float64(tst, "h_efs,1", 1e-8, units.MustIn(h1, "mm"), 10.265067181592476)
	chk.Float64(tst, "h_efs,2", 1e-8, units.MustIn(h2, "mm"), 11.431051540254401)

	// two 12 mm plies with 0.89 mm PVB at 0.281 MPa; a = 1 m
	q := plies(tst, 12, 12)
	il, _ = layer.Static(units.Mm(0.89), units.MPa(0.281))
	pkg, _ = ShearTransfer(buildup(tst, q[0], il, q[1]), units.Metre(1))
	h1, _ = pkg.Hefs(q[0].ID())
	h2, _ = pkg.Hefs(q[1].ID())
	chk.Float64(tst, "h_efw (12+12)", 1e-8, units.MustIn(pkg.Hefw(), "mm"), 16.15495161000335)
	chk.Float64(tst, "h_efs (12+12)", 1e-8, units.MustIn(h1, "mm"), 18.13102857441581)
	chk.Float64(tst, "symmetric", 1e-15, float64(h1), float64(h2))
}

func Test_stc02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stc02. limits and monotonicity")

	p := plies(tst, 8, 6)
	mono, _ := Monolithic(buildup(tst, p[0], p[1]))
	nonc, _ := NonComposite(buildup(tst, p[0], p[1]))

	hefw := func(tv, G float64) (float64, float64) {
		il, err := layer.Static(units.Mm(tv), units.MPa(G))
		if err != nil {
			tst.Fatalf("Static failed: %v\n", err)
		}
		pkg, err := ShearTransfer(buildup(tst, p[0], il, p[1]), units.Metre(1))
		if err != nil {
			tst.Fatalf("ShearTransfer failed: %v\n", err)
		}
		Γ, _ := pkg.Gamma()
		return units.MustIn(pkg.Hefw(), "mm"), Γ
	}

	// monotonic in G
	prev := 0.0
	for _, G := range utl.LinSpace(0.01, 500, 41) {
		h, _ := hefw(1.52, G)
		if h < prev {
			tst.Errorf("h_efw decreased from %v to %v at G = %v MPa\n", prev, h, G)
			return
		}
		prev = h
	}

	// G → 0: non-composite
	h, Γ := hefw(1.52, 1e-9)
	io.Pforan("G → 0: Γ = %v  h_efw = %v\n", Γ, h)
	chk.Float64(tst, "Γ(G → 0)", 1e-9, Γ, 0)
	chk.Float64(tst, "h_efw(G → 0)", 1e-6, h, units.MustIn(nonc.Hefw(), "mm"))

	// G → ∞: solid section; monolithic as the interlayer vanishes
	h, Γ = hefw(1.52, 1e12)
	chk.Float64(tst, "Γ(G → ∞)", 1e-9, Γ, 1)
	tsum := units.MustIn(mono.Hefw(), "mm")
	hs := tsum/2 + 1.52
	Is := 7.42*math.Pow(hs*5.56/tsum, 2) + 5.56*math.Pow(hs*7.42/tsum, 2)
	chk.Float64(tst, "h_efw(G → ∞)", 1e-6, h, math.Cbrt(math.Pow(7.42, 3)+math.Pow(5.56, 3)+12*Is))
	h, _ = hefw(1e-9, 1e12)
	chk.Float64(tst, "h_efw(G → ∞, t_v → 0)", 1e-6, h, tsum)
}

func Test_stc03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stc03. invalid buildups")

	p := plies(tst, 8, 6, 6)
	il, _ := layer.Static(units.Mm(1.52), units.MPa(0.44))
	il2, _ := layer.Static(units.Mm(1.52), units.MPa(0.44))
	a := units.Metre(1)

	if _, err := ShearTransfer(buildup(tst, p[0], p[1]), a); !errors.Is(err, fault.ErrValidation) {
		tst.Errorf("plies without interlayer accepted: %v\n", err)
	}
	if _, err := ShearTransfer(buildup(tst, p[0], il, p[1], il2, p[2]), a); !errors.Is(err, fault.ErrValidation) {
		tst.Errorf("three plies accepted: %v\n", err)
	}
	if _, err := ShearTransfer(buildup(tst, p[0]), a); !errors.Is(err, fault.ErrValidation) {
		tst.Errorf("single ply accepted: %v\n", err)
	}
	if _, err := ShearTransfer(buildup(tst, p[0], il, p[1]), 0); !errors.Is(err, fault.ErrValidation) {
		tst.Errorf("zero span accepted: %v\n", err)
	}

	// product interlayer without reference values
	dyn, _ := layer.FromProduct(units.Mm(1.52), layer.PVB)
	if _, err := ShearTransfer(buildup(tst, p[0], dyn, p[1]), a); !errors.Is(err, fault.ErrValidation) {
		tst.Errorf("unset interlayer accepted: %v\n", err)
	}
}
