// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/normanrichardson/structuralglass/fault"
	"github.com/normanrichardson/structuralglass/inp"
)

// iguInput returns the triple glazed unit of the input tests with the given units and check
func iguInput(system, check string) string {
	return `{
  "desc": "triple glazed unit",
  "units": "` + system + `",
  "plies": [
    {"name": "outer1", "nominal": {"v": 0.25, "u": "in"}},
    {"name": "outer2", "nominal": {"v": 0.25, "u": "in"}},
    {"name": "inner",  "nominal": {"v": 0.25, "u": "in"}}
  ],
  "interlayers": [
    {"name": "pvb", "t": {"v": 1.52, "u": "mm"}, "product": "PVB NCSEA",
     "temp": {"v": 30, "u": "degC"}, "dur": {"v": 3, "u": "s"}}
  ],
  "packages": [
    {"name": "outer", "model": "stc", "layers": ["outer1", "pvb", "outer2"]},
    {"name": "inner", "model": "monolithic", "layers": ["inner"]}
  ],
  "panel": {"dimx": {"v": 13, "u": "ft"}, "dimy": {"v": 5, "u": "ft"}, "load": {"v": 30, "u": "psf"}}` + check + `
}`
}

// analysis builds and solves an analysis
func analysis(tst *testing.T, src string) *inp.Analysis {
	dat, err := inp.Decode([]byte(src), ".json")
	require.NoError(tst, err)
	a, err := dat.Build()
	require.NoError(tst, err)
	if a.Panel != nil {
		require.NoError(tst, a.Panel.Solve())
	}
	return a
}

func Test_report01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report01. imperial report with checks")

	check := `,
  "check": {"glass": "HS", "defllimit": 60}`
	rep, err := NewReport(analysis(tst, iguInput("imperial", check)))
	require.NoError(tst, err)
	io.Pf("%s", rep.Text())

	assert.Equal(tst, "imperial", rep.Units)
	assert.Equal(tst, "ksi", rep.Symbols.Stress)
	require.NotNil(tst, rep.Panel)
	assert.InDelta(tst, 13.0, rep.Panel.DimX, 1e-12)
	assert.InDelta(tst, 30.0, rep.Panel.Load, 1e-9)
	assert.Equal(tst, "Heat Strengthened", rep.Panel.Glass)

	require.Len(tst, rep.Packages, 2)
	outer, inner := rep.Packages[0], rep.Packages[1]
	assert.Equal(tst, "outer", outer.Name)
	assert.Equal(tst, "stc", outer.Method)
	assert.InDelta(tst, 0.4031918861054444, outer.Hefw, 1e-9)
	require.NotNil(tst, outer.Gamma)
	assert.InDelta(tst, 0.4367379225667908, *outer.Gamma, 1e-9)
	assert.Nil(tst, inner.Gamma)
	assert.InDelta(tst, 0.862050376476552, *outer.LSF, 1e-9)
	assert.InDelta(tst, -0.4251383058048335, *outer.Deflection, 1e-6)
	assert.InDelta(tst, 1.0, *outer.DeflAllow, 1e-12)
	assert.InDelta(tst, 65.19686997292165, *outer.Reaction, 1e-6)

	require.Len(tst, outer.Plies, 2)
	p1 := outer.Plies[0]
	assert.Equal(tst, "outer1", p1.Name)
	assert.InDelta(tst, 0.438655577715663, p1.Hefs, 1e-9)
	assert.InDelta(tst, 2.258361263526138, *p1.Stress, 1e-6)
	assert.InDelta(tst, 15.570852792305754/46.6, *p1.Utilization, 1e-6)
	assert.InDelta(tst, 10.006113727306646/46.6, *inner.Plies[0].Utilization, 1e-6)
	require.NotNil(tst, rep.Pass)
	assert.True(tst, *rep.Pass)

	txt := rep.Text()
	assert.Contains(tst, txt, "package outer (stc)")
	assert.Contains(tst, txt, "stress = 2.258 ksi")
	assert.Contains(tst, txt, "result: OK")
}

func Test_report02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report02. metric report, failing check and formats")

	check := `,
  "check": {"glass": "Annealed", "ratio": 0.001, "duration": {"v": 10, "u": "year"}}`
	rep, err := NewReport(analysis(tst, iguInput("metric", check)))
	require.NoError(tst, err)
	assert.Equal(tst, "MPa", rep.Symbols.Stress)
	assert.InDelta(tst, 15.570852792305754, *rep.Packages[0].Plies[0].Stress, 1e-6)
	assert.Nil(tst, rep.Packages[0].DeflAllow)
	require.NotNil(tst, rep.Pass)
	assert.False(tst, *rep.Pass)
	assert.Contains(tst, rep.Text(), "result: NOT OK")

	// json
	var buf bytes.Buffer
	require.NoError(tst, rep.Write(&buf, "json"))
	var decoded map[string]interface{}
	require.NoError(tst, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(tst, "metric", decoded["units"])
	assert.Equal(tst, false, decoded["pass"])
	pkgs, ok := decoded["packages"].([]interface{})
	require.True(tst, ok)
	assert.Len(tst, pkgs, 2)

	// yaml
	buf.Reset()
	require.NoError(tst, rep.Write(&buf, "yaml"))
	var back Report
	require.NoError(tst, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(tst, rep.Units, back.Units)
	require.Len(tst, back.Packages, 2)
	assert.InDelta(tst, rep.Packages[0].Hefw, back.Packages[0].Hefw, 1e-12)

	// text
	buf.Reset()
	require.NoError(tst, rep.Write(&buf, "text"))
	assert.True(tst, strings.HasPrefix(buf.String(), "triple glazed unit\n"))

	err = rep.Write(&buf, "xml")
	assert.ErrorIs(tst, err, fault.ErrValidation)
}

func Test_report03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report03. thickness only and unsolved panels")

	src := `{
  "plies": [{"name": "a", "nominal": {"v": 8, "u": "mm"}}, {"name": "b", "nominal": {"v": 6, "u": "mm"}}],
  "packages": [{"name": "pair", "model": "non-composite", "layers": ["a", "b"]}]
}`
	rep, err := NewReport(analysis(tst, src))
	require.NoError(tst, err)
	assert.Nil(tst, rep.Panel)
	assert.Nil(tst, rep.Pass)
	require.Len(tst, rep.Packages, 1)
	assert.Nil(tst, rep.Packages[0].LSF)
	assert.InDelta(tst, 8.341458529922406, rep.Packages[0].Hefw, 1e-9)
	assert.Nil(tst, rep.Packages[0].Plies[0].Stress)
	assert.NotContains(tst, rep.Text(), "LSF")

	// panel not solved
	dat, err := inp.Decode([]byte(iguInput("metric", "")), ".json")
	require.NoError(tst, err)
	a, err := dat.Build()
	require.NoError(tst, err)
	_, err = NewReport(a)
	assert.ErrorIs(tst, err, fault.ErrValidation)
}
