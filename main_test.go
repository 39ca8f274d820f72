// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes sglass with args and returns its standard output
func run(tst *testing.T, args ...string) (string, error) {
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func Test_main01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("main01. solve")

	txt, err := run(tst, "solve", filepath.Join("inp", "data", "igu.json"))
	require.NoError(tst, err)
	assert.Contains(tst, txt, "package outer (stc)")
	assert.Contains(tst, txt, "stress = 2.258 ksi")
	assert.Contains(tst, txt, "result: OK")

	js, err := run(tst, "solve", "--format", "json", "--units", "metric", filepath.Join("inp", "data", "igu.json"))
	require.NoError(tst, err)
	var rep struct {
		Units    string `json:"units"`
		Packages []struct {
			Name string  `json:"name"`
			LSF  float64 `json:"lsf"`
		} `json:"packages"`
	}
	require.NoError(tst, json.Unmarshal([]byte(js), &rep))
	assert.Equal(tst, "metric", rep.Units)
	require.Len(tst, rep.Packages, 2)
	assert.Equal(tst, "outer", rep.Packages[0].Name)
	assert.InDelta(tst, 0.862050376476552, rep.Packages[0].LSF, 1e-9)

	yml, err := run(tst, "solve", "-f", "yaml", filepath.Join("inp", "data", "igu.yaml"))
	require.NoError(tst, err)
	assert.Contains(tst, yml, "method: non-composite")
}

func Test_main02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("main02. thickness, allowable and products")

	txt, err := run(tst, "thickness", filepath.Join("inp", "data", "igu.yaml"))
	require.NoError(tst, err)
	assert.Contains(tst, txt, "package laminate (stc)")
	assert.Contains(tst, txt, "h_efw      = 9.533 mm")
	assert.NotContains(tst, txt, "LSF")

	txt, err = run(tst, "allowable", "--type", "FT", "--ratio", "0.001", "--edge")
	require.NoError(tst, err)
	assert.Equal(tst, "Fully Tempered (FT) edge: 66.448 MPa\n", txt)

	txt, err = run(tst, "allowable", "-t", "Annealed", "-r", "0.001", "-d", "1 hour", "-s", "Acid etching")
	require.NoError(tst, err)
	assert.Contains(tst, txt, "5.094 MPa")

	txt, err = run(tst, "products")
	require.NoError(tst, err)
	assert.Contains(tst, txt, "PVB NCSEA")
	assert.Contains(tst, txt, "FT     Fully Tempered")
	assert.NotContains(tst, txt, "product_ID_1")

	txt, err = run(tst, "products", filepath.Join("inp", "data", "igu.yaml"))
	require.NoError(tst, err)
	assert.Contains(tst, txt, "product_ID_1")
	assert.Contains(tst, txt, "CS     Chemically Strengthened")
}

func Test_main03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("main03. errors")

	dir := tst.TempDir()
	nopanel := filepath.Join(dir, "nopanel.json")
	require.NoError(tst, os.WriteFile(nopanel, []byte(`{
  "plies": [{"name": "a", "nominal": {"v": 6, "u": "mm"}}],
  "packages": [{"name": "p", "model": "monolithic", "layers": ["a"]}]
}`), 0644))

	_, err := run(tst, "solve", nopanel)
	assert.Error(tst, err)
	_, err = run(tst, "thickness", nopanel)
	assert.NoError(tst, err)
	_, err = run(tst, "solve", filepath.Join(dir, "missing.json"))
	assert.Error(tst, err)
	_, err = run(tst, "solve", "--format", "xml", filepath.Join("inp", "data", "igu.json"))
	assert.Error(tst, err)
	_, err = run(tst, "solve", "--units", "cubits", filepath.Join("inp", "data", "igu.json"))
	assert.Error(tst, err)
	_, err = run(tst, "allowable", "--type", "XX")
	assert.Error(tst, err)
	_, err = run(tst, "allowable", "--duration", "3 mm")
	assert.Error(tst, err)
	_, err = run(tst, "solve")
	assert.Error(tst, err)
}
