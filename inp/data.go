// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a JSON or YAML panel file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/unit"
	"gopkg.in/yaml.v3"

	"github.com/normanrichardson/structuralglass/fault"
	"github.com/normanrichardson/structuralglass/units"
)

// Qty holds a quantity with its unit symbol; e.g. {"v": 6, "u": "mm"}
type Qty struct {
	V float64 `json:"v" yaml:"v"` // value
	U string  `json:"u" yaml:"u"` // unit symbol; e.g. "mm", "psf", "degC"
}

// Unit returns the quantity in SI
func (o Qty) Unit() (*unit.Unit, error) { return units.Parse(o.V, o.U) }

// String returns the quantity as given in the input file
func (o Qty) String() string { return strings.TrimSpace(io.Sf("%g %s", o.V, o.U)) }

// PrmData holds one model parameter; the unit is optional
type PrmData struct {
	N string  `json:"n" yaml:"n"` // name of parameter; e.g. "span"
	V float64 `json:"v" yaml:"v"` // value
	U string  `json:"u" yaml:"u"` // unit symbol; value is converted to SI if given
}

// ProductData holds a shear relaxation table of an interlayer product
type ProductData struct {
	Name  string      `json:"name" yaml:"name"`   // name of product
	Temps []Qty       `json:"temps" yaml:"temps"` // temperatures (columns)
	Durs  []Qty       `json:"durs" yaml:"durs"`   // load durations (rows)
	G     [][]float64 `json:"g" yaml:"g"`         // shear moduli; one row per duration
	GU    string      `json:"gu" yaml:"gu"`       // unit of shear moduli; default "MPa"
}

// GlassTypeData holds the strength parameters of a glass type
type GlassTypeData struct {
	Name           string             `json:"name" yaml:"name"`                     // name of glass type
	Abbr           string             `json:"abbr" yaml:"abbr"`                     // abbreviation (optional)
	StressSurface  Qty                `json:"stresssurface" yaml:"stresssurface"`   // base allowable surface stress
	StressEdge     Qty                `json:"stressedge" yaml:"stressedge"`         // base allowable edge stress
	DurationFactor float64            `json:"durationfactor" yaml:"durationfactor"` // static fatigue exponent n
	CoefVariation  float64            `json:"coefvariation" yaml:"coefvariation"`   // coefficient of variation v
	SurfFactors    map[string]float64 `json:"surffactors" yaml:"surffactors"`       // surface treatment factors
}

// PlyData holds a glass ply. One of Nominal, Actual or TMin must be given
type PlyData struct {
	Name    string `json:"name" yaml:"name"`       // name of ply
	Nominal *Qty   `json:"nominal" yaml:"nominal"` // nominal thickness from the catalogue
	Actual  *Qty   `json:"actual" yaml:"actual"`   // actual thickness of plies not in the catalogue
	TMin    *Qty   `json:"tmin" yaml:"tmin"`       // minimum thickness
	E       *Qty   `json:"e" yaml:"e"`             // elastic modulus; default soda-lime
}

// InterlayerData holds an interlayer. Either G (static) or Product (dynamic) must be given
type InterlayerData struct {
	Name    string `json:"name" yaml:"name"`       // name of interlayer
	T       Qty    `json:"t" yaml:"t"`             // thickness
	G       *Qty   `json:"g" yaml:"g"`             // shear modulus of a static interlayer
	Product string `json:"product" yaml:"product"` // registered product name
	Temp    *Qty   `json:"temp" yaml:"temp"`       // reference temperature of a dynamic interlayer
	Dur     *Qty   `json:"dur" yaml:"dur"`         // reference load duration of a dynamic interlayer
}

// PackageData holds a laminate package
type PackageData struct {
	Name   string     `json:"name" yaml:"name"`     // name of package
	Model  string     `json:"model" yaml:"model"`   // equivalent thickness model; e.g. "monolithic", "non-composite", "stc"
	Layers []string   `json:"layers" yaml:"layers"` // names of plies and interlayers, in order
	Prms   []*PrmData `json:"prms" yaml:"prms"`     // model parameters
}

// PanelData holds a four-side supported panel under uniform lateral load
type PanelData struct {
	DimX     Qty      `json:"dimx" yaml:"dimx"`         // dimension along x
	DimY     Qty      `json:"dimy" yaml:"dimy"`         // dimension along y
	Load     Qty      `json:"load" yaml:"load"`         // uniform lateral pressure
	Packages []string `json:"packages" yaml:"packages"` // packages of the unit; default all
}

// CheckData holds the data to check stresses and deflections
type CheckData struct {
	Glass     string  `json:"glass" yaml:"glass"`         // glass type name or abbreviation
	Ratio     float64 `json:"ratio" yaml:"ratio"`         // probability of breakage; default 0.008
	Duration  *Qty    `json:"duration" yaml:"duration"`   // load duration; default 3 s
	Surface   string  `json:"surface" yaml:"surface"`     // surface treatment; default "None"
	Edge      bool    `json:"edge" yaml:"edge"`           // use the edge allowable stress
	DeflLimit float64 `json:"defllimit" yaml:"defllimit"` // deflection limit as span ratio; e.g. 175 => short side/175
}

// Data holds all input data
type Data struct {

	// global information
	Desc  string `json:"desc" yaml:"desc"`   // description of analysis
	Units string `json:"units" yaml:"units"` // unit system of reports: "metric" or "imperial"

	// registries
	Products   []*ProductData   `json:"products" yaml:"products"`     // additional interlayer products
	GlassTypes []*GlassTypeData `json:"glasstypes" yaml:"glasstypes"` // additional glass types

	// laminates
	Plies       []*PlyData        `json:"plies" yaml:"plies"`             // glass plies
	Interlayers []*InterlayerData `json:"interlayers" yaml:"interlayers"` // interlayers
	Packages    []*PackageData    `json:"packages" yaml:"packages"`       // packages

	// demand
	Panel *PanelData `json:"panel" yaml:"panel"` // panel (optional)
	Check *CheckData `json:"check" yaml:"check"` // check (optional)
}

// Read reads input data from a .json, .yaml or .yml file
func Read(path string) (o *Data, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fault.Lookup("cannot read input file %q: %v", path, err)
	}
	return Decode(b, filepath.Ext(path))
}

// Decode decodes input data; ext is the file extension selecting the format
func Decode(b []byte, ext string) (o *Data, err error) {
	o = new(Data)
	switch strings.ToLower(ext) {
	case ".json":
		err = json.Unmarshal(b, o)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		return nil, fault.Validation("input file extension %q is incorrect; options are \".json\", \".yaml\" and \".yml\"", ext)
	}
	if err != nil {
		return nil, fault.Validation("cannot decode input data: %v", err)
	}
	return
}
