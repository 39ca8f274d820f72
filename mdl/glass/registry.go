// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glass

import (
	"sort"

	"github.com/cpmech/gosl/chk"

	"github.com/normanrichardson/structuralglass/fault"
	"github.com/normanrichardson/structuralglass/units"
)

// Registry holds glass types by name, with optional abbreviations
type Registry struct {
	types map[string]Data   // name => parameters
	abbrs map[string]string // abbreviation => name
}

// Default holds the annealed, heat strengthened and fully tempered glass types
var Default = NewRegistry()

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]Data), abbrs: make(map[string]string)}
}

// Clone returns a deep copy of the registry
func (o *Registry) Clone() *Registry {
	res := NewRegistry()
	for name, data := range o.types {
		res.types[name] = data.clone()
	}
	for abbr, name := range o.abbrs {
		res.abbrs[abbr] = name
	}
	return res
}

// Register adds a glass type; abbr may be empty
func (o *Registry) Register(name, abbr string, data Data) error {
	if name == "" {
		return fault.Validation("glass type name must not be empty")
	}
	if _, ok := o.types[name]; ok {
		return fault.Validation("glass type name %q is already in use; deregister it first", name)
	}
	if other, ok := o.abbrs[abbr]; ok && abbr != "" {
		return fault.Validation("abbreviation %q is already in use by %q; deregister it first", abbr, other)
	}
	if err := data.validate(); err != nil {
		return err
	}
	o.types[name] = data.clone()
	if abbr != "" {
		o.abbrs[abbr] = name
	}
	return nil
}

// Deregister removes a glass type and its abbreviation; unknown names are ignored
func (o *Registry) Deregister(name string) {
	for abbr, n := range o.abbrs {
		if n == name {
			delete(o.abbrs, abbr)
		}
	}
	delete(o.types, name)
}

// FromName returns the glass type registered with name
func (o *Registry) FromName(name string) (*Type, error) {
	data, ok := o.types[name]
	if !ok {
		return nil, fault.Lookup("glass type %q is not available in the glass type registry", name)
	}
	return &Type{Name: name, Abbr: o.abbrOf(name), data: data.clone()}, nil
}

// FromAbbr returns the glass type registered with abbreviation abbr
func (o *Registry) FromAbbr(abbr string) (*Type, error) {
	name, ok := o.abbrs[abbr]
	if !ok {
		return nil, fault.Lookup("glass type abbreviation %q is not available in the glass type registry", abbr)
	}
	return o.FromName(name)
}

// Find returns the glass type with the given abbreviation or name
func (o *Registry) Find(key string) (*Type, error) {
	if _, ok := o.abbrs[key]; ok {
		return o.FromAbbr(key)
	}
	return o.FromName(key)
}

// Data returns a copy of all parameters by name
func (o *Registry) Data() map[string]Data {
	res := make(map[string]Data, len(o.types))
	for name, data := range o.types {
		res[name] = data.clone()
	}
	return res
}

// Abbrs returns a copy of the abbreviation => name map
func (o *Registry) Abbrs() map[string]string {
	res := make(map[string]string, len(o.abbrs))
	for abbr, name := range o.abbrs {
		res[abbr] = name
	}
	return res
}

// Names returns the sorted names of all glass types
func (o *Registry) Names() (names []string) {
	for name := range o.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// abbrOf returns the abbreviation of a name or ""
func (o *Registry) abbrOf(name string) string {
	for abbr, n := range o.abbrs {
		if n == name {
			return abbr
		}
	}
	return ""
}

// FromName returns a glass type of the Default registry
func FromName(name string) (*Type, error) { return Default.FromName(name) }

// FromAbbr returns a glass type of the Default registry
func FromAbbr(abbr string) (*Type, error) { return Default.FromAbbr(abbr) }

// standardSurf returns the NCSEA surface treatment factors
func standardSurf() map[string]float64 {
	return map[string]float64{SurfNone: 1, "Fritted": 1, "Acid etching": 0.5, "Sandblasting": 0.5}
}

// add glass types to the default registry (see [1] table 5.1)
func init() {
	for _, t := range []struct {
		name, abbr string
		data       Data
	}{
		{"Annealed", "AN", Data{units.MPa(23.3), units.MPa(18.3), 16, 0.22, standardSurf()}},
		{"Heat Strengthened", "HS", Data{units.MPa(46.6), units.MPa(36.5), 31.7, 0.15, standardSurf()}},
		{"Fully Tempered", "FT", Data{units.MPa(93.1), units.MPa(73.0), 47.5, 0.1, standardSurf()}},
	} {
		if err := Default.Register(t.name, t.abbr, t.data); err != nil {
			chk.Panic("%v", err)
		}
	}
}
