// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layer

import (
	"gonum.org/v1/gonum/unit"

	"github.com/normanrichardson/structuralglass/fault"
)

// Layer is a *Ply or an *Interlayer
type Layer interface {
	Thickness() unit.Length
}

// Buildup is an ordered stack of layers: either plies only or
//  Ply, Interlayer, Ply, ..., Interlayer, Ply
type Buildup struct {
	layers []Layer
	plies  []*Ply
	inters []*Interlayer
}

// NewBuildup validates the sequence of layers and returns a new buildup
func NewBuildup(layers ...Layer) (*Buildup, error) {
	if len(layers) == 0 {
		return nil, fault.Validation("buildup must have at least one ply")
	}
	o := &Buildup{layers: make([]Layer, len(layers))}
	copy(o.layers, layers)
	seen := make(map[*Ply]bool)
	for i, l := range layers {
		switch v := l.(type) {
		case *Ply:
			if v == nil {
				return nil, fault.Validation("layer %d is a nil ply", i)
			}
			if seen[v] {
				return nil, fault.Validation("layer %d: ply %v appears twice in the buildup", i, v.ID())
			}
			seen[v] = true
			o.plies = append(o.plies, v)
		case *Interlayer:
			if v == nil {
				return nil, fault.Validation("layer %d is a nil interlayer", i)
			}
			o.inters = append(o.inters, v)
		default:
			return nil, fault.Validation("layer %d has invalid type %T", i, l)
		}
	}

	// shape
	if len(o.inters) > 0 {
		if len(layers)%2 == 0 {
			return nil, fault.Validation("buildup must start and end with a ply")
		}
		for i, l := range layers {
			_, isPly := l.(*Ply)
			if isPly != (i%2 == 0) {
				return nil, fault.Validation("buildup must alternate plies and interlayers; layer %d is out of place", i)
			}
		}
	}

	// material
	E := o.plies[0].E()
	for i, p := range o.plies {
		if p.E() != E {
			return nil, fault.Validation("all plies must have the same elastic modulus; ply %d has E = %v instead of %v", i, p.E(), E)
		}
	}
	return o, nil
}

// Plies returns the plies (copy)
func (o *Buildup) Plies() []*Ply {
	res := make([]*Ply, len(o.plies))
	copy(res, o.plies)
	return res
}

// Interlayers returns the interlayers (copy)
func (o *Buildup) Interlayers() []*Interlayer {
	res := make([]*Interlayer, len(o.inters))
	copy(res, o.inters)
	return res
}

// Layers returns all layers in order (copy)
func (o *Buildup) Layers() []Layer {
	res := make([]Layer, len(o.layers))
	copy(res, o.layers)
	return res
}

// NumPlies returns the number of plies
func (o *Buildup) NumPlies() int { return len(o.plies) }

// E returns the elastic modulus shared by all plies
func (o *Buildup) E() unit.Pressure { return o.plies[0].E() }
