// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fault holds the error taxonomy shared by all packages
//
//  ErrValidation -- invalid buildup shape, non-positive physical quantity, empty package list
//  ErrUnit       -- a quantity does not have the physical dimension required by a parameter
//  ErrLookup     -- a name is not held by a registry (interlayer product, glass type, symbol)
//
//  All errors returned by this module wrap one of the above; use errors.Is to classify them.
package fault

import (
	"errors"

	"github.com/cpmech/gosl/chk"
)

// sentinels
var (
	ErrValidation = errors.New("validation error")
	ErrUnit       = errors.New("unit error")
	ErrLookup     = errors.New("lookup error")
)

// Validation returns a new error wrapping ErrValidation
func Validation(msg string, prm ...interface{}) error {
	return wrap(ErrValidation, msg, prm)
}

// Unit returns a new error wrapping ErrUnit
func Unit(msg string, prm ...interface{}) error {
	return wrap(ErrUnit, msg, prm)
}

// Lookup returns a new error wrapping ErrLookup
func Lookup(msg string, prm ...interface{}) error {
	return wrap(ErrLookup, msg, prm)
}

func wrap(kind error, msg string, prm []interface{}) error {
	return chk.Err("%w: "+msg, append([]interface{}{kind}, prm...)...)
}

// Wrap adds context to err keeping its kind; e.g. Wrap(err, "ply %q", name)
func Wrap(err error, msg string, prm ...interface{}) error {
	if err == nil {
		return nil
	}
	return chk.Err(msg+": %w", append(prm, err)...)
}
