// This file is part of go-optspec.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optspec

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/DavidGamba/go-optspec/option"
	"github.com/DavidGamba/go-optspec/text"
)

// Result - Outcome of a scan.
//
// The descriptors are owned by the Result and both lookup tables index into
// the same list, so a short name and its long alias always report the same value.
// A Result must not be used by concurrent scans.
type Result struct {
	descs  []option.Descriptor
	short  map[rune]int
	long   map[string]int
	values []option.Value
	args   []string
	err    error
	ok     bool
}

// NewResult - Returns an empty Result ready to Scan.
func NewResult() *Result {
	r := &Result{}
	r.Reset()
	return r
}

// Reset - Erases all state from a previous scan.
func (r *Result) Reset() {
	r.descs = nil
	r.short = make(map[rune]int)
	r.long = make(map[string]int)
	r.values = nil
	r.args = []string{}
	r.err = nil
	r.ok = false
}

// setDescriptors copies descs and builds both lookup tables.
func (r *Result) setDescriptors(descs []option.Descriptor) error {
	r.descs = make([]option.Descriptor, len(descs))
	copy(r.descs, descs)
	r.values = make([]option.Value, len(descs))
	for i, d := range r.descs {
		if !d.Valid() {
			return fmt.Errorf("%w"+text.ErrorDescriptorNoName, ErrorMalformedSpec, i)
		}
		if d.HasShort() {
			if _, ok := r.short[d.Short]; ok {
				return fmt.Errorf("%w"+text.ErrorDuplicateOption, ErrorDuplicateOption, string(d.Short))
			}
			r.short[d.Short] = i
		}
		if d.HasLong() {
			if _, ok := r.long[d.Long]; ok {
				return fmt.Errorf("%w"+text.ErrorDuplicateOption, ErrorDuplicateOption, d.Long)
			}
			r.long[d.Long] = i
		}
	}
	return nil
}

// index resolves a name: one rune names go through the short table first and
// fall back to the long table.
func (r *Result) index(name string) (int, bool) {
	if utf8.RuneCountInString(name) == 1 {
		c, _ := utf8.DecodeRuneInString(name)
		if i, ok := r.short[c]; ok {
			return i, true
		}
	}
	i, ok := r.long[name]
	return i, ok
}

// Lookup - Returns the tagged value of the option and whether the name is declared.
func (r *Result) Lookup(name string) (option.Value, bool) {
	i, ok := r.index(name)
	if !ok {
		return option.Value{}, false
	}
	return r.values[i], true
}

// Value - Returns the value of the option as text.
//
// Absent and undeclared options return an empty string, options given without
// a value return option.PresentText.
func (r *Result) Value(name string) string {
	v, _ := r.Lookup(name)
	return v.String()
}

// Short - Returns the value of the option with the given short name.
func (r *Result) Short(c rune) string {
	i, ok := r.short[c]
	if !ok {
		return ""
	}
	return r.values[i].String()
}

// Long - Returns the value of the option with the given long name.
func (r *Result) Long(name string) string {
	i, ok := r.long[name]
	if !ok {
		return ""
	}
	return r.values[i].String()
}

// IsPresent - Indicates if the option was given without a value.
func (r *Result) IsPresent(name string) bool {
	v, _ := r.Lookup(name)
	return v.State == option.Present
}

// Called - Indicates if the option was given, with or without a value.
func (r *Result) Called(name string) bool {
	v, _ := r.Lookup(name)
	return v.Called()
}

// Int - Returns the option value as an int or def when it is absent, has no
// value or can't be converted. Only decimal is accepted, leading zeros included.
func (r *Result) Int(name string, def int) int {
	v, _ := r.Lookup(name)
	if v.State != option.Set {
		return def
	}
	i, err := strconv.Atoi(v.Text)
	if err != nil {
		Logger.Printf("option %s: %q is not an int, using %d\n", name, v.Text, def)
		return def
	}
	return i
}

// Float64 - Returns the option value as a float64 or def when it is absent,
// has no value or can't be converted.
func (r *Result) Float64(name string, def float64) float64 {
	v, _ := r.Lookup(name)
	if v.State != option.Set {
		return def
	}
	f, err := strconv.ParseFloat(v.Text, 64)
	if err != nil {
		Logger.Printf("option %s: %q is not a float64, using %f\n", name, v.Text, def)
		return def
	}
	return f
}

// Args - Returns the positional arguments in the order they were given.
func (r *Result) Args() []string {
	args := make([]string, len(r.args))
	copy(args, r.args)
	return args
}

// Descriptors - Returns a copy of the descriptors used for the last scan.
func (r *Result) Descriptors() []option.Descriptor {
	descs := make([]option.Descriptor, len(r.descs))
	copy(descs, r.descs)
	return descs
}

// OK - Indicates if the last scan succeeded.
func (r *Result) OK() bool { return r.ok }

// Err - Returns the error of the last scan, nil on success.
func (r *Result) Err() error { return r.err }
