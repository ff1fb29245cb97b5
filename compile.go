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
	"strings"

	"github.com/DavidGamba/go-optspec/option"
	"github.com/DavidGamba/go-optspec/text"
)

/*
Compile - Parses an option spec into a list of descriptors.

Each entry is an optional ASCII letter or digit for the short name, an optional
long name in brackets, and an optional arity marker:

	h           -h, no value
	[help]      --help, no value
	v[loglevel]: -v and --loglevel, required value
	c[color]::  -c and --color, optional value

Entries are separated by optional whitespace, so "ab:" declares -a and -b.
Duplicate names are not detected here, they are reported by Scan.
*/
func Compile(spec string) ([]option.Descriptor, error) {
	descs := []option.Descriptor{}
	p := 0
	for {
		for p < len(spec) && isSpace(spec[p]) {
			p++
		}
		if p >= len(spec) {
			break
		}

		start := p
		d := option.Descriptor{}
		if isAlnum(spec[p]) {
			d.Short = rune(spec[p])
			p++
		}

		if p < len(spec) && spec[p] == '[' {
			end := strings.IndexByte(spec[p+1:], ']')
			if end < 0 {
				return nil, &SpecError{Spec: spec, Offset: p, Reason: fmt.Sprintf(text.ErrorUnterminatedLongName, p)}
			}
			if end == 0 {
				return nil, &SpecError{Spec: spec, Offset: p, Reason: fmt.Sprintf(text.ErrorEmptyLongName, p)}
			}
			d.Long = spec[p+1 : p+1+end]
			p += end + 2
		}

		if p < len(spec) && spec[p] == ':' {
			d.Arity = option.Required
			p++
			if p < len(spec) && spec[p] == ':' {
				d.Arity = option.Optional
				p++
			}
		}

		if !d.Valid() {
			return nil, &SpecError{Spec: spec, Offset: start, Reason: fmt.Sprintf(text.ErrorMissingOptionName, start, spec[start:start+1])}
		}
		Logger.Printf("spec entry: %s, arity: %s\n", d, d.Arity)
		descs = append(descs, d)
	}
	return descs, nil
}

// MustCompile - Like Compile but panics if the spec can't be compiled.
func MustCompile(spec string) []option.Descriptor {
	descs, err := Compile(spec)
	if err != nil {
		panic(err)
	}
	return descs
}

// isSpace matches the C locale isspace set.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
