// This file is part of go-optspec.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package optspec - Go option parser driven by a compact, getopt like, option spec.

It operates on any given slice of strings and returns the option values and
the positional arguments.

# Usage

	import "github.com/DavidGamba/go-optspec"

	r, err := optspec.Parse("h[help] v[loglevel]: c[color]::", os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
	if r.IsPresent("help") {
		// ...
	}
	level := r.Int("loglevel", 0)
	files := r.Args()

# Spec syntax

Each entry is an optional short name (one ASCII letter or digit), an optional
long name in brackets and an optional arity marker: none for flags, ':' for a
required value and '::' for an optional value.

	h[help]      -h, --help
	v[loglevel]: -v 3, -v3, --loglevel 3, --loglevel=3
	c[color]::   -c, -cauto, --color, --color=auto

An option with a required or optional value that has no value attached
consumes the next argument as its value, whatever it looks like.

# Features

* Short option clusters: `-hv3` is `-h -v 3`.

* A lone `-` is a positional argument.

* Short and long names share the same value.

* Values are tagged: absent, present without value or set.

* Int and Float64 helpers with caller supplied defaults.

# Errors

All errors can be checked with errors.Is against ErrorMalformedSpec,
ErrorDuplicateOption, ErrorUnknownOption, ErrorUnexpectedValue and ErrorMissingValue.
*/
package optspec

import (
	"io"
	"log"

	"github.com/DavidGamba/go-optspec/option"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Parse - Compiles spec and scans args with it.
func Parse(spec string, args []string) (*Result, error) {
	descs, err := Compile(spec)
	if err != nil {
		r := NewResult()
		r.err = err
		return r, err
	}
	return Scan(descs, args)
}

// Parser - Reusable parser for a compiled spec.
//
// Each call to Parse erases the previous Result.
// A Parser must not be used concurrently.
type Parser struct {
	descs  []option.Descriptor
	result *Result
}

// New - Returns a Parser for spec.
func New(spec string) (*Parser, error) {
	descs, err := Compile(spec)
	if err != nil {
		return nil, err
	}
	return NewFromDescriptors(descs), nil
}

// NewFromDescriptors - Returns a Parser for a list of descriptors built in code.
// Descriptor errors are reported by Parse.
func NewFromDescriptors(descs []option.Descriptor) *Parser {
	p := &Parser{
		descs:  make([]option.Descriptor, len(descs)),
		result: NewResult(),
	}
	copy(p.descs, descs)
	return p
}

// Parse - Scans args and returns the parser's Result.
func (p *Parser) Parse(args []string) (*Result, error) {
	err := p.result.Scan(p.descs, args)
	return p.result, err
}

// Result - Returns the Result of the last Parse.
func (p *Parser) Result() *Result {
	return p.result
}

// Descriptors - Returns a copy of the compiled descriptors.
func (p *Parser) Descriptors() []option.Descriptor {
	descs := make([]option.Descriptor, len(p.descs))
	copy(descs, p.descs)
	return descs
}
