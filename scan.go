// This file is part of go-optspec.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optspec

import (
	"unicode/utf8"

	"github.com/DavidGamba/go-optspec/internal/sliceiterator"
	"github.com/DavidGamba/go-optspec/option"
	"github.com/DavidGamba/go-optspec/text"
)

// pending tracks an option waiting for the next token as its value.
type pending struct {
	idx       int // descriptor index, -1 when idle
	mandatory bool
}

var idle = pending{idx: -1}

func (p pending) waiting() bool { return p.idx >= 0 }

// Scan - Parses args against descs and returns the Result.
//
// The returned Result is never nil, on error it holds the same error in Err.
func Scan(descs []option.Descriptor, args []string) (*Result, error) {
	r := NewResult()
	err := r.Scan(descs, args)
	return r, err
}

// Scan - Resets the Result and parses args against descs.
//
// Options that take a value, required or optional, consume the following
// token verbatim when no value is attached to them, even if it starts with a dash.
func (r *Result) Scan(descs []option.Descriptor, args []string) error {
	r.Reset()
	err := r.scan(descs, args)
	if err != nil {
		Logger.Printf("scan failed: %s\n", err)
		// Nothing from a failed scan is exposed.
		r.values = make([]option.Value, len(r.descs))
		r.args = []string{}
		r.err = err
		return err
	}
	r.ok = true
	return nil
}

func (r *Result) scan(descs []option.Descriptor, args []string) error {
	err := r.setDescriptors(descs)
	if err != nil {
		return err
	}

	state := idle
	it := sliceiterator.New(args)
	for it.Next() {
		arg := it.Value()
		Logger.Printf("token %d: %q\n", it.Index(), arg)

		if state.waiting() {
			r.values[state.idx] = option.TextValue(arg)
			state = idle
			continue
		}

		kind, name, value, attached := isOption(arg)
		switch kind {
		case positionalToken:
			r.args = append(r.args, arg)
		case longToken:
			state, err = r.scanLong(arg, it.Index(), name, value, attached)
		case shortToken:
			state, err = r.scanShort(arg, it.Index(), name)
		}
		if err != nil {
			Logger.Printf("unparsed: %q\n", it.Remaining())
			return err
		}
	}

	if state.waiting() && state.mandatory {
		d := r.descs[state.idx]
		return newScanError(ErrorMissingValue, "", -1, text.ErrorMissingValue, d.Quoted())
	}
	return nil
}

// scanLong handles --name and --name=value.
func (r *Result) scanLong(arg string, index int, name, value string, attached bool) (pending, error) {
	if name == "" {
		return idle, newScanError(ErrorUnknownOption, arg, index, text.ErrorEmptyLongOption)
	}
	i, ok := r.long[name]
	if !ok {
		return idle, newScanError(ErrorUnknownOption, arg, index, text.ErrorBadOption, "--"+name)
	}

	switch r.descs[i].Arity {
	case option.None:
		if attached {
			return idle, newScanError(ErrorUnexpectedValue, arg, index, text.ErrorValueNotRequired, arg)
		}
		r.values[i] = option.PresentValue()
	case option.Required:
		if value == "" {
			return pending{idx: i, mandatory: true}, nil
		}
		r.values[i] = option.TextValue(value)
	case option.Optional:
		if value == "" {
			r.values[i] = option.PresentValue()
			return pending{idx: i}, nil
		}
		r.values[i] = option.TextValue(value)
	}
	return idle, nil
}

// scanShort handles a cluster of short options like -abc or -vVALUE.
func (r *Result) scanShort(arg string, index int, cluster string) (pending, error) {
	for pos, c := range cluster {
		i, ok := r.short[c]
		if !ok {
			return idle, newScanError(ErrorUnknownOption, arg, index, text.ErrorBadOption, "-"+string(c))
		}

		arity := r.descs[i].Arity
		if arity == option.None {
			r.values[i] = option.PresentValue()
			continue
		}

		// The rest of the cluster is the value.
		_, size := utf8.DecodeRuneInString(cluster[pos:])
		if rest := cluster[pos+size:]; rest != "" {
			r.values[i] = option.TextValue(rest)
			return idle, nil
		}
		if arity == option.Required {
			return pending{idx: i, mandatory: true}, nil
		}
		r.values[i] = option.PresentValue()
		return pending{idx: i}, nil
	}
	return idle, nil
}
