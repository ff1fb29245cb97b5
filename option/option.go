// This file is part of go-optspec.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - option descriptor and value types.
package option

import (
	"fmt"
	"strings"

	"github.com/DavidGamba/go-optspec/text"
)

// Arity - Indicates whether an option takes a value.
type Arity int

// Option Arities
const (
	None Arity = iota
	Required
	Optional
)

func (a Arity) String() string {
	switch a {
	case Required:
		return "required"
	case Optional:
		return "optional"
	default:
		return "none"
	}
}

// Marker returns the spec suffix that produces the arity.
func (a Arity) Marker() string {
	switch a {
	case Required:
		return ":"
	case Optional:
		return "::"
	default:
		return ""
	}
}

// Descriptor - Describes a single option.
//
// A zero Short or an empty Long means that name is not set.
// At least one of them must be set.
type Descriptor struct {
	Short rune
	Long  string
	Arity Arity
}

// New - Returns a new descriptor.
func New(short rune, long string, arity Arity) Descriptor {
	return Descriptor{Short: short, Long: long, Arity: arity}
}

// HasShort - Indicates if the short name is set.
func (d Descriptor) HasShort() bool { return d.Short != 0 }

// HasLong - Indicates if the long name is set.
func (d Descriptor) HasLong() bool { return d.Long != "" }

// Valid - Indicates if the descriptor has at least one name.
func (d Descriptor) Valid() bool { return d.HasShort() || d.HasLong() }

// Names - Returns the set names as they are written on the command line.
func (d Descriptor) Names() []string {
	names := []string{}
	if d.HasShort() {
		names = append(names, "-"+string(d.Short))
	}
	if d.HasLong() {
		names = append(names, "--"+d.Long)
	}
	return names
}

// Quoted - Returns the set names quoted and comma separated: 'v', 'loglevel'.
func (d Descriptor) Quoted() string {
	names := []string{}
	if d.HasShort() {
		names = append(names, fmt.Sprintf("'%c'", d.Short))
	}
	if d.HasLong() {
		names = append(names, fmt.Sprintf("'%s'", d.Long))
	}
	return strings.Join(names, ", ")
}

// Synopsis - Returns the help synopsis for the option, for example: -v|--loglevel <value>
func (d Descriptor) Synopsis() string {
	s := strings.Join(d.Names(), "|")
	switch d.Arity {
	case Required:
		s += fmt.Sprintf(" <%s>", text.HelpArgName)
	case Optional:
		s += fmt.Sprintf(" [<%s>]", text.HelpArgName)
	}
	return s
}

// String - Returns the descriptor in spec syntax, for example: v[loglevel]:
func (d Descriptor) String() string {
	s := ""
	if d.HasShort() {
		s += string(d.Short)
	}
	if d.HasLong() {
		s += "[" + d.Long + "]"
	}
	return s + d.Arity.Marker()
}
