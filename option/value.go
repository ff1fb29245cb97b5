// This file is part of go-optspec.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package option

// PresentText - Text returned by Value.String for options given without a value.
const PresentText = "<PRESENT>"

// State - Indicates what was seen for an option during a scan.
type State int

// Value States
const (
	Absent  State = iota // never seen
	Present              // seen without a value
	Set                  // seen with a value
)

// Value - Tagged option value.
type Value struct {
	State State
	Text  string
}

// PresentValue - Returns the value of an option given without a value.
func PresentValue() Value { return Value{State: Present} }

// TextValue - Returns the value of an option given with s.
func TextValue(s string) Value { return Value{State: Set, Text: s} }

// Called - Indicates if the option was seen at all.
func (v Value) Called() bool { return v.State != Absent }

func (v Value) String() string {
	switch v.State {
	case Present:
		return PresentText
	case Set:
		return v.Text
	default:
		return ""
	}
}
