// This file is part of go-optspec.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optspec

import (
	"errors"
	"fmt"

	"github.com/DavidGamba/go-optspec/text"
)

// ErrorMalformedSpec - Indicates the option spec or a descriptor can't be used.
var ErrorMalformedSpec = errors.New("")

// ErrorDuplicateOption - Indicates two descriptors share a short or long name.
var ErrorDuplicateOption = errors.New("")

// ErrorUnknownOption - Indicates a token names an option that wasn't declared.
var ErrorUnknownOption = errors.New("")

// ErrorUnexpectedValue - Indicates a value was attached to an option that takes none.
var ErrorUnexpectedValue = errors.New("")

// ErrorMissingValue - Indicates an option with a required value never got one.
var ErrorMissingValue = errors.New("")

// SpecError - Compilation error with the location of the problem.
type SpecError struct {
	Spec   string
	Offset int
	Reason string
}

func (e *SpecError) Error() string {
	return fmt.Sprintf(text.ErrorInvalidSpec, e.Spec, e.Reason)
}

// Unwrap allows errors.Is(err, ErrorMalformedSpec).
func (e *SpecError) Unwrap() error { return ErrorMalformedSpec }

// ScanError - Error found while scanning the argument list.
//
// Kind is one of the sentinel errors.
// Index is the position of the offending token, -1 when the error is not tied to one.
type ScanError struct {
	Kind  error
	Msg   string
	Token string
	Index int
}

func (e *ScanError) Error() string { return e.Msg }

func (e *ScanError) Unwrap() error { return e.Kind }

func newScanError(kind error, token string, index int, format string, a ...interface{}) *ScanError {
	return &ScanError{
		Kind:  kind,
		Msg:   fmt.Sprintf(format, a...),
		Token: token,
		Index: index,
	}
}
