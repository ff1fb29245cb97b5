// This file is part of go-optspec.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
package text

// ErrorUnterminatedLongName holds the text for a '[' without a closing ']' in an option spec.
// It has an int placeholder '%d' for the offset of the '['.
var ErrorUnterminatedLongName = "unterminated long name at offset %d"

// ErrorEmptyLongName holds the text for a '[]' in an option spec.
// It has an int placeholder '%d' for the offset of the '['.
var ErrorEmptyLongName = "empty long name at offset %d"

// ErrorMissingOptionName holds the text for a spec entry without short or long name.
// It has an int placeholder '%d' for the offset of the entry and a '%q' for the offending character.
var ErrorMissingOptionName = "missing option name at offset %d near %q"

// ErrorInvalidSpec holds the text wrapping the spec compilation errors.
// It has a string placeholder '%q' for the spec and a '%s' for the reason.
var ErrorInvalidSpec = "invalid option spec %q: %s"

// ErrorDescriptorNoName holds the text for a descriptor without short or long name.
// It has an int placeholder '%d' for the descriptor index.
var ErrorDescriptorNoName = "option descriptor %d has no name"

// ErrorDuplicateOption holds the text for an option name declared twice.
// It has a string placeholder '%s' for the option name.
var ErrorDuplicateOption = "option duplicate '%s'"

// ErrorBadOption holds the text for an unknown option.
// It has a string placeholder '%s' for the option as written.
var ErrorBadOption = "bad option '%s'"

// ErrorEmptyLongOption holds the text for a '--' token without a name.
var ErrorEmptyLongOption = "empty long option"

// ErrorValueNotRequired holds the text for a value attached to an option that takes none.
// It has a string placeholder '%s' for the token as written.
var ErrorValueNotRequired = "value isn't required '%s'"

// ErrorMissingValue holds the text for an option missing its mandatory value.
// It has a string placeholder '%s' for the option names.
var ErrorMissingValue = "missed value: %s"

// HelpSynopsisHeader holds the header text for the synopsis section.
var HelpSynopsisHeader = "SYNOPSIS"

// HelpArgName holds the argument name used in the synopsis for options with values.
var HelpArgName = "value"
