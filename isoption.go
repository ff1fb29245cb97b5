// This file is part of go-optspec.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optspec

import "strings"

type tokenKind int

const (
	positionalToken tokenKind = iota
	longToken
	shortToken
)

/*
isOption - Classifies an argument.

The lone dash '-' and anything not starting with a dash are positional.
Long options are returned without the leading dashes, split on the first '='.
The attached flag tells '--opt=' apart from '--opt'.
Short options are returned as the cluster of characters after the dash.
*/
func isOption(s string) (kind tokenKind, name, value string, attached bool) {
	switch {
	case s == "-" || !strings.HasPrefix(s, "-"):
		return positionalToken, "", "", false
	case strings.HasPrefix(s, "--"):
		name, value, attached = strings.Cut(s[2:], "=")
		return longToken, name, value, attached
	default:
		return shortToken, s[1:], "", false
	}
}
