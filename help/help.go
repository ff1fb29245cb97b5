// This file is part of go-optspec.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - synopsis generation from option descriptors.
package help

import (
	"fmt"
	"strings"

	"github.com/DavidGamba/go-optspec/option"
	"github.com/DavidGamba/go-optspec/text"
)

// Padding -
var Padding = 4

// Width - maximum line length before the synopsis wraps.
var Width = 80

// HelpSynopsis - Return a synopsis with the options in declaration order.
// argsName is appended at the end when not empty, for example "[<file>...]".
func HelpSynopsis(scriptName string, descs []option.Descriptor, argsName string) string {
	scriptName = strings.Repeat(" ", Padding) + scriptName
	entries := []string{}
	for _, d := range descs {
		if !d.Valid() {
			continue
		}
		entries = append(entries, "["+d.Synopsis()+"]")
	}
	if argsName != "" {
		entries = append(entries, argsName)
	}

	var out string
	line := scriptName
	for _, syn := range entries {
		if len(line)+len(syn) >= Width {
			out += line + "\n"
			line = fmt.Sprintf("%s %s", strings.Repeat(" ", len(scriptName)), syn)
		} else {
			line += fmt.Sprintf(" %s", syn)
		}
	}
	out += line
	return fmt.Sprintf("%s:\n%s\n", text.HelpSynopsisHeader, out)
}
