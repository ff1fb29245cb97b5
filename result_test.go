// This file is part of go-optspec.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optspec

import (
	"testing"

	"github.com/DavidGamba/go-optspec/option"
	"github.com/google/go-cmp/cmp"
)

func TestResultQueries(t *testing.T) {
	r, err := Parse("h[help] v[loglevel]: c[color]:: [name]: x", []string{"-h", "--loglevel", "3", "--name=<PRESENT>", "file"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if !r.IsPresent("h") || !r.IsPresent("help") {
		t.Errorf("help not present")
	}
	if r.IsPresent("v") {
		t.Errorf("option with a value reported as present")
	}
	if !r.Called("v") || !r.Called("loglevel") {
		t.Errorf("loglevel not called")
	}
	if r.Called("c") || r.Called("x") || r.Called("undeclared") {
		t.Errorf("absent options reported as called")
	}

	// A real value equal to the present text is still a value.
	if r.Value("name") != option.PresentText {
		t.Errorf("wrong name value: %q", r.Value("name"))
	}
	if r.IsPresent("name") {
		t.Errorf("value equal to present text reported as present")
	}

	if r.Short('v') != "3" || r.Long("loglevel") != "3" {
		t.Errorf("wrong short/long values: %q, %q", r.Short('v'), r.Long("loglevel"))
	}
	if r.Short('z') != "" || r.Long("zzz") != "" || r.Value("zzz") != "" {
		t.Errorf("unknown options are not empty")
	}

	v, ok := r.Lookup("loglevel")
	if !ok || v != option.TextValue("3") {
		t.Errorf("wrong lookup: %#v, %v", v, ok)
	}
	v, ok = r.Lookup("color")
	if !ok || v.State != option.Absent {
		t.Errorf("wrong lookup for absent option: %#v, %v", v, ok)
	}
	_, ok = r.Lookup("undeclared")
	if ok {
		t.Errorf("undeclared option found")
	}

	if diff := cmp.Diff([]string{"file"}, r.Args()); diff != "" {
		t.Errorf("Args() mismatch (-want +got):\n%s", diff)
	}
	args := r.Args()
	args[0] = "changed"
	if r.Args()[0] != "file" {
		t.Errorf("Args() exposes internal slice")
	}
	if len(r.Descriptors()) != 5 {
		t.Errorf("wrong descriptors: %v", r.Descriptors())
	}
}

func TestResultNameResolution(t *testing.T) {
	// A one letter long name is reachable when no short name takes the letter.
	r, err := Parse("a[b] [a]: [x]:", []string{"-a", "--a=long", "--x", "1"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if r.Value("a") != option.PresentText {
		t.Errorf("short name should win: %q", r.Value("a"))
	}
	if r.Long("a") != "long" {
		t.Errorf("wrong long value: %q", r.Long("a"))
	}
	if r.Value("x") != "1" {
		t.Errorf("wrong fallback to long table: %q", r.Value("x"))
	}
	if r.Value("b") != option.PresentText {
		t.Errorf("wrong alias value: %q", r.Value("b"))
	}
}

func TestResultNumbers(t *testing.T) {
	r, err := Parse("i: f: p n: h e: o:: x:",
		[]string{"-i", "42", "-f", "3.5", "-p", "-n", "abc", "-e", "", "-o", "-x0x1f"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	tests := []struct {
		name     string
		intDef   int
		intExp   int
		floatDef float64
		floatExp float64
	}{
		{"i", 7, 42, 1.5, 42},
		{"f", 7, 7, 1.5, 3.5},
		{"p", 7, 7, 1.5, 1.5}, // present without value
		{"n", 7, 7, 1.5, 1.5}, // not a number
		{"h", -1, -1, -1, -1}, // absent
		{"e", 9, 9, 2.5, 2.5}, // empty value
		{"o", 3, 3, 0.5, 0.5}, // optional consumed "-x0x1f" as text
		{"undeclared", 5, 5, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Int(tt.name, tt.intDef); got != tt.intExp {
				t.Errorf("Int(%q) = %d, want %d", tt.name, got, tt.intExp)
			}
			if got := r.Float64(tt.name, tt.floatDef); got != tt.floatExp {
				t.Errorf("Float64(%q) = %f, want %f", tt.name, got, tt.floatExp)
			}
		})
	}
	if r.Value("o") != "-x0x1f" {
		t.Errorf("optional value didn't consume the next token: %q", r.Value("o"))
	}

	r, err = Parse("d: z: n: u: x: b:",
		[]string{"-d", "010", "-z0080", "-n", "-12", "-u", "1_000", "-x0x1f", "-b", "0b101"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	for _, tt := range []struct {
		name     string
		expected int
	}{
		{"d", 10}, // leading zeros stay decimal
		{"z", 80},
		{"n", -12},
		{"u", -1}, // underscores are not digits
		{"x", -1},
		{"b", -1},
	} {
		if got := r.Int(tt.name, -1); got != tt.expected {
			t.Errorf("Int(%q) with %q = %d, want %d", tt.name, r.Value(tt.name), got, tt.expected)
		}
	}
	if r.Float64("n", 0) != -12 {
		t.Errorf("wrong negative float: %f", r.Float64("n", 0))
	}
}

func TestParseCompileError(t *testing.T) {
	r, err := Parse("h[help", []string{"-h"})
	checkError(t, err, ErrorMalformedSpec)
	if r == nil || r.OK() || r.Err() != err {
		t.Errorf("wrong result on compile error: %#v", r)
	}
	if r.Value("h") != "" {
		t.Errorf("value available after compile error")
	}
}

func TestParserReuse(t *testing.T) {
	p, err := New("h[help] v[loglevel]:")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	r, err := p.Parse([]string{"-h", "-v", "3", "one"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !r.IsPresent("h") || r.Value("v") != "3" {
		t.Fatalf("wrong first parse: %q %q", r.Value("h"), r.Value("v"))
	}

	// Second parse erases the first one.
	r, err = p.Parse([]string{"two"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if r.Called("h") || r.Value("v") != "" {
		t.Errorf("state leaked from previous parse: %q %q", r.Value("h"), r.Value("v"))
	}
	if diff := cmp.Diff([]string{"two"}, r.Args()); diff != "" {
		t.Errorf("Args() mismatch (-want +got):\n%s", diff)
	}

	_, err = p.Parse([]string{"-v"})
	checkError(t, err, ErrorMissingValue)
	if p.Result().OK() {
		t.Errorf("result OK after failed parse")
	}

	r, err = p.Parse([]string{"--help"})
	if err != nil || !r.OK() || r.Err() != nil {
		t.Errorf("failed parse not cleared: %v", err)
	}
	if diff := cmp.Diff(MustCompile("h[help] v[loglevel]:"), p.Descriptors()); diff != "" {
		t.Errorf("Descriptors() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewErrors(t *testing.T) {
	_, err := New("a,b")
	checkError(t, err, ErrorMalformedSpec)

	p := NewFromDescriptors([]option.Descriptor{option.New('a', "", option.None), option.New('a', "", option.Required)})
	_, err = p.Parse(nil)
	checkError(t, err, ErrorDuplicateOption)
}
