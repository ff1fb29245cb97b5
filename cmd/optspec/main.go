// This file is part of go-optspec.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// optspec - scans the arguments given after `--` with an option spec and
// prints the value of every option followed by the positional arguments.
//
//	optspec --spec 'h[help] v[loglevel]:' -- -h -v 3 file.txt
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/DavidGamba/go-getoptions"
	"github.com/DavidGamba/go-optspec"
	"github.com/DavidGamba/go-optspec/help"
	"github.com/DavidGamba/go-optspec/option"
)

var Logger = log.New(os.Stderr, "", log.LstdFlags)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

const defaultSpec = "h[help] v[loglevel]:"

func main() {
	os.Exit(program(os.Args))
}

func program(args []string) int {
	ctx, cancel, done := getoptions.InterruptContext()
	defer func() { cancel(); <-done }()

	opt := getoptions.New()
	opt.Self("optspec", "Scan arguments with an option spec")
	opt.String("spec", defaultSpec, opt.GetEnv("OPTSPEC_SPEC"), opt.ArgName("spec"),
		opt.Description("Option spec, for example 'h[help] v[loglevel]: c[color]::'."))
	opt.Bool("debug", false, opt.GetEnv("OPTSPEC_DEBUG"), opt.Description("Print scanner debug output."))
	opt.Bool("quiet", false, opt.GetEnv("QUIET"))
	opt.SetCommandFn(Run)
	opt.HelpCommand("help", opt.Alias("?"))
	remaining, err := opt.Parse(args[1:])
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n", err)
		return 1
	}
	if opt.Called("quiet") {
		Logger.SetOutput(io.Discard)
	}
	if opt.Called("debug") {
		optspec.Logger.SetOutput(stderr)
		defer optspec.Logger.SetOutput(io.Discard)
	}

	err = opt.Dispatch(ctx, remaining)
	if err != nil {
		if errors.Is(err, getoptions.ErrorHelpCalled) {
			return 1
		}
		fmt.Fprintf(stderr, "ERROR: %s\n", err)
		if isScanError(err) {
			spec := opt.Value("spec").(string)
			if descs, err := optspec.Compile(spec); err == nil {
				fmt.Fprintf(stderr, "\n%s", help.HelpSynopsis("optspec --spec '"+spec+"' --", descs, "[<args>...]"))
			}
		}
		return 1
	}
	return 0
}

func isScanError(err error) bool {
	return errors.Is(err, optspec.ErrorDuplicateOption) ||
		errors.Is(err, optspec.ErrorUnknownOption) ||
		errors.Is(err, optspec.ErrorUnexpectedValue) ||
		errors.Is(err, optspec.ErrorMissingValue)
}

// Run - scans args with the spec and prints the result.
func Run(ctx context.Context, opt *getoptions.GetOpt, args []string) error {
	spec := opt.Value("spec").(string)
	Logger.Printf("spec: %q, args: %q", spec, args)

	p, err := optspec.New(spec)
	if err != nil {
		return err
	}
	r, err := p.Parse(args)
	if err != nil {
		return err
	}

	for _, d := range r.Descriptors() {
		fmt.Fprintf(stdout, "%s: %s\n", strings.Join(d.Names(), "|"), value(r, d))
	}
	if len(r.Descriptors()) > 0 {
		fmt.Fprintln(stdout)
	}
	for _, arg := range r.Args() {
		fmt.Fprintf(stdout, "Arg: '%s'\n", arg)
	}
	return nil
}

func value(r *optspec.Result, d option.Descriptor) string {
	if d.HasShort() {
		return r.Short(d.Short)
	}
	return r.Long(d.Long)
}
