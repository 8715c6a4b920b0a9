// Copyright (c) 2026 Tigera, Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/projectcalico/andhow/pkg/loader"
	"github.com/projectcalico/andhow/pkg/locator"
	"github.com/projectcalico/andhow/pkg/params"
	"github.com/projectcalico/andhow/pkg/resolver"
)

type State uint8

const (
	Start State = iota
	ArgsParsed
	Validated
	InvalidAbort
	HelpAbort
	FileSearch
	Resolved
)

func (s State) String() string {
	switch s {
	case Start:
		return "start"
	case ArgsParsed:
		return "args-parsed"
	case Validated:
		return "validated"
	case InvalidAbort:
		return "invalid-abort"
	case HelpAbort:
		return "help-abort"
	case FileSearch:
		return "file-search"
	case Resolved:
		return "resolved"
	}
	return fmt.Sprintf("<unknown-state(%v)>", uint8(s))
}

// Terminal returns true for the states that end a run.
func (s State) Terminal() bool {
	switch s {
	case InvalidAbort, HelpAbort, Resolved:
		return true
	case Start, ArgsParsed, Validated, FileSearch:
		return false
	}
	return false
}

type Option func(*Orchestrator)

// WithOutput sets where usage and diagnostics are printed.  Defaults to
// stdout.
func WithOutput(w io.Writer) Option {
	return func(o *Orchestrator) {
		o.out = w
	}
}

// WithAppName sets the name shown in usage output.
func WithAppName(name string) Option {
	return func(o *Orchestrator) {
		o.appName = name
	}
}

// WithFixedValues adds values hard-wired by the application.  They override
// every other source.
func WithFixedValues(values ...loader.FixedValue) Option {
	return func(o *Orchestrator) {
		o.fixed = append(o.fixed, values...)
	}
}

// WithSeparator changes the name/value separator of command line arguments.
func WithSeparator(sep string) Option {
	return func(o *Orchestrator) {
		o.separator = sep
	}
}

// WithLocator replaces the properties file locator.  The default searches
// relative to the executable's directory.
func WithLocator(l loader.Locator) Option {
	return func(o *Orchestrator) {
		o.locator = l
	}
}

// WithArgLoaders replaces the argument-stage loaders, which otherwise read the
// fixed values and the command line.
func WithArgLoaders(loaders ...loader.Loader) Option {
	return func(o *Orchestrator) {
		o.argLoaders = loaders
	}
}

// WithFileLoaders replaces the file-stage loaders, which otherwise search for
// and read the properties file.
func WithFileLoaders(loaders ...loader.Loader) Option {
	return func(o *Orchestrator) {
		o.fileLoaders = loaders
	}
}

// WithStrictPropertyFiles makes an invalid value in a properties file abort
// the run.  By default such a value is reported as a problem and replaced by
// the default.
func WithStrictPropertyFiles() Option {
	return func(o *Orchestrator) {
		o.strictFiles = true
	}
}

// Result is the outcome of a run.  Values is nil unless State is Resolved.
type Result struct {
	State    State
	Values   *resolver.Values
	Problems []params.Problem
	// Location is the outcome of the properties file search, nil if there was
	// no search.
	Location *locator.FileLocation
	// Trace lists every state the run passed through, in order.
	Trace []State
}

type locationReporter interface {
	Location() *locator.FileLocation
}

// Orchestrator resolves one configuration.  It is single use.
type Orchestrator struct {
	schema      *params.Schema
	args        []string
	out         io.Writer
	appName     string
	fixed       []loader.FixedValue
	separator   string
	locator     loader.Locator
	argLoaders  []loader.Loader
	fileLoaders []loader.Loader
	strictFiles bool

	result *Result
}

func New(schema *params.Schema, args []string, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		schema:    schema,
		args:      append([]string(nil), args...),
		out:       os.Stdout,
		separator: loader.DefaultSeparator,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.argLoaders == nil {
		o.argLoaders = []loader.Loader{
			loader.NewFixedValueLoader(o.fixed...),
			loader.NewCommandLineLoader(o.args, loader.WithSeparator(o.separator)),
		}
	}
	if o.fileLoaders == nil {
		if o.locator == nil {
			o.locator = locator.New(locator.WithExpander(locator.NewExecutableDirExpander()))
		}
		o.fileLoaders = []loader.Loader{loader.NewPropertyFileLoader(o.locator)}
	}
	return o
}

// Load is a shortcut for New(...).Run() that returns only the values.
func Load(schema *params.Schema, args []string, opts ...Option) (*resolver.Values, error) {
	res, err := New(schema, args, opts...).Run()
	if err != nil {
		return nil, err
	}
	return res.Values, nil
}

// Run resolves the configuration.  It returns ErrHelpRequested if help was
// asked for, an *InvalidConfigurationError if any value that must be valid was
// not, or a wrapped *locator.FileAccessError if a properties file could not be
// read.  The Result is returned in every case, for diagnostics.
func (o *Orchestrator) Run() (*Result, error) {
	if o.result != nil {
		log.Panic("Orchestrator.Run() called twice")
	}
	o.result = &Result{}
	o.transition(Start)

	// Argument stage.  The file system is not touched until the arguments
	// are known to be good.
	var argRaws []params.RawValue
	var loaderProblems []params.Problem
	for _, l := range o.argLoaders {
		log.WithField("loader", l.Description()).Debug("Loading argument-stage source")
		r, err := l.Load(o.schema, nil)
		if err != nil {
			return o.fail(errors.Wrapf(err, "failed to load %v", l.Description()))
		}
		argRaws = append(argRaws, r.Values...)
		loaderProblems = append(loaderProblems, r.Problems...)
	}
	o.transition(ArgsParsed)

	argValues := resolver.Resolve(o.schema, argRaws)
	o.transition(Validated)

	verbose := argValues.ByType(params.VerboseConfigFlag).IsTrue()
	if verbose {
		PrintValues(o.out, "Configuration from the command line and fixed values:", argValues.All())
	}

	fatal := append(parseProblems(loaderProblems), argValues.Problems()...)
	if len(fatal) > 0 || len(argValues.Invalid()) > 0 {
		return o.abortInvalid(append(loaderProblems, argValues.Problems()...), fatal)
	}

	if argValues.ByType(params.HelpFlag).IsTrue() {
		o.result.Problems = loaderProblems
		o.transition(HelpAbort)
		PrintValues(o.out, "Configuration given:", argValues.Sourced())
		fmt.Fprintln(o.out)
		printUsage(o.out, o.schema, o.appName, o.separator)
		recordOutcome(HelpAbort.String(), loaderProblems)
		return o.result, ErrHelpRequested
	}

	// File stage.
	o.transition(FileSearch)
	raws := argRaws
	if argValues.ByType(params.SkipPropertiesFromFileSystem).IsTrue() {
		log.Info("Skipping properties file search")
		if verbose {
			fmt.Fprintln(o.out, "Not searching for a properties file: skipped on request.")
		}
	} else {
		for _, l := range o.fileLoaders {
			r, err := l.Load(o.schema, argValues)
			if lr, ok := l.(locationReporter); ok && lr.Location() != nil {
				o.result.Location = lr.Location()
			}
			if err != nil {
				o.result.Problems = loaderProblems
				return o.fail(errors.Wrap(err, "failed to load configuration"))
			}
			if verbose {
				fmt.Fprintf(o.out, "Loaded %d value(s) from %v\n", len(r.Values), l.Description())
			}
			raws = append(raws, r.Values...)
			loaderProblems = append(loaderProblems, r.Problems...)
		}
	}

	var resolveOpts []resolver.Option
	if !o.strictFiles {
		resolveOpts = append(resolveOpts, resolver.WithLenientSources(lenientSources()...))
	}
	values := resolver.Resolve(o.schema, raws, resolveOpts...)
	problems := append(loaderProblems, values.Problems()...)
	if len(values.Invalid()) > 0 {
		return o.abortInvalid(problems, values.Problems())
	}
	o.result.Values = values
	o.result.Problems = problems
	o.transition(Resolved)
	for _, p := range problems {
		log.WithError(p).Warn("Configuration problem")
	}
	recordOutcome(Resolved.String(), problems)
	return o.result, nil
}

func (o *Orchestrator) abortInvalid(all, fatal []params.Problem) (*Result, error) {
	o.result.Problems = all
	o.transition(InvalidAbort)
	PrintProblems(o.out, "Invalid configuration:", fatal)
	fmt.Fprintln(o.out)
	printUsage(o.out, o.schema, o.appName, o.separator)
	recordOutcome(InvalidAbort.String(), all)
	return o.result, &InvalidConfigurationError{Problems: fatal}
}

func (o *Orchestrator) fail(err error) (*Result, error) {
	log.WithError(err).WithField("state", o.result.State).Error("Configuration failed")
	recordOutcome(outcomeFileAccessError, o.result.Problems)
	return o.result, err
}

func (o *Orchestrator) transition(s State) {
	log.WithFields(log.Fields{
		"from": o.result.State,
		"to":   s,
	}).Debug("Configuration state transition")
	o.result.State = s
	o.result.Trace = append(o.result.Trace, s)
}

// lenientSources are the sources whose invalid values degrade to the default.
func lenientSources() []params.Source {
	var lenient []params.Source
	for _, s := range params.SourcesInDescendingOrder {
		if !s.Strict() {
			lenient = append(lenient, s)
		}
	}
	return lenient
}

func parseProblems(problems []params.Problem) []params.Problem {
	var filtered []params.Problem
	for _, p := range problems {
		if p.Kind == params.ParseProblem {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
