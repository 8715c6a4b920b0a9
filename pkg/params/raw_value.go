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

package params

import (
	"fmt"

	"github.com/pkg/errors"
)

// RawValue is one unparsed value for a parameter, as emitted by a loader.
type RawValue struct {
	Point  *ParamPoint
	Raw    string
	Source Source
	// Origin narrows down where in the source the value came from, for
	// example the argument index or the file path.
	Origin string
}

func (v RawValue) String() string {
	if v.Origin == "" {
		return fmt.Sprintf("%v=%q (from %v)", v.Point, v.Raw, v.Source)
	}
	return fmt.Sprintf("%v=%q (from %v, %v)", v.Point, v.Raw, v.Source, v.Origin)
}

type ProblemKind uint8

const (
	// ParseProblem means a value could not be coerced to its declared type,
	// or was structurally malformed (a non-flag given without a value).
	ParseProblem ProblemKind = iota
	// UnrecognizedParameter means a source named a parameter that is not in
	// the schema.
	UnrecognizedParameter
)

func (k ProblemKind) String() string {
	switch k {
	case ParseProblem:
		return "parse-problem"
	case UnrecognizedParameter:
		return "unrecognized-parameter"
	}
	return fmt.Sprintf("<unknown-problem(%v)>", uint8(k))
}

// Problem is a non-fatal issue found while loading or resolving.  Problems
// are collected and reported together.
type Problem struct {
	Kind   ProblemKind
	Name   string
	Raw    string
	Source Source
	Origin string
	Err    error
}

func NewParseProblem(v RawValue, err error) Problem {
	return Problem{
		Kind:   ParseProblem,
		Name:   v.Point.Name,
		Raw:    v.Raw,
		Source: v.Source,
		Origin: v.Origin,
		Err:    err,
	}
}

func NewUnrecognizedProblem(name, raw string, source Source, origin string) Problem {
	return Problem{
		Kind:   UnrecognizedParameter,
		Name:   name,
		Raw:    raw,
		Source: source,
		Origin: origin,
		Err:    errors.Errorf("unrecognized parameter %q", name),
	}
}

func (p Problem) Error() string {
	where := p.Source.String()
	if p.Origin != "" {
		where += ", " + p.Origin
	}
	return fmt.Sprintf("%v (%v): %v", p.Kind, where, p.Err)
}

func (p Problem) Unwrap() error {
	return p.Err
}
