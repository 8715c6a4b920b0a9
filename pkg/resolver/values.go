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

package resolver

import (
	"fmt"
	"time"

	"github.com/projectcalico/andhow/pkg/params"
)

// EffectiveValue is the outcome of resolution for one parameter.  It is
// invalid iff Err is non-nil, in which case Value is nil.
type EffectiveValue struct {
	Point *params.ParamPoint
	// Raw is the winning raw string.  For list parameters see Raws.
	Raw string
	// Raws holds every contributing raw string of a list parameter, highest
	// ranked source first.
	Raws   []string
	Value  interface{}
	Source params.Source
	Origin string
	Err    error
}

func (v *EffectiveValue) Valid() bool {
	return v.Err == nil
}

// IsSet returns true if some source, rather than the default, supplied the
// value.
func (v *EffectiveValue) IsSet() bool {
	return v.Source != params.Default
}

// IsTrue returns true for a flag that resolved to true.
func (v *EffectiveValue) IsTrue() bool {
	b, ok := v.Value.(bool)
	return ok && b
}

func (v *EffectiveValue) String() string {
	if v.Err != nil {
		return fmt.Sprintf("%v=<invalid %q: %v> (from %v)", v.Point, v.Raw, v.Err, v.Source)
	}
	return fmt.Sprintf("%v=%v (from %v)", v.Point, v.display(), v.Source)
}

func (v *EffectiveValue) display() string {
	switch value := v.Value.(type) {
	case nil:
		return "<unset>"
	case []string:
		return fmt.Sprintf("%q", value)
	default:
		return fmt.Sprint(value)
	}
}

// Display renders the value for diagnostics output.
func (v *EffectiveValue) Display() string {
	if v.Err != nil {
		return fmt.Sprintf("%q (invalid)", v.Raw)
	}
	return v.display()
}

func (v *EffectiveValue) copy() *EffectiveValue {
	c := *v
	c.Raws = append([]string(nil), v.Raws...)
	if l, ok := v.Value.([]string); ok {
		c.Value = append([]string(nil), l...)
	}
	return &c
}

// Values is an immutable snapshot holding one EffectiveValue per parameter of
// the schema.  Every accessor hands out copies.
type Values struct {
	schema   *params.Schema
	ordered  []*EffectiveValue
	byPoint  map[*params.ParamPoint]*EffectiveValue
	problems []params.Problem
}

func newValues(schema *params.Schema) *Values {
	return &Values{
		schema:  schema,
		byPoint: map[*params.ParamPoint]*EffectiveValue{},
	}
}

func (vs *Values) add(v *EffectiveValue) {
	vs.ordered = append(vs.ordered, v)
	vs.byPoint[v.Point] = v
}

func (vs *Values) Schema() *params.Schema {
	return vs.schema
}

// Get looks up a value by parameter name or alias, ignoring case.  It returns
// nil for an unknown name.
func (vs *Values) Get(name string) *EffectiveValue {
	p := vs.schema.Lookup(name)
	if p == nil {
		return nil
	}
	return vs.Point(p)
}

// Point returns the value of the given point, or nil if it is not part of the
// schema.
func (vs *Values) Point(p *params.ParamPoint) *EffectiveValue {
	v, ok := vs.byPoint[p]
	if !ok {
		return nil
	}
	return v.copy()
}

// ByType returns the value of the point declared for a control category.
func (vs *Values) ByType(t params.ParamType) *EffectiveValue {
	p := vs.schema.ByType(t)
	if p == nil {
		return nil
	}
	return vs.Point(p)
}

// All returns every value in schema order.
func (vs *Values) All() []*EffectiveValue {
	all := make([]*EffectiveValue, len(vs.ordered))
	for i, v := range vs.ordered {
		all[i] = v.copy()
	}
	return all
}

// Sourced returns the values supplied by some source other than the
// defaults, in schema order.
func (vs *Values) Sourced() []*EffectiveValue {
	var sourced []*EffectiveValue
	for _, v := range vs.ordered {
		if v.IsSet() {
			sourced = append(sourced, v.copy())
		}
	}
	return sourced
}

// Invalid returns the values that failed validation, in schema order.
func (vs *Values) Invalid() []*EffectiveValue {
	var invalid []*EffectiveValue
	for _, v := range vs.ordered {
		if !v.Valid() {
			invalid = append(invalid, v.copy())
		}
	}
	return invalid
}

// Problems returns a ParseProblem for every invalid raw value seen, whether
// it made its parameter invalid or was dropped in favour of another value.
func (vs *Values) Problems() []params.Problem {
	return append([]params.Problem(nil), vs.problems...)
}

// String returns the value of a string or one-of parameter, or "" if it is
// unknown, unset or invalid.
func (vs *Values) String(name string) string {
	s, _ := vs.value(name).(string)
	return s
}

// Bool returns true if the named flag resolved to true.
func (vs *Values) Bool(name string) bool {
	b, _ := vs.value(name).(bool)
	return b
}

// List returns a copy of the elements of a list parameter.
func (vs *Values) List(name string) []string {
	l, _ := vs.value(name).([]string)
	return append([]string(nil), l...)
}

func (vs *Values) Int(name string) int {
	i, _ := vs.value(name).(int)
	return i
}

func (vs *Values) Duration(name string) time.Duration {
	d, _ := vs.value(name).(time.Duration)
	return d
}

func (vs *Values) value(name string) interface{} {
	p := vs.schema.Lookup(name)
	if p == nil {
		return nil
	}
	v, ok := vs.byPoint[p]
	if !ok {
		return nil
	}
	return v.Value
}
