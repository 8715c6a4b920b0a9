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

// Package loader turns each kind of configuration source into raw values.
//
// Loaders never coerce values; they only find out which parameter a value is
// meant for.  Malformed input is reported as problems in the Result.  The only
// error a loader returns is a failure to read a source that exists.
package loader

import (
	"github.com/projectcalico/andhow/pkg/params"
	"github.com/projectcalico/andhow/pkg/resolver"
)

type Result struct {
	Values   []params.RawValue
	Problems []params.Problem
}

func (r *Result) addValue(v params.RawValue) {
	r.Values = append(r.Values, v)
}

func (r *Result) addProblem(p params.Problem) {
	r.Problems = append(r.Problems, p)
}

type Loader interface {
	Source() params.Source
	// Description says where the loader reads from, for diagnostics.
	Description() string
	// Load reads the loader's source.  prior holds the values resolved from
	// earlier stages; it may be nil for the first stage.
	Load(schema *params.Schema, prior *resolver.Values) (*Result, error)
}
