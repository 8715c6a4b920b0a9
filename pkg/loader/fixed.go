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

package loader

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/projectcalico/andhow/pkg/params"
	"github.com/projectcalico/andhow/pkg/resolver"
)

// FixedValue is a value hard-wired by the embedding application.
type FixedValue struct {
	Point *params.ParamPoint
	Value string
}

// FixedValueLoader passes caller-supplied values through unchanged.  It never
// fails.
type FixedValueLoader struct {
	values []FixedValue
}

func NewFixedValueLoader(values ...FixedValue) *FixedValueLoader {
	return &FixedValueLoader{values: append([]FixedValue(nil), values...)}
}

func (l *FixedValueLoader) Source() params.Source {
	return params.Fixed
}

func (l *FixedValueLoader) Description() string {
	return fmt.Sprintf("%d fixed value(s) set by the application", len(l.values))
}

func (l *FixedValueLoader) Load(schema *params.Schema, _ *resolver.Values) (*Result, error) {
	result := &Result{}
	for i, fv := range l.values {
		origin := fmt.Sprintf("fixed value %d", i)
		if fv.Point == nil || schema.Lookup(fv.Point.Name) != fv.Point {
			name := "<nil>"
			if fv.Point != nil {
				name = fv.Point.Name
			}
			log.WithField("name", name).Warn("Fixed value for a parameter that is not in the schema")
			result.addProblem(params.NewUnrecognizedProblem(name, fv.Value, params.Fixed, origin))
			continue
		}
		result.addValue(params.RawValue{
			Point:  fv.Point,
			Raw:    fv.Value,
			Source: params.Fixed,
			Origin: origin,
		})
	}
	return result, nil
}
