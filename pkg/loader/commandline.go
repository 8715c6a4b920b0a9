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
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/projectcalico/andhow/pkg/params"
	"github.com/projectcalico/andhow/pkg/resolver"
)

const DefaultSeparator = "="

type CommandLineOption func(*CommandLineLoader)

// WithSeparator changes the string that separates a name from its value.
func WithSeparator(sep string) CommandLineOption {
	return func(l *CommandLineLoader) {
		l.separator = sep
	}
}

// CommandLineLoader reads name=value arguments.  Leading dashes are ignored,
// so "--port=80", "-port=80" and "port=80" are equivalent.  A flag given
// without a value is set to true.
type CommandLineLoader struct {
	args      []string
	separator string
}

func NewCommandLineLoader(args []string, opts ...CommandLineOption) *CommandLineLoader {
	l := &CommandLineLoader{
		args:      append([]string(nil), args...),
		separator: DefaultSeparator,
	}
	for _, o := range opts {
		o(l)
	}
	if l.separator == "" {
		log.Panic("Command line separator must not be empty")
	}
	return l
}

func (l *CommandLineLoader) Source() params.Source {
	return params.CommandLine
}

func (l *CommandLineLoader) Description() string {
	return fmt.Sprintf("%d command line argument(s), name%svalue", len(l.args), l.separator)
}

func (l *CommandLineLoader) Load(schema *params.Schema, _ *resolver.Values) (*Result, error) {
	result := &Result{}
	for i, arg := range l.args {
		origin := fmt.Sprintf("argument %d", i)
		logCxt := log.WithFields(log.Fields{"arg": arg, "origin": origin})
		if strings.TrimSpace(arg) == "" {
			logCxt.Debug("Ignoring empty argument")
			continue
		}

		rawName, value, hasValue := strings.Cut(arg, l.separator)
		name := strings.TrimLeft(strings.TrimSpace(rawName), "-")
		p := schema.Lookup(name)
		if name == "" || p == nil {
			logCxt.Info("Unrecognized command line parameter")
			result.addProblem(params.NewUnrecognizedProblem(rawName, value, params.CommandLine, origin))
			continue
		}

		raw := params.RawValue{Point: p, Raw: value, Source: params.CommandLine, Origin: origin}
		if !hasValue {
			if p.Kind != params.KindFlag {
				logCxt.WithField("name", p.Name).Warn("No value given for parameter")
				result.addProblem(params.NewParseProblem(raw,
					errors.Errorf("no value given for parameter %v", p.Name)))
				continue
			}
			raw.Raw = "true"
		}
		logCxt.WithField("name", p.Name).Debug("Loaded command line value")
		result.addValue(raw)
	}
	return result, nil
}
