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

	"github.com/projectcalico/andhow/pkg/locator"
	"github.com/projectcalico/andhow/pkg/params"
	"github.com/projectcalico/andhow/pkg/resolver"
)

// Locator is the part of locator.Locator that the loader uses.
type Locator interface {
	Locate(dirs []string, primary, fallback string) (*locator.FileLocation, error)
}

// PropertyFileLoader searches for a properties file and reads values from it.
// The search path and file names come from the values resolved so far, so
// they can be set on the command line.
type PropertyFileLoader struct {
	locator  Locator
	location *locator.FileLocation
}

func NewPropertyFileLoader(l Locator) *PropertyFileLoader {
	return &PropertyFileLoader{locator: l}
}

func (l *PropertyFileLoader) Source() params.Source {
	return params.PropertyFile
}

func (l *PropertyFileLoader) Description() string {
	if l.location == nil {
		return "properties file (not searched yet)"
	}
	return fmt.Sprintf("properties file %v", l.location)
}

// Location returns the outcome of the most recent search, or nil if Load has
// not run.
func (l *PropertyFileLoader) Location() *locator.FileLocation {
	return l.location
}

func (l *PropertyFileLoader) Load(schema *params.Schema, prior *resolver.Values) (*Result, error) {
	if prior == nil {
		prior = resolver.Resolve(schema, nil)
	}
	dirs, _ := prior.ByType(params.PropertiesFileSystemPath).Value.([]string)
	primary, _ := prior.ByType(params.PropertiesFileName).Value.(string)
	fallback, _ := prior.ByType(params.PropertiesDefaultFileName).Value.(string)
	log.WithFields(log.Fields{
		"dirs":     dirs,
		"primary":  primary,
		"fallback": fallback,
	}).Debug("Searching for properties file")

	loc, err := l.locator.Locate(dirs, primary, fallback)
	if err != nil {
		return nil, err
	}
	l.location = loc

	result := &Result{}
	if !loc.Found() {
		return result, nil
	}
	for _, prop := range loc.Properties {
		p := schema.Lookup(prop.Key)
		if p == nil {
			log.WithFields(log.Fields{
				"key":  prop.Key,
				"path": loc.Path,
			}).Info("Ignoring unknown config param.")
			result.addProblem(params.NewUnrecognizedProblem(prop.Key, prop.Value, params.PropertyFile, loc.Path))
			continue
		}
		result.addValue(params.RawValue{
			Point:  p,
			Raw:    prop.Value,
			Source: params.PropertyFile,
			Origin: loc.Path,
		})
	}
	return result, nil
}
