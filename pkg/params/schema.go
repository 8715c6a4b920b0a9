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
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/go-playground/validator.v9"
)

const (
	DefaultPropertiesFileName        = "config.properties"
	DefaultPropertiesDefaultFileName = "default_config.properties"

	// ExecutableDir and UserHomeDir are the entries of the default search
	// path.  Later entries override earlier ones.
	ExecutableDir = ""
	UserHomeDir   = "~/"

	ControlGroupName = "Configuration"
)

var DefaultSearchPath = []string{ExecutableDir, UserHomeDir}

// Group is a named set of points, used to organise usage output.
type Group struct {
	Name   string
	Points []*ParamPoint
}

// ControlGroup returns a fresh copy of the standard control parameters.
func ControlGroup() Group {
	return Group{
		Name: ControlGroupName,
		Points: []*ParamPoint{
			controlPoint(HelpFlag),
			controlPoint(VerboseConfigFlag),
			controlPoint(SkipPropertiesFromFileSystem),
			controlPoint(PropertiesFileName),
			controlPoint(PropertiesDefaultFileName),
			controlPoint(PropertiesFileSystemPath),
		},
	}
}

func controlPoint(t ParamType) *ParamPoint {
	var p *ParamPoint
	switch t {
	case HelpFlag:
		p = Flag("help", "Print usage help and exit.")
		p.Aliases = []string{"h"}
	case VerboseConfigFlag:
		p = Flag("verboseConfig", "Print the configuration found on the command line.")
	case SkipPropertiesFromFileSystem:
		p = Flag("skipPropertiesFromFileSystem", "Do not search the file system for a properties file.")
	case PropertiesFileName:
		p = String("propertiesFileName", DefaultPropertiesFileName,
			"Name of the properties file to search for.")
	case PropertiesDefaultFileName:
		p = String("propertiesDefaultFileName", DefaultPropertiesDefaultFileName,
			"Name of the properties file to fall back to if the primary one is not found.")
	case PropertiesFileSystemPath:
		p = List("propertiesFileSystemPath", append([]string(nil), DefaultSearchPath...),
			"Directory to search for the properties file; may be repeated, later directories win.")
	case Application:
		log.Panic("Application is not a control parameter type")
	}
	p.Type = t
	return p
}

// Schema is the static set of parameters an application recognises.  It is
// built once at start of day and passed explicitly to everything that needs
// it.
type Schema struct {
	groups []Group
	points []*ParamPoint
	byName map[string]*ParamPoint
	byType map[ParamType]*ParamPoint
}

// NewSchema validates the given groups and builds a schema from them.  Any
// control parameter that the groups do not declare is added from
// ControlGroup, so every schema can drive the full resolution process.
func NewSchema(groups ...Group) (*Schema, error) {
	s := &Schema{
		byName: map[string]*ParamPoint{},
		byType: map[ParamType]*ParamPoint{},
	}
	validate := validator.New()

	declared := map[ParamType]bool{}
	for _, g := range groups {
		for _, p := range g.Points {
			if p != nil && p.Type.Control() {
				declared[p.Type] = true
			}
		}
	}
	controls := Group{Name: ControlGroupName}
	for _, p := range ControlGroup().Points {
		if !declared[p.Type] {
			controls.Points = append(controls.Points, p)
		}
	}
	if len(controls.Points) > 0 {
		groups = append([]Group{controls}, groups...)
	}

	for _, g := range groups {
		for _, p := range g.Points {
			if p == nil {
				return nil, errors.Errorf("nil parameter in group %q", g.Name)
			}
			if err := s.add(validate, g.Name, p); err != nil {
				return nil, err
			}
		}
		s.groups = append(s.groups, g)
	}
	log.WithField("numParams", len(s.points)).Debug("Built parameter schema")
	return s, nil
}

func (s *Schema) add(validate *validator.Validate, group string, p *ParamPoint) error {
	if err := validate.Struct(p); err != nil {
		return errors.Wrapf(err, "invalid declaration of parameter %q", p.Name)
	}
	if kind, ok := p.Type.requiredKind(); ok && kind != p.Kind {
		return errors.Errorf("parameter %v of type %v must be a %v, not a %v",
			p.Name, p.Type, kind, p.Kind)
	}
	if p.Type.Control() {
		if other, ok := s.byType[p.Type]; ok {
			return errors.Errorf("parameters %v and %v both declared as %v", other.Name, p.Name, p.Type)
		}
	}
	for _, n := range p.Names() {
		if other, ok := s.byName[strings.ToLower(n)]; ok {
			return errors.Errorf("parameter name %q of %v clashes with %v", n, p.Name, other.Name)
		}
	}

	param, err := newParam(p)
	if err != nil {
		return err
	}
	p.param = param
	p.group = group

	if p.Kind.MultiValued() {
		if p.Default != "" {
			return errors.Errorf("list parameter %v must use DefaultList", p.Name)
		}
		if p.DefaultList != nil {
			p.defaultValue = append([]string(nil), p.DefaultList...)
		}
	} else {
		if p.DefaultList != nil {
			return errors.Errorf("parameter %v is not a list; DefaultList not allowed", p.Name)
		}
		if p.Default != "" {
			// Parse the default now so that we syntax-check the defaults up
			// front.
			def, err := param.Parse(p.Default)
			if err != nil {
				return errors.Wrap(err, "invalid default value")
			}
			p.defaultValue = def
		}
	}

	s.points = append(s.points, p)
	for _, n := range p.Names() {
		s.byName[strings.ToLower(n)] = p
	}
	if p.Type.Control() {
		s.byType[p.Type] = p
	}
	return nil
}

// Lookup finds a point by name or alias, ignoring case.
func (s *Schema) Lookup(name string) *ParamPoint {
	return s.byName[strings.ToLower(strings.TrimSpace(name))]
}

// ByType returns the point declared for a control category.
func (s *Schema) ByType(t ParamType) *ParamPoint {
	return s.byType[t]
}

// Points returns every point in declaration order.
func (s *Schema) Points() []*ParamPoint {
	return append([]*ParamPoint(nil), s.points...)
}

// Groups returns the groups in declaration order, control parameters first.
func (s *Schema) Groups() []Group {
	return append([]Group(nil), s.groups...)
}

func (s *Schema) Len() int {
	return len(s.points)
}
