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
	"strings"
)

// ParamType is the category of a parameter.  The control categories steer the
// resolution process itself; everything the embedding application declares is
// Application.
type ParamType uint8

const (
	Application ParamType = iota
	HelpFlag
	VerboseConfigFlag
	SkipPropertiesFromFileSystem
	PropertiesFileName
	PropertiesFileSystemPath
	PropertiesDefaultFileName
)

// ControlTypes lists the control categories in the order they are shown in
// usage output.
var ControlTypes = []ParamType{
	HelpFlag,
	VerboseConfigFlag,
	SkipPropertiesFromFileSystem,
	PropertiesFileName,
	PropertiesDefaultFileName,
	PropertiesFileSystemPath,
}

func (t ParamType) String() string {
	switch t {
	case Application:
		return "APPLICATION"
	case HelpFlag:
		return "HELP_FLAG"
	case VerboseConfigFlag:
		return "VERBOSE_CONFIG_FLAG"
	case SkipPropertiesFromFileSystem:
		return "SKIP_PROPERTIES_FROM_FILE_SYSTEM"
	case PropertiesFileName:
		return "PROPERTIES_FILE_NAME"
	case PropertiesFileSystemPath:
		return "PROPERTIES_FILE_SYSTEM_PATH"
	case PropertiesDefaultFileName:
		return "PROPERTIES_DEFAULT_FILE_NAME"
	}
	return fmt.Sprintf("<unknown-param-type(%v)>", uint8(t))
}

// Control returns true for the categories that the resolution process
// interprets itself.
func (t ParamType) Control() bool {
	switch t {
	case HelpFlag, VerboseConfigFlag, SkipPropertiesFromFileSystem,
		PropertiesFileName, PropertiesFileSystemPath, PropertiesDefaultFileName:
		return true
	case Application:
		return false
	}
	return false
}

// requiredKind is the only Kind a point of the given category may have.
func (t ParamType) requiredKind() (Kind, bool) {
	switch t {
	case HelpFlag, VerboseConfigFlag, SkipPropertiesFromFileSystem:
		return KindFlag, true
	case PropertiesFileName, PropertiesDefaultFileName:
		return KindString, true
	case PropertiesFileSystemPath:
		return KindList, true
	case Application:
		return 0, false
	}
	return 0, false
}

// Kind is the declared value type of a parameter.
type Kind uint8

const (
	KindString Kind = iota
	KindFlag
	KindList
	KindInt
	KindDuration
	KindOneOf
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindFlag:
		return "flag"
	case KindList:
		return "list"
	case KindInt:
		return "int"
	case KindDuration:
		return "duration"
	case KindOneOf:
		return "oneof"
	}
	return fmt.Sprintf("<unknown-kind(%v)>", uint8(k))
}

// MultiValued returns true if values from every source accumulate, rather
// than the highest-priority value winning.
func (k Kind) MultiValued() bool {
	return k == KindList
}

// ParamPoint describes one configurable setting.  Points are declared by the
// embedding application and must not be modified once they have been passed
// to NewSchema.
type ParamPoint struct {
	Name    string   `validate:"required,excludesall== "`
	Aliases []string `validate:"dive,required,excludesall== "`
	Type    ParamType
	Kind    Kind

	// Default is the default in string form, parsed at schema construction so
	// that bad defaults are caught early.  DefaultList is used instead for
	// multi-valued points.
	Default     string
	DefaultList []string
	// Options are the allowed values of a KindOneOf point.
	Options []string

	Description string

	group        string
	param        param
	defaultValue interface{}
}

// String declares a string parameter.
func String(name, def, description string) *ParamPoint {
	return &ParamPoint{Name: name, Kind: KindString, Default: def, Description: description}
}

// Flag declares a boolean flag.  Flags may be given on the command line
// without a value.
func Flag(name, description string) *ParamPoint {
	return &ParamPoint{Name: name, Kind: KindFlag, Description: description}
}

// List declares a multi-valued string parameter.
func List(name string, defs []string, description string) *ParamPoint {
	return &ParamPoint{Name: name, Kind: KindList, DefaultList: defs, Description: description}
}

// Int declares an integer parameter.
func Int(name, def, description string) *ParamPoint {
	return &ParamPoint{Name: name, Kind: KindInt, Default: def, Description: description}
}

// Duration declares a duration parameter.  Bare numbers are seconds.
func Duration(name, def, description string) *ParamPoint {
	return &ParamPoint{Name: name, Kind: KindDuration, Default: def, Description: description}
}

// OneOf declares a parameter restricted to the given options.
func OneOf(name, def string, options []string, description string) *ParamPoint {
	return &ParamPoint{Name: name, Kind: KindOneOf, Default: def, Options: options, Description: description}
}

// Group returns the name of the schema group the point was declared in.
func (p *ParamPoint) Group() string {
	return p.group
}

// Parse coerces a raw value to the point's declared type.
func (p *ParamPoint) Parse(raw string) (interface{}, error) {
	return p.param.Parse(raw)
}

// DefaultValue returns the parsed default, or nil if the point has none.
func (p *ParamPoint) DefaultValue() interface{} {
	if l, ok := p.defaultValue.([]string); ok {
		return append([]string(nil), l...)
	}
	return p.defaultValue
}

// HasDefault returns true if the point declares a default value.
func (p *ParamPoint) HasDefault() bool {
	return p.defaultValue != nil
}

// DefaultString renders the default for display.
func (p *ParamPoint) DefaultString() string {
	if p.Kind.MultiValued() {
		quoted := make([]string, len(p.DefaultList))
		for i, d := range p.DefaultList {
			quoted[i] = fmt.Sprintf("%q", d)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	}
	return p.Default
}

// Names returns the canonical name followed by any aliases.
func (p *ParamPoint) Names() []string {
	return append([]string{p.Name}, p.Aliases...)
}

func (p *ParamPoint) String() string {
	return p.Name
}
