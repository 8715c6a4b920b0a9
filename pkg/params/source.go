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

import "fmt"

// Source of a config value.  Values from higher-numbered sources override
// those from lower-numbered sources.
type Source uint8

const (
	Default Source = iota
	PropertyFile
	CommandLine
	Fixed
)

var SourcesInDescendingOrder = []Source{Fixed, CommandLine, PropertyFile}

func (source Source) String() string {
	switch source {
	case Default:
		return "<default>"
	case PropertyFile:
		return "property file"
	case CommandLine:
		return "command line"
	case Fixed:
		return "fixed value"
	}
	return fmt.Sprintf("<unknown(%v)>", uint8(source))
}

// Strict returns true if invalid values from this source are always fatal.
// Values that the user typed (or that the embedding code injected) must be
// right; values found on disk may fall back to the default.
func (source Source) Strict() bool {
	switch source {
	case CommandLine, Fixed:
		return true
	case Default, PropertyFile:
		return false
	}
	return false
}
