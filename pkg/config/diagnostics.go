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
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/projectcalico/andhow/pkg/loader"
	"github.com/projectcalico/andhow/pkg/params"
	"github.com/projectcalico/andhow/pkg/resolver"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	return table
}

// PrintValues writes a table of values, with the source of each.
func PrintValues(w io.Writer, title string, values []*resolver.EffectiveValue) {
	fmt.Fprintf(w, "%s\n", title)
	if len(values) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	table := newTable(w, "Name", "Value", "Source", "Origin")
	for _, v := range values {
		table.Append([]string{v.Point.Name, v.Display(), v.Source.String(), v.Origin})
	}
	table.Render()
}

// PrintProblems writes a table of problems.
func PrintProblems(w io.Writer, title string, problems []params.Problem) {
	fmt.Fprintf(w, "%s\n", title)
	table := newTable(w, "Name", "Value", "Source", "Problem")
	for _, p := range problems {
		where := p.Source.String()
		if p.Origin != "" {
			where += ", " + p.Origin
		}
		table.Append([]string{p.Name, fmt.Sprintf("%q", p.Raw), where, p.Err.Error()})
	}
	table.Render()
}

// PrintUsage writes the usage listing for the schema, one table per group.
func PrintUsage(w io.Writer, schema *params.Schema, appName string) {
	printUsage(w, schema, appName, loader.DefaultSeparator)
}

func printUsage(w io.Writer, schema *params.Schema, appName, separator string) {
	if appName == "" {
		appName = "<application>"
	}
	fmt.Fprintf(w, "Usage: %s [name%svalue | flag]...\n", appName, separator)
	for _, g := range schema.Groups() {
		fmt.Fprintf(w, "\n%s:\n", g.Name)
		table := newTable(w, "Name", "Kind", "Default", "Description")
		for _, p := range g.Points {
			names := p.Name
			if len(p.Aliases) > 0 {
				names += " (" + strings.Join(p.Aliases, ", ") + ")"
			}
			kind := p.Kind.String()
			if p.Kind == params.KindOneOf {
				kind += " [" + strings.Join(p.Options, "|") + "]"
			}
			table.Append([]string{names, kind, p.DefaultString(), p.Description})
		}
		table.Render()
	}
	fmt.Fprintf(w, "\nValues given on the command line override values from the properties file.\n")
	if p := schema.ByType(params.PropertiesFileSystemPath); p != nil {
		fmt.Fprintf(w, "The properties file is searched for in %v; later directories win.\n", p.DefaultString())
	}
}
