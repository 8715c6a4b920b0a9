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

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/projectcalico/andhow/pkg/config"
	"github.com/projectcalico/andhow/pkg/loader"
	"github.com/projectcalico/andhow/pkg/locator"
	"github.com/projectcalico/andhow/pkg/params"
	"github.com/projectcalico/andhow/pkg/resolver"
)

var locateCmd = &cobra.Command{
	Use:                "locate [name=value | flag]...",
	Short:              "Show which properties file would be loaded",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := exampleSchema()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		r, err := loader.NewCommandLineLoader(args).Load(schema, nil)
		if err != nil {
			return err
		}
		values := resolver.Resolve(schema, r.Values)
		var invalid []params.Problem
		for _, p := range r.Problems {
			if p.Kind == params.ParseProblem {
				invalid = append(invalid, p)
			}
		}
		invalid = append(invalid, values.Problems()...)
		if len(invalid) > 0 {
			config.PrintProblems(out, "Invalid configuration:", invalid)
			return &config.InvalidConfigurationError{Problems: invalid}
		}

		pfl := loader.NewPropertyFileLoader(
			locator.New(locator.WithExpander(locator.NewExecutableDirExpander())))
		fileResult, err := pfl.Load(schema, values)
		if err != nil {
			return err
		}
		loc := pfl.Location()
		fmt.Fprintln(out, "Searched:")
		for _, path := range loc.Searched {
			fmt.Fprintf(out, "  %v\n", path)
		}
		if !loc.Found() {
			fmt.Fprintln(out, "No properties file found.")
			return nil
		}
		fmt.Fprintf(out, "Found: %v\n", loc)
		fmt.Fprintf(out, "%d value(s), %d unrecognized key(s)\n",
			len(fileResult.Values), countKind(fileResult.Problems, params.UnrecognizedParameter))
		return nil
	},
}

func countKind(problems []params.Problem, kind params.ProblemKind) int {
	n := 0
	for _, p := range problems {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

func init() {
	rootCmd.AddCommand(locateCmd)
}
