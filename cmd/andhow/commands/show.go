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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/projectcalico/andhow/pkg/config"
)

var showCmd = &cobra.Command{
	Use:   "show [name=value | flag]...",
	Short: "Resolve the configuration and show every value with its source",
	// Arguments are configuration, parsed by andhow itself.
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return resolveAndShow(cmd, args, false)
	},
}

var checkCmd = &cobra.Command{
	Use:                "check [name=value | flag]...",
	Short:              "Like show, but treat invalid properties file values as errors",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return resolveAndShow(cmd, args, true)
	},
}

func resolveAndShow(cmd *cobra.Command, args []string, strictFiles bool) error {
	schema, err := exampleSchema()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	opts := []config.Option{
		config.WithOutput(out),
		config.WithAppName("andhow " + cmd.Name()),
	}
	if strictFiles {
		opts = append(opts, config.WithStrictPropertyFiles())
	}
	res, err := config.New(schema, args, opts...).Run()
	if errors.Is(err, config.ErrHelpRequested) {
		return nil
	} else if err != nil {
		return err
	}

	if res.Location != nil {
		fmt.Fprintf(out, "Properties file: %v\n\n", res.Location)
	}
	config.PrintValues(out, "Effective configuration:", res.Values.All())
	if len(res.Problems) > 0 {
		fmt.Fprintln(out)
		config.PrintProblems(out, "Problems:", res.Problems)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(checkCmd)
}
