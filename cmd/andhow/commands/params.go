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
	"github.com/spf13/cobra"

	"github.com/projectcalico/andhow/pkg/config"
)

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "List the parameters of the example server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := exampleSchema()
		if err != nil {
			return err
		}
		config.PrintUsage(cmd.OutOrStdout(), schema, "andhow show")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(paramsCmd)
}
