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
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "andhow",
	Short: "Resolve configuration from the command line and properties files",
	Long: `andhow resolves the configuration of an example server from fixed values,
command line arguments (name=value) and a properties file found on a search path.

Subcommands take configuration arguments, not flags; for example:

  andhow show port=9000 --debug propertiesFileSystemPath=/etc/andhow`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.  It returns an error for invalid
// configuration and for unreadable properties files.
func Execute() error {
	return rootCmd.Execute()
}
