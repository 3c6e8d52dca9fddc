// Copyright 2025 Supabase, Inc.
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

package command

import (
	"github.com/spf13/cobra"

	"github.com/multigres/pgdeparse/go/viperutil/debug"
)

// AddConfigCommand adds the config subcommand to the root command.
func AddConfigCommand(root *cobra.Command, pc *PgDeparseCommand) {
	var format string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Config prints the configuration pgdeparse would run with: the config file in
use, the flags set on the command line and every resolved setting.

Examples:
  pgdeparse config
  pgdeparse config --workers 4 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return debug.Write(cmd.OutOrStdout(), pc.reg, cmd.Flags(), format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format (yaml, json).")
	root.AddCommand(cmd)
}
