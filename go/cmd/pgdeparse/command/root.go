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

// Package command implements the pgdeparse command line.
package command

import (
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/multigres/pgdeparse/go/servenv"
	"github.com/multigres/pgdeparse/go/viperutil"
)

// PgDeparseCommand holds the configuration shared by pgdeparse commands.
type PgDeparseCommand struct {
	reg  *viperutil.Registry
	senv *servenv.ServEnv
	fs   afero.Fs

	workers       viperutil.Value[int]
	inputFormat   viperutil.Value[string]
	watchDebounce viperutil.Value[time.Duration]
}

// GetRootCommand creates the root command reading files from the OS
// filesystem.
func GetRootCommand() *cobra.Command {
	return NewRootCommand(afero.NewOsFs())
}

// NewRootCommand creates the root command with all subcommands. Input files
// are read through fs.
func NewRootCommand(fs afero.Fs) *cobra.Command {
	reg := viperutil.NewRegistry()
	pc := &PgDeparseCommand{
		reg:  reg,
		senv: servenv.NewServEnv(reg),
		fs:   fs,
		workers: viperutil.Configure(reg, "workers", viperutil.Options[int]{
			Default:  1,
			FlagName: "workers",
			EnvVars:  []string{viperutil.EnvPrefix + "WORKERS"},
			Dynamic:  true,
		}),
		inputFormat: viperutil.Configure(reg, "input-format", viperutil.Options[string]{
			Default:  "json",
			FlagName: "input-format",
			EnvVars:  []string{viperutil.EnvPrefix + "INPUT_FORMAT"},
		}),
		watchDebounce: viperutil.Configure(reg, "watch-debounce", viperutil.Options[time.Duration]{
			Default:  100 * time.Millisecond,
			FlagName: "watch-debounce",
			Dynamic:  true,
		}),
	}

	root := &cobra.Command{
		Use:   "pgdeparse",
		Short: "Render PostgreSQL parse trees back into SQL",
		Long: `pgdeparse turns PostgreSQL raw parse trees, in the JSON layout produced by
libpg_query, back into canonical SQL text.

Get started with:
  pgdeparse format query.sql      # Parse and re-render SQL
  pgdeparse render tree.json      # Render a JSON parse tree
  pgdeparse check migrations/*.sql

Configuration:
  pgdeparse searches for a config file named 'pgdeparse' (.yaml, .yml, .json)
  in the directories given by --config-path. Every setting can also be set
  through a PGDEPARSE_ environment variable.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Flag errors have been reported by now; application errors
			// should not print usage.
			cmd.SilenceUsage = true
			return pc.senv.CobraPreRunE(cmd, args)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return pc.senv.Close()
		},
	}

	pfs := root.PersistentFlags()
	pc.senv.RegisterFlags(pfs)
	pfs.Int("workers", pc.workers.Default(), "Number of statements rendered in parallel.")
	viperutil.BindFlags(pfs, pc.workers)

	AddRenderCommand(root, pc)
	AddFormatCommand(root, pc)
	AddCheckCommand(root, pc)
	AddKeywordsCommand(root)
	AddServeCommand(root, pc)
	AddConfigCommand(root, pc)
	AddVersionCommand(root)

	return root
}
