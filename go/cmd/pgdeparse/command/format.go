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
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/multigres/pgdeparse/go/deparse"
	"github.com/multigres/pgdeparse/go/deparse/jsontree"
	"github.com/multigres/pgdeparse/go/viperutil"
)

// PgDeparseFormatCmd holds the format command configuration
type PgDeparseFormatCmd struct {
	pc    *PgDeparseCommand
	watch bool
}

// AddFormatCommand adds the format subcommand to the root command.
func AddFormatCommand(root *cobra.Command, pc *PgDeparseCommand) {
	f := &PgDeparseFormatCmd{pc: pc}
	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Parse SQL and print it in canonical form",
		Long: `Format parses SQL with the PostgreSQL parser and renders it back, printing
keywords in upper case, identifiers quoted only where needed and expressions
parenthesized explicitly.

With --watch the file is formatted again every time it is saved, until the
command is interrupted.

Examples:
  pgdeparse format query.sql
  echo 'select 1' | pgdeparse format
  pgdeparse format --watch --watch-debounce 250ms query.sql`,
		Args: cobra.MaximumNArgs(1),
		RunE: f.run,
	}
	cmd.Flags().BoolVar(&f.watch, "watch", false, "Format the file again whenever it changes.")
	cmd.Flags().Duration("watch-debounce", pc.watchDebounce.Default(), "Wait this long after the last change before formatting again.")
	viperutil.BindFlags(cmd.Flags(), pc.watchDebounce)
	root.AddCommand(cmd)
}

func (f *PgDeparseFormatCmd) run(cmd *cobra.Command, args []string) error {
	path := argOrEmpty(args)
	if f.watch && (path == "" || path == "-") {
		return errors.New("--watch requires a file argument")
	}

	if err := f.formatOnce(cmd, path); err != nil {
		return err
	}
	if !f.watch {
		return nil
	}

	slog.Info("watching for changes", "file", path)
	return watchFile(cmd.Context(), path, f.pc.watchDebounce.Get, func() {
		if err := f.formatOnce(cmd, path); err != nil {
			slog.Warn("failed to format file", "file", path, "err", err)
		}
	})
}

func (f *PgDeparseFormatCmd) formatOnce(cmd *cobra.Command, path string) error {
	data, err := readInput(cmd, f.pc.fs, path)
	if err != nil {
		return err
	}
	nodes, err := jsontree.ParseSQL(string(data))
	if err != nil {
		return err
	}
	sql, err := deparse.RenderParallel(cmd.Context(), nodes, f.pc.workers.Get())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), sql)
	return err
}
