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
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/multigres/pgdeparse/go/deparse"
	"github.com/multigres/pgdeparse/go/viperutil"
)

// AddRenderCommand adds the render subcommand to the root command.
func AddRenderCommand(root *cobra.Command, pc *PgDeparseCommand) {
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a parse tree as SQL",
		Long: `Render reads a parse tree in libpg_query JSON layout (or the same tree
written as YAML) and prints the SQL it represents.

The input format follows the file extension (.json, .yaml, .yml, .sql) and
falls back to --input-format. With no file, or "-", the tree is read from stdin.

Examples:
  # Render a tree produced by pg_query
  pgdeparse render tree.json

  # Render a YAML tree from stdin using four workers
  cat tree.yaml | pgdeparse render --input-format yaml --workers 4`,
		Args: cobra.MaximumNArgs(1),
		RunE: pc.runRender,
	}
	cmd.Flags().String("input-format", pc.inputFormat.Default(), "Format of the input when the file extension does not tell (json, yaml, sql).")
	viperutil.BindFlags(cmd.Flags(), pc.inputFormat)
	root.AddCommand(cmd)
}

func (pc *PgDeparseCommand) runRender(cmd *cobra.Command, args []string) error {
	path := argOrEmpty(args)
	data, err := readInput(cmd, pc.fs, path)
	if err != nil {
		return err
	}
	nodes, err := decodeInput(data, inputFormatFor(path, pc.inputFormat.Get()))
	if err != nil {
		return err
	}

	workers := pc.workers.Get()
	sql, err := deparse.RenderParallel(cmd.Context(), nodes, workers)
	if err != nil {
		return err
	}
	slog.Debug("rendered parse tree", "statements", len(nodes), "workers", workers)

	_, err = fmt.Fprintln(cmd.OutOrStdout(), sql)
	return err
}
