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
	"context"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/multigres/pgdeparse/go/deparse"
	"github.com/multigres/pgdeparse/go/deparse/jsontree"
)

// Check statuses
const (
	statusOK     = "ok"
	statusFailed = "failed"
)

// CheckResult is the round-trip check outcome of one file.
type CheckResult struct {
	File       string `yaml:"file"`
	Statements int    `yaml:"statements"`
	Status     string `yaml:"status"`
	Detail     string `yaml:"detail,omitempty"`
}

// PgDeparseCheckCmd holds the check command configuration
type PgDeparseCheckCmd struct {
	pc     *PgDeparseCommand
	report string
}

// AddCheckCommand adds the check subcommand to the root command.
func AddCheckCommand(root *cobra.Command, pc *PgDeparseCommand) {
	c := &PgDeparseCheckCmd{pc: pc}
	cmd := &cobra.Command{
		Use:   "check file...",
		Short: "Verify that SQL files survive a parse and render round trip",
		Long: `Check parses every file, renders the statements and parses the result again.
A file passes when the rendered SQL has the same fingerprint as the original
and rendering it once more gives the same text.

Files are checked concurrently, --workers at a time. The command exits with
an error when any file fails.

Examples:
  pgdeparse check schema.sql queries/*.sql
  pgdeparse check --report yaml --workers 8 migrations/*.sql`,
		Args: cobra.MinimumNArgs(1),
		RunE: c.run,
	}
	cmd.Flags().StringVar(&c.report, "report", "table", "Report format (table, yaml).")
	root.AddCommand(cmd)
}

func (c *PgDeparseCheckCmd) run(cmd *cobra.Command, args []string) error {
	if c.report != "table" && c.report != "yaml" {
		return fmt.Errorf("unknown report format %q (expected table or yaml)", c.report)
	}

	results, err := c.checkFiles(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch c.report {
	case "yaml":
		err = writeYAMLReport(out, results)
	default:
		writeTableReport(out, results)
	}
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Status != statusOK {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed the round-trip check", failed, len(results))
	}
	return nil
}

func (c *PgDeparseCheckCmd) checkFiles(cmd *cobra.Command, paths []string) ([]CheckResult, error) {
	results := make([]CheckResult, len(paths))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(1, c.pc.workers.Get()))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = c.checkFile(ctx, cmd, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *PgDeparseCheckCmd) checkFile(ctx context.Context, cmd *cobra.Command, path string) CheckResult {
	res := CheckResult{File: path, Status: statusFailed}

	data, err := readInput(cmd, c.pc.fs, path)
	if err != nil {
		res.Detail = err.Error()
		return res
	}
	sql := string(data)

	nodes, err := jsontree.ParseSQL(sql)
	if err != nil {
		res.Detail = err.Error()
		return res
	}
	res.Statements = len(nodes)

	rendered, err := deparse.RenderParallel(ctx, nodes, 1)
	if err != nil {
		res.Detail = err.Error()
		return res
	}

	want, err := jsontree.Fingerprint(sql)
	if err != nil {
		res.Detail = err.Error()
		return res
	}
	got, err := jsontree.Fingerprint(rendered)
	if err != nil {
		res.Detail = "rendered SQL does not parse: " + err.Error()
		return res
	}
	if want != got {
		res.Detail = "fingerprint mismatch"
		return res
	}

	again, err := jsontree.ParseSQL(rendered)
	if err != nil {
		res.Detail = err.Error()
		return res
	}
	if rendered2, err := deparse.Render(again); err != nil || rendered2 != rendered {
		res.Detail = "rendering is not stable"
		return res
	}

	res.Status = statusOK
	return res
}

func writeTableReport(w io.Writer, results []CheckResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Statements", "Status", "Detail"})
	for _, r := range results {
		t.AppendRow(table.Row{r.File, r.Statements, r.Status, r.Detail})
	}
	t.Render()
}

func writeYAMLReport(w io.Writer, results []CheckResult) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]any{"files": results}); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
