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
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/multigres/pgdeparse/go/deparse/keywords"
)

// AddKeywordsCommand adds the keywords subcommand to the root command.
func AddKeywordsCommand(root *cobra.Command) {
	var category string
	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "List the SQL keywords and whether they need quoting",
		Long: `Keywords prints the PostgreSQL keyword table used when deciding whether an
identifier must be quoted. Every keyword outside UNRESERVED_KEYWORD is
quoted when it appears as an identifier.

Examples:
  pgdeparse keywords
  pgdeparse keywords --category reserved_keyword`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := keywords.Keywords
			if category != "" {
				c, ok := keywords.ParseCategory(category)
				if !ok {
					return fmt.Errorf("unknown keyword category %q", category)
				}
				list = keywords.GetKeywordsByCategory(c)
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Keyword", "Category", "Bare Label", "Quoted"})
			for _, kw := range list {
				t.AppendRow(table.Row{kw.Name, kw.Category, yesNo(kw.CanBareLabel), yesNo(keywords.NeedsQuoting(kw.Name))})
			}
			t.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d keywords", len(list))})
			t.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only list keywords of this category ("+categoryNames()+").")
	root.AddCommand(cmd)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func categoryNames() string {
	names := make([]string, 0, 4)
	for c := keywords.UnreservedKeyword; c <= keywords.ReservedKeyword; c++ {
		names = append(names, strings.ToLower(c.String()))
	}
	return strings.Join(names, ", ")
}
