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

	"github.com/multigres/pgdeparse/go/services/deparser"
)

// AddServeCommand adds the serve subcommand to the root command.
func AddServeCommand(root *cobra.Command, pc *PgDeparseCommand) {
	d := deparser.NewDeparser(pc.reg, pc.senv, pc.workers.Get)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the renderer over gRPC",
		Long: `Serve runs the pgdeparse.Deparser gRPC service. Deparse renders a libpg_query
JSON parse tree, Normalize parses SQL and renders it back. The standard gRPC
health and reflection services are registered as well.

The server stops gracefully on SIGTERM or SIGINT after --lameduck-period.

Examples:
  pgdeparse serve --grpc-port 15432
  pgdeparse serve --config-file /etc/pgdeparse.yaml --log-format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return d.Run(cmd.Context())
		},
	}
	d.RegisterFlags(cmd.Flags())
	root.AddCommand(cmd)
}
