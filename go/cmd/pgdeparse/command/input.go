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
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/multigres/pgdeparse/go/deparse/ast"
	"github.com/multigres/pgdeparse/go/deparse/jsontree"
	"github.com/multigres/pgdeparse/go/mterrors"
)

// Input formats accepted by --input-format.
const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatSQL  = "sql"
)

// readInput returns the contents of path, or of the command's stdin when
// path is empty or "-".
func readInput(cmd *cobra.Command, fs afero.Fs, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, mterrors.DP03001(fmt.Sprintf("read stdin: %v", err))
		}
		return data, nil
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, mterrors.DP03001(err.Error())
	}
	return data, nil
}

// inputFormatFor picks the input format of path: the file extension when it
// names one, the configured format otherwise.
func inputFormatFor(path, configured string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON
	case ".yaml", ".yml":
		return formatYAML
	case ".sql":
		return formatSQL
	}
	return strings.ToLower(configured)
}

// decodeInput turns data into statements according to format.
func decodeInput(data []byte, format string) ([]ast.Node, error) {
	switch format {
	case formatJSON:
		return jsontree.Decode(data)
	case formatYAML:
		return jsontree.DecodeYAML(data)
	case formatSQL:
		return jsontree.ParseSQL(string(data))
	default:
		return nil, fmt.Errorf("unknown input format %q (expected json, yaml or sql)", format)
	}
}

func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
