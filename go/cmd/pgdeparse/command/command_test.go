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
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/multigres/pgdeparse/go/mterrors"
)

const selectTree = `{"version":170004,"stmts":[{"stmt":{"SelectStmt":{
	"targetList":[{"ResTarget":{"val":{"A_Const":{"ival":{"ival":1},"location":7}},"location":7}}],
	"limitOption":"LIMIT_OPTION_DEFAULT","op":"SETOP_NONE"}},"stmt_len":8}]}`

const selectTreeYAML = `version: 170004
stmts:
  - stmt:
      SelectStmt:
        targetList:
          - ResTarget:
              val:
                ColumnRef:
                  fields:
                    - String:
                        sval: a
        fromClause:
          - RangeVar:
              relname: t
              inh: true
              relpersistence: p
        limitOption: LIMIT_OPTION_DEFAULT
        op: SETOP_NONE
`

// runCommand executes the root command against fs and returns what it
// printed on stdout.
func runCommand(t *testing.T, fs afero.Fs, stdin string, args ...string) (string, error) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	root := NewRootCommand(fs)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args, "--config-file-not-found-handling=ignore", "--log-level=error"))
	err := root.Execute()
	return out.String(), err
}

func TestRender(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/trees/select.json", []byte(selectTree), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/trees/select.yaml", []byte(selectTreeYAML), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/trees/query.sql", []byte("select 1; select 2"), 0o644))

	tests := []struct {
		name     string
		stdin    string
		args     []string
		expected string
	}{
		{"json file", "", []string{"render", "/trees/select.json"}, "SELECT 1\n"},
		{"yaml file by extension", "", []string{"render", "/trees/select.yaml"}, "SELECT a FROM t\n"},
		{"sql file by extension", "", []string{"render", "/trees/query.sql", "--workers=4"}, "SELECT 1; SELECT 2\n"},
		{"json stdin", selectTree, []string{"render"}, "SELECT 1\n"},
		{"yaml stdin", selectTreeYAML, []string{"render", "-", "--input-format=yaml"}, "SELECT a FROM t\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, fs, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRenderErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bad.json", []byte(`{"stmts":[{"stmt":{"UpdateStmt":{}}}]}`), 0o644))

	_, err := runCommand(t, fs, "", "render", "/missing.json")
	require.Error(t, err)
	assert.Equal(t, "DP03001", mterrors.ID(err))

	_, err = runCommand(t, fs, "", "render", "/bad.json")
	require.Error(t, err)
	assert.Equal(t, "DP01001", mterrors.ID(err))

	_, err = runCommand(t, fs, "{", "render")
	require.Error(t, err)
	assert.Equal(t, "DP02002", mterrors.ID(err))

	_, err = runCommand(t, fs, "x", "render", "--input-format=toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown input format")
}

func TestFormat(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/q.sql", []byte("select a, b from t where a = 1 order by b desc"), 0o644))

	out, err := runCommand(t, fs, "", "format", "/q.sql")
	require.NoError(t, err)
	assert.Equal(t, "SELECT a, b FROM t WHERE a = 1 ORDER BY b DESC\n", out)

	out, err = runCommand(t, fs, "insert into t values (1)", "format")
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO t VALUES (1)\n", out)

	_, err = runCommand(t, fs, "selec 1", "format")
	require.Error(t, err)
	assert.Equal(t, "DP02001", mterrors.ID(err))

	_, err = runCommand(t, fs, "select 1", "format", "--watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--watch requires a file")
}

func TestCheck(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/ok.sql", []byte("select 1; create table t (a int primary key)"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/also_ok.sql", []byte("update t set a = a + 1 where b in (1, 2)"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/bad.sql", []byte("selec 1"), 0o644))

	out, err := runCommand(t, fs, "", "check", "/ok.sql", "/also_ok.sql", "--workers=2")
	require.NoError(t, err)
	assert.Contains(t, out, "/ok.sql")
	assert.Contains(t, out, "/also_ok.sql")
	assert.NotContains(t, out, statusFailed)

	out, err = runCommand(t, fs, "", "check", "/ok.sql", "/bad.sql", "/missing.sql", "--report=yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3 files failed")

	var report struct {
		Files []CheckResult `yaml:"files"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	require.Len(t, report.Files, 3)
	assert.Equal(t, CheckResult{File: "/ok.sql", Statements: 2, Status: statusOK}, report.Files[0])
	assert.Equal(t, statusFailed, report.Files[1].Status)
	assert.Contains(t, report.Files[1].Detail, "syntax error")
	assert.Equal(t, statusFailed, report.Files[2].Status)

	_, err = runCommand(t, fs, "", "check", "/ok.sql", "--report=xml")
	require.Error(t, err)
}

func TestKeywords(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, err := runCommand(t, fs, "", "keywords", "--category=reserved_keyword")
	require.NoError(t, err)
	assert.Contains(t, out, "select")
	assert.Contains(t, out, "RESERVED_KEYWORD")
	assert.NotContains(t, out, "abort")

	out, err = runCommand(t, fs, "", "keywords")
	require.NoError(t, err)
	assert.Contains(t, out, "abort")

	_, err = runCommand(t, fs, "", "keywords", "--category=bogus")
	require.Error(t, err)
}

func TestVersionAndConfig(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, err := runCommand(t, fs, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "pgdeparse dev (PostgreSQL 17 grammar"))

	out, err = runCommand(t, fs, "", "config", "--workers=3", "--format=yaml")
	require.NoError(t, err)
	var snap struct {
		Flags  map[string]string `yaml:"command_line_flags"`
		Config map[string]any    `yaml:"viper_config"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &snap))
	assert.Equal(t, "3", snap.Flags["workers"])
	assert.Equal(t, 3, snap.Config["workers"])
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "pgdeparse.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("input-format: yaml\n"), 0o644))

	out, err := runCommand(t, afero.NewMemMapFs(), selectTreeYAML, "render", "--config-file="+cfg)
	require.NoError(t, err)
	assert.Equal(t, "SELECT a FROM t\n", out)
}

func TestWatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.sql")
	require.NoError(t, os.WriteFile(path, []byte("select 1"), 0o644))

	var changes atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, func() time.Duration { return 20 * time.Millisecond }, func() {
			changes.Add(1)
		})
	}()

	require.Eventually(t, func() bool {
		// Keep writing until the watcher is registered and sees a change.
		_ = os.WriteFile(path, []byte("select 2"), 0o644)
		return changes.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)

	// Writes to other files in the directory are ignored.
	time.Sleep(100 * time.Millisecond)
	seen := changes.Load()
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other.sql"), []byte("x"), 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, seen, changes.Load())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
