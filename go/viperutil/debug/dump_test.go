// Copyright 2025 Supabase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package debug

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/multigres/pgdeparse/go/viperutil"
)

func newTestRegistry(t *testing.T) (*viperutil.Registry, *pflag.FlagSet) {
	t.Helper()
	reg := viperutil.NewRegistry()
	workers := viperutil.Configure(reg, "workers", viperutil.Options[int]{Default: 1, FlagName: "workers"})
	level := viperutil.Configure(reg, "log-level", viperutil.Options[string]{Default: "info", FlagName: "log-level"})

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("workers", workers.Default(), "")
	fs.String("log-level", level.Default(), "")
	viperutil.BindFlags(fs, workers, level)
	require.NoError(t, fs.Parse([]string{"--workers=6"}))
	return reg, fs
}

func TestWriteYAML(t *testing.T) {
	reg, fs := newTestRegistry(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, reg, fs, ""))

	var snap Snapshot
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &snap))
	assert.Equal(t, map[string]string{"workers": "6"}, snap.CommandLineFlags)
	assert.Equal(t, "info", snap.Config["log-level"])
}

func TestWriteJSON(t *testing.T) {
	reg, fs := newTestRegistry(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, reg, fs, "JSON"))

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Contains(t, out, "command_line_flags")
	assert.Contains(t, out, "viper_config")
}

func TestWriteUnknownFormat(t *testing.T) {
	reg, fs := newTestRegistry(t)
	err := Write(&bytes.Buffer{}, reg, fs, "toml")
	assert.ErrorContains(t, err, "unknown format")
}
