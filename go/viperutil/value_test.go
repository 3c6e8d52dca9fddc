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

package viperutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureDefaults(t *testing.T) {
	reg := NewRegistry()
	workers := Configure(reg, "workers", Options[int]{Default: 4, FlagName: "workers"})
	format := Configure(reg, "input-format", Options[string]{Default: "json"})
	debounce := Configure(reg, "watch-debounce", Options[time.Duration]{Default: time.Second, Dynamic: true})
	paths := Configure(reg, "paths", Options[[]string]{Default: []string{"a", "b"}})

	assert.Equal(t, 4, workers.Get())
	assert.Equal(t, 4, workers.Default())
	assert.Equal(t, "json", format.Get())
	assert.Equal(t, time.Second, debounce.Get())
	assert.Equal(t, []string{"a", "b"}, paths.Get())

	workers.Set(8)
	debounce.Set(2 * time.Second)
	assert.Equal(t, 8, workers.Get())
	assert.Equal(t, 2*time.Second, debounce.Get())
	assert.Equal(t, 4, workers.Default())
}

func TestConfigureEnvVars(t *testing.T) {
	t.Setenv("PGDEPARSE_TEST_WORKERS", "12")
	reg := NewRegistry()
	workers := Configure(reg, "workers", Options[int]{
		Default: 1,
		EnvVars: []string{"PGDEPARSE_TEST_WORKERS"},
	})
	assert.Equal(t, 12, workers.Get())
}

func TestBindFlags(t *testing.T) {
	reg := NewRegistry()
	level := Configure(reg, "log-level", Options[string]{Default: "info", FlagName: "log-level"})
	port := Configure(reg, "grpc-port", Options[int]{Default: 15432, FlagName: "grpc-port", Dynamic: true})
	noFlag := Configure(reg, "no-flag", Options[string]{Default: "x"})

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-level", level.Default(), "")
	fs.Int("grpc-port", port.Default(), "")
	BindFlags(fs, level, port, noFlag)

	require.NoError(t, fs.Parse([]string{"--log-level=debug", "--grpc-port=9000"}))
	assert.Equal(t, "debug", level.Get())
	assert.Equal(t, 9000, port.Get())
	assert.Equal(t, "x", noFlag.Get())

	_, err := Configure(reg, "missing", Options[int]{FlagName: "missing"}).Flag(fs)
	assert.Error(t, err)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "pgdeparse.yaml")
	require.NoError(t, os.WriteFile(file, []byte("workers: 3\nwatch-debounce: 250ms\n"), 0o644))

	reg := NewRegistry()
	vc := NewViperConfig(reg)
	workers := Configure(reg, "workers", Options[int]{Default: 1})
	debounce := Configure(reg, "watch-debounce", Options[time.Duration]{Default: time.Second, Dynamic: true})

	reloaded := make(chan struct{}, 1)
	NotifyConfigReload(reg, reloaded)

	vc.configFile.Set(file)
	cancel, err := vc.LoadConfig(context.Background(), reg)
	require.NoError(t, err)
	defer cancel()

	assert.Equal(t, file, reg.ConfigFileUsed())
	assert.Equal(t, 3, workers.Get())
	assert.Equal(t, 250*time.Millisecond, debounce.Get())

	require.NoError(t, os.WriteFile(file, []byte("workers: 5\nwatch-debounce: 750ms\n"), 0o644))
	require.Eventually(t, func() bool {
		return debounce.Get() == 750*time.Millisecond
	}, 5*time.Second, 20*time.Millisecond)

	// Static values keep the value read at startup.
	assert.Equal(t, 3, workers.Get())

	combined := reg.Combined()
	assert.Equal(t, 3, combined.GetInt("workers"))
	assert.Equal(t, 750*time.Millisecond, combined.GetDuration("watch-debounce"))
}

func TestNotifyAfterWatchPanics(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "pgdeparse.yaml")
	require.NoError(t, os.WriteFile(file, []byte("workers: 3\n"), 0o644))

	reg := NewRegistry()
	vc := NewViperConfig(reg)
	vc.configFile.Set(file)
	cancel, err := vc.LoadConfig(context.Background(), reg)
	require.NoError(t, err)
	defer cancel()

	assert.Panics(t, func() {
		NotifyConfigReload(reg, make(chan struct{}))
	})
}
