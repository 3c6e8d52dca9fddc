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

package servenv

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multigres/pgdeparse/go/viperutil"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer
	slog.New(NewHandler(&buf, "json", slog.LevelInfo)).Info("hello", "k", "v")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "v", rec["k"])

	buf.Reset()
	slog.New(NewHandler(&buf, "text", slog.LevelWarn)).Info("hidden")
	assert.Empty(t, buf.String())
}

func TestLoggerFlagsAndFileOutput(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	reg := viperutil.NewRegistry()
	lg := NewLogger(reg)
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	lg.RegisterFlags(fs)

	logFile := filepath.Join(t.TempDir(), "pgdeparse.log")
	require.NoError(t, fs.Parse([]string{"--log-level=debug", "--log-format=json", "--log-output=" + logFile}))
	assert.Equal(t, "debug", lg.GetLogLevel())
	assert.Equal(t, "json", lg.GetLogFormat())
	assert.Equal(t, logFile, lg.GetLogOutput())

	var hooked *slog.Logger
	lg.OnLoggingSetup(func(l *slog.Logger) { hooked = l })
	lg.SetupLogging()
	require.NotNil(t, hooked)
	assert.Same(t, hooked, lg.GetLogger())

	lg.GetLogger().Debug("rendered", "statements", 2)
	require.NoError(t, lg.Close())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"rendered"`)
	assert.Contains(t, string(data), `"statements":2`)
}

func TestGetLoggerBeforeSetup(t *testing.T) {
	lg := NewLogger(viperutil.NewRegistry())
	assert.Same(t, slog.Default(), lg.GetLogger())
	assert.NoError(t, lg.Close())
}
