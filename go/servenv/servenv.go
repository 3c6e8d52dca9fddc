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

// Package servenv holds the process environment shared by pgdeparse
// commands: configuration loading, logging, the pid file and the gRPC
// server lifecycle.
package servenv

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/multigres/pgdeparse/go/viperutil"
)

// ServEnv bundles the configuration and lifecycle hooks of one command.
type ServEnv struct {
	reg    *viperutil.Registry
	config *viperutil.ViperConfig
	logger *Logger

	pidFile        viperutil.Value[string]
	lameduckPeriod viperutil.Value[time.Duration]

	mu           sync.Mutex
	inited       bool
	stopWatching context.CancelFunc
	onCloseHooks []func()
}

// NewServEnv registers the environment values in reg.
func NewServEnv(reg *viperutil.Registry) *ServEnv {
	return &ServEnv{
		reg:    reg,
		config: viperutil.NewViperConfig(reg),
		logger: NewLogger(reg),
		pidFile: viperutil.Configure(reg, "pid-file", viperutil.Options[string]{
			FlagName: "pid-file",
		}),
		lameduckPeriod: viperutil.Configure(reg, "lameduck-period", viperutil.Options[time.Duration]{
			Default:  50 * time.Millisecond,
			FlagName: "lameduck-period",
		}),
	}
}

// Registry returns the configuration registry of the environment.
func (sv *ServEnv) Registry() *viperutil.Registry {
	return sv.reg
}

// Logger returns the logging configuration of the environment.
func (sv *ServEnv) Logger() *Logger {
	return sv.logger
}

// RegisterFlags installs the config, logging and process flags on fs.
func (sv *ServEnv) RegisterFlags(fs *pflag.FlagSet) {
	sv.config.RegisterFlags(fs)
	sv.logger.RegisterFlags(fs)
	fs.String("pid-file", sv.pidFile.Default(), "If set, the process will write its pid to the named file, and delete it on graceful shutdown.")
	fs.Duration("lameduck-period", sv.lameduckPeriod.Default(), "keep running at least this long after SIGTERM before stopping")
	viperutil.BindFlags(fs, sv.pidFile, sv.lameduckPeriod)
}

// CobraPreRunE loads the config file and sets up logging. It is meant to be
// used as the PersistentPreRunE of a root command.
func (sv *ServEnv) CobraPreRunE(cmd *cobra.Command, _ []string) error {
	return sv.Init(cmd.Context())
}

// Init loads the config file, starts watching it for changes and installs
// the configured logger. Calling Init more than once is a no-op.
func (sv *ServEnv) Init(ctx context.Context) error {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	if sv.inited {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cancel, err := sv.config.LoadConfig(ctx, sv.reg)
	if err != nil {
		return err
	}
	sv.stopWatching = cancel
	sv.logger.SetupLogging()
	sv.inited = true

	slog.Debug("environment initialized", "config_file", sv.reg.ConfigFileUsed())
	return nil
}

// OnClose registers f to run when Close is called. Hooks run in reverse
// order of registration.
func (sv *ServEnv) OnClose(f func()) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	sv.onCloseHooks = append(sv.onCloseHooks, f)
}

// Close runs the OnClose hooks, stops the config watcher and closes the log
// output.
func (sv *ServEnv) Close() error {
	sv.mu.Lock()
	hooks := sv.onCloseHooks
	sv.onCloseHooks = nil
	stop := sv.stopWatching
	sv.stopWatching = nil
	sv.mu.Unlock()

	for i := len(hooks) - 1; i >= 0; i-- {
		hooks[i]()
	}
	if stop != nil {
		stop()
	}
	return sv.logger.Close()
}
