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
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/multigres/pgdeparse/go/viperutil"

	"github.com/spf13/pflag"
)

// Logger owns the logging configuration of a command and the *slog.Logger
// built from it.
type Logger struct {
	// Logging configuration flags
	logLevel  viperutil.Value[string]
	logFormat viperutil.Value[string]
	logOutput viperutil.Value[string]

	// Internal state
	loggerOnce sync.Once
	logger     *slog.Logger
	loggerMu   sync.Mutex
	closer     io.Closer

	// Hooks for customizing logging behavior
	loggingSetupHooks []func(*slog.Logger)
	loggingHooksMu    sync.Mutex
}

func NewLogger(reg *viperutil.Registry) *Logger {
	return &Logger{
		logLevel: viperutil.Configure(reg, "log-level", viperutil.Options[string]{
			Default:  "info",
			FlagName: "log-level",
			EnvVars:  []string{viperutil.EnvPrefix + "LOG_LEVEL"},
		}),
		logFormat: viperutil.Configure(reg, "log-format", viperutil.Options[string]{
			Default:  "text",
			FlagName: "log-format",
			EnvVars:  []string{viperutil.EnvPrefix + "LOG_FORMAT"},
		}),
		logOutput: viperutil.Configure(reg, "log-output", viperutil.Options[string]{
			Default:  "stderr",
			FlagName: "log-output",
			EnvVars:  []string{viperutil.EnvPrefix + "LOG_OUTPUT"},
		}),
	}
}

// RegisterFlags registers logging-related command line flags.
// This must be called before ParseFlags if using the logging system.
func (lg *Logger) RegisterFlags(fs *pflag.FlagSet) {
	fs.String("log-level", lg.logLevel.Default(), "Log level (debug, info, warn, error)")
	fs.String("log-format", lg.logFormat.Default(), "Log format (json, text)")
	fs.String("log-output", lg.logOutput.Default(), "Log output (stdout, stderr, or file path)")
	viperutil.BindFlags(fs, lg.logLevel, lg.logFormat, lg.logOutput)
}

// OnLoggingSetup registers a callback function to be called after the logger is created.
// This allows applications to customize the logger behavior.
func (lg *Logger) OnLoggingSetup(f func(*slog.Logger)) {
	lg.loggingHooksMu.Lock()
	defer lg.loggingHooksMu.Unlock()
	lg.loggingSetupHooks = append(lg.loggingSetupHooks, f)
}

// ParseLevel maps a level name to a slog level. Unknown names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewHandler builds a slog handler writing to output in the given format.
// Unknown formats fall back to JSON.
func NewHandler(output io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(format) {
	case "text":
		return slog.NewTextHandler(output, opts)
	default:
		return slog.NewJSONHandler(output, opts)
	}
}

// SetupLogging initializes the logger based on the configured flags.
// This should be called after flags are parsed but before any logging occurs.
func (lg *Logger) SetupLogging() {
	lg.loggerOnce.Do(func() {
		levelStr := lg.logLevel.Get()
		if levelStr == "" {
			levelStr = "info"
		}

		// Determine output writer with fallback to stderr
		var output io.Writer
		outputStr := lg.logOutput.Get()
		if outputStr == "" {
			outputStr = "stderr"
		}
		switch strings.ToLower(outputStr) {
		case "stdout":
			output = os.Stdout
		case "stderr":
			output = os.Stderr
		default:
			// Treat as file path
			file, err := os.OpenFile(outputStr, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				output = os.Stderr
			} else {
				output = file
				lg.closer = file
			}
		}

		formatStr := lg.logFormat.Get()
		if formatStr == "" {
			formatStr = "text"
		}

		newLogger := slog.New(NewHandler(output, formatStr, ParseLevel(levelStr)))
		slog.SetDefault(newLogger)

		lg.loggerMu.Lock()
		lg.logger = newLogger
		lg.loggerMu.Unlock()

		lg.fireLoggingSetupHooks(newLogger)

		newLogger.Debug("logging initialized",
			"level", levelStr,
			"format", formatStr,
			"output", outputStr,
		)
	})
}

// Close releases the log file opened by SetupLogging, if any.
func (lg *Logger) Close() error {
	lg.loggerMu.Lock()
	defer lg.loggerMu.Unlock()
	if lg.closer == nil {
		return nil
	}
	err := lg.closer.Close()
	lg.closer = nil
	return err
}

// GetLogger returns the configured logger instance.
// SetupLogging must be called before this function.
func (lg *Logger) GetLogger() *slog.Logger {
	lg.loggerMu.Lock()
	defer lg.loggerMu.Unlock()
	if lg.logger == nil {
		// Return default slog logger if our logger hasn't been set up yet
		return slog.Default()
	}
	return lg.logger
}

// fireLoggingSetupHooks calls all registered logging setup hooks.
func (lg *Logger) fireLoggingSetupHooks(l *slog.Logger) {
	lg.loggingHooksMu.Lock()
	hooks := make([]func(*slog.Logger), len(lg.loggingSetupHooks))
	copy(hooks, lg.loggingSetupHooks)
	lg.loggingHooksMu.Unlock()

	for _, hook := range hooks {
		hook(l)
	}
}

// GetLogLevel returns the current log level setting.
func (lg *Logger) GetLogLevel() string {
	return lg.logLevel.Get()
}

// GetLogFormat returns the current log format setting.
func (lg *Logger) GetLogFormat() string {
	return lg.logFormat.Get()
}

// GetLogOutput returns the current log output setting.
func (lg *Logger) GetLogOutput() string {
	return lg.logOutput.Get()
}
