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

// Package debug renders the effective configuration of a registry.
package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/multigres/pgdeparse/go/viperutil"
)

// Snapshot is the effective configuration of a command.
type Snapshot struct {
	ConfigFile       string            `json:"config_file,omitempty" yaml:"config_file,omitempty"`
	CommandLineFlags map[string]string `json:"command_line_flags" yaml:"command_line_flags"`
	Config           map[string]any    `json:"viper_config" yaml:"viper_config"`
}

// Collect builds a snapshot of the combined registry and the flags that were
// set explicitly in fs.
func Collect(reg *viperutil.Registry, fs *pflag.FlagSet) Snapshot {
	v := reg.Combined()
	snap := Snapshot{
		ConfigFile:       reg.ConfigFileUsed(),
		CommandLineFlags: make(map[string]string),
		Config:           make(map[string]any),
	}
	if fs != nil {
		fs.VisitAll(func(flag *pflag.Flag) {
			if flag.Changed {
				snap.CommandLineFlags[flag.Name] = flag.Value.String()
			}
		})
	}
	for _, k := range v.AllKeys() {
		value := v.Get(k)
		if value == nil {
			continue
		}
		snap.Config[k] = value
	}
	return snap
}

// Write renders the snapshot of reg to w. Format is "yaml" (the default) or
// "json".
func Write(w io.Writer, reg *viperutil.Registry, fs *pflag.FlagSet, format string) error {
	snap := Collect(reg, fs)
	switch strings.ToLower(format) {
	case "", "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(snap); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (expected yaml or json)", format)
	}
}
