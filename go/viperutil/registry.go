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

package viperutil

import (
	"github.com/spf13/viper"
)

// Registry holds the static and dynamic viper instances for configuration.
// Each command builds its own registry, so tests and subcommands never share
// configuration state.
//
// Static registry values never change after LoadConfig is called.
// Dynamic registry values follow edits to the loaded config file.
type Registry struct {
	// static is the registry for static config variables. These variables will
	// never be affected by a watched config, and maintain their original
	// values for the lifetime of the process.
	static *viper.Viper

	// dynamic is the registry for dynamic config variables. If a config file is
	// loaded, it is watched and variables registered here pick up changes to
	// that file for the lifetime of the process.
	dynamic *syncViper

	// dynamicKeys are the keys registered with Dynamic set. The dynamic viper
	// also holds every other key of a reloaded config file.
	dynamicKeys []string
}

// NewRegistry creates a new isolated configuration registry.
//
// Example usage:
//
//	reg := viperutil.NewRegistry()
//	workers := viperutil.Configure(reg, "workers", viperutil.Options[int]{
//	    Default:  1,
//	    FlagName: "workers",
//	})
func NewRegistry() *Registry {
	return &Registry{
		static:  viper.New(),
		dynamic: newSyncViper(),
	}
}

// Combined returns a viper instance combining the static and dynamic registries.
// Only keys registered as dynamic are taken from the dynamic registry.
func (reg *Registry) Combined() *viper.Viper {
	v := viper.New()
	_ = v.MergeConfigMap(reg.static.AllSettings())
	reg.dynamic.read(func(dv *viper.Viper) {
		for _, key := range reg.dynamicKeys {
			v.Set(key, dv.Get(key))
		}
	})

	v.SetConfigFile(reg.static.ConfigFileUsed())
	return v
}

// ConfigFileUsed returns the path of the loaded config file, if any.
func (reg *Registry) ConfigFileUsed() string {
	return reg.static.ConfigFileUsed()
}
