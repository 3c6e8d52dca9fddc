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
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Options configures a value registered with Configure.
type Options[T any] struct {
	// Aliases are alternate keys that resolve to the same value.
	Aliases []string
	// FlagName is the name of the pflag bound by BindFlags. Empty means the
	// value has no flag.
	FlagName string
	// EnvVars are environment variables consulted, in order, for the value.
	EnvVars []string
	// Default is returned when no other source sets the value.
	Default T
	// Dynamic values live in the dynamic registry and follow config file
	// edits after LoadConfig.
	Dynamic bool
	// GetFunc builds the typed getter for the key. When nil, a getter is
	// picked from T.
	GetFunc func(v *viper.Viper) func(key string) T
}

// Value is a typed configuration value backed by a Registry.
type Value[T any] interface {
	Registerable
	// Get returns the current value.
	Get() T
	// Set overrides the value in memory.
	Set(v T)
	// Default returns the registered default.
	Default() T
}

// Registerable is the type-erased part of a Value used by BindFlags.
type Registerable interface {
	// Key returns the viper key of the value.
	Key() string
	// Flag returns the flag this value is bound to, looked up in fs.
	Flag(fs *pflag.FlagSet) (*pflag.Flag, error)
	bindFlag(f *pflag.Flag) error
}

// Configure registers a value under key in reg and returns its handle.
func Configure[T any](reg *Registry, key string, opts Options[T]) Value[T] {
	getFunc := opts.GetFunc
	if getFunc == nil {
		getFunc = defaultGetFunc[T]()
	}

	base := baseValue[T]{
		key:        key,
		flagName:   opts.FlagName,
		defaultVal: opts.Default,
	}

	envKeys := append([]string{key}, opts.EnvVars...)
	if opts.Dynamic {
		reg.dynamicKeys = append(reg.dynamicKeys, key)
		reg.dynamic.SetDefault(key, opts.Default)
		if len(opts.EnvVars) > 0 {
			_ = reg.dynamic.BindEnv(envKeys...)
		}
		d := &dynamicValue[T]{baseValue: base, sv: reg.dynamic}
		reg.dynamic.read(func(v *viper.Viper) {
			for _, alias := range opts.Aliases {
				v.RegisterAlias(alias, key)
			}
			d.get = getFunc(v)
		})
		return d
	}

	reg.static.SetDefault(key, opts.Default)
	if len(opts.EnvVars) > 0 {
		_ = reg.static.BindEnv(envKeys...)
	}
	for _, alias := range opts.Aliases {
		reg.static.RegisterAlias(alias, key)
	}
	return &staticValue[T]{baseValue: base, v: reg.static, get: getFunc(reg.static)}
}

// BindFlags binds each value to the flag of the same configured name in fs.
// Values without a flag name, or whose flag is not defined in fs, are skipped.
func BindFlags(fs *pflag.FlagSet, values ...Registerable) {
	for _, val := range values {
		f, err := val.Flag(fs)
		if err != nil || f == nil {
			continue
		}
		if err := val.bindFlag(f); err != nil {
			slog.Warn("failed to bind flag", "key", val.Key(), "flag", f.Name, "err", err)
		}
	}
}

type baseValue[T any] struct {
	key        string
	flagName   string
	defaultVal T
}

func (val *baseValue[T]) Key() string { return val.key }
func (val *baseValue[T]) Default() T  { return val.defaultVal }

func (val *baseValue[T]) Flag(fs *pflag.FlagSet) (*pflag.Flag, error) {
	if val.flagName == "" {
		return nil, nil
	}
	f := fs.Lookup(val.flagName)
	if f == nil {
		return nil, fmt.Errorf("flag %s not defined", val.flagName)
	}
	return f, nil
}

type staticValue[T any] struct {
	baseValue[T]
	v   *viper.Viper
	get func(key string) T
}

func (val *staticValue[T]) Get() T                       { return val.get(val.key) }
func (val *staticValue[T]) Set(v T)                      { val.v.Set(val.key, v) }
func (val *staticValue[T]) bindFlag(f *pflag.Flag) error { return val.v.BindPFlag(val.key, f) }

type dynamicValue[T any] struct {
	baseValue[T]
	sv  *syncViper
	get func(key string) T
}

func (val *dynamicValue[T]) Get() (v T) {
	val.sv.read(func(*viper.Viper) {
		v = val.get(val.key)
	})
	return v
}

func (val *dynamicValue[T]) Set(v T)                      { val.sv.Set(val.key, v) }
func (val *dynamicValue[T]) bindFlag(f *pflag.Flag) error { return val.sv.BindPFlag(val.key, f) }

// defaultGetFunc picks the viper getter matching T. Types viper has no
// getter for are decoded with UnmarshalKey.
func defaultGetFunc[T any]() func(v *viper.Viper) func(key string) T {
	var zero T
	var getter any
	switch any(zero).(type) {
	case string:
		getter = func(v *viper.Viper) func(string) string { return v.GetString }
	case bool:
		getter = func(v *viper.Viper) func(string) bool { return v.GetBool }
	case int:
		getter = func(v *viper.Viper) func(string) int { return v.GetInt }
	case int64:
		getter = func(v *viper.Viper) func(string) int64 { return v.GetInt64 }
	case float64:
		getter = func(v *viper.Viper) func(string) float64 { return v.GetFloat64 }
	case time.Duration:
		getter = func(v *viper.Viper) func(string) time.Duration { return v.GetDuration }
	case []string:
		getter = func(v *viper.Viper) func(string) []string { return v.GetStringSlice }
	default:
		return func(v *viper.Viper) func(string) T {
			return func(key string) (out T) {
				if err := v.UnmarshalKey(key, &out); err != nil {
					slog.Warn("failed to unmarshal config value", "key", key, "err", err)
				}
				return out
			}
		}
	}
	return getter.(func(v *viper.Viper) func(string) T)
}
