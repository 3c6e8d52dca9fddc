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
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// syncViper is a threadsafe wrapper around two vipers. The disk viper is
// owned by the watch goroutine and reads the config file; the live viper
// serves reads and receives the disk settings as its config layer, so flags
// and environment variables keep their precedence over file edits.
type syncViper struct {
	mu   sync.RWMutex
	live *viper.Viper
	disk *viper.Viper

	watching bool
	subs     []chan<- struct{}
}

func newSyncViper() *syncViper {
	return &syncViper{
		live: viper.New(),
		disk: viper.New(),
	}
}

func (sv *syncViper) SetDefault(key string, value any) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	sv.live.SetDefault(key, value)
}

func (sv *syncViper) BindEnv(keys ...string) error {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	return sv.live.BindEnv(keys...)
}

func (sv *syncViper) BindPFlag(key string, flag *pflag.Flag) error {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	return sv.live.BindPFlag(key, flag)
}

func (sv *syncViper) Set(key string, value any) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	sv.live.Set(key, value)
}

// read runs f against the live viper while holding the read lock.
func (sv *syncViper) read(f func(v *viper.Viper)) {
	sv.mu.RLock()
	defer sv.mu.RUnlock()
	f(sv.live)
}

// Notify adds a subscription that is signalled after each reload.
// It panics once Watch has started.
func (sv *syncViper) Notify(ch chan<- struct{}) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	if sv.watching {
		panic("cannot add notification subscribers after watching has started")
	}
	sv.subs = append(sv.subs, ch)
}

// Watch loads the config file used by static into the live viper and
// reloads it on every write until the returned cancel function is called.
// The cancel function blocks until the watch goroutine has exited.
func (sv *syncViper) Watch(ctx context.Context, static *viper.Viper) (context.CancelFunc, error) {
	file := static.ConfigFileUsed()
	if file == "" {
		return func() {}, nil
	}

	sv.mu.Lock()
	if sv.watching {
		sv.mu.Unlock()
		return nil, errors.New("config is already being watched")
	}
	sv.watching = true
	sv.mu.Unlock()

	sv.disk.SetConfigFile(file)
	if err := sv.load(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Editors replace files on save, so watch the directory instead of the file.
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer watcher.Close()

		target := filepath.Clean(file)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := sv.load(); err != nil {
					slog.Warn("failed to reload config", "file", file, "err", err)
					continue
				}
				sv.notify()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("config watcher error", "file", file, "err", err)
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}, nil
}

func (sv *syncViper) load() error {
	if err := sv.disk.ReadInConfig(); err != nil {
		return err
	}
	settings := sv.disk.AllSettings()

	sv.mu.Lock()
	defer sv.mu.Unlock()
	return sv.live.MergeConfigMap(settings)
}

func (sv *syncViper) notify() {
	sv.mu.RLock()
	defer sv.mu.RUnlock()
	for _, ch := range sv.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
