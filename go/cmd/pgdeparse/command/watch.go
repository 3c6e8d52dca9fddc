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
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/multigres/pgdeparse/go/mterrors"
)

// watchFile calls onChange after path is written, once per burst of writes
// that are no further apart than debounce. It returns when ctx is done.
func watchFile(ctx context.Context, path string, debounce func() time.Duration, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mterrors.DP03001(err.Error())
	}
	defer watcher.Close()

	// Editors replace files on save, so watch the directory instead of the file.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return mterrors.DP03001(err.Error())
	}

	target := filepath.Clean(path)
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce())
			} else {
				timer.Reset(debounce())
			}
			fire = timer.C
		case <-fire:
			fire = nil
			onChange()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("file watcher error", "file", path, "err", err)
		}
	}
}
