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

package servenv

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// writePidFile creates the pid file, if configured, and registers its
// removal on Close. An existing file is an error.
func (sv *ServEnv) writePidFile() error {
	pidFile := sv.pidFile.Get()
	if pidFile == "" {
		return nil
	}

	file, err := os.OpenFile(pidFile, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o666)
	if err != nil {
		return fmt.Errorf("unable to create pid file %q: %w", pidFile, err)
	}
	fmt.Fprintln(file, os.Getpid())
	_ = file.Close()

	sv.OnClose(func() {
		if err := os.Remove(pidFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			slog.Error(fmt.Sprintf("Unable to remove pid file '%s': %v", pidFile, err))
		}
	})
	return nil
}
