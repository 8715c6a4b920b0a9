// Copyright (c) 2026 Tigera, Inc. All rights reserved.
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

package locator

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kardianos/osext"
	"github.com/pkg/errors"
)

// DirExpander turns a search path entry, as the user wrote it, into a
// concrete directory.
type DirExpander interface {
	Expand(dir string) (string, error)
}

// HomeExpander resolves "" (and relative entries) against a base directory
// and a leading "~/" against the user's home directory.
type HomeExpander struct {
	BaseDir func() (string, error)
	HomeDir func() (string, error)
}

// NewWorkingDirExpander returns an expander rooted at the process's working
// directory.
func NewWorkingDirExpander() *HomeExpander {
	return &HomeExpander{BaseDir: os.Getwd, HomeDir: os.UserHomeDir}
}

// NewExecutableDirExpander returns an expander rooted at the directory that
// holds the running executable.
func NewExecutableDirExpander() *HomeExpander {
	return &HomeExpander{BaseDir: osext.ExecutableFolder, HomeDir: os.UserHomeDir}
}

func (e *HomeExpander) Expand(dir string) (string, error) {
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := e.HomeDir()
		if err != nil {
			return "", errors.Wrap(err, "failed to determine home directory")
		}
		return filepath.Join(home, strings.TrimPrefix(dir, "~")), nil
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir), nil
	}
	base, err := e.BaseDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to determine base directory")
	}
	return filepath.Join(base, dir), nil
}
