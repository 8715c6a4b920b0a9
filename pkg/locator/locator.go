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

// Package locator finds the properties file on a ranked search path.
package locator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// FileLocation is the outcome of a search.  If nothing was found, Found()
// returns false and Properties is nil; a file that exists but is empty has
// non-nil, empty Properties.
type FileLocation struct {
	// Dir and Name are the search path entry and file name as requested.
	Dir  string
	Name string
	// Path is the absolute path of the file that was loaded.
	Path string
	// Fallback is true if Name is the default file name.
	Fallback   bool
	Properties Properties
	// Searched lists every path that was probed, in order.
	Searched []string
}

func (l *FileLocation) Found() bool {
	return l != nil && l.Properties != nil
}

func (l *FileLocation) String() string {
	if !l.Found() {
		return fmt.Sprintf("<not found; searched %v>", l.Searched)
	}
	return fmt.Sprintf("%v (dir %q, name %q)", l.Path, l.Dir, l.Name)
}

// FileAccessError means that a file exists on the search path but could not
// be read or parsed.  It is always fatal: a partially-read configuration is
// not safe to use.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("failed to load properties file %v: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

type Option func(*Locator)

func WithExpander(e DirExpander) Option {
	return func(l *Locator) {
		l.expander = e
	}
}

type Locator struct {
	expander DirExpander
}

func New(opts ...Option) *Locator {
	l := &Locator{
		expander: NewWorkingDirExpander(),
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Locate searches dirs for primary and, failing that, for fallback.  Within
// one pass, the last directory that holds the file wins, so more specific
// directories should be listed later.  Not finding a file is not an error.
func (l *Locator) Locate(dirs []string, primary, fallback string) (*FileLocation, error) {
	loc := &FileLocation{}
	if err := l.search(loc, dirs, primary); err != nil {
		return nil, err
	}
	if !loc.Found() && fallback != "" && fallback != primary {
		log.WithFields(log.Fields{
			"primary":  primary,
			"fallback": fallback,
		}).Debug("Primary properties file not found, trying fallback name")
		if err := l.search(loc, dirs, fallback); err != nil {
			return nil, err
		}
		loc.Fallback = loc.Found()
	}
	if loc.Found() {
		log.WithField("location", loc).Info("Found properties file")
	} else {
		log.WithField("searched", loc.Searched).Info("No properties file found")
	}
	return loc, nil
}

func (l *Locator) search(loc *FileLocation, dirs []string, name string) error {
	if name == "" {
		return nil
	}
	for _, dir := range dirs {
		logCxt := log.WithFields(log.Fields{"dir": dir, "name": name})
		expanded, err := l.expander.Expand(dir)
		if err != nil {
			logCxt.WithError(err).Warn("Skipping search path entry that cannot be expanded")
			continue
		}
		path, err := filepath.Abs(filepath.Join(expanded, name))
		if err != nil {
			logCxt.WithError(err).Warn("Skipping search path entry with no absolute form")
			continue
		}
		loc.Searched = append(loc.Searched, path)

		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			logCxt.WithField("path", path).Debug("No properties file here")
			continue
		} else if err != nil {
			return &FileAccessError{Path: path, Err: errors.Wrap(err, "failed to stat file")}
		}
		if info.IsDir() {
			logCxt.WithField("path", path).Warn("Ignoring directory with properties file name")
			continue
		}

		props, err := LoadPropertiesFile(path)
		if err != nil {
			return &FileAccessError{Path: path, Err: err}
		}
		if loc.Found() {
			logCxt.WithFields(log.Fields{
				"path":       path,
				"overridden": loc.Path,
			}).Info("Later search path entry overrides earlier properties file")
		}
		loc.Dir = dir
		loc.Name = name
		loc.Path = path
		loc.Properties = props
	}
	return nil
}
