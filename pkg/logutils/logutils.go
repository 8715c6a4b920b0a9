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

// Package logutils holds the logrus formatter and hooks used by andhow and
// by the binaries that embed it.
package logutils

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"sort"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/mipearson/rfw"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

const (
	// EnvPrefix is the prefix of the environment variables read by
	// LoadSettings, for example ANDHOW_LOG_SEVERITY_SCREEN.
	EnvPrefix = "andhow"

	// fieldFileName is a reserved field name used to pass the filename from the ContextHook to our Formatter.
	fieldFileName = "__file__"
	// fieldLineNumber is a reserved field name used to pass the line number from the ContextHook to our Formatter.
	fieldLineNumber = "__line__"
)

var counterLogErrors = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "andhow_log_errors",
	Help: "Number of errors encountered while logging.",
})

func init() {
	prometheus.MustRegister(counterLogErrors)
}

// Settings control where logs go.  They are read from the environment
// because logging has to be configured before the configuration itself is
// resolved.
type Settings struct {
	LogSeverityScreen string `default:"error" split_words:"true"`
	LogSeverityFile   string `default:"info" split_words:"true"`
	LogFilePath       string `default:"" split_words:"true"`
}

// LoadSettings reads Settings from ANDHOW_* environment variables.
func LoadSettings() (*Settings, error) {
	s := &Settings{}
	if err := envconfig.Process(EnvPrefix, s); err != nil {
		return nil, errors.Wrap(err, "failed to read logging settings from environment")
	}
	return s, nil
}

// FilterLevels returns all the logrus.Level values <= maxLevel.
func FilterLevels(maxLevel log.Level) []log.Level {
	levels := []log.Level{}
	for _, l := range log.AllLevels {
		if l <= maxLevel {
			levels = append(levels, l)
		}
	}
	return levels
}

// SafeParseLogLevel parses a string version of a logrus log level, defaulting to logrus.PanicLevel on failure.
func SafeParseLogLevel(logLevel string) log.Level {
	defaultedLevel := log.PanicLevel
	if logLevel != "" {
		parsedLevel, err := log.ParseLevel(logLevel)
		if err == nil {
			defaultedLevel = parsedLevel
		} else {
			log.WithField("raw level", logLevel).Warn(
				"Invalid log level, defaulting to panic")
		}
	}
	return defaultedLevel
}

// ConfigureEarlyLogging installs our formatter and hooks on the standard
// logger and routes output according to the ANDHOW_* environment variables.
// The returned function closes the log file, if one was opened.
func ConfigureEarlyLogging() (func(), error) {
	s, err := LoadSettings()
	if err != nil {
		// Still install the formatter so that the caller's error log looks right.
		log.SetFormatter(&Formatter{})
		return func() {}, err
	}
	return ConfigureLogger(log.StandardLogger(), s)
}

// ConfigureLogger attaches a screen destination (stderr) and, if a path is
// given, a rotation-aware file destination to the logger.  Each destination
// has its own level; the logger's own level is the more verbose of the two.
func ConfigureLogger(logger *log.Logger, s *Settings) (func(), error) {
	logger.SetFormatter(&Formatter{})
	logger.AddHook(&ContextHook{})

	screenLevel := SafeParseLogLevel(s.LogSeverityScreen)
	mostVerbose := screenLevel
	logger.AddHook(&StreamHook{
		levels:    FilterLevels(screenLevel),
		writer:    os.Stderr,
		formatter: logger.Formatter,
	})

	closer := func() {}
	if s.LogFilePath != "" && s.LogSeverityFile != "" {
		if err := os.MkdirAll(path.Dir(s.LogFilePath), 0755); err != nil {
			return closer, errors.Wrapf(err, "failed to create log file directory for %v", s.LogFilePath)
		}
		w, err := rfw.Open(s.LogFilePath, 0644)
		if err != nil {
			return closer, errors.Wrapf(err, "failed to open log file %v", s.LogFilePath)
		}
		fileLevel := SafeParseLogLevel(s.LogSeverityFile)
		if fileLevel > mostVerbose {
			mostVerbose = fileLevel
		}
		logger.AddHook(&StreamHook{
			levels:    FilterLevels(fileLevel),
			writer:    w,
			formatter: logger.Formatter,
		})
		closer = func() {
			if err := w.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to close log file: %v\n", err)
			}
		}
	}

	// Disable logrus' default output, which only supports a single
	// destination.  The hooks above fan out to each destination.
	logger.SetOutput(&NullWriter{})
	logger.SetLevel(mostVerbose)
	logger.WithFields(log.Fields{
		"screenLevel": screenLevel,
		"logFile":     s.LogFilePath,
	}).Info("Logging configured")
	return closer, nil
}

// StreamHook formats each log at one of its levels and writes it to a
// stream.
type StreamHook struct {
	levels    []log.Level
	writer    io.Writer
	formatter log.Formatter
}

func (h *StreamHook) Levels() []log.Level {
	return h.levels
}

func (h *StreamHook) Fire(entry *log.Entry) error {
	// The entry's buffer is shared with the logger's own formatting pass so
	// format into a private one.
	e := *entry
	e.Buffer = nil
	b, err := h.formatter.Format(&e)
	if err == nil {
		_, err = h.writer.Write(b)
	}
	if err != nil {
		counterLogErrors.Inc()
		fmt.Fprintf(os.Stderr, "Failed to write to log: %v\n", err)
	}
	return nil
}

// Formatter is our custom log formatter designed to balance ease of machine processing
// with human readability.  Logs include:
//   - A sortable millisecond timestamp, for scanning and correlating logs
//   - The log level, near the beginning of the line, to aid in visual scanning
//   - The PID of the process to make it easier to spot log discontinuities
//   - The file name and line number, as essential context
//   - The message!
//   - Log fields appended in sorted order
//
// Example:
//
//	2017-01-05 09:17:48.238 [INFO][85386] locator.go 111: Found properties file location="/etc/app/config.properties"
type Formatter struct{}

func (f *Formatter) Format(entry *log.Entry) ([]byte, error) {
	stamp := entry.Time.Format("2006-01-02 15:04:05.000")
	levelStr := strings.ToUpper(entry.Level.String())
	pid := os.Getpid()
	fileName := entry.Data[fieldFileName]
	lineNo := entry.Data[fieldLineNumber]
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}
	fmt.Fprintf(b, "%s [%s][%d] %v %v: %v", stamp, levelStr, pid, fileName, lineNo, entry.Message)
	appendKVsAndNewLine(b, entry)
	return b.Bytes(), nil
}

// appendKVsAndNewLine writes the KV pairs attached to the entry to the end of the buffer, then
// finishes it with a newline.
func appendKVsAndNewLine(b *bytes.Buffer, entry *log.Entry) {
	// Sort the keys for consistent output.
	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if key == fieldFileName || key == fieldLineNumber {
			continue
		}
		value := entry.Data[key]
		var stringifiedValue string
		if err, ok := value.(error); ok {
			stringifiedValue = err.Error()
		} else if stringer, ok := value.(fmt.Stringer); ok {
			// Trust the value's String() method.
			stringifiedValue = stringer.String()
		} else {
			// No string method, use %#v to get a more thorough dump.
			fmt.Fprintf(b, " %v=%#v", key, value)
			continue
		}
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(stringifiedValue)
	}
	b.WriteByte('\n')
}

// NullWriter is a dummy writer that always succeeds and does nothing.
type NullWriter struct{}

func (w *NullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

// ContextHook records the file and line number of the logging call site.
type ContextHook struct{}

func (hook ContextHook) Levels() []log.Level {
	return log.AllLevels
}

func (hook ContextHook) Fire(entry *log.Entry) error {
	// Use skip=0 and let CallersFrames() deal with any inlined frames; skipping
	// straight to the expected frame can skip too far.
	pcs := make([]uintptr, 20)
	if numEntries := runtime.Callers(0, pcs); numEntries > 0 {
		pcs = pcs[:numEntries]
		frames := runtime.CallersFrames(pcs)
		for {
			frame, more := frames.Next()
			if !shouldSkipFrame(frame) {
				entry.Data[fieldFileName] = path.Base(frame.File)
				entry.Data[fieldLineNumber] = frame.Line
				break
			}
			if !more {
				entry.Data[fieldFileName] = "filename-lookup-failed"
				entry.Data[fieldLineNumber] = -1
				break
			}
		}
	} else {
		entry.Data[fieldFileName] = "filename-lookup-failed"
		entry.Data[fieldLineNumber] = -2
	}
	return nil
}

// shouldSkipFrame returns true if the given frame belongs to the logging
// library, to this package or to the runtime.  This is on the critical path
// for every log so it sticks to strings.HasSuffix().
func shouldSkipFrame(frame runtime.Frame) bool {
	if strings.HasSuffix(frame.File, "runtime/extern.go") {
		return true
	}
	if strings.HasSuffix(frame.File, "/hooks.go") ||
		strings.HasSuffix(frame.File, "/entry.go") ||
		strings.HasSuffix(frame.File, "/logger.go") ||
		strings.HasSuffix(frame.File, "/exported.go") {
		if strings.Contains(frame.File, "/logrus") {
			return true
		}
	}
	return strings.HasSuffix(frame.File, "/pkg/logutils/logutils.go")
}
