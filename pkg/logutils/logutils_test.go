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

package logutils_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	log "github.com/sirupsen/logrus"

	. "github.com/projectcalico/andhow/pkg/logutils"
)

func theTime() time.Time {
	return time.Date(2017, 3, 15, 11, 22, 33, 123000000, time.UTC)
}

type stringer struct{}

func (stringer) String() string {
	return "A string"
}

var _ = Describe("Logutils", func() {
	var savedWriter io.Writer
	var buf *bytes.Buffer
	BeforeEach(func() {
		savedWriter = log.StandardLogger().Out
		buf = &bytes.Buffer{}
		log.StandardLogger().Out = buf
	})
	AfterEach(func() {
		log.StandardLogger().Out = savedWriter
	})

	It("should add correct file when invoked via log.Info", func() {
		log.Info("Test log")
		Expect(buf.String()).To(ContainSubstring("logutils_test.go"))
	})
	It("should add correct file when invoked via log.WithField(...).Info", func() {
		log.WithField("foo", "bar").Info("Test log")
		Expect(buf.String()).To(ContainSubstring("logutils_test.go"))
		Expect(buf.String()).To(ContainSubstring(`foo="bar"`))
	})
})

var _ = DescribeTable("Formatter",
	func(entry log.Entry, expectedLog string) {
		f := &Formatter{}
		out, err := f.Format(&entry)
		Expect(err).NotTo(HaveOccurred())
		expectedLog = strings.Replace(expectedLog, "<PID>", fmt.Sprintf("%v", os.Getpid()), 1)
		Expect(string(out)).To(Equal(expectedLog))
	},
	Entry("Empty", log.Entry{},
		"0001-01-01 00:00:00.000 [PANIC][<PID>] <nil> <nil>: \n"),
	Entry("Basic",
		log.Entry{
			Level: log.InfoLevel,
			Time:  theTime(),
			Data: log.Fields{
				"__file__": "foo.go",
				"__line__": 123,
			},
			Message: "The answer is 42.",
		},
		"2017-03-15 11:22:33.123 [INFO][<PID>] foo.go 123: The answer is 42.\n",
	),
	Entry("With fields",
		log.Entry{
			Level: log.WarnLevel,
			Time:  theTime(),
			Data: log.Fields{
				"__file__": "foo.go",
				"__line__": 123,
				"a":        10,
				"b":        "foobar",
				"c":        theTime(),
				"err":      errors.New("an error"),
				"str":      stringer{},
			},
			Message: "The answer is 42.",
		},
		"2017-03-15 11:22:33.123 [WARNING][<PID>] foo.go 123: The answer is 42. a=10 b=\"foobar\" "+
			"c=2017-03-15 11:22:33.123 +0000 UTC err=an error str=A string\n",
	),
)

var _ = Describe("Formatter without fields", func() {
	It("should end the line after the message", func() {
		f := &Formatter{}
		out, err := f.Format(&log.Entry{
			Level:   log.ErrorLevel,
			Time:    theTime(),
			Data:    log.Fields{"__file__": "foo.go", "__line__": 7},
			Message: "Oops",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(HaveSuffix("[ERROR][" + fmt.Sprint(os.Getpid()) + "] foo.go 7: Oops\n"))
	})
})

var _ = DescribeTable("SafeParseLogLevel",
	func(raw string, expected log.Level) {
		Expect(SafeParseLogLevel(raw)).To(Equal(expected))
	},
	Entry("empty", "", log.PanicLevel),
	Entry("debug", "debug", log.DebugLevel),
	Entry("mixed case", "Info", log.InfoLevel),
	Entry("warning", "warning", log.WarnLevel),
	Entry("junk", "loud", log.PanicLevel),
	Entry("none", "none", log.PanicLevel),
)

var _ = Describe("FilterLevels", func() {
	It("should return the level and everything more severe", func() {
		Expect(FilterLevels(log.WarnLevel)).To(Equal([]log.Level{
			log.PanicLevel, log.FatalLevel, log.ErrorLevel, log.WarnLevel,
		}))
	})
})

var _ = Describe("LoadSettings", func() {
	setEnv := func(key, value string) {
		Expect(os.Setenv(key, value)).To(Succeed())
		DeferCleanup(os.Unsetenv, key)
	}

	It("should default to errors on screen and no file", func() {
		s, err := LoadSettings()
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal(&Settings{
			LogSeverityScreen: "error",
			LogSeverityFile:   "info",
		}))
	})

	It("should read the ANDHOW_ environment variables", func() {
		setEnv("ANDHOW_LOG_SEVERITY_SCREEN", "debug")
		setEnv("ANDHOW_LOG_SEVERITY_FILE", "warning")
		setEnv("ANDHOW_LOG_FILE_PATH", "/var/log/andhow/andhow.log")
		s, err := LoadSettings()
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal(&Settings{
			LogSeverityScreen: "debug",
			LogSeverityFile:   "warning",
			LogFilePath:       "/var/log/andhow/andhow.log",
		}))
	})
})

var _ = Describe("ConfigureLogger", func() {
	It("should write to the log file at the file level", func() {
		logFile := filepath.Join(GinkgoT().TempDir(), "logs", "andhow.log")
		logger := log.New()
		closeLog, err := ConfigureLogger(logger, &Settings{
			LogSeverityScreen: "panic",
			LogSeverityFile:   "info",
			LogFilePath:       logFile,
		})
		Expect(err).NotTo(HaveOccurred())

		logger.WithField("name", "value").Info("Hello file")
		logger.Debug("Too verbose")
		closeLog()

		Expect(logger.GetLevel()).To(Equal(log.InfoLevel))
		data, err := os.ReadFile(logFile)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("[INFO]"))
		Expect(string(data)).To(ContainSubstring(`logutils_test.go`))
		Expect(string(data)).To(ContainSubstring(`Hello file name="value"`))
		Expect(string(data)).NotTo(ContainSubstring("Too verbose"))
	})

	It("should report a log file that cannot be created", func() {
		dir := GinkgoT().TempDir()
		blocker := filepath.Join(dir, "blocker")
		Expect(os.WriteFile(blocker, nil, 0o644)).To(Succeed())

		_, err := ConfigureLogger(log.New(), &Settings{
			LogSeverityScreen: "panic",
			LogSeverityFile:   "info",
			LogFilePath:       filepath.Join(blocker, "andhow.log"),
		})
		Expect(err).To(MatchError(ContainSubstring("failed to create log file directory")))
	})
})
