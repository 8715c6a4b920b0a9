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

package config

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/projectcalico/andhow/pkg/params"
)

var _ = Describe("Resolution metrics", func() {
	var schema *params.Schema

	BeforeEach(func() {
		var err error
		schema, err = params.NewSchema(params.Group{
			Name:   "App",
			Points: []*params.ParamPoint{params.Int("port", "80", "Port.")},
		})
		Expect(err).NotTo(HaveOccurred())
	})

	count := func(outcome string) float64 {
		return testutil.ToFloat64(counterResolutions.WithLabelValues(outcome))
	}
	problems := func(kind params.ProblemKind) float64 {
		return testutil.ToFloat64(counterProblems.WithLabelValues(kind.String()))
	}

	It("should count each outcome", func() {
		resolvedBefore := count("resolved")
		helpBefore := count("help-abort")
		invalidBefore := count("invalid-abort")
		parseBefore := problems(params.ParseProblem)
		unrecognizedBefore := problems(params.UnrecognizedParameter)

		out := &bytes.Buffer{}
		_, err := New(schema, []string{"skipPropertiesFromFileSystem", "colour=red"}, WithOutput(out)).Run()
		Expect(err).NotTo(HaveOccurred())
		_, err = New(schema, []string{"-h"}, WithOutput(out)).Run()
		Expect(err).To(Equal(ErrHelpRequested))
		_, err = New(schema, []string{"port=x"}, WithOutput(out)).Run()
		Expect(err).To(HaveOccurred())

		Expect(count("resolved") - resolvedBefore).To(Equal(1.0))
		Expect(count("help-abort") - helpBefore).To(Equal(1.0))
		Expect(count("invalid-abort") - invalidBefore).To(Equal(1.0))
		Expect(problems(params.ParseProblem) - parseBefore).To(Equal(1.0))
		Expect(problems(params.UnrecognizedParameter) - unrecognizedBefore).To(Equal(1.0))
	})
})
