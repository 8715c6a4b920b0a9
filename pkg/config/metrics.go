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
	"github.com/prometheus/client_golang/prometheus"

	"github.com/projectcalico/andhow/pkg/params"
)

var (
	counterResolutions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "andhow_resolutions_total",
		Help: "Number of configuration resolutions, by outcome.",
	}, []string{"outcome"})
	counterProblems = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "andhow_problems_total",
		Help: "Number of configuration problems found, by kind.",
	}, []string{"kind"})
)

const outcomeFileAccessError = "file-access-error"

func init() {
	prometheus.MustRegister(
		counterResolutions,
		counterProblems,
	)
}

func recordOutcome(outcome string, problems []params.Problem) {
	counterResolutions.WithLabelValues(outcome).Inc()
	for _, p := range problems {
		counterProblems.WithLabelValues(p.Kind.String()).Inc()
	}
}
