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

package testutils

import (
	"github.com/onsi/ginkgo/v2"
	log "github.com/sirupsen/logrus"

	"github.com/projectcalico/andhow/pkg/logutils"
)

// HookLogrusForGinkgo routes logrus output to the GinkgoWriter so that logs
// are only shown for failing specs.
func HookLogrusForGinkgo() {
	log.SetOutput(ginkgo.GinkgoWriter)
	log.SetFormatter(&logutils.Formatter{})
	log.AddHook(&logutils.ContextHook{})
	log.SetLevel(log.DebugLevel)
}
