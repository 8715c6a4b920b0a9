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
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/projectcalico/andhow/pkg/params"
)

// ErrHelpRequested is returned when the help flag was given.  Usage has been
// printed; the caller should exit without error.
var ErrHelpRequested = errors.New("help requested")

// InvalidConfigurationError lists every problem that made the configuration
// unusable.
type InvalidConfigurationError struct {
	Problems []params.Problem
}

func (e *InvalidConfigurationError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	return fmt.Sprintf("invalid configuration (%d problem(s)): %s", len(e.Problems), strings.Join(msgs, "; "))
}
