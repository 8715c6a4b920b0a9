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

package commands

import (
	"github.com/projectcalico/andhow/pkg/params"
)

// exampleSchema declares the parameters of the example server.  A fresh
// schema is built for every command since points belong to one schema.
func exampleSchema() (*params.Schema, error) {
	return params.NewSchema(
		params.Group{
			Name: "Server",
			Points: []*params.ParamPoint{
				params.String("name", "andhow", "Name reported by the server."),
				params.Int("port", "8080", "TCP port to listen on."),
				params.Duration("timeout", "30s", "Request timeout; a bare number is seconds."),
				params.OneOf("mode", "Normal", []string{"Normal", "Maintenance", "ReadOnly"},
					"Operating mode."),
				params.Flag("debug", "Enable debug endpoints."),
			},
		},
		params.Group{
			Name: "Content",
			Points: []*params.ParamPoint{
				params.List("include", nil, "Directory to serve; may be repeated."),
			},
		},
	)
}
