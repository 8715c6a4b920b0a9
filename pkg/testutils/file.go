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
	"os"
	"path"
	"path/filepath"

	"github.com/onsi/gomega"
)

func TestDataFile(name string) string {
	dir, _ := os.Getwd()

	return path.Join(dir, "testdata", name)
}

// WriteFile creates dir/name with the given content, creating dir if needed,
// and returns the full path.
func WriteFile(dir, name, content string) string {
	gomega.ExpectWithOffset(1, os.MkdirAll(dir, 0o755)).To(gomega.Succeed())
	p := filepath.Join(dir, name)
	gomega.ExpectWithOffset(1, os.WriteFile(p, []byte(content), 0o644)).To(gomega.Succeed())
	return p
}
