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
	"bytes"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/go-ini/ini"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DotEnvSuffix marks files that are parsed as shell-style KEY=value files
// rather than properties files.
const DotEnvSuffix = ".env"

type Property struct {
	Key   string
	Value string
}

// Properties is the ordered content of one file.  A key that appears more
// than once yields one entry per occurrence.
type Properties []Property

// Get returns the last value given for the key.
func (p Properties) Get(key string) (string, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Key == key {
			return p[i].Value, true
		}
	}
	return "", false
}

// LoadPropertiesFile reads and parses one file.  The file is closed before
// this function returns, whatever the outcome.
func LoadPropertiesFile(path string) (Properties, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read file")
	}
	if strings.HasSuffix(path, DotEnvSuffix) {
		return ParseDotEnvData(data)
	}
	return ParsePropertiesData(data)
}

// ParsePropertiesData parses key=value (or key: value) lines.  Sections are
// tolerated and flattened, as for the felix config file.  A line holding only
// a name sets that name to "true", as a bare flag does on the command line.
// Only "#" and ";" start comments and "name value" is not a key/value pair;
// such lines become names set to "true", which the loader then reports as
// unrecognized.
func ParsePropertiesData(data []byte) (Properties, error) {
	iniData, err := ini.LoadSources(ini.LoadOptions{
		AllowShadows:        true,
		AllowBooleanKeys:    true,
		IgnoreInlineComment: true,
	}, data)
	if err != nil {
		return nil, errors.Wrap(err, "malformed properties data")
	}
	props := Properties{}
	for _, section := range iniData.Sections() {
		for _, key := range section.Keys() {
			for _, value := range key.ValueWithShadows() {
				log.WithFields(log.Fields{
					"section": section.Name(),
					"key":     key.Name(),
				}).Debug("Parsed property")
				props = append(props, Property{Key: key.Name(), Value: value})
			}
		}
	}
	return props, nil
}

// ParseDotEnvData parses shell-style KEY=value lines.  The format has no
// ordering guarantees so entries are returned sorted by key.
func ParseDotEnvData(data []byte) (Properties, error) {
	values, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "malformed env data")
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	props := Properties{}
	for _, k := range keys {
		props = append(props, Property{Key: k, Value: values[k]})
	}
	return props, nil
}
