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

package params

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

type param interface {
	GetMetadata() *Metadata
	Parse(raw string) (result interface{}, err error)
}

type Metadata struct {
	Name string
}

func (m *Metadata) GetMetadata() *Metadata {
	return m
}

func (m *Metadata) parseFailed(raw, msg string) error {
	return errors.Errorf("failed to parse config parameter %v; value %#v: %v",
		m.Name, raw, msg)
}

func newParam(p *ParamPoint) (param, error) {
	md := Metadata{Name: p.Name}
	switch p.Kind {
	case KindString:
		return &StringParam{Metadata: md}, nil
	case KindFlag:
		return &BoolParam{Metadata: md}, nil
	case KindList:
		return &ListElemParam{Metadata: md}, nil
	case KindInt:
		return &IntParam{Metadata: md}, nil
	case KindDuration:
		return &DurationParam{Metadata: md}, nil
	case KindOneOf:
		if len(p.Options) == 0 {
			return nil, errors.Errorf("oneof parameter %v has no options", p.Name)
		}
		lowerCaseToCanon := make(map[string]string)
		for _, option := range p.Options {
			lowerCaseToCanon[strings.ToLower(option)] = option
		}
		return &OneofParam{Metadata: md, lowerCaseOptionsToCanonical: lowerCaseToCanon}, nil
	}
	return nil, errors.Errorf("unknown kind of parameter %v: %v", p.Name, p.Kind)
}

type StringParam struct {
	Metadata
}

func (p *StringParam) Parse(raw string) (interface{}, error) {
	return raw, nil
}

type BoolParam struct {
	Metadata
}

func (p *BoolParam) Parse(raw string) (interface{}, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "y", "t", "on":
		return true, nil
	case "false", "0", "no", "n", "f", "off":
		return false, nil
	}
	return nil, p.parseFailed(raw, "invalid boolean")
}

// ListElemParam parses one element of a multi-valued parameter.  Elements are
// kept verbatim: an empty element is meaningful (it names the base directory
// in a search path, for example).
type ListElemParam struct {
	Metadata
}

func (p *ListElemParam) Parse(raw string) (interface{}, error) {
	return raw, nil
}

type IntParam struct {
	Metadata
}

func (p *IntParam) Parse(raw string) (interface{}, error) {
	value, err := cast.ToIntE(strings.TrimSpace(raw))
	if err != nil {
		return nil, p.parseFailed(raw, "invalid int")
	}
	return value, nil
}

type DurationParam struct {
	Metadata
}

func (p *DurationParam) Parse(raw string) (interface{}, error) {
	raw = strings.TrimSpace(raw)
	if seconds, err := strconv.ParseFloat(raw, 64); err == nil {
		return time.Duration(seconds * float64(time.Second)), nil
	}
	value, err := cast.ToDurationE(raw)
	if err != nil {
		log.WithError(err).WithField("raw", raw).Debug("Not a duration")
		return nil, p.parseFailed(raw, "invalid duration")
	}
	return value, nil
}

type OneofParam struct {
	Metadata
	lowerCaseOptionsToCanonical map[string]string
}

func (p *OneofParam) Parse(raw string) (interface{}, error) {
	canonical, ok := p.lowerCaseOptionsToCanonical[strings.ToLower(raw)]
	if !ok {
		return nil, p.parseFailed(raw, "unknown option")
	}
	return canonical, nil
}
