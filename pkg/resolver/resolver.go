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

// Package resolver merges raw values from every source into exactly one
// effective value per parameter.
package resolver

import (
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/projectcalico/andhow/pkg/params"
)

type Option func(*resolver)

// WithLenientSources marks sources whose invalid values are dropped, with a
// problem recorded, rather than making the parameter invalid.  The next
// candidate, or failing that the default, is used instead.
func WithLenientSources(sources ...params.Source) Option {
	return func(r *resolver) {
		for _, s := range sources {
			r.lenient[s] = true
		}
	}
}

type resolver struct {
	schema  *params.Schema
	lenient map[params.Source]bool
}

// Resolve produces exactly one EffectiveValue for every point in the schema.
// Higher-ranked sources win regardless of the order of raws; within one
// source the earlier value wins.  List parameters are the exception: every
// raw value for them is kept, highest-ranked source first.
func Resolve(schema *params.Schema, raws []params.RawValue, opts ...Option) *Values {
	r := &resolver{
		schema:  schema,
		lenient: map[params.Source]bool{},
	}
	for _, o := range opts {
		o(r)
	}

	sorted := append([]params.RawValue(nil), raws...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Source > sorted[j].Source
	})
	candidates := map[*params.ParamPoint][]params.RawValue{}
	for _, raw := range sorted {
		if raw.Point == nil {
			log.WithField("raw", raw.Raw).Warn("Ignoring raw value with no parameter")
			continue
		}
		candidates[raw.Point] = append(candidates[raw.Point], raw)
	}

	values := newValues(schema)
	for _, p := range schema.Points() {
		var ev *EffectiveValue
		if p.Kind.MultiValued() {
			ev = r.resolveList(values, p, candidates[p])
		} else {
			ev = r.resolveScalar(values, p, candidates[p])
		}
		values.add(ev)
	}
	log.WithFields(log.Fields{
		"numParams":   schema.Len(),
		"numRaw":      len(raws),
		"numInvalid":  len(values.Invalid()),
		"numProblems": len(values.problems),
	}).Debug("Resolved configuration")
	return values
}

func (r *resolver) resolveScalar(values *Values, p *params.ParamPoint, cands []params.RawValue) *EffectiveValue {
	for _, c := range cands {
		logCxt := log.WithFields(log.Fields{
			"name":   p.Name,
			"source": c.Source,
			"origin": c.Origin,
		})
		if c.Raw == "" {
			logCxt.Info("Ignoring empty configuration parameter")
			continue
		}
		value, err := p.Parse(c.Raw)
		if err != nil {
			values.problems = append(values.problems, params.NewParseProblem(c, err))
			if r.lenient[c.Source] {
				logCxt.WithError(err).Warn("Replacing invalid value with next candidate or default")
				continue
			}
			logCxt.WithError(err).Error("Invalid config value")
			return &EffectiveValue{
				Point:  p,
				Raw:    c.Raw,
				Source: c.Source,
				Origin: c.Origin,
				Err:    err,
			}
		}
		logCxt.Infof("Parsed value for %v: %v (from %v)", p.Name, value, c.Source)
		return &EffectiveValue{
			Point:  p,
			Raw:    c.Raw,
			Value:  value,
			Source: c.Source,
			Origin: c.Origin,
		}
	}
	return defaultValue(p)
}

func (r *resolver) resolveList(values *Values, p *params.ParamPoint, cands []params.RawValue) *EffectiveValue {
	var ev *EffectiveValue
	var elems []string
	for _, c := range cands {
		logCxt := log.WithFields(log.Fields{
			"name":   p.Name,
			"source": c.Source,
			"origin": c.Origin,
		})
		value, err := p.Parse(c.Raw)
		if err != nil {
			values.problems = append(values.problems, params.NewParseProblem(c, err))
			if r.lenient[c.Source] {
				logCxt.WithError(err).Warn("Dropping invalid list element")
				continue
			}
			logCxt.WithError(err).Error("Invalid config value")
		}
		if ev == nil {
			// The highest-ranked contributor is reported as the source.
			ev = &EffectiveValue{Point: p, Source: c.Source, Origin: c.Origin}
		}
		if err != nil {
			if ev.Err == nil {
				ev.Err = err
			}
			ev.Raws = append(ev.Raws, c.Raw)
			continue
		}
		logCxt.Infof("Accumulated value for %v: %q (from %v)", p.Name, c.Raw, c.Source)
		ev.Raws = append(ev.Raws, c.Raw)
		elems = append(elems, value.(string))
	}
	if ev == nil {
		return defaultValue(p)
	}
	if ev.Err == nil {
		ev.Value = elems
	}
	return ev
}

func defaultValue(p *params.ParamPoint) *EffectiveValue {
	ev := &EffectiveValue{
		Point:  p,
		Raw:    p.Default,
		Value:  p.DefaultValue(),
		Source: params.Default,
	}
	if p.Kind.MultiValued() && p.DefaultList != nil {
		ev.Raws = append([]string(nil), p.DefaultList...)
	}
	return ev
}
