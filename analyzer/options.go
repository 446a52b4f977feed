// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/closeguard/internal/config"
	"fillmore-labs.com/closeguard/internal/run"
	"fillmore-labs.com/closeguard/internal/symbol"
)

// Option configures specific behavior of a [New] closeguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithFix is an [Option] to configure suggested fixes for struct members.
func WithFix(fix bool) Option { return fixOption{fix: fix} }

type fixOption struct{ fix bool }

func (o fixOption) apply(r *run.Options) {
	r.Behavior.Set(config.SuggestFixes, o.fix)
}

func (o fixOption) LogAttr() slog.Attr {
	return slog.Bool("suggest-fixes", o.fix)
}

// WithLocal is an [Option] to configure whether resources owned by local variables are checked.
func WithLocal(local bool) Option {
	return analyzerOption{key: "local", flag: config.LocalAnalyzer, value: local}
}

// WithField is an [Option] to configure whether resources owned by struct fields are checked.
func WithField(field bool) Option {
	return analyzerOption{key: "field", flag: config.FieldAnalyzer, value: field}
}

// WithTransient is an [Option] to configure whether resources that are not stored are checked.
func WithTransient(transient bool) Option {
	return analyzerOption{key: "transient", flag: config.TransientAnalyzer, value: transient}
}

type analyzerOption struct {
	key   string
	flag  config.AnalyzerFlags
	value bool
}

func (o analyzerOption) apply(r *run.Options) {
	r.Analyzers.Set(o.flag, o.value)
}

func (o analyzerOption) LogAttr() slog.Attr {
	return slog.Bool(o.key, o.value)
}

// WithResourceTypes is an [Option] to add types that must be closed, in the format "path.Name".
// Names that can't be parsed are ignored.
func WithResourceTypes(names ...string) Option { return resourceTypesOption{names: names} }

type resourceTypesOption struct{ names []string }

func (o resourceTypesOption) apply(r *run.Options) {
	for _, name := range o.names {
		if t, err := symbol.ParseTypeName(name); err == nil {
			r.ResourceTypes = append(r.ResourceTypes, t)
		}
	}
}

func (o resourceTypesOption) LogAttr() slog.Attr {
	return slog.Any("resource-types", o.names)
}

// WithHandoffs is an [Option] to add functions taking over ownership of their resource arguments,
// in the format "path.Name" or "(path.Type).Name". Names that can't be parsed are ignored.
func WithHandoffs(names ...string) Option { return handoffsOption{names: names} }

type handoffsOption struct{ names []string }

func (o handoffsOption) apply(r *run.Options) {
	for _, name := range o.names {
		if f, err := symbol.ParseFuncName(name); err == nil {
			r.Handoffs = append(r.Handoffs, f)
		}
	}
}

func (o handoffsOption) LogAttr() slog.Attr {
	return slog.Any("handoffs", o.names)
}

// WithCloseDelegates is an [Option] to add functions closing their resource arguments,
// in the format "path.Name" or "(path.Type).Name". Names that can't be parsed are ignored.
func WithCloseDelegates(names ...string) Option { return closeDelegatesOption{names: names} }

type closeDelegatesOption struct{ names []string }

func (o closeDelegatesOption) apply(r *run.Options) {
	for _, name := range o.names {
		if f, err := symbol.ParseFuncName(name); err == nil {
			r.CloseDelegates = append(r.CloseDelegates, f)
		}
	}
}

func (o closeDelegatesOption) LogAttr() slog.Attr {
	return slog.Any("close-delegates", o.names)
}
