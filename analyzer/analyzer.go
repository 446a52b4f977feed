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
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/closeguard/internal/run"
	"fillmore-labs.com/closeguard/rules"
)

const (
	name    = "closeguard"
	summary = "closeguard detects resources that are created but never closed"
	url     = "https://pkg.go.dev/fillmore-labs.com/closeguard"
)

// New creates a closeguard analyzer configured by opts.
//
// Options are applied on top of the defaults. The returned analyzer also
// registers command line flags; flag values override the options passed here.
func New(opts ...Option) *analysis.Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	a := &analysis.Analyzer{
		Name:     name,
		Doc:      ruleDoc(),
		URL:      url,
		Run:      r.Run,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	registerFlags(&a.Flags, r)

	return a
}

// ruleDoc is the analyzer documentation: the summary line followed by the rule table.
func ruleDoc() string {
	var b strings.Builder

	b.WriteString(summary)
	b.WriteString("\n\nRules (version ")
	b.WriteString(rules.Version.String())
	b.WriteString("):\n")

	for r := range rules.All() {
		b.WriteString("\n  ")
		b.WriteString(r.ID)
		b.WriteByte(' ')
		b.WriteString(r.Name)

		if r.Fixable {
			b.WriteString(" (fixable)")
		}
	}

	return b.String()
}

// Analyzer is the closeguard analyzer with default options.
var Analyzer = New()
