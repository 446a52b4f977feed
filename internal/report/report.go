// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

package report

import (
	"context"
	"fmt"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/closeguard/internal/astutil"
	"fillmore-labs.com/closeguard/rules"
)

// Fixer produces the edits closing the owner of a finding.
type Fixer interface {
	Fix(f Finding) []analysis.TextEdit
}

// site identifies a creation site: the creation expression and the result index.
type site struct {
	astutil.Span
	result int
}

// Emit reports the findings of one file. A nil fixer disables suggested fixes.
//
// Each creation site is reported once. Findings on lines marked with a
// `//nolint:closeguard` comment are suppressed.
func Emit(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, findings []Finding, fixer Fixer) {
	if len(findings) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	seen := make(map[site]struct{}, len(findings))

	for _, f := range findings {
		key := site{Span: astutil.Span{Start: f.Pos, Stop: f.End}, result: f.Result}
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}

		if f.Rule.ID == "" {
			astutil.InternalError(p, key.Span, "Finding for %q without rule", f.Owner)

			continue
		}

		if currentFile.Suppressed(f.Pos) {
			continue
		}

		diagnostic := f.Diagnostic()

		if fix, ok := rules.FixFor(f.Rule.ID); ok && fixer != nil {
			if edits := fixer.Fix(f); len(edits) > 0 {
				message := fmt.Sprintf("%s '%s'", fix.Title, f.Owner)
				diagnostic.SuggestedFixes = []analysis.SuggestedFix{{Message: message, TextEdits: edits}}
			}
		}

		p.Report(diagnostic)
	}
}
