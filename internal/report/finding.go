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

// Package report turns undisposed verdicts into analysis diagnostics.
package report

import (
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/closeguard/rules"
)

// Finding is an undisposed resource at a creation site.
type Finding struct {
	// Rule is the diagnostic rule.
	Rule rules.Rule

	// Pos and End span the creation expression.
	Pos, End token.Pos

	// Result is the index of the resource in a multi-value result.
	Result int

	// Owner is the owner name, or the produced type or callee for transient values.
	Owner string

	// TypeName is the containing type of a struct member, empty otherwise.
	TypeName string

	// NeedsMethod is set when the containing type declares no Close method.
	NeedsMethod bool
}

// Message formats the diagnostic message.
func (f Finding) Message() string {
	msg := []byte(f.Rule.Message(f.Owner))

	switch {
	case f.TypeName == "":

	case f.NeedsMethod:
		msg = fmt.Appendf(msg, ", type '%s' has no Close method", f.TypeName)

	default:
		msg = fmt.Appendf(msg, " in %s.Close", f.TypeName)
	}

	msg = fmt.Appendf(msg, " (%s)", f.Rule.ID)

	return string(msg)
}

// Diagnostic returns the [analysis.Diagnostic] for the finding, without suggested fixes.
func (f Finding) Diagnostic() analysis.Diagnostic {
	return analysis.Diagnostic{
		Pos:      f.Pos,
		End:      f.End,
		Category: f.Rule.ID,
		Message:  f.Message(),
		URL:      f.Rule.URL(),
	}
}
