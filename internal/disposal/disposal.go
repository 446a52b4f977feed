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

// Package disposal decides whether the owner of a created resource closes it.
//
// The search is syntactic and scoped: locals are searched in their enclosing
// function declaration, struct members in the declared Close methods of their
// containing type. A single disposal event anywhere in the search scope is
// sufficient; no attempt is made to prove it executes on every path.
package disposal

import (
	"go/types"

	"fillmore-labs.com/closeguard/internal/index"
	"fillmore-labs.com/closeguard/internal/owner"
	"fillmore-labs.com/closeguard/internal/semantic"
	"fillmore-labs.com/closeguard/rules"
)

// Verdict is the outcome of the disposal search.
type Verdict uint8

const (
	// Undisposed means no disposal event or hand-off was found.
	Undisposed Verdict = iota

	// Disposed means the resource is closed or its ownership is handed off.
	Disposed
)

// Result is the verdict for a creation site.
type Result struct {
	Verdict Verdict

	// Category classifies an undisposed resource.
	Category rules.Category

	// Owner is the owner the finding is reported for. It differs from the classified
	// owner when a local transfers its value into a struct member.
	Owner owner.Owner

	// NeedsMethod is set when the containing type of a member declares no Close method.
	NeedsMethod bool
}

// maxAliasDepth bounds the length of traced alias chains.
const maxAliasDepth = 8

// Analyzer searches disposal events.
type Analyzer struct {
	reg *semantic.Registry
	cls owner.Classifier
}

// New creates an [Analyzer].
func New(reg *semantic.Registry, cls owner.Classifier) Analyzer {
	return Analyzer{reg: reg, cls: cls}
}

// Analyze determines whether the owner of a creation site closes the resource.
// It returns false for owners without disposal obligation.
func (a Analyzer) Analyze(site index.Site, o owner.Owner) (Result, bool) {
	switch o := o.(type) {
	case owner.Local:
		t := tracer{Analyzer: a, fun: site.Func, seen: make(map[*types.Var]struct{})}

		switch f, transfer := t.local(o.Var, 0); f {
		case disposed:
			return Result{Verdict: Disposed, Owner: o}, true

		case transferred:
			v, decl, _ := owner.Member(transfer)

			return a.member(site, transfer, v, decl), true

		default:
			return Result{Category: category(site.Kind, o), Owner: o}, true
		}

	case owner.Field:
		return a.member(site, o, o.Var, o.Type), true

	case owner.Property:
		return a.member(site, o, o.Var, o.Type), true

	case owner.Transient:
		if a.transient(site) {
			return Result{Verdict: Disposed, Owner: o}, true
		}

		return Result{Category: category(site.Kind, o), Owner: o}, true

	default: // Parameter, Handoff
		return Result{}, false
	}
}

func (a Analyzer) member(site index.Site, o owner.Owner, v *types.Var, decl *index.TypeDecl) Result {
	closed, hasMethod := a.closedByType(v, decl, 0)
	if closed {
		return Result{Verdict: Disposed, Owner: o}
	}

	return Result{Category: category(site.Kind, o), Owner: o, NeedsMethod: !hasMethod}
}

func category(kind index.Kind, o owner.Owner) rules.Category {
	var c rules.Category

	switch o.(type) {
	case owner.Field:
		c = rules.ConstructionToField

	case owner.Property:
		c = rules.ConstructionToProperty

	case owner.Local:
		c = rules.ConstructionToLocal

	default:
		c = rules.ConstructionToTransient
	}

	if kind == index.Invocation {
		c++ // invocation categories follow their construction counterpart
	}

	return c
}
