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

package disposal

import (
	"go/ast"
	"go/types"
	"iter"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/closeguard/internal/index"
	"fillmore-labs.com/closeguard/internal/owner"
)

// tracer follows a local variable and its aliases through one function declaration.
type tracer struct {
	Analyzer
	fun  inspector.Cursor
	seen map[*types.Var]struct{}
}

// local searches the uses of v. A transfer into a struct member is returned only
// when no use disposes of the value.
func (t tracer) local(v *types.Var, depth int) (fate, owner.Owner) {
	if _, ok := t.seen[v]; ok || depth > maxAliasDepth {
		return unresolved, nil
	}

	t.seen[v] = struct{}{}

	var transfer owner.Owner

	for id := range t.uses(t.fun, v) {
		f, next, o := t.event(id)

		switch f {
		case disposed:
			return disposed, nil

		case aliased, ranged:
			switch f, o := t.local(next, depth+1); f {
			case disposed:
				return disposed, nil

			case transferred:
				if transfer == nil {
					transfer = o
				}
			}

		case transferred:
			field, decl, _ := owner.Member(o)
			if closed, _ := t.closedByType(field, decl, depth+1); closed {
				return disposed, nil
			}

			if transfer == nil {
				transfer = o
			}
		}
	}

	if transfer != nil {
		return transferred, transfer
	}

	return unresolved, nil
}

// uses yields the identifiers referring to v in the function body, excluding assignment targets.
func (a Analyzer) uses(fun inspector.Cursor, v *types.Var) iter.Seq[inspector.Cursor] {
	return func(yield func(inspector.Cursor) bool) {
		body := fun.ChildAt(edge.FuncDecl_Body, -1)

		for c := range body.Preorder((*ast.Ident)(nil)) {
			if a.reg.Model().ObjectOf(c.Node().(*ast.Ident)) != v {
				continue
			}

			switch k, _ := c.ParentEdge(); k {
			case edge.AssignStmt_Lhs, edge.ValueSpec_Names, edge.RangeStmt_Key, edge.RangeStmt_Value:
				continue
			}

			if !yield(c) {
				return
			}
		}
	}
}

// closedByType reports whether a Close method of the containing type closes the member v,
// and whether the type has a Close method at all. An embedded member is closed by its own
// Close when that is the one promoted to the containing type.
func (a Analyzer) closedByType(v *types.Var, decl *index.TypeDecl, depth int) (closed, hasMethod bool) {
	v = v.Origin()

	if v.Embedded() {
		if field, ok := decl.PromotedClose(); ok && field == v {
			return true, true
		}
	}

	for m := range decl.CloseMethods() {
		hasMethod = true

		if depth <= maxAliasDepth && a.closedIn(m, v, depth) {
			return true, true
		}
	}

	return false, hasMethod
}

// closedIn reports whether the method m closes the member v.
func (a Analyzer) closedIn(m inspector.Cursor, v *types.Var, depth int) bool {
	body := m.ChildAt(edge.FuncDecl_Body, -1)
	t := tracer{Analyzer: a, fun: m, seen: make(map[*types.Var]struct{})}

	for c := range body.Preorder((*ast.SelectorExpr)(nil)) {
		sel := c.Node().(*ast.SelectorExpr)

		field, ok := a.reg.Model().ObjectOf(sel.Sel).(*types.Var)
		if !ok || field.Origin() != v {
			continue
		}

		if k, _ := c.ParentEdge(); k == edge.AssignStmt_Lhs {
			continue
		}

		switch f, next, _ := a.event(c); f {
		case disposed:
			return true

		case aliased, ranged:
			if f, _ := t.local(next, depth+1); f == disposed {
				return true
			}
		}
	}

	return false
}
