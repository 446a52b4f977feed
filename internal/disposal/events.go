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

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/closeguard/internal/astutil"
	"fillmore-labs.com/closeguard/internal/index"
	"fillmore-labs.com/closeguard/internal/owner"
)

// fate is what happens to a value at one use.
type fate uint8

const (
	unresolved  fate = iota
	disposed         // closed, or ownership handed off
	aliased          // assigned to another local variable
	transferred      // stored in a struct member
	ranged           // element of a literal ranged over
)

// event classifies the use of a value at cursor c.
// For aliased and ranged uses next is the receiving variable, for transferred uses the member owner.
func (a Analyzer) event(c inspector.Cursor) (f fate, next *types.Var, transfer owner.Owner) {
	c = climb(c)

	k, _ := c.ParentEdge()
	parent := c.Parent()

	switch k {
	case edge.SelectorExpr_X:
		if sel := parent.Node().(*ast.SelectorExpr); sel.Sel.Name == "Close" {
			return disposed, nil, nil // call, deferred call or method value
		}

	case edge.CallExpr_Args:
		call := parent.Node().(*ast.CallExpr)
		if a.reg.IsCloseDelegate(call) || a.reg.IsHandoff(call) {
			return disposed, nil, nil
		}

	case edge.ReturnStmt_Results, edge.SendStmt_Value:
		return disposed, nil, nil

	case edge.CompositeLit_Elts:
		if v, ok := a.rangedValue(parent); ok {
			return ranged, v, nil
		}
	}

	o, ok := a.cls.Value(c, 0)
	if !ok {
		if lit, ok := literalOf(c); ok && a.isWrapper(lit) {
			return disposed, nil, nil // element of a foreign resource
		}

		return unresolved, nil, nil
	}

	switch o := o.(type) {
	case owner.Local:
		return aliased, o.Var, nil

	case owner.Parameter:
		return aliased, o.Var, nil

	case owner.Field, owner.Property:
		return transferred, nil, o

	case owner.Handoff:
		return disposed, nil, nil

	default:
		return unresolved, nil, nil
	}
}

// literalOf returns the composite literal an element or keyed value belongs to.
func literalOf(c inspector.Cursor) (*ast.CompositeLit, bool) {
	k, _ := c.ParentEdge()
	if k == edge.KeyValueExpr_Value {
		c = c.Parent()
		k, _ = c.ParentEdge()
	}

	if k != edge.CompositeLit_Elts {
		return nil, false
	}

	lit, ok := c.Parent().Node().(*ast.CompositeLit)

	return lit, ok
}

// isWrapper reports whether a composite literal builds a resource, taking over its elements.
func (a Analyzer) isWrapper(lit *ast.CompositeLit) bool {
	t := a.reg.Model().TypeOf(lit)

	return t != nil && a.reg.IsResource(t)
}

// rangedValue returns the value variable of a range statement iterating over the literal lit.
func (a Analyzer) rangedValue(lit inspector.Cursor) (*types.Var, bool) {
	if k, _ := astutil.Outer(lit).ParentEdge(); k != edge.RangeStmt_X {
		return nil, false
	}

	stmt, ok := astutil.Outer(lit).Parent().Node().(*ast.RangeStmt)
	if !ok {
		return nil, false
	}

	id, ok := stmt.Value.(*ast.Ident)
	if !ok {
		return nil, false
	}

	v, ok := a.reg.Model().ObjectOf(id).(*types.Var)

	return v, ok
}

// climb moves from an expression through enclosing parentheses and type assertions.
func climb(c inspector.Cursor) inspector.Cursor {
	for {
		switch k, _ := c.ParentEdge(); k {
		case edge.ParenExpr_X, edge.TypeAssertExpr_X:
			c = c.Parent()

		default:
			return c
		}
	}
}

// transient reports whether a value that is not stored is closed right away.
func (a Analyzer) transient(site index.Site) bool {
	c := climb(site.Expr)

	k, _ := c.ParentEdge()
	switch k {
	case edge.SelectorExpr_X:
		return c.Parent().Node().(*ast.SelectorExpr).Sel.Name == "Close"

	case edge.CallExpr_Args:
		return a.reg.IsCloseDelegate(c.Parent().Node().(*ast.CallExpr))

	default:
		return false
	}
}
