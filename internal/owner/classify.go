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

package owner

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/closeguard/internal/astutil"
	"fillmore-labs.com/closeguard/internal/index"
	"fillmore-labs.com/closeguard/internal/semantic"
)

// Classifier determines the [Owner] of creation sites.
type Classifier struct {
	reg *semantic.Registry
	idx *index.Index
}

// New creates a [Classifier].
func New(reg *semantic.Registry, idx *index.Index) Classifier {
	return Classifier{reg: reg, idx: idx}
}

// Classify returns the owner of a creation site, decided by the innermost context
// of the creation expression. It returns false when the owner can't be resolved and
// the site should be skipped.
func (c Classifier) Classify(site index.Site) (Owner, bool) {
	return c.Value(astutil.Outer(site.Expr), site.Result)
}

// Value returns the owner of the value of expression e. For multi-value expressions
// result selects the tuple element.
func (c Classifier) Value(e inspector.Cursor, result int) (Owner, bool) {
	k, i := e.ParentEdge()
	parent := e.Parent()

	switch k {
	case edge.AssignStmt_Rhs:
		stmt := parent.Node().(*ast.AssignStmt)

		lhs, ok := target(stmt.Lhs, len(stmt.Rhs), i, result)
		if !ok {
			return Transient{}, true
		}

		return c.Target(e, lhs)

	case edge.ValueSpec_Values:
		spec := parent.Node().(*ast.ValueSpec)

		name, ok := target(spec.Names, len(spec.Values), i, result)
		if !ok {
			return Transient{}, true
		}

		return c.Target(e, name)

	case edge.KeyValueExpr_Value:
		kv := parent.Node().(*ast.KeyValueExpr)

		if k, _ := parent.ParentEdge(); k != edge.CompositeLit_Elts {
			return Transient{}, true
		}

		lit := parent.Parent().Node().(*ast.CompositeLit)

		key, ok := kv.Key.(*ast.Ident)
		if !ok || !c.isStruct(lit) {
			return Transient{}, true // map or array element
		}

		v, ok := c.reg.Model().ObjectOf(key).(*types.Var)
		if !ok || !v.IsField() {
			return nil, false
		}

		return c.member(v)

	case edge.CompositeLit_Elts:
		lit := parent.Node().(*ast.CompositeLit)

		st, ok := c.structOf(lit)
		if !ok || i >= st.NumFields() {
			return Transient{}, true // slice, array or map element
		}

		return c.member(st.Field(i))

	case edge.ReturnStmt_Results:
		return Handoff{Reason: "returned"}, true

	case edge.SendStmt_Value:
		return Handoff{Reason: "sent"}, true

	case edge.CallExpr_Args:
		if call := parent.Node().(*ast.CallExpr); c.reg.IsHandoff(call) {
			return Handoff{Reason: "passed to " + c.reg.Callee(call).Name()}, true
		}

		return Transient{}, true

	default:
		return Transient{}, true
	}
}

// Target returns the owner of a value assigned to lhs.
func (c Classifier) Target(at inspector.Cursor, lhs ast.Expr) (Owner, bool) {
	switch l := ast.Unparen(lhs).(type) {
	case *ast.Ident:
		if l.Name == "_" {
			return Transient{}, true
		}

		v, ok := c.reg.Model().ObjectOf(l).(*types.Var)
		if !ok {
			return nil, false
		}

		return c.Var(at, v), true

	case *ast.SelectorExpr:
		v, ok := c.reg.Model().ObjectOf(l.Sel).(*types.Var)
		if !ok {
			return nil, false
		}

		if !v.IsField() {
			return c.Var(at, v), true // qualified package variable
		}

		return c.member(v)

	default: // index expression or pointer indirection
		return Transient{}, true
	}
}

// Var classifies a variable as seen from the function enclosing at.
func (c Classifier) Var(at inspector.Cursor, v *types.Var) Owner {
	if pkg := v.Pkg(); pkg == nil || v.Parent() == pkg.Scope() {
		return Handoff{Reason: "package variable"}
	}

	for fun := range at.Enclosing((*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)) {
		var (
			recv *ast.FieldList
			typ  *ast.FuncType
		)

		switch f := fun.Node().(type) {
		case *ast.FuncDecl:
			recv, typ = f.Recv, f.Type

		case *ast.FuncLit:
			typ = f.Type
		}

		if c.declares(recv, v) || c.declares(typ.Params, v) {
			return Parameter{Var: v}
		}

		if c.declares(typ.Results, v) {
			return Handoff{Reason: "named result"}
		}
	}

	return Local{Var: v}
}

func (c Classifier) declares(fields *ast.FieldList, v *types.Var) bool {
	if fields == nil {
		return false
	}

	for _, field := range fields.List {
		for _, name := range field.Names {
			if c.reg.Model().ObjectOf(name) == v {
				return true
			}
		}
	}

	return false
}

func (c Classifier) member(v *types.Var) (Owner, bool) {
	decl, ok := c.idx.TypeOfField(v)
	if !ok {
		return nil, false // containing type is not a package-level struct
	}

	if v.Embedded() {
		return Property{Var: v.Origin(), Type: decl}, true
	}

	return Field{Var: v.Origin(), Type: decl}, true
}

func (c Classifier) isStruct(lit *ast.CompositeLit) bool {
	_, ok := c.structOf(lit)

	return ok
}

func (c Classifier) structOf(lit *ast.CompositeLit) (*types.Struct, bool) {
	t := c.reg.Model().TypeOf(lit)
	if t == nil {
		return nil, false
	}

	st, ok := t.Underlying().(*types.Struct)

	return st, ok
}

// target selects the assigned expression for the n-th right-hand side value,
// mapping the tuple result of a single multi-value expression.
func target[E ast.Expr](lhs []E, rhs, n, result int) (ast.Expr, bool) {
	if rhs == 1 && len(lhs) > 1 {
		n = result
	}

	if n < 0 || n >= len(lhs) {
		return nil, false
	}

	return lhs[n], true
}
