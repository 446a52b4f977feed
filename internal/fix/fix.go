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

// Package fix synthesizes the edits closing a struct member in its type's Close method.
package fix

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/closeguard/internal/index"
	"fillmore-labs.com/closeguard/internal/report"
	"fillmore-labs.com/closeguard/internal/semantic"
)

// Synthesizer creates suggested fixes for member findings.
type Synthesizer struct {
	fset *token.FileSet
	in   *inspector.Inspector
	reg  *semantic.Registry
	idx  *index.Index
}

var _ report.Fixer = (*Synthesizer)(nil)

// New creates a [Synthesizer].
func New(fset *token.FileSet, in *inspector.Inspector, reg *semantic.Registry, idx *index.Index) *Synthesizer {
	return &Synthesizer{fset: fset, in: in, reg: reg, idx: idx}
}

// target is a validated fix request.
type target struct {
	decl  *index.TypeDecl
	field *types.Var
	file  *ast.File
}

// Fix returns the edits closing the member of a finding, or nil when the finding
// no longer maps to a member of a package-level struct type.
func (s *Synthesizer) Fix(f report.Finding) []analysis.TextEdit {
	t, ok := s.resolve(f)
	if !ok {
		return nil
	}

	var edits []analysis.TextEdit

	method, hasMethod := firstOf(t.decl.CloseMethods())

	conforming := true

	if hasMethod {
		e, ok := s.prependClose(t, method)
		if !ok {
			return nil
		}

		edits = append(edits, e...)
		conforming = s.conforming(method.Node().(*ast.FuncDecl))
	} else {
		e, ok := s.addMethod(t)
		if !ok {
			return nil
		}

		edits = append(edits, e)
	}

	if conforming && !t.decl.Generic() && !semantic.Implements(t.decl.Obj.Type()) {
		edits = append(s.addAssertion(t), edits...)
	}

	return merge(edits)
}

// resolve re-validates a finding against the current syntax tree.
func (s *Synthesizer) resolve(f report.Finding) (target, bool) {
	c, ok := s.in.Root().FindByPos(f.Pos, f.End)
	if !ok {
		return target{}, false
	}

	if n := c.Node(); n.Pos() != f.Pos || n.End() != f.End {
		return target{}, false
	}

	if _, ok := c.Node().(ast.Expr); !ok {
		return target{}, false
	}

	decl, ok := s.idx.TypeByName(f.TypeName)
	if !ok {
		return target{}, false
	}

	st, ok := decl.Struct()
	if !ok {
		return target{}, false
	}

	var field *types.Var

	for v := range st.Fields() {
		if v.Name() == f.Owner {
			field = v

			break
		}
	}

	if field == nil {
		return target{}, false
	}

	file, ok := decl.File().Node().(*ast.File)
	if !ok {
		return target{}, false
	}

	return target{decl: decl, field: field, file: file}, true
}

// conforming reports whether a Close method has the signature `func() error`.
func (s *Synthesizer) conforming(fun *ast.FuncDecl) bool {
	obj, ok := s.reg.Model().ObjectOf(fun.Name).(*types.Func)
	if !ok {
		return false
	}

	sig := obj.Signature()
	if sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return false
	}

	return types.Identical(sig.Results().At(0).Type(), types.Universe.Lookup("error").Type())
}

func firstOf(seq func(func(inspector.Cursor) bool)) (inspector.Cursor, bool) {
	for c := range seq {
		return c, true
	}

	return inspector.Cursor{}, false
}
