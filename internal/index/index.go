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

// Package index collects the package-level declarations relevant for resource
// ownership and enumerates resource creation sites.
package index

import (
	"go/ast"
	"go/types"
	"iter"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/closeguard/internal/semantic"
	"fillmore-labs.com/closeguard/internal/symbol"
)

// Index holds the package-level type declarations of a package.
// It is read only after construction and safe for concurrent use.
type Index struct {
	reg    *semantic.Registry
	decls  []*TypeDecl
	byObj  map[*types.TypeName]*TypeDecl
	fields map[*types.Var]*TypeDecl
}

// New builds the [Index] for the package in the inspector.
func New(in *inspector.Inspector, reg *semantic.Registry) *Index {
	idx := &Index{
		reg:    reg,
		byObj:  make(map[*types.TypeName]*TypeDecl),
		fields: make(map[*types.Var]*TypeDecl),
	}

	var methods, assertions []inspector.Cursor

	for c := range in.Root().Preorder((*ast.TypeSpec)(nil), (*ast.FuncDecl)(nil), (*ast.ValueSpec)(nil)) {
		switch n := c.Node().(type) {
		case *ast.TypeSpec:
			if packageLevel(c) && !n.Assign.IsValid() {
				idx.addType(c, n)
			}

		case *ast.FuncDecl:
			if n.Recv != nil && len(n.Recv.List) == 1 {
				methods = append(methods, c)
			}

		case *ast.ValueSpec:
			if packageLevel(c) && blank(n.Names) {
				assertions = append(assertions, c)
			}
		}
	}

	for _, m := range methods {
		fun := m.Node().(*ast.FuncDecl)
		if decl, ok := idx.declOfRecv(fun.Recv.List[0].Type); ok {
			decl.Methods = append(decl.Methods, m)
		}
	}

	for _, a := range assertions {
		spec := a.Node().(*ast.ValueSpec)
		if spec.Type == nil || !types.IsInterface(reg.Model().TypeOf(spec.Type)) {
			continue
		}

		for _, v := range spec.Values {
			if decl, ok := idx.declOfValue(v); ok {
				decl.Assertions = append(decl.Assertions, a)

				break
			}
		}
	}

	return idx
}

func (idx *Index) addType(c inspector.Cursor, spec *ast.TypeSpec) {
	obj, ok := idx.reg.Model().ObjectOf(spec.Name).(*types.TypeName)
	if !ok {
		return
	}

	decl := &TypeDecl{Obj: obj, Spec: c}
	idx.decls = append(idx.decls, decl)
	idx.byObj[obj] = decl

	if st, ok := decl.Struct(); ok {
		for v := range st.Fields() {
			idx.fields[v] = decl
		}
	}
}

func (idx *Index) declOfRecv(recv ast.Expr) (*TypeDecl, bool) {
	for {
		switch r := recv.(type) {
		case *ast.StarExpr:
			recv = r.X

		case *ast.ParenExpr:
			recv = r.X

		case *ast.IndexExpr:
			recv = r.X

		case *ast.IndexListExpr:
			recv = r.X

		case *ast.Ident:
			obj, ok := idx.reg.Model().ObjectOf(r).(*types.TypeName)
			if !ok {
				return nil, false
			}

			return idx.Lookup(obj)

		default:
			return nil, false
		}
	}
}

func (idx *Index) declOfValue(v ast.Expr) (*TypeDecl, bool) {
	t := idx.reg.Model().TypeOf(v)
	if t == nil {
		return nil, false
	}

	named, ok := symbol.NamedOf(t)
	if !ok {
		return nil, false
	}

	return idx.Lookup(named.Obj())
}

// Lookup returns the declaration of a type.
func (idx *Index) Lookup(obj *types.TypeName) (*TypeDecl, bool) {
	decl, ok := idx.byObj[obj]

	return decl, ok
}

// TypeByName returns the package-level declaration of a type by name.
func (idx *Index) TypeByName(name string) (*TypeDecl, bool) {
	obj, ok := idx.reg.Package().Scope().Lookup(name).(*types.TypeName)
	if !ok {
		return nil, false
	}

	return idx.Lookup(obj)
}

// TypeOfField returns the declaration of the struct type containing the field v.
func (idx *Index) TypeOfField(v *types.Var) (*TypeDecl, bool) {
	decl, ok := idx.fields[v.Origin()]

	return decl, ok
}

// Members yields struct fields holding resources with their containing types.
func (idx *Index) Members() iter.Seq2[*types.Var, *TypeDecl] {
	return func(yield func(*types.Var, *TypeDecl) bool) {
		for _, decl := range idx.decls {
			st, ok := decl.Struct()
			if !ok {
				continue
			}

			for v := range st.Fields() {
				if !idx.reg.IsResource(v.Type()) {
					continue
				}

				if !yield(v, decl) {
					return
				}
			}
		}
	}
}

// packageLevel reports whether a spec is declared at package level.
func packageLevel(spec inspector.Cursor) bool {
	_, ok := spec.Parent().Parent().Node().(*ast.File)

	return ok
}

func blank(names []*ast.Ident) bool {
	for _, n := range names {
		if n.Name != "_" {
			return false
		}
	}

	return len(names) > 0
}
