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

package index

import (
	"go/ast"
	"go/types"
	"iter"

	"golang.org/x/tools/go/ast/inspector"
)

// TypeDecl is a package-level type declaration with its methods and interface assertions.
type TypeDecl struct {
	// Obj is the declared type name.
	Obj *types.TypeName

	// Spec is the cursor of the *[ast.TypeSpec].
	Spec inspector.Cursor

	// Methods are the cursors of the declared methods (*[ast.FuncDecl]) in source order.
	Methods []inspector.Cursor

	// Assertions are the cursors of package-level `var _ I = T{}` specs (*[ast.ValueSpec]) for this type.
	Assertions []inspector.Cursor
}

// Name returns the type's name.
func (d *TypeDecl) Name() string {
	return d.Obj.Name()
}

// TypeSpec returns the syntax of the declaration.
func (d *TypeDecl) TypeSpec() *ast.TypeSpec {
	return d.Spec.Node().(*ast.TypeSpec)
}

// GenDecl returns the cursor of the enclosing *[ast.GenDecl].
func (d *TypeDecl) GenDecl() inspector.Cursor {
	return d.Spec.Parent()
}

// File returns the cursor of the file declaring the type.
func (d *TypeDecl) File() inspector.Cursor {
	return d.GenDecl().Parent()
}

// Generic reports whether the type has type parameters.
func (d *TypeDecl) Generic() bool {
	return d.TypeSpec().TypeParams != nil
}

// Struct returns the underlying struct type.
func (d *TypeDecl) Struct() (*types.Struct, bool) {
	st, ok := d.Obj.Type().Underlying().(*types.Struct)

	return st, ok
}

// CloseMethods yields the declared Close methods without parameters.
func (d *TypeDecl) CloseMethods() iter.Seq[inspector.Cursor] {
	return func(yield func(inspector.Cursor) bool) {
		for _, m := range d.Methods {
			fun := m.Node().(*ast.FuncDecl)
			if fun.Name.Name != "Close" || fun.Type.Params.NumFields() > 0 || fun.Body == nil {
				continue
			}

			if !yield(m) {
				return
			}
		}
	}
}

// PromotedClose returns the embedded field whose parameterless Close method is promoted
// to the method set of *T. It returns false when T declares Close itself or the selector
// is ambiguous.
func (d *TypeDecl) PromotedClose() (*types.Var, bool) {
	st, ok := d.Struct()
	if !ok {
		return nil, false
	}

	obj, index, _ := types.LookupFieldOrMethod(types.NewPointer(d.Obj.Type()), false, d.Obj.Pkg(), "Close")

	fun, ok := obj.(*types.Func)
	if !ok || len(index) < 2 || fun.Signature().Params().Len() > 0 {
		return nil, false
	}

	field := st.Field(index[0])
	if !field.Embedded() {
		return nil, false
	}

	return field, true
}

// LastMethod returns the cursor of the last declared method in the type's file.
func (d *TypeDecl) LastMethod() (inspector.Cursor, bool) {
	file := d.File()

	for i := len(d.Methods) - 1; i >= 0; i-- {
		if m := d.Methods[i]; m.Parent() == file {
			return m, true
		}
	}

	return inspector.Cursor{}, false
}
