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

package semantic

import (
	"go/ast"
	"go/types"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"fillmore-labs.com/closeguard/internal/symbol"
)

// Registry recognizes resource types and ownership-relevant calls for one package.
// It is read only after construction and safe for concurrent use.
type Registry struct {
	model     Model
	pkg       *types.Package
	resources map[symbol.TypeName]struct{}
	handoffs  map[symbol.FuncName]struct{}
	delegates map[symbol.FuncName]struct{}
}

// New creates a [Registry] for the package pkg, recognizing the given allow-listed
// resource types, every closer type declared in pkg, the given hand-off functions
// and the given close delegates.
func New(model Model, pkg *types.Package, resources []symbol.TypeName, handoffs, delegates []symbol.FuncName) *Registry {
	r := &Registry{
		model:     model,
		pkg:       pkg,
		resources: make(map[symbol.TypeName]struct{}, len(resources)),
		handoffs:  make(map[symbol.FuncName]struct{}, len(handoffs)),
		delegates: make(map[symbol.FuncName]struct{}, len(delegates)),
	}

	for _, t := range resources {
		r.resources[t] = struct{}{}
	}

	for _, f := range handoffs {
		r.handoffs[f] = struct{}{}
	}

	for _, f := range delegates {
		r.delegates[f] = struct{}{}
	}

	return r
}

// Model returns the semantic model of the analyzed package.
func (r *Registry) Model() Model {
	return r.model
}

// Package returns the analyzed package.
func (r *Registry) Package() *types.Package {
	return r.pkg
}

// IsResource reports whether values of type t must be closed.
//
// Values of a type are resources when the type implements the disposal contract
// and either is allow-listed or is a non-interface type declared in the analyzed package.
func (r *Registry) IsResource(t types.Type) bool {
	named, ok := symbol.NamedOf(t)
	if !ok {
		return false
	}

	if tn, ok := symbol.TypeNameOf(named); ok {
		if _, ok := r.resources[tn]; ok {
			return Implements(named)
		}
	}

	if named.Obj().Pkg() != r.pkg || types.IsInterface(named) {
		return false
	}

	return Implements(named)
}

// ResourceResults yields the index in the result tuple and the type of every resource a call produces.
func (r *Registry) ResourceResults(call *ast.CallExpr) iter.Seq2[int, types.Type] {
	return func(yield func(int, types.Type) bool) {
		switch t := r.model.TypeOf(call).(type) {
		case nil:

		case *types.Tuple:
			for i := range t.Len() {
				if v := t.At(i).Type(); r.IsResource(v) && !yield(i, v) {
					return
				}
			}

		default:
			if r.IsResource(t) {
				yield(0, t)
			}
		}
	}
}

// Callee returns the statically known function or method called, or nil.
func (r *Registry) Callee(call *ast.CallExpr) *types.Func {
	id := calleeIdent(call.Fun)
	if id == nil {
		return nil
	}

	fun, _ := r.model.ObjectOf(id).(*types.Func)

	return fun
}

// IsHandoff reports whether the call takes over ownership of its arguments.
func (r *Registry) IsHandoff(call *ast.CallExpr) bool {
	fun := r.Callee(call)
	if fun == nil {
		return false
	}

	_, ok := r.handoffs[symbol.FuncNameOf(fun)]

	return ok
}

// IsCloseDelegate reports whether the call closes its arguments.
//
// Configured delegates always match. Otherwise functions match by name: "close" or
// "Close", optionally followed by a capitalized word ("closeAll", "CloseQuietly").
// Methods match by name only when declared in the analyzed package.
func (r *Registry) IsCloseDelegate(call *ast.CallExpr) bool {
	fun := r.Callee(call)
	if fun == nil {
		return false
	}

	if _, ok := r.delegates[symbol.FuncNameOf(fun)]; ok {
		return true
	}

	if fun.Signature().Recv() != nil && fun.Pkg() != r.pkg {
		return false
	}

	return closeName(fun.Name())
}

// closeName reports whether name is "close" or "Close", optionally followed by an upper case letter.
func closeName(name string) bool {
	rest, ok := strings.CutPrefix(name, "close")
	if !ok {
		if rest, ok = strings.CutPrefix(name, "Close"); !ok {
			return false
		}
	}

	if rest == "" {
		return true
	}

	first, _ := utf8.DecodeRuneInString(rest)

	return unicode.IsUpper(first)
}

// IsConversion reports whether the call expression is a type conversion.
func (r *Registry) IsConversion(call *ast.CallExpr) bool {
	switch fun := ast.Unparen(call.Fun).(type) {
	case *ast.ArrayType, *ast.ChanType, *ast.FuncType, *ast.InterfaceType, *ast.MapType, *ast.StructType, *ast.StarExpr:
		return true

	default:
		id := calleeIdent(fun)
		if id == nil {
			return false
		}

		_, ok := r.model.ObjectOf(id).(*types.TypeName)

		return ok
	}
}

// Builtin returns the name of the called builtin function, or "" when the call isn't to a builtin.
func (r *Registry) Builtin(call *ast.CallExpr) string {
	id, ok := ast.Unparen(call.Fun).(*ast.Ident)
	if !ok {
		return ""
	}

	if b, ok := r.model.ObjectOf(id).(*types.Builtin); ok {
		return b.Name()
	}

	return ""
}

// calleeIdent unwraps a call target to its identifier.
func calleeIdent(ex ast.Expr) *ast.Ident {
	for {
		switch e := ex.(type) {
		case *ast.Ident:
			return e

		case *ast.SelectorExpr:
			return e.Sel

		case *ast.IndexExpr: // Generic instantiation ("f[T]").
			ex = e.X

		case *ast.IndexListExpr: // Generic instantiation ("f[T, U]").
			ex = e.X

		case *ast.ParenExpr:
			ex = e.X

		default:
			return nil
		}
	}
}
