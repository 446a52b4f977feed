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
	"go/token"
	"go/types"
	"iter"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/closeguard/internal/astutil"
)

// Kind distinguishes how a resource was created.
type Kind uint8

const (
	// Construction is a composite literal or a call of new.
	Construction Kind = iota

	// Invocation is a function or method call returning a resource.
	Invocation
)

// Site is a resource creation site.
type Site struct {
	// Expr is the cursor of the creation expression, including the address operator of `&T{}`.
	Expr inspector.Cursor

	// Kind is the creation kind.
	Kind Kind

	// Type is the produced resource type.
	Type types.Type

	// Result is the index of the resource in a multi-value result.
	Result int

	// Func is the cursor of the enclosing *[ast.FuncDecl].
	Func inspector.Cursor
}

// Node returns the creation expression.
func (s Site) Node() ast.Expr {
	return s.Expr.Node().(ast.Expr)
}

// Sites yields the resource creation sites in the function declarations of a file.
// Package-level initializers are not included.
func (idx *Index) Sites(file inspector.Cursor) iter.Seq[Site] {
	return func(yield func(Site) bool) {
		for fun := range astutil.FuncDecls(file) {
			body := fun.ChildAt(edge.FuncDecl_Body, -1)

			for c := range body.Preorder((*ast.CallExpr)(nil), (*ast.CompositeLit)(nil)) {
				for site := range idx.sites(c) {
					site.Func = fun
					if !yield(site) {
						return
					}
				}
			}
		}
	}
}

// sites yields the creation sites of expression c: one for a construction, one per
// resource result for an invocation.
func (idx *Index) sites(c inspector.Cursor) iter.Seq[Site] {
	return func(yield func(Site) bool) {
		switch n := c.Node().(type) {
		case *ast.CompositeLit:
			t := idx.reg.Model().TypeOf(n)
			if t == nil || !idx.reg.IsResource(t) {
				return
			}

			expr := c
			if k, _ := c.ParentEdge(); k == edge.UnaryExpr_X {
				if u := c.Parent().Node().(*ast.UnaryExpr); u.Op == token.AND {
					expr = c.Parent()
				}
			}

			yield(Site{Expr: expr, Kind: Construction, Type: t})

		case *ast.CallExpr:
			if idx.reg.IsConversion(n) {
				return
			}

			switch idx.reg.Builtin(n) {
			case "":

			case "new":
				if t := idx.reg.Model().TypeOf(n); t != nil && idx.reg.IsResource(t) {
					yield(Site{Expr: c, Kind: Construction, Type: t})
				}

				return

			default:
				return
			}

			for result, t := range idx.reg.ResourceResults(n) {
				if !yield(Site{Expr: c, Kind: Invocation, Type: t, Result: result}) {
					return
				}
			}
		}
	}
}
