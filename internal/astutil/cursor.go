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

package astutil

import (
	"go/ast"
	"iter"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// Outer climbs from an expression through enclosing parentheses.
func Outer(c inspector.Cursor) inspector.Cursor {
	for {
		if k, _ := c.ParentEdge(); k != edge.ParenExpr_X {
			return c
		}

		c = c.Parent()
	}
}

// FuncDecls yields the function and method declarations with a body in a file,
// skipping those marked with a `//nolint:closeguard` doc comment.
func FuncDecls(file inspector.Cursor) iter.Seq[inspector.Cursor] {
	return func(yield func(inspector.Cursor) bool) {
		for c := range file.Children() {
			fun, ok := c.Node().(*ast.FuncDecl)
			if !ok || fun.Body == nil || HasNoLint(fun.Doc) {
				continue
			}

			if !yield(c) {
				return
			}
		}
	}
}
