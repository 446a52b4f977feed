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

// Package semantic answers type questions about resources: which types must be
// closed, which calls produce them, and which calls take over ownership.
package semantic

import (
	"go/ast"
	"go/token"
	"go/types"
)

// Model is the part of the type checker results the analysis needs.
// [*types.Info] satisfies this interface.
type Model interface {
	TypeOf(e ast.Expr) types.Type
	ObjectOf(id *ast.Ident) types.Object
}

var _ Model = (*types.Info)(nil)

// Closer is the disposal contract, equivalent to [io.Closer].
var Closer = newCloser()

func newCloser() *types.Interface {
	errorType := types.Universe.Lookup("error").Type()
	results := types.NewTuple(types.NewParam(token.NoPos, nil, "", errorType))
	sig := types.NewSignatureType(nil, nil, nil, nil, results, false)
	closeFunc := types.NewFunc(token.NoPos, nil, "Close", sig)

	return types.NewInterfaceType([]*types.Func{closeFunc}, nil).Complete()
}

// Implements reports whether t or *t satisfies [Closer], directly or through promoted methods.
func Implements(t types.Type) bool {
	if t == nil {
		return false
	}

	if types.Implements(t, Closer) {
		return true
	}

	switch types.Unalias(t).(type) {
	case *types.Pointer:
		return false

	case *types.Named:
		if types.IsInterface(t) {
			return false
		}

		return types.Implements(types.NewPointer(t), Closer)

	default:
		return false
	}
}
