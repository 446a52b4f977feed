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

// Package owner decides who is responsible for closing a created resource.
package owner

import (
	"go/types"

	"fillmore-labs.com/closeguard/internal/index"
)

// Owner is the entity responsible for closing a resource.
// It is one of [Local], [Field], [Property], [Parameter], [Transient] or [Handoff].
type Owner interface {
	// Name is the textual name of the owner, empty for owners without identity.
	Name() string

	owner()
}

// Local is a function-local variable.
type Local struct{ Var *types.Var }

// Field is a named field of a package-level struct type.
type Field struct {
	Var  *types.Var
	Type *index.TypeDecl
}

// Property is an embedded field of a package-level struct type.
type Property struct {
	Var  *types.Var
	Type *index.TypeDecl
}

// Parameter is a function parameter or receiver, owned by the caller.
type Parameter struct{ Var *types.Var }

// Transient is a value that is not stored.
type Transient struct{}

// Handoff is a value whose ownership leaves the current function.
type Handoff struct{ Reason string }

func (o Local) Name() string     { return o.Var.Name() }
func (o Field) Name() string     { return o.Var.Name() }
func (o Property) Name() string  { return o.Var.Name() }
func (o Parameter) Name() string { return o.Var.Name() }
func (Transient) Name() string   { return "" }
func (Handoff) Name() string     { return "" }

func (Local) owner()     {}
func (Field) owner()     {}
func (Property) owner()  {}
func (Parameter) owner() {}
func (Transient) owner() {}
func (Handoff) owner()   {}

// Member returns the field and containing type of a [Field] or [Property] owner.
func Member(o Owner) (*types.Var, *index.TypeDecl, bool) {
	switch o := o.(type) {
	case Field:
		return o.Var, o.Type, true

	case Property:
		return o.Var, o.Type, true

	default:
		return nil, nil, false
	}
}
