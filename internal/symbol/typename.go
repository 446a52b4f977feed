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

package symbol

import (
	"fmt"
	"go/types"
)

// TypeName is the qualified name of a package-level named type.
type TypeName struct {
	Path string // package path
	Name string // type name
}

// String formats the name as "path.Name".
func (t TypeName) String() string {
	if t.Path == "" {
		return t.Name
	}

	return t.Path + "." + t.Name
}

// TypeNameOf returns the [TypeName] of a named type, looking through aliases and one pointer indirection.
func TypeNameOf(t types.Type) (TypeName, bool) {
	named, ok := NamedOf(t)
	if !ok {
		return TypeName{}, false
	}

	obj := named.Obj()
	if obj.Pkg() == nil {
		return TypeName{Name: obj.Name()}, true
	}

	return TypeName{Path: obj.Pkg().Path(), Name: obj.Name()}, true
}

// NamedOf returns the generic origin of a named type, looking through aliases and one pointer indirection.
func NamedOf(t types.Type) (*types.Named, bool) {
	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	named, ok := t.(*types.Named)
	if !ok {
		return nil, false
	}

	return named.Origin(), true
}

// ParseTypeName parses a type name in the format "path.Name".
func ParseTypeName(s string) (TypeName, error) {
	path, name := splitQualified(s)
	if path == "" || !validIdent(name) {
		return TypeName{}, fmt.Errorf("%w: type %q", ErrInvalidName, s)
	}

	return TypeName{Path: path, Name: name}, nil
}
