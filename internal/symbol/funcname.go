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

// Package symbol provides comparable names for functions and types that stay
// stable across packages and can be written in configuration.
package symbol

import (
	"errors"
	"fmt"
	"go/types"
	"strings"
)

// FuncName represents a function or method name.
type FuncName struct {
	Path     string // package path
	Receiver string // receiver type name, empty for functions
	Name     string // function name
}

// String formats the name as "path.Name" or "(path.Receiver).Name".
func (f FuncName) String() string {
	var b strings.Builder

	if f.Receiver != "" {
		b.WriteByte('(')
	}

	if f.Path != "" {
		b.WriteString(f.Path)
		b.WriteByte('.')
	}

	if f.Receiver != "" {
		b.WriteString(f.Receiver)
		b.WriteString(").")
	}

	b.WriteString(f.Name)

	return b.String()
}

const (
	interfaceReceiver = "interface"
	invalidReceiver   = "<invalid>"
)

// FuncNameOf returns the [FuncName] of a function or method.
// Methods of generic types are named after the origin type.
func FuncNameOf(fun *types.Func) FuncName {
	fun = fun.Origin()

	var path string
	if pkg := fun.Pkg(); pkg != nil {
		path = pkg.Path()
	}

	sig, ok := fun.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return FuncName{Path: path, Name: fun.Name()}
	}

	recv := types.Unalias(sig.Recv().Type())
	if ptr, ok := recv.(*types.Pointer); ok {
		recv = types.Unalias(ptr.Elem())
	}

	var receiver string

	switch r := recv.(type) {
	case *types.Named:
		obj := r.Origin().Obj()
		receiver = obj.Name()

		if obj.Pkg() == nil {
			path = ""
		}

	case *types.Interface:
		return FuncName{Receiver: interfaceReceiver, Name: fun.Name()}

	default:
		receiver = invalidReceiver
		path = ""
	}

	return FuncName{Path: path, Receiver: receiver, Name: fun.Name()}
}

// ErrInvalidName is returned when a configured name can't be parsed.
var ErrInvalidName = errors.New("invalid name")

// ParseFuncName parses a function name in the format produced by [FuncName.String].
func ParseFuncName(s string) (FuncName, error) {
	s = strings.TrimSpace(s)

	if rest, ok := strings.CutPrefix(s, "("); ok {
		recv, name, ok := strings.Cut(rest, ").")
		if !ok || !validIdent(name) {
			return FuncName{}, fmt.Errorf("%w: method %q", ErrInvalidName, s)
		}

		tn, err := ParseTypeName(recv)
		if err != nil {
			return FuncName{}, fmt.Errorf("%w: receiver of %q", ErrInvalidName, s)
		}

		return FuncName{Path: tn.Path, Receiver: tn.Name, Name: name}, nil
	}

	path, name := splitQualified(s)
	if path == "" || !validIdent(name) {
		return FuncName{}, fmt.Errorf("%w: function %q", ErrInvalidName, s)
	}

	return FuncName{Path: path, Name: name}, nil
}

// splitQualified splits "path.Name" at the last dot after the last slash.
func splitQualified(s string) (path, name string) {
	start := strings.LastIndexByte(s, '/') + 1

	dot := strings.LastIndexByte(s[start:], '.')
	if dot < 0 {
		return "", s
	}

	return s[:start+dot], s[start+dot+1:]
}

func validIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_', 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case i > 0 && '0' <= r && r <= '9':
		default:
			return false
		}
	}

	return true
}
