// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// It is designed to simplify testing of the closeguard analyzer by handling common
// boilerplate code for parsing and type-checking Go source fragments.
package testsource

import (
	"bytes"
	"cmp"
	"fmt"
	"go/ast"
	"go/format"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"slices"
	"strings"
	"testing"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

const (
	testpkg  = "test"
	filename = "test.go"
)

// Parse parses a Go source code fragment into an AST.
// The provided source `src` is automatically wrapped in a function body `func _() { ... }`
// within a package `test`. This allows testing statement-level code fragments without
// manually constructing the surrounding package and function scaffolding.
//
// Call [Check] on the result when type information is needed.
//
// Returns:
//   - *token.FileSet: The file set containing the single source file.
//   - *ast.File: The parsed AST of the source file.
//   - *ast.FuncDecl: The function declaration wrapping the source code.
//   - inspector.Cursor: A cursor positioned at the wrapper function's Body field.
func Parse(tb testing.TB, src string) (fset *token.FileSet, f *ast.File, fn *ast.FuncDecl, body inspector.Cursor) {
	tb.Helper()

	fset = token.NewFileSet()
	srcFile := wrapSource(src)

	f, err := parser.ParseFile(fset, filename, srcFile, parser.SkipObjectResolution|parser.ParseComments)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	fn, body = firstFuncDecl(f)
	if fn == nil {
		tb.Fatal("Can't find function")
	}

	return fset, f, fn, body
}

// Check performs type checking on the provided AST files.
// It creates and returns a fully type-checked *types.Package and *types.Info.
// Use this helper when testing analyzer components that require type information
// (e.g. for method lookup, type identity, or scope analysis).
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Instances:  make(map[*ast.Ident]types.Instance),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

// Source is a parsed and type-checked single-file package.
type Source struct {
	Text      string
	Fset      *token.FileSet
	File      *ast.File
	Pkg       *types.Package
	Info      *types.Info
	Inspector *inspector.Inspector
}

// Load parses and type-checks a complete source file of package `test`.
func Load(tb testing.TB, src string) *Source {
	tb.Helper()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source: %v\n%s", err, src)
	}

	pkg, info := Check(tb, fset, f)

	return &Source{
		Text:      src,
		Fset:      fset,
		File:      f,
		Pkg:       pkg,
		Info:      info,
		Inspector: inspector.New([]*ast.File{f}),
	}
}

// FileCursor returns the cursor of the source file.
func (s *Source) FileCursor() inspector.Cursor {
	for c := range s.Inspector.Root().Children() {
		return c
	}

	return s.Inspector.Root()
}

// Find returns the cursor of the innermost node spanning exactly the first occurrence of text.
func (s *Source) Find(tb testing.TB, text string) inspector.Cursor {
	tb.Helper()

	offset := strings.Index(s.Text, text)
	if offset < 0 {
		tb.Fatalf("Can't find %q in source", text)
	}

	handle := s.Fset.File(s.File.FileStart)
	start := handle.Pos(offset)
	end := handle.Pos(offset + len(text))

	c, ok := s.Inspector.Root().FindByPos(start, end)
	if !ok || c.Node().Pos() != start || c.Node().End() != end {
		tb.Fatalf("No node spans %q", text)
	}

	return c
}

// Snippet returns the source text of a node.
func (s *Source) Snippet(n ast.Node) string {
	handle := s.Fset.File(s.File.FileStart)

	return s.Text[handle.Offset(n.Pos()):handle.Offset(n.End())]
}

// Func returns the cursor of the function declaration with the given name.
func (s *Source) Func(tb testing.TB, name string) inspector.Cursor {
	tb.Helper()

	for c := range s.Inspector.Root().Preorder((*ast.FuncDecl)(nil)) {
		if c.Node().(*ast.FuncDecl).Name.Name == name {
			return c
		}
	}

	tb.Fatalf("Can't find function %s", name)

	return inspector.Cursor{}
}

// ApplyEdits applies text edits to the source and formats the result.
func (s *Source) ApplyEdits(edits []analysis.TextEdit) ([]byte, error) {
	handle := s.Fset.File(s.File.FileStart)

	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b analysis.TextEdit) int { return cmp.Compare(a.Pos, b.Pos) })

	var (
		buf  bytes.Buffer
		last int
	)

	for _, e := range sorted {
		start, end := handle.Offset(e.Pos), handle.Offset(e.End)
		if start < last || end < start {
			return nil, fmt.Errorf("overlapping edit at offset %d", start)
		}

		buf.WriteString(s.Text[last:start])
		buf.Write(e.NewText)
		last = end
	}

	buf.WriteString(s.Text[last:])

	return format.Source(buf.Bytes())
}

func wrapSource(src string) *bytes.Buffer {
	const (
		header     = "package " + testpkg + "\n\nfunc _() {\n"
		suffix     = "\n}"
		wrapperLen = len(header) + len(suffix)
	)

	var srcFile bytes.Buffer
	srcFile.Grow(wrapperLen + len(src))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error
	srcFile.WriteString(suffix) // ignore error

	return &srcFile
}

func firstFuncDecl(f *ast.File) (fn *ast.FuncDecl, body inspector.Cursor) {
	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Preorder((*ast.FuncDecl)(nil)) {
		fn, body = c.Node().(*ast.FuncDecl), c.ChildAt(edge.FuncDecl_Body, -1)

		return fn, body
	}

	return nil, root
}
