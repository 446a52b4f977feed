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

package fix

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/token"
	pathpkg "path"
	"slices"
	"strconv"

	"golang.org/x/tools/go/analysis"
)

// addAssertion declares that the type implements io.Closer, importing "io" when necessary.
func (s *Synthesizer) addAssertion(t target) []analysis.TextEdit {
	qual, importEdit, ok := s.ioQualifier(t.file)
	if !ok {
		return nil
	}

	var closer ast.Expr = &ast.SelectorExpr{X: ast.NewIdent(qual), Sel: ast.NewIdent("Closer")}
	if qual == "" {
		closer = ast.NewIdent("Closer")
	}

	spec := &ast.ValueSpec{
		Names:  []*ast.Ident{ast.NewIdent("_")},
		Type:   closer,
		Values: []ast.Expr{&ast.CallExpr{Fun: &ast.ParenExpr{X: &ast.StarExpr{X: ast.NewIdent(t.decl.Name())}}, Args: []ast.Expr{ast.NewIdent("nil")}}},
	}

	var buf bytes.Buffer

	pos, grouped := s.assertionPos(t)
	if grouped {
		buf.WriteByte('\t')

		if err := format.Node(&buf, token.NewFileSet(), spec); err != nil {
			return nil
		}

		buf.WriteByte('\n')
	} else {
		buf.WriteString("\n\n")

		decl := &ast.GenDecl{Tok: token.VAR, Specs: []ast.Spec{spec}}
		if err := format.Node(&buf, token.NewFileSet(), decl); err != nil {
			return nil
		}
	}

	edits := []analysis.TextEdit{{Pos: pos, End: pos, NewText: buf.Bytes()}}
	if importEdit != nil {
		edits = append(edits, *importEdit)
	}

	return edits
}

// assertionPos returns where to insert the assertion: before the closing parenthesis of a grouped
// assertion block, after the last assertion or after the type declaration.
func (s *Synthesizer) assertionPos(t target) (token.Pos, bool) {
	for _, a := range slices.Backward(t.decl.Assertions) {
		if a.Parent().Parent() != t.decl.File() {
			continue
		}

		gen := a.Parent().Node().(*ast.GenDecl)
		if gen.Rparen.IsValid() {
			return gen.Rparen, true
		}

		return gen.End(), false
	}

	return t.decl.GenDecl().Node().End(), false
}

// ioQualifier returns the name under which "io" is imported in the file and an edit adding the import
// when missing. A new import is renamed when the package or another import already uses the name "io".
// It fails when "io" is imported for side effects only and no name is available.
func (s *Synthesizer) ioQualifier(file *ast.File) (string, *analysis.TextEdit, bool) {
	for _, imp := range file.Imports {
		if path, err := strconv.Unquote(imp.Path.Value); err != nil || path != "io" {
			continue
		}

		switch {
		case imp.Name == nil:
			return "io", nil, true

		case imp.Name.Name == "_":
			continue

		case imp.Name.Name == ".":
			return "", nil, true

		default:
			return imp.Name.Name, nil, true
		}
	}

	name, ok := s.importName(file)
	if !ok {
		return "", nil, false
	}

	spec := strconv.Quote("io")
	if name != "io" {
		spec = name + " " + spec
	}

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.IMPORT {
			continue
		}

		if gen.Lparen.IsValid() && len(gen.Specs) > 0 {
			pos := gen.Specs[0].Pos()

			return name, &analysis.TextEdit{Pos: pos, End: pos, NewText: []byte(spec + "\n\t")}, true
		}

		pos := gen.End()

		return name, &analysis.TextEdit{Pos: pos, End: pos, NewText: []byte("\nimport " + spec)}, true
	}

	pos := file.Name.End()

	return name, &analysis.TextEdit{Pos: pos, End: pos, NewText: []byte("\n\nimport " + spec)}, true
}

// importName returns a name for a new "io" import that is used neither in the package scope
// nor by the file's imports.
func (s *Synthesizer) importName(file *ast.File) (string, bool) {
	for _, name := range [...]string{"io", "stdio", "goio"} {
		if s.reg.Package().Scope().Lookup(name) != nil {
			continue
		}

		if slices.ContainsFunc(file.Imports, func(imp *ast.ImportSpec) bool { return importedName(imp) == name }) {
			continue
		}

		return name, true
	}

	return "", false
}

// importedName returns the name an import declares in the file scope, assuming the package name
// matches the last element of its path.
func importedName(imp *ast.ImportSpec) string {
	if imp.Name != nil {
		return imp.Name.Name
	}

	path, err := strconv.Unquote(imp.Path.Value)
	if err != nil {
		return ""
	}

	return pathpkg.Base(path)
}

// merge sorts edits by position and joins insertions at the same position in their original order.
func merge(edits []analysis.TextEdit) []analysis.TextEdit {
	slices.SortStableFunc(edits, func(a, b analysis.TextEdit) int { return int(a.Pos - b.Pos) })

	merged := make([]analysis.TextEdit, 0, len(edits))

	for _, e := range edits {
		if n := len(merged); n > 0 {
			if last := &merged[n-1]; last.Pos == e.Pos && last.End == last.Pos && e.End == e.Pos {
				last.NewText = append(slices.Clip(last.NewText), e.NewText...)

				continue
			}
		}

		merged = append(merged, e)
	}

	return merged
}
