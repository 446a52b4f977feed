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
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"
)

// prependClose adds a deferred close of the member at the start of an existing Close method,
// naming the receiver when necessary.
func (s *Synthesizer) prependClose(t target, method inspector.Cursor) ([]analysis.TextEdit, bool) {
	fun := method.Node().(*ast.FuncDecl)
	recv := fun.Recv.List[0]

	var (
		edits []analysis.TextEdit
		name  string
	)

	switch {
	case len(recv.Names) == 0:
		name = s.receiverName(t)
		edits = append(edits, analysis.TextEdit{Pos: recv.Type.Pos(), End: recv.Type.Pos(), NewText: []byte(name + " ")})

	case recv.Names[0].Name == "_":
		name = s.receiverName(t)
		edits = append(edits, analysis.TextEdit{Pos: recv.Names[0].Pos(), End: recv.Names[0].End(), NewText: []byte(name)})

	default:
		name = recv.Names[0].Name
	}

	if len(edits) > 0 && mentions(fun.Body, name) {
		return nil, false
	}

	stmt := &ast.DeferStmt{Call: closeCall(name, t.field.Name())}

	var buf bytes.Buffer
	buf.WriteString("\n\t")

	if err := format.Node(&buf, token.NewFileSet(), stmt); err != nil {
		return nil, false
	}

	// keep the existing first statement on its own line
	if next := firstPos(fun.Body); s.line(next) == s.line(fun.Body.Lbrace) {
		buf.WriteByte('\n')
	}

	pos := fun.Body.Lbrace + 1
	edits = append(edits, analysis.TextEdit{Pos: pos, End: pos, NewText: buf.Bytes()})

	return edits, true
}

// addMethod synthesizes a Close method for the type, placed after its last method
// or after the type declaration.
func (s *Synthesizer) addMethod(t target) (analysis.TextEdit, bool) {
	name := s.receiverName(t)

	fun := &ast.FuncDecl{
		Recv: &ast.FieldList{List: []*ast.Field{{
			Names: []*ast.Ident{ast.NewIdent(name)},
			Type:  &ast.StarExpr{X: s.typeExpr(t)},
		}}},
		Name: ast.NewIdent("Close"),
		Type: &ast.FuncType{
			Params:  &ast.FieldList{},
			Results: &ast.FieldList{List: []*ast.Field{{Type: ast.NewIdent("error")}}},
		},
	}
	body := &ast.ReturnStmt{Results: []ast.Expr{closeCall(name, t.field.Name())}}

	var buf bytes.Buffer
	buf.WriteString("\n\n// Close releases the resources held by ")
	buf.WriteString(t.decl.Name())
	buf.WriteString(".\n")

	fset := token.NewFileSet()
	if err := format.Node(&buf, fset, fun); err != nil {
		return analysis.TextEdit{}, false
	}

	buf.WriteString(" {\n\t")

	if err := format.Node(&buf, fset, body); err != nil {
		return analysis.TextEdit{}, false
	}

	buf.WriteString("\n}")

	pos := t.decl.GenDecl().Node().End()
	if last, ok := t.decl.LastMethod(); ok {
		pos = last.Node().End()
	}

	return analysis.TextEdit{Pos: pos, End: pos, NewText: buf.Bytes()}, true
}

// typeExpr returns the type expression of the receiver, instantiated with the type's parameters.
func (s *Synthesizer) typeExpr(t target) ast.Expr {
	typ := ast.NewIdent(t.decl.Name())

	tparams := t.decl.TypeSpec().TypeParams
	if tparams == nil {
		return typ
	}

	var indices []ast.Expr

	for _, field := range tparams.List {
		for _, n := range field.Names {
			indices = append(indices, ast.NewIdent(n.Name))
		}
	}

	if len(indices) == 1 {
		return &ast.IndexExpr{X: typ, Index: indices[0]}
	}

	return &ast.IndexListExpr{X: typ, Indices: indices}
}

// receiverName returns the receiver name used by the type's methods,
// or the lowercased initial of the type name.
func (s *Synthesizer) receiverName(t target) string {
	for _, m := range t.decl.Methods {
		recv := m.Node().(*ast.FuncDecl).Recv.List[0]
		if len(recv.Names) > 0 && recv.Names[0].Name != "_" {
			return recv.Names[0].Name
		}
	}

	r, _ := utf8.DecodeRuneInString(t.decl.Name())
	if name := string(unicode.ToLower(r)); name != t.field.Name() && token.IsIdentifier(name) {
		return name
	}

	return "recv"
}

func closeCall(recv, field string) *ast.CallExpr {
	return &ast.CallExpr{
		Fun: &ast.SelectorExpr{
			X:   &ast.SelectorExpr{X: ast.NewIdent(recv), Sel: ast.NewIdent(field)},
			Sel: ast.NewIdent("Close"),
		},
	}
}

// mentions reports whether an identifier with the given name occurs in the block.
func mentions(body *ast.BlockStmt, name string) bool {
	found := false

	ast.Inspect(body, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok && id.Name == name {
			found = true
		}

		return !found
	})

	return found
}

// firstPos returns the position of the first statement, or the closing brace of an empty block.
func firstPos(body *ast.BlockStmt) token.Pos {
	if len(body.List) > 0 {
		return body.List[0].Pos()
	}

	return body.Rbrace
}

func (s *Synthesizer) line(pos token.Pos) int {
	return s.fset.PositionFor(pos, false).Line
}
