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

package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"slices"
	"strings"
)

// closeguard is the name of the linter.
const closeguard = "closeguard"

// CurrentFile holds the per-file state needed to select and report findings.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
	nolint    bool
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	return CurrentFile{
		file:      file,
		handle:    handle,
		generated: ast.IsGenerated(file),
		nolint:    HasNoLint(file.Doc),
	}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// NoLint reports whether the package clause is preceded by a `//nolint:closeguard` directive.
func (c CurrentFile) NoLint() bool {
	return c.nolint
}

// Suppressed reports whether a comment on the line of pos, following pos, is a `//nolint:closeguard` directive.
func (c CurrentFile) Suppressed(pos token.Pos) bool {
	if c.handle == nil {
		return false
	}

	line := c.handle.Line(pos)

	i, _ := slices.BinarySearchFunc(c.file.Comments, pos,
		func(g *ast.CommentGroup, p token.Pos) int { return int(g.Pos() - p) })

	for _, group := range c.file.Comments[i:] {
		if c.handle.Line(group.Pos()) != line {
			return false
		}

		if slices.ContainsFunc(group.List, CommentHasNoLint) {
			return true
		}
	}

	return false
}

// HasNoLint checks if the last line of a doc comment is a `//nolint:closeguard` directive.
func HasNoLint(doc *ast.CommentGroup) bool {
	return doc != nil && len(doc.List) > 0 && CommentHasNoLint(doc.List[len(doc.List)-1])
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `//nolint:closeguard` directive.
func CommentHasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	return slices.ContainsFunc(strings.Split(matches[1], ","), func(linter string) bool {
		l := strings.ToLower(strings.TrimSpace(linter))

		return l == closeguard || l == "all"
	})
}
