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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime"
	"runtime/trace"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/closeguard/internal/astutil"
	"fillmore-labs.com/closeguard/internal/check"
	"fillmore-labs.com/closeguard/internal/config"
	"fillmore-labs.com/closeguard/internal/fix"
	"fillmore-labs.com/closeguard/internal/index"
	"fillmore-labs.com/closeguard/internal/report"
	"fillmore-labs.com/closeguard/internal/semantic"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// unit is a file selected for checking.
type unit struct {
	file        inspector.Cursor
	currentFile astutil.CurrentFile
	findings    []report.Finding
}

// Run executes the closeguard analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("closeguard: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	if r.Analyzers.Empty() {
		return nil, nil
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "CloseGuard")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	// Stage 1: Index package-level declarations shared by all files
	region := trace.StartRegion(ctx, "Index")
	reg := semantic.New(p.TypesInfo, p.Pkg, r.ResourceTypes, r.Handoffs, r.CloseDelegates)
	idx := index.New(in, reg)
	region.End()

	units := r.selectFiles(p, in)

	// Stage 2: Find undisposed resources, one file per goroutine
	checker := check.New(reg, idx, r.Analyzers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range units {
		u := &units[i]

		g.Go(func() error {
			findings, err := checker.File(gctx, u.file)
			u.findings = findings

			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("closeguard: %w", err)
	}

	// Stage 3: Report in file order, with suggested fixes for struct members
	var fixer report.Fixer
	if r.Behavior.Enabled(config.SuggestFixes) {
		fixer = fix.New(p.Fset, in, reg, idx)
	}

	for _, u := range units {
		report.Emit(ctx, p, u.currentFile, u.findings, fixer)
	}

	return nil, nil
}

// selectFiles returns the files to check, skipping generated files and files with a nolint comment.
func (r *Options) selectFiles(p *analysis.Pass, in *inspector.Inspector) []unit {
	var units []unit

	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLint() {
			continue
		}

		units = append(units, unit{file: f, currentFile: currentFile})
	}

	return units
}
