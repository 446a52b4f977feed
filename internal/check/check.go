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

// Package check runs the ownership pipeline over one file.
package check

import (
	"context"
	"go/ast"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/closeguard/internal/config"
	"fillmore-labs.com/closeguard/internal/disposal"
	"fillmore-labs.com/closeguard/internal/index"
	"fillmore-labs.com/closeguard/internal/owner"
	"fillmore-labs.com/closeguard/internal/report"
	"fillmore-labs.com/closeguard/internal/semantic"
	"fillmore-labs.com/closeguard/rules"
)

// Checker finds undisposed resources. It holds no mutable state and can check files concurrently.
type Checker struct {
	reg       *semantic.Registry
	idx       *index.Index
	cls       owner.Classifier
	disposal  disposal.Analyzer
	analyzers config.BitMask[config.AnalyzerFlags]
}

// New creates a [Checker] reporting the owner kinds enabled in analyzers.
func New(reg *semantic.Registry, idx *index.Index, analyzers config.BitMask[config.AnalyzerFlags]) Checker {
	cls := owner.New(reg, idx)

	return Checker{
		reg:       reg,
		idx:       idx,
		cls:       cls,
		disposal:  disposal.New(reg, cls),
		analyzers: analyzers,
	}
}

// File returns the findings for one file, in source order.
func (c Checker) File(ctx context.Context, file inspector.Cursor) ([]report.Finding, error) {
	defer trace.StartRegion(ctx, "CheckFile").End()

	var findings []report.Finding

	var fun inspector.Cursor

	for site := range c.idx.Sites(file) {
		if site.Func != fun {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			fun = site.Func
		}

		o, ok := c.cls.Classify(site)
		if !ok {
			continue // containing type can't be resolved
		}

		res, ok := c.disposal.Analyze(site, o)
		if !ok || res.Verdict == disposal.Disposed || !c.enabled(res.Category) {
			continue
		}

		findings = append(findings, c.finding(site, res))
	}

	return findings, nil
}

func (c Checker) enabled(cat rules.Category) bool {
	return c.analyzers.Enabled(config.AnalyzerFor(cat))
}

func (c Checker) finding(site index.Site, res disposal.Result) report.Finding {
	node := site.Node()

	f := report.Finding{
		Rule:   rules.Lookup(res.Category),
		Pos:    node.Pos(),
		End:    node.End(),
		Result: site.Result,
	}

	if v, decl, ok := owner.Member(res.Owner); ok {
		f.Owner = v.Name()
		f.TypeName = decl.Name()
		f.NeedsMethod = res.NeedsMethod

		return f
	}

	switch o := res.Owner.(type) {
	case owner.Local:
		f.Owner = o.Name()

	default:
		f.Owner = c.describe(site)
	}

	return f
}

// describe names a transient value by its callee or its type.
func (c Checker) describe(site index.Site) string {
	if call, ok := ast.Unparen(site.Node()).(*ast.CallExpr); ok && site.Kind == index.Invocation {
		if fun := c.reg.Callee(call); fun != nil {
			if pkg := fun.Pkg(); pkg != nil && pkg != c.reg.Package() && fun.Signature().Recv() == nil {
				return pkg.Name() + "." + fun.Name()
			}

			return fun.Name()
		}
	}

	return types.TypeString(site.Type, types.RelativeTo(c.reg.Package()))
}
