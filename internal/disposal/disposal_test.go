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

package disposal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "fillmore-labs.com/closeguard/internal/disposal"
	"fillmore-labs.com/closeguard/internal/index"
	"fillmore-labs.com/closeguard/internal/owner"
	"fillmore-labs.com/closeguard/internal/semantic"
	"fillmore-labs.com/closeguard/internal/testsource"
)

const disposalSource = `package test

import "io"

type handle struct{}

func (*handle) Close() error { return nil }

func mk(int) *handle { return new(handle) }

func closeAll(cs ...io.Closer) {}

func register(func() error) {}

func direct() { h := mk(1); h.Close() }

func deferred() { h := mk(2); defer h.Close() }

func guarded() {
	h := mk(3)
	if h != nil {
		h.Close()
	}
}

func asserted() {
	var c any = mk(4)
	if cl, ok := c.(io.Closer); ok {
		cl.Close()
	}
}

func assertChained() {
	var c io.Closer = mk(5)
	c.(io.Closer).Close()
}

func methodValue() { h := mk(6); register(h.Close) }

func delegate() { h := mk(7); closeAll(h) }

func leak() { h := mk(8); _ = h }

func alias() { h := mk(9); g := h; g.Close() }

func cycle() { a := mk(10); b := a; a = b; _ = a }

func ranged() {
	a, b := mk(11), mk(12)
	for _, h := range []*handle{a, b} {
		h.Close()
	}
}

func transient() { mk(13).Close() }

func transientDefer() { defer mk(14).Close() }

func transientLeak() { mk(15) }

func transientDelegate() { closeAll(mk(16)) }

func returned() *handle { h := mk(17); return h }

func sent(ch chan<- *handle) { h := mk(18); ch <- h }

func first() { h := mk(19); h.Close() }

func second() { h := mk(20); _ = h }

func shadow() {
	h := mk(21)
	{
		h := mk(22)
		h.Close()
	}
	_ = h
}

type Closed struct{ a *handle }

func (c *Closed) Close() error { return c.a.Close() }

func newClosed() *Closed { return &Closed{a: mk(23)} }

type Open struct{ a *handle }

func newOpen() *Open { return &Open{a: mk(24)} }

type Partial struct{ a, b *handle }

func (p *Partial) Close() error { return p.a.Close() }

func newPartial() *Partial { return &Partial{a: mk(25), b: mk(26)} }

type Guarded struct{ a *handle }

func (g *Guarded) Close() error {
	if g.a != nil {
		return g.a.Close()
	}

	return nil
}

func newGuarded() *Guarded { return &Guarded{a: mk(27)} }

func transfer() *Open { h := mk(28); o := &Open{}; o.a = h; return o }

func transferClosed() *Closed { h := mk(29); c := &Closed{}; c.a = h; return c }

type Aliased struct{ a *handle }

func (x *Aliased) Close() error { r := x.a; return r.Close() }

func newAliased() *Aliased { return &Aliased{a: mk(30)} }

type Wrapper struct{ *handle }

func newWrapper() *Wrapper { return &Wrapper{handle: mk(31)} }

type other struct{}

func (*other) Close() error { return nil }

type Ambiguous struct {
	*handle
	*other
}

func newAmbiguous() *Ambiguous { return &Ambiguous{handle: mk(32)} }

type Shadowed struct{ *handle }

func (*Shadowed) Close() error { return nil }

func newShadowed() *Shadowed { return &Shadowed{handle: mk(33)} }

func wrap() *Wrapper { h := mk(34); return &Wrapper{handle: h} }
`

func describe(res Result, ok bool) string {
	switch {
	case !ok:
		return "exempt"

	case res.Verdict == Disposed:
		return "disposed"
	}

	s := res.Category.String()
	if name := res.Owner.Name(); name != "" {
		s += " " + name
	}

	if res.NeedsMethod {
		s += " needs-method"
	}

	return s
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	s := testsource.Load(t, disposalSource)
	reg := semantic.New(s.Info, s.Pkg, semantic.DefaultResourceTypes(), semantic.DefaultHandoffs(), nil)
	idx := index.New(s.Inspector, reg)
	cls := owner.New(reg, idx)
	an := New(reg, cls)

	got := make(map[string]string)

	for site := range idx.Sites(s.FileCursor()) {
		o, ok := cls.Classify(site)
		if !ok {
			got[s.Snippet(site.Node())] = "skipped"

			continue
		}

		got[s.Snippet(site.Node())] = describe(an.Analyze(site, o))
	}

	testCases := [...]struct {
		site string
		want string
	}{
		{"new(handle)", "exempt"},
		{"mk(1)", "disposed"},
		{"mk(2)", "disposed"},
		{"mk(3)", "disposed"},
		{"mk(4)", "disposed"},
		{"mk(5)", "disposed"},
		{"mk(6)", "disposed"},
		{"mk(7)", "disposed"},
		{"mk(8)", "invocation-to-local h"},
		{"mk(9)", "disposed"},
		{"mk(10)", "invocation-to-local a"},
		{"mk(11)", "disposed"},
		{"mk(12)", "disposed"},
		{"mk(13)", "disposed"},
		{"mk(14)", "disposed"},
		{"mk(15)", "invocation-to-transient"},
		{"mk(16)", "disposed"},
		{"mk(17)", "disposed"},
		{"mk(18)", "disposed"},
		{"mk(19)", "disposed"},
		{"mk(20)", "invocation-to-local h"},
		{"mk(21)", "invocation-to-local h"},
		{"mk(22)", "disposed"},
		{"&Closed{a: mk(23)}", "exempt"},
		{"mk(23)", "disposed"},
		{"mk(24)", "invocation-to-field a needs-method"},
		{"&Partial{a: mk(25), b: mk(26)}", "exempt"},
		{"mk(25)", "disposed"},
		{"mk(26)", "invocation-to-field b"},
		{"&Guarded{a: mk(27)}", "exempt"},
		{"mk(27)", "disposed"},
		{"mk(28)", "invocation-to-field a needs-method"},
		{"mk(29)", "disposed"},
		{"&Closed{}", "disposed"},
		{"&Aliased{a: mk(30)}", "exempt"},
		{"mk(30)", "disposed"},
		{"&Wrapper{handle: mk(31)}", "exempt"},
		{"mk(31)", "disposed"},
		{"mk(32)", "invocation-to-embedded handle needs-method"},
		{"&Shadowed{handle: mk(33)}", "exempt"},
		{"mk(33)", "invocation-to-embedded handle"},
		{"&Wrapper{handle: h}", "exempt"},
		{"mk(34)", "disposed"},
	}

	assert.Len(t, got, len(testCases))

	for _, tc := range testCases {
		t.Run(tc.site, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, got[tc.site])
		})
	}
}
