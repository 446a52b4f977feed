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

package owner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fillmore-labs.com/closeguard/internal/index"
	. "fillmore-labs.com/closeguard/internal/owner"
	"fillmore-labs.com/closeguard/internal/semantic"
	"fillmore-labs.com/closeguard/internal/symbol"
	"fillmore-labs.com/closeguard/internal/testsource"
)

const ownerSource = `package test

import "os"

type handle struct{}

func (*handle) Close() error { return nil }

type Holder struct {
	res *handle
	*os.File
}

var pkgVar *handle

func mk(int) *handle { return new(handle) }

func pair(int) (error, *handle) { return nil, nil }

func consume(*handle) {}

func adopt(*handle) {}

func classify(param *handle) (named *handle) {
	local := mk(1)
	_ = mk(2)
	param = mk(3)
	named = mk(4)
	pkgVar = mk(5)
	var h Holder
	h.res = mk(6)
	h.File, _ = os.Open("a")
	_, other := pair(7)
	_ = Holder{res: mk(8)}
	_ = Holder{mk(9), nil}
	_ = []*handle{mk(10)}
	m := map[string]*handle{"x": mk(11)}
	m["y"] = mk(12)
	consume(mk(13))
	mk(14)
	ch := make(chan *handle, 1)
	ch <- mk(15)
	(local) = (mk(16))
	func() { local = mk(17) }()
	go func(p *handle) { p = mk(18); _ = p }(nil)
	adopt(mk(19))
	_, _, _, _ = local, other, m, h
	return mk(20)
}

func skipped() {
	type inner struct{ r *handle }
	var i inner
	i.r = mk(21)
	_ = i
}
`

func describe(o Owner, ok bool) string {
	if !ok {
		return "skipped"
	}

	switch o := o.(type) {
	case Local:
		return "local " + o.Name()

	case Field:
		return "field " + o.Type.Name() + "." + o.Name()

	case Property:
		return "property " + o.Type.Name() + "." + o.Name()

	case Parameter:
		return "parameter " + o.Name()

	case Transient:
		return "transient"

	case Handoff:
		return "handoff " + o.Reason

	default:
		return "unknown"
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	s := testsource.Load(t, ownerSource)
	reg := semantic.New(s.Info, s.Pkg, semantic.DefaultResourceTypes(), []symbol.FuncName{{Path: "test", Name: "adopt"}}, nil)
	idx := index.New(s.Inspector, reg)
	cls := New(reg, idx)

	got := make(map[string]string)
	for site := range idx.Sites(s.FileCursor()) {
		got[s.Snippet(site.Node())] = describe(cls.Classify(site))
	}

	testCases := [...]struct {
		site string
		want string
	}{
		{"new(handle)", "handoff returned"},
		{"mk(1)", "local local"},
		{"mk(2)", "transient"},
		{"mk(3)", "parameter param"},
		{"mk(4)", "handoff named result"},
		{"mk(5)", "handoff package variable"},
		{"mk(6)", "field Holder.res"},
		{`os.Open("a")`, "property Holder.File"},
		{"pair(7)", "local other"},
		{"Holder{res: mk(8)}", "transient"},
		{"mk(8)", "field Holder.res"},
		{"Holder{mk(9), nil}", "transient"},
		{"mk(9)", "field Holder.res"},
		{"mk(10)", "transient"},
		{"mk(11)", "transient"},
		{"mk(12)", "transient"},
		{"mk(13)", "transient"},
		{"mk(14)", "transient"},
		{"mk(15)", "handoff sent"},
		{"mk(16)", "local local"},
		{"mk(17)", "local local"},
		{"mk(18)", "parameter p"},
		{"mk(19)", "handoff passed to adopt"},
		{"mk(20)", "handoff returned"},
		{"mk(21)", "skipped"},
	}

	assert.Len(t, got, len(testCases))

	for _, tc := range testCases {
		t.Run(tc.site, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, got[tc.site])
		})
	}
}

func TestMember(t *testing.T) {
	t.Parallel()

	s := testsource.Load(t, ownerSource)
	reg := semantic.New(s.Info, s.Pkg, semantic.DefaultResourceTypes(), nil, nil)
	idx := index.New(s.Inspector, reg)

	var field Owner
	for site := range idx.Sites(s.FileCursor()) {
		if o, ok := New(reg, idx).Classify(site); ok {
			if _, ok := o.(Field); ok {
				field = o

				break
			}
		}
	}

	v, decl, ok := Member(field)
	if assert.True(t, ok) {
		assert.Equal(t, "res", v.Name())
		assert.Equal(t, "Holder", decl.Name())
	}

	_, _, ok = Member(Transient{})
	assert.False(t, ok)

	assert.Empty(t, Handoff{Reason: "returned"}.Name())
}
