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

package rules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/closeguard/rules"
)

func TestTable(t *testing.T) {
	t.Parallel()

	ids := make(map[string]Category)
	names := make(map[string]Category)

	var n int
	for r := range All() {
		n++

		assert.Truef(t, r.Category.Valid(), "rule %s has invalid category", r.ID)
		assert.Equal(t, r, Lookup(r.Category))
		assert.Equal(t, r.Category.Member(), r.Fixable, "only members are fixable")

		require.NotContains(t, ids, r.ID, "duplicate id")
		ids[r.ID] = r.Category

		require.NotContains(t, names, r.Name, "duplicate name")
		names[r.Name] = r.Category

		got, ok := ByID(r.ID)
		require.True(t, ok)
		assert.Equal(t, r, got)

		assert.Contains(t, r.Message("x"), "x")
		assert.True(t, strings.HasSuffix(r.URL(), "#"+strings.ToLower(r.ID)))
	}

	assert.Equal(t, 8, n)
}

func TestLookupInvalid(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Rule{}, Lookup(Category(200)))

	_, ok := ByID("CG9999")
	assert.False(t, ok)
}

func TestCategoryString(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		category Category
		want     string
	}{
		{ConstructionToField, "construction-to-field"},
		{InvocationToProperty, "invocation-to-embedded"},
		{InvocationToTransient, "invocation-to-transient"},
		{Category(200), "Category(200)"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.category.String())
		})
	}
}

func TestFixes(t *testing.T) {
	t.Parallel()

	fixes := Fixes()
	require.Len(t, fixes, 1)
	assert.Equal(t, CloseMember, fixes[0].Name)
	assert.ElementsMatch(t, []string{"CG1001", "CG1002", "CG1003", "CG1004"}, fixes[0].IDs)

	fix, ok := FixFor("CG1003")
	require.True(t, ok)
	assert.Equal(t, CloseMember, fix.Name)

	_, ok = FixFor("CG2001")
	assert.False(t, ok)
}

func TestCompatible(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		constraint string
		wantErr    error
		invalid    bool
	}{
		{"^1.0", nil, false},
		{">= 1.0.0, < 2", nil, false},
		{"~1", nil, false},
		{"^2", ErrIncompatible, false},
		{"< 1.0.0", ErrIncompatible, false},
		{"not a version", nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.constraint, func(t *testing.T) {
			t.Parallel()

			err := Compatible(tc.constraint)

			switch {
			case tc.wantErr != nil:
				require.ErrorIs(t, err, tc.wantErr)

			case tc.invalid:
				require.Error(t, err)
				assert.NotErrorIs(t, err, ErrIncompatible)

			default:
				require.NoError(t, err)
			}
		})
	}
}
