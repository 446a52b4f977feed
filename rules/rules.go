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

// Package rules holds the fixed table of closeguard diagnostics.
//
// Every finding of the analyzer belongs to exactly one [Category]. Each category
// has a stable [Rule] identifier that hosts can use for configuration and
// suppression. The table is versioned with [Version]; identifiers are never
// reused for a different meaning.
package rules

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version is the version of the rule table.
var Version = semver.MustParse("1.0.0")

// Rule describes a single diagnostic.
type Rule struct {
	// ID is the stable identifier of the rule.
	ID string

	// Name is a short, human-readable name.
	Name string

	// Category is the ownership category of the finding.
	Category Category

	// Format is the message template, parameterized by the owner name.
	Format string

	// Fixable reports whether a suggested fix is offered.
	Fixable bool
}

// DocURL is the documentation of the rule table.
const DocURL = "https://github.com/fillmore-labs/closeguard"

// URL returns the documentation anchor of the rule.
func (r Rule) URL() string {
	return DocURL + "#" + strings.ToLower(r.ID)
}

// Message formats the rule's message for the given owner.
func (r Rule) Message(owner string) string {
	return fmt.Sprintf(r.Format, owner)
}

var table = [...]Rule{
	ConstructionToField: {
		ID: "CG1001", Name: "field-construction", Category: ConstructionToField,
		Format: "Field '%s' is constructed but never closed", Fixable: true,
	},
	InvocationToField: {
		ID: "CG1002", Name: "field-invocation", Category: InvocationToField,
		Format: "Field '%s' receives a closable result that is never closed", Fixable: true,
	},
	ConstructionToProperty: {
		ID: "CG1003", Name: "embedded-construction", Category: ConstructionToProperty,
		Format: "Embedded field '%s' is constructed but never closed", Fixable: true,
	},
	InvocationToProperty: {
		ID: "CG1004", Name: "embedded-invocation", Category: InvocationToProperty,
		Format: "Embedded field '%s' receives a closable result that is never closed", Fixable: true,
	},
	ConstructionToLocal: {
		ID: "CG2001", Name: "local-construction", Category: ConstructionToLocal,
		Format: "Variable '%s' is constructed but never closed",
	},
	InvocationToLocal: {
		ID: "CG2002", Name: "local-invocation", Category: InvocationToLocal,
		Format: "Variable '%s' receives a closable result that is never closed",
	},
	ConstructionToTransient: {
		ID: "CG3001", Name: "transient-construction", Category: ConstructionToTransient,
		Format: "Value of type %s is constructed but never closed",
	},
	InvocationToTransient: {
		ID: "CG3002", Name: "transient-invocation", Category: InvocationToTransient,
		Format: "Closable result of %s is never closed",
	},
}

// Lookup returns the rule for a category.
func Lookup(c Category) Rule {
	if !c.Valid() {
		return Rule{}
	}

	return table[c]
}

// ByID returns the rule with the given identifier.
func ByID(id string) (Rule, bool) {
	for _, r := range table {
		if r.ID == id {
			return r, true
		}
	}

	return Rule{}, false
}

// All yields all rules in category order.
func All() iter.Seq[Rule] {
	return slices.Values(table[:])
}

// FixRegistration names the rules a code fix handles.
type FixRegistration struct {
	// Name identifies the fix.
	Name string

	// Title is the message shown for the suggested fix.
	Title string

	// IDs are the rule identifiers handled by this fix.
	IDs []string
}

// CloseMember is the name of the fix closing a struct member in the Close method.
const CloseMember = "close-member"

// Fixes returns the registration manifest of all code fixes.
func Fixes() []FixRegistration {
	var ids []string

	for r := range All() {
		if r.Fixable {
			ids = append(ids, r.ID)
		}
	}

	return []FixRegistration{{
		Name:  CloseMember,
		Title: "Close member in Close method",
		IDs:   ids,
	}}
}

// FixFor returns the code fix handling the rule with the given identifier.
func FixFor(id string) (FixRegistration, bool) {
	for _, fix := range Fixes() {
		if slices.Contains(fix.IDs, id) {
			return fix, true
		}
	}

	return FixRegistration{}, false
}

// ErrIncompatible is returned when the rule table does not satisfy a version constraint.
var ErrIncompatible = errors.New("incompatible rule table")

// Compatible checks the rule table [Version] against a semantic version constraint.
func Compatible(constraint string) error {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("rules constraint %q: %w", constraint, err)
	}

	if !c.Check(Version) {
		return fmt.Errorf("%w: version %s does not satisfy %q", ErrIncompatible, Version, constraint)
	}

	return nil
}
