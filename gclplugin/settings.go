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

package gclplugin

import (
	"errors"
	"fmt"
	"slices"

	closeguard "fillmore-labs.com/closeguard/analyzer"
	"fillmore-labs.com/closeguard/internal/symbol"
	"fillmore-labs.com/closeguard/rules"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Local enables checks of resources owned by local variables.
	Local *bool `json:"local,omitzero"`
	// Field enables checks of resources owned by struct fields.
	Field *bool `json:"field,omitzero"`
	// Transient enables checks of resources that are not stored.
	Transient *bool `json:"transient,omitzero"`
	// SuggestFixes enables suggested fixes for struct members.
	SuggestFixes *bool `json:"suggest-fixes,omitzero"`
	// ResourceTypes are additional types that must be closed.
	ResourceTypes []string `json:"resource-types,omitzero"`
	// Handoffs are additional functions taking over ownership of their arguments.
	Handoffs []string `json:"handoffs,omitzero"`
	// CloseDelegates are additional functions closing their arguments.
	CloseDelegates []string `json:"close-delegates,omitzero"`
	// Rules is a semantic version constraint on the rule table.
	Rules string `json:"rules,omitzero"`
}

// Validate checks the names and the rules constraint.
func (s Settings) Validate() error {
	var errs []error

	for _, name := range s.ResourceTypes {
		if _, err := symbol.ParseTypeName(name); err != nil {
			errs = append(errs, err)
		}
	}

	for _, name := range slices.Concat(s.Handoffs, s.CloseDelegates) {
		if _, err := symbol.ParseFuncName(name); err != nil {
			errs = append(errs, err)
		}
	}

	if s.Rules != "" {
		if err := rules.Compatible(s.Rules); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("closeguard settings: %w", err)
	}

	return nil
}

// Options converts [Settings] into a list of [closeguard.Option] for the closeguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []closeguard.Option {
	var opts []closeguard.Option

	opts = appendOption(opts, s.Local, closeguard.WithLocal)
	opts = appendOption(opts, s.Field, closeguard.WithField)
	opts = appendOption(opts, s.Transient, closeguard.WithTransient)
	opts = appendOption(opts, s.SuggestFixes, closeguard.WithFix)

	if len(s.ResourceTypes) > 0 {
		opts = append(opts, closeguard.WithResourceTypes(s.ResourceTypes...))
	}

	if len(s.Handoffs) > 0 {
		opts = append(opts, closeguard.WithHandoffs(s.Handoffs...))
	}

	if len(s.CloseDelegates) > 0 {
		opts = append(opts, closeguard.WithCloseDelegates(s.CloseDelegates...))
	}

	return opts
}

// appendOption appends a non-nil setting to a [closeguard.Option] list.
func appendOption[T any](opts []closeguard.Option, value *T, constructor func(T) closeguard.Option) []closeguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
