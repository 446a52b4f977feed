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

package config

import "fillmore-labs.com/closeguard/rules"

// AnalyzerFlags selects the owner kinds that are checked.
type AnalyzerFlags uint8

const (
	// LocalAnalyzer enables checks of resources owned by local variables.
	LocalAnalyzer AnalyzerFlags = 1 << iota

	// FieldAnalyzer enables checks of resources owned by struct fields and embedded fields.
	FieldAnalyzer

	// TransientAnalyzer enables checks of resources that are not stored.
	TransientAnalyzer

	// AllAnalyzers enables all checks.
	AllAnalyzers = LocalAnalyzer | FieldAnalyzer | TransientAnalyzer
)

// AnalyzerFor returns the analyzer reporting findings of a category.
func AnalyzerFor(c rules.Category) AnalyzerFlags {
	switch c {
	case rules.ConstructionToField, rules.InvocationToField, rules.ConstructionToProperty, rules.InvocationToProperty:
		return FieldAnalyzer

	case rules.ConstructionToLocal, rules.InvocationToLocal:
		return LocalAnalyzer

	default:
		return TransientAnalyzer
	}
}

// Config holds behavioral options of the analyzer.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota

	// SuggestFixes enables suggested fixes for struct members.
	SuggestFixes
)
