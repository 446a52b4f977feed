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
	"fillmore-labs.com/closeguard/internal/config"
	"fillmore-labs.com/closeguard/internal/semantic"
	"fillmore-labs.com/closeguard/internal/symbol"
)

// Options represent configuration options for the closeguard analyzer.
type Options struct {
	// Analyzers represent the owner kinds to be checked.
	Analyzers config.BitMask[config.AnalyzerFlags]

	// Behavior holds behavioral options.
	Behavior config.BitMask[config.Config]

	// ResourceTypes are the allow-listed foreign types that must be closed.
	ResourceTypes []symbol.TypeName

	// Handoffs are functions taking over ownership of their resource arguments.
	Handoffs []symbol.FuncName

	// CloseDelegates are functions closing their resource arguments, in addition to
	// the functions recognized by name.
	CloseDelegates []symbol.FuncName
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Analyzers:     config.NewBitMask(config.AllAnalyzers),
		Behavior:      config.NewBitMask(config.SuggestFixes),
		ResourceTypes: semantic.DefaultResourceTypes(),
		Handoffs:      semantic.DefaultHandoffs(),
	}
}
