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

package analyzer

import (
	"flag"

	"fillmore-labs.com/closeguard/internal/config"
	"fillmore-labs.com/closeguard/internal/run"
	"fillmore-labs.com/closeguard/internal/symbol"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(boolValue[config.Config, *config.BitMask[config.Config]]{&r.Behavior, config.IncludeGenerated},
		"generated", "check generated files")
	flags.Var(boolValue[config.Config, *config.BitMask[config.Config]]{&r.Behavior, config.SuggestFixes},
		"suggest-fixes", "suggest closing struct members in Close methods")

	flags.Var(newAnalyzerValue(&r.Analyzers, config.LocalAnalyzer), "local", "check resources owned by local variables")
	flags.Var(newAnalyzerValue(&r.Analyzers, config.FieldAnalyzer), "field", "check resources owned by struct fields")
	flags.Var(newAnalyzerValue(&r.Analyzers, config.TransientAnalyzer), "transient", "check resources that are not stored")

	flags.Var(listValue[symbol.TypeName]{list: &r.ResourceTypes, parse: symbol.ParseTypeName},
		"types", "comma-separated list of additional resource types (path.Name)")
	flags.Var(listValue[symbol.FuncName]{list: &r.Handoffs, parse: symbol.ParseFuncName},
		"handoff", "comma-separated list of additional functions taking ownership of resources")
	flags.Var(listValue[symbol.FuncName]{list: &r.CloseDelegates, parse: symbol.ParseFuncName},
		"close-delegate", "comma-separated list of additional functions closing their resource arguments")
}

type analyzerValue = boolValue[config.AnalyzerFlags, *config.BitMask[config.AnalyzerFlags]]

func newAnalyzerValue(flags *config.BitMask[config.AnalyzerFlags], value config.AnalyzerFlags) analyzerValue {
	return analyzerValue{flags: flags, value: value}
}
