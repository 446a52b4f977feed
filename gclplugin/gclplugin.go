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
	"fmt"

	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	closeguard "fillmore-labs.com/closeguard/analyzer"
)

// name is the linter name in golangci-lint configurations.
const name = "closeguard"

func init() { register.Plugin(name, New) }

// New decodes and validates the [Settings] and creates a [Plugin].
func New(rawSettings any) (register.LinterPlugin, error) {
	settings, err := register.DecodeSettings[Settings](rawSettings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	// golangci-lint filters generated files itself
	opts := append(settings.Options(), closeguard.WithGenerated(true))

	return Plugin{opts: opts}, nil
}

// Plugin runs closeguard as a [register.LinterPlugin].
type Plugin struct {
	opts closeguard.Options
}

// GetLoadMode requests syntax with type information.
func (Plugin) GetLoadMode() string {
	return register.LoadModeTypesInfo
}

// BuildAnalyzers returns a closeguard analyzer configured by the plugin settings.
func (p Plugin) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{closeguard.New(p.opts)}, nil
}
