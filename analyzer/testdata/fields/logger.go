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

package fields

import (
	"os"
)

type Logger struct {
	out *os.File
}

func NewLogger(name string) (*Logger, error) {
	f, err := os.Create(name) // want "Field 'out' receives a closable result that is never closed, type 'Logger' has no Close method"
	if err != nil {
		return nil, err
	}

	return &Logger{out: f}, nil
}
