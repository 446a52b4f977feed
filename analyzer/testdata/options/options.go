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

package options

import "os"

type Journal struct {
	f *os.File
}

func (j *Journal) Open(name string) (err error) {
	j.f, err = os.Open(name) // want "Field 'f' receives a closable result that is never closed, type 'Journal' has no Close method"

	return err
}

func local(name string) {
	f, _ := os.Open(name)
	_ = f.Name()
}

func transient(name string) {
	_, _ = os.Open(name)
}
