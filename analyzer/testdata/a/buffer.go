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

package a

import (
	"fmt"
	"io"
	"os"
)

type buffer struct {
	data []byte
}

func (b *buffer) Close() error {
	b.data = nil

	return nil
}

func newBuffer() *buffer {
	return &buffer{}
}

func constructed() {
	b := &buffer{} // want "Variable 'b' is constructed but never closed"
	b.data = append(b.data, 1)
}

func invoked() int {
	b := newBuffer() // want "Variable 'b' receives a closable result that is never closed"

	return len(b.data)
}

func chained() {
	defer newBuffer().Close()

	(&buffer{}).Close()
}

func use(io.Reader) {}

func discarded(name string) {
	_, _ = os.Open(name) // want "Closable result of os.Open is never closed"

	_ = &buffer{} // want "Value of type buffer is constructed but never closed"
}

func printed(name string) {
	fmt.Println(os.Open(name)) // want "Closable result of os.Open is never closed"
}

func collected(names []string) map[string]*os.File {
	files := make(map[string]*os.File, len(names))
	for _, name := range names {
		files[name], _ = os.Open(name) // want "Closable result of os.Open is never closed"
	}

	return files
}

func closedTransient() {
	closeQuietly(newBuffer())
}
