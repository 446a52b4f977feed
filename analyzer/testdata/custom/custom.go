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

package custom

import "test/custom/pool"

func acquired() int {
	l := pool.Acquire() // want "Variable 'l' receives a closable result that is never closed"

	_ = l

	return 0
}

func released() {
	l := pool.Acquire()
	pool.Release(l)
}

func recycled() {
	l := pool.Acquire()
	pool.Recycle(l)
}

func counted() int {
	l := pool.Acquire() // want "Variable 'l' receives a closable result that is never closed"

	return pool.ClosedCount(l)
}
