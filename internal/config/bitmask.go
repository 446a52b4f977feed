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

// flag is the set of underlying types usable in a [BitMask].
type flag interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BitMask is a set of binary options of type T.
type BitMask[T flag] struct {
	value T
}

// NewBitMask creates a [BitMask] with the specified flags enabled.
func NewBitMask[T flag](flags ...T) BitMask[T] {
	var b BitMask[T]
	for _, f := range flags {
		b.value |= f
	}

	return b
}

// Set enables or disables the specified flags.
func (b *BitMask[T]) Set(flags T, value bool) {
	if value {
		b.value |= flags
	} else {
		b.value &^= flags
	}
}

// Enabled reports whether any of the specified flags is enabled.
func (b BitMask[T]) Enabled(flags T) bool {
	return b.value&flags != 0
}

// Empty reports whether no flag is enabled.
func (b BitMask[T]) Empty() bool {
	return b.value == 0
}
