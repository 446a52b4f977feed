// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

package rules

//go:generate go tool stringer -type Category -linecomment

// Category classifies a finding by how the resource was produced and who owns it.
//
// Construction means the value was built directly (composite literal or new),
// invocation means it was returned from a function or method. The analyzer can't
// know what a factory does internally, so invocation findings are worded more
// carefully.
type Category uint8

const (
	// ConstructionToField is a constructed value stored in a struct field.
	ConstructionToField Category = iota // construction-to-field

	// InvocationToField is a returned value stored in a struct field.
	InvocationToField // invocation-to-field

	// ConstructionToProperty is a constructed value stored in an embedded field.
	ConstructionToProperty // construction-to-embedded

	// InvocationToProperty is a returned value stored in an embedded field.
	InvocationToProperty // invocation-to-embedded

	// ConstructionToLocal is a constructed value stored in a local variable.
	ConstructionToLocal // construction-to-local

	// InvocationToLocal is a returned value stored in a local variable.
	InvocationToLocal // invocation-to-local

	// ConstructionToTransient is a constructed value that is not stored.
	ConstructionToTransient // construction-to-transient

	// InvocationToTransient is a returned value that is not stored.
	InvocationToTransient // invocation-to-transient

	numCategories
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c < numCategories
}

// Member reports whether the category belongs to a struct member.
func (c Category) Member() bool {
	return c <= InvocationToProperty
}
