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

import "io"

type Stream struct {
	r io.Reader
}

func (s *Stream) Read(p []byte) (int, error) { return s.r.Read(p) }

func (s *Stream) Close() error { return nil }

type Pipeline struct {
	*Stream
	name string
}

func NewPipeline(r io.Reader) *Pipeline {
	return &Pipeline{Stream: &Stream{r: r}, name: "p"} // want "Embedded field 'Stream' is constructed but never closed in Pipeline.Close"
}

func (*Pipeline) Close() {
}
