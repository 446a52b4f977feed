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
	"io"
	"net"
)

type Server struct {
	ln   net.Listener
	done chan struct{}
}

var _ io.Closer = (*Server)(nil)

func (s *Server) Listen(addr string) error {
	var err error
	s.ln, err = net.Listen("tcp", addr) // want "Field 'ln' receives a closable result that is never closed in Server.Close"

	return err
}

func (s *Server) Close() error {
	close(s.done)

	return nil
}
