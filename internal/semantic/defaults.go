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

package semantic

import "fillmore-labs.com/closeguard/internal/symbol"

// DefaultResourceTypes returns the allow-listed standard library resource types.
func DefaultResourceTypes() []symbol.TypeName {
	return []symbol.TypeName{
		{Path: "os", Name: "File"},
		{Path: "os", Name: "Root"},
		{Path: "net", Name: "Conn"},
		{Path: "net", Name: "Listener"},
		{Path: "net", Name: "PacketConn"},
		{Path: "net", Name: "TCPConn"},
		{Path: "net", Name: "UDPConn"},
		{Path: "net", Name: "UnixConn"},
		{Path: "net", Name: "TCPListener"},
		{Path: "net", Name: "UnixListener"},
		{Path: "database/sql", Name: "DB"},
		{Path: "database/sql", Name: "Conn"},
		{Path: "database/sql", Name: "Rows"},
		{Path: "database/sql", Name: "Stmt"},
		{Path: "compress/gzip", Name: "Reader"},
		{Path: "compress/gzip", Name: "Writer"},
		{Path: "archive/zip", Name: "ReadCloser"},
		{Path: "archive/zip", Name: "Writer"},
		{Path: "io", Name: "PipeReader"},
		{Path: "io", Name: "PipeWriter"},
		{Path: "io", Name: "ReadCloser"},
		{Path: "io", Name: "WriteCloser"},
		{Path: "io", Name: "ReadWriteCloser"},
		{Path: "io", Name: "Closer"},
		{Path: "net/rpc", Name: "Client"},
		{Path: "net/smtp", Name: "Client"},
		{Path: "net/textproto", Name: "Conn"},
		{Path: "crypto/tls", Name: "Conn"},
	}
}

// DefaultHandoffs returns the standard library functions that take ownership of a resource argument.
func DefaultHandoffs() []symbol.FuncName {
	return []symbol.FuncName{
		{Path: "crypto/tls", Name: "Client"},
		{Path: "crypto/tls", Name: "Server"},
		{Path: "net/textproto", Name: "NewConn"},
		{Path: "net/rpc", Name: "NewClient"},
		{Path: "net/smtp", Name: "NewClient"},
	}
}
