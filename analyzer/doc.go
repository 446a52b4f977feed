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

// Package analyzer implements the closeguard static analysis pass.
//
// # Overview
//
// CloseGuard detects values implementing [io.Closer] that are created but never closed.
// Every creation site (a composite literal, a call of new, or a call returning a resource)
// is attributed to an owner:
//
//   - a local variable, which must be closed, returned or handed off in its function,
//   - a struct field or embedded field, which must be closed in the Close method of its type,
//   - a parameter, which is owned by the caller and never reported,
//   - a transient value, which must be closed right away.
//
// # Example
//
// Before:
//
//	type Store struct {
//	    db *sql.DB
//	}
//
//	func Open(dsn string) (*Store, error) {
//	    db, err := sql.Open("pgx", dsn) // Field 'db' receives a closable result that is never closed
//	    if err != nil {
//	        return nil, err
//	    }
//	    return &Store{db: db}, nil
//	}
//
// After applying closeguard's suggested fix:
//
//	var _ io.Closer = (*Store)(nil)
//
//	// Close releases the resources held by Store.
//	func (s *Store) Close() error {
//	    return s.db.Close()
//	}
//
// # Resource Types
//
// Allow-listed standard library types like [os.File], [net.Conn] or [database/sql.Rows]
// are resources, as well as every type declared in the analyzed package that implements
// [io.Closer]. The allow-list can be configured with the -types flag, functions taking over
// ownership of their arguments (like [crypto/tls.Client]) with -handoff.
//
// Passing a resource to a function named "close" or "closeX" (like closeAll) counts as
// closing it. Methods match by name only when declared in the analyzed package. Other
// functions closing their arguments can be added with -close-delegate.
//
// # Suppression
//
// A `//nolint:closeguard` comment on the line of the creation site, in the doc comment
// of a function or in the doc comment of a file suppresses diagnostics.
package analyzer
