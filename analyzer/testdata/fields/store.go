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
	"database/sql"
	"io"
	"os"
)

type Store struct {
	db   *sql.DB
	tmp  *os.File
	logs []*os.File
}

func OpenStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp("", "store")
	if err != nil {
		return nil, err
	}

	return &Store{db: db, tmp: tmp}, nil
}

func (s *Store) Close() error {
	closeAll(s.tmp)

	db := s.db

	return db.Close()
}

func closeAll(closers ...io.Closer) {
	for _, c := range closers {
		_ = c.Close()
	}
}

func localType(name string) {
	type holder struct{ f *os.File }

	var h holder
	h.f, _ = os.Open(name)
	_ = h
}

type Wrapper struct{ *os.File }

func OpenWrapper(name string) (*Wrapper, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	return &Wrapper{File: f}, nil
}

func (w *Wrapper) Reopen(name string) (err error) {
	w.File, err = os.Open(name)

	return err
}
