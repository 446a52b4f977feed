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
	"crypto/tls"
	"io"
	"net"
	"os"
)

func leak(name string) {
	f, err := os.Open(name) // want "Variable 'f' receives a closable result that is never closed"
	if err != nil {
		return
	}

	_, _ = f.Stat()
}

func deferred(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	return nil
}

func guarded(name string) {
	f, _ := os.Open(name)
	if f != nil {
		f.Close()
	}
}

func asserted(name string) {
	var r io.Reader

	f, _ := os.Open(name)
	r = f

	if c, ok := r.(io.Closer); ok {
		c.Close()
	}
}

func assertedChain(addr string) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return
	}
	defer conn.(io.Closer).Close()
}

func closeQuietly(c io.Closer) { _ = c.Close() }

func delegated(name string) {
	f, _ := os.Open(name)
	defer closeQuietly(f)
}

func opened(name string) (*os.File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	return f, nil
}

func named(name string) (f *os.File, err error) {
	f, err = os.Open(name)

	return
}

var logFile *os.File

func openLog(name string) {
	logFile, _ = os.Create(name)
}

func reopen(f *os.File, name string) {
	f, _ = os.Open(name)
	_ = f
}

func wrapped(addr string, config *tls.Config) *tls.Conn {
	raw, err := net.Dial("tcp", addr)
	if err != nil {
		return nil
	}

	return tls.Client(raw, config)
}

func methodValue(name string) func() error {
	f, _ := os.Open(name)

	return f.Close
}

func aliased(name string) {
	f, _ := os.Open(name)
	g := f
	h := g
	h.Close()
}

func ranged(a, b string) {
	fa, _ := os.Open(a)
	fb, _ := os.Open(b)

	for _, f := range []*os.File{fa, fb} {
		f.Close()
	}
}

func sent(name string, ch chan<- *os.File) {
	f, _ := os.Open(name)
	ch <- f
}

func background(name string) {
	f, _ := os.Open(name)
	go func() {
		defer f.Close()
	}()
}

func first(name string) {
	f, _ := os.Open(name)
	defer f.Close()
}

func second(name string) {
	f, _ := os.Open(name) // want "Variable 'f' receives a closable result that is never closed"
	_ = f.Name()
}

func shadowed(a, b string) {
	f, _ := os.Open(a) // want "Variable 'f' receives a closable result that is never closed"
	_ = f.Name()

	{
		f, _ := os.Open(b)
		defer f.Close()
	}
}

func suppressed(name string) {
	f, _ := os.Open(name) //nolint:closeguard
	_ = f.Name()
}

//nolint:closeguard
func suppressedFunc(name string) {
	f, _ := os.Open(name)
	_ = f.Name()
}

func pipeHalf() {
	r, w, _ := os.Pipe() // want "Variable 'w' receives a closable result that is never closed"
	defer r.Close()
	_ = w
}

func pipeBoth() {
	r, w, _ := os.Pipe() // want "Variable 'r' receives a closable result" "Variable 'w' receives a closable result"
	_, _ = r.Name(), w.Name()
}

func pipeClosed() error {
	r, w, err := os.Pipe()
	if err != nil {
		return err
	}
	defer r.Close()
	defer w.Close()

	return nil
}

func connPair() (net.Conn, net.Conn) {
	return net.Pipe()
}
