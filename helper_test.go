// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package payload_test

import (
	"errors"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
	"code.hybscloud.com/payload"
)

// execExpr drives a read protocol to completion against b via Step+Advance
// loop. Retries on iox.ErrWouldBlock (source not ready yet).
// Used by stepping tests to exercise the non-blocking path.
func execExpr[R any](b *payload.Body, protocol kont.Expr[R]) R {
	result, susp := payload.Step[R](protocol)
	for susp != nil {
		var err error
		result, susp, err = payload.Advance(b, susp)
		if err != nil {
			continue
		}
	}
	return result
}

// errBoom is the I/O failure injected by failSource.
var errBoom = errors.New("boom")

// stallSource produces data in fixed-size chunks, returning ErrWouldBlock
// a configured number of times before every successful read.
type stallSource struct {
	data   []byte
	chunk  int
	stalls int
	left   int
}

func (s *stallSource) Read(p []byte) (int, error) {
	if s.left > 0 {
		s.left--
		return 0, iox.ErrWouldBlock
	}
	s.left = s.stalls
	if len(s.data) == 0 {
		return 0, iox.EOF
	}
	n := len(s.data)
	if s.chunk > 0 && n > s.chunk {
		n = s.chunk
	}
	if n > len(p) {
		n = len(p)
	}
	copy(p, s.data[:n])
	s.data = s.data[n:]
	return n, nil
}

// failSource yields its data, then fails every read with err.
type failSource struct {
	data []byte
	err  error
}

func (s *failSource) Read(p []byte) (int, error) {
	if len(s.data) > 0 {
		n := copy(p, s.data)
		s.data = s.data[n:]
		return n, nil
	}
	return 0, s.err
}

// closeSource is an exhausted source recording Close invocations.
type closeSource struct {
	data   []byte
	closes int
}

func (s *closeSource) Read(p []byte) (int, error) {
	if len(s.data) == 0 {
		return 0, iox.EOF
	}
	n := copy(p, s.data)
	s.data = s.data[n:]
	return n, nil
}

func (s *closeSource) Close() error {
	s.closes++
	return nil
}
