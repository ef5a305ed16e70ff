// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package payload

import (
	"errors"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// defaultChunk is the buffer size used by chunked read protocols when the
// caller does not supply one. Large enough to amortize dispatch overhead
// for streamed bodies while staying allocation-friendly.
const defaultChunk = 4096

// ReadResult is the completion of a Fill operation.
// N is the number of bytes written into the buffer. Err is iox.EOF at end
// of data, or the I/O failure reported by the underlying source, forwarded
// verbatim. Err is never iox.ErrWouldBlock: suspension happens at the
// dispatch boundary, not in the result.
type ReadResult struct {
	N   int
	Err error
}

// Fill is the effect operation for reading into a caller-supplied buffer.
// Perform(Fill{Buf: p}) attempts to fill up to len(p) bytes of p.
type Fill struct {
	kont.Phantom[ReadResult]
	Buf []byte
}

// DispatchBody handles Fill on the body.
// Non-blocking: returns iox.ErrWouldBlock if the source has no bytes yet.
// A read that produced bytes completes even if the source reported a
// deferred condition alongside them; the condition is re-observed on the
// next dispatch.
func (f Fill) DispatchBody(b *Body) (kont.Resumed, error) {
	n, err := b.ReadNonBlock(f.Buf)
	if n == 0 && err != nil && errors.Is(err, iox.ErrWouldBlock) {
		return nil, err
	}
	if n > 0 && err != nil && errors.Is(err, iox.ErrWouldBlock) {
		err = nil
	}
	return ReadResult{N: n, Err: err}, nil
}

// Chunk is the completion of a Pull operation.
// Data holds the bytes read; for in-memory bodies it aliases the backing
// storage without copying and must be treated as read-only. Err is iox.EOF
// at end of data, or the I/O failure reported by the underlying source.
type Chunk struct {
	Data []byte
	Err  error
}

// Pull is the effect operation for reading the next chunk of up to Max
// bytes. Max <= 0 uses a default chunk size. Zero-copy for in-memory
// bodies; streamed bodies read into a fresh buffer.
type Pull struct {
	kont.Phantom[Chunk]
	Max int
}

// DispatchBody handles Pull on the body.
// Non-blocking: returns iox.ErrWouldBlock if the source has no bytes yet.
func (p Pull) DispatchBody(b *Body) (kont.Resumed, error) {
	max := p.Max
	if max <= 0 {
		max = defaultChunk
	}
	data, err := b.pullNonBlock(max)
	if len(data) == 0 && err != nil && errors.Is(err, iox.ErrWouldBlock) {
		return nil, err
	}
	if len(data) > 0 && err != nil && errors.Is(err, iox.ErrWouldBlock) {
		err = nil
	}
	return Chunk{Data: data, Err: err}, nil
}
