// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package payload

import (
	"strconv"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// kind selects the active backing representation of a Body.
// Exactly one representation is active; the kind is fixed at construction.
type kind uint8

const (
	kindEmpty kind = iota
	kindBorrowed
	kindOwned
	kindSource
)

// Body contains the body of an HTTP request or response.
//
// A Body is a passive value polled by whichever scheduler drives it: either a
// transfer engine stepping read protocols with Step/Advance, or a blocking
// caller going through Exec. The zero value is the empty body.
//
// Bodies follow single-reader discipline: a Body must not be read from two
// call sites concurrently. Copying a Body is cheap; copies of an owned-buffer
// Body share the backing bytes but keep independent read positions.
type Body struct {
	kind   kind
	cur    cursor
	src    Source
	length uint64
	sized  bool
}

// Empty creates a new empty body with a known length of 0 bytes.
// Equivalent to the zero value.
func Empty() Body {
	return Body{}
}

// Bytes creates a body from bytes stored in memory, taking ownership of data.
// The caller must not mutate data afterwards. The body has a known length
// equal to len(data). A nil or zero-length slice yields the empty body.
func Bytes(data []byte) Body {
	if len(data) == 0 {
		return Body{}
	}
	return Body{kind: kindOwned, cur: cursor{data: data}}
}

// String creates a body from a string, copying its bytes into an owned
// buffer. The body has a known length equal to len(s).
func String(s string) Body {
	if s == "" {
		return Body{}
	}
	return Body{kind: kindOwned, cur: cursor{data: []byte(s)}}
}

// Borrow creates a body over a byte region whose storage stays owned by the
// caller. No copy is made: data must outlive the body and must not be
// mutated while the body is live. A nil or zero-length slice yields the
// empty body.
func Borrow(data []byte) Body {
	if len(data) == 0 {
		return Body{}
	}
	return Body{kind: kindBorrowed, cur: cursor{data: data}}
}

// FromView creates a body over an immutable View, sharing its backing bytes
// without copying. The body has a known length equal to v.Len().
func FromView(v View) Body {
	if v.Len() == 0 {
		return Body{}
	}
	return Body{kind: kindOwned, cur: cursor{data: v.data}}
}

// FromSource creates a streaming body that reads from src, with an unknown
// length. When used as a request body, chunked transfer encoding might be
// used to send the request. The body takes exclusive ownership of src;
// Close releases it. A nil src yields the empty body.
func FromSource(src Source) Body {
	if src == nil {
		return Body{}
	}
	return Body{kind: kindSource, src: src}
}

// FromSourceSized creates a streaming body with a declared length.
//
// The declared length is a hint, not a guarantee: it is reported by Len
// as-is and never recomputed from consumption. A value that does not match
// how much data src actually produces may surface as a framing error in the
// transport layer sending the body. A nil src yields the empty body.
func FromSourceSized(src Source, length uint64) Body {
	if src == nil {
		return Body{}
	}
	return Body{kind: kindSource, src: src, length: length, sized: true}
}

// Len reports the size of the body, if known.
//
// The reported value is used to set the Content-Length of outgoing requests.
// For in-memory bodies it is exact; for sized streaming bodies it is the
// caller-declared hint and should not be relied on as accurate. ok is false
// for streaming bodies with no declared length.
func (b *Body) Len() (n uint64, ok bool) {
	switch b.kind {
	case kindBorrowed, kindOwned:
		return uint64(len(b.cur.data)), true
	case kindSource:
		return b.length, b.sized
	default:
		return 0, true
	}
}

// IsEmpty reports whether the body has a known length of 0 bytes.
func (b *Body) IsEmpty() bool {
	n, ok := b.Len()
	return ok && n == 0
}

// Reset repositions a repeatable body back to the start of its content.
// Reports false if the body cannot be rewound: streaming bodies advance
// until end of data and never rewind, regardless of how many bytes have
// been consumed.
func (b *Body) Reset() bool {
	switch b.kind {
	case kindBorrowed, kindOwned:
		b.cur.reset()
		return true
	case kindSource:
		return false
	default:
		return true
	}
}

// ReadNonBlock reads up to len(p) bytes into p without waiting.
//
// Empty, borrowed and owned bodies complete immediately: bytes are copied
// from the in-memory cursor, and iox.EOF is returned once it is exhausted.
// Streaming bodies delegate to the wrapped Source verbatim, forwarding
// data, iox.ErrWouldBlock and failures unchanged.
func (b *Body) ReadNonBlock(p []byte) (int, error) {
	switch b.kind {
	case kindBorrowed, kindOwned:
		return b.cur.readNonBlock(p)
	case kindSource:
		return b.src.Read(p)
	default:
		return 0, iox.EOF
	}
}

// pullNonBlock reads up to max bytes without waiting, returning the chunk.
// In-memory bodies return a subslice of the backing bytes without copying.
func (b *Body) pullNonBlock(max int) ([]byte, error) {
	switch b.kind {
	case kindBorrowed, kindOwned:
		return b.cur.pull(max)
	case kindSource:
		buf := make([]byte, max)
		n, err := b.src.Read(buf)
		return buf[:n], err
	default:
		return nil, iox.EOF
	}
}

// Close releases the wrapped source of a streaming body, invoking its
// iox.Closer hook if it has one. In-memory bodies have nothing to release.
func (b *Body) Close() error {
	if b.kind != kindSource {
		return nil
	}
	if c, ok := b.src.(iox.Closer); ok {
		return c.Close()
	}
	return nil
}

// String renders the body for diagnostics: the known length in parentheses,
// or "?" when the length is unknown. Never reads body content, so printing
// a streaming body does not consume it.
func (b *Body) String() string {
	if n, ok := b.Len(); ok {
		return "Body(" + strconv.FormatUint(n, 10) + ")"
	}
	return "Body(?)"
}

// bodyDispatcher is the structural interface for read operations.
// DispatchBody is non-blocking: it returns iox.ErrWouldBlock at the I/O
// boundary when the body cannot make progress yet. Completed reads,
// including end of data and I/O failures, resume the protocol with a
// result value instead.
type bodyDispatcher interface {
	DispatchBody(b *Body) (kont.Resumed, error)
}

// bodyHandler implements kont.Handler for read effects.
// Waits on iox.ErrWouldBlock, converting non-blocking dispatch into
// blocking evaluation for Exec/ExecExpr.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type bodyHandler[R any] struct {
	body *Body
}

// Dispatch implements kont.Handler via structural interface assertion.
// Waits past the iox.ErrWouldBlock boundary with adaptive backoff.
func (h bodyHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	bop, ok := op.(bodyDispatcher)
	if !ok {
		panic("payload: unhandled effect in bodyHandler")
	}
	return dispatchWait(h.body, bop), true
}

// dispatchWait blocks until DispatchBody succeeds, backing off on
// iox.ErrWouldBlock with iox.Backoff (I/O readiness waiting). This is the
// synchronous execution bridge under every blocking entry point.
func dispatchWait(b *Body, bop bodyDispatcher) kont.Resumed {
	var bo iox.Backoff
	for {
		v, err := bop.DispatchBody(b)
		if err == nil {
			return v
		}
		bo.Wait()
	}
}
