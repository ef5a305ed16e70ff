// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package payload

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// pipeCapacity is the default bounded capacity of the pipe ring.
// 4 balances amortizing producer-side cached-index refresh cost while
// keeping ring buffers within a single cache line.
const pipeCapacity = 4

// PipeWriter is the producer half of a Pipe.
// Write and Close must be called from a single producer goroutine.
type PipeWriter struct {
	q      *lfq.SPSC[[]byte]
	closed *atomix.Uint32
	serial Serial
}

// Write copies p into the pipe as one chunk.
// Non-blocking: returns iox.ErrWouldBlock if the bounded ring is full, and
// iox.ErrClosedPipe after Close. A zero-length p writes nothing.
func (w *PipeWriter) Write(p []byte) (int, error) {
	if w.closed.Load() != 0 {
		return 0, iox.ErrClosedPipe
	}
	if len(p) == 0 {
		return 0, nil
	}
	chunk := make([]byte, len(p))
	copy(chunk, p)
	if err := w.q.Enqueue(&chunk); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close marks the producer side finished. The reading body drains any
// chunks still in flight and then reports iox.EOF. Never blocks.
func (w *PipeWriter) Close() error {
	w.closed.Add(1)
	return nil
}

// Serial returns the serial number assigned to this writer's pipe.
func (w *PipeWriter) Serial() Serial {
	return w.serial
}

// pipeSource is the consumer half of a Pipe: a Source over the shared ring.
// Single-consumer: it must be read by one call site at a time.
type pipeSource struct {
	q      *lfq.SPSC[[]byte]
	closed *atomix.Uint32
	rest   []byte
}

// Read implements the non-blocking Source contract.
// Returns iox.ErrWouldBlock while the pipe is open and empty, iox.EOF once
// it is closed and drained.
func (s *pipeSource) Read(p []byte) (int, error) {
	if len(s.rest) > 0 {
		n := copy(p, s.rest)
		s.rest = s.rest[n:]
		return n, nil
	}
	chunk, err := s.q.Dequeue()
	if err != nil {
		if s.closed.Load() == 0 {
			return 0, err
		}
		// Close may race a final enqueue; re-poll after observing it so
		// chunks enqueued before Close are never lost.
		chunk, err = s.q.Dequeue()
		if err != nil {
			return 0, iox.EOF
		}
	}
	n := copy(p, chunk)
	s.rest = chunk[n:]
	return n, nil
}

// pipePair holds both halves, the ring, and the shared close counter in a
// single allocation. The SPSC queue is embedded as a value; only its ring
// buffer is a separate heap object.
type pipePair struct {
	w      PipeWriter
	s      pipeSource
	closed atomix.Uint32
	ring   lfq.SPSC[[]byte]
}

// Pipe creates a bounded in-memory streaming source and the body reading
// from it, for feeding a request body incrementally from a producer.
// capacity is the ring size in chunks; capacity <= 0 uses the default.
//
// Transport is a lock-free single-producer single-consumer queue: one
// goroutine writes, one drives the body. Both halves are non-blocking and
// return iox.ErrWouldBlock at their I/O boundary, so a producer and a
// consumer can be interleaved on one goroutine with Pump.
func Pipe(capacity int) (*PipeWriter, Body) {
	if capacity <= 0 {
		capacity = pipeCapacity
	}
	pair := &pipePair{}
	pair.ring.Init(capacity)
	pair.w = PipeWriter{q: &pair.ring, closed: &pair.closed, serial: nextSerial()}
	pair.s = pipeSource{q: &pair.ring, closed: &pair.closed}
	return &pair.w, FromSource(&pair.s)
}
