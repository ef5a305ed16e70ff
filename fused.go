// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package payload

import (
	"errors"
	"unicode/utf8"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// FillBind reads into buf and passes the completion to f.
// Fuses Perform(Fill{Buf: buf}) + Bind.
func FillBind[B any](buf []byte, f func(ReadResult) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Fill{Buf: buf}), f)
}

// PullBind reads the next chunk of up to max bytes and passes it to f.
// Fuses Perform(Pull{Max: max}) + Bind.
func PullBind[B any](max int, f func(Chunk) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Pull{Max: max}), f)
}

// drainState carries the scratch buffer and accumulated bytes of a drain
// loop. The scratch buffer is reused across iterations.
type drainState struct {
	buf []byte
	acc []byte
}

// DrainBytes builds a protocol that reads the remaining body to exhaustion
// and returns the drained bytes, or the first I/O failure encountered.
// chunk <= 0 uses a default scratch buffer size.
//
// Draining consumes the stream: on a repeatable body, Reset restores the
// ability to drain the identical sequence again.
func DrainBytes(chunk int) kont.Eff[kont.Either[error, []byte]] {
	if chunk <= 0 {
		chunk = defaultChunk
	}
	return Loop(drainState{buf: make([]byte, chunk)}, drainStep)
}

// drainStep performs one Fill and either continues the loop with the
// accumulated state or finishes with the drained bytes or an error.
func drainStep(s drainState) kont.Eff[kont.Either[drainState, kont.Either[error, []byte]]] {
	return FillBind(s.buf, func(r ReadResult) kont.Eff[kont.Either[drainState, kont.Either[error, []byte]]] {
		if r.N > 0 {
			s.acc = append(s.acc, s.buf[:r.N]...)
		}
		switch {
		case r.Err == nil && r.N > 0:
			return kont.Pure(kont.Left[drainState, kont.Either[error, []byte]](s))
		case r.Err == nil || errors.Is(r.Err, iox.EOF):
			// (0, nil) means no forward progress; stop rather than spin.
			return kont.Pure(kont.Right[drainState](kont.Right[error, []byte](s.acc)))
		default:
			return kont.Pure(kont.Right[drainState](kont.Left[error, []byte](r.Err)))
		}
	})
}

// DrainText builds a protocol that drains the remaining body and decodes it
// as UTF-8 text. Fails with ErrInvalidText if the drained bytes are not
// valid text, keeping decode failures distinct from I/O failures.
func DrainText(chunk int) kont.Eff[kont.Either[error, string]] {
	return kont.Map[kont.Resumed, kont.Either[error, []byte], kont.Either[error, string]](DrainBytes(chunk), decodeText)
}

// decodeText validates drained bytes as UTF-8 and converts to a string.
func decodeText(e kont.Either[error, []byte]) kont.Either[error, string] {
	if err, ok := e.GetLeft(); ok {
		return kont.Left[error, string](err)
	}
	raw, _ := e.GetRight()
	if !utf8.Valid(raw) {
		return kont.Left[error, string](ErrInvalidText)
	}
	return kont.Right[error](string(raw))
}
