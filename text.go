// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package payload

import (
	"errors"

	"code.hybscloud.com/kont"
)

// ErrInvalidText reports that drained body bytes are not valid UTF-8.
// It is a decode failure, distinct from I/O failures, so callers can tell
// "couldn't get bytes" apart from "got bytes but they were not valid text".
var ErrInvalidText = errors.New("payload: body is not valid UTF-8 text")

// Text drains the remaining body and returns it as a string, waiting until
// the body can make progress.
//
// Draining consumes the stream: a second call returns an empty string
// unless the body is repeatable and has been Reset in between. Fails with
// the underlying I/O error, or with ErrInvalidText if the bytes are not
// valid UTF-8.
func (b *Body) Text() (string, error) {
	e := Exec(b, DrainText(0))
	if err, ok := e.GetLeft(); ok {
		return "", err
	}
	s, _ := e.GetRight()
	return s, nil
}

// TextAsync returns a lazily-driven protocol with the same semantics as
// Text, suitable for a cooperative scheduler: drive it against this body
// with Step and Advance, or hand it to ExecExpr to block. Nothing is read
// until the protocol is driven.
func (b *Body) TextAsync() kont.Expr[kont.Either[error, string]] {
	return Reify(DrainText(0))
}
