// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package payload

import (
	"code.hybscloud.com/kont"
)

// Exec runs a Cont-world read protocol against a body.
// Blocks on iox.ErrWouldBlock via adaptive backoff (iox.Backoff),
// without spawning goroutines or creating channels.
func Exec[R any](b *Body, protocol kont.Eff[R]) R {
	h := bodyHandler[R]{body: b}
	return kont.Handle(protocol, h)
}

// ExecExpr runs an Expr-world read protocol against a body.
// Blocks on iox.ErrWouldBlock via adaptive backoff (iox.Backoff),
// without spawning goroutines or creating channels.
func ExecExpr[R any](b *Body, protocol kont.Expr[R]) R {
	h := bodyHandler[R]{body: b}
	return kont.HandleExpr(protocol, h)
}

// Read reads up to len(p) bytes into p, waiting until the body can make
// progress. Implements the standard io.Reader contract: (0, iox.EOF) at
// end of data.
//
// Read does not duplicate the non-blocking read logic: it performs a single
// Fill effect and hands it to the blocking bridge, so the blocking and
// polling consumption models can never diverge in behavior.
func (b *Body) Read(p []byte) (int, error) {
	r := Exec(b, kont.Perform(Fill{Buf: p}))
	return r.N, r.Err
}
