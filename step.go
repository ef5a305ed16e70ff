// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package payload

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a read protocol until the first effect suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](protocol kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(protocol)
}

// Advance dispatches the suspended read operation on the body.
// DispatchBody is non-blocking: it returns iox.ErrWouldBlock when the
// underlying source cannot make progress yet (the I/O boundary).
//
// On success (nil error), the suspension is consumed and the protocol
// advances to the next effect or completion. On iox.ErrWouldBlock, the
// suspension is unconsumed and may be retried once the source is ready.
func Advance[R any](b *Body, susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	bop, ok := susp.Op().(bodyDispatcher)
	if !ok {
		panic("payload: unhandled effect in Advance")
	}
	v, err := bop.DispatchBody(b)
	if err != nil {
		var zero R
		return zero, susp, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}
