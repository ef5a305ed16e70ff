// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package payload provides a unified request/response body abstraction for
// HTTP clients, with reads expressed as algebraic effects on
// [code.hybscloud.com/kont].
//
// A [Body] holds exactly one of four backing representations: empty, a
// borrowed byte region, an owned in-memory buffer, or an arbitrary
// non-blocking byte [Source] with an optional declared length. Consumers
// read through one contract regardless of the representation.
//
// # Architecture
//
//   - Non-blocking: reads return [code.hybscloud.com/iox.ErrWouldBlock] when
//     the underlying source cannot make progress yet. In-memory
//     representations never suspend. [code.hybscloud.com/iox.EOF] signals end
//     of data.
//   - Execution: Dual-world API supporting closure-based (Cont-world) and
//     defunctionalized (Expr-world) evaluation of read protocols.
//   - Error Handling: I/O failures propagate verbatim through read results;
//     decode failures are distinct ([ErrInvalidText], encoding/json errors).
//     Error effects short-circuit returning [code.hybscloud.com/kont.Either].
//   - Streaming: [Pipe] is a bounded lock-free SPSC in-memory source via
//     [code.hybscloud.com/lfq], for feeding a body incrementally.
//
// # API Topologies
//
//   - Operations: [Fill] (read into a caller buffer), [Pull] (read a chunk,
//     zero-copy for in-memory bodies).
//   - Cont-world: [FillBind], [PullBind], [DrainBytes], [DrainText].
//   - Expr-world: Zero-allocation variants [ExprFillBind], [ExprPullBind].
//     Bridge via [Reify] and [Reflect].
//   - Recursive: [Loop] and [ExprLoop] for trampoline-based read loops.
//
// # Integration
//
//   - Stepping: [Step] and [Advance] (or [StepError]/[AdvanceError]) evaluate
//     read protocols one effect at a time, making them easy to integrate with
//     a transfer engine's proactor loop.
//   - Blocking: [Exec] and [ExecExpr] wait past ErrWouldBlock boundaries
//     using adaptive backoff; [Body.Read], [Body.Text] and [Body.JSON] are
//     built on this bridge, so the blocking and polling paths share one read
//     implementation.
//
// # Example
//
//	b := payload.String("hello")
//	text, err := b.Text()   // "hello"
//	if b.Reset() {
//		text, err = b.Text() // "hello" again
//	}
//	_, _ = text, err
package payload
