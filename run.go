// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package payload

import (
	"errors"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Pump interleaves a producer step with an Expr-world read protocol on the
// calling goroutine, using adaptive backoff (iox.Backoff) when neither side
// can make progress. Does not spawn goroutines or create channels.
//
// produce is called once per turn and reports its progress: nil means it
// made progress, iox.ErrWouldBlock means it cannot right now, iox.EOF means
// production is finished. Any other error stops production and is returned
// alongside the protocol result. A producer feeding a Pipe must Close the
// writer before reporting iox.EOF, or the protocol side will wait forever
// for end of data.
func Pump[R any](b *Body, protocol kont.Expr[R], produce func() error) (R, error) {
	result, susp := Step[R](protocol)
	var bo iox.Backoff
	var perr error
	producing := produce != nil

	for susp != nil || producing {
		progress := false
		if producing {
			switch err := produce(); {
			case err == nil:
				progress = true
			case errors.Is(err, iox.EOF):
				producing = false
				progress = true
			case errors.Is(err, iox.ErrWouldBlock):
			default:
				producing = false
				perr = err
				progress = true
			}
		}
		if susp != nil {
			v, next, err := Advance(b, susp)
			if err == nil {
				result, susp = v, next
				progress = true
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return result, perr
}
