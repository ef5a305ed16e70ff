// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package payload_test

import (
	"testing"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
	"code.hybscloud.com/payload"
)

// BenchmarkReadNonBlockOwned measures the polling fast path over an
// in-memory body.
func BenchmarkReadNonBlockOwned(b *testing.B) {
	b.ReportAllocs()
	data := make([]byte, 16<<10)
	body := payload.Bytes(data)
	buf := make([]byte, 4096)
	for b.Loop() {
		body.Reset()
		for {
			if _, err := body.ReadNonBlock(buf); err != nil {
				break
			}
		}
	}
}

// BenchmarkBlockingRead measures the sync-over-async bridge on an
// in-memory body that never suspends.
func BenchmarkBlockingRead(b *testing.B) {
	b.ReportAllocs()
	data := make([]byte, 4096)
	body := payload.Bytes(data)
	buf := make([]byte, 1024)
	for b.Loop() {
		body.Reset()
		for {
			if _, err := body.Read(buf); err != nil {
				break
			}
		}
	}
}

// BenchmarkExprPull measures an Expr-world zero-copy chunk pull.
func BenchmarkExprPull(b *testing.B) {
	b.ReportAllocs()
	data := make([]byte, 4096)
	body := payload.Borrow(data)
	for b.Loop() {
		body.Reset()
		protocol := payload.ExprPullBind(0, func(c payload.Chunk) kont.Expr[int] {
			return kont.ExprReturn(len(c.Data))
		})
		payload.ExecExpr(&body, protocol)
	}
}

// BenchmarkText measures a full drain and decode of a small body.
func BenchmarkText(b *testing.B) {
	b.ReportAllocs()
	body := payload.String("the quick brown fox jumps over the lazy dog")
	for b.Loop() {
		body.Reset()
		if _, err := body.Text(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPipePump measures single-goroutine pipe throughput via Pump.
func BenchmarkPipePump(b *testing.B) {
	skipRace(b)
	b.ReportAllocs()
	chunk := make([]byte, 1024)
	for b.Loop() {
		w, body := payload.Pipe(0)
		sent := 0
		produce := func() error {
			if sent == 8 {
				w.Close()
				return iox.EOF
			}
			if _, err := w.Write(chunk); err != nil {
				return err
			}
			sent++
			return nil
		}
		payload.Pump(&body, payload.Reify(payload.DrainBytes(0)), produce)
	}
}
