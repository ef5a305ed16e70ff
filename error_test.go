// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package payload_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/payload"
)

func TestExecErrorSuccess(t *testing.T) {
	b := payload.String("ok")
	buf := make([]byte, 8)

	protocol := payload.FillBind(buf, func(r payload.ReadResult) kont.Eff[string] {
		if r.Err != nil {
			return kont.ThrowError[error, string](r.Err)
		}
		return kont.Pure(string(buf[:r.N]))
	})

	result := payload.ExecError[error, string](&b, protocol)
	if !result.IsRight() {
		t.Fatal("expected Right, got Left")
	}
	s, _ := result.GetRight()
	if s != "ok" {
		t.Fatalf("got %q, want %q", s, "ok")
	}
}

func TestExecErrorThrow(t *testing.T) {
	b := payload.FromSource(&failSource{err: errBoom})
	buf := make([]byte, 8)

	protocol := payload.FillBind(buf, func(r payload.ReadResult) kont.Eff[string] {
		if r.Err != nil {
			return kont.ThrowError[error, string](r.Err)
		}
		return kont.Pure(string(buf[:r.N]))
	})

	result := payload.ExecError[error, string](&b, protocol)
	if !result.IsLeft() {
		t.Fatal("expected Left, got Right")
	}
	err, _ := result.GetLeft()
	if !errors.Is(err, errBoom) {
		t.Fatalf("thrown error got %v, want errBoom", err)
	}
}

func TestExecErrorCatchRecovery(t *testing.T) {
	// Catch recovery: error-only body/handler, then a read op.
	// Catch body and handler must be pure error effects (no read ops).
	b := payload.String("recovered payload")

	protocol := kont.Bind(
		kont.CatchError(
			kont.ThrowError[string, int]("fail"),
			func(e string) kont.Eff[int] {
				return kont.Pure(len(e))
			},
		),
		func(n int) kont.Eff[string] {
			buf := make([]byte, n)
			return payload.FillBind(buf, func(r payload.ReadResult) kont.Eff[string] {
				return kont.Pure(string(buf[:r.N]))
			})
		},
	)

	result := payload.ExecError[string, string](&b, protocol)
	if !result.IsRight() {
		t.Fatal("expected Right, got Left")
	}
	s, _ := result.GetRight()
	if s != "reco" {
		t.Fatalf("got %q, want %q", s, "reco")
	}
}

func TestStepAdvanceError(t *testing.T) {
	b := payload.FromSource(&failSource{err: errBoom})
	buf := make([]byte, 8)

	protocol := payload.Reify(payload.FillBind(buf, func(r payload.ReadResult) kont.Eff[string] {
		if r.Err != nil {
			return kont.ThrowError[error, string](r.Err)
		}
		return kont.Pure(string(buf[:r.N]))
	}))

	result, susp := payload.StepError[error, string](protocol)
	for susp != nil {
		var err error
		result, susp, err = payload.AdvanceError[error, string](&b, susp)
		if err != nil {
			continue
		}
	}
	if !result.IsLeft() {
		t.Fatal("expected Left, got Right")
	}
	err, _ := result.GetLeft()
	if !errors.Is(err, errBoom) {
		t.Fatalf("thrown error got %v, want errBoom", err)
	}
}

func TestDispatchUnhandledPanics(t *testing.T) {
	type bogus struct{ kont.Phantom[int] }

	b := payload.String("x")

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for unhandled effect")
		}
		msg, ok := r.(string)
		if !ok || msg != "payload: unhandled effect in bodyHandler" {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	payload.Exec(&b, kont.Perform(bogus{}))
}

func TestAdvanceUnhandledPanics(t *testing.T) {
	type bogus struct{ kont.Phantom[int] }

	b := payload.String("x")
	_, susp := payload.Step(kont.ExprPerform(bogus{}))
	if susp == nil {
		t.Fatal("expected suspension")
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for unhandled effect")
		}
		msg, ok := r.(string)
		if !ok || msg != "payload: unhandled effect in Advance" {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	payload.Advance(&b, susp)
}
