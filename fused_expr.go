// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package payload

import (
	"code.hybscloud.com/kont"
)

// identityResume is the identity resume function for EffectFrame construction.
// Named function produces a static function value, consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

func fillBindUnwind[B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(ReadResult) kont.Expr[B])
	result := f(current.(ReadResult))
	return kont.Erased(result.Value), result.Frame
}

// ExprFillBind reads into buf and passes the completion to f.
// Fuses ExprPerform(Fill{Buf: buf}) + ExprBind.
func ExprFillBind[B any](buf []byte, f func(ReadResult) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = fillBindUnwind[B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Fill{Buf: buf}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

func pullBindUnwind[B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(Chunk) kont.Expr[B])
	result := f(current.(Chunk))
	return kont.Erased(result.Value), result.Frame
}

// ExprPullBind reads the next chunk of up to max bytes and passes it to f.
// Fuses ExprPerform(Pull{Max: max}) + ExprBind.
func ExprPullBind[B any](max int, f func(Chunk) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = pullBindUnwind[B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Pull{Max: max}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}
