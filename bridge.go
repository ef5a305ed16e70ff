// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package payload

import (
	"code.hybscloud.com/kont"
)

// Reify converts a Cont-world read protocol to Expr-world.
// The resulting Expr can be evaluated with ExecExpr, or stepped with
// Step and Advance inside a transfer engine's scheduler.
func Reify[A any](m kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(m)
}

// Reflect converts an Expr-world read protocol to Cont-world.
// The resulting Eff can be evaluated with Exec.
func Reflect[A any](m kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(m)
}
