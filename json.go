// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package payload

import (
	"encoding/json"
)

// JSON drains the remaining body through the blocking read contract and
// deserializes it as JSON into v.
//
// Malformed or type-mismatched content fails with the json package's own
// error types, distinct from I/O failures, which propagate verbatim from
// the underlying source. Core read semantics do not depend on this file.
func (b *Body) JSON(v any) error {
	return json.NewDecoder(b).Decode(v)
}
