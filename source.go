// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package payload

import (
	"code.hybscloud.com/iox"
)

// Source is a non-blocking byte producer wrapped by a streaming body.
//
// Read follows the iox extended result semantics: it returns
// iox.ErrWouldBlock when the source cannot produce bytes right now without
// waiting (return immediately, retry later), and iox.EOF after the final
// byte has been produced. Any other error is an I/O failure and is
// propagated verbatim to the consumer.
//
// A Source that also implements iox.Closer gets its Close hook invoked by
// Body.Close, allowing it to release resources.
//
// Source is an alias of iox.Reader.
type Source = iox.Reader
