// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package payload

import (
	"code.hybscloud.com/iox"
)

// cursor is a sequential, resettable reader over an in-memory byte region.
// It backs both the borrowed and the owned body representations: the kind
// on Body distinguishes who owns the storage, the cursor only tracks the
// read position. A cursor never suspends.
type cursor struct {
	data []byte
	pos  int
}

// readNonBlock copies up to len(p) bytes from the current position into p
// and advances. Returns iox.EOF once the region is exhausted. A zero-length
// p reads zero bytes with no error (no progress, per iox convention).
func (c *cursor) readNonBlock(p []byte) (int, error) {
	if c.pos >= len(c.data) {
		return 0, iox.EOF
	}
	n := copy(p, c.data[c.pos:])
	c.pos += n
	return n, nil
}

// pull returns up to max bytes starting at the current position as a
// subslice of the backing region, without copying, and advances. Returns
// iox.EOF once the region is exhausted. The returned slice aliases the
// backing storage and must be treated as read-only.
func (c *cursor) pull(max int) ([]byte, error) {
	if c.pos >= len(c.data) {
		return nil, iox.EOF
	}
	n := len(c.data) - c.pos
	if max > 0 && n > max {
		n = max
	}
	chunk := c.data[c.pos : c.pos+n]
	c.pos += n
	return chunk, nil
}

// reset repositions the cursor to the start of the region.
func (c *cursor) reset() {
	c.pos = 0
}
