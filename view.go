// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package payload

// View is an immutable view of bytes.
//
// A View is a value: copying it shares the backing storage without copying
// the bytes, so multiple bodies (for example, a retried request) can hold
// one buffer cheaply. Mutation is never permitted post-construction, which
// is why sharing requires no synchronization.
type View struct {
	data []byte
}

// NewView creates a View over data, taking ownership of it.
// The caller must not mutate data afterwards.
func NewView(data []byte) View {
	return View{data: data}
}

// NewViewCopy creates a View holding a private copy of data.
func NewViewCopy(data []byte) View {
	c := make([]byte, len(data))
	copy(c, data)
	return View{data: c}
}

// Len returns the view's length in bytes.
func (v View) Len() int {
	return len(v.data)
}

// Bytes returns a copy of the viewed bytes.
func (v View) Bytes() []byte {
	c := make([]byte, len(v.data))
	copy(c, v.data)
	return c
}

// String returns the viewed bytes as a string.
func (v View) String() string {
	return string(v.data)
}
