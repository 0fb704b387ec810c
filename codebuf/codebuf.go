// Package codebuf provides an in-memory serializer for the assembler: it
// retains the emitted byte stream, applies label patches in place, and
// keeps every embedded reference at its absolute stream address so a
// relocation resolver can walk the finished code.
package codebuf

import (
	"fmt"

	"github.com/grimoak/emit86/asm"
)

// Reference is one relocatable field at its absolute address in the
// stream.
type Reference[R any] struct {
	Address uint32
	Info    asm.ReferenceInfo[R]
}

// Buffer accumulates assembled instructions starting at a fixed stream
// location. It implements asm.Serializer.
type Buffer[R any] struct {
	start uint32
	data  []byte
	refs  []Reference[R]
}

// New returns an empty buffer whose first byte sits at start.
func New[R any](start uint32) *Buffer[R] {
	return &Buffer[R]{start: start}
}

// AppendInstruction copies one instruction into the stream and records its
// references at their absolute addresses. Instructions must arrive in
// location order with no gaps; the assembler's single append path
// guarantees that.
func (b *Buffer[R]) AppendInstruction(location uint32, bytes []byte, refs []asm.ReferenceInfo[R]) {
	if location != b.End() {
		panic(fmt.Sprintf("codebuf: append at %#x, stream ends at %#x", location, b.End()))
	}
	b.data = append(b.data, bytes...)
	for _, r := range refs {
		b.refs = append(b.refs, Reference[R]{Address: location + uint32(r.Offset), Info: r})
	}
}

// FinalizeLabel overwrites len(bytes) previously appended bytes at
// location. It reports an error when the range falls outside the stream.
func (b *Buffer[R]) FinalizeLabel(location uint32, bytes []byte) error {
	if location < b.start || location+uint32(len(bytes)) > b.End() {
		return fmt.Errorf("codebuf: patch of %d bytes at %#x outside stream [%#x, %#x)",
			len(bytes), location, b.start, b.End())
	}
	copy(b.data[location-b.start:], bytes)
	return nil
}

// Bytes returns the retained stream. The slice is owned by the buffer.
func (b *Buffer[R]) Bytes() []byte { return b.data }

// References returns every recorded reference in emission order.
func (b *Buffer[R]) References() []Reference[R] { return b.refs }

// Start returns the stream location of the first byte.
func (b *Buffer[R]) Start() uint32 { return b.start }

// Len returns the number of retained bytes.
func (b *Buffer[R]) Len() int { return len(b.data) }

// End returns the stream location one past the last byte.
func (b *Buffer[R]) End() uint32 { return b.start + uint32(len(b.data)) }
