// Package asm assembles x86-32 machine instructions into a byte stream.
//
// The assembler maintains an output location and pushes each encoded
// instruction, together with the relocatable references embedded in it, to
// an injected Serializer. Branch targets are expressed as labels: backward
// references are encoded immediately, forward references reserve a
// displacement field that Bind patches once the target location is known.
// The package is generic over an opaque reference type that is threaded
// through encoded fields for a downstream relocation resolver.
package asm

import (
	"encoding/binary"
	"fmt"
)

// Assembler encodes instructions at a monotonically advancing location and
// delivers them to its serializer. Every emission method is a single
// synchronous append; the location always reflects bytes already
// delivered. An Assembler must not be shared between goroutines without
// external synchronization.
type Assembler[R any] struct {
	location   uint32
	serializer Serializer[R]
}

// New returns an assembler that emits to s starting at location.
func New[R any](location uint32, s Serializer[R]) *Assembler[R] {
	return &Assembler[R]{location: location, serializer: s}
}

// Location returns the byte offset of the next instruction.
func (a *Assembler[R]) Location() uint32 { return a.location }

// SetLocation moves the output cursor. Pending label patches keep the
// locations they were recorded at.
func (a *Assembler[R]) SetLocation(location uint32) { a.location = location }

// output delivers one finished instruction to the serializer and advances
// the location past it.
func (a *Assembler[R]) output(b *buffer[R]) {
	a.serializer.AppendInstruction(a.location, b.code(), b.refs)
	a.location += uint32(b.n)
}

// Data inserts a single raw data byte into the stream.
func (a *Assembler[R]) Data(value byte) {
	var b buffer[R]
	b.emit(value)
	a.output(&b)
}

// Bind fixes l at the current location and resolves all of its pending
// references by patching the reserved displacement fields through the
// serializer. Binding is not transactional: a failed patch is reported but
// patches already applied in the same call stay in place. Bind panics if l
// is already bound.
func (a *Assembler[R]) Bind(l *Label[R]) error {
	if l.bound {
		panic("asm: label bound twice")
	}
	l.bound = true
	l.location = a.location

	var err error
	for _, p := range l.pending {
		if e := a.finalize(l.location, p); e != nil && err == nil {
			err = e
		}
	}
	l.pending = nil
	return err
}

// finalize rewrites one reserved displacement field so that it reaches
// destination from the end of the field.
func (a *Assembler[R]) finalize(destination uint32, p pendingPatch) error {
	disp := int64(destination) - int64(p.location) - int64(p.size)
	switch p.size {
	case Size8:
		if disp < -128 || disp > 127 {
			return fmt.Errorf("patch at %#x to %#x: %w", p.location, destination, ErrOutOfReach)
		}
		return a.serializer.FinalizeLabel(p.location, []byte{byte(int8(disp))})
	case Size32:
		var bytes [4]byte
		binary.LittleEndian.PutUint32(bytes[:], uint32(disp))
		return a.serializer.FinalizeLabel(p.location, bytes[:])
	default:
		panic("asm: unsupported patch size")
	}
}
