package asm

// ValueSize is the width in bytes of an encoded immediate or displacement
// field. SizeNone marks a displacement that is omitted from the encoding.
type ValueSize int

// Field widths.
const (
	SizeNone ValueSize = 0
	Size8    ValueSize = 1
	Size16   ValueSize = 2
	Size32   ValueSize = 4
)

// NoRef is the reference type for streams that carry no relocation
// information.
type NoRef struct{}

// value is the common representation of immediates and displacements: a
// fixed-width number, optionally tagged with an opaque reference that is
// threaded through the encoded bytes for a downstream resolver.
type value[R any] struct {
	val    uint32
	size   ValueSize
	ref    R
	hasRef bool
}

// Value returns the numeric value.
func (v value[R]) Value() uint32 { return v.val }

// Size returns the width of the encoded field.
func (v value[R]) Size() ValueSize { return v.size }

// Reference returns the attached reference, if any.
func (v value[R]) Reference() (R, bool) { return v.ref, v.hasRef }

// Immediate is an instruction immediate of fixed width.
type Immediate[R any] struct {
	value[R]
}

// Displacement is an addressing-mode displacement. Its width is chosen at
// construction and never changes afterwards.
type Displacement[R any] struct {
	value[R]
}

// Imm builds an immediate of the given width. Only 8 and 32-bit immediates
// exist in the exposed instruction set.
func Imm[R any](v int32, size ValueSize) Immediate[R] {
	switch size {
	case Size8:
		if v < -128 || v > 255 {
			panic("asm: 8-bit immediate out of range")
		}
	case Size32:
	default:
		panic("asm: unsupported immediate size")
	}
	return Immediate[R]{value[R]{val: uint32(v), size: size}}
}

// ImmRef builds a 32-bit immediate carrying a relocation reference. The
// field is always full width so it stays patchable by the resolver.
func ImmRef[R any](v int32, ref R) Immediate[R] {
	return Immediate[R]{value[R]{val: uint32(v), size: Size32, ref: ref, hasRef: true}}
}

// Disp builds a displacement of the smallest width that preserves v.
// A zero displacement collapses to SizeNone and is omitted from the
// encoding wherever the addressing form allows it.
func Disp[R any](v int32) Displacement[R] {
	size := SizeNone
	switch {
	case v == 0:
	case v >= -128 && v <= 127:
		size = Size8
	default:
		size = Size32
	}
	return Displacement[R]{value[R]{val: uint32(v), size: size}}
}

// DispRef builds a 32-bit displacement carrying a relocation reference.
func DispRef[R any](v int32, ref R) Displacement[R] {
	return Displacement[R]{value[R]{val: uint32(v), size: Size32, ref: ref, hasRef: true}}
}
