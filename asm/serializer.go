package asm

import "errors"

// ErrOutOfReach is returned when a short-reach branch cannot span the
// distance to its target. The failed call appends nothing.
var ErrOutOfReach = errors.New("branch target out of reach")

// ReferenceInfo records one relocatable field embedded in an instruction.
// The reference value is opaque to the assembler; it is surfaced here
// unmodified for a downstream resolver.
type ReferenceInfo[R any] struct {
	// Offset of the field within the instruction bytes.
	Offset int
	// Reference is the opaque value attached to the immediate or
	// displacement that produced the field.
	Reference R
	// Size is the width of the field.
	Size ValueSize
	// PCRelative reports whether the stored value is relative to the end
	// of the field rather than absolute.
	PCRelative bool
}

// Serializer consumes the assembler's output. AppendInstruction receives
// every assembled instruction in emission order together with its embedded
// references; implementations must copy anything they retain, as the byte
// slice is only valid for the duration of the call. FinalizeLabel
// overwrites len(bytes) previously appended bytes at location, and reports
// an error if the range is invalid or no longer patchable.
type Serializer[R any] interface {
	AppendInstruction(location uint32, bytes []byte, refs []ReferenceInfo[R])
	FinalizeLabel(location uint32, bytes []byte) error
}
