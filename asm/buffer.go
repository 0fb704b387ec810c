package asm

import "encoding/binary"

// Longest encodable x86 instruction.
const maxInstructionLength = 15

// ModRM mod field values.
const (
	modIndirect = 0 // [reg], or [disp32] when rm is 101
	modDisp8    = 1 // [reg + disp8]
	modDisp32   = 2 // [reg + disp32]
	modDirect   = 3 // reg
)

// Special ModRM/SIB register slots.
const (
	rmSIB      = 4 // rm value selecting a SIB byte
	rmDisp32   = 5 // rm value selecting absolute addressing at mod 00
	sibNoIndex = 4 // SIB index value meaning "no index"
	sibNoBase  = 5 // SIB base value meaning "no base" at mod 00
)

// Instruction prefixes.
const (
	prefixOperandSize = 0x66
	prefixFS          = 0x64
)

// buffer accumulates the bytes and embedded references of one instruction
// before it is handed to the serializer as a unit.
type buffer[R any] struct {
	bytes [maxInstructionLength]byte
	n     int
	refs  []ReferenceInfo[R]
}

func (b *buffer[R]) emit(bytes ...byte) {
	copy(b.bytes[b.n:], bytes)
	b.n += len(bytes)
}

func (b *buffer[R]) emitModRM(mod, reg, rm byte) {
	b.emit(mod<<6 | (reg&7)<<3 | rm&7)
}

func (b *buffer[R]) emitSIB(scale Scale, index, base byte) {
	b.emit(byte(scale)<<6 | (index&7)<<3 | base&7)
}

// emit8 appends an 8-bit value field, recording its reference if present.
func (b *buffer[R]) emit8(v value[R]) {
	b.addRef(v, Size8, false)
	b.emit(byte(v.val))
}

// emit16 appends a 16-bit little-endian value field.
func (b *buffer[R]) emit16(v uint16) {
	binary.LittleEndian.PutUint16(b.bytes[b.n:], v)
	b.n += 2
}

// emit32 appends a 32-bit little-endian value field, recording its
// reference if present.
func (b *buffer[R]) emit32(v value[R]) {
	b.addRef(v, Size32, false)
	b.emitRaw32(v.val)
}

// emitRel32 appends a 32-bit PC-relative field. The value holds the
// absolute target; the stored displacement is measured from the end of the
// field, which is also the end of every instruction that uses one.
func (b *buffer[R]) emitRel32(location uint32, v value[R]) {
	b.addRef(v, Size32, true)
	b.emitRaw32(v.val - (location + uint32(b.n) + 4))
}

func (b *buffer[R]) emitRaw32(v uint32) {
	binary.LittleEndian.PutUint32(b.bytes[b.n:], v)
	b.n += 4
}

func (b *buffer[R]) addRef(v value[R], size ValueSize, pcRelative bool) {
	if !v.hasRef {
		return
	}
	b.refs = append(b.refs, ReferenceInfo[R]{
		Offset:     b.n,
		Reference:  v.ref,
		Size:       size,
		PCRelative: pcRelative,
	})
}

// emitOperand appends the ModRM byte, optional SIB byte and optional
// displacement for op, with reg in the ModRM reg slot (a register code or
// an opcode extension).
func (b *buffer[R]) emitOperand(reg byte, op Operand[R]) {
	if op.direct {
		b.emitModRM(modDirect, reg, op.base.Code())
		return
	}

	if !op.hasBase {
		if op.hasIndex {
			// [index*scale + disp32]: SIB form with the no-base marker.
			b.emitModRM(modIndirect, reg, rmSIB)
			b.emitSIB(op.scale, op.index.Code(), sibNoBase)
		} else {
			// Absolute addressing.
			b.emitModRM(modIndirect, reg, rmDisp32)
		}
		b.emit32(op.disp.value)
		return
	}

	mod := byte(modIndirect)
	switch op.disp.size {
	case SizeNone:
		// [ebp] has no mod 00 encoding; that pattern means [disp32].
		if op.base == EBP {
			mod = modDisp8
		}
	case Size8:
		mod = modDisp8
	default:
		mod = modDisp32
	}

	rm := op.base.Code()
	// ESP in the rm slot always selects a SIB byte.
	if op.hasIndex || op.base == ESP {
		rm = rmSIB
	}
	b.emitModRM(mod, reg, rm)
	if rm == rmSIB {
		index := byte(sibNoIndex)
		if op.hasIndex {
			index = op.index.Code()
		}
		b.emitSIB(op.scale, index, op.base.Code())
	}

	switch mod {
	case modDisp8:
		if op.disp.size == SizeNone {
			b.emit(0)
		} else {
			b.emit8(op.disp.value)
		}
	case modDisp32:
		b.emit32(op.disp.value)
	}
}

// code returns the accumulated instruction bytes. The slice aliases the
// buffer and is only valid until the next emit.
func (b *buffer[R]) code() []byte { return b.bytes[:b.n] }
