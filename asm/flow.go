package asm

import "fmt"

// Control transfer: calls, jumps, conditional branches, the loop family
// and returns. Immediate targets hold the absolute destination address;
// the encoder derives the PC-relative field from the current location.
// Label targets go through the two-phase patch protocol: bound labels are
// encoded immediately, unbound ones reserve a displacement field for Bind.

// CallImm emits a near relative CALL to the absolute target in dst.
func (a *Assembler[R]) CallImm(dst Immediate[R]) {
	checkImm(dst, Size32)
	var b buffer[R]
	b.emit(0xE8)
	b.emitRel32(a.location, dst.value)
	a.output(&b)
}

// CallOp emits CALL dword [dst].
func (a *Assembler[R]) CallOp(dst Operand[R]) {
	var b buffer[R]
	b.emit(0xFF)
	b.emitOperand(2, dst)
	a.output(&b)
}

// JmpImm emits a near relative JMP to the absolute target in dst.
func (a *Assembler[R]) JmpImm(dst Immediate[R]) {
	checkImm(dst, Size32)
	var b buffer[R]
	b.emit(0xE9)
	b.emitRel32(a.location, dst.value)
	a.output(&b)
}

// JmpOp emits JMP dword [dst].
func (a *Assembler[R]) JmpOp(dst Operand[R]) {
	var b buffer[R]
	b.emit(0xFF)
	b.emitOperand(4, dst)
	a.output(&b)
}

// JmpReg emits JMP dst.
func (a *Assembler[R]) JmpReg(dst Register32) {
	var b buffer[R]
	b.emit(0xFF)
	b.emitModRM(modDirect, 4, dst.Code())
	a.output(&b)
}

// JmpLabel emits a JMP to l with the requested reach. SizeNone picks the
// optimal reach for a bound label and the widest reach for an unbound one.
// An explicit Size8 request fails with ErrOutOfReach when a bound target
// is too far; nothing is appended in that case.
func (a *Assembler[R]) JmpLabel(l *Label[R], reach ValueSize) error {
	return a.branch(l, reach, 2, func(b *buffer[R]) { b.emit(0xEB) }, func(b *buffer[R]) { b.emit(0xE9) })
}

// J emits a conditional branch to l, choosing the reach as JmpLabel does
// with SizeNone.
func (a *Assembler[R]) J(cc ConditionCode, l *Label[R]) error {
	return a.JReach(cc, l, SizeNone)
}

// JReach emits a conditional branch to l with the requested reach. The
// failure contract matches JmpLabel.
func (a *Assembler[R]) JReach(cc ConditionCode, l *Label[R], reach ValueSize) error {
	return a.branch(l, reach, 2,
		func(b *buffer[R]) { b.emit(0x70 + byte(cc)) },
		func(b *buffer[R]) { b.emit(0x0F, 0x80+byte(cc)) })
}

// branch encodes one label-targeted control transfer. shortLen is the full
// length of the short form; short and long emit the opcode bytes of the
// two reaches.
func (a *Assembler[R]) branch(l *Label[R], reach ValueSize, shortLen uint32, short, long func(*buffer[R])) error {
	var b buffer[R]
	if l.bound {
		if reach == SizeNone {
			reach = Size32
			if fitsShort(l.location, a.location, shortLen) {
				reach = Size8
			}
		}
		switch reach {
		case Size8:
			if !fitsShort(l.location, a.location, shortLen) {
				return fmt.Errorf("short branch from %#x to %#x: %w", a.location, l.location, ErrOutOfReach)
			}
			short(&b)
			b.emit(byte(int8(int32(l.location - (a.location + shortLen)))))
		case Size32:
			long(&b)
			b.emitRaw32(l.location - (a.location + uint32(b.n) + 4))
		default:
			panic("asm: unsupported branch reach")
		}
	} else {
		// The target is unknown, so the reach cannot be revised later;
		// default to the widest one.
		if reach == SizeNone {
			reach = Size32
		}
		switch reach {
		case Size8:
			short(&b)
			l.addPatch(a.location+uint32(b.n), Size8)
			b.emit(0)
		case Size32:
			long(&b)
			l.addPatch(a.location+uint32(b.n), Size32)
			b.emitRaw32(0)
		default:
			panic("asm: unsupported branch reach")
		}
	}
	a.output(&b)
	return nil
}

// fitsShort reports whether target is within a signed byte of the end of a
// short-form instruction at location, under 32-bit wraparound arithmetic.
func fitsShort(target, location, length uint32) bool {
	d := int32(target - (location + length))
	return d >= -128 && d <= 127
}

// JImm emits a conditional branch to the absolute target in dst using the
// long form.
func (a *Assembler[R]) JImm(cc ConditionCode, dst Immediate[R]) {
	checkImm(dst, Size32)
	var b buffer[R]
	b.emit(0x0F, 0x80+byte(cc))
	b.emitRel32(a.location, dst.value)
	a.output(&b)
}

// Jecxz emits JECXZ to the absolute target in dst. The instruction only
// has a short form, so an unreachable target is a reach violation.
func (a *Assembler[R]) Jecxz(dst Immediate[R]) error {
	return a.shortJump(0xE3, dst)
}

// L emits the loop-family instruction selected by lc to the absolute
// target in dst. Like Jecxz, these only reach short targets.
func (a *Assembler[R]) L(lc LoopCode, dst Immediate[R]) error {
	return a.shortJump(0xE0+byte(lc), dst)
}

// Loop emits LOOP dst.
func (a *Assembler[R]) Loop(dst Immediate[R]) error { return a.L(LoopOnCounter, dst) }

// Loope emits LOOPE dst.
func (a *Assembler[R]) Loope(dst Immediate[R]) error { return a.L(LoopOnCounterAndZeroFlag, dst) }

// Loopne emits LOOPNE dst.
func (a *Assembler[R]) Loopne(dst Immediate[R]) error { return a.L(LoopOnCounterAndNotZeroFlag, dst) }

func (a *Assembler[R]) shortJump(opcode byte, dst Immediate[R]) error {
	checkImm(dst, Size32)
	d := int32(dst.val - (a.location + 2))
	if d < -128 || d > 127 {
		return fmt.Errorf("short jump from %#x to %#x: %w", a.location, dst.val, ErrOutOfReach)
	}
	var b buffer[R]
	b.emit(opcode)
	b.addRef(dst.value, Size8, true)
	b.emit(byte(int8(d)))
	a.output(&b)
	return nil
}

// Ret emits RET.
func (a *Assembler[R]) Ret() {
	var b buffer[R]
	b.emit(0xC3)
	a.output(&b)
}

// RetN emits RET n, popping n extra bytes off the stack on return.
func (a *Assembler[R]) RetN(n uint16) {
	var b buffer[R]
	b.emit(0xC2)
	b.emit16(n)
	a.output(&b)
}
