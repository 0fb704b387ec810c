package asm

// Arithmetic and comparison: the classic two-operand ALU group plus TEST
// and IMUL. The ALU instructions share one encoding scheme, captured by
// aluEncoding and the alu* helpers; each exported method is exactly one
// encoding.

// aluEncoding holds the opcode bytes of one ALU instruction.
type aluEncoding struct {
	regRM  byte // r32, r/m32
	rmReg  byte // r/m32, r32
	regRM8 byte // r8, r/m8
	eaxImm byte // short form for EAX, imm32
	alImm  byte // short form for AL, imm8
	ext    byte // /n extension for the 0x80/0x81 immediate group
}

var (
	addEnc = aluEncoding{0x03, 0x01, 0x02, 0x05, 0x04, 0}
	subEnc = aluEncoding{0x2B, 0x29, 0x2A, 0x2D, 0x2C, 5}
	cmpEnc = aluEncoding{0x3B, 0x39, 0x3A, 0x3D, 0x3C, 7}
	andEnc = aluEncoding{0x23, 0x21, 0x22, 0x25, 0x24, 4}
	xorEnc = aluEncoding{0x33, 0x31, 0x32, 0x35, 0x34, 6}
)

func (a *Assembler[R]) aluRegReg(e aluEncoding, dst, src Register32) {
	var b buffer[R]
	b.emit(e.regRM)
	b.emitModRM(modDirect, dst.Code(), src.Code())
	a.output(&b)
}

func (a *Assembler[R]) aluRegOp(e aluEncoding, dst Register32, src Operand[R]) {
	var b buffer[R]
	b.emit(e.regRM)
	b.emitOperand(dst.Code(), src)
	a.output(&b)
}

func (a *Assembler[R]) aluOpReg(e aluEncoding, dst Operand[R], src Register32) {
	var b buffer[R]
	b.emit(e.rmReg)
	b.emitOperand(src.Code(), dst)
	a.output(&b)
}

func (a *Assembler[R]) aluRegImm(e aluEncoding, dst Register32, src Immediate[R]) {
	checkImm(src, Size32)
	var b buffer[R]
	if dst == EAX {
		b.emit(e.eaxImm)
	} else {
		b.emit(0x81)
		b.emitModRM(modDirect, e.ext, dst.Code())
	}
	b.emit32(src.value)
	a.output(&b)
}

func (a *Assembler[R]) aluOpImm(e aluEncoding, dst Operand[R], src Immediate[R]) {
	checkImm(src, Size32)
	var b buffer[R]
	b.emit(0x81)
	b.emitOperand(e.ext, dst)
	b.emit32(src.value)
	a.output(&b)
}

func (a *Assembler[R]) aluRegReg8(e aluEncoding, dst, src Register8) {
	var b buffer[R]
	b.emit(e.regRM8)
	b.emitModRM(modDirect, dst.Code(), src.Code())
	a.output(&b)
}

func (a *Assembler[R]) aluRegImm8(e aluEncoding, dst Register8, src Immediate[R]) {
	checkImm(src, Size8)
	var b buffer[R]
	if dst == AL {
		b.emit(e.alImm)
	} else {
		b.emit(0x80)
		b.emitModRM(modDirect, e.ext, dst.Code())
	}
	b.emit8(src.value)
	a.output(&b)
}

// ADD

// AddRegReg emits ADD dst, src.
func (a *Assembler[R]) AddRegReg(dst, src Register32) { a.aluRegReg(addEnc, dst, src) }

// AddRegOp emits ADD dst, [src].
func (a *Assembler[R]) AddRegOp(dst Register32, src Operand[R]) { a.aluRegOp(addEnc, dst, src) }

// AddOpReg emits ADD [dst], src.
func (a *Assembler[R]) AddOpReg(dst Operand[R], src Register32) { a.aluOpReg(addEnc, dst, src) }

// AddRegImm emits ADD dst, imm32.
func (a *Assembler[R]) AddRegImm(dst Register32, src Immediate[R]) { a.aluRegImm(addEnc, dst, src) }

// AddOpImm emits ADD dword [dst], imm32.
func (a *Assembler[R]) AddOpImm(dst Operand[R], src Immediate[R]) { a.aluOpImm(addEnc, dst, src) }

// AddRegReg8 emits ADD dst, src on 8-bit registers.
func (a *Assembler[R]) AddRegReg8(dst, src Register8) { a.aluRegReg8(addEnc, dst, src) }

// AddRegImm8 emits ADD dst, imm8.
func (a *Assembler[R]) AddRegImm8(dst Register8, src Immediate[R]) { a.aluRegImm8(addEnc, dst, src) }

// SUB

// SubRegReg emits SUB dst, src.
func (a *Assembler[R]) SubRegReg(dst, src Register32) { a.aluRegReg(subEnc, dst, src) }

// SubRegOp emits SUB dst, [src].
func (a *Assembler[R]) SubRegOp(dst Register32, src Operand[R]) { a.aluRegOp(subEnc, dst, src) }

// SubOpReg emits SUB [dst], src.
func (a *Assembler[R]) SubOpReg(dst Operand[R], src Register32) { a.aluOpReg(subEnc, dst, src) }

// SubRegImm emits SUB dst, imm32.
func (a *Assembler[R]) SubRegImm(dst Register32, src Immediate[R]) { a.aluRegImm(subEnc, dst, src) }

// SubOpImm emits SUB dword [dst], imm32.
func (a *Assembler[R]) SubOpImm(dst Operand[R], src Immediate[R]) { a.aluOpImm(subEnc, dst, src) }

// SubRegReg8 emits SUB dst, src on 8-bit registers.
func (a *Assembler[R]) SubRegReg8(dst, src Register8) { a.aluRegReg8(subEnc, dst, src) }

// SubRegImm8 emits SUB dst, imm8.
func (a *Assembler[R]) SubRegImm8(dst Register8, src Immediate[R]) { a.aluRegImm8(subEnc, dst, src) }

// CMP

// CmpRegReg emits CMP dst, src.
func (a *Assembler[R]) CmpRegReg(dst, src Register32) { a.aluRegReg(cmpEnc, dst, src) }

// CmpRegOp emits CMP dst, [src].
func (a *Assembler[R]) CmpRegOp(dst Register32, src Operand[R]) { a.aluRegOp(cmpEnc, dst, src) }

// CmpOpReg emits CMP [dst], src.
func (a *Assembler[R]) CmpOpReg(dst Operand[R], src Register32) { a.aluOpReg(cmpEnc, dst, src) }

// CmpRegImm emits CMP dst, imm32.
func (a *Assembler[R]) CmpRegImm(dst Register32, src Immediate[R]) { a.aluRegImm(cmpEnc, dst, src) }

// CmpOpImm emits CMP dword [dst], imm32.
func (a *Assembler[R]) CmpOpImm(dst Operand[R], src Immediate[R]) { a.aluOpImm(cmpEnc, dst, src) }

// CmpRegReg8 emits CMP dst, src on 8-bit registers.
func (a *Assembler[R]) CmpRegReg8(dst, src Register8) { a.aluRegReg8(cmpEnc, dst, src) }

// CmpRegImm8 emits CMP dst, imm8.
func (a *Assembler[R]) CmpRegImm8(dst Register8, src Immediate[R]) { a.aluRegImm8(cmpEnc, dst, src) }

// TEST
//
// TEST only exists in r/m,r form, so both register orders produce the same
// opcode with the roles swapped, and the immediate forms use the 0xF6/0xF7
// unary group.

// TestRegReg emits TEST dst, src.
func (a *Assembler[R]) TestRegReg(dst, src Register32) {
	var b buffer[R]
	b.emit(0x85)
	b.emitModRM(modDirect, src.Code(), dst.Code())
	a.output(&b)
}

// TestRegOp emits TEST dst, [src].
func (a *Assembler[R]) TestRegOp(dst Register32, src Operand[R]) {
	var b buffer[R]
	b.emit(0x85)
	b.emitOperand(dst.Code(), src)
	a.output(&b)
}

// TestOpReg emits TEST [dst], src.
func (a *Assembler[R]) TestOpReg(dst Operand[R], src Register32) {
	var b buffer[R]
	b.emit(0x85)
	b.emitOperand(src.Code(), dst)
	a.output(&b)
}

// TestRegImm emits TEST dst, imm32.
func (a *Assembler[R]) TestRegImm(dst Register32, src Immediate[R]) {
	checkImm(src, Size32)
	var b buffer[R]
	if dst == EAX {
		b.emit(0xA9)
	} else {
		b.emit(0xF7)
		b.emitModRM(modDirect, 0, dst.Code())
	}
	b.emit32(src.value)
	a.output(&b)
}

// TestOpImm emits TEST dword [dst], imm32.
func (a *Assembler[R]) TestOpImm(dst Operand[R], src Immediate[R]) {
	checkImm(src, Size32)
	var b buffer[R]
	b.emit(0xF7)
	b.emitOperand(0, dst)
	b.emit32(src.value)
	a.output(&b)
}

// TestRegReg8 emits TEST dst, src on 8-bit registers.
func (a *Assembler[R]) TestRegReg8(dst, src Register8) {
	var b buffer[R]
	b.emit(0x84)
	b.emitModRM(modDirect, src.Code(), dst.Code())
	a.output(&b)
}

// TestRegImm8 emits TEST dst, imm8.
func (a *Assembler[R]) TestRegImm8(dst Register8, src Immediate[R]) {
	checkImm(src, Size8)
	var b buffer[R]
	if dst == AL {
		b.emit(0xA8)
	} else {
		b.emit(0xF6)
		b.emitModRM(modDirect, 0, dst.Code())
	}
	b.emit8(src.value)
	a.output(&b)
}

// IMUL

// ImulRegReg emits IMUL dst, src.
func (a *Assembler[R]) ImulRegReg(dst, src Register32) {
	var b buffer[R]
	b.emit(0x0F, 0xAF)
	b.emitModRM(modDirect, dst.Code(), src.Code())
	a.output(&b)
}

// ImulRegOp emits IMUL dst, [src].
func (a *Assembler[R]) ImulRegOp(dst Register32, src Operand[R]) {
	var b buffer[R]
	b.emit(0x0F, 0xAF)
	b.emitOperand(dst.Code(), src)
	a.output(&b)
}

// ImulRegRegImm emits IMUL dst, src, imm32.
func (a *Assembler[R]) ImulRegRegImm(dst, src Register32, imm Immediate[R]) {
	checkImm(imm, Size32)
	var b buffer[R]
	b.emit(0x69)
	b.emitModRM(modDirect, dst.Code(), src.Code())
	b.emit32(imm.value)
	a.output(&b)
}
