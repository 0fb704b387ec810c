package asm

// Logical operations and shifts. AND and XOR reuse the shared ALU encoding
// scheme from maths.go.

// AND

// AndRegReg emits AND dst, src.
func (a *Assembler[R]) AndRegReg(dst, src Register32) { a.aluRegReg(andEnc, dst, src) }

// AndRegOp emits AND dst, [src].
func (a *Assembler[R]) AndRegOp(dst Register32, src Operand[R]) { a.aluRegOp(andEnc, dst, src) }

// AndOpReg emits AND [dst], src.
func (a *Assembler[R]) AndOpReg(dst Operand[R], src Register32) { a.aluOpReg(andEnc, dst, src) }

// AndRegImm emits AND dst, imm32.
func (a *Assembler[R]) AndRegImm(dst Register32, src Immediate[R]) { a.aluRegImm(andEnc, dst, src) }

// AndOpImm emits AND dword [dst], imm32.
func (a *Assembler[R]) AndOpImm(dst Operand[R], src Immediate[R]) { a.aluOpImm(andEnc, dst, src) }

// AndRegReg8 emits AND dst, src on 8-bit registers.
func (a *Assembler[R]) AndRegReg8(dst, src Register8) { a.aluRegReg8(andEnc, dst, src) }

// AndRegImm8 emits AND dst, imm8.
func (a *Assembler[R]) AndRegImm8(dst Register8, src Immediate[R]) { a.aluRegImm8(andEnc, dst, src) }

// XOR

// XorRegReg emits XOR dst, src.
func (a *Assembler[R]) XorRegReg(dst, src Register32) { a.aluRegReg(xorEnc, dst, src) }

// XorRegOp emits XOR dst, [src].
func (a *Assembler[R]) XorRegOp(dst Register32, src Operand[R]) { a.aluRegOp(xorEnc, dst, src) }

// XorOpReg emits XOR [dst], src.
func (a *Assembler[R]) XorOpReg(dst Operand[R], src Register32) { a.aluOpReg(xorEnc, dst, src) }

// XorRegImm emits XOR dst, imm32.
func (a *Assembler[R]) XorRegImm(dst Register32, src Immediate[R]) { a.aluRegImm(xorEnc, dst, src) }

// XorOpImm emits XOR dword [dst], imm32.
func (a *Assembler[R]) XorOpImm(dst Operand[R], src Immediate[R]) { a.aluOpImm(xorEnc, dst, src) }

// XorRegReg8 emits XOR dst, src on 8-bit registers.
func (a *Assembler[R]) XorRegReg8(dst, src Register8) { a.aluRegReg8(xorEnc, dst, src) }

// XorRegImm8 emits XOR dst, imm8.
func (a *Assembler[R]) XorRegImm8(dst Register8, src Immediate[R]) { a.aluRegImm8(xorEnc, dst, src) }

// Shifts

// ShlRegImm emits SHL dst, imm8.
func (a *Assembler[R]) ShlRegImm(dst Register32, src Immediate[R]) {
	a.shift(4, dst, src)
}

// ShrRegImm emits SHR dst, imm8.
func (a *Assembler[R]) ShrRegImm(dst Register32, src Immediate[R]) {
	a.shift(5, dst, src)
}

func (a *Assembler[R]) shift(ext byte, dst Register32, src Immediate[R]) {
	checkImm(src, Size8)
	var b buffer[R]
	b.emit(0xC1)
	b.emitModRM(modDirect, ext, dst.Code())
	b.emit8(src.value)
	a.output(&b)
}
