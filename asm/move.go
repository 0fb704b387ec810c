package asm

// Data movement: MOV in all operand forms, byte moves, zero extension,
// FS-segment moves, LEA and the XCHG family.

// MovRegReg emits MOV dst, src.
func (a *Assembler[R]) MovRegReg(dst, src Register32) {
	var b buffer[R]
	b.emit(0x8B)
	b.emitModRM(modDirect, dst.Code(), src.Code())
	a.output(&b)
}

// MovRegOp emits MOV dst, [src].
func (a *Assembler[R]) MovRegOp(dst Register32, src Operand[R]) {
	var b buffer[R]
	b.emit(0x8B)
	b.emitOperand(dst.Code(), src)
	a.output(&b)
}

// MovOpReg emits MOV [dst], src.
func (a *Assembler[R]) MovOpReg(dst Operand[R], src Register32) {
	var b buffer[R]
	b.emit(0x89)
	b.emitOperand(src.Code(), dst)
	a.output(&b)
}

// MovRegImm emits MOV dst, imm32 using the short register form.
func (a *Assembler[R]) MovRegImm(dst Register32, src Immediate[R]) {
	checkImm(src, Size32)
	var b buffer[R]
	b.emit(0xB8 + dst.Code())
	b.emit32(src.value)
	a.output(&b)
}

// MovOpImm emits MOV dword [dst], imm32.
func (a *Assembler[R]) MovOpImm(dst Operand[R], src Immediate[R]) {
	checkImm(src, Size32)
	var b buffer[R]
	b.emit(0xC7)
	b.emitOperand(0, dst)
	b.emit32(src.value)
	a.output(&b)
}

// MovB emits MOV byte [dst], imm8.
func (a *Assembler[R]) MovB(dst Operand[R], src Immediate[R]) {
	checkImm(src, Size8)
	var b buffer[R]
	b.emit(0xC6)
	b.emitOperand(0, dst)
	b.emit8(src.value)
	a.output(&b)
}

// MovzxB emits MOVZX dst, byte [src].
func (a *Assembler[R]) MovzxB(dst Register32, src Operand[R]) {
	var b buffer[R]
	b.emit(0x0F, 0xB6)
	b.emitOperand(dst.Code(), src)
	a.output(&b)
}

// MovFSRegOp emits MOV dst, fs:[src].
func (a *Assembler[R]) MovFSRegOp(dst Register32, src Operand[R]) {
	var b buffer[R]
	b.emit(prefixFS, 0x8B)
	b.emitOperand(dst.Code(), src)
	a.output(&b)
}

// MovFSOpReg emits MOV fs:[dst], src.
func (a *Assembler[R]) MovFSOpReg(dst Operand[R], src Register32) {
	var b buffer[R]
	b.emit(prefixFS, 0x89)
	b.emitOperand(src.Code(), dst)
	a.output(&b)
}

// Lea emits LEA dst, [src].
func (a *Assembler[R]) Lea(dst Register32, src Operand[R]) {
	var b buffer[R]
	b.emit(0x8D)
	b.emitOperand(dst.Code(), src)
	a.output(&b)
}

// XchgRegReg emits XCHG dst, src. Exchanges involving EAX use the one-byte
// form.
func (a *Assembler[R]) XchgRegReg(dst, src Register32) {
	var b buffer[R]
	switch {
	case dst == EAX:
		b.emit(0x90 + src.Code())
	case src == EAX:
		b.emit(0x90 + dst.Code())
	default:
		b.emit(0x87)
		b.emitModRM(modDirect, src.Code(), dst.Code())
	}
	a.output(&b)
}

// XchgRegReg16 emits XCHG dst, src on 16-bit registers. Exchanges
// involving AX use the one-byte form.
func (a *Assembler[R]) XchgRegReg16(dst, src Register16) {
	var b buffer[R]
	b.emit(prefixOperandSize)
	switch {
	case dst == AX:
		b.emit(0x90 + src.Code())
	case src == AX:
		b.emit(0x90 + dst.Code())
	default:
		b.emit(0x87)
		b.emitModRM(modDirect, src.Code(), dst.Code())
	}
	a.output(&b)
}

// XchgRegReg8 emits XCHG dst, src on 8-bit registers.
func (a *Assembler[R]) XchgRegReg8(dst, src Register8) {
	var b buffer[R]
	b.emit(0x86)
	b.emitModRM(modDirect, src.Code(), dst.Code())
	a.output(&b)
}

// XchgRegOp emits XCHG dst, [src]. The memory form takes an implicit lock
// on src while it executes.
func (a *Assembler[R]) XchgRegOp(dst Register32, src Operand[R]) {
	var b buffer[R]
	b.emit(0x87)
	b.emitOperand(dst.Code(), src)
	a.output(&b)
}

// checkImm guards operations whose immediate field has a fixed width.
func checkImm[R any](imm Immediate[R], size ValueSize) {
	if imm.size != size {
		panic("asm: immediate width does not match the operation")
	}
}
