package asm

// Stack and flag manipulation.

// PushReg emits PUSH src.
func (a *Assembler[R]) PushReg(src Register32) {
	var b buffer[R]
	b.emit(0x50 + src.Code())
	a.output(&b)
}

// PushImm emits PUSH imm32.
func (a *Assembler[R]) PushImm(src Immediate[R]) {
	checkImm(src, Size32)
	var b buffer[R]
	b.emit(0x68)
	b.emit32(src.value)
	a.output(&b)
}

// PushOp emits PUSH dword [src].
func (a *Assembler[R]) PushOp(src Operand[R]) {
	var b buffer[R]
	b.emit(0xFF)
	b.emitOperand(6, src)
	a.output(&b)
}

// Pushad emits PUSHAD.
func (a *Assembler[R]) Pushad() {
	var b buffer[R]
	b.emit(0x60)
	a.output(&b)
}

// PopReg emits POP dst.
func (a *Assembler[R]) PopReg(dst Register32) {
	var b buffer[R]
	b.emit(0x58 + dst.Code())
	a.output(&b)
}

// PopOp emits POP dword [dst].
func (a *Assembler[R]) PopOp(dst Operand[R]) {
	var b buffer[R]
	b.emit(0x8F)
	b.emitOperand(0, dst)
	a.output(&b)
}

// Popad emits POPAD.
func (a *Assembler[R]) Popad() {
	var b buffer[R]
	b.emit(0x61)
	a.output(&b)
}

// Pushfd emits PUSHFD.
func (a *Assembler[R]) Pushfd() {
	var b buffer[R]
	b.emit(0x9C)
	a.output(&b)
}

// Popfd emits POPFD.
func (a *Assembler[R]) Popfd() {
	var b buffer[R]
	b.emit(0x9D)
	a.output(&b)
}

// Sahf emits SAHF.
func (a *Assembler[R]) Sahf() {
	var b buffer[R]
	b.emit(0x9E)
	a.output(&b)
}

// Lahf emits LAHF.
func (a *Assembler[R]) Lahf() {
	var b buffer[R]
	b.emit(0x9F)
	a.output(&b)
}
