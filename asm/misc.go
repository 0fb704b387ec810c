package asm

// Set emits SETcc on the low byte of dst, storing 1 if the condition
// holds and 0 otherwise.
func (a *Assembler[R]) Set(cc ConditionCode, dst Register32) {
	var b buffer[R]
	b.emit(0x0F, 0x90+byte(cc))
	b.emitModRM(modDirect, 0, dst.Code())
	a.output(&b)
}
