package asm

// MaxNopInstructionSize is the longest single NOP instruction the
// generator emits. Longer requests become several consecutive NOPs.
const MaxNopInstructionSize = 11

// Nop emits size bytes of NOP instructions. The generator greedily picks
// the longest canonical encoding that fits, stretching it with
// operand-size prefixes to land exactly on the requested count, so one
// call covers any size with the fewest instructions. A sequence from a
// single call performs better than the same total emitted one byte at a
// time.
func (a *Assembler[R]) Nop(size int) {
	for size > 0 {
		n := size
		if n > MaxNopInstructionSize {
			n = MaxNopInstructionSize
		}
		switch {
		case n >= 8:
			a.nop8(n - 8)
		case n == 7:
			a.nop7(0)
		case n >= 5:
			a.nop5(n - 5)
		case n == 4:
			a.nop4(0)
		default:
			a.nop1(n - 1)
		}
		size -= n
	}
}

// The canonical NOP bodies below follow the processor-suggested multi-byte
// encodings. Each can carry extra 0x66 prefixes; Nop uses that to hit an
// exact byte count.

// nop1 emits XCHG EAX, EAX.
func (a *Assembler[R]) nop1(prefixes int) {
	var b buffer[R]
	b.emitPrefixes(prefixes)
	b.emit(0x90)
	a.output(&b)
}

// nop4 emits NOP dword [eax + 0] with a disp8.
func (a *Assembler[R]) nop4(prefixes int) {
	var b buffer[R]
	b.emitPrefixes(prefixes)
	b.emit(0x0F, 0x1F, 0x40, 0x00)
	a.output(&b)
}

// nop5 emits NOP dword [eax + eax*1 + 0] with a disp8.
func (a *Assembler[R]) nop5(prefixes int) {
	var b buffer[R]
	b.emitPrefixes(prefixes)
	b.emit(0x0F, 0x1F, 0x44, 0x00, 0x00)
	a.output(&b)
}

// nop7 emits NOP dword [eax + 0] with a disp32.
func (a *Assembler[R]) nop7(prefixes int) {
	var b buffer[R]
	b.emitPrefixes(prefixes)
	b.emit(0x0F, 0x1F, 0x80, 0x00, 0x00, 0x00, 0x00)
	a.output(&b)
}

// nop8 emits NOP dword [eax + eax*1 + 0] with a disp32.
func (a *Assembler[R]) nop8(prefixes int) {
	var b buffer[R]
	b.emitPrefixes(prefixes)
	b.emit(0x0F, 0x1F, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00)
	a.output(&b)
}

func (b *buffer[R]) emitPrefixes(count int) {
	for i := 0; i < count; i++ {
		b.emit(prefixOperandSize)
	}
}
