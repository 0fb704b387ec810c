package asm

// ConditionCode selects one of the sixteen x86 branch conditions. The
// numeric value is added to the opcode base of the Jcc and SETcc families.
type ConditionCode int

// Condition codes in opcode order.
const (
	Overflow ConditionCode = iota
	NoOverflow
	Below
	AboveEqual
	Equal
	NotEqual
	BelowEqual
	Above
	Sign
	NotSign
	ParityEven
	ParityOdd
	Less
	GreaterEqual
	LessEqual
	Greater
)

// Common aliases for the same encodings.
const (
	Carry    = Below
	NotCarry = AboveEqual
	Zero     = Equal
	NotZero  = NotEqual
)

// LoopCode selects one of the LOOP instruction variants. The numeric value
// is added to the 0xE0 opcode base.
type LoopCode int

// Loop variants in opcode order.
const (
	// LoopOnCounterAndNotZeroFlag is LOOPNE: branch while ECX != 0 and ZF = 0.
	LoopOnCounterAndNotZeroFlag LoopCode = iota
	// LoopOnCounterAndZeroFlag is LOOPE: branch while ECX != 0 and ZF = 1.
	LoopOnCounterAndZeroFlag
	// LoopOnCounter is LOOP: branch while ECX != 0.
	LoopOnCounter
)
