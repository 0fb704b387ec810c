package asm

// Scale multiplies the index register of a memory operand. The numeric
// value is the 2-bit scale field of the SIB byte.
type Scale byte

// Index scale factors.
const (
	Scale1 Scale = iota
	Scale2
	Scale4
	Scale8
)

// Operand describes one addressing mode: register direct, or memory
// composed of an optional base register, an optional scaled index and a
// displacement. Operands are immutable values; every combination the
// constructors admit has exactly one encoding.
type Operand[R any] struct {
	direct   bool
	base     Register32
	hasBase  bool
	index    Register32
	hasIndex bool
	scale    Scale
	disp     Displacement[R]
}

// RegOp returns a register-direct operand.
func RegOp[R any](r Register32) Operand[R] {
	return Operand[R]{direct: true, base: r, hasBase: true}
}

// Mem returns the memory operand [base].
func Mem[R any](base Register32) Operand[R] {
	return Operand[R]{base: base, hasBase: true}
}

// MemDisp returns the memory operand [base+disp].
func MemDisp[R any](base Register32, disp Displacement[R]) Operand[R] {
	return Operand[R]{base: base, hasBase: true, disp: disp}
}

// MemAbs returns the absolute memory operand [disp32].
func MemAbs[R any](disp Displacement[R]) Operand[R] {
	return Operand[R]{disp: disp}
}

// MemIdx returns the memory operand [base + index*scale + disp].
// ESP cannot be used as an index register.
func MemIdx[R any](base, index Register32, scale Scale, disp Displacement[R]) Operand[R] {
	if index == ESP {
		panic("asm: ESP is not encodable as an index register")
	}
	return Operand[R]{base: base, hasBase: true, index: index, hasIndex: true, scale: scale, disp: disp}
}

// MemScaled returns the memory operand [index*scale + disp32] without a
// base register. ESP cannot be used as an index register.
func MemScaled[R any](index Register32, scale Scale, disp Displacement[R]) Operand[R] {
	if index == ESP {
		panic("asm: ESP is not encodable as an index register")
	}
	return Operand[R]{index: index, hasIndex: true, scale: scale, disp: disp}
}
