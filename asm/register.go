package asm

// Register32 identifies one of the eight 32-bit general purpose registers.
// The numeric value is the 3-bit code used in ModRM and SIB bytes.
type Register32 uint8

// 32-bit registers in encoding order.
const (
	EAX Register32 = iota
	ECX
	EDX
	EBX
	ESP
	EBP
	ESI
	EDI
)

// Code returns the 3-bit ModRM/SIB encoding of the register.
func (r Register32) Code() byte { return byte(r) }

// Register16 identifies one of the eight 16-bit registers.
type Register16 uint8

// 16-bit registers in encoding order.
const (
	AX Register16 = iota
	CX
	DX
	BX
	SP
	BP
	SI
	DI
)

// Code returns the 3-bit ModRM/SIB encoding of the register.
func (r Register16) Code() byte { return byte(r) }

// Register8 identifies one of the eight 8-bit registers.
type Register8 uint8

// 8-bit registers in encoding order.
const (
	AL Register8 = iota
	CL
	DL
	BL
	AH
	CH
	DH
	BH
)

// Code returns the 3-bit ModRM/SIB encoding of the register.
func (r Register8) Code() byte { return byte(r) }
