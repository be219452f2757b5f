// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package alu implements the arithmetic/logic unit of the μProc system.
//
// The ALU is purely combinational: a 4-bit operation select and two 4-bit
// operands map to an 8-bit result, with no state between calls. The two
// operands are the high and low nibbles of a single source register.
package alu

// Op is an ALU operation select.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_ADD  = Op(0)  // add
	OP_SUB  = Op(1)  // sub
	OP_MUL  = Op(2)  // mul
	OP_DIV  = Op(3)  // div
	OP_MOD  = Op(4)  // mod
	OP_AND  = Op(5)  // and
	OP_OR   = Op(6)  // or
	OP_LAND = Op(7)  // land
	OP_LOR  = Op(8)  // lor
	OP_XOR  = Op(9)  // xor
	OP_NOT  = Op(10) // not
	OP_LNOT = Op(11) // lnot
	OP_SHR  = Op(12) // shr
	OP_SHL  = Op(13) // shl
	OP_INC  = Op(14) // inc
	OP_DEC  = Op(15) // dec
)

const (
	// DIVIDE_BY_ZERO is the result of div or mod with a zero divisor.
	// The reference hardware leaves this undefined; a fixed sentinel keeps
	// every cycle deterministic.
	DIVIDE_BY_ZERO = uint8(0xff)

	// UNDEFINED is the result of an operation select outside the table.
	UNDEFINED = uint8(0x00)
)

// Compute performs a single ALU operation on two 4-bit operands.
// Operands are masked to their nibble range before use. Subtraction and
// decrement wrap as 8-bit unsigned arithmetic (so 0 - 1 = 0xff).
func Compute(op Op, a uint8, b uint8) (result uint8) {
	a &= 0xf
	b &= 0xf

	switch op {
	case OP_ADD:
		result = a + b
	case OP_SUB:
		result = a - b
	case OP_MUL:
		result = a * b
	case OP_DIV:
		if b == 0 {
			result = DIVIDE_BY_ZERO
		} else {
			result = a / b
		}
	case OP_MOD:
		if b == 0 {
			result = DIVIDE_BY_ZERO
		} else {
			result = a % b
		}
	case OP_AND:
		result = a & b
	case OP_OR:
		result = a | b
	case OP_LAND:
		if a != 0 && b != 0 {
			result = 1
		}
	case OP_LOR:
		if a != 0 || b != 0 {
			result = 1
		}
	case OP_XOR:
		result = a ^ b
	case OP_NOT:
		result = ^a & 0xf
	case OP_LNOT:
		if a == 0 {
			result = 1
		}
	case OP_SHR:
		result = a >> 1
	case OP_SHL:
		result = a << 1
	case OP_INC:
		result = a + 1
	case OP_DEC:
		result = a - 1
	default:
		result = UNDEFINED
	}

	return
}
