package alu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		op     Op
		a, b   uint8
		expect uint8
	}){
		{"add", OP_ADD, 0x3, 0x4, 0x07},
		{"add_max", OP_ADD, 0xf, 0xf, 0x1e},
		{"sub", OP_SUB, 0x9, 0x4, 0x05},
		{"sub_wrap", OP_SUB, 0x2, 0x5, 0xfd},
		{"mul", OP_MUL, 0x3, 0x4, 0x0c},
		{"mul_max", OP_MUL, 0xf, 0xf, 0xe1},
		{"div", OP_DIV, 0x7, 0x2, 0x03},
		{"div_zero", OP_DIV, 0x7, 0x0, DIVIDE_BY_ZERO},
		{"mod", OP_MOD, 0x7, 0x2, 0x01},
		{"mod_zero", OP_MOD, 0x7, 0x0, DIVIDE_BY_ZERO},
		{"and", OP_AND, 0xc, 0xa, 0x08},
		{"or", OP_OR, 0xc, 0xa, 0x0e},
		{"land", OP_LAND, 0xc, 0xa, 0x01},
		{"land_zero", OP_LAND, 0xc, 0x0, 0x00},
		{"lor", OP_LOR, 0x0, 0xa, 0x01},
		{"lor_zero", OP_LOR, 0x0, 0x0, 0x00},
		{"xor", OP_XOR, 0xc, 0xa, 0x06},
		{"not", OP_NOT, 0xa, 0x0, 0x05},
		{"not_zero", OP_NOT, 0x0, 0x0, 0x0f},
		{"lnot", OP_LNOT, 0x5, 0x0, 0x00},
		{"lnot_zero", OP_LNOT, 0x0, 0x5, 0x01},
		{"shr", OP_SHR, 0xa, 0x0, 0x05},
		{"shl", OP_SHL, 0xf, 0x0, 0x1e},
		{"inc", OP_INC, 0xf, 0x0, 0x10},
		{"dec", OP_DEC, 0x5, 0x0, 0x04},
		{"dec_wrap", OP_DEC, 0x0, 0x0, 0xff},
	}

	for _, entry := range table {
		result := Compute(entry.op, entry.a, entry.b)
		assert.Equal(entry.expect, result, entry.name)
	}
}

func TestComputeMasksOperands(t *testing.T) {
	assert := assert.New(t)

	// Only the low nibble of each operand participates.
	assert.Equal(uint8(0x10), Compute(OP_ADD, 0xff, 0x01))
	assert.Equal(uint8(0x00), Compute(OP_SUB, 0xf5, 0xc5))
}

func TestComputeUndefined(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(UNDEFINED, Compute(Op(16), 0xf, 0xf))
	assert.Equal(UNDEFINED, Compute(Op(-1), 0xf, 0xf))
}

func TestOpString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("add", OP_ADD.String())
	assert.Equal("lnot", OP_LNOT.String())
	assert.Equal("dec", OP_DEC.String())
	assert.Equal("Op(16)", Op(16).String())
}
