package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/uproc/alu"
)

func TestWordMode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(MODE_LOAD, MakeWordLoad(0xa5).Mode())
	assert.Equal(MODE_EXEC, MakeWordNoop().Mode())
	assert.Equal(MODE_EXEC, MakeWordStore(0, 0).Mode())
}

func TestWordDecode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint8(0xa5), MakeWordLoad(0xa5).ProgramByte())

	word := MakeWordStore(2, 0x5a)
	assert.Equal(OP_STORE, word.Op())
	reg, data := word.StoreDecode()
	assert.Equal(2, reg)
	assert.Equal(uint8(0x5a), data)

	word = MakeWordCalc(alu.OP_MOD, 1, 3)
	assert.Equal(OP_CALC, word.Op())
	op, in, out := word.CalcDecode()
	assert.Equal(alu.OP_MOD, op)
	assert.Equal(1, in)
	assert.Equal(3, out)

	word = MakeWordMemStore(0xf, 0xc3)
	assert.Equal(OP_MEMSTORE, word.Op())
	addr, data := word.MemStoreDecode()
	assert.Equal(0xf, addr)
	assert.Equal(uint8(0xc3), data)

	word = MakeWordMemLoad(0x9, 1)
	assert.Equal(OP_MEMLOAD, word.Op())
	maddr, mreg := word.MemLoadDecode()
	assert.Equal(0x9, maddr)
	assert.Equal(1, mreg)

	word = MakeWordJumpIf(5, 2, 3)
	assert.Equal(OP_JUMPIF, word.Op())
	jaddr, a, b := word.JumpIfDecode()
	assert.Equal(uint8(5), jaddr)
	assert.Equal(2, a)
	assert.Equal(3, b)

	assert.Equal(uint8(7), MakeWordJump(7).JumpDecode())
	assert.Equal(3, MakeWordOut(3).OutDecode())
}

func TestWordFieldsMasked(t *testing.T) {
	assert := assert.New(t)

	// Out of range encoder arguments cannot spill into other fields.
	word := MakeWordStore(7, 0x5a)
	reg, data := word.StoreDecode()
	assert.Equal(3, reg)
	assert.Equal(uint8(0x5a), data)
	assert.Equal(OP_STORE, word.Op())
}

func TestWordString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("load.0xa5", MakeWordLoad(0xa5).String())
	assert.Equal("noop", MakeWordNoop().String())
	assert.Equal("write.r2.0x5a", MakeWordStore(2, 0x5a).String())
	assert.Equal("calc.div.r0.r3", MakeWordCalc(alu.OP_DIV, 0, 3).String())
	assert.Equal("jumpif.0x5.r2.r3", MakeWordJumpIf(5, 2, 3).String())
	assert.Equal("out.r1", MakeWordOut(1).String())
}
