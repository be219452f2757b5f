package emulator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/uproc/machine"
)

func doRun(emu *Emulator, program []string, t *testing.T) (output uint8) {
	assert := assert.New(t)

	asm := &machine.Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	emu.Program = prog

	emu.Reset()

	output, err = emu.Run(0)
	assert.NoError(err)

	return
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Machine)
	assert.NotNil(emu.Program)
}

func TestEmulator_StoreOut(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	output := doRun(emu, []string{
		"write r0 0x2a",
		"out r0",
	}, t)

	assert.Equal(uint8(0x2a), output)
	assert.Equal(2, emu.Machine.Ticks)
}

func TestEmulator_Branch(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	output := doRun(emu, []string{
		"write r0 0x21",     // nibbles a=2, b=1
		"calc add r0 r1",    // r1 = 3
		"jumpif done r2 r3", // r2 == r3, taken
		"write r1 0xee",     // skipped
		"done: out r1",
	}, t)

	assert.Equal(uint8(0x03), output)
	assert.Equal(uint8(0x03), emu.Machine.Register[1], "skipped write must not land")
}

func TestEmulator_BranchNotTaken(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	output := doRun(emu, []string{
		"write r0 0x01",
		"jumpif 0 r0 r1", // r0 != r1, falls through
		"out r0",
	}, t)

	assert.Equal(uint8(0x01), output)
}

func TestEmulator_Memory(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	output := doRun(emu, []string{
		"save 9 0xc3",
		"load 9 r2",
		"out r2",
	}, t)

	assert.Equal(uint8(0xc3), output)
	assert.Equal(uint8(0xc3), emu.Machine.Memory[9])
}

func TestEmulator_TickLimit(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	asm := &machine.Assembler{}
	prog, err := asm.Parse(strings.NewReader("top: jump top"))
	assert.NoError(err)
	emu.Program = prog

	emu.Reset()

	_, err = emu.Run(10)
	assert.ErrorIs(err, ErrTickLimit)
	assert.Equal(10, emu.Machine.Ticks)
}

func TestEmulator_NoProgram(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = nil

	_, err := emu.Tick()
	assert.ErrorIs(err, ErrNoProgram)
}

func TestEmulator_LoadBytes(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Reset()

	data := []uint8{0x10, 0x20, 0x30}
	emu.LoadBytes(data)

	for n, value := range data {
		assert.Equal(value, emu.Machine.Program[n])
	}
	assert.Equal(uint8(len(data)), emu.Machine.Counter)
}

func TestEmulator_LineNo(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	asm := &machine.Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join([]string{
		"; comment only",
		"write r0 0x01",
		"out r0",
	}, "\n")))
	assert.NoError(err)
	emu.Program = prog

	emu.Reset()
	assert.Equal(2, emu.LineNo())

	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(3, emu.LineNo())
}

func TestEmulator_Defines(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	defines := map[string]string{}
	for key, value := range emu.Defines() {
		defines[key] = value
	}

	assert.Equal("64", defines["TICK_LIMIT"])
	assert.Equal("8", defines["PROGRAM_SIZE"])
	assert.Equal("16", defines["MEMORY_SIZE"])
}
