package machine

import (
	"fmt"

	"github.com/ezrec/uproc/alu"
)

// Mode is the per-cycle mode select, taken from bit 0 of the input word.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_LOAD = Mode(0) // load
	MODE_EXEC = Mode(1) // exec
)

// Op is an instruction opcode, taken from the top 3 bits of the payload.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_NOOP     = Op(0) // noop
	OP_STORE    = Op(1) // write
	OP_CALC     = Op(2) // calc
	OP_MEMSTORE = Op(3) // save
	OP_MEMLOAD  = Op(4) // load
	OP_JUMP     = Op(5) // jump
	OP_JUMPIF   = Op(6) // jumpif
	OP_OUT      = Op(7) // out
)

// Word is a single 16-bit input bus word.
//
// Bit 0 selects the mode, bits 15:1 are the payload. In execution mode the
// payload holds a 3-bit opcode in its top bits, with the operand fields
// packed high-to-low immediately below it:
//
//	write:  REG[11:10] DATA[9:2]
//	calc:   ALUOP[11:8] REG_IN[7:6] REG_OUT[5:4]
//	save:   ADDR[11:8] DATA[7:0]
//	load:   ADDR[11:8] REG[7:6]
//	jump:   ADDR[11:8]
//	jumpif: ADDR[11:8] REG_A[7:6] REG_B[5:4]
//	out:    REG[11:10]
//
// (bit positions within the 15-bit payload). In programming mode the byte
// to store is the low 8 bits of payload[13:1], i.e. word bits 9:2.
type Word uint16

// Mode returns the mode select bit of the word.
func (w Word) Mode() Mode {
	return Mode(w & 1)
}

// Payload returns the 15 non-mode bits of the word.
func (w Word) Payload() uint16 {
	return uint16(w >> 1)
}

// Op returns the instruction opcode of an execution mode word.
func (w Word) Op() Op {
	return Op((w >> 13) & 0x7)
}

// ProgramByte returns the byte a programming mode word stores.
func (w Word) ProgramByte() uint8 {
	return uint8(w >> 2)
}

// StoreDecode decodes the register index and data of a write instruction.
func (w Word) StoreDecode() (reg int, data uint8) {
	reg = int((w >> 11) & 0x3)
	data = uint8(w >> 3)
	return
}

// CalcDecode decodes the ALU operation, source register, and destination
// register of a calc instruction.
func (w Word) CalcDecode() (op alu.Op, in, out int) {
	op = alu.Op((w >> 9) & 0xf)
	in = int((w >> 7) & 0x3)
	out = int((w >> 5) & 0x3)
	return
}

// MemStoreDecode decodes the memory address and data of a save instruction.
func (w Word) MemStoreDecode() (addr int, data uint8) {
	addr = int((w >> 9) & 0xf)
	data = uint8(w >> 1)
	return
}

// MemLoadDecode decodes the memory address and register index of a load
// instruction.
func (w Word) MemLoadDecode() (addr, reg int) {
	addr = int((w >> 9) & 0xf)
	reg = int((w >> 7) & 0x3)
	return
}

// JumpDecode decodes the target address of a jump instruction.
func (w Word) JumpDecode() (addr uint8) {
	addr = uint8((w >> 9) & 0xf)
	return
}

// JumpIfDecode decodes the target address and the two compared register
// indexes of a jumpif instruction.
func (w Word) JumpIfDecode() (addr uint8, a, b int) {
	addr = uint8((w >> 9) & 0xf)
	a = int((w >> 7) & 0x3)
	b = int((w >> 5) & 0x3)
	return
}

// OutDecode decodes the register index of an out instruction.
func (w Word) OutDecode() (reg int) {
	reg = int((w >> 11) & 0x3)
	return
}

// makeExec packs an opcode and its operand fields into an execution mode word.
func makeExec(op Op, fields uint16) Word {
	return Word(((uint16(op) & 0x7) << 13) | fields | uint16(MODE_EXEC))
}

// MakeWordLoad creates a programming mode word storing one program byte.
func MakeWordLoad(data uint8) Word {
	return Word(uint16(data) << 2)
}

// MakeWordNoop creates a noop instruction.
func MakeWordNoop() Word {
	return makeExec(OP_NOOP, 0)
}

// MakeWordStore creates a write instruction setting a register to a value.
func MakeWordStore(reg int, data uint8) Word {
	return makeExec(OP_STORE, ((uint16(reg)&0x3)<<11)|(uint16(data)<<3))
}

// MakeWordCalc creates a calc instruction running the ALU over the nibbles
// of a source register into a destination register.
func MakeWordCalc(op alu.Op, in, out int) Word {
	return makeExec(OP_CALC, ((uint16(op)&0xf)<<9)|((uint16(in)&0x3)<<7)|((uint16(out)&0x3)<<5))
}

// MakeWordMemStore creates a save instruction setting a memory entry.
func MakeWordMemStore(addr int, data uint8) Word {
	return makeExec(OP_MEMSTORE, ((uint16(addr)&0xf)<<9)|(uint16(data)<<1))
}

// MakeWordMemLoad creates a load instruction copying a memory entry into a
// register.
func MakeWordMemLoad(addr, reg int) Word {
	return makeExec(OP_MEMLOAD, ((uint16(addr)&0xf)<<9)|((uint16(reg)&0x3)<<7))
}

// MakeWordJump creates a jump instruction.
func MakeWordJump(addr uint8) Word {
	return makeExec(OP_JUMP, (uint16(addr)&0xf)<<9)
}

// MakeWordJumpIf creates a jumpif instruction comparing two registers.
func MakeWordJumpIf(addr uint8, a, b int) Word {
	return makeExec(OP_JUMPIF, ((uint16(addr)&0xf)<<9)|((uint16(a)&0x3)<<7)|((uint16(b)&0x3)<<5))
}

// MakeWordOut creates an out instruction publishing a register to the
// output latch.
func MakeWordOut(reg int) Word {
	return makeExec(OP_OUT, (uint16(reg)&0x3)<<11)
}

// String returns the assembly language representation of this word.
func (w Word) String() (out string) {
	if w.Mode() == MODE_LOAD {
		return fmt.Sprintf("load.%#02x", w.ProgramByte())
	}

	op := w.Op()
	switch op {
	case OP_STORE:
		reg, data := w.StoreDecode()
		out = fmt.Sprintf("%v.r%d.%#02x", op, reg, data)
	case OP_CALC:
		aluop, in, dst := w.CalcDecode()
		out = fmt.Sprintf("%v.%v.r%d.r%d", op, aluop, in, dst)
	case OP_MEMSTORE:
		addr, data := w.MemStoreDecode()
		out = fmt.Sprintf("%v.%#x.%#02x", op, addr, data)
	case OP_MEMLOAD:
		addr, reg := w.MemLoadDecode()
		out = fmt.Sprintf("%v.%#x.r%d", op, addr, reg)
	case OP_JUMP:
		out = fmt.Sprintf("%v.%#x", op, w.JumpDecode())
	case OP_JUMPIF:
		addr, a, b := w.JumpIfDecode()
		out = fmt.Sprintf("%v.%#x.r%d.r%d", op, addr, a, b)
	case OP_OUT:
		out = fmt.Sprintf("%v.r%d", op, w.OutDecode())
	default:
		out = op.String()
	}

	return
}
