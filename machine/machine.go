// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/uproc/alu"
)

const (
	PROGRAM_SIZE   = 8  // Entries in the program store.
	MEMORY_SIZE    = 16 // Entries in the data memory.
	REGISTER_COUNT = 4  // General purpose registers.

	counterMask = PROGRAM_SIZE - 1
)

var _machine_defines = map[string]string{
	"PROGRAM_SIZE":   fmt.Sprintf("%v", PROGRAM_SIZE),
	"MEMORY_SIZE":    fmt.Sprintf("%v", MEMORY_SIZE),
	"REGISTER_COUNT": fmt.Sprintf("%v", REGISTER_COUNT),
	"DIVIDE_BY_ZERO": fmt.Sprintf("%#v", alu.DIVIDE_BY_ZERO),
}

// Machine is the simulation context for the μProc core.
//
// All state is externally readable; only Step mutates it. The counter is
// always within [0, PROGRAM_SIZE). The output latch starts at zero and is
// never cleared, not even by reset.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Program  [PROGRAM_SIZE]uint8   // Program store, written in load mode.
	Memory   [MEMORY_SIZE]uint8    // Data memory.
	Register [REGISTER_COUNT]uint8 // Register bank.
	Counter  uint8                 // 3-bit program counter.
	Output   uint8                 // Output latch, set only by the out instruction.

	Ticks int // Cycles stepped since power-up.
}

// New creates a new machine in its power-up state: everything zero.
func New() (m *Machine) {
	m = &Machine{}

	return
}

// Defines for the machine
func (m *Machine) Defines() iter.Seq2[string, string] {
	return maps.All(_machine_defines)
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	regs := []string{
		"pc",
		"r0", "r1", "r2", "r3",
		"out",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%d", m.Counter)
		case "r0", "r1", "r2", "r3":
			val := m.Register[byte(reg[1]-'0')]
			strval = fmt.Sprintf("%02X", val)
		case "out":
			strval = fmt.Sprintf("%02X", m.Output)
		}
		text += fmt.Sprintf("% 4s: %v\n", reg, strval)
	}

	return
}

// Reset forces the counter to zero. Registers, memory, the program store,
// and the output latch are deliberately untouched, matching the hardware
// reset line. Equivalent to stepping one cycle with reset asserted.
func (m *Machine) Reset() {
	if m.Verbose {
		log.Printf("machine: reset")
	}

	m.Counter = 0
}

// Step performs one clock cycle: one input word in, the output latch out.
//
// Reset takes priority over both modes; while asserted the only effect is
// the counter returning to zero. Step never fails: malformed words degrade
// to noop and the ALU resolves its undefined cases to documented sentinels,
// so every cycle completes with defined state.
func (m *Machine) Step(word Word, reset bool) uint8 {
	if reset {
		m.Reset()
		return m.Output
	}

	switch word.Mode() {
	case MODE_LOAD:
		m.load(word)
	case MODE_EXEC:
		m.execute(word)
	}

	m.Ticks += 1

	return m.Output
}

// load latches one program byte at the counter, then advances it.
func (m *Machine) load(word Word) {
	if m.Verbose {
		log.Printf("%d: %v", m.Counter, word)
	}

	m.Program[m.Counter&counterMask] = word.ProgramByte()
	m.Counter = (m.Counter + 1) & counterMask
}

// execute decodes and executes one instruction word, then advances the
// counter unless a jump overrode it.
func (m *Machine) execute(word Word) {
	if m.Verbose {
		log.Printf("%d: %v", m.Counter, word)
	}

	next := (m.Counter + 1) & counterMask

	switch word.Op() {
	case OP_NOOP:
		// no state change
	case OP_STORE:
		reg, data := word.StoreDecode()
		m.Register[reg] = data
	case OP_CALC:
		op, in, out := word.CalcDecode()
		src := m.Register[in]
		m.Register[out] = alu.Compute(op, src>>4, src&0xf)
	case OP_MEMSTORE:
		addr, data := word.MemStoreDecode()
		m.Memory[addr] = data
	case OP_MEMLOAD:
		addr, reg := word.MemLoadDecode()
		m.Register[reg] = m.Memory[addr]
	case OP_JUMP:
		next = word.JumpDecode() & counterMask
	case OP_JUMPIF:
		addr, a, b := word.JumpIfDecode()
		if m.Register[a] == m.Register[b] {
			next = addr & counterMask
		}
	case OP_OUT:
		m.Output = m.Register[word.OutDecode()]
	default:
		// Unknown opcodes are noop; the counter still advances.
	}

	m.Counter = next
}
