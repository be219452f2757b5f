// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"maps"

	"github.com/ezrec/uproc/internal"
	"github.com/ezrec/uproc/machine"
)

const (
	// TICK_LIMIT is the default cycle budget for Run. Programs wrap the
	// 3-bit counter forever, so a run needs an external bound.
	TICK_LIMIT = 64
)

var _emulator_defines = map[string]string{
	"TICK_LIMIT": fmt.Sprintf("%v", TICK_LIMIT),
}

// Emulator drives a machine from an assembled program listing.
//
// It stands in for the external word source: each tick it places the
// listing word addressed by the live counter on the input bus, so jumps
// steer which word executes next. A tick with no listing word at the
// counter ends the run.
type Emulator struct {
	Verbose          bool // If set, enables verbose logging.
	*machine.Machine      // Reference to the machine simulation.

	Program *machine.Program // Reference to the currently running program listing.
}

// NewEmulator creates a new emulator with an empty program.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Machine: machine.New(),
		Program: &machine.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Machine.Defines(),
	)
}

// Reset drives a reset cycle and zeros the host-side tick statistics.
func (emu *Emulator) Reset() {
	emu.Machine.Verbose = emu.Verbose

	emu.Machine.Step(machine.Word(0), true)
	emu.Machine.Ticks = 0
}

// LoadBytes drives one programming mode cycle per byte, latching the bytes
// into the program store starting at the current counter.
func (emu *Emulator) LoadBytes(data []uint8) {
	emu.Machine.Verbose = emu.Verbose

	for _, value := range data {
		emu.Machine.Step(machine.MakeWordLoad(value), false)
	}
}

// LineNo returns the source line number for the word at the counter.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Machine.Counter)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.Opcode.LineNo
}

// Tick performs a single execution cycle of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Program == nil {
		err = ErrNoProgram
		return
	}

	emu.Machine.Verbose = emu.Verbose

	dbg := emu.Program.Debug(emu.Machine.Counter)
	if dbg.Opcode == nil {
		done = true
		return
	}

	emu.Machine.Step(dbg.Opcode.Word, false)

	return
}

// Run ticks the emulator until the program ends or the cycle limit is
// reached, and returns the output latch. A limit of 0 uses TICK_LIMIT.
func (emu *Emulator) Run(limit int) (output uint8, err error) {
	if limit == 0 {
		limit = TICK_LIMIT
	}

	for range limit {
		var done bool
		done, err = emu.Tick()
		if err != nil {
			return
		}
		if done {
			output = emu.Machine.Output
			return
		}
	}

	output = emu.Machine.Output
	err = ErrTickLimit

	return
}
