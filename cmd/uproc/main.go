// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/uproc/emulator"
	"github.com/ezrec/uproc/machine"
)

func main() {
	var compile string
	var raw string
	var ticks int
	var dump bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".up file to assemble and run")
	flag.StringVar(&raw, "x", "", "raw hex word file to feed on the bus")
	flag.IntVar(&ticks, "t", emulator.TICK_LIMIT, "cycle limit")
	flag.BoolVar(&dump, "d", false, "Dump machine state after the run")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	switch {
	case len(compile) != 0:
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &machine.Assembler{Verbose: verbose}
		for equ, val := range emu.Defines() {
			asm.Predefine(equ, val)
		}

		prog, err := asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		emu.Program = prog

		emu.Reset()
		output, err := emu.Run(ticks)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		fmt.Printf("0x%02x\n", output)
	case len(raw) != 0:
		inf, err := os.Open(raw)
		if err != nil {
			log.Fatalf("%v: %v", raw, err)
		}
		defer inf.Close()

		words, err := machine.ReadWords(inf)
		if err != nil {
			log.Fatalf("%v: %v", raw, err)
		}

		// Raw words are the live bus feed, one per cycle in file order.
		emu.Reset()
		var output uint8
		for _, word := range words {
			output = emu.Machine.Step(word, false)
		}
		fmt.Printf("0x%02x\n", output)
	default:
		log.Fatalf("%v: one of -c or -x is required", os.Args[0])
	}

	if dump {
		fmt.Print(emu.Machine.String())
	}
}
