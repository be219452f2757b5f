// Package machine implements the μProc core and its assembler.
//
// The machine is a single clock domain fed one 16-bit word per cycle. Bit 0
// of the word selects between two modes: programming mode latches a byte
// into the 8-entry program store, execution mode decodes the payload as one
// instruction against four 8-bit registers, a 16-entry data memory, and an
// 8-bit output latch. Instructions run straight off the input bus, matching
// the reference wiring; the program store is scratch written by programming
// mode and readable by the host.
//
// The assembler provides a small assembly language for the instruction set,
// supporting labels, equates, and compile-time expression evaluation.
package machine
