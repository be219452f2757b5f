// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/uproc/alu"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":         "0",
	"PROGRAM_SIZE":   fmt.Sprintf("%v", PROGRAM_SIZE),
	"MEMORY_SIZE":    fmt.Sprintf("%v", MEMORY_SIZE),
	"REGISTER_COUNT": fmt.Sprintf("%v", REGISTER_COUNT),
	"DIVIDE_BY_ZERO": fmt.Sprintf("%#v", alu.DIVIDE_BY_ZERO),
}

// Assembler is a single pass assembler for the μProc instruction set.
// One source line assembles to exactly one program word.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of jump labels to program addresses.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// regMap is a map of register names to register indexes.
var regMap = map[string]int{
	"r0": 0,
	"r1": 1,
	"r2": 2,
	"r3": 3,
}

// aluMap maps ALU operation names.
var aluMap = map[string]alu.Op{
	"add":  alu.OP_ADD,
	"sub":  alu.OP_SUB,
	"mul":  alu.OP_MUL,
	"div":  alu.OP_DIV,
	"mod":  alu.OP_MOD,
	"and":  alu.OP_AND,
	"or":   alu.OP_OR,
	"land": alu.OP_LAND,
	"lor":  alu.OP_LOR,
	"xor":  alu.OP_XOR,
	"not":  alu.OP_NOT,
	"lnot": alu.OP_LNOT,
	"shr":  alu.OP_SHR,
	"shl":  alu.OP_SHL,
	"inc":  alu.OP_INC,
	"dec":  alu.OP_DEC,
}

// valueOf returns the byte value of a simple word.
// Negative values wrap as 8-bit unsigned arithmetic.
func (asm *Assembler) valueOf(word string) (value uint8, err error) {
	v64, err := strconv.ParseInt(word, 0, 16)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 > 0xff || v64 < -0x80 {
		err = ErrParseNumber(word)
		return
	}

	value = uint8(v64)

	return
}

// getReg returns the register index for a word.
func (asm *Assembler) getReg(word string) (reg int, err error) {
	reg, ok := regMap[word]
	if !ok {
		err = ErrRegisterInvalid
	}

	return
}

// jumpTarget resolves a jump target word to a program address, or to a
// label to be linked after the full listing is parsed.
func (asm *Assembler) jumpTarget(word string) (addr uint8, label string, err error) {
	value, verr := asm.valueOf(word)
	if verr != nil {
		// Not a number; link as a label.
		label = word
		return
	}

	if value >= PROGRAM_SIZE {
		err = ErrAddressInvalid
		return
	}

	addr = value

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint8, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value8 uint8
		value8, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt(int(value8))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint8(st_int64)
	return
}

// parseLine parses a single line into opcode words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#v", value)
	})
	if err != nil {
		return
	}

	words = slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, PROGRAM_SIZE)
		}
		asm.Label[label] = len(asm.Opcode)
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	return
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Opcode = asm.Opcode[:0]
	asm.Equate = make(map[string]string, len(sysEquate)+len(asm.predefine))
	for equ, val := range sysEquate {
		asm.Equate[equ] = val
	}
	for equ, val := range asm.predefine {
		asm.Equate[equ] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	// Final linking of jump labels.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		if len(op.LinkLabel) == 0 {
			continue
		}
		addr, ok := asm.Label[op.LinkLabel]
		if !ok {
			err = ErrLabelMissing(op.LinkLabel)
			return
		}
		op.Word |= Word((uint16(addr) & 0xf) << 9)
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	if len(asm.Opcode) >= PROGRAM_SIZE {
		err = ErrProgramTooLong
		return
	}

	initial_words := words
	var code Word
	var label string

	switch words[0] {
	case "noop":
		if len(words) > 1 {
			err = ErrOpcodeExtraArgs
			return
		}
		code = MakeWordNoop()
	case "write":
		// write rN VALUE
		if len(words) < 3 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(words) > 3 {
			err = ErrOpcodeExtraArgs
			return
		}
		var reg int
		var data uint8
		reg, err = asm.getReg(words[1])
		if err != nil {
			return
		}
		data, err = asm.valueOf(words[2])
		if err != nil {
			return
		}
		code = MakeWordStore(reg, data)
	case "calc":
		// calc OP rIN rOUT
		if len(words) < 4 {
			err = ErrOpcodeMissing
			return
		}
		if len(words) > 4 {
			err = ErrOpcodeExtraArgs
			return
		}
		op, ok := aluMap[words[1]]
		if !ok {
			err = ErrOpcodeInvalid
			return
		}
		var in, out int
		in, err = asm.getReg(words[2])
		if err != nil {
			return
		}
		out, err = asm.getReg(words[3])
		if err != nil {
			return
		}
		code = MakeWordCalc(op, in, out)
	case "save":
		// save ADDR VALUE
		if len(words) < 3 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(words) > 3 {
			err = ErrOpcodeExtraArgs
			return
		}
		var addr, data uint8
		addr, err = asm.valueOf(words[1])
		if err != nil {
			return
		}
		if addr >= MEMORY_SIZE {
			err = ErrAddressInvalid
			return
		}
		data, err = asm.valueOf(words[2])
		if err != nil {
			return
		}
		code = MakeWordMemStore(int(addr), data)
	case "load":
		// load ADDR rN
		if len(words) < 3 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(words) > 3 {
			err = ErrOpcodeExtraArgs
			return
		}
		var addr uint8
		var reg int
		addr, err = asm.valueOf(words[1])
		if err != nil {
			return
		}
		if addr >= MEMORY_SIZE {
			err = ErrAddressInvalid
			return
		}
		reg, err = asm.getReg(words[2])
		if err != nil {
			return
		}
		code = MakeWordMemLoad(int(addr), reg)
	case "jump":
		// jump TARGET
		if len(words) < 2 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(words) > 2 {
			err = ErrOpcodeExtraArgs
			return
		}
		var addr uint8
		addr, label, err = asm.jumpTarget(words[1])
		if err != nil {
			return
		}
		code = MakeWordJump(addr)
	case "jumpif":
		// jumpif TARGET rA rB
		if len(words) < 4 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(words) > 4 {
			err = ErrOpcodeExtraArgs
			return
		}
		var addr uint8
		var a, b int
		addr, label, err = asm.jumpTarget(words[1])
		if err != nil {
			return
		}
		a, err = asm.getReg(words[2])
		if err != nil {
			return
		}
		b, err = asm.getReg(words[3])
		if err != nil {
			return
		}
		code = MakeWordJumpIf(addr, a, b)
	case "out":
		// out rN
		if len(words) < 2 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(words) > 2 {
			err = ErrOpcodeExtraArgs
			return
		}
		var reg int
		reg, err = asm.getReg(words[1])
		if err != nil {
			return
		}
		code = MakeWordOut(reg)
	default:
		err = ErrInstructionInvalid
		return
	}

	opcode := Opcode{LineNo: lineno, Addr: len(asm.Opcode), Words: initial_words, Word: code, LinkLabel: label}
	asm.Opcode = append(asm.Opcode, opcode)

	return
}
