package machine

import (
	"bufio"
	"io"
	"iter"
	"strconv"
	"strings"
)

// Opcode represents a line of assembled code with its source location and
// generated program word.
type Opcode struct {
	LineNo    int
	Addr      int
	Words     []string
	Word      Word
	LinkLabel string
}

// Program is an assembled listing, at most PROGRAM_SIZE words long.
type Program struct {
	Opcodes []Opcode
}

// Debug is the listing entry for a program address.
type Debug struct {
	*Opcode
}

// Debug returns the listing entry at a program address.
func (prog *Program) Debug(addr uint8) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if int(addr) == op.Addr {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
			}
			break
		}
	}

	return
}

// Binary returns the program's execution words in address order.
func (prog *Program) Binary() (bins []Word) {
	for _, word := range prog.Words() {
		bins = append(bins, word)
	}

	return
}

// Words returns an iterator over (address, word) pairs of the program.
func (prog *Program) Words() iter.Seq2[uint8, Word] {
	return func(yield func(addr uint8, word Word) bool) {
		for _, op := range prog.Opcodes {
			if !yield(uint8(op.Addr), op.Word) {
				return
			}
		}
	}
}

// ReadWords reads raw bus words from a text stream, one hexadecimal word
// per line. Blank lines and ';' comments are skipped.
func ReadWords(input io.Reader) (words []Word, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		lineno += 1

		text := strings.Split(scanner.Text(), ";")[0]
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			continue
		}

		var v64 uint64
		v64, err = strconv.ParseUint(text, 16, 16)
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: text, Err: ErrParseNumber(text)}
			return
		}

		words = append(words, Word(v64))
	}

	err = scanner.Err()

	return
}
