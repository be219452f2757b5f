package emulator

import (
	"errors"

	"github.com/ezrec/uproc/translate"
)

var f = translate.From

var (
	ErrNoProgram = errors.New(f("no program"))
	ErrTickLimit = errors.New(f("tick limit reached"))
)
