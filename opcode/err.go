package opcode

import (
	"errors"

	"github.com/ezrec/ez80asm/translate"
)

var f = translate.From

var (
	ErrInstructionUnknown = errors.New(f("instruction unknown"))
	ErrOperandMissing     = errors.New(f("operand missing"))
	ErrOperandRange       = errors.New(f("operand out of range"))
)
