package asm

import (
	"errors"

	"github.com/ezrec/ez80asm/opcode"
	"github.com/ezrec/ez80asm/source"
	"github.com/ezrec/ez80asm/translate"
)

var f = translate.From

var (
	ErrInstructionUnknown = opcode.ErrInstructionUnknown
	ErrOperandMissing     = opcode.ErrOperandMissing
	ErrOperandRange       = opcode.ErrOperandRange
	ErrOperandInvalid     = errors.New(f("operand invalid"))
	ErrStringUnterminated = errors.New(f("string unterminated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrLabelInvalid       = errors.New(f("label invalid"))
	ErrLabelTableFull     = errors.New(f("label table full"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

func (el ErrLabelMissing) Is(err error) (ok bool) {
	_, ok = err.(ErrLabelMissing)
	return
}

type ErrParseNumber string

func (ep ErrParseNumber) Error() string {
	return f("number '%v' invalid", string(ep))
}

func (ep ErrParseNumber) Is(err error) (ok bool) {
	_, ok = err.(ErrParseNumber)
	return
}

// ErrSyntax indicates the source line of an assembly error.
type ErrSyntax struct {
	Line source.Line
	Err  error
}

func (err *ErrSyntax) Error() string {
	return f("%v '%v' %v", err.Line, err.Line.Text, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
