package slot

import (
	"errors"

	"github.com/ezrec/ez80asm/translate"
)

var f = translate.From

var (
	ErrSlotMissing    = errors.New(f("slot missing"))
	ErrSlotEmpty      = errors.New(f("slot empty"))
	ErrSlotReadOnly   = errors.New(f("slot store read-only"))
	ErrCommandMissing = errors.New(f("emulator command missing"))
)

// ErrSlot indicates the slot an operation failed on.
type ErrSlot struct {
	Name string
	Err  error
}

func (err *ErrSlot) Error() string {
	return f("slot %v: %v", err.Name, err.Err)
}

func (err *ErrSlot) Unwrap() error {
	return err.Err
}
