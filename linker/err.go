package linker

import (
	"errors"

	"github.com/ezrec/ez80asm/translate"
)

var f = translate.From

var (
	ErrImageFull = errors.New(f("code image full"))
)

// ErrLaunch indicates the load address of an image that failed to launch.
type ErrLaunch struct {
	Origin uint32
	Err    error
}

func (err *ErrLaunch) Error() string {
	return f("launch at 0x%06x %v", err.Origin, err.Err)
}

func (err *ErrLaunch) Unwrap() error {
	return err.Err
}
