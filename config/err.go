package config

import (
	"errors"

	"github.com/ezrec/ez80asm/translate"
)

var f = translate.From

var (
	ErrConfigUnknown = errors.New(f("unknown setting"))
	ErrConfigType    = errors.New(f("wrong type"))
	ErrConfigRange   = errors.New(f("out of range"))
)

// ErrConfig indicates the setting that failed to load.
type ErrConfig struct {
	Name string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("config %v: %v", err.Name, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
