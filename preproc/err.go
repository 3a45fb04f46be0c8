package preproc

import (
	"errors"

	"github.com/ezrec/ez80asm/source"
	"github.com/ezrec/ez80asm/translate"
)

var f = translate.From

var (
	ErrIncludeCycle   = errors.New(f("include cycle"))
	ErrIncludeDepth   = errors.New(f("include nesting too deep"))
	ErrIncludeMissing = errors.New(f("include missing"))
	ErrIncludeEmpty   = errors.New(f("include empty"))
	ErrIncludeQuote   = errors.New(f("include name quote unterminated"))
	ErrIncludeName    = errors.New(f("include name missing"))
)

// ErrInclude indicates the include line that stopped preprocessing.
type ErrInclude struct {
	Line source.Line
	Name string
	Err  error
}

func (err *ErrInclude) Error() string {
	if len(err.Name) == 0 {
		return f("%v '%v' %v", err.Line, err.Line.Text, err.Err)
	}
	return f("%v '%v' %v: %v", err.Line, err.Line.Text, err.Err, err.Name)
}

func (err *ErrInclude) Unwrap() error {
	return err.Err
}
