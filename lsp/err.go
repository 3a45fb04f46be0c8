package lsp

import (
	"errors"

	"github.com/ezrec/ez80asm/translate"
)

var f = translate.From

var (
	ErrParams   = errors.New(f("invalid parameters"))
	ErrDocument = errors.New(f("document not open"))
	ErrURI      = errors.New(f("document uri not a file"))
)
