package asm

import (
	"strings"
	"unicode"

	"github.com/ezrec/ez80asm/opcode"
	"github.com/ezrec/ez80asm/source"
)

// Directive is a data directive.
type Directive int

//go:generate go tool stringer -linecomment -type=Directive
const (
	DIRECTIVE_NONE = Directive(iota) // none
	DIRECTIVE_DB                     // .db
	DIRECTIVE_DW                     // .dw
)

// Statement is a parsed source line.
type Statement struct {
	Line        source.Line         // Source line, unmodified.
	Labeled     bool                // Line starts with a "name:" token.
	Label       string              // Label defined by the line.
	Directive   Directive           // Data directive, if any.
	Instruction *opcode.Instruction // Instruction, if any.
	Operands    []string            // Directive operands, or the instruction immediate.
}

// isQuote reports whether c opens a string or character literal.
func isQuote(c byte) bool {
	return c == '"' || c == '\''
}

// stripComment removes a ';' comment that is not inside quotes. A quote only
// opens at the start of a word or operand, so "af'" is not a string.
func stripComment(text string) string {
	var quote byte
	start := true
	for n := 0; n < len(text); n++ {
		c := text[n]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == ';':
			return text[:n]
		case start && isQuote(c):
			quote = c
		}
		start = c == ',' || unicode.IsSpace(rune(c))
	}
	return text
}

// cutWord splits off the first whitespace separated word.
func cutWord(text string) (word, rest string) {
	word = text
	if n := strings.IndexFunc(text, unicode.IsSpace); n >= 0 {
		word, rest = text[:n], strings.TrimSpace(text[n:])
	}
	return
}

// Parse parses a source line. A line's label is returned even if the rest
// of the line fails to parse, in which case the statement has zero size.
func Parse(line source.Line) (stmt Statement, err error) {
	stmt.Line = line

	defer func() {
		if err != nil {
			stmt.Directive = DIRECTIVE_NONE
			stmt.Instruction = nil
			stmt.Operands = nil
		}
	}()

	text := strings.TrimSpace(stripComment(line.Text))
	if len(text) == 0 {
		return
	}

	word, rest := cutWord(text)
	if strings.HasSuffix(word, ":") {
		stmt.Labeled = true
		stmt.Label = word[:len(word)-1]
		text = rest
		if len(text) == 0 {
			return
		}
		word, rest = cutWord(text)
	}

	switch strings.ToLower(word) {
	case "db", ".db":
		stmt.Directive = DIRECTIVE_DB
		stmt.Operands = opcode.SplitOperands(rest)
		err = stmt.checkBytes()
	case "dw", ".dw":
		stmt.Directive = DIRECTIVE_DW
		stmt.Operands = opcode.SplitOperands(rest)
		err = stmt.checkWords()
	default:
		var value string
		stmt.Instruction, value, err = opcode.MatchFit(text, fitsLiteral)
		if err != nil {
			return
		}
		if len(value) == 0 {
			return
		}
		if !isLabelRef(value) {
			_, err = ParseNumber(value)
			if err != nil {
				return
			}
		}
		stmt.Operands = []string{value}
	}

	return
}

// fitsLiteral rejects numeric literals too wide for the instruction, so a
// wider form later in the table can be chosen. Labels always fit here, and
// are range checked when encoded.
func fitsLiteral(inst *opcode.Instruction, value string) bool {
	if isLabelRef(value) {
		return true
	}
	v, err := ParseNumber(value)
	if err != nil {
		return true
	}
	return inst.Kind.Fits(v)
}

func (stmt *Statement) checkBytes() (err error) {
	if len(stmt.Operands) == 0 {
		err = ErrOperandMissing
		return
	}

	for _, op := range stmt.Operands {
		switch {
		case len(op) == 0:
			err = ErrOperandMissing
		case isQuote(op[0]):
			end := strings.IndexByte(op[1:], op[0])
			if end < 0 {
				err = ErrStringUnterminated
			} else if end+2 != len(op) {
				err = ErrOperandInvalid
			}
		default:
			_, err = ParseNumber(op)
		}
		if err != nil {
			return
		}
	}

	return
}

func (stmt *Statement) checkWords() (err error) {
	if len(stmt.Operands) == 0 {
		err = ErrOperandMissing
		return
	}

	for _, op := range stmt.Operands {
		switch {
		case len(op) == 0:
			err = ErrOperandMissing
		case isLabelRef(op):
			if !ValidLabel(op) {
				err = ErrLabelInvalid
			}
		default:
			_, err = ParseNumber(op)
		}
		if err != nil {
			return
		}
	}

	return
}

// Size returns the number of bytes the statement encodes to. It depends
// only on the text of the line.
func (stmt *Statement) Size() (size int) {
	switch stmt.Directive {
	case DIRECTIVE_DB:
		for _, op := range stmt.Operands {
			if isQuote(op[0]) {
				size += len(op) - 2
			} else {
				size++
			}
		}
	case DIRECTIVE_DW:
		size = 2 * len(stmt.Operands)
	default:
		if stmt.Instruction != nil {
			size = stmt.Instruction.Len()
		}
	}

	return
}

// resolve returns the value of a number or label operand, which must fit
// kind. Labels that are not yet defined are zero, unless final is set.
// Data directives pass KIND_NONE, and are truncated instead.
func resolve(symbols *Symbols, word string, kind opcode.Kind, final bool) (value uint32, err error) {
	if !isLabelRef(word) {
		value, err = ParseNumber(word)
	} else {
		var ok bool
		value, ok = symbols.Lookup(word)
		if !ok && final {
			err = ErrLabelMissing(word)
		}
	}

	if err == nil && !kind.Fits(value) {
		err = ErrOperandRange
	}

	return
}

// Encode returns the bytes of the statement. When final is set, references
// to undefined labels are an error and no bytes are returned.
func (stmt *Statement) Encode(symbols *Symbols, final bool) (code []byte, err error) {
	switch stmt.Directive {
	case DIRECTIVE_DB:
		code = make([]byte, 0, stmt.Size())
		for _, op := range stmt.Operands {
			if isQuote(op[0]) {
				code = append(code, op[1:len(op)-1]...)
				continue
			}
			var value uint32
			value, err = ParseNumber(op)
			if err != nil {
				code = nil
				return
			}
			code = append(code, byte(value))
		}
	case DIRECTIVE_DW:
		code = make([]byte, 0, stmt.Size())
		for _, op := range stmt.Operands {
			var value uint32
			value, err = resolve(symbols, op, opcode.KIND_NONE, final)
			if err != nil {
				code = nil
				return
			}
			code = append(code, byte(value), byte(value>>8))
		}
	default:
		if stmt.Instruction == nil {
			return
		}
		var value uint32
		if len(stmt.Operands) > 0 {
			value, err = resolve(symbols, stmt.Operands[0], stmt.Instruction.Kind, final)
			if err != nil {
				return
			}
		}
		code = stmt.Instruction.Encode(value)
	}

	return
}
