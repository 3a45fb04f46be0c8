package asm

import (
	"strconv"
	"strings"
)

// Character escapes accepted in character literals.
var escapeMap = map[string]byte{
	`\\`: '\\',
	`\'`: '\'',
	`\"`: '"',
	`\0`: 0,
	`\n`: '\n',
	`\r`: '\r',
	`\t`: '\t',
	`\e`: '\033',
}

// ParseNumber converts a numeric literal to its value.
//
// Literals are C style: decimal, 0x hex, 0b binary, or leading 0 octal. A
// leading '-' gives the two's complement. A single quoted character gives
// its byte value. Digit separators and the 0o octal prefix are not C, and
// are rejected.
func ParseNumber(word string) (value uint32, err error) {
	if len(word) >= 3 && (word[0] == '\'' || word[0] == '"') && word[len(word)-1] == word[0] {
		str := word[1 : len(word)-1]
		if len(str) == 1 {
			value = uint32(str[0])
			return
		}
		ch, ok := escapeMap[str]
		if !ok {
			err = ErrParseNumber(word)
			return
		}
		value = uint32(ch)
		return
	}

	digits := word
	negative := len(digits) > 1 && digits[0] == '-'
	if negative {
		digits = digits[1:]
	}

	if strings.ContainsRune(digits, '_') ||
		strings.HasPrefix(digits, "0o") || strings.HasPrefix(digits, "0O") {
		err = ErrParseNumber(word)
		return
	}

	v64, perr := strconv.ParseUint(digits, 0, 32)
	if perr != nil {
		err = ErrParseNumber(word)
		return
	}

	value = uint32(v64)
	if negative {
		value = -value
	}

	return
}

// isLabelRef reports whether the operand names a label rather than a number.
func isLabelRef(word string) bool {
	if len(word) == 0 {
		return false
	}
	c := word[0]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
