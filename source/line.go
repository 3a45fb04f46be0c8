// Package source holds the line model shared by the preprocessor and the
// assembler, and splits raw source blobs into lines.
package source

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// MaxLineLength is the longest line kept; longer lines are truncated.
const MaxLineLength = 255

// Line is a single trimmed source line.
type Line struct {
	Name   string // Slot or file name the line was read from.
	LineNo int    // 1-based physical line number within Name.
	Text   string // Line text, trailing whitespace removed.
}

// String returns the line location as NAME:LINENO.
func (line Line) String() string {
	if len(line.Name) == 0 {
		return strconv.Itoa(line.LineNo)
	}
	return line.Name + ":" + strconv.Itoa(line.LineNo)
}

// Split reads a source blob and returns its non-empty lines.
//
// Both '\n' and '\r' terminate a line ("\r\n" counts once). Lines longer than
// MaxLineLength bytes are truncated, not rejected.
func Split(input io.Reader, name string) (lines []Line, err error) {
	rd := bufio.NewReader(input)

	var buf []byte
	lineno := 1
	lastCR := false

	flush := func() {
		text := strings.TrimRightFunc(string(buf), unicode.IsSpace)
		if len(text) > 0 {
			lines = append(lines, Line{Name: name, LineNo: lineno, Text: text})
		}
		buf = buf[:0]
	}

	for {
		var ch byte
		ch, err = rd.ReadByte()
		if err == io.EOF {
			err = nil
			break
		}
		if err != nil {
			return
		}

		switch ch {
		case '\n':
			if !lastCR {
				flush()
				lineno++
			}
			lastCR = false
		case '\r':
			flush()
			lineno++
			lastCR = true
		default:
			lastCR = false
			if len(buf) < MaxLineLength {
				buf = append(buf, ch)
			}
		}
	}

	flush()

	return
}

// FromString splits text into lines.
func FromString(text string, name string) []Line {
	lines, _ := Split(strings.NewReader(text), name)
	return lines
}
