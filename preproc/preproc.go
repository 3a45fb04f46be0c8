// Package preproc flattens include directives into a single line sequence.
package preproc

import (
	"errors"
	"strings"
	"unicode"

	"github.com/golang/glog"

	"github.com/ezrec/ez80asm/source"
)

const (
	DEFAULT_MAX_DEPTH = 8 // Default include nesting limit.
)

// Loader resolves an include name to its lines.
type Loader interface {
	Load(name string) (lines []source.Line, err error)
}

// LoaderFunc adapts a function to a Loader.
type LoaderFunc func(name string) ([]source.Line, error)

func (fn LoaderFunc) Load(name string) ([]source.Line, error) {
	return fn(name)
}

// Preprocessor expands include lines.
type Preprocessor struct {
	Loader   Loader // Include resolver. Nil fails every include.
	MaxDepth int    // Include nesting limit. Zero is DEFAULT_MAX_DEPTH.
}

// Expand replaces every include line with the lines of the named source,
// recursively. Nested includes are expanded before the lines that follow
// them. Any failure stops expansion.
func (pp *Preprocessor) Expand(name string, lines []source.Line) (out []source.Line, err error) {
	maxDepth := pp.MaxDepth
	if maxDepth == 0 {
		maxDepth = DEFAULT_MAX_DEPTH
	}

	defer func() {
		if err != nil {
			out = nil
		}
	}()

	stack := &Stack{}
	stack.Push(&frame{Name: name, Lines: lines})

	out = make([]source.Line, 0, len(lines))

	for {
		top, ok := stack.Peek()
		if !ok {
			break
		}
		if top.Next >= len(top.Lines) {
			stack.Pop()
			continue
		}

		line := top.Lines[top.Next]
		top.Next++

		target, isInclude, perr := ParseInclude(line.Text)
		if !isInclude {
			out = append(out, line)
			continue
		}

		fail := func(err error) error {
			return &ErrInclude{Line: line, Name: target, Err: err}
		}

		if perr != nil {
			err = fail(perr)
			return
		}

		if stack.Depth() >= maxDepth {
			err = fail(ErrIncludeDepth)
			return
		}

		if stack.Contains(target) {
			err = fail(ErrIncludeCycle)
			return
		}

		var loaded []source.Line
		if pp.Loader == nil {
			err = fail(ErrIncludeMissing)
			return
		}
		loaded, err = pp.Loader.Load(target)
		if err != nil {
			err = fail(errors.Join(ErrIncludeMissing, err))
			return
		}
		if len(loaded) == 0 {
			err = fail(ErrIncludeEmpty)
			return
		}

		if glog.V(1) {
			glog.Infof("%v: include %v (%d lines, depth %d)", line, target, len(loaded), stack.Depth()+1)
		}

		stack.Push(&frame{Name: target, Lines: loaded})
	}

	return
}

// ParseInclude recognizes an include line, and returns the name it
// includes. The name may be bare, or in single or double quotes, and may be
// followed by a ';' comment.
func ParseInclude(text string) (name string, ok bool, err error) {
	text = strings.TrimSpace(text)

	word, rest := text, ""
	if n := strings.IndexFunc(text, unicode.IsSpace); n >= 0 {
		word, rest = text[:n], text[n:]
	}

	switch strings.ToLower(word) {
	case "include", ".include":
		ok = true
	default:
		return
	}

	rest = strings.TrimSpace(rest)
	if len(rest) == 0 || rest[0] == ';' {
		err = ErrIncludeName
		return
	}

	var tail string
	switch quote := rest[0]; quote {
	case '"', '\'':
		end := strings.IndexByte(rest[1:], quote)
		if end < 0 {
			err = ErrIncludeQuote
			return
		}
		name = rest[1 : 1+end]
		tail = rest[2+end:]
	default:
		end := strings.IndexFunc(rest, func(c rune) bool {
			return c == ';' || unicode.IsSpace(c)
		})
		if end < 0 {
			end = len(rest)
		}
		name = rest[:end]
		tail = rest[end:]
	}

	tail = strings.TrimSpace(tail)
	if len(name) == 0 || (len(tail) > 0 && tail[0] != ';') {
		name = ""
		err = ErrIncludeName
		return
	}

	return
}
