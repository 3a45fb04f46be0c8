package preproc

import (
	"github.com/ezrec/ez80asm/source"
)

// frame is a source being scanned.
type frame struct {
	Name  string
	Lines []source.Line
	Next  int // Index of the next line to scan.
}

// Stack of sources being scanned. The bottom frame is the root source.
type Stack struct {
	Data []*frame
}

func (s *Stack) Push(value *frame) {
	s.Data = append(s.Data, value)
}

func (s *Stack) Pop() (value *frame, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

// Depth returns the include nesting depth. The root source is not counted.
func (s *Stack) Depth() int {
	if s.Empty() {
		return 0
	}
	return len(s.Data) - 1
}

func (s *Stack) Peek() (value *frame, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

// Contains reports whether name is being scanned.
func (s *Stack) Contains(name string) bool {
	for _, fr := range s.Data {
		if fr.Name == name {
			return true
		}
	}
	return false
}
