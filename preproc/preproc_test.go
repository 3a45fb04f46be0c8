package preproc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/ez80asm/source"
)

// files is an in-memory Loader.
type files map[string]string

func (fs files) Load(name string) (lines []source.Line, err error) {
	text, ok := fs[name]
	if !ok {
		err = fmt.Errorf("%v: not found", name)
		return
	}
	lines = source.FromString(text, name)
	return
}

func texts(lines []source.Line) (out []string) {
	for _, line := range lines {
		out = append(out, line.Text)
	}
	return
}

func TestParseInclude(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text    string
		name    string
		include bool
		err     error
	}){
		{"nop", "", false, nil},
		{"includes", "", false, nil},
		{"include lib", "lib", true, nil},
		{"  .INCLUDE lib ; comment", "lib", true, nil},
		{`include "my lib"`, "my lib", true, nil},
		{"include 'lib;1'", "lib;1", true, nil},
		{"include", "", true, ErrIncludeName},
		{"include ; nothing", "", true, ErrIncludeName},
		{`include ""`, "", true, ErrIncludeName},
		{`include "lib`, "", true, ErrIncludeQuote},
		{"include 'lib", "", true, ErrIncludeQuote},
		{"include lib extra", "", true, ErrIncludeName},
	}

	for _, entry := range table {
		name, ok, err := ParseInclude(entry.text)
		assert.Equal(entry.include, ok, entry.text)
		assert.Equal(entry.name, name, entry.text)
		if entry.err == nil {
			assert.NoError(err, entry.text)
		} else {
			assert.ErrorIs(err, entry.err, entry.text)
		}
	}
}

func TestExpand(t *testing.T) {
	assert := assert.New(t)

	pp := &Preprocessor{
		Loader: files{
			"A": "a1\ninclude B\na2",
			"B": "b1\ninclude 'C'\nb2",
			"C": "c1",
		},
	}

	out, err := pp.Expand("main", source.FromString("m1\ninclude A\nm2\ninclude C", "main"))
	require.NoError(t, err)
	assert.Equal([]string{"m1", "a1", "b1", "c1", "b2", "a2", "m2", "c1"}, texts(out))

	// Lines keep their origin.
	assert.Equal("B", out[2].Name)
	assert.Equal(1, out[2].LineNo)
	assert.Equal("main", out[6].Name)
	assert.Equal(3, out[6].LineNo)
}

func TestExpand_Passthrough(t *testing.T) {
	assert := assert.New(t)

	pp := &Preprocessor{}
	lines := source.FromString("nop\nret", "main")
	out, err := pp.Expand("main", lines)
	assert.NoError(err)
	assert.Equal(lines, out)
}

func TestExpand_Associative(t *testing.T) {
	assert := assert.New(t)

	loader := files{
		"A": "a1\ninclude B\na2",
		"B": "b1\ninclude C\nb2",
		"C": "c1\nc2",
	}
	pp := &Preprocessor{Loader: loader}

	nested, err := pp.Expand("A", source.FromString(loader["A"], "A"))
	require.NoError(t, err)

	flatB := source.FromString("b1\nc1\nc2\nb2", "B")
	flat, err := pp.Expand("A", append(source.FromString("a1", "A"), append(flatB, source.FromString("a2", "A")...)...))
	require.NoError(t, err)

	assert.Equal(texts(flat), texts(nested))
}

func TestExpand_Cycle(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		loader files
		root   string
	}){
		{files{"A": "nop\ninclude A"}, "A"},
		{files{"A": "include B", "B": "include A"}, "A"},
		{files{"A": "include B", "B": "include C", "C": "nop\ninclude B"}, "A"},
	}

	for n, entry := range table {
		pp := &Preprocessor{Loader: entry.loader}
		out, err := pp.Expand(entry.root, source.FromString(entry.loader[entry.root], entry.root))
		assert.ErrorIs(err, ErrIncludeCycle, n)
		assert.Nil(out, n)
	}
}

func TestExpand_Depth(t *testing.T) {
	assert := assert.New(t)

	loader := files{}
	for n := range 10 {
		loader[fmt.Sprintf("f%d", n)] = fmt.Sprintf("include f%d", n+1)
	}
	loader["f10"] = "nop"

	pp := &Preprocessor{Loader: loader, MaxDepth: 3}
	_, err := pp.Expand("f0", source.FromString(loader["f0"], "f0"))
	assert.ErrorIs(err, ErrIncludeDepth)

	var ei *ErrInclude
	if assert.ErrorAs(err, &ei) {
		assert.Equal("f3", ei.Line.Name)
		assert.Equal("f4", ei.Name)
	}

	pp.MaxDepth = 10
	out, err := pp.Expand("f0", source.FromString(loader["f0"], "f0"))
	assert.NoError(err)
	assert.Equal([]string{"nop"}, texts(out))

	pp.MaxDepth = 0
	_, err = pp.Expand("f0", source.FromString(loader["f0"], "f0"))
	assert.ErrorIs(err, ErrIncludeDepth)
}

func TestExpand_Missing(t *testing.T) {
	assert := assert.New(t)

	pp := &Preprocessor{Loader: files{"empty": ""}}

	_, err := pp.Expand("main", source.FromString("nop\ninclude nowhere", "main"))
	assert.ErrorIs(err, ErrIncludeMissing)
	var ei *ErrInclude
	if assert.ErrorAs(err, &ei) {
		assert.Equal(2, ei.Line.LineNo)
		assert.Equal("nowhere", ei.Name)
	}

	_, err = pp.Expand("main", source.FromString("include empty", "main"))
	assert.ErrorIs(err, ErrIncludeEmpty)

	_, err = pp.Expand("main", source.FromString(`include "open`, "main"))
	assert.ErrorIs(err, ErrIncludeQuote)

	failed := errors.New("failed")
	pp.Loader = LoaderFunc(func(string) ([]source.Line, error) { return nil, failed })
	_, err = pp.Expand("main", source.FromString("include x", "main"))
	assert.ErrorIs(err, ErrIncludeMissing)
	assert.ErrorIs(err, failed)

	pp.Loader = nil
	_, err = pp.Expand("main", source.FromString("include x", "main"))
	assert.ErrorIs(err, ErrIncludeMissing)
}

func TestStack(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.True(s.Empty())
	assert.Equal(0, s.Depth())

	s.Push(&frame{Name: "root"})
	assert.Equal(0, s.Depth())
	s.Push(&frame{Name: "inc"})
	assert.Equal(1, s.Depth())
	assert.True(s.Contains("root"))
	assert.False(s.Contains("other"))

	fr, ok := s.Pop()
	assert.True(ok)
	assert.Equal("inc", fr.Name)

	s.Pop()
	assert.True(s.Empty())
	_, ok = s.Peek()
	assert.False(ok)
}
