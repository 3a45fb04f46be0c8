package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	assert := assert.New(t)

	lines, err := Split(strings.NewReader("nop\r\n\n  ld a,5  \rjp start"), "ASRC")
	assert.NoError(err)
	assert.Equal([]Line{
		{Name: "ASRC", LineNo: 1, Text: "nop"},
		{Name: "ASRC", LineNo: 3, Text: "  ld a,5"},
		{Name: "ASRC", LineNo: 4, Text: "jp start"},
	}, lines)
}

func TestSplit_Empty(t *testing.T) {
	assert := assert.New(t)

	lines, err := Split(strings.NewReader("\n\r\n   \n"), "ASRC")
	assert.NoError(err)
	assert.Len(lines, 0)
}

func TestSplit_Truncate(t *testing.T) {
	assert := assert.New(t)

	long := strings.Repeat("x", MaxLineLength+40)
	lines, err := Split(strings.NewReader(long+"\nnop"), "ASRC")
	assert.NoError(err)
	assert.Len(lines, 2)
	assert.Len(lines[0].Text, MaxLineLength)
	assert.Equal("nop", lines[1].Text)
	assert.Equal(2, lines[1].LineNo)
}

func TestLine_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("ASRC:12", Line{Name: "ASRC", LineNo: 12}.String())
	assert.Equal("7", Line{LineNo: 7}.String())
}

func TestFromString(t *testing.T) {
	assert := assert.New(t)

	lines := FromString("a\nb", "X")
	assert.Equal([]Line{{"X", 1, "a"}, {"X", 2, "b"}}, lines)
}
