package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("line 3 'nop' unknown", From("line %d '%v' %v", 3, "nop", "unknown"))
	assert.Equal("plain", From("plain"))
}

func TestUse(t *testing.T) {
	assert := assert.New(t)
	t.Cleanup(func() { Use() })

	Use("en-US")
	assert.Equal("1,024 bytes", From("%d bytes", 1024))

	Use("de-DE")
	assert.Equal("1.024 bytes", From("%d bytes", 1024))

	Use("xx-invalid")
	assert.Equal("origin 0xd000", From("origin 0x%x", 0xd000))
	assert.Equal("1,024 bytes", From("%d bytes", 1024))

	Use("C", "de-DE", "en-US")
	assert.Equal("1.024 bytes", From("%d bytes", 1024))
}
