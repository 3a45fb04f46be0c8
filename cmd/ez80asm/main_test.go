package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/ez80asm/asm"
	"github.com/ezrec/ez80asm/translate"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	var out, errout bytes.Buffer

	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errout)
	root.SetIn(strings.NewReader(""))

	err = root.ExecuteContext(context.Background())
	stdout = out.String()
	stderr = errout.String()
	return
}

func writeFile(t *testing.T, name string, text string) {
	require.NoError(t, os.WriteFile(name, []byte(text), 0644))
}

func TestParseDefine(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		define string
		name   string
		value  uint32
		err    error
	}){
		{"DEBUG", "DEBUG", 1, nil},
		{"SCREEN=0xD40000", "SCREEN", 0xD40000, nil},
		{" N = 10 ", "N", 10, nil},
		{"NEG=-1", "NEG", 0xffffffff, nil},
		{"=5", "", 0, errDefine},
		{"X=zz", "X", 0, asm.ErrParseNumber("")},
	}

	for _, entry := range table {
		name, value, err := parseDefine(entry.define)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.define)
			continue
		}
		assert.NoError(err, entry.define)
		assert.Equal(entry.name, name, entry.define)
		assert.Equal(entry.value, value, entry.define)
	}
}

func TestBuild(t *testing.T) {
	assert := assert.New(t)

	t.Chdir(t.TempDir())
	writeFile(t, "ASRC.asm", "include \"lib\"\nstart: ld a,VALUE\n  jp start\n")
	writeFile(t, "lib.asm", "; nothing but a comment\n")

	_, stderr, err := execute(t, "build", "-D", "VALUE=5")
	require.NoError(t, err, stderr)
	assert.Contains(stderr, "build complete")

	built, err := os.ReadFile("BUILT")
	require.NoError(t, err)
	assert.Equal([]byte{0x3E, 0x05, 0xC3, 0x00, 0x00}, built)
}

func TestBuild_Config(t *testing.T) {
	assert := assert.New(t)

	t.Chdir(t.TempDir())
	require.NoError(t, os.Mkdir("inc", 0755))
	writeFile(t, "ez80asm.star", `
origin = 0x8000
source = "MAIN"
output = "out/PROG"
include_path = ["inc"]
symbols = {"VALUE": 7}
`)
	writeFile(t, "MAIN.asm", "include \"defs\"\n  ld a,VALUE\n  .dw here\n")
	writeFile(t, "inc/defs.asm", "here:\n")

	stdout, stderr, err := execute(t, "build", "--listing")
	require.NoError(t, err, stderr)
	assert.Contains(stdout, "008000")
	assert.Contains(stdout, "ld a,VALUE")

	built, err := os.ReadFile("out/PROG")
	require.NoError(t, err)
	assert.Equal([]byte{0x3E, 0x07, 0x00, 0x00}, built)
}

func TestBuild_Stdout(t *testing.T) {
	assert := assert.New(t)

	t.Chdir(t.TempDir())
	writeFile(t, "prog.asm", ".db \"AB\",10\n")

	stdout, stderr, err := execute(t, "build", "prog", "--stdout")
	require.NoError(t, err, stderr)
	assert.Equal("AB\n", stdout)

	stdout, stderr, err = execute(t, "build", "prog", "--stdout", "--hex")
	require.NoError(t, err, stderr)
	assert.Contains(stdout, "41 42 0a")

	_, err = os.Stat("BUILT")
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestCheck(t *testing.T) {
	assert := assert.New(t)

	t.Chdir(t.TempDir())
	writeFile(t, "bad.asm", "  nop\n  frob\n  .dw nowhere\n")

	_, stderr, err := execute(t, "check", "bad")
	assert.ErrorIs(err, errDiagnostics)
	assert.Contains(stderr, "bad:2 '  frob'")
	assert.Contains(stderr, "bad:3")
	assert.Contains(stderr, "build complete")

	_, err = os.Stat("BUILT")
	assert.ErrorIs(err, os.ErrNotExist)

	_, _, err = execute(t, "check", "missing")
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	t.Chdir(t.TempDir())
	writeFile(t, "ez80asm.star", `emulator = ["cat"]`)
	writeFile(t, "ASRC.asm", ".db \"OK\"\n")

	stdout, stderr, err := execute(t, "run")
	require.NoError(t, err, stderr)
	assert.Equal("OK", stdout)

	built, err := os.ReadFile("BUILT")
	require.NoError(t, err)
	assert.Equal([]byte("OK"), built)
}

func TestTable(t *testing.T) {
	assert := assert.New(t)

	stdout, _, err := execute(t, "table", "--prefix", "ld a,")
	require.NoError(t, err)
	assert.Contains(stdout, "ld a,b")
	assert.NotContains(stdout, "nop")
}

func TestLang(t *testing.T) {
	assert := assert.New(t)
	t.Cleanup(func() { translate.Use() })

	_, _, err := execute(t, "--lang", "de-DE", "table", "--prefix", "nop")
	require.NoError(t, err)
	assert.Equal("1.024", translate.From("%d", 1024))

	_, _, err = execute(t, "--lang", "en-US", "table", "--prefix", "nop")
	require.NoError(t, err)
	assert.Equal("1,024", translate.From("%d", 1024))
}

func TestRun_Image(t *testing.T) {
	assert := assert.New(t)

	t.Chdir(t.TempDir())
	writeFile(t, "ez80asm.star", `emulator = ["cat"]`)
	writeFile(t, "GAME", "raw")

	stdout, stderr, err := execute(t, "run", "--image", "GAME")
	require.NoError(t, err, stderr)
	assert.Equal("raw", stdout)
	assert.NotContains(stderr, "build complete")

	_, err = os.Stat("BUILT")
	assert.ErrorIs(err, os.ErrNotExist)

	_, _, err = execute(t, "run", "--image", "GAME", "ASRC")
	assert.ErrorIs(err, errImageSource)
}

func TestWhere(t *testing.T) {
	assert := assert.New(t)

	t.Chdir(t.TempDir())
	writeFile(t, "ASRC.asm", "start: ld a,5\n  jp start\n")

	stdout, stderr, err := execute(t, "where", "0xD003")
	require.NoError(t, err, stderr)
	assert.Equal("00D003  ASRC:2  +1    jp start\n", stdout)

	_, _, err = execute(t, "where", "0xD005")
	assert.ErrorIs(err, errAddress)

	_, _, err = execute(t, "where", "nowhere")
	assert.ErrorIs(err, asm.ErrParseNumber(""))
}
