package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/ez80asm/source"
)

func parseText(text string) (Statement, error) {
	return Parse(source.Line{Name: "test", LineNo: 1, Text: text})
}

func TestStripComment(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text     string
		stripped string
	}){
		{"nop", "nop"},
		{"nop ; comment", "nop "},
		{"; comment", ""},
		{`db "a;b" ; c`, `db "a;b" `},
		{"ld a,';'", "ld a,';'"},
		{"ex af,af' ; swap", "ex af,af' "},
	}

	for _, entry := range table {
		assert.Equal(entry.stripped, stripComment(entry.text), entry.text)
	}
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text      string
		label     string
		directive Directive
		mnemonic  string
		operands  []string
		size      int
	}){
		{"", "", DIRECTIVE_NONE, "", nil, 0},
		{"   ; just a comment", "", DIRECTIVE_NONE, "", nil, 0},
		{"start:", "start", DIRECTIVE_NONE, "", nil, 0},
		{"start: ; comment", "start", DIRECTIVE_NONE, "", nil, 0},
		{"loop: nop ; spin", "loop", DIRECTIVE_NONE, "nop", nil, 1},
		{"  LD A , 5", "", DIRECTIVE_NONE, "ld a", []string{"5"}, 2},
		{"jp start", "", DIRECTIVE_NONE, "jp", []string{"start"}, 3},
		{"ld hl,(ptr)", "", DIRECTIVE_NONE, "ld hl,(nnnnnn)", []string{"ptr"}, 5},
		{`msg: .DB "Hello", 0`, "msg", DIRECTIVE_DB, "", []string{`"Hello"`, "0"}, 6},
		{"db 'a;b'", "", DIRECTIVE_DB, "", []string{"'a;b'"}, 3},
		{`db ""`, "", DIRECTIVE_DB, "", []string{`""`}, 0},
		{"dw 1, lbl, 0x1234", "", DIRECTIVE_DW, "", []string{"1", "lbl", "0x1234"}, 6},
		{".dw 'A'", "", DIRECTIVE_DW, "", []string{"'A'"}, 2},
		{": nop", "", DIRECTIVE_NONE, "nop", nil, 1},
	}

	for _, entry := range table {
		stmt, err := parseText(entry.text)
		if !assert.NoError(err, entry.text) {
			continue
		}
		assert.Equal(entry.label, stmt.Label, entry.text)
		assert.Equal(strings.Contains(entry.text, ":"), stmt.Labeled, entry.text)
		assert.Equal(entry.directive, stmt.Directive, entry.text)
		if len(entry.mnemonic) == 0 {
			assert.Nil(stmt.Instruction, entry.text)
		} else if assert.NotNil(stmt.Instruction, entry.text) {
			assert.Equal(entry.mnemonic, stmt.Instruction.Mnemonic, entry.text)
		}
		assert.Equal(entry.operands, stmt.Operands, entry.text)
		assert.Equal(entry.size, stmt.Size(), entry.text)
		assert.Equal(entry.text, stmt.Line.Text, entry.text)
	}
}

func TestParse_Error(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text  string
		label string
		err   error
	}){
		{"frob", "", ErrInstructionUnknown},
		{"here: frob a", "here", ErrInstructionUnknown},
		{"jp", "", ErrOperandMissing},
		{"ld a,", "", ErrOperandMissing},
		{"ld a,0xZZ", "", ErrParseNumber("")},
		{"db", "", ErrOperandMissing},
		{"db 1,,2", "", ErrOperandMissing},
		{`db "abc`, "", ErrStringUnterminated},
		{`db 'abc`, "", ErrStringUnterminated},
		{`db "ab"c`, "", ErrOperandInvalid},
		{"db x", "", ErrParseNumber("")},
		{"dw", "", ErrOperandMissing},
		{"dw 1x", "", ErrParseNumber("")},
		{"dw foo-bar", "", ErrLabelInvalid},
		{"ld a,0x1ff", "", ErrOperandRange},
		{"ld a,-129", "", ErrOperandRange},
		{"jp 0x10000", "", ErrOperandRange},
		{"ld hl,0x1000000", "", ErrOperandRange},
		{"call 1_000", "", ErrParseNumber("")},
		{"db 0o7", "", ErrParseNumber("")},
	}

	for _, entry := range table {
		stmt, err := parseText(entry.text)
		assert.ErrorIs(err, entry.err, entry.text)
		assert.Equal(entry.label, stmt.Label, entry.text)
		assert.Equal(0, stmt.Size(), entry.text)
	}
}

func TestStatement_Encode(t *testing.T) {
	assert := assert.New(t)

	sym := &Symbols{}
	require.NoError(t, sym.Define("lbl", 0x1234))

	table := [](struct {
		text string
		code []byte
	}){
		{"nop", []byte{0x00}},
		{"ld a,5", []byte{0x3E, 0x05}},
		{"ld a,-1", []byte{0x3E, 0xFF}},
		{"ld a,'A'", []byte{0x3E, 0x41}},
		{"ld a,0xff", []byte{0x3E, 0xFF}},
		{"ld a,-128", []byte{0x3E, 0x80}},
		{"ld hl,0x1234", []byte{0x21, 0x34, 0x12}},
		{"ld hl,-1", []byte{0x21, 0xFF, 0xFF}},
		{"ld hl,0x123456", []byte{0x21, 0x56, 0x34, 0x12}},
		{"ld hl,(0x123456)", []byte{0xED, 0x6B, 0x56, 0x34, 0x12}},
		{"jp lbl", []byte{0xC3, 0x34, 0x12}},
		{"ld a,(ix-2)", []byte{0xDD, 0x7E, 0xFE}},
		{"call nz,lbl", []byte{0xC4, 0x34, 0x12}},
		{`db "AB",10`, []byte{0x41, 0x42, 0x0A}},
		{"db 0x1ff,-1,'x'", []byte{0xFF, 0xFF, 'x'}},
		{"dw 0x12345", []byte{0x45, 0x23}},
		{"dw lbl,1", []byte{0x34, 0x12, 0x01, 0x00}},
		{"dw -1", []byte{0xFF, 0xFF}},
		{"label:", nil},
	}

	for _, entry := range table {
		stmt, err := parseText(entry.text)
		if !assert.NoError(err, entry.text) {
			continue
		}
		code, err := stmt.Encode(sym, true)
		assert.NoError(err, entry.text)
		assert.Equal(entry.code, code, entry.text)
		assert.Equal(stmt.Size(), len(code), entry.text)
	}
}

func TestStatement_Encode_Missing(t *testing.T) {
	assert := assert.New(t)

	sym := &Symbols{}

	stmt, err := parseText("dw 1,nowhere")
	require.NoError(t, err)

	code, err := stmt.Encode(sym, false)
	assert.NoError(err)
	assert.Equal([]byte{0x01, 0x00, 0x00, 0x00}, code)

	code, err = stmt.Encode(sym, true)
	assert.ErrorIs(err, ErrLabelMissing(""))
	assert.Equal(ErrLabelMissing("nowhere"), err)
	assert.Nil(code)

	stmt, err = parseText("jp nowhere")
	require.NoError(t, err)

	code, err = stmt.Encode(sym, false)
	assert.NoError(err)
	assert.Equal([]byte{0xC3, 0x00, 0x00}, code)

	code, err = stmt.Encode(sym, true)
	assert.ErrorIs(err, ErrLabelMissing(""))
	assert.Nil(code)
	assert.Equal(3, stmt.Size())
}

func TestStatement_Encode_Range(t *testing.T) {
	assert := assert.New(t)

	sym := &Symbols{}
	require.NoError(t, sym.Define("far", 0x12345))
	require.NoError(t, sym.Define("near", 0x80))

	table := [](struct {
		text string
		err  error
	}){
		{"jp far", ErrOperandRange},
		{"ld hl,far", ErrOperandRange},
		{"ld a,far", ErrOperandRange},
		{"jr near", nil},
		{"ld a,near", nil},
		{"dw 1,far", nil},
	}

	for _, entry := range table {
		stmt, err := parseText(entry.text)
		if !assert.NoError(err, entry.text) {
			continue
		}
		code, err := stmt.Encode(sym, true)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.text)
			assert.Nil(code, entry.text)
			continue
		}
		assert.NoError(err, entry.text)
		assert.Len(code, stmt.Size(), entry.text)
	}
}
