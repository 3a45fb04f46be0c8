// Package opcode holds the Z80/eZ80 instruction table.
//
// Each entry maps a lowercase mnemonic, including any fixed register
// operands ("ld a,b", "jr nz,e"), to an opcode template. Immediate values are
// encoded little-endian into the tail of the template.
package opcode

// Kind is the immediate operand kind of an instruction.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_NONE  = Kind(0) // none
	KIND_IMM8  = Kind(1) // imm8
	KIND_IMM16 = Kind(2) // imm16
	KIND_IMM24 = Kind(3) // imm24
)

// MAX_LENGTH is the longest opcode template, in bytes.
const MAX_LENGTH = 5

// Width returns the number of template bytes an immediate of this kind occupies.
func (kind Kind) Width() int {
	switch kind {
	case KIND_IMM8:
		return 1
	case KIND_IMM16:
		return 2
	case KIND_IMM24:
		return 3
	default:
		return 0
	}
}

// Fits reports whether value can be encoded as an immediate of this kind,
// either unsigned or as a negative two's complement value.
func (kind Kind) Fits(value uint32) bool {
	bits := 8 * kind.Width()
	if bits == 0 {
		return true
	}
	return value < 1<<bits || int32(value) >= -(1<<(bits-1))
}

// Instruction is a single instruction table entry.
type Instruction struct {
	Mnemonic string // Lowercase mnemonic text, with fixed operands.
	Code     []byte // Opcode template. Immediates overwrite the tail.
	Kind     Kind   // Immediate operand kind.
}

// Len returns the encoded length of the instruction.
func (in *Instruction) Len() int {
	return len(in.Code)
}

// Encode returns a copy of the template with value written into its tail.
func (in *Instruction) Encode(value uint32) (code []byte) {
	code = make([]byte, len(in.Code))
	copy(code, in.Code)

	width := in.Kind.Width()
	tail := len(code) - width
	for n := range width {
		code[tail+n] = byte(value >> (8 * n))
	}

	return
}
