package opcode

import (
	"iter"
	"strings"
	"sync"
	"unicode"

	"github.com/ezrec/ez80asm/internal"
)

// All returns every instruction, in table order.
func All() iter.Seq[*Instruction] {
	return internal.Concat(
		internal.Pointers(z80Table),
		internal.Pointers(adlTable),
		internal.Pointers(z80BranchTable),
		internal.Pointers(leaTable),
		internal.Pointers(indexTable),
		internal.Pointers(blockTable),
		internal.Pointers(undocumentedTable),
		internal.Pointers(ez80Table),
	)
}

// Names that can never be an immediate value.
var reserved = map[string]bool{
	"a": true, "b": true, "c": true, "d": true, "e": true, "h": true, "l": true,
	"i": true, "r": true, "u": true,
	"af": true, "af'": true, "bc": true, "de": true, "hl": true, "sp": true,
	"ix": true, "iy": true, "ixh": true, "ixl": true, "iyh": true, "iyl": true,
	"nz": true, "z": true, "nc": true, "po": true, "pe": true, "p": true, "m": true,
}

// Placeholder operand text in the table.
var placeholder = map[string]bool{
	"n": true, "nn": true, "nnnnnn": true, "e": true, "0": true,
}

// Wrappers allowed around a placeholder, inside any parentheses.
var offsetBase = []string{"ix+", "iy+", "sp+"}

// shape is an immediate instruction compiled for operand matching.
type shape struct {
	inst     *Instruction
	name     string
	operands []string // Lowercase fixed operands. The slot entry is unused.
	slot     int      // Index of the value operand.
	prefix   string   // Text before the value in the slot operand.
	suffix   string   // Text after the value in the slot operand.
}

type tableIndex struct {
	exact  map[string]*Instruction
	shapes []shape
}

var index = sync.OnceValue(func() (idx *tableIndex) {
	idx = &tableIndex{
		exact: map[string]*Instruction{},
	}

	for inst := range All() {
		name, operands := split(inst.Mnemonic)
		k := key(name, operands)
		if _, found := idx.exact[k]; found {
			continue
		}
		idx.exact[k] = inst

		if inst.Kind == KIND_NONE {
			continue
		}

		sh := shape{
			inst:     inst,
			name:     name,
			operands: operands,
			slot:     -1,
		}
		for n, op := range operands {
			prefix, core, suffix := unwrap(op)
			if placeholder[core] {
				sh.slot = n
				sh.prefix = prefix
				sh.suffix = suffix
				break
			}
		}
		if sh.slot < 0 {
			sh.operands = append(sh.operands, "")
			sh.slot = len(sh.operands) - 1
		}
		idx.shapes = append(idx.shapes, sh)
	}

	return
})

// unwrap splits a table operand into its placeholder and the text around it.
func unwrap(op string) (prefix, core, suffix string) {
	core = op
	if len(core) >= 2 && core[0] == '(' && core[len(core)-1] == ')' {
		prefix = "("
		suffix = ")"
		core = core[1 : len(core)-1]
	}
	for _, base := range offsetBase {
		if strings.HasPrefix(core, base) {
			prefix += base
			core = core[len(base):]
			break
		}
	}
	return
}

// SplitOperands splits operand text on commas. A quote opening an operand
// runs to the matching close quote, so commas inside it are kept. Each
// operand is trimmed of surrounding whitespace.
func SplitOperands(text string) (operands []string) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return
	}

	var quote rune
	start := 0
	leading := true
	for n, c := range text {
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == ',':
			operands = append(operands, strings.TrimSpace(text[start:n]))
			start = n + 1
			leading = true
		case leading && (c == '"' || c == '\''):
			quote = c
			leading = false
		case !unicode.IsSpace(c):
			leading = false
		}
	}
	operands = append(operands, strings.TrimSpace(text[start:]))

	return
}

// compact removes whitespace from an unquoted operand.
func compact(op string) string {
	if len(op) > 0 && (op[0] == '"' || op[0] == '\'') {
		return op
	}
	return strings.Join(strings.Fields(op), "")
}

// split separates statement text into its lowercase mnemonic word and its
// compacted operands.
func split(text string) (name string, operands []string) {
	text = strings.TrimSpace(text)
	word, rest := text, ""
	if n := strings.IndexFunc(text, unicode.IsSpace); n >= 0 {
		word, rest = text[:n], text[n:]
	}
	name = strings.ToLower(word)
	for _, op := range SplitOperands(rest) {
		operands = append(operands, compact(op))
	}
	return
}

func key(name string, operands []string) string {
	if len(operands) == 0 {
		return name
	}
	return name + " " + strings.ToLower(strings.Join(operands, ","))
}

// Lookup finds an instruction by its exact table text, ignoring case and
// whitespace around operands.
func Lookup(mnemonic string) (inst *Instruction, ok bool) {
	inst, ok = index().exact[key(split(mnemonic))]
	return
}

// Match finds the first instruction in table order that accepts the
// statement text, and returns the text of its immediate operand.
//
// ErrOperandMissing is returned when an instruction would match but its
// immediate operand is empty or absent.
func Match(text string) (inst *Instruction, value string, err error) {
	return MatchFit(text, nil)
}

// MatchFit is Match, but skips instructions for which fit rejects the
// immediate operand text. If every otherwise matching instruction was
// skipped, ErrOperandRange is returned.
func MatchFit(text string, fit func(inst *Instruction, value string) bool) (inst *Instruction, value string, err error) {
	name, operands := split(text)
	if len(name) == 0 {
		err = ErrInstructionUnknown
		return
	}

	idx := index()
	if exact, ok := idx.exact[key(name, operands)]; ok && exact.Kind == KIND_NONE {
		inst = exact
		return
	}

	missing := false
	rejected := false
	for n := range idx.shapes {
		sh := &idx.shapes[n]
		v, ok := sh.match(name, operands)
		if !ok {
			continue
		}
		if len(v) == 0 {
			missing = true
			continue
		}
		if fit != nil && !fit(sh.inst, v) {
			rejected = true
			continue
		}
		inst = sh.inst
		value = v
		return
	}

	switch {
	case rejected:
		err = ErrOperandRange
	case missing:
		err = ErrOperandMissing
	default:
		err = ErrInstructionUnknown
	}

	return
}

// match compares the statement against the shape. ok with an empty value
// means everything but the immediate matched.
func (sh *shape) match(name string, operands []string) (value string, ok bool) {
	if name != sh.name {
		return
	}

	if len(operands) == len(sh.operands)-1 && sh.slot == len(sh.operands)-1 {
		operands = append(operands[:len(operands):len(operands)], "")
	}
	if len(operands) != len(sh.operands) {
		return
	}

	for n, op := range operands {
		if n != sh.slot && strings.ToLower(op) != sh.operands[n] {
			return
		}
	}

	op := operands[sh.slot]
	lower := strings.ToLower(op)

	// (ix-5) is (ix+-5)
	if plus := len(sh.prefix) - 1; plus >= 0 && sh.prefix[plus] == '+' {
		minus := sh.prefix[:plus] + "-"
		if strings.HasPrefix(lower, minus) {
			op = op[:plus] + "+-" + op[plus+1:]
			lower = strings.ToLower(op)
		}
	}

	if len(op) < len(sh.prefix)+len(sh.suffix) ||
		!strings.HasPrefix(lower, sh.prefix) ||
		!strings.HasSuffix(lower, sh.suffix) {
		return
	}

	value = op[len(sh.prefix) : len(op)-len(sh.suffix)]
	if len(value) == 0 {
		ok = true
		return
	}

	if !isValue(value) {
		value = ""
		return
	}

	ok = true
	return
}

// isValue reports whether text can be a single number, character or label.
func isValue(text string) bool {
	if len(text) >= 3 && (text[0] == '\'' || text[0] == '"') && text[len(text)-1] == text[0] {
		return true
	}

	if reserved[strings.ToLower(text)] {
		return false
	}

	for n, c := range text {
		switch {
		case c == '-' && n == 0 && len(text) > 1:
		case c == '_' || c == '.':
		case c < unicode.MaxASCII && (unicode.IsLetter(c) || unicode.IsDigit(c)):
		default:
			return false
		}
	}

	return true
}
