// Package arch defines the CHIP-8 instruction set along with
// some related helper functions.
package arch

import "fmt"

// Known opcodes.
const (
	Invalid = iota
	NOP
	CLS
	RET
	JP
	CALL
	SEB // SE Vx, byte
	SNEB
	SER // SE Vx, Vy
	LDB
	ADDB

	LDR // LD Vx, Vy
	OR
	AND
	XOR
	ADDR
	SUB
	SHR
	SUBN
	SHL
	SNER

	LDI
	JPV0
	RND
	DRW
)

// form describes how the operands of an instruction are laid out.
type form int

const (
	formNone form = iota // no operands
	formAddr             // nnn
	formXNN              // x, nn
	formXY               // x, y
	formXYN              // x, y, n
)

type info struct {
	name  string
	value uint16 // opcode with all operand fields zero
	form  form
}

var table = [...]info{
	Invalid: {"", 0xffff, formNone},
	NOP:     {"NOP", 0x0000, formNone},
	CLS:     {"CLS", 0x00e0, formNone},
	RET:     {"RET", 0x00ee, formNone},
	JP:      {"JP", 0x1000, formAddr},
	CALL:    {"CALL", 0x2000, formAddr},
	SEB:     {"SE", 0x3000, formXNN},
	SNEB:    {"SNE", 0x4000, formXNN},
	SER:     {"SE", 0x5000, formXY},
	LDB:     {"LD", 0x6000, formXNN},
	ADDB:    {"ADD", 0x7000, formXNN},
	LDR:     {"LD", 0x8000, formXY},
	OR:      {"OR", 0x8001, formXY},
	AND:     {"AND", 0x8002, formXY},
	XOR:     {"XOR", 0x8003, formXY},
	ADDR:    {"ADD", 0x8004, formXY},
	SUB:     {"SUB", 0x8005, formXY},
	SHR:     {"SHR", 0x8006, formXY},
	SUBN:    {"SUBN", 0x8007, formXY},
	SHL:     {"SHL", 0x800e, formXY},
	SNER:    {"SNE", 0x9000, formXY},
	LDI:     {"LD", 0xa000, formAddr},
	JPV0:    {"JP", 0xb000, formAddr},
	RND:     {"RND", 0xc000, formXNN},
	DRW:     {"DRW", 0xd000, formXYN},
}

// Nibbles splits the given opcode into its four 4-bit fields,
// most significant first.
func Nibbles(opcode uint16) (a, b, c, d int) {
	return int(opcode >> 12), int(opcode>>8) & 0xf, int(opcode>>4) & 0xf, int(opcode) & 0xf
}

// Decode maps the given opcode to one of the known opcode constants.
// Returns Invalid if the opcode is not part of the instruction set.
func Decode(opcode uint16) int {
	a, _, _, d := Nibbles(opcode)

	switch a {
	case 0x0:
		switch opcode {
		case 0x0000:
			return NOP
		case 0x00e0:
			return CLS
		case 0x00ee:
			return RET
		}
	case 0x1:
		return JP
	case 0x2:
		return CALL
	case 0x3:
		return SEB
	case 0x4:
		return SNEB
	case 0x5:
		if d == 0 {
			return SER
		}
	case 0x6:
		return LDB
	case 0x7:
		return ADDB
	case 0x8:
		switch d {
		case 0x0:
			return LDR
		case 0x1:
			return OR
		case 0x2:
			return AND
		case 0x3:
			return XOR
		case 0x4:
			return ADDR
		case 0x5:
			return SUB
		case 0x6:
			return SHR
		case 0x7:
			return SUBN
		case 0xe:
			return SHL
		}
	case 0x9:
		if d == 0 {
			return SNER
		}
	case 0xa:
		return LDI
	case 0xb:
		return JPV0
	case 0xc:
		return RND
	case 0xd:
		return DRW
	}

	return Invalid
}

// Name returns the mnemonic for the given opcode.
// Returns false if the opcode is not recognized.
func Name(opcode int) (string, bool) {
	if opcode <= Invalid || opcode >= len(table) {
		return "", false
	}
	return table[opcode].name, true
}

// Argc returns the number of operands the given instruction requires.
// Returns -1 if the opcode is not recognized.
func Argc(opcode int) int {
	if opcode <= Invalid || opcode >= len(table) {
		return -1
	}

	switch table[opcode].form {
	case formAddr:
		return 1
	case formXNN, formXY:
		return 2
	case formXYN:
		return 3
	}
	return 0
}

// Encode builds the machine code for the given opcode and operands.
// Operands are taken in the order they appear in the mnemonic form,
// missing operands are zero and excess bits are masked off.
// Returns 0xffff for unrecognized opcodes, which decodes as Invalid.
func Encode(opcode int, args ...int) uint16 {
	if opcode <= Invalid || opcode >= len(table) {
		return 0xffff
	}

	var argv [3]int
	copy(argv[:], args)

	in := table[opcode]
	switch in.form {
	case formAddr:
		return in.value | uint16(argv[0]&0xfff)
	case formXNN:
		return in.value | uint16(argv[0]&0xf)<<8 | uint16(argv[1]&0xff)
	case formXY:
		return in.value | uint16(argv[0]&0xf)<<8 | uint16(argv[1]&0xf)<<4
	case formXYN:
		return in.value | uint16(argv[0]&0xf)<<8 | uint16(argv[1]&0xf)<<4 | uint16(argv[2]&0xf)
	}
	return in.value
}

// Format returns the textual form of the given machine code,
// for example "ADD V3, #05". Unrecognized opcodes yield "??? #abcd".
func Format(opcode uint16) string {
	op := Decode(opcode)
	if op == Invalid {
		return fmt.Sprintf("??? #%04x", opcode)
	}

	_, x, y, n := Nibbles(opcode)
	in := table[op]

	switch op {
	case LDI:
		return fmt.Sprintf("%s I, #%03x", in.name, opcode&0xfff)
	case JPV0:
		return fmt.Sprintf("%s V0, #%03x", in.name, opcode&0xfff)
	case SHR, SHL:
		return fmt.Sprintf("%s %s", in.name, RegisterName(x))
	}

	switch in.form {
	case formAddr:
		return fmt.Sprintf("%s #%03x", in.name, opcode&0xfff)
	case formXNN:
		return fmt.Sprintf("%s %s, #%02x", in.name, RegisterName(x), opcode&0xff)
	case formXY:
		return fmt.Sprintf("%s %s, %s", in.name, RegisterName(x), RegisterName(y))
	case formXYN:
		return fmt.Sprintf("%s %s, %s, #%x", in.name, RegisterName(x), RegisterName(y), n)
	}
	return in.name
}
