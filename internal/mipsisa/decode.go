// Package mipsisa decodes and encodes 32-bit MIPS-I machine words into a
// tagged instruction representation, and renders them back to assembly
// text for diagnostics and tests.
package mipsisa

// Kind tags which instruction shape a decoded word took.
type Kind int

const (
	RType Kind = iota
	IType
	JType
	CopType
	CopMemType
	Invalid
)

// Instruction is the decoded form of a 32-bit MIPS-I word. Only the fields
// relevant to Kind are meaningful; the rest are zero.
type Instruction struct {
	Kind Kind
	Raw  uint32

	Opcode uint8

	// RType
	S, T, D  uint8
	Shamt    uint8
	Function uint8

	// IType / CopMemType also use S, T
	Immediate uint16

	// JType
	Target uint32

	// CopType / CopMemType
	Cop       uint8
	Operation uint8 // CopType only: word[25:21]
}

// Decode maps a 32-bit guest word to its tagged instruction form. Pure
// function: it has no side effects and does not touch memory.
func Decode(word uint32) Instruction {
	opcode := uint8((word >> 26) & 0x3f)

	switch {
	case opcode == OpRegister:
		fn := uint8(word & 0x3f)
		if !knownRFunctions[fn] {
			return Instruction{Kind: Invalid, Raw: word, Opcode: opcode}
		}
		return Instruction{
			Kind:     RType,
			Raw:      word,
			Opcode:   opcode,
			S:        uint8((word >> 21) & 0x1f),
			T:        uint8((word >> 16) & 0x1f),
			D:        uint8((word >> 11) & 0x1f),
			Shamt:    uint8((word >> 6) & 0x1f),
			Function: fn,
		}

	case opcode == OpJ || opcode == OpJal:
		return Instruction{
			Kind:   JType,
			Raw:    word,
			Opcode: opcode,
			Target: word & 0x3ffffff,
		}

	case opcode&0x3c == 0x10:
		return Instruction{
			Kind:      CopType,
			Raw:       word,
			Opcode:    opcode,
			Cop:       opcode & 0x3,
			Operation: uint8((word >> 21) & 0x1f),
			T:         uint8((word >> 16) & 0x1f),
			D:         uint8((word >> 11) & 0x1f),
		}

	case opcode&0x3c == OpLCoProc || opcode&0x3c == OpSwCoProc:
		return Instruction{
			Kind:      CopMemType,
			Raw:       word,
			Opcode:    opcode,
			Cop:       opcode & 0x3,
			S:         uint8((word >> 21) & 0x1f),
			T:         uint8((word >> 16) & 0x1f),
			Immediate: uint16(word & 0xffff),
		}

	case knownIOpcodes[opcode]:
		return Instruction{
			Kind:      IType,
			Raw:       word,
			Opcode:    opcode,
			S:         uint8((word >> 21) & 0x1f),
			T:         uint8((word >> 16) & 0x1f),
			Immediate: uint16(word & 0xffff),
		}

	default:
		return Instruction{Kind: Invalid, Raw: word, Opcode: opcode}
	}
}
