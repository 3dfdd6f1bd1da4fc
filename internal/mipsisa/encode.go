package mipsisa

// EncodeR packs an R-type word: opcode 0, rs/rt/rd/shamt/function fields.
func EncodeR(s, t, d, shamt, function uint8) uint32 {
	return uint32(s&0x1f)<<21 | uint32(t&0x1f)<<16 | uint32(d&0x1f)<<11 |
		uint32(shamt&0x1f)<<6 | uint32(function&0x3f)
}

// EncodeI packs an I-type word: opcode, rs, rt, 16-bit immediate.
func EncodeI(opcode, s, t uint8, immediate uint16) uint32 {
	return uint32(opcode&0x3f)<<26 | uint32(s&0x1f)<<21 | uint32(t&0x1f)<<16 | uint32(immediate)
}

// EncodeJ packs a J-type word: opcode and a 26-bit word-aligned target.
func EncodeJ(opcode uint8, target uint32) uint32 {
	return uint32(opcode&0x3f)<<26 | (target & 0x3ffffff)
}

// EncodeCop packs a coprocessor register-move word (mfc0/mtc0 shape).
func EncodeCop(cop uint8, operation, t, d uint8) uint32 {
	opcode := uint8(0x10) | (cop & 0x3)
	return uint32(opcode)<<26 | uint32(operation&0x1f)<<21 | uint32(t&0x1f)<<16 | uint32(d&0x1f)<<11
}

// EncodeCopMem packs a coprocessor load/store word (lwc*/swc* shape).
func EncodeCopMem(opcode, s, t uint8, immediate uint16) uint32 {
	return uint32(opcode&0x3f)<<26 | uint32(s&0x1f)<<21 | uint32(t&0x1f)<<16 | uint32(immediate)
}

// Mnemonic-driven encoding for test harnesses, mirroring the original
// source's string<->opcode mapping. Each entry knows how many operands it
// takes and how to pack them; operands are passed uniformly as uint32 and
// interpreted per-mnemonic (register number, shift amount, or immediate).
type mnemonicEncoder func(ops []uint32) uint32

var mnemonics = map[string]mnemonicEncoder{
	"sll":   func(o []uint32) uint32 { return EncodeR(0, uint8(o[1]), uint8(o[0]), uint8(o[2]), FnSll) },
	"srl":   func(o []uint32) uint32 { return EncodeR(0, uint8(o[1]), uint8(o[0]), uint8(o[2]), FnSrl) },
	"sra":   func(o []uint32) uint32 { return EncodeR(0, uint8(o[1]), uint8(o[0]), uint8(o[2]), FnSra) },
	"jr":    func(o []uint32) uint32 { return EncodeR(uint8(o[0]), 0, 0, 0, FnJr) },
	"jalr":  func(o []uint32) uint32 { return EncodeR(uint8(o[1]), 0, uint8(o[0]), 0, FnJalr) },
	"add":   func(o []uint32) uint32 { return EncodeR(uint8(o[1]), uint8(o[2]), uint8(o[0]), 0, FnAdd) },
	"addu":  func(o []uint32) uint32 { return EncodeR(uint8(o[1]), uint8(o[2]), uint8(o[0]), 0, FnAddu) },
	"sub":   func(o []uint32) uint32 { return EncodeR(uint8(o[1]), uint8(o[2]), uint8(o[0]), 0, FnSub) },
	"subu":  func(o []uint32) uint32 { return EncodeR(uint8(o[1]), uint8(o[2]), uint8(o[0]), 0, FnSubu) },
	"and":   func(o []uint32) uint32 { return EncodeR(uint8(o[1]), uint8(o[2]), uint8(o[0]), 0, FnAnd) },
	"or":    func(o []uint32) uint32 { return EncodeR(uint8(o[1]), uint8(o[2]), uint8(o[0]), 0, FnOr) },
	"xor":   func(o []uint32) uint32 { return EncodeR(uint8(o[1]), uint8(o[2]), uint8(o[0]), 0, FnXor) },
	"nor":   func(o []uint32) uint32 { return EncodeR(uint8(o[1]), uint8(o[2]), uint8(o[0]), 0, FnNor) },
	"slt":   func(o []uint32) uint32 { return EncodeR(uint8(o[1]), uint8(o[2]), uint8(o[0]), 0, FnSlt) },
	"sltu":  func(o []uint32) uint32 { return EncodeR(uint8(o[1]), uint8(o[2]), uint8(o[0]), 0, FnSltu) },
	"mult":  func(o []uint32) uint32 { return EncodeR(uint8(o[0]), uint8(o[1]), 0, 0, FnMult) },
	"multu": func(o []uint32) uint32 { return EncodeR(uint8(o[0]), uint8(o[1]), 0, 0, FnMultu) },
	"div":   func(o []uint32) uint32 { return EncodeR(uint8(o[0]), uint8(o[1]), 0, 0, FnDiv) },
	"divu":  func(o []uint32) uint32 { return EncodeR(uint8(o[0]), uint8(o[1]), 0, 0, FnDivu) },
	"mfhi":  func(o []uint32) uint32 { return EncodeR(0, 0, uint8(o[0]), 0, FnMfhi) },
	"mflo":  func(o []uint32) uint32 { return EncodeR(0, 0, uint8(o[0]), 0, FnMflo) },
	"syscall": func(o []uint32) uint32 { return EncodeR(0, 0, 0, 0, FnSyscall) },
	"break":   func(o []uint32) uint32 { return EncodeR(0, 0, 0, 0, FnBreak) },

	"addi":  func(o []uint32) uint32 { return EncodeI(OpAddI, uint8(o[1]), uint8(o[0]), uint16(o[2])) },
	"addiu": func(o []uint32) uint32 { return EncodeI(OpAddIU, uint8(o[1]), uint8(o[0]), uint16(o[2])) },
	"slti":  func(o []uint32) uint32 { return EncodeI(OpSltI, uint8(o[1]), uint8(o[0]), uint16(o[2])) },
	"sltiu": func(o []uint32) uint32 { return EncodeI(OpSltIU, uint8(o[1]), uint8(o[0]), uint16(o[2])) },
	"andi":  func(o []uint32) uint32 { return EncodeI(OpAndI, uint8(o[1]), uint8(o[0]), uint16(o[2])) },
	"ori":   func(o []uint32) uint32 { return EncodeI(OpOrI, uint8(o[1]), uint8(o[0]), uint16(o[2])) },
	"xori":  func(o []uint32) uint32 { return EncodeI(OpXorI, uint8(o[1]), uint8(o[0]), uint16(o[2])) },
	"lui":   func(o []uint32) uint32 { return EncodeI(OpLui, 0, uint8(o[0]), uint16(o[1])) },
	"beq":   func(o []uint32) uint32 { return EncodeI(OpBeq, uint8(o[0]), uint8(o[1]), uint16(o[2])) },
	"bne":   func(o []uint32) uint32 { return EncodeI(OpBne, uint8(o[0]), uint8(o[1]), uint16(o[2])) },
	"blez":   func(o []uint32) uint32 { return EncodeI(OpBlez, uint8(o[0]), 0, uint16(o[1])) },
	"bgtz":   func(o []uint32) uint32 { return EncodeI(OpBgtz, uint8(o[0]), 0, uint16(o[1])) },
	"bltz":   func(o []uint32) uint32 { return EncodeI(OpRegisterImm, uint8(o[0]), RegImmBltz, uint16(o[1])) },
	"bgez":   func(o []uint32) uint32 { return EncodeI(OpRegisterImm, uint8(o[0]), RegImmBgez, uint16(o[1])) },
	"bltzal": func(o []uint32) uint32 { return EncodeI(OpRegisterImm, uint8(o[0]), RegImmBltzal, uint16(o[1])) },
	"bgezal": func(o []uint32) uint32 { return EncodeI(OpRegisterImm, uint8(o[0]), RegImmBgezal, uint16(o[1])) },
	"lb":    func(o []uint32) uint32 { return EncodeI(OpLb, uint8(o[2]), uint8(o[0]), uint16(o[1])) },
	"lbu":   func(o []uint32) uint32 { return EncodeI(OpLbu, uint8(o[2]), uint8(o[0]), uint16(o[1])) },
	"lh":    func(o []uint32) uint32 { return EncodeI(OpLh, uint8(o[2]), uint8(o[0]), uint16(o[1])) },
	"lhu":   func(o []uint32) uint32 { return EncodeI(OpLhu, uint8(o[2]), uint8(o[0]), uint16(o[1])) },
	"lw":    func(o []uint32) uint32 { return EncodeI(OpLw, uint8(o[2]), uint8(o[0]), uint16(o[1])) },
	"sb":    func(o []uint32) uint32 { return EncodeI(OpSb, uint8(o[2]), uint8(o[0]), uint16(o[1])) },
	"sh":    func(o []uint32) uint32 { return EncodeI(OpSh, uint8(o[2]), uint8(o[0]), uint16(o[1])) },
	"sw":    func(o []uint32) uint32 { return EncodeI(OpSw, uint8(o[2]), uint8(o[0]), uint16(o[1])) },

	"j":   func(o []uint32) uint32 { return EncodeJ(OpJ, o[0]) },
	"jal": func(o []uint32) uint32 { return EncodeJ(OpJal, o[0]) },

	"mtc0": func(o []uint32) uint32 { return EncodeCop(0, Cop0Mt, uint8(o[0]), uint8(o[1])) },
	"mfc0": func(o []uint32) uint32 { return EncodeCop(0, Cop0Mf, uint8(o[0]), uint8(o[1])) },
}

// Encode packs a named mnemonic and its operands (registers, shift
// amounts, or immediates, in assembly-source order) into a 32-bit word.
// It panics on an unknown mnemonic: it exists for test harnesses that
// control their own input, not for decoding untrusted guest text.
func Encode(mnemonic string, ops ...uint32) uint32 {
	fn, ok := mnemonics[mnemonic]
	if !ok {
		panic("mipsisa: unknown mnemonic " + mnemonic)
	}
	return fn(ops)
}
