package mipsisa

import "testing"

func TestDecodeRType(t *testing.T) {
	word := Encode("addu", 1, 2, 3) // addu r1, r2, r3
	instr := Decode(word)
	if instr.Kind != RType {
		t.Fatalf("expected RType, got %v", instr.Kind)
	}
	if instr.Function != FnAddu || instr.D != 1 || instr.S != 2 || instr.T != 3 {
		t.Errorf("decoded fields wrong: %+v", instr)
	}
}

func TestDecodeIType(t *testing.T) {
	word := Encode("addiu", 1, 0, 40) // addiu r1, r0, 40
	instr := Decode(word)
	if instr.Kind != IType {
		t.Fatalf("expected IType, got %v", instr.Kind)
	}
	if instr.Opcode != OpAddIU || instr.T != 1 || instr.S != 0 || instr.Immediate != 40 {
		t.Errorf("decoded fields wrong: %+v", instr)
	}
}

func TestDecodeJType(t *testing.T) {
	word := Encode("jal", 0x400)
	instr := Decode(word)
	if instr.Kind != JType || instr.Opcode != OpJal || instr.Target != 0x400 {
		t.Errorf("decoded fields wrong: %+v", instr)
	}
}

func TestDecodeCopType(t *testing.T) {
	word := Encode("mtc0", 5, 12) // mtc0 r5, $12
	instr := Decode(word)
	if instr.Kind != CopType || instr.Cop != 0 || instr.Operation != Cop0Mt || instr.T != 5 || instr.D != 12 {
		t.Errorf("decoded fields wrong: %+v", instr)
	}
}

func TestDecodeRegisterImm(t *testing.T) {
	word := Encode("bgezal", 5, 0x10) // bgezal r5, 0x10
	instr := Decode(word)
	if instr.Kind != IType {
		t.Fatalf("expected IType, got %v", instr.Kind)
	}
	if instr.Opcode != OpRegisterImm || instr.S != 5 || instr.T != RegImmBgezal || instr.Immediate != 0x10 {
		t.Errorf("decoded fields wrong: %+v", instr)
	}
}

func TestDecodeInvalidFunction(t *testing.T) {
	word := EncodeR(0, 0, 0, 0, 0x3f) // unassigned function code
	instr := Decode(word)
	if instr.Kind != Invalid {
		t.Errorf("expected Invalid for unassigned function, got %v", instr.Kind)
	}
}

func TestDecodeInvalidOpcode(t *testing.T) {
	word := uint32(0x3f) << 26 // opcode 0x3f is unassigned
	instr := Decode(word)
	if instr.Kind != Invalid {
		t.Errorf("expected Invalid for unassigned opcode, got %v", instr.Kind)
	}
}

func TestRoundTrip(t *testing.T) {
	words := []uint32{
		Encode("addiu", 1, 0, 40),
		Encode("addu", 1, 1, 2),
		Encode("jr", 31),
		Encode("sll", 0, 0, 0),
		Encode("beq", 0, 0, 0x100),
		Encode("bltz", 1, 0x20),
		Encode("bgezal", 5, 0x10),
		Encode("lui", 3, 0xDEAD),
		Encode("ori", 3, 3, 0xBEEF),
		Encode("sw", 2, 0, 1),
		Encode("lw", 3, 0, 1),
		Encode("divu", 1, 2),
		Encode("mfhi", 1),
		Encode("mflo", 2),
		Encode("syscall"),
		Encode("jal", 0x1000),
		Encode("mtc0", 5, 12),
		Encode("mfc0", 5, 12),
	}
	for _, w := range words {
		d := Decode(w)
		if d.Kind == Invalid {
			t.Fatalf("word %#08x decoded as Invalid", w)
		}
		re := reencode(d)
		if re != w {
			t.Errorf("round-trip mismatch: %#08x -> %+v -> %#08x", w, d, re)
		}
	}
}

// reencode reconstructs the original word straight from the decoded
// struct fields (not via the mnemonic table), exercising the same
// bit-layout contract Decode relies on.
func reencode(i Instruction) uint32 {
	switch i.Kind {
	case RType:
		return EncodeR(i.S, i.T, i.D, i.Shamt, i.Function)
	case IType:
		return EncodeI(i.Opcode, i.S, i.T, i.Immediate)
	case JType:
		return EncodeJ(i.Opcode, i.Target)
	case CopType:
		return EncodeCop(i.Cop, i.Operation, i.T, i.D)
	default:
		return i.Raw
	}
}
