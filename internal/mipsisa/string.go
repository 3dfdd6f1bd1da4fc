package mipsisa

import "fmt"

var regNames = [32]string{
	"$zero", "$at", "$v0", "$v1", "$a0", "$a1", "$a2", "$a3",
	"$t0", "$t1", "$t2", "$t3", "$t4", "$t5", "$t6", "$t7",
	"$s0", "$s1", "$s2", "$s3", "$s4", "$s5", "$s6", "$s7",
	"$t8", "$t9", "$k0", "$k1", "$gp", "$sp", "$fp", "$ra",
}

var rFunctionNames = map[uint8]string{
	FnSll: "sll", FnSrl: "srl", FnSra: "sra",
	FnSllv: "sllv", FnSrlv: "srlv", FnSrav: "srav",
	FnJr: "jr", FnJalr: "jalr", FnMovz: "movz", FnMovn: "movn",
	FnSyscall: "syscall", FnBreak: "break",
	FnMfhi: "mfhi", FnMthi: "mthi", FnMflo: "mflo", FnMtlo: "mtlo",
	FnMult: "mult", FnMultu: "multu", FnDiv: "div", FnDivu: "divu",
	FnAdd: "add", FnAddu: "addu", FnSub: "sub", FnSubu: "subu",
	FnAnd: "and", FnOr: "or", FnXor: "xor", FnNor: "nor",
	FnSlt: "slt", FnSltu: "sltu",
}

var iOpcodeNames = map[uint8]string{
	OpAddI: "addi", OpAddIU: "addiu", OpSltI: "slti", OpSltIU: "sltiu",
	OpAndI: "andi", OpOrI: "ori", OpXorI: "xori", OpLui: "lui",
	OpBeq: "beq", OpBne: "bne", OpBlez: "blez", OpBgtz: "bgtz",
	OpLb: "lb", OpLh: "lh", OpLwl: "lwl", OpLw: "lw",
	OpLbu: "lbu", OpLhu: "lhu", OpLwr: "lwr",
	OpSb: "sb", OpSh: "sh", OpSwl: "swl", OpSw: "sw", OpSwr: "swr",
}

var regImmNames = map[uint8]string{
	RegImmBltz: "bltz", RegImmBgez: "bgez",
	RegImmBltzal: "bltzal", RegImmBgezal: "bgezal",
}

func reg(r uint8) string {
	return regNames[r&0x1f]
}

// String renders a decoded instruction as MIPS assembly text. Mnemonic
// first, operands in the conventional destination-first order, the way a
// disassembler would print it — used for diagnostics and test failure
// output, not for guest-visible behavior.
func (i Instruction) String() string {
	switch i.Kind {
	case RType:
		name, ok := rFunctionNames[i.Function]
		if !ok {
			name = fmt.Sprintf("r-op(%#x)", i.Function)
		}
		switch i.Function {
		case FnSll, FnSrl, FnSra:
			return fmt.Sprintf("%s %s, %s, %d", name, reg(i.D), reg(i.T), i.Shamt)
		case FnJr:
			return fmt.Sprintf("%s %s", name, reg(i.S))
		case FnJalr:
			return fmt.Sprintf("%s %s, %s", name, reg(i.D), reg(i.S))
		case FnMult, FnMultu, FnDiv, FnDivu:
			return fmt.Sprintf("%s %s, %s", name, reg(i.S), reg(i.T))
		case FnMfhi, FnMflo:
			return fmt.Sprintf("%s %s", name, reg(i.D))
		case FnMthi, FnMtlo:
			return fmt.Sprintf("%s %s", name, reg(i.S))
		case FnSyscall, FnBreak:
			return name
		default:
			return fmt.Sprintf("%s %s, %s, %s", name, reg(i.D), reg(i.S), reg(i.T))
		}
	case IType:
		if i.Opcode == OpRegisterImm {
			name, ok := regImmNames[i.T]
			if !ok {
				name = fmt.Sprintf("regimm(%#x)", i.T)
			}
			return fmt.Sprintf("%s %s, %#x", name, reg(i.S), i.Immediate)
		}
		name, ok := iOpcodeNames[i.Opcode]
		if !ok {
			name = fmt.Sprintf("i-op(%#x)", i.Opcode)
		}
		switch i.Opcode {
		case OpLui:
			return fmt.Sprintf("%s %s, %#x", name, reg(i.T), i.Immediate)
		case OpBeq, OpBne:
			return fmt.Sprintf("%s %s, %s, %#x", name, reg(i.S), reg(i.T), i.Immediate)
		case OpBlez, OpBgtz:
			return fmt.Sprintf("%s %s, %#x", name, reg(i.S), i.Immediate)
		case OpLb, OpLh, OpLwl, OpLw, OpLbu, OpLhu, OpLwr,
			OpSb, OpSh, OpSwl, OpSw, OpSwr:
			return fmt.Sprintf("%s %s, %#x(%s)", name, reg(i.T), i.Immediate, reg(i.S))
		default:
			return fmt.Sprintf("%s %s, %s, %#x", name, reg(i.T), reg(i.S), i.Immediate)
		}
	case JType:
		name := "j"
		if i.Opcode == OpJal {
			name = "jal"
		}
		return fmt.Sprintf("%s %#x", name, i.Target<<2)
	case CopType:
		switch i.Operation {
		case Cop0Mf:
			return fmt.Sprintf("mfc%d %s, $%d", i.Cop, reg(i.T), i.D)
		case Cop0Mt:
			return fmt.Sprintf("mtc%d %s, $%d", i.Cop, reg(i.T), i.D)
		default:
			return fmt.Sprintf("cop%d %#x", i.Cop, i.Operation)
		}
	case CopMemType:
		return fmt.Sprintf("cop%dmem%d %s, %#x(%s)", i.Cop, i.Opcode, reg(i.T), i.Immediate, reg(i.S))
	default:
		return fmt.Sprintf("invalid(%#08x)", i.Raw)
	}
}
