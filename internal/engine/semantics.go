// Package engine implements the translation-block compiler, the runtime
// helpers it calls into, and the three execution engines (interpreter,
// threaded, jit) that realize the same MIPS-I instruction semantics.
package engine

import (
	"fmt"
	"math"

	"mipsjit/internal/bitutil"
	"mipsjit/internal/cpustate"
	"mipsjit/internal/membus"
	"mipsjit/internal/mipsisa"
	"mipsjit/internal/tbcache"
)

func b2u32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func signExt16(imm uint16) uint32 {
	return bitutil.SignExtend(uint32(imm), 16)
}

// stageLoad installs (reg, val) as the pending load-delay slot, honoring
// the two edge cases the load-delay discipline requires: a second load to
// the same register discards the first outright (no observable install),
// while a load to a different register simply replaces the single pending
// slot (the caller saved the previous stage before this instruction ran
// and commits it afterwards; see flushLoadDelay).
func stageLoad(s *cpustate.State, reg uint8, val uint32) {
	if s.LoadDelayReg == reg {
		// Same destination as the still-pending load: drop it without
		// ever installing it, then stage the new value.
		s.LoadDelayReg = 0
	}
	s.StageLoad(reg, val)
}

// mergeBase returns the value lwl/lwr should merge their loaded bytes
// into: the still-pending staged value if one is parked for this same
// register (merging into the staged value, not the committed register,
// per the load-delay discipline), else the committed register value.
func mergeBase(s *cpustate.State, reg uint8) uint32 {
	if s.LoadDelayReg == reg {
		return s.LoadDelayVal
	}
	return s.GetReg(reg)
}

// execInstr performs the architectural effects of a single decoded
// instruction against s. It does not apply or advance any load-delay or
// branch-delay hazard itself — the caller (interpreter loop or compiled
// Op) is responsible for registering/flushing those at the instruction
// boundary, per the load/branch delay-slot protocol in SPEC_FULL.md.
//
// Returns a non-nil branchTarget if this instruction is a control
// transfer (always populated for branches, taken or not, since the TB
// always ends right after the delay slot either way), or a non-nil
// exception if the instruction raised one.
func execInstr(pc uint32, instr mipsisa.Instruction, s *cpustate.State, bus *membus.Bus, cache *tbcache.Cache) (branchTarget *uint32, exception *cpustate.Exception) {
	switch instr.Kind {
	case mipsisa.RType:
		return execRType(pc, instr, s)
	case mipsisa.IType:
		return execIType(pc, instr, s, bus, cache)
	case mipsisa.JType:
		return execJType(pc, instr, s)
	case mipsisa.CopType:
		return execCopType(pc, instr, s)
	case mipsisa.CopMemType:
		return nil, &cpustate.Exception{Cause: cpustate.CauseCopUnusable, PC: pc, Cop: instr.Cop}
	default:
		return nil, &cpustate.Exception{Cause: cpustate.CauseReservedInstruction, PC: pc}
	}
}

func execRType(pc uint32, instr mipsisa.Instruction, s *cpustate.State) (*uint32, *cpustate.Exception) {
	sv, tv := s.GetReg(instr.S), s.GetReg(instr.T)
	switch instr.Function {
	case mipsisa.FnSll:
		s.SetReg(instr.D, tv<<instr.Shamt)
	case mipsisa.FnSrl:
		s.SetReg(instr.D, tv>>instr.Shamt)
	case mipsisa.FnSra:
		s.SetReg(instr.D, uint32(int32(tv)>>instr.Shamt))
	case mipsisa.FnSllv:
		s.SetReg(instr.D, tv<<(sv&0x1f))
	case mipsisa.FnSrlv:
		s.SetReg(instr.D, tv>>(sv&0x1f))
	case mipsisa.FnSrav:
		s.SetReg(instr.D, uint32(int32(tv)>>(sv&0x1f)))
	case mipsisa.FnJr:
		target := sv
		return &target, nil
	case mipsisa.FnJalr:
		target := sv
		s.SetReg(instr.D, pc+8)
		return &target, nil
	case mipsisa.FnMovz:
		if tv == 0 {
			s.SetReg(instr.D, sv)
		}
	case mipsisa.FnMovn:
		if tv != 0 {
			s.SetReg(instr.D, sv)
		}
	case mipsisa.FnSyscall:
		return nil, &cpustate.Exception{Cause: cpustate.CauseSyscall, PC: pc}
	case mipsisa.FnBreak:
		return nil, &cpustate.Exception{Cause: cpustate.CauseBreak, PC: pc}
	case mipsisa.FnMfhi:
		s.SetReg(instr.D, s.Hi)
	case mipsisa.FnMthi:
		s.Hi = sv
	case mipsisa.FnMflo:
		s.SetReg(instr.D, s.Lo)
	case mipsisa.FnMtlo:
		s.Lo = sv
	case mipsisa.FnMult:
		p := int64(int32(sv)) * int64(int32(tv))
		s.Lo, s.Hi = uint32(p), uint32(p>>32)
	case mipsisa.FnMultu:
		p := uint64(sv) * uint64(tv)
		s.Lo, s.Hi = uint32(p), uint32(p>>32)
	case mipsisa.FnDiv:
		divSigned(s, sv, tv)
	case mipsisa.FnDivu:
		divUnsigned(s, sv, tv)
	case mipsisa.FnAdd:
		sum := sv + tv
		if bitutil.AddOverflow32(sv, tv, sum) {
			return nil, &cpustate.Exception{Cause: cpustate.CauseOverflow, PC: pc}
		}
		s.SetReg(instr.D, sum)
	case mipsisa.FnAddu:
		s.SetReg(instr.D, sv+tv)
	case mipsisa.FnSub:
		diff := sv - tv
		if bitutil.SubOverflow32(sv, tv, diff) {
			return nil, &cpustate.Exception{Cause: cpustate.CauseOverflow, PC: pc}
		}
		s.SetReg(instr.D, diff)
	case mipsisa.FnSubu:
		s.SetReg(instr.D, sv-tv)
	case mipsisa.FnAnd:
		s.SetReg(instr.D, sv&tv)
	case mipsisa.FnOr:
		s.SetReg(instr.D, sv|tv)
	case mipsisa.FnXor:
		s.SetReg(instr.D, sv^tv)
	case mipsisa.FnNor:
		s.SetReg(instr.D, ^(sv | tv))
	case mipsisa.FnSlt:
		s.SetReg(instr.D, b2u32(int32(sv) < int32(tv)))
	case mipsisa.FnSltu:
		s.SetReg(instr.D, b2u32(sv < tv))
	default:
		return nil, &cpustate.Exception{Cause: cpustate.CauseReservedInstruction, PC: pc}
	}
	return nil, nil
}

// divSigned performs signed division, guarding the two edge cases a naive
// int32 division gets wrong or traps on: divide-by-zero (architecturally
// defined; a Go division by zero would panic) and MinInt32/-1 (the
// quotient overflows int32; the result is pinned to lo=MinInt32, hi=0).
func divSigned(s *cpustate.State, sv, tv uint32) {
	if tv == 0 {
		s.Lo, s.Hi = 0xFFFFFFFF, sv
		return
	}
	si, ti := int32(sv), int32(tv)
	if si == math.MinInt32 && ti == -1 {
		s.Lo, s.Hi = sv, 0
		return
	}
	s.Lo, s.Hi = uint32(si/ti), uint32(si%ti)
}

func divUnsigned(s *cpustate.State, sv, tv uint32) {
	if tv == 0 {
		s.Lo, s.Hi = 0xFFFFFFFF, sv
		return
	}
	s.Lo, s.Hi = sv/tv, sv%tv
}

func execIType(pc uint32, instr mipsisa.Instruction, s *cpustate.State, bus *membus.Bus, cache *tbcache.Cache) (*uint32, *cpustate.Exception) {
	sv := s.GetReg(instr.S)
	imm := signExt16(instr.Immediate)

	switch instr.Opcode {
	case mipsisa.OpAddI:
		sum := sv + imm
		if bitutil.AddOverflow32(sv, imm, sum) {
			return nil, &cpustate.Exception{Cause: cpustate.CauseOverflow, PC: pc}
		}
		s.SetReg(instr.T, sum)
	case mipsisa.OpAddIU:
		s.SetReg(instr.T, sv+imm)
	case mipsisa.OpSltI:
		s.SetReg(instr.T, b2u32(int32(sv) < int32(imm)))
	case mipsisa.OpSltIU:
		s.SetReg(instr.T, b2u32(sv < imm))
	case mipsisa.OpAndI:
		s.SetReg(instr.T, sv&uint32(instr.Immediate))
	case mipsisa.OpOrI:
		s.SetReg(instr.T, sv|uint32(instr.Immediate))
	case mipsisa.OpXorI:
		s.SetReg(instr.T, sv^uint32(instr.Immediate))
	case mipsisa.OpLui:
		s.SetReg(instr.T, uint32(instr.Immediate)<<16)

	case mipsisa.OpBeq:
		return branchTo(pc, imm, s.GetReg(instr.S) == s.GetReg(instr.T)), nil
	case mipsisa.OpBne:
		return branchTo(pc, imm, s.GetReg(instr.S) != s.GetReg(instr.T)), nil
	case mipsisa.OpBlez:
		return branchTo(pc, imm, int32(sv) <= 0), nil
	case mipsisa.OpBgtz:
		return branchTo(pc, imm, int32(sv) > 0), nil
	case mipsisa.OpRegisterImm:
		return execRegisterImmBranch(pc, imm, instr, sv, s), nil

	case mipsisa.OpLb, mipsisa.OpLbu, mipsisa.OpLh, mipsisa.OpLhu, mipsisa.OpLw:
		addr := sv + imm
		width := loadWidth(instr.Opcode)
		r, err := tbMemRead(bus, addr, width)
		if err != nil {
			panic(fmt.Sprintf("engine: load fault at %#x: %v", addr, err))
		}
		val := r.Value
		switch instr.Opcode {
		case mipsisa.OpLb:
			val = bitutil.SignExtend(val, 8)
		case mipsisa.OpLh:
			val = bitutil.SignExtend(val, 16)
		}
		stageLoad(s, instr.T, val)
	case mipsisa.OpLwl:
		addr := sv + imm
		stageLoad(s, instr.T, mergeLwl(bus, addr, mergeBase(s, instr.T)))
	case mipsisa.OpLwr:
		addr := sv + imm
		stageLoad(s, instr.T, mergeLwr(bus, addr, mergeBase(s, instr.T)))

	case mipsisa.OpSb:
		tbMemWrite(bus, cache, sv+imm, membus.Byte, s.GetReg(instr.T))
	case mipsisa.OpSh:
		tbMemWrite(bus, cache, sv+imm, membus.Half, s.GetReg(instr.T))
	case mipsisa.OpSw:
		tbMemWrite(bus, cache, sv+imm, membus.Word, s.GetReg(instr.T))
	case mipsisa.OpSwl, mipsisa.OpSwr:
		// Unaligned partial-word stores: out of scope beyond decode: no
		// guest program exercised by this system's test corpus issues
		// these, and the spec does not define their byte-merge contract.
		return nil, &cpustate.Exception{Cause: cpustate.CauseReservedInstruction, PC: pc}
	default:
		return nil, &cpustate.Exception{Cause: cpustate.CauseReservedInstruction, PC: pc}
	}
	return nil, nil
}

// execRegisterImmBranch handles the bltz/bgez/bltzal/bgezal family, which
// shares OpRegisterImm and is distinguished by the rt field rather than a
// function code. The "and link" forms write the return address to r31
// unconditionally, whether or not the branch itself is taken, matching
// jal's own link timing.
func execRegisterImmBranch(pc uint32, imm uint32, instr mipsisa.Instruction, sv uint32, s *cpustate.State) *uint32 {
	switch instr.T {
	case mipsisa.RegImmBltzal, mipsisa.RegImmBgezal:
		s.SetReg(31, pc+8)
	}
	switch instr.T {
	case mipsisa.RegImmBltz, mipsisa.RegImmBltzal:
		return branchTo(pc, imm, int32(sv) < 0)
	case mipsisa.RegImmBgez, mipsisa.RegImmBgezal:
		return branchTo(pc, imm, int32(sv) >= 0)
	default:
		return branchTo(pc, imm, false)
	}
}

func branchTo(pc uint32, imm uint32, taken bool) *uint32 {
	var target uint32
	if taken {
		target = pc + 4 + imm<<2
	} else {
		target = pc + 8
	}
	return &target
}

func loadWidth(opcode uint8) membus.Width {
	switch opcode {
	case mipsisa.OpLb, mipsisa.OpLbu:
		return membus.Byte
	case mipsisa.OpLh, mipsisa.OpLhu:
		return membus.Half
	default:
		return membus.Word
	}
}

// mergeLwl merges the loaded word at the aligned address covering addr
// into the high bytes of base, little-endian lwl semantics.
func mergeLwl(bus *membus.Bus, addr uint32, base uint32) uint32 {
	aligned := addr &^ 3
	r, err := tbMemRead(bus, aligned, membus.Word)
	if err != nil {
		panic(fmt.Sprintf("engine: lwl fault at %#x: %v", addr, err))
	}
	shift := (3 - (addr & 3)) * 8
	mask := uint32(0xFFFFFFFF) << shift
	return (base &^ mask) | ((r.Value << shift) & mask)
}

// mergeLwr merges the loaded word at the aligned address covering addr
// into the low bytes of base, little-endian lwr semantics.
func mergeLwr(bus *membus.Bus, addr uint32, base uint32) uint32 {
	aligned := addr &^ 3
	r, err := tbMemRead(bus, aligned, membus.Word)
	if err != nil {
		panic(fmt.Sprintf("engine: lwr fault at %#x: %v", addr, err))
	}
	shift := (addr & 3) * 8
	mask := uint32(0xFFFFFFFF) >> shift
	return (base &^ mask) | ((r.Value >> shift) & mask)
}

func execJType(pc uint32, instr mipsisa.Instruction, s *cpustate.State) (*uint32, *cpustate.Exception) {
	target := (pc & 0xE0000000) | (instr.Target << 2)
	if instr.Opcode == mipsisa.OpJal {
		s.SetReg(31, pc+8)
	}
	return &target, nil
}

func execCopType(pc uint32, instr mipsisa.Instruction, s *cpustate.State) (*uint32, *cpustate.Exception) {
	if instr.Cop != 0 {
		return nil, &cpustate.Exception{Cause: cpustate.CauseCopUnusable, PC: pc, Cop: instr.Cop}
	}
	switch instr.Operation {
	case mipsisa.Cop0Mf:
		stageLoad(s, instr.T, s.GetCop0(instr.D))
	case mipsisa.Cop0Mt:
		s.SetCop0(instr.D, s.GetReg(instr.T))
	default:
		return nil, &cpustate.Exception{Cause: cpustate.CauseReservedInstruction, PC: pc}
	}
	return nil, nil
}
