package engine

import (
	"fmt"

	"mipsjit/internal/cpustate"
	"mipsjit/internal/membus"
	"mipsjit/internal/mipsisa"
	"mipsjit/internal/tbcache"
)

// BlockInstrCap is the fixed instruction-count ceiling a translation
// block may grow to before it is forcibly ended, matching the source's
// own choice of 64.
const BlockInstrCap = 64

// op is one decoded guest instruction bound to the address it was
// fetched from, ready to be executed any number of times against
// whatever state/bus/cache it is eventually called with.
type op struct {
	pc    uint32
	instr mipsisa.Instruction
}

func (o op) exec(s *cpustate.State, bus *membus.Bus, cache *tbcache.Cache) (*uint32, *cpustate.Exception) {
	return execInstr(o.pc, o.instr, s, bus, cache)
}

func isControlTransfer(instr mipsisa.Instruction) bool {
	switch instr.Kind {
	case mipsisa.JType:
		return true
	case mipsisa.RType:
		return instr.Function == mipsisa.FnJr || instr.Function == mipsisa.FnJalr
	case mipsisa.IType:
		switch instr.Opcode {
		case mipsisa.OpBeq, mipsisa.OpBne, mipsisa.OpBlez, mipsisa.OpBgtz, mipsisa.OpRegisterImm:
			return true
		}
	}
	return false
}

// compileBlock walks forward from pc0, fetching and decoding guest words
// straight from the bus, until it has included the delay slot of the
// first control-transfer instruction it sees, or hit BlockInstrCap.
// Fetch failures are fatal compile errors, matching §7: an unreadable
// instruction fetch during translation is not recoverable mid-block.
func compileBlock(pc0 uint32, bus *membus.Bus) []op {
	var ops []op
	addr := pc0
	sawBranch := false

	for len(ops) < BlockInstrCap {
		r, err := bus.Read(addr, membus.Word)
		if err != nil {
			panic(fmt.Sprintf("engine: compile error: cannot fetch instruction at %#x: %v", addr, err))
		}
		instr := mipsisa.Decode(r.Value)
		ops = append(ops, op{pc: addr, instr: instr})
		addr += 4

		if sawBranch {
			break
		}
		if isControlTransfer(instr) {
			sawBranch = true
		}
	}
	return ops
}

// runStep executes one op's semantics, flushes whatever branch-delay and
// load-delay hazards were registered by the *previous* op (pendingBranch
// is nil unless the previous op was a control transfer), and returns
// whatever hazard this op itself registers for the next step.
//
// finished is true once the block's execution is complete for this call:
// either because an exception was just entered (which ends the TB
// immediately regardless of delay-slot status, per §4.8) or because a
// pending branch was just resolved (the op just run was its delay slot).
func runStep(o op, pendingBranch *uint32, s *cpustate.State, bus *membus.Bus, cache *tbcache.Cache) (newPending *uint32, finished bool) {
	carryReg, carryVal := s.LoadDelayReg, s.LoadDelayVal

	branchTarget, exc := o.exec(s, bus, cache)
	if exc != nil {
		exc.InDelaySlot = pendingBranch != nil
		s.PC = s.RaiseException(*exc)
		return nil, true
	}

	flushLoadDelay(s, carryReg, carryVal)

	if pendingBranch != nil {
		s.PC = *pendingBranch
		return nil, true
	}
	return branchTarget, false
}

// flushLoadDelay commits whatever load was staged *before* o's own exec
// ran, now that its one instruction of delay has elapsed. o's own exec
// may have left that stage untouched (the common case: o wasn't a load),
// replaced it with a stage of its own under a different register (two
// loads back to back — the old one still commits on schedule), or
// restaged the very same register (stageLoad's same-register discard
// path): only the last case must not commit, since the old value there
// was never meant to become observable.
func flushLoadDelay(s *cpustate.State, carryReg uint8, carryVal uint32) {
	if carryReg == 0 {
		return
	}
	if s.LoadDelayReg == carryReg && s.LoadDelayVal == carryVal {
		s.ApplyLoadDelay()
		return
	}
	if s.LoadDelayReg == carryReg {
		return
	}
	s.SetReg(carryReg, carryVal)
}
