package engine

import (
	"mipsjit/internal/cpustate"
	"mipsjit/internal/membus"
	"mipsjit/internal/tbcache"
)

// Interpreter is the pure realization: no cross-call translation caching
// at all. Every dispatcher iteration re-walks the guest instructions from
// scratch and interprets them directly against the live state via the
// same execInstr semantics the other two engines share; nothing it
// decodes is retained once Run returns, and it never looks up or inserts
// into the TB cache (guest stores still invalidate it).
type Interpreter struct{}

// GetOrCompile satisfies Engine. It decodes the block once (purely to
// learn its instruction count up front, matching the dispatcher's
// halt-detection contract) and returns a Block whose Run re-executes
// those decoded instructions directly; nothing is cached across calls.
func (Interpreter) GetOrCompile(pc uint32, bus *membus.Bus, _ *tbcache.Cache) *Block {
	ops := compileBlock(pc, bus)
	return &Block{
		InstrCount: len(ops),
		Run: func(s *cpustate.State, bus *membus.Bus, cache *tbcache.Cache) {
			runOpsLoop(ops, s, bus, cache)
		},
	}
}

// runOpsLoop is the straight-line hazard-bookkeeping loop shared in spirit
// by the interpreter and the threaded engine: walk the ops in order,
// flushing each instruction's pending hazard at the next boundary.
func runOpsLoop(ops []op, s *cpustate.State, bus *membus.Bus, cache *tbcache.Cache) {
	var pendingBranch *uint32
	for _, o := range ops {
		newPending, finished := runStep(o, pendingBranch, s, bus, cache)
		if finished {
			return
		}
		pendingBranch = newPending
	}
	// Hit the instruction cap without resolving a control transfer:
	// epilogue stores the next fetch address into PC.
	s.PC = ops[len(ops)-1].pc + 4
}
