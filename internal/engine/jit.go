package engine

import (
	"mipsjit/internal/cpustate"
	"mipsjit/internal/membus"
	"mipsjit/internal/tbcache"
)

// nativeFunc is the fused, fully-composed form a JIT block compiles down
// to: a single callable with no loop-carried instruction index, standing
// in for the real native code the original source emits via LLVM.
type nativeFunc func(s *cpustate.State, bus *membus.Bus, cache *tbcache.Cache)

// JIT is the "translating JIT" realization. It runs the same TB compiler
// as Threaded, but instead of caching a slice walked by a loop at call
// time, it folds the ops into one composed closure ahead of time: calling
// the cached entrypoint involves no runtime index bookkeeping, the
// closest portable-Go analog of native code compiled once from the guest
// basic block.
type JIT struct{}

func (JIT) GetOrCompile(pc uint32, bus *membus.Bus, cache *tbcache.Cache) *Block {
	if tb := cache.Lookup(pc); tb != nil {
		entry := tb.NativeEntry.(nativeFunc)
		return &Block{InstrCount: tb.InstrCount, Run: entry}
	}
	ops := compileBlock(pc, bus)
	entry := composeJIT(ops)
	cache.Insert(pc, &tbcache.TranslationBlock{
		GuestPC:     pc,
		InstrCount:  len(ops),
		NativeEntry: nativeFunc(entry),
	})
	return &Block{InstrCount: len(ops), Run: entry}
}

// composeJIT folds ops into a single nativeFunc by building a chain of
// closures from the last instruction backward, each one capturing the
// continuation that runs after it. Evaluating the resulting function
// executes the whole block start to finish with no loop and no index
// variable threaded through at call time — the fold happens once here,
// at compile time.
func composeJIT(ops []op) nativeFunc {
	capExit := ops[len(ops)-1].pc + 4

	// step is the internal shape used while folding: it additionally
	// threads the branch-delay hazard carried over from the previous
	// instruction, which a plain nativeFunc (s, bus, cache) has no room
	// for. Only the outermost, fully-applied step (pendingBranch == nil)
	// is exposed as the block's nativeFunc.
	type step func(s *cpustate.State, bus *membus.Bus, cache *tbcache.Cache, pendingBranch *uint32)

	var tail step = func(s *cpustate.State, bus *membus.Bus, cache *tbcache.Cache, pendingBranch *uint32) {
		if pendingBranch != nil {
			s.PC = *pendingBranch
			return
		}
		s.PC = capExit
	}

	chain := tail
	for i := len(ops) - 1; i >= 0; i-- {
		o := ops[i]
		cont := chain
		chain = func(s *cpustate.State, bus *membus.Bus, cache *tbcache.Cache, pendingBranch *uint32) {
			newPending, finished := runStep(o, pendingBranch, s, bus, cache)
			if finished {
				return
			}
			cont(s, bus, cache, newPending)
		}
	}

	final := chain
	return func(s *cpustate.State, bus *membus.Bus, cache *tbcache.Cache) {
		final(s, bus, cache, nil)
	}
}
