package engine

import (
	"mipsjit/internal/cpustate"
	"mipsjit/internal/membus"
	"mipsjit/internal/tbcache"
)

// Threaded is the "threaded interpreter" realization: it compiles each
// block once into a slice of per-instruction ops and caches the handle,
// then executes by looping over that slice with an indirect call per
// step — the literal "block of indirect calls to helper routines" the
// spec describes. Repeated visits to the same PC reuse the cached ops
// instead of redecoding.
type Threaded struct{}

func (Threaded) GetOrCompile(pc uint32, bus *membus.Bus, cache *tbcache.Cache) *Block {
	if tb := cache.Lookup(pc); tb != nil {
		ops := tb.NativeEntry.([]op)
		return blockFromOps(ops)
	}
	ops := compileBlock(pc, bus)
	cache.Insert(pc, &tbcache.TranslationBlock{
		GuestPC:     pc,
		InstrCount:  len(ops),
		NativeEntry: ops,
	})
	return blockFromOps(ops)
}

func blockFromOps(ops []op) *Block {
	return &Block{
		InstrCount: len(ops),
		Run: func(s *cpustate.State, bus *membus.Bus, cache *tbcache.Cache) {
			runOpsLoop(ops, s, bus, cache)
		},
	}
}
