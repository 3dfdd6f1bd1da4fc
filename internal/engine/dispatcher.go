package engine

import (
	"mipsjit/internal/cpustate"
	"mipsjit/internal/membus"
	"mipsjit/internal/tbcache"
)

// Block is a runnable unit covering exactly the guest instructions one TB
// would: through the delay slot of the first control transfer it
// contains, or up to the instruction cap.
type Block struct {
	InstrCount int
	Run        func(s *cpustate.State, bus *membus.Bus, cache *tbcache.Cache)
}

// Engine obtains the Block covering pc, compiling (and, for the cached
// engines, caching) it on miss.
type Engine interface {
	GetOrCompile(pc uint32, bus *membus.Bus, cache *tbcache.Cache) *Block
}

// Stats reports run-level throughput, in the spirit of the original
// source's MIPS/sec accounting, without its periodic sampling window.
type Stats struct {
	InstrCount int
}

// Run is the dispatcher: the outer loop every engine shares. It fetches
// the block for the current PC, executes it, and repeats until the
// program hits the conventional two-instruction self-loop halt idiom (a
// `jr $ra` whose target is itself followed by a nop).
func Run(e Engine, s *cpustate.State, bus *membus.Bus, cache *tbcache.Cache) Stats {
	var prevPC uint32
	var stats Stats
	for {
		blk := e.GetOrCompile(s.PC, bus, cache)
		if s.PC == prevPC && blk.InstrCount <= 2 {
			return stats
		}
		prevPC = s.PC
		blk.Run(s, bus, cache)
		stats.InstrCount += blk.InstrCount
	}
}
