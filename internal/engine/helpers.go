package engine

import (
	"fmt"

	"mipsjit/internal/membus"
	"mipsjit/internal/tbcache"
)

// tbMemRead is the runtime helper emitted code calls into for loads: it
// performs the bus read and hands back the width-tagged result. Staging
// the result into the load-delay slot is the caller's job (execIType),
// matching the spec's split between "the helper does the bus access" and
// "the compiler-emitted code already knows how to apply load delay."
func tbMemRead(bus *membus.Bus, addr uint32, width membus.Width) (membus.ReadResult, error) {
	return bus.Read(addr, width)
}

// tbMemWrite is the runtime helper emitted code calls into for stores: it
// performs the bus write and then unconditionally invalidates the cache
// window covering addr, so a subsequent fetch at an overwritten PC always
// compiles fresh code. Bus errors here panic by default, matching the
// propagation policy for MMIO a guest program addresses incorrectly.
func tbMemWrite(bus *membus.Bus, cache *tbcache.Cache, addr uint32, width membus.Width, value uint32) {
	if err := bus.Write(addr, width, value); err != nil {
		panic(fmt.Sprintf("engine: store fault at %#x: %v", addr, err))
	}
	cache.Invalidate(addr)
}
