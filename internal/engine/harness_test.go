package engine

import (
	"testing"

	"mipsjit/internal/cpustate"
	"mipsjit/internal/membus"
	"mipsjit/internal/mipsisa"
	"mipsjit/internal/tbcache"
)

// harness bundles the bus/state/cache trio every scenario test drives, the
// way the teacher's cop0 integration test builds a fresh memory+CPU pair
// per test rather than sharing global state.
type harness struct {
	bus   *membus.Bus
	ram   *membus.RAM
	state *cpustate.State
	cache *tbcache.Cache
}

func newHarness(t *testing.T, entry uint32) *harness {
	t.Helper()
	ram := membus.NewRAM(0x10000)
	bus := membus.New()
	bus.Map(0, ram.Size(), ram)
	return &harness{
		bus:   bus,
		ram:   ram,
		state: cpustate.New(entry),
		cache: tbcache.New(),
	}
}

// poke writes words as consecutive little-endian instruction words
// starting at addr.
func (h *harness) poke(addr uint32, words ...uint32) {
	for i, w := range words {
		if err := h.bus.Write(addr+uint32(i*4), membus.Word, w); err != nil {
			panic(err)
		}
	}
}

// allEngines exercises every scenario against all three realizations, the
// engine-lowering-strategy invariant from SPEC_FULL.md: identical guest
// programs must produce identical architectural state regardless of which
// engine ran them.
var allEngines = map[string]Engine{
	"interpreter": Interpreter{},
	"threaded":    Threaded{},
	"jit":         JIT{},
}

func forEachEngine(t *testing.T, run func(t *testing.T, e Engine)) {
	for name, e := range allEngines {
		t.Run(name, func(t *testing.T) {
			run(t, e)
		})
	}
}

func encodeHalt(r uint8) []uint32 {
	// jr $r; nop (delay slot) — a self-targeting two-instruction block the
	// dispatcher's halt check recognizes once pc stops advancing.
	return []uint32{
		mipsisa.Encode("jr", uint32(r)),
		mipsisa.Encode("sll", 0, 0, 0), // nop
	}
}
