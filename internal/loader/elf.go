// Package loader parses a guest MIPS ELF and copies its sections onto the
// bus, the way the teacher's mips_disassemble command parses ELF sections
// for display rather than execution.
package loader

import (
	"debug/elf"
	"fmt"

	"mipsjit/internal/cpustate"
	"mipsjit/internal/membus"
)

// Load opens path as an ELF file, rejects anything not built for MIPS,
// writes every section that carries data and has a nonzero load address
// to the bus at that address, and sets the entry point into s.PC. No other
// section selection is attempted.
func Load(path string, bus *membus.Bus, s *cpustate.State) error {
	f, err := elf.Open(path)
	if err != nil {
		return fmt.Errorf("loader: cannot open %s: %w", path, err)
	}
	defer f.Close()

	if f.Machine != elf.EM_MIPS {
		return fmt.Errorf("loader: %s is not a MIPS ELF (machine=%s)", path, f.Machine)
	}

	for _, sec := range f.Sections {
		if sec.Type == elf.SHT_NOBITS || sec.Addr == 0 || sec.Size == 0 {
			continue
		}
		data, err := sec.Data()
		if err != nil {
			return fmt.Errorf("loader: reading section %s: %w", sec.Name, err)
		}
		if err := writeSection(bus, uint32(sec.Addr), data); err != nil {
			return fmt.Errorf("loader: loading section %s at %#x: %w", sec.Name, sec.Addr, err)
		}
	}

	s.PC = uint32(f.Entry)
	return nil
}

// writeSection pokes data onto the bus one byte at a time via the regular
// Bus.Write path, so a RAM-backed region that validates size at Map time
// is exercised the same way the running CPU would write to it.
func writeSection(bus *membus.Bus, base uint32, data []byte) error {
	for i, b := range data {
		if err := bus.Write(base+uint32(i), membus.Byte, uint32(b)); err != nil {
			return err
		}
	}
	return nil
}
