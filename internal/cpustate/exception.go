package cpustate

// SR bit layout (only the bits this emulator needs).
const (
	srBEV = 1 << 22
)

// Exception carries the information needed to enter a COP0 exception: the
// cause code, the faulting instruction's PC, whether it was executing in a
// branch-delay slot, and (for CopUnusable only) the offending coprocessor
// number.
type Exception struct {
	Cause       uint8
	PC          uint32
	InDelaySlot bool
	Cop         uint8 // meaningful only when Cause == CauseCopUnusable
}

// RaiseException performs COP0 exception entry per the architectural
// contract: EPC/Cause/BD bit, mode-stack push, and vector selection via
// the BEV bit of SR. It returns the new PC; the caller (dispatcher or TB
// epilogue) must store it into State.PC and end the current TB.
func (s *State) RaiseException(e Exception) uint32 {
	epc := e.PC
	cause := s.GetCop0(Cop0Cause) &^ (0x1f << 2) &^ (1 << 31) &^ (0x3 << 28)
	cause |= uint32(e.Cause&0x1f) << 2

	if e.InDelaySlot {
		epc = e.PC - 4
		cause |= 1 << 31
	}
	if e.Cause == CauseCopUnusable {
		cause |= uint32(e.Cop&0x3) << 28
	}

	s.SetCop0(Cop0EPC, epc)
	s.SetCop0(Cop0Cause, cause)

	sr := s.GetCop0(Cop0SR)
	sr = (sr &^ 0x3f) | ((sr << 2) & 0x3f)
	s.SetCop0(Cop0SR, sr)

	if sr&srBEV != 0 {
		return 0xBFC00180
	}
	return 0x80000080
}
