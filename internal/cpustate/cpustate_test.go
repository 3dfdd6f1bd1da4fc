package cpustate

import "testing"

func TestGetSetRegZeroHardwired(t *testing.T) {
	s := New(0)
	s.SetReg(0, 0xDEADBEEF)
	if got := s.GetReg(0); got != 0 {
		t.Errorf("r0 = %#x, want 0", got)
	}
	s.SetReg(5, 0x1234)
	if got := s.GetReg(5); got != 0x1234 {
		t.Errorf("r5 = %#x, want 0x1234", got)
	}
}

func TestLoadDelayStageAndApply(t *testing.T) {
	s := New(0)
	s.StageLoad(8, 0xCAFE)
	if got := s.GetReg(8); got != 0 {
		t.Errorf("load visible before ApplyLoadDelay: r8 = %#x", got)
	}
	s.ApplyLoadDelay()
	if got := s.GetReg(8); got != 0xCAFE {
		t.Errorf("r8 = %#x after apply, want 0xcafe", got)
	}
	if s.LoadDelayReg != 0 {
		t.Errorf("LoadDelayReg not cleared after apply: %d", s.LoadDelayReg)
	}
}

func TestLoadDelayStageToR0Discarded(t *testing.T) {
	s := New(0)
	s.StageLoad(0, 0x1111)
	if s.LoadDelayReg != 0 {
		t.Errorf("staging a load to r0 should not register, got LoadDelayReg=%d", s.LoadDelayReg)
	}
}

func TestCop0ReservedRAZWI(t *testing.T) {
	s := New(0)
	s.SetCop0(20, 0x1234)
	if got := s.GetCop0(20); got != 0 {
		t.Errorf("reserved COP0 reg 20 = %#x, want 0 (RAZ/WI)", got)
	}
	s.SetCop0(Cop0SR, 0xABCD)
	if got := s.GetCop0(Cop0SR); got != 0xABCD {
		t.Errorf("Cop0SR = %#x, want 0xabcd", got)
	}
}

func TestRaiseExceptionVectorAndSRStack(t *testing.T) {
	s := New(0)
	s.SetCop0(Cop0SR, 0x3) // low two bits set: previous modes visible after push

	vec := s.RaiseException(Exception{Cause: CauseSyscall, PC: 0x1000, InDelaySlot: false})
	if vec != 0x8000_0080 {
		t.Errorf("vector = %#x, want 0x80000080 (BEV clear)", vec)
	}
	if epc := s.GetCop0(Cop0EPC); epc != 0x1000 {
		t.Errorf("EPC = %#x, want 0x1000", epc)
	}
	cause := s.GetCop0(Cop0Cause)
	if (cause>>2)&0x1f != CauseSyscall {
		t.Errorf("Cause exc code = %d, want %d", (cause>>2)&0x1f, CauseSyscall)
	}
	sr := s.GetCop0(Cop0SR)
	if sr&0x3f != 0xc {
		t.Errorf("SR mode stack = %#x, want 0xc (0b001100)", sr&0x3f)
	}
}

func TestRaiseExceptionInDelaySlotSetsBD(t *testing.T) {
	s := New(0)
	vec := s.RaiseException(Exception{Cause: CauseSyscall, PC: 0x1004, InDelaySlot: true})
	if vec != 0x8000_0080 {
		t.Errorf("vector = %#x, want 0x80000080", vec)
	}
	epc := s.GetCop0(Cop0EPC)
	if epc != 0x1000 {
		t.Errorf("EPC = %#x, want 0x1000 (pc-4 for delay slot)", epc)
	}
	cause := s.GetCop0(Cop0Cause)
	if cause&(1<<31) == 0 {
		t.Errorf("Cause BD bit not set for delay-slot exception")
	}
}

func TestRaiseExceptionBEVVector(t *testing.T) {
	s := New(0)
	s.SetCop0(Cop0SR, 1<<22)
	vec := s.RaiseException(Exception{Cause: CauseBreak, PC: 0x2000})
	if vec != 0xBFC0_0180 {
		t.Errorf("vector = %#x, want 0xbfc00180 (BEV set)", vec)
	}
}
