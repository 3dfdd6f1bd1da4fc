package membus

import (
	"bytes"
	"testing"
)

func TestRAMReadWriteLittleEndian(t *testing.T) {
	b := New()
	ram := NewRAM(0x1000)
	b.Map(0, 0x1000, ram)

	if err := b.Write(0x10, Word, 0xDEADBEEF); err != nil {
		t.Fatalf("write: %v", err)
	}
	r, err := b.Read(0x10, Word)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if r.Value != 0xDEADBEEF {
		t.Errorf("got %#x, want %#x", r.Value, 0xDEADBEEF)
	}

	rb, err := b.Read(0x10, Byte)
	if err != nil {
		t.Fatalf("read byte: %v", err)
	}
	if rb.Byte8() != 0xEF {
		t.Errorf("low byte = %#x, want 0xEF (little-endian)", rb.Byte8())
	}
}

func TestBusExclusiveUpperBound(t *testing.T) {
	b := New()
	ram := NewRAM(0x10)
	b.Map(0x100, 0x10, ram)

	// 0x100+0x10 = 0x110 is exactly at the boundary: a read starting there
	// must NOT be served by this entry.
	if _, err := b.Read(0x110, Byte); err == nil {
		t.Fatal("expected NoEntry at the exclusive upper bound, got success")
	}
	if _, err := b.Read(0x10F, Byte); err != nil {
		t.Fatalf("expected last in-range byte to succeed: %v", err)
	}
}

func TestBusNoEntry(t *testing.T) {
	b := New()
	if _, err := b.Read(0x1234, Word); err == nil {
		t.Fatal("expected NoEntry error")
	} else if ae, ok := err.(*AccessError); !ok || ae.Kind != NoEntry {
		t.Fatalf("expected NoEntry, got %v", err)
	}
}

func TestMapOverlapPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on overlapping map")
		}
	}()
	b := New()
	b.Map(0, 0x100, NewRAM(0x100))
	b.Map(0x50, 0x100, NewRAM(0x100))
}

func TestUARTWritesStreamOutReadsFail(t *testing.T) {
	var buf bytes.Buffer
	b := New()
	b.Map(0x1FD003F8, 0x10, NewUART(&buf))

	if err := b.Write(0x1FD003F8, Byte, 'h'); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := b.Write(0x1FD003F8, Byte, 'i'); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != "hi" {
		t.Errorf("got %q, want %q", buf.String(), "hi")
	}
	if _, err := b.Read(0x1FD003F8, Byte); err == nil {
		t.Fatal("expected UART read to fail")
	}
}
