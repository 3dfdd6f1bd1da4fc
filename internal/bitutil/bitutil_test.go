package bitutil

import "testing"

func TestSignExtend(t *testing.T) {
	cases := []struct {
		x, bitCount int
		want        uint32
	}{
		{0x1F, 5, 0xFFFFFFFF},
		{0x0F, 5, 0x0F},
		{0x1, 1, 0xFFFFFFFF},
		{0x0, 1, 0x0},
	}
	for _, c := range cases {
		got := SignExtend(uint32(c.x), c.bitCount)
		if got != c.want {
			t.Errorf("SignExtend(%#x, %d) = %#x, want %#x", c.x, c.bitCount, got, c.want)
		}
	}
}

func TestAddOverflow32(t *testing.T) {
	a := uint32(0x7FFFFFFF)
	b := uint32(1)
	sum := a + b
	if !AddOverflow32(a, b, sum) {
		t.Errorf("expected overflow for %#x + %#x", a, b)
	}

	a, b = 1, 2
	sum = a + b
	if AddOverflow32(a, b, sum) {
		t.Errorf("unexpected overflow for %#x + %#x", a, b)
	}
}

func TestSubOverflow32(t *testing.T) {
	a := uint32(0x80000000)
	b := uint32(1)
	diff := a - b
	if AddOverflow32(a, b, diff) {
		t.Fatal("sanity: not an add test")
	}
	// min_int32 - 1 overflows (wraps to positive)
	if !SubOverflow32(a, b, diff) {
		t.Errorf("expected overflow for %#x - %#x", a, b)
	}
}
