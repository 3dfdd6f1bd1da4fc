// Package bitutil holds the small bit-twiddling helpers every MIPS component
// leans on: sign extension and signed-overflow detection.
package bitutil

// SignExtend widens the low bitCount bits of x, treating bit (bitCount-1) as
// the sign bit, and returns the sign-extended value in T's full width.
//
// Example: SignExtend[uint32](0x1F, 5) preserves -1 (0b11111) as
// 0xFFFFFFFF; SignExtend[uint32](0x0F, 5) leaves 15 unchanged.
func SignExtend[T uint32 | uint16](x T, bitCount int) T {
	if ((x >> (bitCount - 1)) & 1) == 1 {
		x |= ^T(0) << bitCount
	}
	return x
}

// AddOverflow reports whether a+b overflowed when computed as signed T and
// stored in sum.
func AddOverflow[T int64 | int32 | int16 | int8 | byte](a, b, sum T) bool {
	return ((a > 0) && (b > 0) && (sum < 0)) || ((a < 0) && (b < 0) && (sum > 0))
}

// SubOverflow reports whether a-b overflowed when computed as signed T and
// stored in diff.
func SubOverflow[T int64 | int32 | int16 | int8 | byte](a, b, diff T) bool {
	return ((a < 0) && (b > 0) && (diff > 0)) || ((a > 0) && (b < 0) && (diff < 0))
}

// AddOverflow32 checks overflow of a 32-bit signed addition performed on the
// raw uint32 register values MIPS arithmetic is usually carried in.
func AddOverflow32(a, b, sum uint32) bool {
	return AddOverflow(int32(a), int32(b), int32(sum))
}

// SubOverflow32 checks overflow of a 32-bit signed subtraction performed on
// the raw uint32 register values MIPS arithmetic is usually carried in.
func SubOverflow32(a, b, diff uint32) bool {
	return SubOverflow(int32(a), int32(b), int32(diff))
}
