package membus

// RAM is a contiguous little-endian byte buffer backing a Bus range.
type RAM struct {
	data []byte
}

// NewRAM allocates size bytes of zeroed RAM.
func NewRAM(size uint32) *RAM {
	return &RAM{data: make([]byte, size)}
}

// Validate requires the backing buffer's capacity to be at least size.
func (r *RAM) Validate(size uint32) {
	if uint32(len(r.data)) < size {
		panic("membus: RAM backing buffer smaller than mapped size")
	}
}

// Read performs a little-endian read of width bits at offset. No alignment
// requirement is imposed here; the guest is responsible for alignment.
func (r *RAM) Read(offset uint32, width Width) (ReadResult, error) {
	n := width.bytes()
	if int(offset)+n > len(r.data) {
		return ReadResult{}, &AccessError{Addr: offset, Kind: NotInRange, Base: 0, Size: uint32(len(r.data))}
	}
	var v uint32
	for i := 0; i < n; i++ {
		v |= uint32(r.data[int(offset)+i]) << (8 * i)
	}
	return ReadResult{Width: width, Value: v}, nil
}

// Write performs a little-endian write of width bits at offset.
func (r *RAM) Write(offset uint32, width Width, value uint32) error {
	n := width.bytes()
	if int(offset)+n > len(r.data) {
		return &AccessError{Addr: offset, Kind: NotInRange, Base: 0, Size: uint32(len(r.data))}
	}
	for i := 0; i < n; i++ {
		r.data[int(offset)+i] = byte(value >> (8 * i))
	}
	return nil
}

// LoadBytes copies src into the RAM starting at offset, bypassing the bus.
// The ELF loader does not use it; it writes sections through Bus.Write.
func (r *RAM) LoadBytes(offset uint32, src []byte) {
	copy(r.data[offset:], src)
}

// Size returns the RAM's capacity in bytes.
func (r *RAM) Size() uint32 {
	return uint32(len(r.data))
}
