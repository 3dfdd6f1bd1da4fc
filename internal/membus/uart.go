package membus

import "io"

// UART is a byte-stream output-only device: byte-lane writes are streamed
// to Out; reads always fail, matching the memory map contract in §6.
type UART struct {
	Out io.Writer
}

// NewUART returns a UART that streams written bytes to w.
func NewUART(w io.Writer) *UART {
	return &UART{Out: w}
}

// Validate accepts any mapped size; the UART ignores offsets beyond the
// byte it writes through.
func (u *UART) Validate(size uint32) {}

// Read always errors: the UART exposes no readable state. The bus error
// taxonomy has no "write-only" kind, so this reuses ReadOnly (inverted: the
// device accepts writes but never reads) rather than inventing a new kind.
func (u *UART) Read(offset uint32, width Width) (ReadResult, error) {
	return ReadResult{}, &AccessError{Addr: offset, Kind: ReadOnly}
}

// Write streams the low byte of value to Out, once per lane in width,
// low-to-high, matching a simple byte-stream serial port.
func (u *UART) Write(offset uint32, width Width, value uint32) error {
	for i := 0; i < width.bytes(); i++ {
		_, err := u.Out.Write([]byte{byte(value >> (8 * i))})
		if err != nil {
			return err
		}
	}
	return nil
}
