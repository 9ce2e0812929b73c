package secmem

import "errors"

const (
	// InitialCap is the starting capacity of a fresh Buffer.
	InitialCap = 40
	// MaxBytes caps how large a Buffer may grow.
	MaxBytes = 64 << 20
)

// ErrTooLarge is returned when appending would push a Buffer past MaxBytes.
var ErrTooLarge = errors.New("secure buffer exceeds maximum size")

// Buffer accumulates secret bytes. Capacity doubles when full, the retired
// backing array is zeroed before release, and Destroy zeroes everything.
// The zero value is not usable; call New.
type Buffer struct {
	data []byte
	n    int
}

// New returns an empty Buffer with InitialCap capacity.
func New() *Buffer {
	return &Buffer{data: make([]byte, InitialCap)}
}

// AppendByte adds a single byte, growing the buffer if it is full.
func (b *Buffer) AppendByte(c byte) error {
	if b.n == len(b.data) {
		if err := b.grow(); err != nil {
			return err
		}
	}
	b.data[b.n] = c
	b.n++
	return nil
}

func (b *Buffer) grow() error {
	next := len(b.data) * 2
	if next == 0 {
		next = InitialCap
	}
	if next > MaxBytes {
		return ErrTooLarge
	}
	bigger := make([]byte, next)
	copy(bigger, b.data[:b.n])
	Zero(b.data)
	b.data = bigger
	return nil
}

// Bytes returns the accumulated content. The slice aliases the internal
// storage and is invalidated by AppendByte and Destroy.
func (b *Buffer) Bytes() []byte { return b.data[:b.n] }

// Len reports the number of accumulated bytes.
func (b *Buffer) Len() int { return b.n }

// Truncate discards all but the first n bytes, zeroing the tail.
func (b *Buffer) Truncate(n int) {
	if n < 0 || n > b.n {
		return
	}
	Zero(b.data[n:b.n])
	b.n = n
}

// Destroy zeroes the full backing array, spare capacity included, and
// empties the buffer. Safe to call multiple times and on a nil Buffer.
func (b *Buffer) Destroy() {
	if b == nil || b.data == nil {
		return
	}
	Zero(b.data)
	b.data = b.data[:0]
	b.n = 0
}
