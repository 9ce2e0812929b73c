package secmem

import (
	"bytes"
	"testing"
)

func TestZero(t *testing.T) {
	b := []byte{0xde, 0xad, 0xbe, 0xef}
	Zero(b)
	if !bytes.Equal(b, []byte{0, 0, 0, 0}) {
		t.Fatalf("Zero left content behind: %x", b)
	}
	Zero(nil) // must not panic
}

func TestBufferAppendAndGrowth(t *testing.T) {
	b := New()
	defer b.Destroy()

	// Push well past InitialCap so growth happens more than once.
	want := make([]byte, 3*InitialCap+7)
	for i := range want {
		want[i] = byte(i % 251)
		if err := b.AppendByte(want[i]); err != nil {
			t.Fatalf("AppendByte(%d): %v", i, err)
		}
	}
	if b.Len() != len(want) {
		t.Fatalf("Len: want %d, got %d", len(want), b.Len())
	}
	if !bytes.Equal(b.Bytes(), want) {
		t.Fatal("content corrupted across growth")
	}
}

func TestBufferPreservesNulAndWhitespace(t *testing.T) {
	b := New()
	defer b.Destroy()

	in := []byte{' ', '\t', 0x00, ' ', '\n'}
	for _, c := range in {
		if err := b.AppendByte(c); err != nil {
			t.Fatalf("AppendByte: %v", err)
		}
	}
	if !bytes.Equal(b.Bytes(), in) {
		t.Fatalf("want %q, got %q", in, b.Bytes())
	}
}

func TestBufferTruncate(t *testing.T) {
	b := New()
	defer b.Destroy()

	for _, c := range []byte("secret\n") {
		if err := b.AppendByte(c); err != nil {
			t.Fatalf("AppendByte: %v", err)
		}
	}
	b.Truncate(6)
	if got := string(b.Bytes()); got != "secret" {
		t.Fatalf("Truncate: want %q, got %q", "secret", got)
	}
	// The truncated tail must be wiped in the backing array.
	if b.data[6] != 0 {
		t.Fatalf("truncated byte not zeroed: %x", b.data[6])
	}
}

func TestBufferDestroyWipes(t *testing.T) {
	b := New()
	for _, c := range []byte("hunter2") {
		if err := b.AppendByte(c); err != nil {
			t.Fatalf("AppendByte: %v", err)
		}
	}
	backing := b.data
	b.Destroy()
	for i, c := range backing {
		if c != 0 {
			t.Fatalf("byte %d not zeroed after Destroy", i)
		}
	}

	// Idempotent, and safe on nil.
	b.Destroy()
	var nilBuf *Buffer
	nilBuf.Destroy()
}

func TestBufferMaxBytes(t *testing.T) {
	// Simulate a buffer that has already reached the cap; the next append
	// must fail rather than grow further.
	b := &Buffer{data: make([]byte, MaxBytes)}
	b.n = len(b.data)
	if err := b.AppendByte('x'); err != ErrTooLarge {
		t.Fatalf("want ErrTooLarge, got %v", err)
	}
}
