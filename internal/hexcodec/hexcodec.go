package hexcodec

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrEmpty is returned when Decode is given no input.
var ErrEmpty = errors.New("empty hex string")

// Decode converts hex text to bytes, two digits per byte. An odd-length
// input keeps its lone trailing digit as the low nibble of the final byte,
// so "abc" decodes to 0xab 0x0c. Upper and lower case are both accepted.
func Decode(s string) ([]byte, error) {
	if s == "" {
		return nil, ErrEmpty
	}
	out := make([]byte, 0, (len(s)+1)/2)
	for i := 0; i < len(s); i += 2 {
		hi, ok := nibble(s[i])
		if !ok {
			return nil, fmt.Errorf("invalid hex character %q at position %d", s[i], i)
		}
		if i+1 == len(s) {
			// Trailing lone digit: low nibble of the last byte.
			out = append(out, hi)
			break
		}
		lo, ok := nibble(s[i+1])
		if !ok {
			return nil, fmt.Errorf("invalid hex character %q at position %d", s[i+1], i+1)
		}
		out = append(out, hi<<4|lo)
	}
	return out, nil
}

// Encode renders b as lowercase hex, exactly two digits per byte.
func Encode(b []byte) string { return hex.EncodeToString(b) }

// EncodeLine renders b as lowercase hex followed by a newline, into a byte
// slice rather than a string so the caller can wipe the rendering of
// sensitive material after writing it out.
func EncodeLine(b []byte) []byte {
	out := make([]byte, hex.EncodedLen(len(b))+1)
	hex.Encode(out, b)
	out[len(out)-1] = '\n'
	return out
}

func nibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
