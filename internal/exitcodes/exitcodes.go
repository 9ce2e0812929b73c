// Package exitcodes contains all well-defined exit codes that kdfkey can
// return, and a helper to carry a code alongside an error.
package exitcodes

import (
	"errors"
	"os"
)

const (
	// Ok - success.
	Ok = 0
	// Invalid - malformed salt, count or length, or an empty passphrase.
	Invalid = 1
	// CryptoInit - the derivation primitive failed its startup self-test.
	CryptoInit = 2
	// Alloc - the passphrase buffer could not grow any further.
	Alloc = 3
	// Usage - wrong number of command-line arguments. Kept distinct from
	// Invalid so scripts can tell pure misuse from bad input.
	Usage = 10
)

// Err wraps an error with an associated numeric exit code.
type Err struct {
	error
	code int
}

// NewErr returns an error wrapping err with the exit code "code".
func NewErr(err error, code int) Err {
	return Err{error: err, code: code}
}

// Unwrap exposes the wrapped error to errors.Is and errors.As.
func (e Err) Unwrap() error { return e.error }

// Code extracts the numeric exit code from err. A nil error is Ok; an error
// without an embedded code maps to Invalid.
func Code(err error) int {
	if err == nil {
		return Ok
	}
	var e Err
	if errors.As(err, &e) {
		return e.code
	}
	return Invalid
}

// Exit terminates the process with the exit code extracted from err.
func Exit(err error) {
	os.Exit(Code(err))
}
