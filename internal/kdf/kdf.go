package kdf

import (
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/pbkdf2"
)

// ErrSelfTest is returned when the PBKDF2 implementation does not reproduce
// the published RFC 6070 answer.
var ErrSelfTest = errors.New("pbkdf2 self-test failed")

var (
	initOnce sync.Once
	initErr  error
)

// Init verifies the derivation primitive against an RFC 6070 test vector.
// It runs at most once per process; later calls return the first result.
// Derive calls it lazily, so callers normally never need to.
func Init() error {
	initOnce.Do(func() {
		initErr = selfTest()
	})
	return initErr
}

func selfTest() error {
	// RFC 6070, test case 2: P="password", S="salt", c=2, dkLen=20.
	want, err := hex.DecodeString("ea6c014dc72d6f8ccd1ed92ace1d41f0d8de8957")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSelfTest, err)
	}
	got := pbkdf2.Key([]byte("password"), []byte("salt"), 2, 20, sha1.New)
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return ErrSelfTest
	}
	return nil
}

// Derive stretches password with PBKDF2-HMAC-SHA1 and returns exactly
// keyLen bytes. The call is CPU-bound and takes time proportional to
// iterations; that latency is the point, so there is no cancellation.
// The caller owns the result and is responsible for wiping it.
func Derive(password, salt []byte, iterations, keyLen int) ([]byte, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	if iterations <= 0 {
		return nil, fmt.Errorf("iterations must be positive, got %d", iterations)
	}
	if keyLen <= 0 {
		return nil, fmt.Errorf("key length must be positive, got %d", keyLen)
	}
	return pbkdf2.Key(password, salt, iterations, keyLen, sha1.New), nil
}
