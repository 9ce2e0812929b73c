// Package kdf wraps the PBKDF2-HMAC-SHA1 derivation primitive.
//
// The first derivation runs a one-time known-answer self-test of the
// underlying implementation; a mismatch poisons the package and every
// subsequent call fails with ErrSelfTest. The digest is fixed to SHA-1 for
// compatibility with the key material this tool exists to reproduce.
package kdf
