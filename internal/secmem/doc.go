// Package secmem holds sensitive byte material and guarantees its erasure.
//
// Contents
//
//   - Zero: constant-time friendly overwrite of a byte slice
//   - Buffer: a growable buffer for secrets that zeroes retired backing
//     arrays on growth and all content on Destroy
//
// # Notes
//
// Go gives no hard guarantee that a value is never copied by the runtime;
// wiping is best-effort and aims to shorten the window in which secrets are
// recoverable from process memory.
package secmem
