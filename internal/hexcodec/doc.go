// Package hexcodec converts between hexadecimal text and raw bytes.
//
// Decode accepts odd-length input: a lone trailing digit becomes the low
// nibble of a final byte. Existing salts in the wild were produced under
// that rule, so it is kept even though even-length input is the norm.
package hexcodec
