// Package commands defines the kdfkey CLI.
//
// Usage
//
//	echo -n "passphrase" | kdfkey <salt_hex> <count> <length>
//
// The passphrase arrives on stdin so it never shows up in process listings;
// when stdin is a terminal it is prompted for without echo instead. The
// derived key is printed to stdout as lowercase hex, one line, and all
// diagnostics go to stderr.
package commands
