// Package passread acquires the passphrase without mangling it.
//
// FromReader consumes single bytes until EOF, so embedded spaces, tabs and
// NUL bytes survive intact; a trailing newline is the end-of-input marker
// and is stripped. FromTerminal prompts on a TTY and reads without echo.
// Both return the passphrase in a secmem.Buffer the caller must Destroy.
package passread
