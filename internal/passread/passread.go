package passread

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/term"

	"kdfkey/internal/secmem"
)

// ErrEmpty is returned when no usable passphrase bytes remain after the
// end marker is stripped.
var ErrEmpty = errors.New("passphrase is empty")

// FromReader reads the passphrase byte by byte until EOF. Every byte is
// kept verbatim; deliberately no bufio, no line splitting, no trimming
// beyond a single trailing '\n'. A passphrase of nothing but spaces is
// valid.
func FromReader(r io.Reader) (*secmem.Buffer, error) {
	buf := secmem.New()
	one := make([]byte, 1)
	for {
		n, err := r.Read(one)
		if n > 0 {
			if aerr := buf.AppendByte(one[0]); aerr != nil {
				buf.Destroy()
				return nil, aerr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			buf.Destroy()
			return nil, fmt.Errorf("reading passphrase: %w", err)
		}
	}
	stripNewline(buf)
	if buf.Len() == 0 {
		buf.Destroy()
		return nil, ErrEmpty
	}
	return buf, nil
}

// FromTerminal prompts on w and reads the passphrase from the terminal fd
// with echo disabled. The terminal driver supplies the line end, which is
// not part of the passphrase.
func FromTerminal(fd int, prompt string, w io.Writer) (*secmem.Buffer, error) {
	fmt.Fprint(w, prompt)
	p, err := term.ReadPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, fmt.Errorf("reading passphrase from terminal: %w", err)
	}
	defer secmem.Zero(p)

	buf := secmem.New()
	for _, c := range p {
		if aerr := buf.AppendByte(c); aerr != nil {
			buf.Destroy()
			return nil, aerr
		}
	}
	if buf.Len() == 0 {
		buf.Destroy()
		return nil, ErrEmpty
	}
	return buf, nil
}

// stripNewline drops a single trailing '\n', the conventional end-of-input
// marker on a pipe. Only an actual newline is stripped; input that ends
// without one loses nothing.
func stripNewline(buf *secmem.Buffer) {
	n := buf.Len()
	if n > 0 && buf.Bytes()[n-1] == '\n' {
		buf.Truncate(n - 1)
	}
}
