package app

import (
	"errors"
	"fmt"
	"io"

	"kdfkey/internal/exitcodes"
	"kdfkey/internal/hexcodec"
	"kdfkey/internal/kdf"
	"kdfkey/internal/passread"
	"kdfkey/internal/secmem"
)

// PassphraseFunc supplies the passphrase. The command layer picks the
// source (pipe or terminal); tests inject their own.
type PassphraseFunc func() (*secmem.Buffer, error)

// Config holds the pipeline inputs for one run.
type Config struct {
	SaltHex    string
	Count      string
	Length     string
	Passphrase PassphraseFunc
	Out        io.Writer // derived key destination, conventionally stdout
}

// Run executes one derivation. Parameters are validated before the
// passphrase is touched, matching the cheap-checks-first order of the
// original tool. All sensitive buffers are wiped via defers, so each
// early return below still funnels through cleanup.
func Run(cfg Config) error {
	params, err := parseParams(cfg.SaltHex, cfg.Count, cfg.Length)
	if err != nil {
		return err
	}
	defer secmem.Zero(params.Salt)

	pass, err := cfg.Passphrase()
	if err != nil {
		return classifyPassphraseErr(err)
	}
	defer pass.Destroy()

	key, err := kdf.Derive(pass.Bytes(), params.Salt, params.Iterations, params.KeyLen)
	if err != nil {
		if errors.Is(err, kdf.ErrSelfTest) {
			return exitcodes.NewErr(err, exitcodes.CryptoInit)
		}
		return err
	}
	defer secmem.Zero(key)

	return writeKey(cfg.Out, key)
}

func classifyPassphraseErr(err error) error {
	switch {
	case errors.Is(err, passread.ErrEmpty):
		return exitcodes.NewErr(err, exitcodes.Invalid)
	case errors.Is(err, secmem.ErrTooLarge):
		return exitcodes.NewErr(fmt.Errorf("allocating passphrase buffer: %w", err), exitcodes.Alloc)
	}
	return err
}

// writeKey emits the key as lowercase hex plus a newline, then wipes the
// hex rendering, which is as sensitive as the key itself.
func writeKey(w io.Writer, key []byte) error {
	line := hexcodec.EncodeLine(key)
	defer secmem.Zero(line)
	if _, err := w.Write(line); err != nil {
		return fmt.Errorf("writing derived key: %w", err)
	}
	return nil
}
