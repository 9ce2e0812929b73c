package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"kdfkey/internal/app"
	"kdfkey/internal/exitcodes"
	"kdfkey/internal/passread"
	"kdfkey/internal/secmem"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kdfkey <salt_hex> <count> <length>",
		Short: "Derive key material from a passphrase with PBKDF2-HMAC-SHA1",
		Long: `Derive <length> bytes of key material from a passphrase read on stdin,
using PBKDF2-HMAC-SHA1 with the given hex salt and iteration count. The
output is lowercase hex, typically split by the caller into an encryption
key and an IV.`,
		Args:                  exactlyThree,
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		SilenceErrors:         true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(app.Config{
				SaltHex:    args[0],
				Count:      args[1],
				Length:     args[2],
				Passphrase: passphraseSource(),
				Out:        cmd.OutOrStdout(),
			})
		},
	}
}

// exactlyThree enforces the fixed arity. Wrong arity is pure misuse and
// carries its own exit code so scripts can tell it from bad input.
func exactlyThree(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		return exitcodes.NewErr(
			fmt.Errorf("usage: %s <passphrase >hex_key", cmd.UseLine()),
			exitcodes.Usage)
	}
	return nil
}

// passphraseSource reads from stdin byte-exact when piped, or prompts
// without echo when stdin is a terminal.
func passphraseSource() app.PassphraseFunc {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		return func() (*secmem.Buffer, error) {
			return passread.FromTerminal(fd, "Passphrase: ", os.Stderr)
		}
	}
	return func() (*secmem.Buffer, error) {
		return passread.FromReader(os.Stdin)
	}
}
