package app

import (
	"fmt"
	"strconv"

	"kdfkey/internal/exitcodes"
	"kdfkey/internal/hexcodec"
	"kdfkey/internal/secmem"
)

// Params are the validated positional parameters.
type Params struct {
	Salt       []byte // decoded; owned by the caller, wipe after use
	Iterations int
	KeyLen     int
}

// parseParams validates salt, count and length. On any failure the decoded
// salt, if one was produced, is wiped before the error is returned.
func parseParams(saltHex, count, length string) (Params, error) {
	salt, err := hexcodec.Decode(saltHex)
	if err != nil {
		return Params{}, exitcodes.NewErr(
			fmt.Errorf("%s is not a valid salt (it must be a hexadecimal string)", saltHex),
			exitcodes.Invalid)
	}

	iterations, err := parsePositive(count)
	if err != nil {
		secmem.Zero(salt)
		return Params{}, exitcodes.NewErr(
			fmt.Errorf("count must be a positive integer"), exitcodes.Invalid)
	}

	keyLen, err := parsePositive(length)
	if err != nil {
		secmem.Zero(salt)
		return Params{}, exitcodes.NewErr(
			fmt.Errorf("length must be a positive integer"), exitcodes.Invalid)
	}

	return Params{Salt: salt, Iterations: iterations, KeyLen: keyLen}, nil
}

func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("%d is not positive", n)
	}
	return n, nil
}
