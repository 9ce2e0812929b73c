package main

import (
	"fmt"
	"os"

	"kdfkey/cmd/kdfkey/commands"
	"kdfkey/internal/exitcodes"
)

func main() {
	if err := commands.Execute(); err != nil {
		if exitcodes.Code(err) == exitcodes.Usage {
			fmt.Fprintln(os.Stderr, err)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		exitcodes.Exit(err)
	}
}
