package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rsr-standard/rsrcheck/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		if !errors.Is(err, cli.ErrNonCompliant) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
