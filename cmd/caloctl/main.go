package main

import (
	"fmt"
	"os"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
