package main

import (
	"os"

	"github.com/officehub-dev/officehub/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
