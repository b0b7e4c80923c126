package main

import (
	"os"

	"github.com/besskit/bess-calculator/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
