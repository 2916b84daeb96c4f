package main

import (
	"os"

	"github.com/jgoldfed/obsidian-title-generator/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
