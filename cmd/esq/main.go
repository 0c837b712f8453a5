// Package main is the entry point for the esq CLI.
package main

import (
	"os"

	"github.com/evertools/esq-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
