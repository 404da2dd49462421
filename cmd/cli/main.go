// Package main is the entry point for the goalgraph CLI.
package main

import (
	"os"

	"goalgraph/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
