// Package main is the entry point for the calk CLI.
package main

import (
	"os"

	"calk-kg/cmd/cli/cmd"
	"calk-kg/internal/logging"
)

func main() {
	err := cmd.Execute()
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}
