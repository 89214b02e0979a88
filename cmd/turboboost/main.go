// Package main is the entry point for the turboboost tray application and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/watchfire-io/turboboost/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCode(err))
	}
}
