// File: main.go
// Title: scenelang CLI Entry Point
// Description: Entry point for the scenelang command-line tool. Delegates
//              to the command tree and maps errors onto process exit codes.
// Version: v0.1.0
// Created: 2025-11-19
// Modified: 2025-11-19
//
// Change History:
// - 2025-11-19 v0.1.0: Initial CLI entry point

package main

import (
	"os"

	"github.com/candela-render/scenelang/cmd/scenelang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
