// Package main provides the entry point for the remap CLI tool.
package main

import (
	"fmt"
	"os"
)

func main() {
	rootCmd := newRootCommand()

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
