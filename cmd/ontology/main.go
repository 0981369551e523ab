// Package main provides the ontology CLI for inspecting, linting, and
// exporting the travel knowledge-graph schema.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
