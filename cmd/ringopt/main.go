// Package main is the ringopt command. It reads an initial graph and a query
// results log, generates a ring-architecture graph and writes it out. The
// serve subcommand exposes the same pipeline over HTTP.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}
