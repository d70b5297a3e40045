// Package main provides the signfn CLI for experimenting with sign-function
// activations.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
