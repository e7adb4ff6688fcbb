// Command answer prints the answer to a query given as arguments, or to
// each line read from stdin when no arguments are given.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
