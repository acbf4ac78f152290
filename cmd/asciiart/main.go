package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fatal(err)
	}
}

// noreturn
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "asciiart: %v\n", err)
	os.Exit(1)
}
