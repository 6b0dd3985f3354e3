package main

/**
 * gonepali - A Roman to Devanagari transliteration library for Nepali
 * Licensed under AGPL-3.0-only
 */

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		exitErr(err)
	}
}

func exitErr(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
