package main

import (
	"fmt"
	"os"
)

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  justdep run <file.jd> [args ...]")
	fmt.Fprintln(os.Stderr, "  justdep <file.jd> [args ...]")
	fmt.Fprintln(os.Stderr, "  justdep check <file.jd>")
	fmt.Fprintln(os.Stderr, "  justdep repl")
	fmt.Fprintln(os.Stderr, "  justdep test <suite.yml> [suite.yml ...]")
	fmt.Fprintln(os.Stderr, "  justdep version")
}
