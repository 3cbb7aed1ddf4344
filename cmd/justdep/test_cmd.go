package main

import (
	"fmt"
	"os"

	"justdep/interpreter-go/pkg/driver"
)

func runTest(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "justdep test requires at least one suite file")
		return 1
	}
	failed := 0
	for _, path := range args {
		suite, err := driver.LoadSuite(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		for _, c := range suite.Cases {
			if err := suite.Run(c); err != nil {
				fmt.Fprintf(os.Stdout, "FAIL %s: %v\n", c.Name, err)
				failed++
				continue
			}
			fmt.Fprintf(os.Stdout, "ok   %s\n", c.Name)
		}
	}
	if failed > 0 {
		fmt.Fprintf(os.Stdout, "%d case(s) failed\n", failed)
		return 1
	}
	return 0
}
