package main

import (
	"fmt"
	"os"

	"justdep/interpreter-go/pkg/driver"
)

func runEntry(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "justdep run requires a source file")
		return 1
	}
	program, err := driver.LoadProgram(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := driver.CheckProgram(program); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	value, err := driver.RunProgram(program, args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Fprintln(os.Stdout, value.Render())
	return 0
}

func runCheck(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "justdep check requires exactly one source file")
		return 1
	}
	program, err := driver.LoadProgram(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := driver.CheckProgram(program); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Fprintln(os.Stdout, "typecheck: ok")
	return 0
}
