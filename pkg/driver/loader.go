// Package driver sequences the interpreter pipeline for front ends: parse
// the prelude and a user script, combine them, type-check, evaluate. It also
// loads YAML-defined script suites for the test runner.
package driver

import (
	"fmt"
	"os"
	"strings"

	"justdep/interpreter-go/pkg/ast"
	"justdep/interpreter-go/pkg/combiner"
	"justdep/interpreter-go/pkg/interpreter"
	"justdep/interpreter-go/pkg/parser"
	"justdep/interpreter-go/pkg/prelude"
	"justdep/interpreter-go/pkg/runtime"
	"justdep/interpreter-go/pkg/typechecker"
)

// LoadProgram reads a script file and combines it with the prelude.
func LoadProgram(path string) (*combiner.Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("driver: read %s: %w", path, err)
	}
	return LoadProgramSource(string(src))
}

// LoadProgramSource parses the given script source and combines it with the
// prelude. A blank source yields a prelude-only program, which the REPL
// starts from. Parse and combine errors are returned unwrapped so callers
// can inspect them with errors.As.
func LoadProgramSource(src string) (*combiner.Program, error) {
	preludeScript, err := prelude.Script()
	if err != nil {
		return nil, err
	}
	userScript := &ast.Script{}
	if strings.TrimSpace(src) != "" {
		if userScript, err = parser.Parse(src); err != nil {
			return nil, err
		}
	}
	return combiner.Combine(preludeScript, userScript)
}

// CheckProgram statically validates a combined program.
func CheckProgram(program *combiner.Program) error {
	return typechecker.Check(program)
}

// RunProgram evaluates main against the argument vector. The program must
// have been checked.
func RunProgram(program *combiner.Program, args []string) (runtime.Value, error) {
	return interpreter.New(program).EvalMain(args)
}

// RunSource loads, checks, and runs a script in one step.
func RunSource(src string, args []string) (runtime.Value, error) {
	program, err := LoadProgramSource(src)
	if err != nil {
		return nil, err
	}
	if err := CheckProgram(program); err != nil {
		return nil, err
	}
	return RunProgram(program, args)
}
