package interpreter

import (
	"fmt"

	"justdep/interpreter-go/pkg/runtime"
)

// ErrorKind discriminates evaluation failures.
type ErrorKind int

const (
	ErrWrongNumberOfArgs ErrorKind = iota
	ErrNoSuchFunc
	// ErrNoSuchPreludeFunction guards the builtin dispatch table. It is
	// unreachable while the table and the builtin name set agree.
	ErrNoSuchPreludeFunction
	// ErrOverflow reports a value too large for a size-typed slot, such as a
	// vector length.
	ErrOverflow
	// The shape errors below fire when a builtin receives a wrongly-shaped
	// value. They are defensive invariant checks, unreachable after a
	// successful type check.
	ErrNotInteger
	ErrNotType
	ErrNotArray
)

// EvalError is the fatal error family of the evaluation stage. Any EvalError
// aborts the whole run with no partial result.
type EvalError struct {
	Kind  ErrorKind
	Name  string
	Want  int
	Got   int
	Value runtime.Value
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case ErrWrongNumberOfArgs:
		return fmt.Sprintf("eval: %q expects %d argument(s), got %d", e.Name, e.Want, e.Got)
	case ErrNoSuchFunc:
		return fmt.Sprintf("eval: no such function %q", e.Name)
	case ErrNoSuchPreludeFunction:
		return fmt.Sprintf("eval: no such prelude function %q", e.Name)
	case ErrOverflow:
		return fmt.Sprintf("eval: value %s overflows a length slot", e.Value.Render())
	case ErrNotInteger:
		return fmt.Sprintf("eval: expected an integer, got %s", e.Value.Render())
	case ErrNotType:
		return fmt.Sprintf("eval: expected a type, got %s", e.Value.Render())
	case ErrNotArray:
		return fmt.Sprintf("eval: expected an array, got %s", e.Value.Render())
	default:
		return "eval: unknown error"
	}
}
