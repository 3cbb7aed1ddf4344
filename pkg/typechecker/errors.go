package typechecker

import (
	"fmt"

	"justdep/interpreter-go/pkg/ast"
)

// ErrorKind discriminates type check failures.
type ErrorKind int

const (
	ErrExpectedArgToBeOfTypeType ErrorKind = iota
	ErrDuplicateArgName
	ErrCannotCoerceReturnType
	ErrCannotCoerceArgumentType
	ErrNoSuchFunc
	ErrNoSuchVar
	ErrWrongNumberOfArgs
)

// TypeError is the fatal error family of the check stage. Fields are
// populated per kind: Name is the argument, variable, or callee name; Index
// is the failing argument position; Sub and Sup are the inferred type and the
// type it could not coerce to; Want and Got carry arity counts.
type TypeError struct {
	Kind  ErrorKind
	Name  string
	Index int
	Expr  ast.Expr
	Sub   ast.Expr
	Sup   ast.Expr
	Want  int
	Got   int
}

func (e *TypeError) Error() string {
	switch e.Kind {
	case ErrExpectedArgToBeOfTypeType:
		return fmt.Sprintf("typecheck: argument %q has type annotation %s of type %s, expected type",
			e.Name, ast.String(e.Expr), ast.String(e.Sub))
	case ErrDuplicateArgName:
		return fmt.Sprintf("typecheck: duplicate argument name %q", e.Name)
	case ErrCannotCoerceReturnType:
		return fmt.Sprintf("typecheck: cannot coerce body type %s to return type %s",
			ast.String(e.Sub), ast.String(e.Sup))
	case ErrCannotCoerceArgumentType:
		return fmt.Sprintf("typecheck: call to %q: cannot coerce argument %d (%s) of type %s to %s",
			e.Name, e.Index, ast.String(e.Expr), ast.String(e.Sub), ast.String(e.Sup))
	case ErrNoSuchFunc:
		return fmt.Sprintf("typecheck: no such function %q", e.Name)
	case ErrNoSuchVar:
		return fmt.Sprintf("typecheck: no such variable %q", e.Name)
	case ErrWrongNumberOfArgs:
		return fmt.Sprintf("typecheck: %q expects %d argument(s), got %d", e.Name, e.Want, e.Got)
	default:
		return "typecheck: unknown error"
	}
}
