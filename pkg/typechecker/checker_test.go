package typechecker

import (
	"errors"
	"testing"

	"justdep/interpreter-go/pkg/ast"
	"justdep/interpreter-go/pkg/combiner"
	"justdep/interpreter-go/pkg/parser"
	"justdep/interpreter-go/pkg/prelude"
)

func mustProgram(t *testing.T, src string) *combiner.Program {
	t.Helper()
	preludeScript, err := prelude.Script()
	if err != nil {
		t.Fatalf("prelude: %v", err)
	}
	userScript, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	program, err := combiner.Combine(preludeScript, userScript)
	if err != nil {
		t.Fatalf("combine: %v", err)
	}
	return program
}

func checkSrc(t *testing.T, src string) error {
	t.Helper()
	return Check(mustProgram(t, src))
}

func wantKind(t *testing.T, err error, kind ErrorKind) *TypeError {
	t.Helper()
	var te *TypeError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TypeError, got %v", err)
	}
	if te.Kind != kind {
		t.Fatalf("expected kind %d, got %v", kind, err)
	}
	return te
}

func TestCheckPreludeAlone(t *testing.T) {
	// The self-referential builtins check against their own signatures.
	if err := checkSrc(t, "main (args : list(string)) : uint = 0;"); err != nil {
		t.Fatalf("check: %v", err)
	}
}

func TestCheckIdentityScenario(t *testing.T) {
	err := checkSrc(t, `
five : uint = id(uint)(5);
main (args : list(string)) : uint = five;
`)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
}

func TestCheckNegativeLiteralIsInt(t *testing.T) {
	if err := checkSrc(t, "n : int = -3;"); err != nil {
		t.Fatalf("check: %v", err)
	}
	err := checkSrc(t, "n : uint = -3;")
	te := wantKind(t, err, ErrCannotCoerceReturnType)
	if !ast.Equal(te.Sub, ast.ID("int")) {
		t.Fatalf("expected inferred int, got %s", ast.String(te.Sub))
	}
}

func TestCheckUintBodyCoercesToInt(t *testing.T) {
	if err := checkSrc(t, "n : int = 3;"); err != nil {
		t.Fatalf("check: %v", err)
	}
}

func TestCheckArrayLiteralReturn(t *testing.T) {
	// An array literal infers as a tuple and coerces structurally.
	if err := checkSrc(t, "xs : list(uint) = [1, 2, 3];"); err != nil {
		t.Fatalf("check: %v", err)
	}
	if err := checkSrc(t, "v : vector(int)(2) = [1, -2];"); err != nil {
		t.Fatalf("check: %v", err)
	}
	err := checkSrc(t, "main (args : list(string)) : uint = [1, 2, 3];")
	wantKind(t, err, ErrCannotCoerceReturnType)
}

func TestCheckWrongNumberOfArgs(t *testing.T) {
	err := checkSrc(t, "five : uint = id(uint);")
	te := wantKind(t, err, ErrWrongNumberOfArgs)
	if te.Name != "id" || te.Want != 2 || te.Got != 1 {
		t.Fatalf("unexpected arity report: %v", err)
	}
}

func TestCheckArgumentCoercionFailure(t *testing.T) {
	err := checkSrc(t, "x : uint = id(uint)(-1);")
	te := wantKind(t, err, ErrCannotCoerceArgumentType)
	if te.Name != "id" || te.Index != 1 {
		t.Fatalf("unexpected argument report: %v", err)
	}
	if !ast.Equal(te.Sup, ast.ID("uint")) {
		t.Fatalf("formal should be uint after substitution, got %s", ast.String(te.Sup))
	}
}

func TestCheckDuplicateArgName(t *testing.T) {
	err := checkSrc(t, "f (x : uint) (x : uint) : uint = x;")
	te := wantKind(t, err, ErrDuplicateArgName)
	if te.Name != "x" {
		t.Fatalf("expected duplicate x, got %v", err)
	}
}

func TestCheckArgAnnotationMustBeType(t *testing.T) {
	err := checkSrc(t, "f (x : 5) : uint = 0;")
	te := wantKind(t, err, ErrExpectedArgToBeOfTypeType)
	if te.Name != "x" {
		t.Fatalf("expected argument x, got %v", err)
	}
}

func TestCheckTelescopeIsOrdered(t *testing.T) {
	// An argument type may only mention earlier arguments. Later ones are
	// unbound at that point.
	err := checkSrc(t, "f (v : vector(t)(2)) (t : type) : uint = 0;")
	te := wantKind(t, err, ErrNoSuchVar)
	if te.Name != "t" {
		t.Fatalf("expected unbound t, got %v", err)
	}
}

func TestCheckDependentArgument(t *testing.T) {
	// id's second formal has type t; the first actual is substituted into it.
	err := checkSrc(t, `
v : vector(uint)(2) = id(vector(uint)(2))([1, 2]);
`)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
}

func TestCheckDependentReturnType(t *testing.T) {
	src := `
wrap (t : type) (n : uint) (v : vector(t)(n)) : vector(t)(n) = v;
ok : vector(uint)(2) = wrap(uint)(2)([1, 2]);
`
	if err := checkSrc(t, src); err != nil {
		t.Fatalf("check: %v", err)
	}

	err := checkSrc(t, `
wrap (t : type) (n : uint) (v : vector(t)(n)) : vector(t)(n) = v;
bad : vector(uint)(3) = wrap(uint)(2)([1, 2]);
`)
	wantKind(t, err, ErrCannotCoerceReturnType)
}

func TestCheckDependentArgumentMismatch(t *testing.T) {
	err := checkSrc(t, `
wrap (t : type) (n : uint) (v : vector(t)(n)) : vector(t)(n) = v;
bad : vector(uint)(2) = wrap(uint)(2)([1, 2, 3]);
`)
	te := wantKind(t, err, ErrCannotCoerceArgumentType)
	if te.Name != "wrap" || te.Index != 2 {
		t.Fatalf("unexpected argument report: %v", err)
	}
}

func TestCheckLengthEqualityIsSyntactic(t *testing.T) {
	// `two` evaluates to 2, but lengths compare as expressions.
	err := checkSrc(t, `
two : uint = 2;
w : vector(uint)(two) = [1, 2];
`)
	wantKind(t, err, ErrCannotCoerceReturnType)
}

func TestCheckVarFallsBackToNullarySignature(t *testing.T) {
	if err := checkSrc(t, "a : uint = 1;\nb : int = a;"); err != nil {
		t.Fatalf("check: %v", err)
	}
}

func TestInferExprStandalone(t *testing.T) {
	c := New()
	if err := c.CheckProgram(mustProgram(t, "five : uint = 5;")); err != nil {
		t.Fatalf("check: %v", err)
	}
	e, err := parser.ParseExpr("id(uint)(five)")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got, err := c.InferExpr(e, nil)
	if err != nil {
		t.Fatalf("infer: %v", err)
	}
	if !ast.Equal(got, ast.ID("uint")) {
		t.Fatalf("expected uint, got %s", ast.String(got))
	}

	_, err = c.InferExpr(ast.ID("missing"), nil)
	wantKind(t, err, ErrNoSuchVar)
}
