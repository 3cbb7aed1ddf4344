package combiner

import (
	"errors"
	"testing"

	"justdep/interpreter-go/pkg/ast"
	"justdep/interpreter-go/pkg/parser"
)

// A minimal self-consistent prelude for combine tests. The real prelude lives
// in pkg/prelude; these declarations mirror its shape.
const testPrelude = `
type : type = type;
uint : type = uint;
list (t : type) : type = list(t);
`

func mustParse(t *testing.T, src string) *ast.Script {
	t.Helper()
	script, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return script
}

func combineSrc(t *testing.T, userSrc string) (*Program, error) {
	t.Helper()
	return Combine(mustParse(t, testPrelude), mustParse(t, userSrc))
}

func kindOf(t *testing.T, err error) (ErrorKind, string) {
	t.Helper()
	var ce *CombineError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CombineError, got %v", err)
	}
	return ce.Kind, ce.Name
}

func indexOf(order []string, name string) int {
	for i, n := range order {
		if n == name {
			return i
		}
	}
	return -1
}

func TestCombineOrdersDependenciesFirst(t *testing.T) {
	program, err := combineSrc(t, `
c : uint = b;
b : uint = a;
a : uint = 1;
`)
	if err != nil {
		t.Fatalf("combine: %v", err)
	}
	if len(program.Order) != 6 {
		t.Fatalf("expected 6 ordered names, got %v", program.Order)
	}
	deps := map[string][]string{"b": {"a"}, "c": {"b"}, "a": {"uint"}}
	for name, wants := range deps {
		for _, dep := range wants {
			if indexOf(program.Order, dep) >= indexOf(program.Order, name) {
				t.Fatalf("%s should precede %s in %v", dep, name, program.Order)
			}
		}
	}
}

func TestCombinePreludePrecedesUser(t *testing.T) {
	program, err := combineSrc(t, "a : uint = 1;")
	if err != nil {
		t.Fatalf("combine: %v", err)
	}
	for i, name := range program.Order {
		if program.Decls[name].Prelude != (i < 3) {
			t.Fatalf("prelude names must come first, got %v", program.Order)
		}
	}
}

func TestCombinePreludeOrderTrusted(t *testing.T) {
	// The prelude is self-referential; combine must accept it verbatim.
	program, err := combineSrc(t, "main (args : list(uint)) : uint = 0;")
	if err != nil {
		t.Fatalf("combine: %v", err)
	}
	if !program.Decls["type"].Prelude {
		t.Fatal("prelude origin lost")
	}
}

func TestCombineDuplicateUserDecl(t *testing.T) {
	_, err := combineSrc(t, "a : uint = 1;\na : uint = 2;")
	if kind, name := kindOf(t, err); kind != ErrDuplicateDecl || name != "a" {
		t.Fatalf("expected duplicate a, got %v", err)
	}
}

func TestCombineUserShadowingPreludeRejected(t *testing.T) {
	_, err := combineSrc(t, "uint : type = uint;")
	if kind, name := kindOf(t, err); kind != ErrDuplicateDecl || name != "uint" {
		t.Fatalf("expected duplicate uint, got %v", err)
	}
}

func TestCombineDuplicateBeatsRecursion(t *testing.T) {
	// All declarations are inserted before any ordering walk runs, so the
	// duplicate is reported even though the second body is self-recursive.
	_, err := combineSrc(t, "a : uint = 1;\na : uint = a;")
	if kind, _ := kindOf(t, err); kind != ErrDuplicateDecl {
		t.Fatalf("expected duplicate, got %v", err)
	}
}

func TestCombineSelfRecursion(t *testing.T) {
	_, err := combineSrc(t, "a : uint = a;")
	if kind, name := kindOf(t, err); kind != ErrRecursion || name != "a" {
		t.Fatalf("expected recursion through a, got %v", err)
	}
}

func TestCombineMutualRecursion(t *testing.T) {
	_, err := combineSrc(t, "a : uint = b;\nb : uint = a;")
	if kind, _ := kindOf(t, err); kind != ErrRecursion {
		t.Fatalf("expected recursion, got %v", err)
	}
}

func TestCombineRecursionThroughType(t *testing.T) {
	// Cycles through argument types and return types count too.
	_, err := combineSrc(t, "a (x : b) : uint = 0;\nb : type = list(a);")
	if kind, _ := kindOf(t, err); kind != ErrRecursion {
		t.Fatalf("expected recursion, got %v", err)
	}
}

func TestCombineNoSuchDecl(t *testing.T) {
	_, err := combineSrc(t, "a : uint = missing;")
	if kind, name := kindOf(t, err); kind != ErrNoSuchDecl || name != "missing" {
		t.Fatalf("expected no such declaration missing, got %v", err)
	}
}

func TestCombineArgNamesAreNotDependencies(t *testing.T) {
	// x is a local, not a reference to a global declaration.
	program, err := combineSrc(t, "f (x : uint) : uint = x;")
	if err != nil {
		t.Fatalf("combine: %v", err)
	}
	if indexOf(program.Order, "f") < 0 {
		t.Fatalf("f missing from order %v", program.Order)
	}
}

func TestCombineLocalShadowsGlobal(t *testing.T) {
	// f's x is its argument; the global x must still be ordered for g.
	program, err := combineSrc(t, `
x : uint = 1;
f (x : uint) : uint = x;
g : uint = x;
`)
	if err != nil {
		t.Fatalf("combine: %v", err)
	}
	if indexOf(program.Order, "x") >= indexOf(program.Order, "g") {
		t.Fatalf("x should precede g in %v", program.Order)
	}
}

func TestCombineArrayBodyDependencies(t *testing.T) {
	program, err := combineSrc(t, "a : uint = 1;\nxs : list(uint) = [a, a, 2];")
	if err != nil {
		t.Fatalf("combine: %v", err)
	}
	if indexOf(program.Order, "a") >= indexOf(program.Order, "xs") {
		t.Fatalf("a should precede xs in %v", program.Order)
	}
}
