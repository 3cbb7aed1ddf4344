package typechecker

import (
	"justdep/interpreter-go/pkg/ast"
	"justdep/interpreter-go/pkg/combiner"
)

// Signature is the checked interface of a declaration: its argument names
// with their declared type expressions, and its return type expression.
type Signature struct {
	Args []ast.Arg
	Ret  ast.Expr
}

// Checker accumulates checked signatures while walking a program in
// dependency order. A Checker that has finished CheckProgram can also infer
// the types of standalone expressions, which the REPL uses.
type Checker struct {
	sigs map[string]*Signature
}

// New returns an empty checker session.
func New() *Checker {
	return &Checker{sigs: make(map[string]*Signature)}
}

// Check validates the whole program, failing fast with a *TypeError on the
// first offending declaration.
func Check(program *combiner.Program) error {
	return New().CheckProgram(program)
}

// CheckProgram walks Program.Order, checking each declaration against the
// signatures recorded so far. The combiner guarantees every dependency is
// checked before its dependents.
func (c *Checker) CheckProgram(program *combiner.Program) error {
	for _, name := range program.Order {
		if err := c.checkDecl(name, program.Decls[name]); err != nil {
			return err
		}
	}
	return nil
}

// checkDecl validates one declaration. Its signature is recorded before its
// own arguments and body are walked: the trusted prelude contains
// self-referential builtins (`type : type = type;`) whose bodies only check
// against their own signature, and for user declarations the combiner has
// already ruled out self-reference.
func (c *Checker) checkDecl(name string, d *combiner.Decl) error {
	c.sigs[name] = &Signature{Args: d.Args, Ret: d.Ret}

	env := make(map[string]ast.Expr, len(d.Args))
	for _, arg := range d.Args {
		t, err := c.InferExpr(arg.Type, env)
		if err != nil {
			return err
		}
		if !CanCoerce(t, ast.ID("type")) {
			return &TypeError{Kind: ErrExpectedArgToBeOfTypeType, Name: arg.Name, Expr: arg.Type, Sub: t}
		}
		if _, bound := env[arg.Name]; bound {
			return &TypeError{Kind: ErrDuplicateArgName, Name: arg.Name}
		}
		env[arg.Name] = arg.Type
	}

	bodyType, err := c.InferExpr(d.Body, env)
	if err != nil {
		return err
	}
	if !CanCoerce(bodyType, d.Ret) {
		return &TypeError{Kind: ErrCannotCoerceReturnType, Sub: bodyType, Sup: d.Ret}
	}
	return nil
}

// InferExpr returns the type expression of e in the given local environment.
//
// Integer literals classify by sign only. A variable resolves to its local
// binding first, then to the return type of a nullary declaration; names
// bound neither way are NoSuchVar (unknown top-level references in user
// declarations are NoSuchDecl failures in the combiner before checking ever
// starts, so NoSuchVar here covers locals and direct Checker callers).
func (c *Checker) InferExpr(e ast.Expr, env map[string]ast.Expr) (ast.Expr, error) {
	switch e := e.(type) {
	case *ast.IntLit:
		if e.Value.Sign() < 0 {
			return ast.ID("int"), nil
		}
		return ast.ID("uint"), nil
	case *ast.Var:
		if t, ok := env[e.Name]; ok {
			return t, nil
		}
		if sig, ok := c.sigs[e.Name]; ok && len(sig.Args) == 0 {
			return sig.Ret, nil
		}
		return nil, &TypeError{Kind: ErrNoSuchVar, Name: e.Name}
	case *ast.Call:
		return c.inferCall(e, env)
	case *ast.ArrayLit:
		elemTypes := make([]ast.Expr, len(e.Elems))
		for i, el := range e.Elems {
			t, err := c.InferExpr(el, env)
			if err != nil {
				return nil, err
			}
			elemTypes[i] = t
		}
		return ast.CallTo("tuple", ast.Arr(elemTypes...)), nil
	default:
		return nil, &TypeError{Kind: ErrNoSuchVar, Name: ast.String(e)}
	}
}

// inferCall checks a call site. Formals are processed left to right; each
// actual's inferred type must coerce to the formal's declared type with all
// earlier formals substituted by the actual argument *expressions* (not their
// types). The same substitution, completed, applied to the callee's return
// type is the call's type. This value-level substitution is what makes an
// earlier parameter such as a vector length visible in later types.
func (c *Checker) inferCall(call *ast.Call, env map[string]ast.Expr) (ast.Expr, error) {
	sig, ok := c.sigs[call.Name]
	if !ok {
		return nil, &TypeError{Kind: ErrNoSuchFunc, Name: call.Name}
	}
	if len(sig.Args) != len(call.Args) {
		return nil, &TypeError{Kind: ErrWrongNumberOfArgs, Name: call.Name, Want: len(sig.Args), Got: len(call.Args)}
	}
	subst := make(map[string]ast.Expr, len(sig.Args))
	for i, actual := range call.Args {
		actualType, err := c.InferExpr(actual, env)
		if err != nil {
			return nil, err
		}
		formalType := ast.Substitute(sig.Args[i].Type, subst)
		if !CanCoerce(actualType, formalType) {
			return nil, &TypeError{
				Kind:  ErrCannotCoerceArgumentType,
				Name:  call.Name,
				Index: i,
				Expr:  actual,
				Sub:   actualType,
				Sup:   formalType,
			}
		}
		subst[sig.Args[i].Name] = actual
	}
	return ast.Substitute(sig.Ret, subst), nil
}
