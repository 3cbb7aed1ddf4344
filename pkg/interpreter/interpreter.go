package interpreter

import (
	"justdep/interpreter-go/pkg/ast"
	"justdep/interpreter-go/pkg/combiner"
	"justdep/interpreter-go/pkg/runtime"
)

// Interpreter evaluates a checked program. It holds no mutable state itself;
// every entry point starts a fresh run with its own memo.
type Interpreter struct {
	program *combiner.Program
}

// New wraps a combined, type-checked program for evaluation.
func New(program *combiner.Program) *Interpreter {
	return &Interpreter{program: program}
}

// EvalMain evaluates the `main` declaration against an array of string
// arguments, producing one value.
func (i *Interpreter) EvalMain(args []string) (runtime.Value, error) {
	run := i.newRun()
	return run.call("main", []runtime.Value{runtime.Strings(args)})
}

// EvalExpr evaluates a standalone expression with no local bindings. Each
// call is an independent run with its own memo.
func (i *Interpreter) EvalExpr(e ast.Expr) (runtime.Value, error) {
	run := i.newRun()
	return run.eval(e, nil)
}

// run scopes the global memo to one evaluation. The memo is the program's
// only mutable resource; single-threaded execution makes the check-then-
// insert pattern in lookup race-free. A concurrent evaluator would have to
// replace it with a compute-once-per-key primitive.
type run struct {
	program *combiner.Program
	memo    map[string]runtime.Value
}

func (i *Interpreter) newRun() *run {
	return &run{program: i.program, memo: make(map[string]runtime.Value)}
}

// call applies a declaration to already-evaluated arguments. Builtin prelude
// names construct type values directly; every other declaration, prelude or
// user, binds its formals in a fresh local environment and evaluates its
// body.
func (r *run) call(name string, args []runtime.Value) (runtime.Value, error) {
	decl, ok := r.program.Decls[name]
	if !ok {
		return nil, &EvalError{Kind: ErrNoSuchFunc, Name: name}
	}
	if len(decl.Args) != len(args) {
		return nil, &EvalError{Kind: ErrWrongNumberOfArgs, Name: name, Want: len(decl.Args), Got: len(args)}
	}
	if decl.Prelude && isBuiltin(name) {
		return callBuiltin(name, args)
	}
	env := make(map[string]runtime.Value, len(args))
	for i, arg := range decl.Args {
		env[arg.Name] = args[i]
	}
	return r.eval(decl.Body, env)
}

func (r *run) eval(e ast.Expr, env map[string]runtime.Value) (runtime.Value, error) {
	switch e := e.(type) {
	case *ast.IntLit:
		return runtime.IntegerValue{Val: e.Value}, nil
	case *ast.Var:
		return r.lookup(e.Name, env)
	case *ast.Call:
		args := make([]runtime.Value, len(e.Args))
		for i, a := range e.Args {
			v, err := r.eval(a, env)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		return r.call(e.Name, args)
	case *ast.ArrayLit:
		elems := make([]runtime.Value, len(e.Elems))
		for i, el := range e.Elems {
			v, err := r.eval(el, env)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return &runtime.ArrayValue{Elements: elems}, nil
	default:
		return nil, &EvalError{Kind: ErrNoSuchFunc, Name: ast.String(e)}
	}
}

// lookup resolves a variable: the local environment shadows globals; a
// global nullary declaration is computed at most once per run, with its
// value inserted into the memo before return.
func (r *run) lookup(name string, env map[string]runtime.Value) (runtime.Value, error) {
	if v, ok := env[name]; ok {
		return v, nil
	}
	if v, ok := r.memo[name]; ok {
		return v, nil
	}
	v, err := r.call(name, nil)
	if err != nil {
		return nil, err
	}
	r.memo[name] = v
	return v, nil
}
