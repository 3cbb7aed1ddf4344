package ast

// Substitute replaces variable references that appear in mapping with their
// mapped expressions. Names absent from the mapping are left untouched: they
// refer to top-level declarations, not formals. Call targets are never
// substituted because declarations are not first-class values.
//
// The checker uses this to push actual argument expressions into the declared
// types of later formals and into return types, which is how a value such as
// a vector length becomes visible in a subsequent type expression.
func Substitute(e Expr, mapping map[string]Expr) Expr {
	if len(mapping) == 0 {
		return e
	}
	switch e := e.(type) {
	case *IntLit:
		return e
	case *Var:
		if repl, ok := mapping[e.Name]; ok {
			return repl
		}
		return e
	case *Call:
		args := make([]Expr, len(e.Args))
		for i, a := range e.Args {
			args[i] = Substitute(a, mapping)
		}
		return &Call{Name: e.Name, Args: args}
	case *ArrayLit:
		elems := make([]Expr, len(e.Elems))
		for i, el := range e.Elems {
			elems[i] = Substitute(el, mapping)
		}
		return &ArrayLit{Elems: elems}
	default:
		return e
	}
}
