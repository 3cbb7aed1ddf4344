// Package ast defines the expression and declaration tree for justdep
// scripts. Types are not a separate grammar: a type is an ordinary Expr
// built from a fixed vocabulary of names (type, list, vector, tuple, int,
// uint, string, bool, true, false), which lets dependent-parameter
// substitution reuse the plain expression substitution in rewrite.go.
package ast

import "math/big"

// Expr is a node in the immutable expression tree. Trees are finite and
// exclusively owned top-down by the declaration that contains them.
type Expr interface {
	isExpr()
}

// IntLit is an arbitrary-precision integer literal.
type IntLit struct {
	Value *big.Int
}

// Var references a declaration or an in-scope argument by name.
type Var struct {
	Name string
}

// Call applies a named declaration to ordered arguments.
type Call struct {
	Name string
	Args []Expr
}

// ArrayLit is an ordered sequence of element expressions.
type ArrayLit struct {
	Elems []Expr
}

func (*IntLit) isExpr()   {}
func (*Var) isExpr()      {}
func (*Call) isExpr()     {}
func (*ArrayLit) isExpr() {}

// Arg is one named, typed argument of a declaration. Its type expression may
// reference only earlier argument names (telescoping).
type Arg struct {
	Name string
	Type Expr
}

// Decl is a named top-level binding: argument list, return type, body.
// The return type and body may reference any argument name.
type Decl struct {
	Args []Arg
	Ret  Expr
	Body Expr
}

// ScriptDecl pairs a declaration with its name. Scripts keep declarations as
// an ordered list so duplicate names survive parsing; the combiner rejects
// them when merging namespaces.
type ScriptDecl struct {
	Name string
	Decl *Decl
}

// Script is one parsed source file in declaration order.
type Script struct {
	Decls []ScriptDecl
}

// Int builds an integer literal from an int64.
func Int(v int64) *IntLit {
	return &IntLit{Value: big.NewInt(v)}
}

// IntFrom builds an integer literal from a big integer, copying it.
func IntFrom(v *big.Int) *IntLit {
	return &IntLit{Value: new(big.Int).Set(v)}
}

// ID builds a variable reference.
func ID(name string) *Var {
	return &Var{Name: name}
}

// CallTo builds a call expression.
func CallTo(name string, args ...Expr) *Call {
	return &Call{Name: name, Args: args}
}

// Arr builds an array literal.
func Arr(elems ...Expr) *ArrayLit {
	return &ArrayLit{Elems: elems}
}

// Equal reports structural equality of two expressions. This is the type
// equality used throughout the checker: deliberately syntactic and never
// normalized, so provable equality stays decidable.
func Equal(a, b Expr) bool {
	switch a := a.(type) {
	case *IntLit:
		b, ok := b.(*IntLit)
		return ok && a.Value.Cmp(b.Value) == 0
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Name == b.Name
	case *Call:
		b, ok := b.(*Call)
		if !ok || a.Name != b.Name || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	case *ArrayLit:
		b, ok := b.(*ArrayLit)
		if !ok || len(a.Elems) != len(b.Elems) {
			return false
		}
		for i := range a.Elems {
			if !Equal(a.Elems[i], b.Elems[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
