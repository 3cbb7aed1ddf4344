package typechecker

import (
	"math/big"

	"justdep/interpreter-go/pkg/ast"
)

// CanCoerce reports whether sub is known to coerce to sup. The relation is
// one-directional structural subtyping and is not transitive by construction:
//
//	t            <~ t
//	false        <~ t
//	uint         <~ int
//	list(t0)     <~ list(t1)      if t0 <~ t1
//	vector(t0,n) <~ list(t1)      if t0 <~ t1
//	tuple(ts)    <~ list(t1)      if each of ts <~ t1
//	vector(t0,m) <~ vector(t1,n)  if t0 <~ t1 and m == n
//	tuple(ts)    <~ vector(t1,n)  if n == len(ts) and each of ts <~ t1
//	vector(t0,n) <~ tuple(ts)     if n == len(ts) and t0 <~ each of ts
//	tuple(ts0)   <~ tuple(ts1)    if same length and pointwise <~
//
// "==" on lengths is provable equality: structural expression identity, never
// arithmetic. A length written differently from a tuple arity is rejected
// even when numerically equal, keeping the relation decidable.
func CanCoerce(sub, sup ast.Expr) bool {
	if ast.Equal(sub, sup) || isLabel(sub, "false") {
		return true
	}
	if isLabel(sup, "int") {
		return isLabel(sub, "uint")
	}
	if t1, ok := listElem(sup); ok {
		if t0, ok := listElem(sub); ok {
			return CanCoerce(t0, t1)
		}
		if t0, _, ok := vectorParts(sub); ok {
			return CanCoerce(t0, t1)
		}
		if ts, ok := tupleElems(sub); ok {
			return allCoerce(ts, t1)
		}
		return false
	}
	if t1, n, ok := vectorParts(sup); ok {
		if t0, m, ok := vectorParts(sub); ok {
			return CanCoerce(t0, t1) && provablyEqual(m, n)
		}
		if ts, ok := tupleElems(sub); ok {
			return provablyEqualLen(n, len(ts)) && allCoerce(ts, t1)
		}
		return false
	}
	if ts1, ok := tupleElems(sup); ok {
		if t0, n, ok := vectorParts(sub); ok {
			if !provablyEqualLen(n, len(ts1)) {
				return false
			}
			for _, t1 := range ts1 {
				if !CanCoerce(t0, t1) {
					return false
				}
			}
			return true
		}
		if ts0, ok := tupleElems(sub); ok {
			if len(ts0) != len(ts1) {
				return false
			}
			for i := range ts0 {
				if !CanCoerce(ts0[i], ts1[i]) {
					return false
				}
			}
			return true
		}
		return false
	}
	return false
}

func allCoerce(ts []ast.Expr, sup ast.Expr) bool {
	for _, t := range ts {
		if !CanCoerce(t, sup) {
			return false
		}
	}
	return true
}

func isLabel(e ast.Expr, label string) bool {
	v, ok := e.(*ast.Var)
	return ok && v.Name == label
}

func listElem(e ast.Expr) (ast.Expr, bool) {
	if c, ok := e.(*ast.Call); ok && c.Name == "list" && len(c.Args) == 1 {
		return c.Args[0], true
	}
	return nil, false
}

func vectorParts(e ast.Expr) (elem, length ast.Expr, ok bool) {
	if c, ok := e.(*ast.Call); ok && c.Name == "vector" && len(c.Args) == 2 {
		return c.Args[0], c.Args[1], true
	}
	return nil, nil, false
}

// tupleElems matches tuple(x) where x is an explicit array literal. A tuple
// type whose element list is any other expression is not provably anything.
func tupleElems(e ast.Expr) ([]ast.Expr, bool) {
	c, ok := e.(*ast.Call)
	if !ok || c.Name != "tuple" || len(c.Args) != 1 {
		return nil, false
	}
	arr, ok := c.Args[0].(*ast.ArrayLit)
	if !ok {
		return nil, false
	}
	return arr.Elems, true
}

func provablyEqual(a, b ast.Expr) bool {
	return ast.Equal(a, b)
}

func provablyEqualLen(a ast.Expr, n int) bool {
	return provablyEqual(a, &ast.IntLit{Value: big.NewInt(int64(n))})
}
