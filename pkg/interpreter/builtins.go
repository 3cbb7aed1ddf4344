package interpreter

import (
	"math"

	"justdep/interpreter-go/pkg/runtime"
)

// builtinNames is the fixed set of prelude declarations evaluated by
// dispatch instead of by body. Prelude declarations outside this set (the
// prelude may carry ordinary helpers) evaluate their bodies like user code.
var builtinNames = map[string]bool{
	"true":   true,
	"false":  true,
	"bool":   true,
	"int":    true,
	"uint":   true,
	"string": true,
	"type":   true,
	"list":   true,
	"vector": true,
	"tuple":  true,
}

func isBuiltin(name string) bool {
	return builtinNames[name]
}

// callBuiltin constructs the type value named by a builtin from its
// already-evaluated arguments. Arity was validated by the caller against the
// prelude declaration, and the shape unwraps below are the only runtime type
// enforcement in the system.
func callBuiltin(name string, args []runtime.Value) (runtime.Value, error) {
	switch name {
	case "true":
		return runtime.TypeValue{Type: runtime.TrueType{}}, nil
	case "false":
		return runtime.TypeValue{Type: runtime.FalseType{}}, nil
	case "bool":
		return runtime.TypeValue{Type: runtime.BoolType{}}, nil
	case "int":
		return runtime.TypeValue{Type: runtime.IntType{}}, nil
	case "uint":
		return runtime.TypeValue{Type: runtime.UintType{}}, nil
	case "string":
		return runtime.TypeValue{Type: runtime.StringType{}}, nil
	case "type":
		return runtime.TypeValue{Type: runtime.TypeType{}}, nil
	case "list":
		elem, err := unwrapType(args[0])
		if err != nil {
			return nil, err
		}
		return runtime.TypeValue{Type: runtime.ListType{Elem: elem}}, nil
	case "vector":
		elem, err := unwrapType(args[0])
		if err != nil {
			return nil, err
		}
		length, err := unwrapLength(args[1])
		if err != nil {
			return nil, err
		}
		return runtime.TypeValue{Type: runtime.VectorType{Elem: elem, Len: length}}, nil
	case "tuple":
		elems, err := unwrapTypes(args[0])
		if err != nil {
			return nil, err
		}
		return runtime.TypeValue{Type: runtime.TupleType{Elems: elems}}, nil
	default:
		return nil, &EvalError{Kind: ErrNoSuchPreludeFunction, Name: name}
	}
}

func unwrapType(v runtime.Value) (runtime.Type, error) {
	tv, ok := v.(runtime.TypeValue)
	if !ok {
		return nil, &EvalError{Kind: ErrNotType, Value: v}
	}
	return tv.Type, nil
}

func unwrapArray(v runtime.Value) ([]runtime.Value, error) {
	av, ok := v.(*runtime.ArrayValue)
	if !ok {
		return nil, &EvalError{Kind: ErrNotArray, Value: v}
	}
	return av.Elements, nil
}

func unwrapTypes(v runtime.Value) ([]runtime.Type, error) {
	elems, err := unwrapArray(v)
	if err != nil {
		return nil, err
	}
	types := make([]runtime.Type, len(elems))
	for i, el := range elems {
		t, err := unwrapType(el)
		if err != nil {
			return nil, err
		}
		types[i] = t
	}
	return types, nil
}

// unwrapLength narrows an integer value to a non-negative machine int.
func unwrapLength(v runtime.Value) (int, error) {
	iv, ok := v.(runtime.IntegerValue)
	if !ok {
		return 0, &EvalError{Kind: ErrNotInteger, Value: v}
	}
	if !iv.Val.IsInt64() {
		return 0, &EvalError{Kind: ErrOverflow, Value: v}
	}
	n := iv.Val.Int64()
	if n < 0 || n > math.MaxInt {
		return 0, &EvalError{Kind: ErrOverflow, Value: v}
	}
	return int(n), nil
}
