package runtime

import (
	"math/big"
	"testing"
)

func TestRenderValues(t *testing.T) {
	cases := []struct {
		value Value
		want  string
	}{
		{IntegerValue{Val: big.NewInt(-42)}, "-42"},
		{StringValue{Val: `say "hi"`}, `"say \"hi\""`},
		{&ArrayValue{}, "[]"},
		{&ArrayValue{Elements: []Value{
			IntegerValue{Val: big.NewInt(1)},
			StringValue{Val: "a"},
		}}, `[1, "a"]`},
		{Strings([]string{"x", "y"}), `["x", "y"]`},
		{TypeValue{Type: UintType{}}, "uint"},
		{TypeValue{Type: ListType{Elem: StringType{}}}, "list(string)"},
		{TypeValue{Type: VectorType{Elem: IntType{}, Len: 3}}, "vector(int)(3)"},
		{TypeValue{Type: TupleType{Elems: []Type{UintType{}, BoolType{}}}}, "tuple([uint, bool])"},
		{TypeValue{Type: TupleType{}}, "tuple([])"},
	}
	for _, c := range cases {
		if got := c.value.Render(); got != c.want {
			t.Fatalf("expected %q, got %q", c.want, got)
		}
	}
}

func TestValueKinds(t *testing.T) {
	cases := []struct {
		value Value
		kind  Kind
		name  string
	}{
		{IntegerValue{Val: big.NewInt(0)}, KindInteger, "integer"},
		{StringValue{}, KindString, "string"},
		{&ArrayValue{}, KindArray, "array"},
		{TypeValue{Type: BoolType{}}, KindType, "type"},
	}
	for _, c := range cases {
		if c.value.Kind() != c.kind {
			t.Fatalf("%T: wrong kind %v", c.value, c.value.Kind())
		}
		if c.value.Kind().String() != c.name {
			t.Fatalf("%T: wrong kind name %q", c.value, c.value.Kind().String())
		}
	}
}
