package runtime

import (
	"strconv"
	"strings"
)

// Type classifies runtime values. The checker never materializes these; they
// exist only as evaluation results of the type-former builtins.
type Type interface {
	isType()
	Render() string
}

type FalseType struct{}
type TrueType struct{}
type BoolType struct{}
type IntType struct{}
type UintType struct{}
type StringType struct{}
type TypeType struct{}

// ListType is a homogeneous list of unspecified length.
type ListType struct {
	Elem Type
}

// VectorType is a homogeneous list of a fixed length.
type VectorType struct {
	Elem Type
	Len  int
}

// TupleType is a fixed-length sequence with per-position element types.
type TupleType struct {
	Elems []Type
}

func (FalseType) isType()   {}
func (TrueType) isType()    {}
func (BoolType) isType()    {}
func (IntType) isType()     {}
func (UintType) isType()    {}
func (StringType) isType()  {}
func (TypeType) isType()    {}
func (ListType) isType()    {}
func (VectorType) isType()  {}
func (TupleType) isType()   {}

func (FalseType) Render() string  { return "false" }
func (TrueType) Render() string   { return "true" }
func (BoolType) Render() string   { return "bool" }
func (IntType) Render() string    { return "int" }
func (UintType) Render() string   { return "uint" }
func (StringType) Render() string { return "string" }
func (TypeType) Render() string   { return "type" }

func (t ListType) Render() string {
	return "list(" + t.Elem.Render() + ")"
}

func (t VectorType) Render() string {
	return "vector(" + t.Elem.Render() + ")(" + strconv.Itoa(t.Len) + ")"
}

func (t TupleType) Render() string {
	var b strings.Builder
	b.WriteString("tuple([")
	for i, el := range t.Elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(el.Render())
	}
	b.WriteString("])")
	return b.String()
}
