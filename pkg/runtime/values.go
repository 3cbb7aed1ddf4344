// Package runtime defines the values produced by evaluating justdep
// programs. Functions are not first-class, so the value universe is small:
// integers, strings, arrays, and reified types.
package runtime

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindInteger Kind = iota
	KindString
	KindArray
	KindType
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindType:
		return "type"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values. Render returns the
// form the CLI prints.
type Value interface {
	Kind() Kind
	Render() string
}

// IntegerValue holds an arbitrary-precision integer.
type IntegerValue struct {
	Val *big.Int
}

func (v IntegerValue) Kind() Kind     { return KindInteger }
func (v IntegerValue) Render() string { return v.Val.String() }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind     { return KindString }
func (v StringValue) Render() string { return strconv.Quote(v.Val) }

type ArrayValue struct {
	Elements []Value
}

func (v *ArrayValue) Kind() Kind { return KindArray }

func (v *ArrayValue) Render() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, el := range v.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(el.Render())
	}
	b.WriteByte(']')
	return b.String()
}

// TypeValue is a type reified as a value, the result of evaluating a
// type-former builtin.
type TypeValue struct {
	Type Type
}

func (v TypeValue) Kind() Kind     { return KindType }
func (v TypeValue) Render() string { return v.Type.Render() }

// Strings wraps a string slice as an array of string values, the shape
// eval_main passes to main.
func Strings(ss []string) *ArrayValue {
	elems := make([]Value, len(ss))
	for i, s := range ss {
		elems[i] = StringValue{Val: s}
	}
	return &ArrayValue{Elements: elems}
}
