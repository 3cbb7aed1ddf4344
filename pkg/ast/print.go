package ast

import "strings"

// String renders the expression in surface syntax: calls print each argument
// in its own parentheses (`vector(int)(3)`), matching what the parser accepts.
func String(e Expr) string {
	var b strings.Builder
	write(&b, e)
	return b.String()
}

func write(b *strings.Builder, e Expr) {
	switch e := e.(type) {
	case *IntLit:
		b.WriteString(e.Value.String())
	case *Var:
		b.WriteString(e.Name)
	case *Call:
		b.WriteString(e.Name)
		for _, a := range e.Args {
			b.WriteByte('(')
			write(b, a)
			b.WriteByte(')')
		}
	case *ArrayLit:
		b.WriteByte('[')
		for i, el := range e.Elems {
			if i > 0 {
				b.WriteString(", ")
			}
			write(b, el)
		}
		b.WriteByte(']')
	}
}
