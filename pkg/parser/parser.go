// Package parser turns justdep source text into the AST. It is a small
// backtracking recursive-descent parser; failed alternatives keep the error
// recorded deepest into the input, so diagnostics point at the first byte the
// parser could not make sense of.
//
// Grammar:
//
//	script := decl+
//	decl   := ident arg* ':' expr '=' expr ';'
//	arg    := '(' ident ':' expr ')'
//	expr   := ident tight+ | tight
//	tight  := number | ident | array | '(' expr ')'
//	array  := '[' (expr (',' expr)*)? ']'
//
// A call is written as juxtaposed parenthesized arguments: `vector(int)(3)`.
package parser

import (
	"math/big"
	"strings"

	"justdep/interpreter-go/pkg/ast"
)

// Parse parses one script. On failure it returns a *ParseError positioned at
// the deepest point reached by any alternative.
func Parse(src string) (*ast.Script, error) {
	p := &parser{src: src, failPos: -1}
	p.ws()
	script := &ast.Script{}
	for p.pos < len(p.src) {
		name, decl, ok := p.decl()
		if !ok {
			return nil, p.err()
		}
		script.Decls = append(script.Decls, ast.ScriptDecl{Name: name, Decl: decl})
	}
	if len(script.Decls) == 0 {
		p.fail("declaration")
		return nil, p.err()
	}
	return script, nil
}

// ParseExpr parses a single expression consuming the whole input. The REPL
// uses it for inputs that are not declarations.
func ParseExpr(src string) (ast.Expr, error) {
	p := &parser{src: src, failPos: -1}
	p.ws()
	e, ok := p.expr()
	if !ok {
		return nil, p.err()
	}
	if p.pos < len(p.src) {
		p.fail("end of input")
		return nil, p.err()
	}
	return e, nil
}

type parser struct {
	src     string
	pos     int
	failPos int
	failMsg string
}

func (p *parser) err() *ParseError {
	pos := p.failPos
	if pos < 0 {
		pos = p.pos
	}
	return &ParseError{Text: p.src, Remaining: len(p.src) - pos, Message: p.failMsg}
}

// fail records an expectation at the current position. Deeper failures win;
// failures at the same position merge their expectations.
func (p *parser) fail(expected string) {
	switch {
	case p.pos > p.failPos:
		p.failPos = p.pos
		p.failMsg = expected
	case p.pos == p.failPos && !strings.Contains(p.failMsg, expected):
		p.failMsg += " | " + expected
	}
}

func (p *parser) ws() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) symbol(sym string) bool {
	if !strings.HasPrefix(p.src[p.pos:], sym) {
		p.fail(`"` + sym + `"`)
		return false
	}
	p.pos += len(sym)
	p.ws()
	return true
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentByte(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func (p *parser) ident() (string, bool) {
	if p.pos >= len(p.src) || !isIdentStart(p.src[p.pos]) {
		p.fail("identifier")
		return "", false
	}
	start := p.pos
	for p.pos < len(p.src) && isIdentByte(p.src[p.pos]) {
		p.pos++
	}
	word := p.src[start:p.pos]
	p.ws()
	return word, true
}

func (p *parser) number() (*big.Int, bool) {
	start := p.pos
	i := p.pos
	if i < len(p.src) && p.src[i] == '-' {
		i++
	}
	digits := i
	for i < len(p.src) && p.src[i] >= '0' && p.src[i] <= '9' {
		i++
	}
	if i == digits {
		p.fail("integer")
		return nil, false
	}
	p.pos = i
	n, _ := new(big.Int).SetString(p.src[start:i], 10)
	p.ws()
	return n, true
}

func (p *parser) decl() (string, *ast.Decl, bool) {
	name, ok := p.ident()
	if !ok {
		return "", nil, false
	}
	decl := &ast.Decl{}
	for p.pos < len(p.src) && p.src[p.pos] == '(' {
		arg, ok := p.arg()
		if !ok {
			return "", nil, false
		}
		decl.Args = append(decl.Args, arg)
	}
	if !p.symbol(":") {
		return "", nil, false
	}
	if decl.Ret, ok = p.expr(); !ok {
		return "", nil, false
	}
	if !p.symbol("=") {
		return "", nil, false
	}
	if decl.Body, ok = p.expr(); !ok {
		return "", nil, false
	}
	if !p.symbol(";") {
		return "", nil, false
	}
	return name, decl, true
}

func (p *parser) arg() (ast.Arg, bool) {
	if !p.symbol("(") {
		return ast.Arg{}, false
	}
	name, ok := p.ident()
	if !ok {
		return ast.Arg{}, false
	}
	if !p.symbol(":") {
		return ast.Arg{}, false
	}
	typ, ok := p.expr()
	if !ok {
		return ast.Arg{}, false
	}
	if !p.symbol(")") {
		return ast.Arg{}, false
	}
	return ast.Arg{Name: name, Type: typ}, true
}

func (p *parser) expr() (ast.Expr, bool) {
	save := p.pos
	if name, ok := p.ident(); ok {
		var args []ast.Expr
		for {
			argSave := p.pos
			arg, ok := p.tight()
			if !ok {
				p.pos = argSave
				break
			}
			args = append(args, arg)
		}
		if len(args) > 0 {
			return &ast.Call{Name: name, Args: args}, true
		}
		return &ast.Var{Name: name}, true
	}
	p.pos = save
	return p.tight()
}

func (p *parser) tight() (ast.Expr, bool) {
	save := p.pos
	if n, ok := p.number(); ok {
		return &ast.IntLit{Value: n}, true
	}
	p.pos = save
	if name, ok := p.ident(); ok {
		return &ast.Var{Name: name}, true
	}
	p.pos = save
	if p.pos < len(p.src) && p.src[p.pos] == '[' {
		return p.array()
	}
	if !p.symbol("(") {
		return nil, false
	}
	e, ok := p.expr()
	if !ok {
		return nil, false
	}
	if !p.symbol(")") {
		return nil, false
	}
	return e, true
}

func (p *parser) array() (ast.Expr, bool) {
	if !p.symbol("[") {
		return nil, false
	}
	arr := &ast.ArrayLit{}
	if p.pos < len(p.src) && p.src[p.pos] == ']' {
		p.symbol("]")
		return arr, true
	}
	for {
		e, ok := p.expr()
		if !ok {
			return nil, false
		}
		arr.Elems = append(arr.Elems, e)
		if p.pos < len(p.src) && p.src[p.pos] == ',' {
			p.symbol(",")
			continue
		}
		break
	}
	if !p.symbol("]") {
		return nil, false
	}
	return arr, true
}
