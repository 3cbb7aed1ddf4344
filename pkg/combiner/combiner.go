// Package combiner merges the builtin prelude with one user script into a
// single Program: one namespace, a dependency graph over declaration names,
// and a topological order with every form of recursion rejected statically.
package combiner

import (
	"fmt"

	"justdep/interpreter-go/pkg/ast"
)

// ErrorKind discriminates combine failures.
type ErrorKind int

const (
	// ErrDuplicateDecl reports a name declared twice across the merged
	// prelude+user namespace.
	ErrDuplicateDecl ErrorKind = iota
	// ErrNoSuchDecl reports a reference to a name with no declaration. The
	// combiner does not distinguish call targets from variable references
	// when walking dependencies, so unresolved variables surface here too.
	ErrNoSuchDecl
	// ErrRecursion reports a dependency cycle, including self-reference.
	ErrRecursion
)

// CombineError is the fatal error family of the combine stage.
type CombineError struct {
	Kind ErrorKind
	Name string
}

func (e *CombineError) Error() string {
	switch e.Kind {
	case ErrDuplicateDecl:
		return fmt.Sprintf("combine: duplicate declaration %q", e.Name)
	case ErrNoSuchDecl:
		return fmt.Sprintf("combine: no such declaration %q", e.Name)
	case ErrRecursion:
		return fmt.Sprintf("combine: recursive declaration %q", e.Name)
	default:
		return fmt.Sprintf("combine: unknown error for %q", e.Name)
	}
}

// Decl is a declaration owned by a Program, tagged with its origin.
type Decl struct {
	Args    []ast.Arg
	Ret     ast.Expr
	Body    ast.Expr
	Prelude bool
}

// Program is the merged, dependency-ordered declaration set. Order is a valid
// topological sort: every declaration's dependencies precede it, and all
// prelude names precede all user names. The program is immutable once built.
type Program struct {
	Order []string
	Decls map[string]*Decl
}

type mark int

const (
	unvisited mark = iota
	visiting
	visited
)

// Combine merges prelude and user scripts. The prelude's own declaration
// order is trusted verbatim and not checked for cycles, which is what lets
// self-referential builtin declarations such as `type : type = type;` exist.
// User declarations are visited depth-first in source order.
func Combine(prelude, user *ast.Script) (*Program, error) {
	program := &Program{Decls: make(map[string]*Decl)}
	for _, sd := range prelude.Decls {
		if err := program.insert(sd, true); err != nil {
			return nil, err
		}
	}
	for _, sd := range user.Decls {
		if err := program.insert(sd, false); err != nil {
			return nil, err
		}
	}

	marks := make(map[string]mark, len(program.Decls))
	for _, sd := range prelude.Decls {
		program.Order = append(program.Order, sd.Name)
		marks[sd.Name] = visited
	}
	for _, sd := range user.Decls {
		if err := program.visit(sd.Name, marks); err != nil {
			return nil, err
		}
	}
	return program, nil
}

func (p *Program) insert(sd ast.ScriptDecl, prelude bool) error {
	if _, exists := p.Decls[sd.Name]; exists {
		return &CombineError{Kind: ErrDuplicateDecl, Name: sd.Name}
	}
	p.Decls[sd.Name] = &Decl{
		Args:    sd.Decl.Args,
		Ret:     sd.Decl.Ret,
		Body:    sd.Decl.Body,
		Prelude: prelude,
	}
	return nil
}

// visit runs the three-state depth-first ordering walk. Hitting a name that
// is still in progress means the dependency graph has a cycle through it.
func (p *Program) visit(name string, marks map[string]mark) error {
	switch marks[name] {
	case visited:
		return nil
	case visiting:
		return &CombineError{Kind: ErrRecursion, Name: name}
	}
	decl, ok := p.Decls[name]
	if !ok {
		return &CombineError{Kind: ErrNoSuchDecl, Name: name}
	}
	marks[name] = visiting
	for _, dep := range dependencies(decl) {
		if err := p.visit(dep, marks); err != nil {
			return err
		}
	}
	marks[name] = visited
	p.Order = append(p.Order, name)
	return nil
}

// dependencies collects the names a declaration references, walking arg types
// in argument order, then the return type, then the body. The result is
// de-duplicated in first-occurrence order. The declaration's own argument
// names are excluded: locals shadow globals, and the type checker owns
// diagnostics for arguments used out of telescope order.
func dependencies(d *Decl) []string {
	locals := make(map[string]bool, len(d.Args))
	for _, arg := range d.Args {
		locals[arg.Name] = true
	}
	var deps []string
	seen := make(map[string]bool)
	add := func(name string) {
		if !locals[name] && !seen[name] {
			seen[name] = true
			deps = append(deps, name)
		}
	}
	for _, arg := range d.Args {
		collectNames(arg.Type, add)
	}
	collectNames(d.Ret, add)
	collectNames(d.Body, add)
	return deps
}

func collectNames(e ast.Expr, add func(string)) {
	switch e := e.(type) {
	case *ast.Var:
		add(e.Name)
	case *ast.Call:
		add(e.Name)
		for _, a := range e.Args {
			collectNames(a, add)
		}
	case *ast.ArrayLit:
		for _, el := range e.Elems {
			collectNames(el, add)
		}
	}
}
