// Package prelude embeds the builtin declarations loaded before any user
// script. The type formers are declared with self-referential bodies; the
// evaluator dispatches them by name and never runs those bodies. `id` is an
// ordinary prelude helper whose body does run.
package prelude

import (
	_ "embed"
	"fmt"

	"justdep/interpreter-go/pkg/ast"
	"justdep/interpreter-go/pkg/parser"
)

//go:embed prelude.jd
var source string

// Source returns the prelude source text.
func Source() string {
	return source
}

// Script parses the embedded prelude. The source is compiled in, so a parse
// failure means the build itself is broken.
func Script() (*ast.Script, error) {
	script, err := parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("prelude: %w", err)
	}
	return script, nil
}
