// Package interpreter executes checked justdep programs. Evaluation is
// strict, single-threaded, and trusts the type checker completely: ordinary
// declaration bodies run with no type re-verification, and the only runtime
// shape checks live in the type-former builtins. Each evaluation run owns a
// memo that caches every nullary declaration's value so it is computed at
// most once per run.
package interpreter
