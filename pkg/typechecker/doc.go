// Package typechecker implements justdep's static semantics. It consumes a
// combined Program in dependency order, validating each declaration against
// the signatures recorded for its dependencies. Types are ordinary
// expressions; equality between them is structural identity, and coercion is
// the one-directional subtyping relation in coerce.go. Checking is fail-fast:
// the first offending declaration aborts the whole program with a TypeError.
package typechecker
