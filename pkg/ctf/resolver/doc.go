// Package resolver implements the CTF metadata field-class reference
// resolver: it walks a trace class's field-class tree and turns every
// sequence length reference and variant tag reference into a validated
// FieldPath, enforcing causality and type compatibility along the way.
//
// The pipeline, leaves first, mirrors spec.md §2's component table:
// lexer -> scope classifier -> descent stack -> target locator ->
// target validator -> driver.
package resolver
