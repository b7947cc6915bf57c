// Package rerrors defines the resolver's error taxonomy, grounded on
// pkg/graft's GraftError/ErrorType split: a closed set of categories, each
// carrying enough context (source path, root scope, computed target path)
// to render a standalone diagnostic without the caller re-deriving it.
package rerrors

import (
	"fmt"

	"github.com/antmicro/ctfresolve/internal/utils/ansi"
)

// ErrorKind categorizes a resolve failure per spec.md §7.
type ErrorKind string

const (
	// KindLexical is an empty path token (leading/trailing/doubled '.').
	KindLexical ErrorKind = "lexical"
	// KindScopePrecondition is a missing stream/event class, or an
	// already-translated layer reached by a relative-path attempt.
	KindScopePrecondition ErrorKind = "scope_precondition"
	// KindLookup is a token that names no member/option of the current compound.
	KindLookup ErrorKind = "lookup"
	// KindCausality is a target that is not strictly before its source, or
	// that is an ancestor/descendant of it.
	KindCausality ErrorKind = "causality"
	// KindType is a variant tag target that is not an enumeration, or a
	// sequence length target that is not an unsigned integer.
	KindType ErrorKind = "type"
	// KindInternal covers allocation-class failures in the stack or token list.
	KindInternal ErrorKind = "internal"
)

// ResolveError is the resolver's single error type. The resolver returns it
// unchanged from the point where it is raised up to the caller of Resolve;
// no propagation step adds a cause to it. Cause is set only by Wrap and is
// exposed through Unwrap so errors.Is/errors.As work against it the way they
// do against graft.GraftError.Unwrap.
type ResolveError struct {
	Kind ErrorKind

	// SourcePath is the original, unsplit path expression string.
	SourcePath string

	// RootScope names the classified scope, when classification succeeded.
	RootScope string

	// TargetPath is the computed target field path, when one was computed
	// before the failure (e.g. every error raised by the target validator
	// has one; lexical errors and the locator's lookup and causality errors
	// never do).
	TargetPath string

	Message string
	Cause   error
}

// Error renders the diagnostic, colorized the way pkg/graft/errors.go's
// GraftError/WarningError render theirs, via internal/utils/ansi.
func (e *ResolveError) Error() string {
	msg := ansi.Sprintf("@R{%s}", e.Message)
	if e.SourcePath != "" {
		msg = ansi.Sprintf("@c{%s}: %s", e.SourcePath, msg)
	}
	if e.RootScope != "" {
		msg = ansi.Sprintf("%s @m{(scope %s)}", msg, e.RootScope)
	}
	if e.TargetPath != "" {
		msg = ansi.Sprintf("%s @y{-> %s}", msg, e.TargetPath)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Cause.Error())
	}
	return msg
}

// Unwrap exposes the nested cause for errors.Is/errors.As.
func (e *ResolveError) Unwrap() error {
	return e.Cause
}

// New builds a ResolveError of the given kind.
func New(kind ErrorKind, sourcePath, message string) *ResolveError {
	return &ResolveError{Kind: kind, SourcePath: sourcePath, Message: message}
}

// Wrap builds a ResolveError of the given kind, nesting cause.
func Wrap(kind ErrorKind, sourcePath, message string, cause error) *ResolveError {
	return &ResolveError{Kind: kind, SourcePath: sourcePath, Message: message, Cause: cause}
}

// WithScope returns a copy of e with RootScope set, for propagation steps
// that learn the scope only after the error is first raised.
func (e *ResolveError) WithScope(scope string) *ResolveError {
	c := *e
	c.RootScope = scope
	return &c
}

// WithTarget returns a copy of e with TargetPath set.
func (e *ResolveError) WithTarget(target string) *ResolveError {
	c := *e
	c.TargetPath = target
	return &c
}

// Is reports whether err is a *ResolveError of the given kind, so callers
// can branch on category without a type assertion at every call site.
func Is(err error, kind ErrorKind) bool {
	re, ok := err.(*ResolveError)
	return ok && re.Kind == kind
}
