package token

import (
	"raster/internal/source"
)

// Token represents a single source token with its location.
// FirstOnLine is the one deliberately mutable field: the scanner recognizes
// a token before it knows how long the logical line will be, so the flag is
// written once, post hoc, when the line boundary is found.
type Token struct {
	Kind        Kind
	Span        source.Span
	Text        string
	FirstOnLine bool
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Terminates reports whether the token ends accumulation of its logical
// line. A Comment covers the rest of the line, so it terminates too.
func (t Token) Terminates() bool {
	return t.Kind == LineBreak || t.Kind == Comment
}
