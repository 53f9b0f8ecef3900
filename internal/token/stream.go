package token

import (
	"raster/internal/source"
)

// Stream is the aggregate one scanning pass produces for one file:
// the ordered token list, the ordered statement list, and the subset of
// statements that are definitions. It is read-only after the pass
// completes and replaced wholesale on re-parse.
type Stream struct {
	File       source.FileID
	Tokens     []Token
	Statements []Statement
	defs       []uint32 // indices into Statements
}

// NewStream creates an empty stream for the given file.
func NewStream(file source.FileID) *Stream {
	return &Stream{File: file}
}

// Push appends a token and returns its index.
func (s *Stream) Push(t Token) uint32 {
	s.Tokens = append(s.Tokens, t)
	return uint32(len(s.Tokens) - 1)
}

// AddStatement registers a classified statement. Definitions are
// additionally tracked in the definitions view.
func (s *Stream) AddStatement(st Statement) {
	idx := uint32(len(s.Statements))
	s.Statements = append(s.Statements, st)
	if st.Kind == StmtDefinition {
		s.defs = append(s.defs, idx)
	}
}

// NumDefinitions returns how many definition statements the file has.
func (s *Stream) NumDefinitions() int {
	return len(s.defs)
}

// Definition returns the i-th definition statement in file order.
func (s *Stream) Definition(i int) Statement {
	return s.Statements[s.defs[i]]
}

// Name returns the defined name a statement introduces, or "" when the
// statement is not a definition.
func (s *Stream) Name(st Statement) string {
	if st.Kind != StmtDefinition || int(st.First) >= len(s.Tokens) {
		return ""
	}
	return s.Tokens[st.First].Text
}

// TokenAt finds the token whose span contains the byte offset.
// Skipped characters belong to no token, so a miss is a normal outcome.
func (s *Stream) TokenAt(off uint32) (Token, bool) {
	// бинпоиск по неубывающим span'ам
	lo, hi := 0, len(s.Tokens)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		t := s.Tokens[mid]
		switch {
		case off < t.Span.Start:
			hi = mid - 1
		case off >= t.Span.End:
			lo = mid + 1
		default:
			return t, true
		}
	}
	return Token{}, false
}
