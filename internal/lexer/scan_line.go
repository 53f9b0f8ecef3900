package lexer

import (
	"raster/internal/token"
)

// scanLineBreak handles rule 1: CR, LF, or CRLF as one token.
func (sc *Scanner) scanLineBreak() {
	start := sc.cursor.Mark()
	if sc.cursor.Peek() == '\r' && sc.cursor.PeekSecond() == '\n' {
		// CRLF поглощается одним токеном
		sc.cursor.Bump()
	}
	sc.cursor.BumpLine()
	sc.emit(token.LineBreak, sc.cursor.SpanFrom(start))
}

// scanComment handles rule 2: ';' through the rest of the physical line.
// Комментарий сам завершает логическую строку (см. Token.Terminates).
func (sc *Scanner) scanComment() {
	start := sc.cursor.Mark()
	for !sc.cursor.EOF() && sc.cursor.Peek() != '\r' && sc.cursor.Peek() != '\n' {
		sc.cursor.Bump()
	}
	sc.emit(token.Comment, sc.cursor.SpanFrom(start))
}
