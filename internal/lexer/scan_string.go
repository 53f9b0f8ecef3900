package lexer

import (
	"raster/internal/diag"
	"raster/internal/token"
)

// scanString handles rule 6: both quote styles. The quotes are consumed
// but excluded from the span. Строка без закрывающей кавычки — не ошибка:
// span бежит до конца ввода, потребителю уходит warning.
func (sc *Scanner) scanString() {
	quote := sc.cursor.Bump() // открывающая кавычка

	start := sc.cursor.Mark()
	for !sc.cursor.EOF() && sc.cursor.Peek() != quote {
		if sc.cursor.Peek() == '\n' || sc.cursor.Peek() == '\r' {
			// CRLF внутри строки — один перевод строки, как в scanLineBreak
			if sc.cursor.Peek() == '\r' && sc.cursor.PeekSecond() == '\n' {
				sc.cursor.Bump()
			}
			sc.cursor.BumpLine()
			continue
		}
		sc.cursor.Bump()
	}
	sp := sc.cursor.SpanFrom(start)

	if sc.cursor.EOF() {
		sc.warn(diag.LexUnterminatedString, sp, "unterminated string literal")
	} else {
		sc.cursor.Bump() // закрывающая кавычка
	}
	sc.emit(token.String, sp)
}
