package lexer

import (
	"raster/internal/token"
)

// scanIdentOrReference handles rule 4: identifiers and '+'-prefixed
// macro references. The same '+' byte means two different things
// depending on scanner-loop state, not on the character stream:
//   - first token position on the logical line → одиночный Reference-токен
//     (маркер вызова макроса "+name"), имя сканируется следом;
//   - не первый → бинарный оператор, пропускаем молча.
func (sc *Scanner) scanIdentOrReference() {
	if sc.cursor.Peek() == '+' {
		if sc.lineCount == 0 {
			start := sc.cursor.Mark()
			sc.cursor.Bump()
			sc.emit(token.Reference, sc.cursor.SpanFrom(start))
		} else {
			sc.cursor.Bump()
		}
	}

	start := sc.cursor.Mark()
	for !sc.cursor.EOF() && isSymbolByte(sc.cursor.Peek()) {
		sc.cursor.Bump()
	}
	sc.emit(token.Ident, sc.cursor.SpanFrom(start))
}

// scanDirective handles rule 5: '!' plus the symbol-constituent tail.
// Токен включает сам '!'.
func (sc *Scanner) scanDirective() {
	start := sc.cursor.Mark()
	sc.cursor.Bump() // '!'
	for !sc.cursor.EOF() && isSymbolByte(sc.cursor.Peek()) {
		sc.cursor.Bump()
	}
	sc.emit(token.Macro, sc.cursor.SpanFrom(start))
}
