package lexer

import (
	"raster/internal/opcode"
	"raster/internal/source"
	"raster/internal/token"
)

// Scanner drives the cursor across one source buffer in a single
// left-to-right pass, emitting tokens into the stream and handing each
// completed logical line to the statement classifier.
//
// A Scanner holds mutable per-line counters and must not be shared
// across concurrent scans; use a fresh Scanner per parse run.
type Scanner struct {
	file   *source.File
	cursor Cursor
	opts   Options
	stream *token.Stream

	// учёт текущей логической строки
	lineStart uint32 // индекс первого токена строки в stream
	lineCount uint32 // сколько токенов накоплено на строке
}

// New creates a scanner for the provided file.
func New(file *source.File, opts Options) *Scanner {
	if opts.Mnemonics == nil {
		opts.Mnemonics = opcode.ForCPU(opcode.CPU6502)
	}
	return &Scanner{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		stream: token.NewStream(file.ID),
	}
}

// Scan consumes the whole buffer and returns the completed stream.
// Правила распознавания проверяются в фиксированном порядке; байты,
// которые ни одно правило не берёт, молча пропускаются.
func (sc *Scanner) Scan() *token.Stream {
	for !sc.cursor.EOF() {
		c := sc.cursor.Peek()
		c2 := sc.cursor.PeekSecond()

		switch {
		case c == '\r' || c == '\n':
			sc.scanLineBreak()

		case c == ';':
			sc.scanComment()

		case c == '+' && c2 == '+':
			// '++' — не оператор и не начало референса, пропускаем оба
			sc.cursor.Bump()
			sc.cursor.Bump()

		case isSymbolStart(c) || (c == '+' && isSymbolByte(c2)):
			sc.scanIdentOrReference()

		case c == '!':
			sc.scanDirective()

		case c == '\'' || c == '"':
			sc.scanString()

		default:
			// whitespace, операторы, числа, прочая пунктуация
			sc.cursor.Bump()
		}
	}

	// файл без завершающего перевода строки
	sc.flushLine()
	return sc.stream
}

// emit appends a token, maintains the logical-line counters, and flushes
// the line through the classifier when the token terminates it.
func (sc *Scanner) emit(kind token.Kind, sp source.Span) {
	tok := token.Token{
		Kind: kind,
		Span: sp,
		Text: string(sc.file.Content[sp.Start:sp.End]),
	}
	idx := sc.stream.Push(tok)
	if sc.lineCount == 0 {
		sc.lineStart = idx
		// первый токен строки распознан раньше, чем известна её длина —
		// флаг ставится один раз, задним числом
		sc.stream.Tokens[idx].FirstOnLine = true
	}
	sc.lineCount++

	if tok.Terminates() {
		sc.flushLine()
	}
}

// flushLine hands the accumulated token span to the classifier and
// resets the per-line counters. Safe to call with nothing accumulated.
func (sc *Scanner) flushLine() {
	if sc.lineCount == 0 {
		return
	}
	sc.classifyLine(sc.lineStart, sc.lineCount)
	sc.lineCount = 0
}
