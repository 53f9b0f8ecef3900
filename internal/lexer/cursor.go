package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"raster/internal/source"
)

// Cursor представляет собой позицию в файле: байтовое смещение плюс
// производные строка/колонка (0-based).
type Cursor struct {
	File *source.File
	Off  uint32
	Line uint32
	Col  uint32
	// Limit is the exclusive upper bound for Off; defaults to len(File.Content).
	Limit uint32
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Limit: limit,
	}
}

// EOF проверяет, достигнут ли конец файла.
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek читает текущий байт, если есть, иначе возвращает 0.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// PeekSecond читает байт сразу за текущим, иначе возвращает 0.
func (c *Cursor) PeekSecond() byte {
	if c.Off+1 >= c.Limit {
		return 0
	}
	return c.File.Content[c.Off+1]
}

// Bump перемещает курсор на один байт вперед в пределах строки и
// возвращает прочитанный байт. На EOF — no-op, возвращает 0.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	c.Col++
	return b
}

// BumpLine перемещает курсор через завершитель строки: смещение +1,
// строка +1, колонка в ноль. На EOF — no-op.
func (c *Cursor) BumpLine() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	c.Line++
	c.Col = 0
	return b
}

// Mark это метка, чтобы быстро получать Span читаемого фрагмента.
// Фиксирует позицию первого символа будущего токена.
type Mark struct {
	off  uint32
	line uint32
	col  uint32
}

// Mark сохраняет текущую позицию курсора.
func (c *Cursor) Mark() Mark {
	return Mark{off: c.Off, line: c.Line, col: c.Col}
}

// SpanFrom получает Span для фрагмента, начиная с метки.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File.ID,
		Start: m.off,
		End:   c.Off,
		Line:  m.line,
		Col:   m.col,
	}
}
