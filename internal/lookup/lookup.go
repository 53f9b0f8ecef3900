// Package lookup extracts the symbol-like substring touching a cursor
// position. It works on raw line text and never consults the token
// stream, so hover-style queries need no prior full parse.
package lookup

import (
	"strings"

	"raster/internal/source"
)

// Options tunes how far the extraction expands.
type Options struct {
	// Greedy expands left over anything that is not whitespace instead
	// of only symbol-constituent characters.
	Greedy bool
	// LeftOnly suppresses the rightward expansion.
	LeftOnly bool
}

// isWordByte mirrors the identifier character class, без '.':
// точка слева обрабатывается отдельно как префикс локальной метки.
func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'A' && b <= 'Z') ||
		(b >= 'a' && b <= 'z') ||
		(b >= '0' && b <= '9')
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t'
}

// WordAt returns the symbol-like substring touching the byte offset in
// one line of text. ok is false when nothing usable is there — a normal
// outcome for whitespace and punctuation, not an error.
func WordAt(line string, off int, opts Options) (string, bool) {
	if len(line) == 0 || off < 0 {
		return "", false
	}
	if off >= len(line) {
		off = len(line) - 1
	}

	// влево от курсора
	start := off
	for start > 0 {
		prev := line[start-1]
		if opts.Greedy {
			if isSpaceByte(prev) {
				break
			}
			start--
			continue
		}
		if isWordByte(prev) {
			start--
			continue
		}
		if prev == '.' {
			// префикс локальной метки: включаем и останавливаемся
			start--
		}
		break
	}

	// вправо, если не просили только левую часть
	end := off + 1
	if !opts.LeftOnly {
		for end < len(line) && isWordByte(line[end]) {
			end++
		}
	}

	word := strings.TrimSpace(line[start:end])
	return word, word != ""
}

// AtPosition resolves an editor-style (line, column) position against a
// loaded file and extracts the word there. Line numbers are 1-based, the
// column is a 0-based byte offset into the line.
func AtPosition(f *source.File, lineNum uint32, col int, opts Options) (string, bool) {
	line, ok := f.GetLine(lineNum)
	if !ok {
		return "", false
	}
	return WordAt(line, col, opts)
}
