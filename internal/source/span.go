package source

import (
	"fmt"
)

// Span describes a contiguous byte range in a file together with the
// row/column of its first byte. Line and Col are 0-based scanner
// coordinates; display code converts to 1-based via FileSet.Resolve.
// A Span is immutable once the token that owns it has been emitted.
type Span struct {
	File  FileID
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
	Line  uint32
	Col   uint32
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Inc grows a still-open span by n bytes. The first byte's Line/Col stay
// fixed; only the scanner uses this, before the owning token is emitted.
func (s Span) Inc(n uint32) Span {
	s.End += n
	return s
}
