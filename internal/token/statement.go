package token

// StmtKind classifies what a logical line amounts to.
type StmtKind uint8

const (
	StmtInvalid StmtKind = iota
	// StmtDefinition introduces a named symbol: a label line, or the
	// identifier after !macro/!set/!addr.
	StmtDefinition
	// StmtComment is a line whose first token is a comment.
	StmtComment
)

func (k StmtKind) String() string {
	switch k {
	case StmtDefinition:
		return "Definition"
	case StmtComment:
		return "Comment"
	}
	return "Invalid"
}

// Statement references a run of tokens inside a Stream: First is an index
// into Stream.Tokens, Count the number of tokens covered. For a Definition
// the run is exactly the one Ident token carrying the defined name; the
// directive that may precede it is not part of the statement.
type Statement struct {
	Kind  StmtKind
	First uint32
	Count uint32
}
