package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous or zero-value token.
	Invalid Kind = iota
	// LineBreak represents a LF or CRLF line terminator (CRLF is one token).
	LineBreak
	// Comment represents a ';' comment running to the end of the line.
	Comment
	// Ident represents a label, symbol, or mnemonic identifier.
	Ident
	// Macro represents a bang-prefixed pseudo directive such as '!byte'.
	Macro
	// Reference represents the leading '+' sigil of a macro invocation.
	Reference
	// String represents a quoted string literal without its quotes.
	String
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case LineBreak:
		return "LineBreak"
	case Comment:
		return "Comment"
	case Ident:
		return "Ident"
	case Macro:
		return "Macro"
	case Reference:
		return "Reference"
	case String:
		return "String"
	}
	return "Unknown"
}
