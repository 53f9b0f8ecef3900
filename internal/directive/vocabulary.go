// Package directive holds the fixed vocabulary of bang-prefixed pseudo
// directives the dialect knows, in declaration order, and the prefix
// search used by completion.
package directive

import "strings"

// names is the full vocabulary without the leading '!', in the order
// search results are reported. The list is compiled in; there is no
// external format or aliasing table.
var names = []string{
	"8", "08", "16", "24", "32",
	"by", "byte", "wo", "word", "le16", "le24", "le32", "be16", "be24", "be32",
	"hex", "fill", "fi", "skip", "align",
	"pet", "raw", "scr", "scrxor", "text", "tx", "cbm", "convtab", "ct",
	"to", "source", "src", "binary", "bin",
	"zone", "zn", "sl", "svl", "symbollist",
	"if", "ifdef", "ifndef", "else", "do", "until", "while", "for", "end",
	"macro", "set", "addr", "address",
	"pseudopc", "realpc", "initmem", "xor",
	"cpu", "al", "as", "rl", "rs",
	"warn", "error", "serious", "eof", "endoffile",
}

// Names returns the vocabulary in declaration order, bang included.
func Names() []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = "!" + n
	}
	return out
}

// Search collects every directive whose bang-prefixed name starts with
// query. The match is a literal, case-sensitive prefix test, so the query
// itself must start with '!'. ok is false when nothing matched — an
// expected outcome, not an error.
func Search(query string) (matches []string, ok bool) {
	if len(query) == 0 || query[0] != '!' {
		return nil, false
	}
	for _, n := range names {
		candidate := "!" + n
		if strings.HasPrefix(candidate, query) {
			matches = append(matches, candidate)
		}
	}
	return matches, len(matches) > 0
}

// docs carries one-line summaries for hover and completion details.
// Not every directive needs one; absence just means no detail text.
var docs = map[string]string{
	"byte":     "emit 8-bit values",
	"by":       "emit 8-bit values (short form)",
	"word":     "emit 16-bit little-endian values",
	"wo":       "emit 16-bit little-endian values (short form)",
	"fill":     "fill a block with a byte value",
	"align":    "pad until the program counter matches a mask",
	"pet":      "emit text converted to PETSCII",
	"scr":      "emit text converted to screen codes",
	"text":     "emit text using the active conversion table",
	"to":       "set the output file name and format",
	"source":   "assemble another source file in place",
	"binary":   "include a binary file verbatim",
	"zone":     "open a new zone for local labels",
	"if":       "assemble the block only if the condition holds",
	"ifdef":    "assemble the block only if the symbol is defined",
	"for":      "repeat the block with a loop symbol",
	"macro":    "define a macro; invoke it with a '+name' reference",
	"set":      "define or reassign a symbol value",
	"addr":     "mark following symbols as addresses",
	"pseudopc": "assemble as if the program counter were elsewhere",
	"cpu":      "select the instruction set to accept",
	"al":       "assume 16-bit accumulator (65816)",
	"as":       "assume 8-bit accumulator (65816)",
	"eof":      "stop assembling this file here",
}

// Doc returns the summary for a directive name, with or without the bang.
func Doc(name string) (string, bool) {
	d, ok := docs[strings.TrimPrefix(name, "!")]
	return d, ok
}
