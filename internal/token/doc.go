// Package token defines lexical tokens and statements for the raster assembler dialect.
// Invariants:
//   - Token.Text is a copy of the source bytes the span covers (for String tokens,
//     the quotes are consumed but excluded from both span and text).
//   - Spans never overlap and appear in non-decreasing offset order; characters the
//     scanner skips (whitespace, operators, numerals) belong to no token at all.
//   - Every token belongs to exactly one logical line; FirstOnLine is written once,
//     after the fact, when the scanner learns where the line started.
//   - A Statement never outlives the Stream it indexes into.
package token
