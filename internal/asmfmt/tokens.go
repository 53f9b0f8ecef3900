// Package asmfmt renders scan results for the CLI: token dumps,
// statement/definition listings, and diagnostics.
package asmfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"raster/internal/source"
	"raster/internal/token"
)

type TokenOutput struct {
	Kind        string      `json:"kind"`
	Text        string      `json:"text,omitempty"`
	Span        source.Span `json:"span"`
	FirstOnLine bool        `json:"firstOnLine,omitempty"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, stream *token.Stream, fs *source.FileSet) error {
	for i, tok := range stream.Tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-10s", i+1, tok.Kind.String())

		if tok.Text != "" && tok.Kind != token.LineBreak {
			fmt.Fprintf(w, " %q", tok.Text)
		}

		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)

		if tok.FirstOnLine {
			fmt.Fprint(w, " (first)")
		}

		fmt.Fprintln(w)
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, stream *token.Stream) error {
	output := make([]TokenOutput, 0, len(stream.Tokens))
	for _, tok := range stream.Tokens {
		out := TokenOutput{
			Kind:        tok.Kind.String(),
			Text:        tok.Text,
			Span:        tok.Span,
			FirstOnLine: tok.FirstOnLine,
		}
		if tok.Kind == token.LineBreak {
			out.Text = "" // переводы строк в JSON не экранируем
		}
		output = append(output, out)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
