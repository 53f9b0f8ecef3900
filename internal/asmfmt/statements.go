package asmfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"raster/internal/source"
	"raster/internal/token"
)

type StatementOutput struct {
	Kind string `json:"kind"`
	Name string `json:"name,omitempty"`
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

func statementOutputs(stream *token.Stream, fs *source.FileSet, defsOnly bool) []StatementOutput {
	var out []StatementOutput
	for _, st := range stream.Statements {
		if defsOnly && st.Kind != token.StmtDefinition {
			continue
		}
		tok := stream.Tokens[st.First]
		pos, _ := fs.Resolve(tok.Span)
		out = append(out, StatementOutput{
			Kind: st.Kind.String(),
			Name: stream.Name(st),
			Line: pos.Line,
			Col:  pos.Col,
		})
	}
	return out
}

// FormatStatementsPretty выводит статейную разбивку файла: вид, имя
// (для определений) и позиция первого токена.
func FormatStatementsPretty(w io.Writer, stream *token.Stream, fs *source.FileSet, defsOnly bool) error {
	for _, st := range statementOutputs(stream, fs, defsOnly) {
		if st.Name != "" {
			fmt.Fprintf(w, "%-10s %-24s %d:%d\n", st.Kind, st.Name, st.Line, st.Col)
		} else {
			fmt.Fprintf(w, "%-10s %-24s %d:%d\n", st.Kind, "-", st.Line, st.Col)
		}
	}
	return nil
}

// FormatStatementsJSON выводит статейную разбивку в JSON формате
func FormatStatementsJSON(w io.Writer, stream *token.Stream, fs *source.FileSet, defsOnly bool) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(statementOutputs(stream, fs, defsOnly))
}
