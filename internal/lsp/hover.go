package lsp

import (
	"encoding/json"
	"fmt"

	"fortio.org/safecast"

	"raster/internal/directive"
	"raster/internal/lookup"
	"raster/internal/source"
	"raster/internal/token"
)

func (s *Server) handleHover(msg *rpcMessage) error {
	var params hoverParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, -32602, "invalid params")
		}
	}
	result := s.buildHover(params.TextDocument.URI, params.Position)
	return s.sendResponse(msg.ID, result)
}

func (s *Server) buildHover(uri string, pos position) *hover {
	doc, tok, ok := s.tokenForPosition(uri, pos)
	if doc == nil {
		return nil
	}
	if !ok {
		// курсор между токенами: пробуем вытащить слово из сырой строки
		return s.hoverByWord(doc, pos)
	}

	switch tok.Kind {
	case token.Macro:
		return s.hoverDirective(doc, tok)
	case token.Ident:
		if s.mnemonics.IsMnemonic(tok.Text) {
			return s.hoverMnemonic(doc, tok)
		}
		return s.hoverSymbol(doc, tok.Span, tok.Text)
	}
	return nil
}

func (s *Server) hoverDirective(doc *document, tok token.Token) *hover {
	value := "```\n" + tok.Text + "\n```"
	if d, ok := directive.Doc(tok.Text); ok {
		value += "\n" + d
	}
	return s.markdownHover(doc, tok.Span, value)
}

func (s *Server) hoverMnemonic(doc *document, tok token.Token) *hover {
	value := fmt.Sprintf("```\n%s\n```\n%s instruction", tok.Text, s.mnemonics.CPU())
	return s.markdownHover(doc, tok.Span, value)
}

// hoverSymbol ищет определение: сначала в текущем буфере, затем в
// индексе рабочей директории.
func (s *Server) hoverSymbol(doc *document, span source.Span, name string) *hover {
	if defSpan, ok := streamDefinition(doc, name); ok {
		start, _ := doc.fileSet.Resolve(defSpan)
		value := fmt.Sprintf("```\n%s\n```\nDefined in this file, line %d", name, start.Line)
		return s.markdownHover(doc, span, value)
	}
	if index := s.currentIndex(); index != nil {
		if defs := index.Lookup(name); len(defs) > 0 {
			value := fmt.Sprintf("```\n%s\n```\nDefined in %s:%d", name, defs[0].Path, defs[0].Span.Line+1)
			return s.markdownHover(doc, span, value)
		}
	}
	return nil
}

func (s *Server) hoverByWord(doc *document, pos position) *hover {
	line, err := safecast.Conv[uint32](pos.Line + 1)
	if err != nil {
		return nil
	}
	word, ok := lookup.AtPosition(doc.file, line, pos.Character, lookup.Options{})
	if !ok {
		return nil
	}
	return s.hoverSymbol(doc, source.Span{File: doc.file.ID}, word)
}

func (s *Server) markdownHover(doc *document, span source.Span, value string) *hover {
	h := &hover{
		Contents: markupContent{Kind: "markdown", Value: value},
	}
	if !span.Empty() {
		r := rangeForSpan(doc.file, span)
		h.Range = &r
	}
	return h
}

// streamDefinition returns the span of a name defined in the document.
func streamDefinition(doc *document, name string) (source.Span, bool) {
	for i := 0; i < doc.stream.NumDefinitions(); i++ {
		st := doc.stream.Definition(i)
		if doc.stream.Name(st) == name {
			return doc.stream.Tokens[st.First].Span, true
		}
	}
	return source.Span{}, false
}
