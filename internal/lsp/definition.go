package lsp

import (
	"encoding/json"

	"fortio.org/safecast"

	"raster/internal/lookup"
	"raster/internal/token"
)

func (s *Server) handleDefinition(msg *rpcMessage) error {
	var params definitionParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, -32602, "invalid params")
		}
	}
	result := s.buildDefinition(params.TextDocument.URI, params.Position)
	if result == nil {
		result = []location{}
	}
	return s.sendResponse(msg.ID, result)
}

func (s *Server) buildDefinition(uri string, pos position) []location {
	doc, tok, ok := s.tokenForPosition(uri, pos)
	if doc == nil {
		return nil
	}

	name := ""
	if ok && tok.Kind == token.Ident {
		name = tok.Text
	} else {
		// между токенами или на пропущенном символе — берём слово из строки
		line, err := safecast.Conv[uint32](pos.Line + 1)
		if err != nil {
			return nil
		}
		word, wordOK := lookup.AtPosition(doc.file, line, pos.Character, lookup.Options{})
		if !wordOK {
			return nil
		}
		name = word
	}

	if span, found := streamDefinition(doc, name); found {
		return []location{{
			URI:   canonicalURI(uri),
			Range: rangeForSpan(doc.file, span),
		}}
	}

	index := s.currentIndex()
	if index == nil {
		return nil
	}
	defs := index.Lookup(name)
	if len(defs) == 0 {
		return nil
	}
	out := make([]location, 0, len(defs))
	for _, def := range defs {
		out = append(out, location{
			URI: pathToURI(def.Path),
			Range: lspRange{
				Start: position{Line: int(def.Span.Line), Character: int(def.Span.Col)},
				End:   position{Line: int(def.Span.Line), Character: int(def.Span.Col) + int(def.Span.End-def.Span.Start)},
			},
		})
	}
	return out
}
