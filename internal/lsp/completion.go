package lsp

import (
	"encoding/json"
	"strings"

	"raster/internal/directive"
)

func (s *Server) handleCompletion(msg *rpcMessage) error {
	var params completionParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, -32602, "invalid params")
		}
	}
	result := s.buildCompletion(params.TextDocument.URI, params.Position)
	return s.sendResponse(msg.ID, result)
}

// buildCompletion completes bang directives. Anything else the dialect
// has no closed vocabulary for, so the list stays empty.
func (s *Server) buildCompletion(uri string, pos position) completionList {
	out := completionList{Items: []completionItem{}}
	doc := s.documentFor(uri)
	if doc == nil {
		return out
	}

	query, ok := directiveQueryAt(doc.text, pos)
	if !ok {
		return out
	}
	matches, found := directive.Search(query)
	if !found {
		return out
	}
	for _, m := range matches {
		item := completionItem{
			Label: m,
			Kind:  14, // keyword
		}
		if d, docOK := directive.Doc(m); docOK {
			item.Detail = d
		}
		out.Items = append(out.Items, item)
	}
	return out
}

// directiveQueryAt вырезает из строки префикс директивы перед курсором:
// от '!' до позиции курсора включительно.
func directiveQueryAt(text string, pos position) (string, bool) {
	lines := strings.Split(text, "\n")
	if pos.Line < 0 || pos.Line >= len(lines) {
		return "", false
	}
	line := strings.TrimSuffix(lines[pos.Line], "\r")
	col := pos.Character
	if col > len(line) {
		col = len(line)
	}
	start := col
	for start > 0 {
		c := line[start-1]
		if c == '!' {
			start--
			break
		}
		if !isDirectiveQueryByte(c) {
			return "", false
		}
		start--
	}
	if start >= col || line[start] != '!' {
		return "", false
	}
	return line[start:col], true
}

func isDirectiveQueryByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
