package lsp

import (
	"bufio"
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"raster/internal/opcode"
)

// newTestServer возвращает сервер без рабочего индекса и буфер его вывода.
func newTestServer(t *testing.T) (*Server, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	server := NewServer(bytes.NewReader(nil), &out, ServerOptions{
		CPU:                opcode.CPU6502,
		SkipWorkspaceIndex: true,
	})
	return server, &out
}

func testURI(t *testing.T, name string) string {
	t.Helper()
	return pathToURI(filepath.Join(t.TempDir(), name))
}

func openDoc(t *testing.T, server *Server, uri, text string) {
	t.Helper()
	params := didOpenTextDocumentParams{
		TextDocument: textDocumentItem{URI: uri, Version: 1, Text: text},
	}
	payload, err := json.Marshal(params)
	if err != nil {
		t.Fatal(err)
	}
	if err := server.handleDidOpen(&rpcMessage{Method: "textDocument/didOpen", Params: payload}); err != nil {
		t.Fatalf("didOpen: %v", err)
	}
}

// readPublished decodes the next publishDiagnostics notification.
func readPublished(t *testing.T, out *bytes.Buffer) publishDiagnosticsParams {
	t.Helper()
	reader := bufio.NewReader(bytes.NewReader(out.Bytes()))
	var msg rpcMessage
	for {
		payload, err := readMessage(reader)
		if err != nil {
			t.Fatalf("read message: %v", err)
		}
		if err := json.Unmarshal(payload, &msg); err != nil {
			t.Fatalf("decode message: %v", err)
		}
		if msg.Method == "textDocument/publishDiagnostics" {
			break
		}
	}
	var params publishDiagnosticsParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		t.Fatalf("decode params: %v", err)
	}
	return params
}
