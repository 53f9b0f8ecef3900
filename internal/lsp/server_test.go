package lsp

import (
	"encoding/json"
	"testing"
)

func TestDidOpenPublishesDiagnostics(t *testing.T) {
	server, out := newTestServer(t)
	uri := testURI(t, "bad.asm")

	openDoc(t, server, uri, "!text 'oops")

	params := readPublished(t, out)
	if params.URI != uri {
		t.Fatalf("uri = %q, want %q", params.URI, uri)
	}
	if len(params.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %+v, want 1", params.Diagnostics)
	}
	got := params.Diagnostics[0]
	if got.Code != "R1001" {
		t.Errorf("code = %q", got.Code)
	}
	if got.Severity != 2 {
		t.Errorf("severity = %d, want warning", got.Severity)
	}
	if got.Range.Start.Line != 0 || got.Range.Start.Character != 7 {
		t.Errorf("range start = %+v", got.Range.Start)
	}
}

func TestDidChangeRescans(t *testing.T) {
	server, out := newTestServer(t)
	uri := testURI(t, "fix.asm")

	openDoc(t, server, uri, "!text 'oops")

	// закрываем строку: предупреждение должно исчезнуть
	change := didChangeTextDocumentParams{
		TextDocument: versionedTextDocumentIdentifier{URI: uri, Version: 2},
		ContentChanges: []textDocumentContentChangeEvent{
			{
				Range: &lspRange{
					Start: position{Line: 0, Character: 11},
					End:   position{Line: 0, Character: 11},
				},
				Text: "'",
			},
		},
	}
	payload, _ := json.Marshal(change)
	out.Reset()
	if err := server.handleDidChange(&rpcMessage{Method: "textDocument/didChange", Params: payload}); err != nil {
		t.Fatalf("didChange: %v", err)
	}

	params := readPublished(t, out)
	if len(params.Diagnostics) != 0 {
		t.Fatalf("diagnostics after fix = %+v", params.Diagnostics)
	}

	doc := server.documentFor(uri)
	if doc == nil || doc.text != "!text 'oops'" {
		t.Fatalf("overlay text not updated: %+v", doc)
	}
}

func TestDidCloseClearsDiagnostics(t *testing.T) {
	server, out := newTestServer(t)
	uri := testURI(t, "gone.asm")

	openDoc(t, server, uri, "!text 'oops")
	out.Reset()

	closeParams := didCloseTextDocumentParams{
		TextDocument: textDocumentIdentifier{URI: uri},
	}
	payload, _ := json.Marshal(closeParams)
	if err := server.handleDidClose(&rpcMessage{Method: "textDocument/didClose", Params: payload}); err != nil {
		t.Fatalf("didClose: %v", err)
	}

	params := readPublished(t, out)
	if len(params.Diagnostics) != 0 {
		t.Fatalf("close must clear diagnostics: %+v", params.Diagnostics)
	}
	if server.documentFor(uri) != nil {
		t.Fatal("document still open after close")
	}
}

func TestExitWithoutShutdown(t *testing.T) {
	server, _ := newTestServer(t)
	err := server.handleMessage(&rpcMessage{Method: "exit"})
	if err != ErrExitWithoutShutdown {
		t.Fatalf("err = %v", err)
	}

	if err := server.handleMessage(&rpcMessage{Method: "shutdown", ID: json.RawMessage("1")}); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if err := server.handleMessage(&rpcMessage{Method: "exit"}); err != ErrExit {
		t.Fatalf("err after shutdown = %v", err)
	}
}
