package lsp

import "testing"

func TestCompletionDirectivePrefix(t *testing.T) {
	server, _ := newTestServer(t)
	uri := testURI(t, "dir.asm")
	openDoc(t, server, uri, "!b")

	list := server.buildCompletion(uri, position{Line: 0, Character: 2})
	if len(list.Items) == 0 {
		t.Fatal("no completions for !b")
	}
	labels := map[string]string{}
	for _, item := range list.Items {
		labels[item.Label] = item.Detail
	}
	if _, ok := labels["!byte"]; !ok {
		t.Errorf("missing !byte: %v", labels)
	}
	if _, ok := labels["!binary"]; !ok {
		t.Errorf("missing !binary: %v", labels)
	}
	if labels["!byte"] != "emit 8-bit values" {
		t.Errorf("detail for !byte = %q", labels["!byte"])
	}
}

func TestCompletionBangAlone(t *testing.T) {
	server, _ := newTestServer(t)
	uri := testURI(t, "bang.asm")
	openDoc(t, server, uri, "!")

	list := server.buildCompletion(uri, position{Line: 0, Character: 1})
	if len(list.Items) == 0 {
		t.Fatal("bare '!' must offer the whole vocabulary")
	}
}

func TestCompletionNotADirective(t *testing.T) {
	server, _ := newTestServer(t)
	uri := testURI(t, "plain.asm")
	openDoc(t, server, uri, "label")

	list := server.buildCompletion(uri, position{Line: 0, Character: 5})
	if len(list.Items) != 0 {
		t.Fatalf("unexpected completions: %+v", list.Items)
	}
}
