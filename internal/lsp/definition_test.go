package lsp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"raster/internal/driver"
	"raster/internal/opcode"
)

func TestDefinitionInOpenDocument(t *testing.T) {
	server, _ := newTestServer(t)
	uri := testURI(t, "main.asm")
	openDoc(t, server, uri, "start\n\tjmp start\n")

	locs := server.buildDefinition(uri, position{Line: 1, Character: 6})
	if len(locs) != 1 {
		t.Fatalf("locations = %+v", locs)
	}
	if locs[0].URI != uri {
		t.Errorf("uri = %q", locs[0].URI)
	}
	if locs[0].Range.Start.Line != 0 || locs[0].Range.Start.Character != 0 {
		t.Errorf("range = %+v", locs[0].Range)
	}
}

func TestDefinitionFromWorkspaceIndex(t *testing.T) {
	dir := t.TempDir()
	libPath := filepath.Join(dir, "lib.asm")
	if err := os.WriteFile(libPath, []byte("zp_ptr\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	index, _, err := driver.BuildIndex(context.Background(), driver.IndexOptions{Dir: dir, CPU: opcode.CPU6502})
	if err != nil {
		t.Fatal(err)
	}

	server, _ := newTestServer(t)
	server.index = index

	uri := pathToURI(filepath.Join(dir, "main.asm"))
	openDoc(t, server, uri, "\tlda zp_ptr\n")

	locs := server.buildDefinition(uri, position{Line: 0, Character: 6})
	if len(locs) != 1 {
		t.Fatalf("locations = %+v", locs)
	}
	if locs[0].URI != pathToURI(libPath) {
		t.Errorf("uri = %q, want %q", locs[0].URI, pathToURI(libPath))
	}
	if locs[0].Range.Start.Line != 0 {
		t.Errorf("range = %+v", locs[0].Range)
	}
}

func TestDefinitionUnknownName(t *testing.T) {
	server, _ := newTestServer(t)
	uri := testURI(t, "main.asm")
	openDoc(t, server, uri, "\tjmp nowhere\n")

	if locs := server.buildDefinition(uri, position{Line: 0, Character: 6}); len(locs) != 0 {
		t.Fatalf("locations = %+v", locs)
	}
}
