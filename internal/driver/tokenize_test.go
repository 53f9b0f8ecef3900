package driver

import (
	"os"
	"path/filepath"
	"testing"

	"raster/internal/opcode"
	"raster/internal/token"
)

func TestTokenizeBytes(t *testing.T) {
	res := TokenizeBytes("main.asm", []byte("start: lda #$01\n"), opcode.CPU6502, 16)

	if res.Stream == nil || len(res.Stream.Tokens) == 0 {
		t.Fatal("empty stream")
	}
	if got := res.Stream.NumDefinitions(); got != 1 {
		t.Fatalf("definitions = %d, want 1", got)
	}
	def := res.Stream.Definition(0)
	if name := res.Stream.Name(def); name != "start" {
		t.Errorf("definition name = %q", name)
	}
	if res.Bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", res.Bag.Items())
	}
}

func TestTokenizeBytesUnterminatedString(t *testing.T) {
	res := TokenizeBytes("bad.asm", []byte("!text 'oops"), opcode.CPU6502, 16)
	if !res.Bag.HasWarnings() {
		t.Fatal("expected unterminated string warning")
	}
}

func TestTokenizeFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "boot.asm")
	if err := os.WriteFile(path, []byte("; boot\nirq_handler\n\trti\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := Tokenize(path, opcode.CPU6502, 16)
	if err != nil {
		t.Fatal(err)
	}
	if res.File.Path == "" {
		t.Error("file path not recorded")
	}

	var defs []string
	for i := 0; i < res.Stream.NumDefinitions(); i++ {
		defs = append(defs, res.Stream.Name(res.Stream.Definition(i)))
	}
	if len(defs) != 1 || defs[0] != "irq_handler" {
		t.Errorf("defs = %v", defs)
	}
	// rti — мнемоника, не определение
	for _, st := range res.Stream.Statements {
		if st.Kind == token.StmtDefinition && res.Stream.Name(st) == "rti" {
			t.Error("mnemonic classified as definition")
		}
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	if _, err := Tokenize(filepath.Join(t.TempDir(), "nope.asm"), opcode.CPU6502, 16); err == nil {
		t.Fatal("expected error for missing file")
	}
}
