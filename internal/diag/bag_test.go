package diag

import (
	"testing"

	"raster/internal/source"
)

func dummySpan() source.Span {
	return source.Span{Start: 3, End: 7}
}

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	if !b.Add(Diagnostic{Severity: SevWarning, Code: LexUnterminatedString}) {
		t.Fatal("first add must succeed")
	}
	if !b.Add(Diagnostic{Severity: SevInfo, Code: LexInfo}) {
		t.Fatal("second add must succeed")
	}
	if b.Add(Diagnostic{Severity: SevWarning}) {
		t.Error("add past the limit must be rejected")
	}
	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
	if !b.HasWarnings() {
		t.Error("bag has a warning")
	}
}

func TestBagClampsLimit(t *testing.T) {
	b := NewBag(-1)
	if b.Cap() != 0 {
		t.Errorf("Cap = %d, want 0", b.Cap())
	}
	if b.Add(Diagnostic{Severity: SevWarning}) {
		t.Error("zero-capacity bag must reject adds")
	}

	if NewBag(1 << 20).Cap() != 65535 {
		t.Error("limit must clamp to uint16 range")
	}
}

func TestBagReporter(t *testing.T) {
	b := NewBag(4)
	r := BagReporter{Bag: b}
	r.Report(LexUnterminatedString, SevWarning, dummySpan(), "unterminated string literal")

	if b.Len() != 1 {
		t.Fatalf("Len = %d, want 1", b.Len())
	}
	d := b.Items()[0]
	if d.Code != LexUnterminatedString || d.Severity != SevWarning {
		t.Errorf("unexpected diagnostic %+v", d)
	}
	if d.Code.ID() != "R1001" {
		t.Errorf("Code.ID = %q", d.Code.ID())
	}

	// nil Bag — no-op
	BagReporter{}.Report(LexInfo, SevInfo, dummySpan(), "x")
}
