package lookup

import (
	"testing"

	"raster/internal/source"
)

func TestWordAtMiddleOfWord(t *testing.T) {
	line := "    sta screen,x"
	got, ok := WordAt(line, 10, Options{})
	if !ok || got != "screen" {
		t.Errorf("WordAt = %q,%v; want screen", got, ok)
	}
}

func TestWordAtLocalLabelPrefix(t *testing.T) {
	// точка сразу слева включается как префикс метки и
	// останавливает дальнейшее расширение
	line := "bne .loop"
	got, ok := WordAt(line, 6, Options{})
	if !ok || got != ".loop" {
		t.Errorf("WordAt = %q,%v; want .loop", got, ok)
	}
}

func TestWordAtGreedy(t *testing.T) {
	line := "sta $d020,x"
	got, ok := WordAt(line, 5, Options{Greedy: true})
	if !ok || got != "$d020" {
		t.Errorf("greedy WordAt = %q,%v; want $d020", got, ok)
	}
}

func TestWordAtLeftOnly(t *testing.T) {
	line := "screen"
	got, ok := WordAt(line, 2, Options{LeftOnly: true})
	if !ok || got != "scr" {
		t.Errorf("left-only WordAt = %q,%v; want scr", got, ok)
	}
}

func TestWordAtNothingThere(t *testing.T) {
	if _, ok := WordAt("", 0, Options{}); ok {
		t.Error("empty line has no token")
	}
	if _, ok := WordAt("a b", -1, Options{}); ok {
		t.Error("negative offset has no token")
	}
	if got, ok := WordAt("   ", 1, Options{}); ok {
		t.Errorf("whitespace has no token, got %q", got)
	}
}

func TestWordAtClampsPastEnd(t *testing.T) {
	// курсор за концом строки цепляет последнее слово
	got, ok := WordAt("rts", 10, Options{})
	if !ok || got != "rts" {
		t.Errorf("WordAt past end = %q,%v; want rts", got, ok)
	}
}

func TestAtPosition(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("t.asm", []byte("start:\n    jmp start\n")))

	got, ok := AtPosition(f, 2, 9, Options{})
	if !ok || got != "start" {
		t.Errorf("AtPosition = %q,%v; want start", got, ok)
	}

	if _, ok := AtPosition(f, 99, 0, Options{}); ok {
		t.Error("out-of-range line has no token")
	}
}
