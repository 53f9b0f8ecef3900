package lexer_test

import (
	"testing"

	"raster/internal/diag"
	"raster/internal/lexer"
	"raster/internal/opcode"
	"raster/internal/source"
	"raster/internal/token"
)

// makeTestScanner создаёт сканер для тестовой строки
func makeTestScanner(input string) (*lexer.Scanner, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.asm", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(16)
	sc := lexer.New(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	return sc, bag
}

// scanAll прогоняет один полный проход
func scanAll(t *testing.T, input string) *token.Stream {
	t.Helper()
	sc, _ := makeTestScanner(input)
	return sc.Scan()
}

// expectKinds проверяет последовательность видов токенов
func expectKinds(t *testing.T, input string, expected []token.Kind) *token.Stream {
	t.Helper()
	stream := scanAll(t, input)

	if len(stream.Tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v",
			len(expected), len(stream.Tokens), input, kindsOf(stream))
	}
	for i, tok := range stream.Tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)",
				i, expected[i], tok.Kind, tok.Text)
		}
	}
	return stream
}

func kindsOf(s *token.Stream) []token.Kind {
	out := make([]token.Kind, len(s.Tokens))
	for i, tok := range s.Tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestEmptyInput(t *testing.T) {
	stream := scanAll(t, "")
	if len(stream.Tokens) != 0 || len(stream.Statements) != 0 {
		t.Errorf("empty input must produce nothing, got %d tokens, %d statements",
			len(stream.Tokens), len(stream.Statements))
	}
}

func TestLineBreaks(t *testing.T) {
	// CRLF — один токен длиной два, LF — длиной один
	stream := expectKinds(t, "\r\n", []token.Kind{token.LineBreak})
	if stream.Tokens[0].Span.Len() != 2 {
		t.Errorf("CRLF span len = %d, want 2", stream.Tokens[0].Span.Len())
	}

	stream = expectKinds(t, "\n", []token.Kind{token.LineBreak})
	if stream.Tokens[0].Span.Len() != 1 {
		t.Errorf("LF span len = %d, want 1", stream.Tokens[0].Span.Len())
	}

	// одинокий CR — тоже перевод строки
	expectKinds(t, "\r", []token.Kind{token.LineBreak})
}

func TestCommentRunsToEndOfLine(t *testing.T) {
	stream := expectKinds(t, "; hello world\nrts", []token.Kind{
		token.Comment, token.LineBreak, token.Ident,
	})
	if stream.Tokens[0].Text != "; hello world" {
		t.Errorf("comment text = %q", stream.Tokens[0].Text)
	}
}

func TestLabelLine(t *testing.T) {
	stream := expectKinds(t, "label: !byte 1\n", []token.Kind{
		token.Ident, token.Macro, token.LineBreak,
	})
	if stream.Tokens[0].Text != "label" {
		t.Errorf("label text = %q", stream.Tokens[0].Text)
	}
	if stream.Tokens[1].Text != "!byte" {
		t.Errorf("directive text = %q", stream.Tokens[1].Text)
	}

	if len(stream.Statements) == 0 || stream.NumDefinitions() != 1 {
		t.Fatalf("expected exactly one definition, got %d", stream.NumDefinitions())
	}
	if name := stream.Name(stream.Definition(0)); name != "label" {
		t.Errorf("definition name = %q, want %q", name, "label")
	}
}

func TestMacroDefinition(t *testing.T) {
	stream := scanAll(t, "!macro foo\n")
	if stream.NumDefinitions() != 1 {
		t.Fatalf("expected one definition, got %d", stream.NumDefinitions())
	}
	// определяется имя, а не директива
	if name := stream.Name(stream.Definition(0)); name != "foo" {
		t.Errorf("definition name = %q, want %q", name, "foo")
	}
}

func TestSetAndAddrDefine(t *testing.T) {
	for _, input := range []string{"!set width = 40\n", "!addr screen = $0400\n"} {
		stream := scanAll(t, input)
		if stream.NumDefinitions() != 1 {
			t.Errorf("%q: expected one definition, got %d", input, stream.NumDefinitions())
		}
	}
	// прочие директивы ничего не определяют
	stream := scanAll(t, "!byte foo\n")
	if stream.NumDefinitions() != 0 {
		t.Errorf("!byte must not define, got %d definitions", stream.NumDefinitions())
	}
}

func TestMnemonicIsNotADefinition(t *testing.T) {
	stream := scanAll(t, "lda #$01\n")
	if stream.NumDefinitions() != 0 {
		t.Errorf("mnemonic line must not define, got %d", stream.NumDefinitions())
	}
	if len(stream.Statements) != 0 {
		t.Errorf("mnemonic line yields no statement, got %d", len(stream.Statements))
	}

	// !macro с зарезервированным именем тоже не определение
	stream = scanAll(t, "!macro lda\n")
	if stream.NumDefinitions() != 0 {
		t.Error("reserved name after !macro must not define")
	}
}

func TestCommentOnlyLine(t *testing.T) {
	stream := scanAll(t, "; comment only\n")
	if len(stream.Statements) != 1 {
		t.Fatalf("expected one statement, got %d", len(stream.Statements))
	}
	if stream.Statements[0].Kind != token.StmtComment {
		t.Errorf("statement kind = %v, want Comment", stream.Statements[0].Kind)
	}
	if stream.NumDefinitions() != 0 {
		t.Error("comment line defines nothing")
	}
}

func TestReferenceSigil(t *testing.T) {
	// '+' первым токеном строки — маркер вызова макроса
	stream := expectKinds(t, "+irq", []token.Kind{token.Reference, token.Ident})
	if stream.Tokens[0].Text != "+" || stream.Tokens[0].Span.Len() != 1 {
		t.Errorf("reference token = %q (len %d)", stream.Tokens[0].Text, stream.Tokens[0].Span.Len())
	}
	if stream.Tokens[1].Text != "irq" {
		t.Errorf("ident after sigil = %q", stream.Tokens[1].Text)
	}

	// тот же '+', но не первый на строке — бинарный оператор, не токен
	stream = expectKinds(t, "a+irq", []token.Kind{token.Ident, token.Ident})
	if stream.Tokens[0].Text != "a" || stream.Tokens[1].Text != "irq" {
		t.Errorf("got %q and %q", stream.Tokens[0].Text, stream.Tokens[1].Text)
	}
}

func TestPlusPlusIsSkipped(t *testing.T) {
	expectKinds(t, "x ++ y", []token.Kind{token.Ident, token.Ident})
}

func TestStrings(t *testing.T) {
	// кавычки съедены, в span не входят
	stream := expectKinds(t, `"hello" 'x'`, []token.Kind{token.String, token.String})
	if stream.Tokens[0].Text != "hello" {
		t.Errorf("string text = %q", stream.Tokens[0].Text)
	}
	if stream.Tokens[1].Text != "x" {
		t.Errorf("string text = %q", stream.Tokens[1].Text)
	}
}

func TestStringAcrossCRLFKeepsRowCount(t *testing.T) {
	// CRLF внутри строкового литерала — один перевод строки,
	// ряд следующих токенов не должен уезжать
	stream := scanAll(t, "\"a\r\nb\"\nfoo\n")

	var foo *token.Token
	for i := range stream.Tokens {
		if stream.Tokens[i].Text == "foo" {
			foo = &stream.Tokens[i]
		}
	}
	if foo == nil {
		t.Fatal("foo token not found")
	}
	if foo.Span.Line != 2 {
		t.Errorf("foo row = %d, want 2", foo.Span.Line)
	}

	// одиночные CR и LF считаются по-прежнему
	stream = scanAll(t, "\"a\rb\nc\"\nbar\n")
	for i := range stream.Tokens {
		if stream.Tokens[i].Text == "bar" && stream.Tokens[i].Span.Line != 3 {
			t.Errorf("bar row = %d, want 3", stream.Tokens[i].Span.Line)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	sc, bag := makeTestScanner("'hello")
	stream := sc.Scan()

	if len(stream.Tokens) != 1 {
		t.Fatalf("expected exactly one token, got %d", len(stream.Tokens))
	}
	if stream.Tokens[0].Kind != token.String || stream.Tokens[0].Text != "hello" {
		t.Errorf("token = %v %q", stream.Tokens[0].Kind, stream.Tokens[0].Text)
	}
	// мягкое восстановление + предупреждение
	if !bag.HasWarnings() {
		t.Error("expected an unterminated-string warning")
	}
	if bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Errorf("code = %v", bag.Items()[0].Code)
	}
}

func TestUnterminatedStringSilentWithoutReporter(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.asm", []byte("'oops")))
	stream := lexer.New(file, lexer.Options{}).Scan()
	if len(stream.Tokens) != 1 || stream.Tokens[0].Text != "oops" {
		t.Error("nil reporter keeps the original silent recovery")
	}
}

func TestLocalLabelAndSymbolChars(t *testing.T) {
	stream := expectKinds(t, ".loop_2 bne .loop_2\n", []token.Kind{
		token.Ident, token.Ident, token.Ident, token.LineBreak,
	})
	if stream.Tokens[0].Text != ".loop_2" {
		t.Errorf("local label = %q", stream.Tokens[0].Text)
	}
}

func TestFirstOnLineFlags(t *testing.T) {
	stream := scanAll(t, "start lda #$01\n+irq\n")
	var firsts []string
	for _, tok := range stream.Tokens {
		if tok.FirstOnLine {
			firsts = append(firsts, tok.Text)
		}
	}
	// LineBreak закрывает свою строку, поэтому первым не бывает —
	// кроме строки, уже завершённой комментарием
	want := []string{"start", "+"}
	if len(firsts) != len(want) {
		t.Fatalf("firsts = %q, want %q", firsts, want)
	}
	for i := range want {
		if firsts[i] != want[i] {
			t.Errorf("first[%d] = %q, want %q", i, firsts[i], want[i])
		}
	}
}

func TestSpansCoverInOrder(t *testing.T) {
	input := "init: lda #$01 ; setup\r\n+macro_call\n!byte 'a', \"bc\"\n"
	stream := scanAll(t, input)

	var prevEnd uint32
	for i, tok := range stream.Tokens {
		if tok.Span.Start < prevEnd {
			t.Errorf("token %d overlaps previous: %v", i, tok.Span)
		}
		if tok.Span.End < tok.Span.Start {
			t.Errorf("token %d has inverted span: %v", i, tok.Span)
		}
		prevEnd = tok.Span.End
	}
	last := stream.Tokens[len(stream.Tokens)-1]
	if last.Span.End > uint32(len(input)) {
		t.Error("spans must stay inside the buffer")
	}
}

func TestNoTrailingLineBreakStillClassifies(t *testing.T) {
	// файл без завершающего перевода строки — хвост прогоняется
	// через классификатор на конце ввода
	stream := scanAll(t, "!macro irq_setup")
	if stream.NumDefinitions() != 1 {
		t.Fatalf("expected one definition, got %d", stream.NumDefinitions())
	}
	if name := stream.Name(stream.Definition(0)); name != "irq_setup" {
		t.Errorf("definition name = %q", name)
	}
}

func TestAtMostOneStatementPerLine(t *testing.T) {
	stream := scanAll(t, "label lda #$01 ; trailing comment\n")
	if len(stream.Statements) != 1 {
		t.Fatalf("expected one statement, got %d", len(stream.Statements))
	}
	if stream.Statements[0].Kind != token.StmtDefinition {
		t.Errorf("kind = %v", stream.Statements[0].Kind)
	}
}

func TestScanIsIdempotent(t *testing.T) {
	input := "start: !macro foo\n+foo\nlda #$01 ; done\n'open"
	a := scanAll(t, input)
	b := scanAll(t, input)

	if len(a.Tokens) != len(b.Tokens) || len(a.Statements) != len(b.Statements) {
		t.Fatal("two scans of the same buffer must agree")
	}
	for i := range a.Tokens {
		if a.Tokens[i] != b.Tokens[i] {
			t.Errorf("token %d differs: %+v vs %+v", i, a.Tokens[i], b.Tokens[i])
		}
	}
	for i := range a.Statements {
		if a.Statements[i] != b.Statements[i] {
			t.Errorf("statement %d differs", i)
		}
	}
}

func TestCustomMnemonicTable(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.asm", []byte("stz\n")))

	// на 6502 'stz' не зарезервирован и выглядит как метка
	stream := lexer.New(file, lexer.Options{}).Scan()
	if stream.NumDefinitions() != 1 {
		t.Error("stz defines a label under the 6502 table")
	}

	file2 := fs.Get(fs.AddVirtual("t2.asm", []byte("stz\n")))
	stream = lexer.New(file2, lexer.Options{Mnemonics: opcode.ForCPU(opcode.CPU65C02)}).Scan()
	if stream.NumDefinitions() != 0 {
		t.Error("stz is reserved under the 65c02 table")
	}
}
