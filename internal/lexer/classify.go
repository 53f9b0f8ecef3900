package lexer

import (
	"raster/internal/token"
)

// definingDirectives are the macros whose следующий идентификатор
// вводит имя: !macro foo, !set width, !addr screen.
func isDefiningDirective(text string) bool {
	switch text {
	case "!macro", "!set", "!addr":
		return true
	}
	return false
}

// classifyLine inspects the token span [first, first+count) of one
// logical line and registers at most one statement for it.
//
// A Definition statement spans exactly the one Ident token carrying the
// defined name — for directive forms that is the *second* token, the
// directive itself stays outside the statement.
func (sc *Scanner) classifyLine(first, count uint32) {
	if count < 1 {
		return
	}
	t0 := sc.stream.Tokens[first]

	switch {
	case t0.Kind == token.Ident && !sc.opts.Mnemonics.IsMnemonic(t0.Text):
		sc.stream.AddStatement(token.Statement{
			Kind:  token.StmtDefinition,
			First: first,
			Count: 1,
		})

	case t0.Kind == token.Comment:
		sc.stream.AddStatement(token.Statement{
			Kind:  token.StmtComment,
			First: first,
			Count: 1,
		})

	case count > 1 && t0.Kind == token.Macro && isDefiningDirective(t0.Text):
		t1 := sc.stream.Tokens[first+1]
		if t1.Kind == token.Ident && !sc.opts.Mnemonics.IsMnemonic(t1.Text) {
			sc.stream.AddStatement(token.Statement{
				Kind:  token.StmtDefinition,
				First: first + 1,
				Count: 1,
			})
		}
	}
}
