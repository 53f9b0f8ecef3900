package lexer

import (
	"raster/internal/diag"
	"raster/internal/source"
)

// Options configures one scanning pass.
type Options struct {
	// Reporter receives non-fatal findings (unterminated strings).
	// may be nil — тогда сканер молчит, но продолжает работать.
	Reporter diag.Reporter
	// Mnemonics is the reserved-instruction predicate the classifier
	// consults. nil falls back to the plain 6502 set.
	Mnemonics MnemonicTable
}

// MnemonicTable answers "is this identifier a reserved instruction name
// for the active CPU mode". Satisfied by *opcode.Table.
type MnemonicTable interface {
	IsMnemonic(text string) bool
}

func (sc *Scanner) warn(code diag.Code, sp source.Span, msg string) {
	if sc.opts.Reporter != nil {
		sc.opts.Reporter.Report(code, diag.SevWarning, sp, msg)
	}
}
