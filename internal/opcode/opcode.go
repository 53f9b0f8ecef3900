// Package opcode holds the reserved instruction mnemonics per CPU mode.
// The statement classifier asks it one question: is this identifier a
// mnemonic, and therefore not a symbol definition.
package opcode

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// CPU selects which mnemonic set is active.
type CPU uint8

const (
	// CPU6502 is the documented NMOS 6502 instruction set.
	CPU6502 CPU = iota
	// CPU6510 adds the undocumented NMOS opcodes used on the C64.
	CPU6510
	// CPU65C02 adds the CMOS extensions.
	CPU65C02
	// CPU65816 adds the 16-bit extensions on top of the CMOS set.
	CPU65816
)

func (c CPU) String() string {
	switch c {
	case CPU6502:
		return "6502"
	case CPU6510:
		return "6510"
	case CPU65C02:
		return "65c02"
	case CPU65816:
		return "65816"
	}
	return "unknown"
}

// ParseCPU maps a manifest/flag value to a CPU mode.
func ParseCPU(name string) (CPU, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "6502":
		return CPU6502, nil
	case "6510":
		return CPU6510, nil
	case "65c02", "65sc02":
		return CPU65C02, nil
	case "65816", "65802":
		return CPU65816, nil
	}
	return CPU6502, fmt.Errorf("unknown cpu %q", name)
}

// Table is an immutable mnemonic set for one CPU mode. Membership is
// case-insensitive; assemblers in this family accept LDA and lda alike.
type Table struct {
	cpu   CPU
	names map[string]struct{}
}

var fold = cases.Fold()

// ForCPU builds the mnemonic table for a CPU mode.
func ForCPU(cpu CPU) *Table {
	names := make(map[string]struct{}, 128)
	add := func(list []string) {
		for _, n := range list {
			names[n] = struct{}{}
		}
	}
	add(base6502)
	switch cpu {
	case CPU6510:
		add(illegal6510)
	case CPU65C02:
		add(cmos65c02)
	case CPU65816:
		add(cmos65c02)
		add(ext65816)
	}
	return &Table{cpu: cpu, names: names}
}

// CPU returns the mode the table was built for.
func (t *Table) CPU() CPU { return t.cpu }

// IsMnemonic reports whether text names an instruction in this mode.
func (t *Table) IsMnemonic(text string) bool {
	if t == nil || text == "" {
		return false
	}
	_, ok := t.names[fold.String(text)]
	return ok
}

// Len returns the number of mnemonics in the table.
func (t *Table) Len() int { return len(t.names) }

var base6502 = []string{
	"adc", "and", "asl", "bcc", "bcs", "beq", "bit", "bmi", "bne", "bpl",
	"brk", "bvc", "bvs", "clc", "cld", "cli", "clv", "cmp", "cpx", "cpy",
	"dec", "dex", "dey", "eor", "inc", "inx", "iny", "jmp", "jsr", "lda",
	"ldx", "ldy", "lsr", "nop", "ora", "pha", "php", "pla", "plp", "rol",
	"ror", "rti", "rts", "sbc", "sec", "sed", "sei", "sta", "stx", "sty",
	"tax", "tay", "tsx", "txa", "txs", "tya",
}

// Undocumented NMOS opcodes as the C64 scene spells them.
var illegal6510 = []string{
	"ahx", "alr", "anc", "arr", "axs", "dcp", "isc", "las", "lax", "rla",
	"rra", "sax", "shx", "shy", "slo", "sre", "tas", "xaa",
}

var cmos65c02 = []string{
	"bra", "phx", "phy", "plx", "ply", "stp", "stz", "trb", "tsb", "wai",
}

var ext65816 = []string{
	"brl", "cop", "jml", "jsl", "mvn", "mvp", "pea", "pei", "per", "phb",
	"phd", "phk", "plb", "pld", "rep", "rtl", "sep", "tcd", "tcs", "tdc",
	"tsc", "txy", "tyx", "wdm", "xba", "xce",
}
