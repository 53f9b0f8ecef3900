package asmfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"raster/internal/diag"
	"raster/internal/source"
)

// PrettyOpts controls diagnostic rendering.
type PrettyOpts struct {
	Color bool
}

var (
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
)

// Pretty форматирует диагностики в человекочитаемый вид:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		pos, _ := fs.Resolve(d.Primary)
		path := fs.Get(d.Primary.File).Path

		sev := d.Severity.String()
		if opts.Color {
			switch d.Severity {
			case diag.SevWarning:
				sev = warnColor.Sprint(sev)
			case diag.SevInfo:
				sev = infoColor.Sprint(sev)
			}
		}

		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			path, pos.Line, pos.Col, sev, d.Code.ID(), d.Message)

		for _, n := range d.Notes {
			npos, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  note: %s (%d:%d)\n", n.Msg, npos.Line, npos.Col)
		}
	}
}
