package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"raster/internal/asmfmt"
	"raster/internal/driver"
)

var stmtsCmd = &cobra.Command{
	Use:   "stmts [flags] file.asm",
	Short: "Show how each logical line is classified",
	Long:  `Stmts scans a source file and prints the statement each logical line amounts to`,
	Args:  cobra.ExactArgs(1),
	RunE:  runStmts,
}

var defsCmd = &cobra.Command{
	Use:   "defs [flags] file.asm",
	Short: "List the symbols a source file defines",
	Args:  cobra.ExactArgs(1),
	RunE:  runDefs,
}

func init() {
	stmtsCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	defsCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runStmts(cmd *cobra.Command, args []string) error {
	return runStatements(cmd, args[0], false)
}

func runDefs(cmd *cobra.Command, args []string) error {
	return runStatements(cmd, args[0], true)
}

func runStatements(cmd *cobra.Command, filePath string, defsOnly bool) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := maxDiagnosticsFlag(cmd)
	if err != nil {
		return err
	}
	cpu, err := resolveCPU(cmd, filepath.Dir(filePath))
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(filePath, cpu, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		asmfmt.Pretty(os.Stderr, result.Bag, result.FileSet, asmfmt.PrettyOpts{
			Color: useColor(cmd, os.Stderr),
		})
	}

	switch format {
	case "pretty":
		return asmfmt.FormatStatementsPretty(os.Stdout, result.Stream, result.FileSet, defsOnly)
	case "json":
		return asmfmt.FormatStatementsJSON(os.Stdout, result.Stream, result.FileSet, defsOnly)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
