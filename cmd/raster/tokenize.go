package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"raster/internal/asmfmt"
	"raster/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.asm",
	Short: "Tokenize an assembly source file",
	Long:  `Tokenize breaks an assembly source file into its constituent tokens in one pass`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

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
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Диагностика — в stderr, токены — в stdout
	if result.Bag.Len() > 0 {
		asmfmt.Pretty(os.Stderr, result.Bag, result.FileSet, asmfmt.PrettyOpts{
			Color: useColor(cmd, os.Stderr),
		})
	}

	switch format {
	case "pretty":
		return asmfmt.FormatTokensPretty(os.Stdout, result.Stream, result.FileSet)
	case "json":
		return asmfmt.FormatTokensJSON(os.Stdout, result.Stream)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
