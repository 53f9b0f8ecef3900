package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"raster/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "raster",
	Short: "Editor tooling for ACME-style 6502 assembly",
	Long:  `Raster scans 6502 assembly sources in a single pass and serves tokens, definitions and diagnostics to editors and scripts`,
}

// main registers subcommands and persistent flags, then executes the root
// command. A command error exits with status code 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(stmtsCmd)
	rootCmd.AddCommand(defsCmd)
	rootCmd.AddCommand(directivesCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(lspCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().String("cpu", "", "instruction set to accept (6502|6510|65c02|65816)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
