package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"raster/internal/driver"
	"raster/internal/lsp"
)

var lspCmd = &cobra.Command{
	Use:          "lsp",
	Short:        "Run the assembly language server over stdio",
	SilenceUsage: true,
	RunE:         runLSP,
}

func runLSP(cmd *cobra.Command, _ []string) error {
	maxDiagnostics, err := maxDiagnosticsFlag(cmd)
	if err != nil {
		return err
	}
	cpu, err := resolveCPU(cmd, ".")
	if err != nil {
		return err
	}

	// Кэш ускоряет индекс рабочей директории при initialize; без него
	// сервер тоже работает.
	cache, err := driver.OpenDiskCache("raster")
	if err != nil {
		cache = nil
	}

	server := lsp.NewServer(os.Stdin, os.Stdout, lsp.ServerOptions{
		CPU:            cpu,
		MaxDiagnostics: maxDiagnostics,
		Cache:          cache,
	})
	if err := server.Run(cmd.Context()); err != nil {
		if errors.Is(err, lsp.ErrExit) {
			return nil
		}
		if errors.Is(err, lsp.ErrExitWithoutShutdown) {
			return fmt.Errorf("lsp exit without shutdown")
		}
		return err
	}
	return nil
}
