package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"raster/internal/driver"
	"raster/internal/opcode"
)

// resolveCPU определяет таблицу мнемоник: явный флаг --cpu выигрывает,
// затем [assembler].cpu из raster.toml, затем базовый 6502.
func resolveCPU(cmd *cobra.Command, startDir string) (opcode.CPU, error) {
	name, err := cmd.Root().PersistentFlags().GetString("cpu")
	if err != nil {
		return 0, fmt.Errorf("failed to get cpu flag: %w", err)
	}
	if name != "" {
		return opcode.ParseCPU(name)
	}
	if manifest, ok, err := loadProjectManifest(startDir); err == nil && ok {
		if manifest.Config.Assembler.CPU != "" {
			return opcode.ParseCPU(manifest.Config.Assembler.CPU)
		}
	}
	return opcode.CPU6502, nil
}

// resolveExtensions подбирает расширения исходников для обхода директории.
func resolveExtensions(startDir string) []string {
	if manifest, ok, err := loadProjectManifest(startDir); err == nil && ok {
		if len(manifest.Config.Assembler.Extensions) > 0 {
			return manifest.Config.Assembler.Extensions
		}
	}
	return driver.DefaultExtensions
}

func maxDiagnosticsFlag(cmd *cobra.Command) (int, error) {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return n, nil
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}

func quietFlag(cmd *cobra.Command) bool {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	return quiet
}
