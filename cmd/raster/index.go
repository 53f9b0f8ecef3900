package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"raster/internal/driver"
)

var indexCmd = &cobra.Command{
	Use:   "index [dir]",
	Short: "Index every definition in a source tree",
	Long:  `Index scans all assembly sources under a directory and prints the symbols they define. Unchanged files are restored from the on-disk cache`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runIndex,
}

func init() {
	indexCmd.Flags().Int("jobs", runtime.GOMAXPROCS(0), "number of files scanned in parallel")
	indexCmd.Flags().Bool("no-cache", false, "ignore the on-disk definition cache")
	indexCmd.Flags().Bool("no-ui", false, "disable the interactive progress view")
}

func runIndex(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	noUI, err := cmd.Flags().GetBool("no-ui")
	if err != nil {
		return fmt.Errorf("failed to get no-ui flag: %w", err)
	}
	maxDiagnostics, err := maxDiagnosticsFlag(cmd)
	if err != nil {
		return err
	}
	cpu, err := resolveCPU(cmd, dir)
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	if !noCache {
		cache, err = driver.OpenDiskCache("raster")
		if err != nil {
			// без кэша медленнее, но работаем
			fmt.Fprintf(os.Stderr, "warning: disk cache unavailable: %v\n", err)
		}
	}

	opts := driver.IndexOptions{
		Dir:            dir,
		Extensions:     resolveExtensions(dir),
		CPU:            cpu,
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
		Cache:          cache,
	}

	var index *driver.Index
	if !noUI && !quietFlag(cmd) && isTerminal(os.Stdout) {
		index, err = runIndexWithUI(cmd, "indexing "+dir, opts)
	} else {
		index, _, err = driver.BuildIndex(cmd.Context(), opts)
	}
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, def := range index.All() {
		fmt.Fprintf(out, "%s\t%s:%d:%d\n", def.Name, def.Path, def.Span.Line+1, def.Span.Col+1)
	}
	if !quietFlag(cmd) {
		fmt.Fprintf(out, "%d definitions\n", index.Len())
	}
	return nil
}
