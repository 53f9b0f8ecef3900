package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"raster/internal/directive"
)

var directivesCmd = &cobra.Command{
	Use:   "directives [prefix]",
	Short: "List bang directives, optionally filtered by prefix",
	Long:  `Directives prints the dialect's pseudo-directive vocabulary. With a prefix argument (e.g. "!b") only matching names are shown`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDirectives,
}

func runDirectives(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	names := directive.Names()
	if len(args) == 1 {
		query := args[0]
		if !strings.HasPrefix(query, "!") {
			query = "!" + query
		}
		matches, ok := directive.Search(query)
		if !ok {
			return fmt.Errorf("no directive matches %q", query)
		}
		names = matches
	}

	for _, name := range names {
		if doc, ok := directive.Doc(name); ok {
			fmt.Fprintf(out, "%-12s %s\n", name, doc)
		} else {
			fmt.Fprintln(out, name)
		}
	}
	return nil
}
