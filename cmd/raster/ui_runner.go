package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"raster/internal/driver"
	"raster/internal/ui"
)

type indexOutcome struct {
	index *driver.Index
	err   error
}

// runIndexWithUI запускает индексацию в фоне и рисует прогресс по файлам
// через Bubble Tea, пока канал событий не закроется.
func runIndexWithUI(cmd *cobra.Command, title string, opts driver.IndexOptions) (*driver.Index, error) {
	files, err := driver.ListSourceFiles(opts.Dir, opts.Extensions)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}

	events := make(chan driver.IndexEvent, 256)
	outcomeCh := make(chan indexOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Events = events
		index, _, err := driver.BuildIndex(cmd.Context(), optsCopy)
		outcomeCh <- indexOutcome{index: index, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.index, uiErr
	}
	return outcome.index, outcome.err
}
