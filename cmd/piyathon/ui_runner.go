package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"piyathon/internal/driver"
	"piyathon/internal/source"
	"piyathon/internal/translate"
	"piyathon/internal/ui"
)

type convertOutcome struct {
	fileSet *source.FileSet
	results []driver.DirFileResult
	err     error
}

// convertDirWithUI runs ConvertDir in the background and renders its events
// with the progress model until the batch finishes.
func convertDirWithUI(ctx context.Context, out io.Writer, title string, tr *translate.Translator, root string, opts driver.DirOptions) (*source.FileSet, []driver.DirFileResult, error) {
	files, err := driver.ListSources(root, opts.Direction)
	if err != nil {
		return nil, nil, err
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan convertOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = func(ev driver.Event) { events <- ev }
		fs, results, err := driver.ConvertDir(ctx, tr, root, optsCopy)
		close(events)
		outcomeCh <- convertOutcome{fileSet: fs, results: results, err: err}
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithInput(nil))
	_, uiErr := program.Run()
	// модель могла выйти раньше (Ctrl+C), дочитываем события
	for range events {
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
