// Package tui renders the terminal views of the client: a catalog browser
// and a progress view for a single running operation.
package tui

import (
	"context"

	"github.com/MKhiriev/go-mod-manager/internal/logger"
	"github.com/MKhiriev/go-mod-manager/internal/service"
	"github.com/MKhiriev/go-mod-manager/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Starter launches an operation and returns the channel its result is
// delivered on.
type Starter func(ctx context.Context) (<-chan models.Result, error)

// TUI runs bubbletea programs on top of the client services.
type TUI struct {
	services *service.Services
	logger   *logger.Logger
	options  []tea.ProgramOption
}

// New constructs a TUI. Extra options are passed to every program.
func New(services *service.Services, log *logger.Logger, options ...tea.ProgramOption) *TUI {
	return &TUI{services: services, logger: log, options: options}
}

// Browse shows the catalog browser until the user quits.
func (t *TUI) Browse(ctx context.Context) error {
	feed := newStatusFeed()
	for _, subscribe := range []func(models.StatusListener) func(){
		t.services.Catalog.Subscribe,
		t.services.Install.Subscribe,
	} {
		unsubscribe := subscribe(feed.listen)
		defer unsubscribe()
	}

	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, t.options...)
	_, err := tea.NewProgram(newBrowserModel(ctx, t.services.Catalog, t.services.Install, feed), opts...).Run()
	return err
}

// RunOperation starts an operation with start and shows its status updates,
// published through subscribe, until the result arrives.
func (t *TUI) RunOperation(ctx context.Context, title string, subscribe func(models.StatusListener) func(), start Starter) (models.Result, error) {
	feed := newStatusFeed()
	unsubscribe := subscribe(feed.listen)
	defer unsubscribe()

	results, err := start(ctx)
	if err != nil {
		return models.Result{}, err
	}

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	final, err := tea.NewProgram(newProgressModel(title, feed, results), opts...).Run()
	if err != nil {
		return models.Result{}, err
	}

	model, ok := final.(progressModel)
	if !ok {
		return models.Result{}, tea.ErrProgramKilled
	}
	if model.quitting {
		t.logger.Info().Str("func", "TUI.RunOperation").Str("title", title).Msg("stopped watching a running operation")
		return models.Result{}, ErrUserQuit
	}
	return model.result, model.err
}
