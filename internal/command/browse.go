package command

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/raphaelgruber/tokenaudit/internal/config"
	"github.com/raphaelgruber/tokenaudit/internal/ui"
	"github.com/raphaelgruber/tokenaudit/internal/usage"
	"github.com/raphaelgruber/tokenaudit/internal/watcher"
)

func runBrowser(cmd *cobra.Command, opts *options, cfg *config.Config, logger *slog.Logger) error {
	uiOpts := ui.Options{
		Path:       opts.file,
		Load:       browserLoader(opts.file, cfg, logger),
		Rate:       cfg.RateFor,
		ShowCost:   opts.showCost,
		TitleWidth: cfg.TitleWidth,
	}

	if opts.watch {
		w, err := watcher.NewWatcher(opts.file)
		if err != nil {
			return fmt.Errorf("watch %s: %w", opts.file, err)
		}
		defer w.Close()
		uiOpts.Watcher = w
	}

	p := tea.NewProgram(ui.NewModel(uiOpts),
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program (a terminal is required for --interactive): %w", err)
	}
	return nil
}

// browserLoader re-reads the export on every call so reloads pick up changes.
func browserLoader(path string, cfg *config.Config, logger *slog.Logger) ui.LoadFunc {
	return func() ([]usage.Result, error) {
		exp, err := loadExport(path, logger)
		if err != nil {
			return nil, err
		}
		return analyze(exp, detectModels(exp, cfg, logger), cfg, nil, logger)
	}
}
