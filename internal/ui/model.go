package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/raphaelgruber/tokenaudit/internal/report"
	"github.com/raphaelgruber/tokenaudit/internal/usage"
	"github.com/raphaelgruber/tokenaudit/internal/watcher"
)

// LoadFunc produces the per-model results shown by the browser
type LoadFunc func() ([]usage.Result, error)

// Options configures the report browser
type Options struct {
	Path       string // export file, shown in the title
	Load       LoadFunc
	Rate       report.RateFunc
	ShowCost   bool
	TitleWidth int
	Watcher    *watcher.FileWatcher // optional; reloads on export changes
}

// Model represents the Bubbletea application model
type Model struct {
	opts       Options
	results    []usage.Result
	modelIdx   int // selected model
	cursor     int // selected chat within the model's top list
	showCost   bool
	lastUpdate time.Time
	err        error
	loading    bool
	width      int
	height     int

	ctx    context.Context
	cancel context.CancelFunc
}

// resultsLoadedMsg is sent when results are (re)computed
type resultsLoadedMsg struct {
	results []usage.Result
	err     error
}

// NewModel creates a new Model instance
func NewModel(opts Options) Model {
	if opts.TitleWidth <= 0 {
		opts.TitleWidth = report.DefaultTitleWidth
	}
	if opts.Rate == nil {
		opts.Rate = func(string) float64 { return 0 }
	}

	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		opts:       opts,
		showCost:   opts.ShowCost,
		lastUpdate: time.Now(),
		loading:    true,
		width:      80,
		height:     24,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{loadResultsCmd(m.opts.Load)}
	if m.opts.Watcher != nil {
		cmds = append(cmds, m.opts.Watcher.Start(m.ctx))
	}
	return tea.Batch(cmds...)
}

// loadResultsCmd computes results asynchronously
func loadResultsCmd(load LoadFunc) tea.Cmd {
	return func() tea.Msg {
		results, err := load()
		return resultsLoadedMsg{results: results, err: err}
	}
}

// selected returns the currently selected model result, if any
func (m Model) selected() (usage.Result, bool) {
	if m.modelIdx < 0 || m.modelIdx >= len(m.results) {
		return usage.Result{}, false
	}
	return m.results[m.modelIdx], true
}
