package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/raphaelgruber/tokenaudit/internal/watcher"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case resultsLoadedMsg:
		m.loading = false
		m.lastUpdate = time.Now()
		m.err = msg.err
		if msg.err == nil {
			m.results = msg.results
		}
		m.clampSelection()
		return m, nil

	case watcher.FileChangedMsg:
		// Export changed, recompute unless a load is already running
		var cmd tea.Cmd
		if !m.loading {
			m.loading = true
			cmd = loadResultsCmd(m.opts.Load)
		}
		// Continue watching for next event
		if m.opts.Watcher != nil {
			return m, tea.Batch(cmd, m.opts.Watcher.Start(m.ctx))
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	// Always handle quit keys first
	switch keyStr {
	case "ctrl+c", "q", "esc":
		m.cancel()
		if m.opts.Watcher != nil {
			m.opts.Watcher.Close()
		}
		return m, tea.Quit

	case "r":
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, loadResultsCmd(m.opts.Load)

	case "c":
		m.showCost = !m.showCost
		return m, nil
	}

	if len(m.results) == 0 {
		return m, nil
	}

	// Number keys jump to a chat in the top list (1-9)
	if len(keyStr) == 1 && keyStr[0] >= '1' && keyStr[0] <= '9' {
		num := int(keyStr[0] - '0')
		if res, ok := m.selected(); ok && num <= len(res.TopChats) {
			m.cursor = num - 1
		}
		return m, nil
	}

	switch keyStr {
	case "tab", "right", "l":
		m.modelIdx = (m.modelIdx + 1) % len(m.results)
		m.cursor = 0

	case "shift+tab", "left", "h":
		m.modelIdx = (m.modelIdx - 1 + len(m.results)) % len(m.results)
		m.cursor = 0

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if res, ok := m.selected(); ok && m.cursor < len(res.TopChats)-1 {
			m.cursor++
		}

	case "g", "home":
		m.cursor = 0

	case "G", "end":
		if res, ok := m.selected(); ok {
			m.cursor = max(0, len(res.TopChats)-1)
		}
	}

	return m, nil
}

// clampSelection keeps model and chat selection within the loaded results
func (m *Model) clampSelection() {
	if m.modelIdx >= len(m.results) {
		m.modelIdx = max(0, len(m.results)-1)
	}
	res, ok := m.selected()
	if !ok {
		m.cursor = 0
		return
	}
	if m.cursor >= len(res.TopChats) {
		m.cursor = max(0, len(res.TopChats)-1)
	}
}
