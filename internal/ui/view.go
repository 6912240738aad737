package ui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/raphaelgruber/tokenaudit/internal/report"
	"github.com/raphaelgruber/tokenaudit/internal/usage"
)

// View renders the UI
func (m Model) View() string {
	var s strings.Builder

	// Title
	s.WriteString(titleStyle.Render("Token Usage Report - " + m.opts.Path))
	s.WriteString("\n")
	s.WriteString(separatorStyle.Render(strings.Repeat("─", m.lineWidth())))
	s.WriteString("\n\n")

	// Loading state (but still show results if we have them)
	if m.loading && len(m.results) == 0 {
		s.WriteString(loadingStyle.Render("Counting tokens..."))
		s.WriteString("\n")
		return s.String()
	}

	// Error state
	if m.err != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		s.WriteString("\n\n")
	}

	res, ok := m.selected()
	if !ok {
		s.WriteString(loadingStyle.Render("No models to report"))
		s.WriteString("\n\n")
		s.WriteString(helpBarStyle.Render("[r] Refresh  [q] Quit"))
		s.WriteString("\n")
		return s.String()
	}

	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")
	s.WriteString(m.renderSummary(res))
	s.WriteString("\n")
	s.WriteString(m.renderTopChats(res))
	s.WriteString("\n")
	s.WriteString(m.renderDetailView(res))

	// Help bar
	s.WriteString("\n")
	s.WriteString(separatorStyle.Render(strings.Repeat("─", m.lineWidth())))
	s.WriteString("\n")

	helpText := "[tab/←→] Model  [↑↓/jk] Chat  [c] Cost: "
	if m.showCost {
		helpText += "ON"
	} else {
		helpText += "OFF"
	}
	helpText += "  [r] Refresh  [q] Quit  Updated " + m.lastUpdate.Format("15:04:05")
	if m.loading {
		helpText += "  " + loadingStyle.Render("⟳ Refreshing...")
	}
	s.WriteString(helpBarStyle.Render(helpText))
	s.WriteString("\n")

	return s.String()
}

// renderTabs renders one tab per detected model
func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(m.results))
	for i, res := range m.results {
		if i == m.modelIdx {
			tabs = append(tabs, activeTabStyle.Render(res.Model))
		} else {
			tabs = append(tabs, tabStyle.Render(res.Model))
		}
	}
	return strings.Join(tabs, " ")
}

// renderSummary renders the totals for a model
func (m Model) renderSummary(res usage.Result) string {
	var s strings.Builder

	if res.Warning != "" {
		s.WriteString(warningStyle.Render("Tokenizer fallback used: " + res.Warning))
		s.WriteString("\n")
	}

	row := func(label, value string) {
		s.WriteString("  ")
		s.WriteString(labelStyle.Render(label))
		s.WriteString(valueStyle.Render(value))
		s.WriteString("\n")
	}
	row("Chats:    ", humanize.Comma(int64(res.TotalChats)))
	row("Messages: ", humanize.Comma(res.TotalMessages))
	row("Tokens:   ", humanize.Comma(res.TotalTokens))
	if m.showCost {
		cost := report.EstimateCost(res.TotalTokens, m.opts.Rate(res.Model))
		s.WriteString("  ")
		s.WriteString(labelStyle.Render("Cost:     "))
		s.WriteString(costStyle.Render(report.FormatCost(cost)))
		s.WriteString("\n")
	}

	return s.String()
}

// renderTopChats renders the top list with the cursor row highlighted
func (m Model) renderTopChats(res usage.Result) string {
	var s strings.Builder

	s.WriteString(sectionStyle.Render("Longest chats by tokens"))
	s.WriteString("\n")

	if len(res.TopChats) == 0 {
		s.WriteString(labelStyle.Render("  No chats"))
		s.WriteString("\n")
		return s.String()
	}

	for i, chat := range res.TopChats {
		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%2d. %s %s",
			prefix,
			i+1,
			chatTitleStyle.Render(report.TruncateTitle(chat.Title, m.opts.TitleWidth)),
			labelStyle.Render(humanize.Comma(chat.Tokens)+" tokens"),
		)
		if i == m.cursor {
			line = selectedRowStyle.Render(line)
		}
		s.WriteString(line)
		s.WriteString("\n")
	}

	return s.String()
}

func (m Model) lineWidth() int {
	if m.width <= 0 || m.width > 80 {
		return 80
	}
	return m.width
}
