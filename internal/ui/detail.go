package ui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/raphaelgruber/tokenaudit/internal/usage"
)

// renderDetailView renders the selected chat with its full title
func (m Model) renderDetailView(res usage.Result) string {
	var s strings.Builder

	s.WriteString(sectionStyle.Render("Selected chat"))
	s.WriteString("\n")

	if m.cursor >= len(res.TopChats) {
		s.WriteString(labelStyle.Render("  Nothing selected"))
		s.WriteString("\n")
		return s.String()
	}
	chat := res.TopChats[m.cursor]

	// Wrap the full title to fit width
	for _, line := range wrapText(chat.Title, m.lineWidth()-4) {
		s.WriteString("  ")
		s.WriteString(chatTitleStyle.Render(line))
		s.WriteString("\n")
	}

	s.WriteString("  ")
	s.WriteString(labelStyle.Render(fmt.Sprintf("%s tokens, %s messages, %s of total",
		humanize.Comma(chat.Tokens),
		humanize.Comma(chat.Messages),
		share(chat.Tokens, res.TotalTokens),
	)))
	s.WriteString("\n")

	return s.String()
}

// share formats part/total as a percentage
func share(part, total int64) string {
	if total <= 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(part)*100/float64(total))
}

// wrapText wraps text to fit within the specified width
func wrapText(text string, width int) []string {
	runes := []rune(text)
	if width <= 0 || len(runes) <= width {
		return []string{text}
	}

	var lines []string
	for len(runes) > width {
		// Find last space before width
		breakPoint := width
		for breakPoint > 0 && runes[breakPoint] != ' ' {
			breakPoint--
		}
		if breakPoint == 0 {
			// No space found, hard break
			breakPoint = width
		}

		lines = append(lines, string(runes[:breakPoint]))
		runes = []rune(strings.TrimLeft(string(runes[breakPoint:]), " "))
	}

	if len(runes) > 0 {
		lines = append(lines, string(runes))
	}

	return lines
}
