// Package report renders token usage results as plain text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/raphaelgruber/tokenaudit/internal/usage"
)

// DefaultTitleWidth is the number of characters of a title that are shown
const DefaultTitleWidth = 60

// RateFunc returns the USD price per million tokens for a model
type RateFunc func(model string) float64

// Options controls what the printer emits
type Options struct {
	ShowCost   bool
	TopN       int
	TitleWidth int
	Rate       RateFunc
}

// Printer writes the report. Styling is applied only when w is a terminal.
type Printer struct {
	w      io.Writer
	opts   Options
	styles styles
}

// NewPrinter creates a Printer writing to w
func NewPrinter(w io.Writer, opts Options) *Printer {
	if opts.TopN <= 0 {
		opts.TopN = usage.DefaultTopN
	}
	if opts.TitleWidth <= 0 {
		opts.TitleWidth = DefaultTitleWidth
	}
	if opts.Rate == nil {
		opts.Rate = func(string) float64 { return 0 }
	}
	return &Printer{
		w:      w,
		opts:   opts,
		styles: newStyles(lipgloss.NewRenderer(w)),
	}
}

// Reading announces the export file being read
func (p *Printer) Reading(path string) {
	fmt.Fprintf(p.w, "🔍 Reading %s ...\n", path)
}

// Detected lists the models found in the export
func (p *Printer) Detected(models []string) {
	fmt.Fprintf(p.w, "Detected models: %s\n", strings.Join(models, ", "))
}

// Print writes one section per model result
func (p *Printer) Print(results []usage.Result) {
	var s strings.Builder

	s.WriteString("\n")
	s.WriteString(p.styles.title.Render("=== Token Usage Report (per model) ==="))
	s.WriteString("\n")

	for _, res := range results {
		p.writeModel(&s, res)
	}

	io.WriteString(p.w, s.String())
}

func (p *Printer) writeModel(s *strings.Builder, res usage.Result) {
	s.WriteString("\n")
	s.WriteString(p.styles.label.Render("Model: "))
	s.WriteString(p.styles.model.Render(res.Model))
	s.WriteString("\n")

	if res.Warning != "" {
		s.WriteString(p.styles.warning.Render(fmt.Sprintf("  (tokenizer fallback used: %s)", res.Warning)))
		s.WriteString("\n")
	}

	fmt.Fprintf(s, "  Total chats processed: %s\n", humanize.Comma(int64(res.TotalChats)))
	fmt.Fprintf(s, "  Total messages processed: %s\n", humanize.Comma(res.TotalMessages))
	fmt.Fprintf(s, "  Total tokens used: %s\n", p.styles.count.Render(humanize.Comma(res.TotalTokens)))

	if p.opts.ShowCost {
		cost := EstimateCost(res.TotalTokens, p.opts.Rate(res.Model))
		fmt.Fprintf(s, "  Estimated cost (approx): %s\n", p.styles.cost.Render(FormatCost(cost)))
	}

	fmt.Fprintf(s, "  Top %d longest chats by tokens:\n", p.opts.TopN)
	for i, chat := range res.TopChats {
		fmt.Fprintf(s, "    %d. %s — %s tokens, %s messages\n",
			i+1,
			TruncateTitle(chat.Title, p.opts.TitleWidth),
			humanize.Comma(chat.Tokens),
			humanize.Comma(chat.Messages),
		)
	}
}

// EstimateCost prices tokens at rate USD per million tokens
func EstimateCost(tokens int64, rate float64) decimal.Decimal {
	return decimal.NewFromInt(tokens).
		Div(decimal.NewFromInt(1_000_000)).
		Mul(decimal.NewFromFloat(rate))
}

// FormatCost renders a cost as dollars with two decimals, e.g. "$1.25".
// Halves round away from zero.
func FormatCost(cost decimal.Decimal) string {
	return "$" + cost.StringFixed(2)
}

// TruncateTitle keeps at most width characters of title
func TruncateTitle(title string, width int) string {
	runes := []rune(title)
	if len(runes) <= width {
		return title
	}
	return string(runes[:width])
}
