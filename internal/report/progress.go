package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/progress"
	"golang.org/x/term"
)

const progressWidth = 40

// Progress draws a single-line progress bar per model. It stays silent
// unless its writer is a terminal.
type Progress struct {
	w       io.Writer
	bar     progress.Model
	enabled bool
	percent int // last drawn whole percent, -1 before the first draw
}

// NewProgress creates a Progress that draws on w when w is a terminal
func NewProgress(w io.Writer) *Progress {
	enabled := false
	if f, ok := w.(*os.File); ok {
		enabled = term.IsTerminal(int(f.Fd()))
	}
	return newProgress(w, enabled)
}

func newProgress(w io.Writer, enabled bool) *Progress {
	return &Progress{
		w:       w,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressWidth)),
		enabled: enabled,
		percent: -1,
	}
}

// Update redraws the bar for model. It matches usage.ProgressFunc.
func (p *Progress) Update(model string, done, total int) {
	if !p.enabled || total <= 0 {
		return
	}

	percent := done * 100 / total
	if percent == p.percent && done != total {
		return
	}
	p.percent = percent

	fmt.Fprintf(p.w, "\rProcessing chats for %s %s %d/%d", model, p.bar.ViewAs(float64(done)/float64(total)), done, total)
	if done == total {
		fmt.Fprintln(p.w)
		p.percent = -1
	}
}
