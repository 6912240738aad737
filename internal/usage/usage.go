// Package usage aggregates per-model token usage over an export.
package usage

import (
	"cmp"
	"slices"

	"github.com/raphaelgruber/tokenaudit/internal/export"
	"github.com/raphaelgruber/tokenaudit/internal/tokenizer"
)

// DefaultTopN is the number of conversations kept in Result.TopChats.
const DefaultTopN = 10

// ChatUsage is the token usage of a single conversation
type ChatUsage struct {
	Title    string
	Tokens   int64
	Messages int64 // number of fragments
}

// Result is the usage of one model across the whole export
type Result struct {
	Model         string
	Warning       string // set when a fallback tokenizer was used
	TotalChats    int
	TotalMessages int64
	TotalTokens   int64
	TopChats      []ChatUsage // largest first
}

// ProgressFunc is called after each conversation is counted.
type ProgressFunc func(model string, done, total int)

// Options tunes aggregation
type Options struct {
	TopN     int // <= 0 means DefaultTopN
	Progress ProgressFunc
}

func (o Options) topN() int {
	if o.TopN <= 0 {
		return DefaultTopN
	}
	return o.TopN
}

// ResolveFunc returns the tokenizer for a model and an optional fallback
// warning.
type ResolveFunc func(model string) (tokenizer.Tokenizer, string, error)

// Analyze resolves a tokenizer for every model, then aggregates the export
// once per model. Results follow the order of models. Resolution happens
// before any counting so a broken fallback aborts without partial work.
func Analyze(exp *export.Export, models []string, resolve ResolveFunc, opts Options) ([]Result, error) {
	type resolved struct {
		tok     tokenizer.Tokenizer
		warning string
	}

	toks := make([]resolved, 0, len(models))
	for _, model := range models {
		tok, warning, err := resolve(model)
		if err != nil {
			return nil, err
		}
		toks = append(toks, resolved{tok: tok, warning: warning})
	}

	results := make([]Result, 0, len(models))
	for i, model := range models {
		res := Aggregate(model, toks[i].tok, exp.Conversations, opts)
		res.Warning = toks[i].warning
		results = append(results, res)
	}
	return results, nil
}

// Aggregate counts the tokens of every fragment of every conversation with
// tok. Each call starts from fresh accumulators.
func Aggregate(model string, tok tokenizer.Tokenizer, convs []export.Conversation, opts Options) Result {
	res := Result{
		Model:      model,
		TotalChats: len(convs),
	}

	chats := make([]ChatUsage, 0, len(convs))
	for i, conv := range convs {
		chat := ChatUsage{Title: conv.Title}
		for text := range conv.Fragments() {
			chat.Tokens += int64(tok.Count(text))
			chat.Messages++
		}

		res.TotalTokens += chat.Tokens
		res.TotalMessages += chat.Messages
		chats = append(chats, chat)

		if opts.Progress != nil {
			opts.Progress(model, i+1, len(convs))
		}
	}

	res.TopChats = Top(chats, opts.topN())
	return res
}

// Top returns the n chats with the most tokens, largest first. Chats with
// equal token counts keep their input order. chats is not modified.
func Top(chats []ChatUsage, n int) []ChatUsage {
	sorted := slices.Clone(chats)
	slices.SortStableFunc(sorted, func(a, b ChatUsage) int {
		return cmp.Compare(b.Tokens, a.Tokens)
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
