// Package tokenizer maps model names to tiktoken encodings.
package tokenizer

import (
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	tiktoken_loader "github.com/pkoukk/tiktoken-go-loader"
)

// DefaultFallback is the encoding used for models tiktoken does not know.
const DefaultFallback = "cl100k_base"

// Tokenizer counts tokens in a piece of text.
type Tokenizer interface {
	Count(text string) int
}

// Encoding is a Tokenizer backed by a tiktoken encoding.
type Encoding struct {
	name string
	enc  *tiktoken.Tiktoken
}

// Name returns the model or encoding name the tokenizer was loaded for.
func (e *Encoding) Name() string {
	return e.name
}

// Count returns the number of tokens in text.
func (e *Encoding) Count(text string) int {
	return len(e.enc.Encode(text, nil, nil))
}

var offlineOnce sync.Once

// useOfflineRanks makes tiktoken read BPE ranks from the embedded loader
// instead of downloading them.
func useOfflineRanks() {
	offlineOnce.Do(func() {
		tiktoken.SetBpeLoader(tiktoken_loader.NewOfflineLoader())
	})
}

// Resolver hands out tokenizers per model, falling back to a general
// purpose encoding when the model is unknown.
type Resolver struct {
	fallback string
}

// NewResolver creates a Resolver. An empty fallback selects DefaultFallback.
func NewResolver(fallback string) *Resolver {
	useOfflineRanks()
	if fallback == "" {
		fallback = DefaultFallback
	}
	return &Resolver{fallback: fallback}
}

// Resolve returns the encoding for model. When tiktoken cannot map the model
// the fallback encoding is returned together with the lookup error text as a
// warning. An error is returned only if the fallback itself cannot be loaded.
func (r *Resolver) Resolve(model string) (*Encoding, string, error) {
	enc, lookupErr := tiktoken.EncodingForModel(model)
	if lookupErr == nil {
		return &Encoding{name: model, enc: enc}, "", nil
	}

	fallback, err := r.Fallback()
	if err != nil {
		return nil, "", fmt.Errorf("model %s: %w", model, err)
	}
	return fallback, lookupErr.Error(), nil
}

// Fallback loads the fallback encoding.
func (r *Resolver) Fallback() (*Encoding, error) {
	enc, err := tiktoken.GetEncoding(r.fallback)
	if err != nil {
		return nil, fmt.Errorf("load fallback encoding %q: %w", r.fallback, err)
	}
	return &Encoding{name: r.fallback, enc: enc}, nil
}
