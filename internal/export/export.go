// Package export reads chat-export archives: a JSON array of conversation
// records, each carrying a title and a message graph keyed by node id.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"maps"
	"os"
	"slices"
)

// UntitledChat is used for conversations without a string title.
const UntitledChat = "Untitled Chat"

// ErrNotArray is returned when the top level of an export is not a JSON array.
var ErrNotArray = errors.New("export: top level is not an array")

// Export is a parsed archive. Tree keeps the raw decoded document so callers
// can walk fields the typed view does not expose.
type Export struct {
	Tree          []any
	Conversations []Conversation
}

// Conversation represents a single chat session in the export
type Conversation struct {
	Title   string
	Mapping map[string]any // node id -> node, values as decoded from JSON
}

// Len returns the number of conversation records, including malformed ones.
func (e *Export) Len() int {
	return len(e.Conversations)
}

// Load reads and parses an export file
func Load(filePath string) (*Export, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	exp, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filePath, err)
	}
	return exp, nil
}

// Parse decodes export bytes. Records that are not objects are kept as
// empty untitled conversations so they still count towards the chat total.
func Parse(data []byte) (*Export, error) {
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, err
	}

	records, ok := tree.([]any)
	if !ok {
		return nil, ErrNotArray
	}

	convs := make([]Conversation, 0, len(records))
	for _, rec := range records {
		convs = append(convs, newConversation(rec))
	}

	return &Export{Tree: records, Conversations: convs}, nil
}

func newConversation(rec any) Conversation {
	conv := Conversation{Title: UntitledChat}

	obj, ok := rec.(map[string]any)
	if !ok {
		return conv
	}
	if title, ok := obj["title"].(string); ok {
		conv.Title = title
	}
	if mapping, ok := obj["mapping"].(map[string]any); ok {
		conv.Mapping = mapping
	}
	return conv
}

// Fragments yields every string entry of message.content.parts across the
// conversation's nodes. Nodes are visited in node-id order; parts keep their
// order within a node. Nodes or fields of the wrong shape are skipped.
// The sequence can be ranged over any number of times.
func (c Conversation) Fragments() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, id := range slices.Sorted(maps.Keys(c.Mapping)) {
			for _, part := range nodeParts(c.Mapping[id]) {
				text, ok := part.(string)
				if !ok {
					continue
				}
				if !yield(text) {
					return
				}
			}
		}
	}
}

// nodeParts follows node.message.content.parts, returning nil when any link
// is missing or not of the expected type.
func nodeParts(node any) []any {
	message, ok := field(node, "message")
	if !ok {
		return nil
	}
	content, ok := field(message, "content")
	if !ok {
		return nil
	}
	obj, _ := content.(map[string]any)
	parts, _ := obj["parts"].([]any)
	return parts
}

func field(v any, key string) (any, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	child, ok := obj[key]
	return child, ok && child != nil
}
