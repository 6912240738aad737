// Package detect discovers which language models appear in an export.
package detect

import (
	"slices"

	"github.com/samber/lo"
)

// ModelKey is the field name whose string values identify a model.
const ModelKey = "model"

// DefaultModels is used when an export names no model at all.
var DefaultModels = []string{"gpt-3.5-turbo", "gpt-4-turbo"}

// FindModels walks a decoded JSON tree and returns the distinct string values
// stored under a "model" key at any depth, sorted.
func FindModels(tree any) []string {
	found := make(map[string]struct{})
	scan(tree, found)

	models := lo.Keys(found)
	slices.Sort(models)
	return models
}

func scan(v any, found map[string]struct{}) {
	switch v := v.(type) {
	case map[string]any:
		for k, child := range v {
			if name, ok := child.(string); ok && k == ModelKey {
				found[name] = struct{}{}
				continue
			}
			scan(child, found)
		}
	case []any:
		for _, item := range v {
			scan(item, found)
		}
	}
}

// ModelsOrDefault returns models, or a sorted copy of defaults when models is
// empty.
func ModelsOrDefault(models, defaults []string) []string {
	if len(models) > 0 {
		return models
	}
	out := lo.Uniq(defaults)
	slices.Sort(out)
	return out
}
