// Package search ranks catalog items against the live query and composes
// the final result list from all sources.
package search

import (
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/serendipious/solGPT/internal/model"
)

// catalogSource exposes item names (plus aliases) to the fuzzy matcher; the
// display name is the only indexed field.
type catalogSource []model.Item

func (c catalogSource) String(i int) string {
	if c[i].Alias != "" {
		return c[i].Name + " " + c[i].Alias
	}
	return c[i].Name
}

func (c catalogSource) Len() int { return len(c) }

// Match scores catalog items against the query. Results are ordered by match
// quality; equal scores are broken by descending usage bias so frequently
// picked items surface first. Deterministic for identical inputs.
func Match(query string, catalog []model.Item, bias func(string) int) []model.Item {
	if query == "" {
		return nil
	}
	if bias == nil {
		bias = func(string) int { return 0 }
	}

	matches := fuzzy.FindFrom(query, catalogSource(catalog))
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return bias(catalog[matches[i].Index].Key()) > bias(catalog[matches[j].Index].Key())
	})

	out := make([]model.Item, len(matches))
	for i, match := range matches {
		out[i] = catalog[match.Index]
	}
	return out
}
