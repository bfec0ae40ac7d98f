package emoji

import (
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/serendipious/solGPT/internal/frequency"
)

// PerRow is how many emojis the grid shows per row. The favorites row uses
// the same width, which also bounds its frequency store.
const PerRow = 8

// Emoji is one pickable entry. Keywords widen the fuzzy search surface
// beyond the canonical name.
type Emoji struct {
	Char     string
	Name     string
	Keywords string
}

type table []Emoji

func (t table) String(i int) string { return t[i].Name + " " + t[i].Keywords }
func (t table) Len() int            { return len(t) }

// Search filters the catalog by fuzzy match over name and keywords. An empty
// query returns the full catalog in canonical order.
func Search(query string) []Emoji {
	if query == "" {
		out := make([]Emoji, len(catalog))
		copy(out, catalog)
		return out
	}
	matches := fuzzy.FindFrom(query, table(catalog))
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	out := make([]Emoji, 0, len(matches))
	for _, m := range matches {
		out = append(out, catalog[m.Index])
	}
	return out
}

// Picker tracks recently used emojis so the grid can lead with a favorites
// row. The backing store is bounded to the grid width and evicts the least
// used entry when full.
type Picker struct {
	recent *frequency.Store
}

func NewPicker() *Picker {
	return &Picker{recent: frequency.NewBounded(PerRow)}
}

// FavoritesRow is the first grid row: most used first, at most PerRow wide.
func (p *Picker) FavoritesRow() []Emoji {
	keys := p.recent.Top(PerRow)
	out := make([]Emoji, 0, len(keys))
	for _, key := range keys {
		if e, ok := byChar[key]; ok {
			out = append(out, e)
		}
	}
	return out
}

// PickAt resolves a grid index to an emoji and records the use. When the
// query is empty the favorites row occupies the leading cells, so indexes
// past it fall through to the catalog.
func (p *Picker) PickAt(index int, query string) (Emoji, bool) {
	if query == "" {
		favorites := p.FavoritesRow()
		if index < len(favorites) {
			return p.pick(favorites[index]), true
		}
		index -= len(favorites)
	}
	filtered := Search(query)
	if index < 0 || index >= len(filtered) {
		return Emoji{}, false
	}
	return p.pick(filtered[index]), true
}

func (p *Picker) pick(e Emoji) Emoji {
	p.recent.Record(e.Char)
	return e
}

// Recent exposes the bounded store for persistence.
func (p *Picker) Recent() *frequency.Store { return p.recent }
