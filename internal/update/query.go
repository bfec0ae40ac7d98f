package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/serendipious/solGPT/internal/eval"
	"github.com/serendipious/solGPT/internal/model"
	"github.com/serendipious/solGPT/internal/search"
	"github.com/serendipious/solGPT/internal/sources"
)

// setQuery is the single entry point for query mutation. It resets the
// selection, recomputes the inline evaluation, clears per-query async tiers
// and schedules the new remote work.
func (m *Model) setQuery(query string) []tea.Cmd {
	m.Query = query
	m.SelectedIndex = 0

	var cmds []tea.Cmd

	m.TemporaryResult = ""
	if m.Focused == model.WidgetSearch && query != "" {
		if result, ok := eval.TryEvaluate(query); ok {
			m.TemporaryResult = result
		}
	}

	m.FileResults = nil
	m.RepoResults = nil
	if query == "" {
		m.debouncer.Stop()
	} else {
		m.deps.Files.Search(query)
		if m.Settings.GithubSearchEnabled && m.deps.Github != nil {
			m.debouncer.Submit(query)
			cmds = append(cmds, m.spin.Tick)
		}
	}

	m.recompose()
	return cmds
}

// searchingRemote reports whether a repo search is pending for the current
// query.
func (m Model) searchingRemote() bool {
	return m.Query != "" && m.Settings.GithubSearchEnabled && m.deps.Github != nil && m.RepoResults == nil
}

// recompose rebuilds the visible result list from current state and clamps
// the selection into it.
func (m *Model) recompose() {
	m.Results = search.Compose(search.Query{
		Text:            m.Query,
		Apps:            m.Apps,
		Static:          m.Static,
		Custom:          customItemsOf(m.CustomItems),
		BookmarkSets:    m.BookmarkSets,
		Fallback:        m.Fallback,
		FileResults:     m.FileResults,
		RepoResults:     m.RepoResults,
		RepoSearch:      m.Settings.GithubSearchEnabled,
		TemporaryResult: m.TemporaryResult,
		Favorites:       m.Favorites,
		Bias:            m.Frequencies.BiasFor,
	})
	m.clampSelection()
}

func (m *Model) clampSelection() {
	if len(m.Results) == 0 {
		m.SelectedIndex = 0
		return
	}
	if m.SelectedIndex >= len(m.Results) {
		m.SelectedIndex = len(m.Results) - 1
	}
	if m.SelectedIndex < 0 {
		m.SelectedIndex = 0
	}
}

func (m *Model) moveSelection(delta int) {
	if len(m.Results) == 0 {
		return
	}
	m.SelectedIndex += delta
	if m.SelectedIndex < 0 {
		m.SelectedIndex = 0
	}
	if m.SelectedIndex >= len(m.Results) {
		m.SelectedIndex = len(m.Results) - 1
	}
}

func customItemsOf(items []model.CustomItem) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, item := range items {
		out = append(out, item.Item())
	}
	return out
}

// SelectedItem returns the highlighted result, if any.
func (m Model) SelectedItem() (model.Item, bool) {
	if m.SelectedIndex < 0 || m.SelectedIndex >= len(m.Results) {
		return model.Item{}, false
	}
	return m.Results[m.SelectedIndex], true
}

// SetCatalogs installs the application and static tiers and recomputes the
// visible list.
func (m *Model) SetCatalogs(apps, static []model.Item) {
	m.Apps = apps
	m.Static = static
	m.recompose()
}

// RefreshBookmarks re-reads browser bookmark files into the bookmark tier.
func (m *Model) RefreshBookmarks(home string) {
	chrome := sources.BookmarkItems(sources.ReadBookmarksFile(sources.ChromeBookmarksPath(home)), "🌐")
	brave := sources.BookmarkItems(sources.ReadBookmarksFile(sources.BraveBookmarksPath(home)), "🦁")
	m.BookmarkSets = nil
	if len(chrome) > 0 {
		m.BookmarkSets = append(m.BookmarkSets, chrome)
	}
	if len(brave) > 0 {
		m.BookmarkSets = append(m.BookmarkSets, brave)
	}
	m.recompose()
}

func queryIsBlank(query string) bool {
	return strings.TrimSpace(query) == ""
}
