package update

import (
	"net/url"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/serendipious/solGPT/internal/model"
)

// executeSelection activates the highlighted item: record usage, interpret
// the action, then reset the palette unless the item keeps it open.
func (m Model) executeSelection() (Model, tea.Cmd) {
	item, ok := m.SelectedItem()
	if !ok {
		return m, nil
	}
	return m.executeItem(item, item.Action)
}

// executeSecondary runs the alternate action where one exists, like opening
// a file's enclosing folder.
func (m Model) executeSecondary() (Model, tea.Cmd) {
	item, ok := m.SelectedItem()
	if !ok || item.Secondary == nil {
		return m, nil
	}
	return m.executeItem(item, item.Secondary)
}

func (m Model) executeItem(item model.Item, action model.Action) (Model, tea.Cmd) {
	if item.Kind != model.KindTemporary {
		m.Frequencies.Record(item.Key())
		m.persist()
	}
	next, cmd := m.interpret(action)
	if !item.PreventClose && !next.Quitting {
		cmds := next.setQuery("")
		next.queryInput.SetValue("")
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return next, tea.Batch(cmds...)
	}
	return next, cmd
}

func (m Model) interpret(action model.Action) (Model, tea.Cmd) {
	switch typed := action.(type) {
	case model.OpenURL:
		if err := m.deps.Opener.OpenURL(typed.URL); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
		}
		return m, nil
	case model.OpenPath:
		if err := m.deps.Opener.OpenPath(typed.Path); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
		}
		return m, nil
	case model.FocusWidget:
		if typed.Widget == model.WidgetMap {
			target := "https://google.com/maps/search/" + url.QueryEscape(m.Query)
			if err := m.deps.Opener.OpenURL(target); err != nil {
				m.Status = StatusBar{Text: err.Error(), IsError: true}
			}
			return m, nil
		}
		return m.focusWidget(typed.Widget), nil
	case model.WebSearch:
		target := "https://google.com/search?q=" + url.QueryEscape(m.Query)
		if err := m.deps.Opener.OpenURL(target); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
		}
		return m, nil
	case model.TranslateQuery:
		next := m.focusWidget(model.WidgetTranslation)
		if queryIsBlank(next.Query) {
			return next, nil
		}
		return next, translateCmd(next.deps.Translator, next.Query)
	case model.RunScript:
		if err := m.deps.Scripts.Run(typed.Script); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
		}
		return m, nil
	case model.StartTracking:
		if err := m.Tracker.Track(typed.ProjectID, m.now()); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
		}
		return m, nil
	case model.StopTracking:
		if err := m.Tracker.Stop(m.now()); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
		}
		return m, nil
	case model.Quit:
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) focusWidget(widget model.Widget) Model {
	m.Focused = widget
	switch widget {
	case model.WidgetProjectSelect:
		m.SelectedIndex = 0
	case model.WidgetProjectCreation, model.WidgetShortcuts:
		m.projectInput.SetValue("")
		m.projectInput.Focus()
		m.queryInput.Blur()
	case model.WidgetScratchpad:
		m.noteArea.SetValue(m.Note)
		m.noteArea.Focus()
		m.queryInput.Blur()
	case model.WidgetEmojis:
		m.EmojiIndex = 0
		m.Query = ""
		m.queryInput.SetValue("")
		m.queryInput.Focus()
	case model.WidgetSearch:
		m.Query = ""
		m.queryInput.SetValue("")
		m.queryInput.Focus()
		m.recompose()
	default:
		m.queryInput.Focus()
	}
	return m
}

// toggleFavorite pins or unpins the highlighted item by name. Only catalog
// items may be pinned: file and repository results come and go with the
// query, so a favorite pointing at one would never resolve again. Favorites
// are capped; over capacity the toggle is refused with a notice rather than
// evicting.
func (m *Model) toggleFavorite() {
	item, ok := m.SelectedItem()
	if !ok || item.Kind == model.KindTemporary {
		return
	}
	name := item.Key()
	for i, existing := range m.Favorites {
		if existing == name {
			m.Favorites = append(m.Favorites[:i], m.Favorites[i+1:]...)
			m.persist()
			m.recompose()
			return
		}
	}
	if !m.inCatalog(name) {
		return
	}
	if len(m.Favorites) >= favoritesCapacity {
		m.Status = StatusBar{Text: "favorites are limited to 5 items", IsError: true}
		return
	}
	m.Favorites = append(m.Favorites, name)
	m.persist()
	m.recompose()
}

func (m Model) inCatalog(name string) bool {
	for _, item := range m.Apps {
		if item.Name == name {
			return true
		}
	}
	for _, item := range m.Static {
		if item.Name == name {
			return true
		}
	}
	for _, item := range m.CustomItems {
		if item.Name == name {
			return true
		}
	}
	for _, set := range m.BookmarkSets {
		for _, item := range set {
			if item.Name == name {
				return true
			}
		}
	}
	return false
}
