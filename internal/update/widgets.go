package update

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/serendipious/solGPT/internal/emoji"
	"github.com/serendipious/solGPT/internal/model"
)

// handleProjectCreationKey drives the single-input project creation widget.
func (m Model) handleProjectCreationKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.focusWidget(model.WidgetSearch), nil
	case "enter":
		name := strings.TrimSpace(m.projectInput.Value())
		project, err := m.Tracker.CreateProject(name)
		if err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		m.persist()
		m.Status = StatusBar{Text: "created project " + project.Name, IsError: false}
		return m.focusWidget(model.WidgetProjectSelect), nil
	}
	var cmd tea.Cmd
	m.projectInput, cmd = m.projectInput.Update(msg)
	return m, cmd
}

// handleShortcutKey creates a custom item. The input format is
// "name | icon | target"; a target starting with "script:" runs instead of
// opening.
func (m Model) handleShortcutKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.focusWidget(model.WidgetSearch), nil
	case "enter":
		item, err := parseCustomItem(m.projectInput.Value())
		if err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		m.CustomItems = append(m.CustomItems, item)
		m.persist()
		m.recompose()
		m.Status = StatusBar{Text: "created shortcut " + item.Name, IsError: false}
		return m.focusWidget(model.WidgetSearch), nil
	}
	var cmd tea.Cmd
	m.projectInput, cmd = m.projectInput.Update(msg)
	return m, cmd
}

var errInvalidShortcut = errors.New("update: shortcut format is name | icon | target")

func parseCustomItem(raw string) (model.CustomItem, error) {
	parts := strings.Split(raw, "|")
	if len(parts) != 3 {
		return model.CustomItem{}, errInvalidShortcut
	}
	name := strings.TrimSpace(parts[0])
	icon := strings.TrimSpace(parts[1])
	target := strings.TrimSpace(parts[2])
	if name == "" || target == "" {
		return model.CustomItem{}, errInvalidShortcut
	}
	item := model.CustomItem{Name: name, Icon: icon, Text: target}
	if strings.HasPrefix(target, "script:") {
		item.IsScript = true
		item.Text = strings.TrimPrefix(target, "script:")
	}
	return item, nil
}

// handleProjectSelectKey picks a tracking project by list position.
func (m Model) handleProjectSelectKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	projects := m.Tracker.Projects()
	switch msg.String() {
	case "esc":
		return m.focusWidget(model.WidgetSearch), nil
	case "up", "ctrl+p":
		m.moveProjectCursor(-1)
		return m, nil
	case "down", "ctrl+n":
		m.moveProjectCursor(1)
		return m, nil
	case "enter":
		if m.SelectedIndex >= 0 && m.SelectedIndex < len(projects) {
			if err := m.Tracker.Track(projects[m.SelectedIndex].ID, m.now()); err != nil {
				m.Status = StatusBar{Text: err.Error(), IsError: true}
				return m, nil
			}
			m.persist()
			m.Status = StatusBar{Text: "tracking " + projects[m.SelectedIndex].Name, IsError: false}
		}
		return m.focusWidget(model.WidgetSearch), nil
	}
	return m, nil
}

func (m *Model) moveProjectCursor(delta int) {
	count := len(m.Tracker.Projects())
	if count == 0 {
		m.SelectedIndex = 0
		return
	}
	m.SelectedIndex += delta
	if m.SelectedIndex < 0 {
		m.SelectedIndex = 0
	}
	if m.SelectedIndex >= count {
		m.SelectedIndex = count - 1
	}
}

// handleScratchpadKey routes keys into the note area; esc saves and leaves.
func (m Model) handleScratchpadKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.Note = m.noteArea.Value()
		m.persist()
		return m.focusWidget(model.WidgetSearch), nil
	}
	var cmd tea.Cmd
	m.noteArea, cmd = m.noteArea.Update(msg)
	return m, cmd
}

// handleEmojiKey moves the grid cursor, filters through the shared query
// input and inserts the picked emoji.
func (m Model) handleEmojiKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.focusWidget(model.WidgetSearch), nil
	case "left":
		if m.EmojiIndex > 0 {
			m.EmojiIndex--
		}
		return m, nil
	case "right":
		m.EmojiIndex++
		m.clampEmojiIndex()
		return m, nil
	case "up":
		m.EmojiIndex -= emoji.PerRow
		if m.EmojiIndex < 0 {
			m.EmojiIndex = 0
		}
		return m, nil
	case "down":
		m.EmojiIndex += emoji.PerRow
		m.clampEmojiIndex()
		return m, nil
	case "enter":
		picked, ok := m.Emoji.PickAt(m.EmojiIndex, m.Query)
		if !ok {
			return m, nil
		}
		m.persist()
		if err := m.deps.Inserter.InsertText(picked.Char); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		return m.focusWidget(model.WidgetSearch), nil
	}
	var cmd tea.Cmd
	m.queryInput, cmd = m.queryInput.Update(msg)
	m.Query = m.queryInput.Value()
	m.EmojiIndex = 0
	return m, cmd
}

func (m *Model) clampEmojiIndex() {
	total := len(emoji.Search(m.Query))
	if m.Query == "" {
		total += len(m.Emoji.FavoritesRow())
	}
	if total == 0 {
		m.EmojiIndex = 0
		return
	}
	if m.EmojiIndex >= total {
		m.EmojiIndex = total - 1
	}
}

// handleSettingsKey toggles feature flags by digit.
func (m Model) handleSettingsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.focusWidget(model.WidgetSearch), nil
	case "1":
		m.Settings.GithubSearchEnabled = !m.Settings.GithubSearchEnabled
	case "2":
		m.Settings.CalendarEnabled = !m.Settings.CalendarEnabled
		m.refreshCalendarDerived()
	case "3":
		m.Settings.ShowAllDayEvents = !m.Settings.ShowAllDayEvents
		m.refreshCalendarDerived()
	case "4":
		m.Settings.StatusBarItemEnabled = !m.Settings.StatusBarItemEnabled
		m.refreshCalendarDerived()
	default:
		return m, nil
	}
	m.persist()
	m.recompose()
	return m, nil
}

// handleClipboardKey re-inserts the current clipboard text on enter.
func (m Model) handleClipboardKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.focusWidget(model.WidgetSearch), nil
	case "enter":
		content, err := clipboard.ReadAll()
		if err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		if err := m.deps.Inserter.InsertText(content); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		return m.focusWidget(model.WidgetSearch), nil
	}
	return m, nil
}

// handleTranslationKey only needs to exit; results render passively.
func (m Model) handleTranslationKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "esc" || msg.String() == "enter" {
		m.Translations = nil
		return m.focusWidget(model.WidgetSearch), nil
	}
	return m, nil
}
