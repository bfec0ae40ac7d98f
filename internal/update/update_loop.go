package update

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/serendipious/solGPT/internal/model"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		waitForAsyncCmd(m.async),
		waitForFileResultsCmd(m.deps.Files),
	}
	if m.Settings.CalendarEnabled {
		cmds = append(cmds, fetchEventsCmd(m.deps.Calendar), calendarTickCmd())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(typed)
		if m.searchingRemote() {
			return m, cmd
		}
		return m, nil

	case FileResultsMsg:
		// Replace wholesale, then keep listening.
		if m.Query != "" {
			m.FileResults = typed.Results
			m.recompose()
		}
		return m, waitForFileResultsCmd(m.deps.Files)

	case RepoQueryDueMsg:
		// The debounce window closed; fire the remote search if the
		// generation is still current and the feature remains on.
		if !m.debouncer.Accept(typed.Gen) || !m.Settings.GithubSearchEnabled || m.deps.Github == nil {
			return m, waitForAsyncCmd(m.async)
		}
		return m, tea.Batch(
			repoSearchCmd(m.deps.Github, typed.Query, m.Settings.GithubToken, typed.Gen),
			waitForAsyncCmd(m.async),
		)

	case RepoResultsMsg:
		if !m.debouncer.Accept(typed.Gen) {
			return m, nil
		}
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			// Failed search stops the loading indicator but keeps
			// whatever was already on screen.
			if m.RepoResults == nil {
				m.RepoResults = []model.RepoResult{}
			}
			return m, nil
		}
		m.RepoResults = typed.Results
		m.recompose()
		return m, nil

	case CalendarEventsMsg:
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			return m, nil
		}
		m.applyEvents(typed.Events)
		return m, nil

	case CalendarTickMsg:
		m.refreshCalendarDerived()
		if !m.Settings.CalendarEnabled {
			return m, nil
		}
		return m, tea.Batch(fetchEventsCmd(m.deps.Calendar), calendarTickCmd())

	case TranslationMsg:
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			return m, nil
		}
		m.Translations = typed.Results
		return m, nil

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil

	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}

	switch m.Focused {
	case model.WidgetProjectCreation:
		return m.handleProjectCreationKey(msg)
	case model.WidgetShortcuts:
		return m.handleShortcutKey(msg)
	case model.WidgetProjectSelect:
		return m.handleProjectSelectKey(msg)
	case model.WidgetScratchpad:
		return m.handleScratchpadKey(msg)
	case model.WidgetEmojis:
		return m.handleEmojiKey(msg)
	case model.WidgetSettings:
		return m.handleSettingsKey(msg)
	case model.WidgetTranslation:
		return m.handleTranslationKey(msg)
	case model.WidgetClipboard:
		return m.handleClipboardKey(msg)
	}

	// Search and calendar share the query input.
	switch msg.String() {
	case "esc":
		if m.Query != "" || m.Focused != model.WidgetSearch {
			return m.focusWidget(model.WidgetSearch), nil
		}
		m.Quitting = true
		return m, tea.Quit
	case "up", "ctrl+p":
		m.moveSelection(-1)
		return m, nil
	case "down", "ctrl+n":
		m.moveSelection(1)
		return m, nil
	case "enter":
		return m.executeSelection()
	case "ctrl+o":
		return m.executeSecondary()
	case "ctrl+f":
		m.toggleFavorite()
		return m, nil
	case "ctrl+t":
		return m.focusWidget(model.WidgetCalendar), nil
	case "ctrl+e":
		return m.focusWidget(model.WidgetEmojis), nil
	case "ctrl+s":
		return m.focusWidget(model.WidgetScratchpad), nil
	}

	var cmd tea.Cmd
	m.queryInput, cmd = m.queryInput.Update(msg)
	if value := m.queryInput.Value(); value != m.Query {
		cmds := m.setQuery(value)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}
	return m, cmd
}
