package update

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/serendipious/solGPT/internal/emoji"
	"github.com/serendipious/solGPT/internal/model"
	"github.com/serendipious/solGPT/internal/tracking"
	"github.com/serendipious/solGPT/internal/views"
)

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	left := m.renderFocusedPane()
	right := m.renderCalendarPane()

	header := "sol"
	if m.StatusTitle != "" {
		header = "sol | " + m.StatusTitle
	}
	if current, ok := m.Tracker.Current(); ok {
		header += " | ⏱ " + current.Name
	}

	return views.RenderApp(views.AppData{
		Header:      header,
		LeftPane:    left,
		RightPane:   right,
		StatusLine:  m.Status.Text,
		StatusError: m.Status.IsError,
		Footer:      "keys: ↑/↓ move | enter run | ^f fav | ^t cal | ^e emoji | ^s notes | esc back",
	})
}

func (m Model) renderFocusedPane() string {
	switch m.Focused {
	case model.WidgetProjectSelect:
		return m.renderProjectPane()
	case model.WidgetProjectCreation:
		return "new project:\n" + m.projectInput.View()
	case model.WidgetShortcuts:
		return "new shortcut (name | icon | target):\n" + m.projectInput.View()
	case model.WidgetScratchpad:
		return views.RenderScratchpad(m.noteArea.View(), views.RenderMarkdown(m.Note))
	case model.WidgetEmojis:
		return m.renderEmojiPane()
	case model.WidgetSettings:
		return views.RenderSettingsPanel(views.SettingsPanelData{
			GithubSearchEnabled:  m.Settings.GithubSearchEnabled,
			CalendarEnabled:      m.Settings.CalendarEnabled,
			ShowAllDayEvents:     m.Settings.ShowAllDayEvents,
			StatusBarItemEnabled: m.Settings.StatusBarItemEnabled,
		})
	case model.WidgetClipboard:
		return m.renderClipboardPane()
	case model.WidgetTranslation:
		return views.RenderTranslationPanel(views.TranslationPanelData{
			Query:   m.Query,
			Results: m.Translations,
		})
	default:
		return m.renderResultsPane()
	}
}

func (m Model) renderResultsPane() string {
	items := make([]views.ResultItemData, 0, len(m.Results))
	for _, result := range m.Results {
		items = append(items, views.ResultItemData{
			Icon:     result.Icon,
			Name:     result.Name,
			Subtitle: result.Subtitle,
			Shortcut: result.Shortcut,
			Favorite: m.isFavorite(result.Key()),
		})
	}
	return views.RenderResultsPanel(views.ResultsPanelData{
		InputView: m.queryInput.View(),
		Items:     items,
		Selected:  m.SelectedIndex,
		Searching: m.searchingRemote(),
		SpinView:  m.spin.View(),
	})
}

func (m Model) renderCalendarPane() string {
	if !m.Settings.CalendarEnabled {
		return "calendar: off"
	}
	buckets := m.calendarBuckets()
	data := views.CalendarPanelData{StatusTitle: m.StatusTitle}
	for _, bucket := range buckets {
		pane := views.CalendarBucketData{Label: bucket.Label}
		for _, event := range bucket.Events {
			pane.Events = append(pane.Events, views.CalendarEventData{
				Title:    event.Title,
				Time:     event.Start.Format("15:04"),
				IsAllDay: event.IsAllDay,
			})
		}
		data.Buckets = append(data.Buckets, pane)
	}
	return views.RenderCalendarPanel(data)
}

func (m Model) renderProjectPane() string {
	projects := m.Tracker.Projects()
	data := views.ProjectPanelData{Selected: m.SelectedIndex}
	currentID := m.Tracker.CurrentID()

	var selected []model.Period
	for i, project := range projects {
		data.Projects = append(data.Projects, views.ProjectData{
			Name:     project.Name,
			Tracking: project.ID == currentID,
		})
		if i == m.SelectedIndex {
			selected = project.Periods
		}
	}

	now := m.now()
	totals := tracking.ComputeTotals(selected, now)
	data.TodayMinutes = totals.TodayMinutes
	data.MonthMinutes = totals.MonthMinutes
	data.Heatmap = tracking.Heatmap(selected, now, tracking.DefaultLookbackDays)
	return views.RenderProjectPanel(data)
}

func (m Model) renderEmojiPane() string {
	data := views.EmojiGridData{
		Selected: m.EmojiIndex,
		PerRow:   emoji.PerRow,
	}
	if m.Query == "" {
		for _, favorite := range m.Emoji.FavoritesRow() {
			data.Favorites = append(data.Favorites, favorite.Char)
		}
	}
	for _, entry := range emoji.Search(m.Query) {
		data.Grid = append(data.Grid, entry.Char)
	}
	return fmt.Sprintf("emoji: %s\n%s", m.queryInput.View(), views.RenderEmojiGrid(data))
}

func (m Model) renderClipboardPane() string {
	content, err := clipboard.ReadAll()
	if err != nil {
		content = "(clipboard unavailable)"
	}
	return "clipboard:\n" + content + "\nkeys: [enter] paste [esc] back"
}

func (m Model) isFavorite(key string) bool {
	for _, favorite := range m.Favorites {
		if favorite == key {
			return true
		}
	}
	return false
}
