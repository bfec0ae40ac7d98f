package update

import (
	"context"
	"time"

	"github.com/serendipious/solGPT/internal/model"
	"github.com/serendipious/solGPT/internal/storage"
)

// restoreState hydrates the engine from the persisted snapshot. A first run
// leaves the zero state with default settings in place.
func (m *Model) restoreState() error {
	state, err := storage.LoadUIState(context.Background(), m.store)
	if err != nil {
		return err
	}
	if state.Frequencies != nil {
		m.Frequencies.Restore(state.Frequencies)
	}
	if state.EmojiFrequencies != nil {
		m.Emoji.Recent().Restore(state.EmojiFrequencies)
	}
	m.Favorites = state.Favorites
	m.CustomItems = customItemsFromState(state.CustomItems)
	m.Tracker.Restore(projectsFromState(state.Projects), state.CurrentProjectID)
	m.Note = state.Note
	m.Settings = Settings{
		GithubSearchEnabled:  state.Settings.GithubSearchEnabled,
		GithubToken:          state.Settings.GithubToken,
		CalendarEnabled:      state.Settings.CalendarEnabled,
		ShowAllDayEvents:     state.Settings.ShowAllDayEvents,
		StatusBarItemEnabled: state.Settings.StatusBarItemEnabled,
	}
	return nil
}

// persist writes the whole engine snapshot. Best effort: a failed write
// surfaces on the status bar and the session keeps going.
func (m *Model) persist() {
	if m.store == nil {
		return
	}
	state := storage.UIState{
		Frequencies:      m.Frequencies.Snapshot(),
		EmojiFrequencies: m.Emoji.Recent().Snapshot(),
		Favorites:        m.Favorites,
		CustomItems:      customItemsToState(m.CustomItems),
		Projects:         projectsToState(m.Tracker.Projects()),
		CurrentProjectID: m.Tracker.CurrentID(),
		Note:             m.Note,
		Settings: storage.SettingsState{
			GithubSearchEnabled:  m.Settings.GithubSearchEnabled,
			GithubToken:          m.Settings.GithubToken,
			CalendarEnabled:      m.Settings.CalendarEnabled,
			ShowAllDayEvents:     m.Settings.ShowAllDayEvents,
			StatusBarItemEnabled: m.Settings.StatusBarItemEnabled,
		},
	}
	if err := storage.SaveUIState(context.Background(), m.store, state); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	}
}

func customItemsFromState(in []storage.CustomItemState) []model.CustomItem {
	out := make([]model.CustomItem, 0, len(in))
	for _, item := range in {
		out = append(out, model.CustomItem{
			Name:     item.Name,
			Icon:     item.Icon,
			Text:     item.Text,
			IsScript: item.IsScript,
		})
	}
	return out
}

func customItemsToState(in []model.CustomItem) []storage.CustomItemState {
	out := make([]storage.CustomItemState, 0, len(in))
	for _, item := range in {
		out = append(out, storage.CustomItemState{
			Name:     item.Name,
			Icon:     item.Icon,
			Text:     item.Text,
			IsScript: item.IsScript,
		})
	}
	return out
}

func projectsFromState(in []storage.ProjectState) []model.TrackingProject {
	out := make([]model.TrackingProject, 0, len(in))
	for _, project := range in {
		periods := make([]model.Period, 0, len(project.Periods))
		for _, period := range project.Periods {
			p := model.Period{
				ID:    period.ID,
				Start: time.UnixMilli(period.Start),
			}
			if period.End != 0 {
				end := time.UnixMilli(period.End)
				p.End = &end
			}
			periods = append(periods, p)
		}
		out = append(out, model.TrackingProject{
			ID:      project.ID,
			Name:    project.Name,
			Periods: periods,
		})
	}
	return out
}

func projectsToState(in []model.TrackingProject) []storage.ProjectState {
	out := make([]storage.ProjectState, 0, len(in))
	for _, project := range in {
		periods := make([]storage.PeriodState, 0, len(project.Periods))
		for _, period := range project.Periods {
			p := storage.PeriodState{
				ID:    period.ID,
				Start: period.Start.UnixMilli(),
			}
			if period.End != nil {
				p.End = period.End.UnixMilli()
			}
			periods = append(periods, p)
		}
		out = append(out, storage.ProjectState{
			ID:      project.ID,
			Name:    project.Name,
			Periods: periods,
		})
	}
	return out
}
