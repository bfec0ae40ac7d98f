package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// UIState is the persisted engine state, serialized as the "ui" snapshot.
// Period bounds are unix milliseconds; a zero End marks the open period.
type UIState struct {
	Frequencies      map[string]int    `json:"frequencies"`
	EmojiFrequencies map[string]int    `json:"emoji_frequencies"`
	Favorites        []string          `json:"favorites"`
	CustomItems      []CustomItemState `json:"custom_items"`
	Projects         []ProjectState    `json:"projects"`
	CurrentProjectID string            `json:"current_project_id"`
	Note             string            `json:"note"`
	Settings         SettingsState     `json:"settings"`
}

type CustomItemState struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Text     string `json:"text"`
	IsScript bool   `json:"is_script"`
}

type ProjectState struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Periods []PeriodState `json:"periods"`
}

type PeriodState struct {
	ID    string `json:"id"`
	Start int64  `json:"start"`
	End   int64  `json:"end,omitempty"`
}

type SettingsState struct {
	GithubSearchEnabled  bool   `json:"github_search_enabled"`
	GithubToken          string `json:"github_token,omitempty"`
	CalendarEnabled      bool   `json:"calendar_enabled"`
	ShowAllDayEvents     bool   `json:"show_all_day_events"`
	StatusBarItemEnabled bool   `json:"status_bar_item_enabled"`
}

// DefaultSettings matches first-run behavior: calendar surfaces on, remote
// repo search off until a user opts in.
func DefaultSettings() SettingsState {
	return SettingsState{
		CalendarEnabled:      true,
		ShowAllDayEvents:     true,
		StatusBarItemEnabled: true,
	}
}

// LoadUIState reads and decodes the "ui" snapshot. A missing snapshot is a
// first run and yields a zero state with default settings, not an error.
func LoadUIState(ctx context.Context, store SnapshotStore) (UIState, error) {
	raw, err := store.Load(ctx, KeyUI)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return UIState{Settings: DefaultSettings()}, nil
		}
		return UIState{}, err
	}
	var state UIState
	if err := json.Unmarshal(raw, &state); err != nil {
		return UIState{}, fmt.Errorf("decode ui state: %w", err)
	}
	return state, nil
}

func SaveUIState(ctx context.Context, store SnapshotStore, state UIState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode ui state: %w", err)
	}
	return store.Save(ctx, KeyUI, raw)
}

// CalendarState caches the last fetched event set so a fresh session shows
// events before the first poll completes. Instants are unix milliseconds.
type CalendarState struct {
	Events []EventState `json:"events"`
}

type EventState struct {
	Title    string `json:"title"`
	Start    int64  `json:"start"`
	End      int64  `json:"end"`
	IsAllDay bool   `json:"is_all_day"`
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`
	URL      string `json:"url,omitempty"`
	Status   int    `json:"status,omitempty"`
	Declined bool   `json:"declined,omitempty"`
}

func LoadCalendarState(ctx context.Context, store SnapshotStore) (CalendarState, error) {
	raw, err := store.Load(ctx, KeyCalendar)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return CalendarState{}, nil
		}
		return CalendarState{}, err
	}
	var state CalendarState
	if err := json.Unmarshal(raw, &state); err != nil {
		return CalendarState{}, fmt.Errorf("decode calendar state: %w", err)
	}
	return state, nil
}

func SaveCalendarState(ctx context.Context, store SnapshotStore, state CalendarState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode calendar state: %w", err)
	}
	return store.Save(ctx, KeyCalendar, raw)
}
