package update

import (
	"context"
	"time"

	"github.com/serendipious/solGPT/internal/calendar"
	"github.com/serendipious/solGPT/internal/model"
	"github.com/serendipious/solGPT/internal/storage"
)

// applyEvents replaces the cached event set, recomputes the derived calendar
// state and refreshes the persisted cache.
func (m *Model) applyEvents(events []model.Event) {
	m.Events = events
	m.refreshCalendarDerived()
	if m.store != nil {
		state := storage.CalendarState{Events: eventsToState(events)}
		if err := storage.SaveCalendarState(context.Background(), m.store, state); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
		}
	}
}

// restoreCachedEvents seeds the event set from the last session so the
// calendar pane is populated before the first poll returns.
func (m *Model) restoreCachedEvents() error {
	state, err := storage.LoadCalendarState(context.Background(), m.store)
	if err != nil {
		return err
	}
	m.Events = eventsFromState(state.Events)
	m.refreshCalendarDerived()
	return nil
}

func eventsToState(events []model.Event) []storage.EventState {
	out := make([]storage.EventState, 0, len(events))
	for _, event := range events {
		out = append(out, storage.EventState{
			Title:    event.Title,
			Start:    event.Start.UnixMilli(),
			End:      event.End.UnixMilli(),
			IsAllDay: event.IsAllDay,
			Location: event.Location,
			Notes:    event.Notes,
			URL:      event.URL,
			Status:   int(event.Status),
			Declined: event.Declined,
		})
	}
	return out
}

func eventsFromState(in []storage.EventState) []model.Event {
	out := make([]model.Event, 0, len(in))
	for _, event := range in {
		out = append(out, model.Event{
			Title:    event.Title,
			Start:    time.UnixMilli(event.Start),
			End:      time.UnixMilli(event.End),
			IsAllDay: event.IsAllDay,
			Location: event.Location,
			Notes:    event.Notes,
			URL:      event.URL,
			Status:   model.EventStatus(event.Status),
			Declined: event.Declined,
		})
	}
	return out
}

// refreshCalendarDerived recomputes the upcoming event and the status-bar
// title against the current clock. Called on event arrival and on every
// poll tick.
func (m *Model) refreshCalendarDerived() {
	if !m.Settings.CalendarEnabled {
		m.Upcoming = nil
		m.StatusTitle = ""
		return
	}
	now := m.now()
	visible := calendar.Filter(m.Events, "", m.Settings.ShowAllDayEvents)
	if upcoming, ok := calendar.FindUpcoming(visible, now); ok {
		m.Upcoming = &upcoming
	} else {
		m.Upcoming = nil
	}

	m.StatusTitle = ""
	if m.Settings.StatusBarItemEnabled {
		if next, ok := calendar.NextToday(visible, now); ok {
			m.StatusTitle = calendar.StatusTitle(next, now)
		}
	}
}

// calendarBuckets groups the visible events per day for the calendar pane.
func (m Model) calendarBuckets() []calendar.DayBucket {
	if !m.Settings.CalendarEnabled {
		return nil
	}
	query := ""
	if m.Focused == model.WidgetCalendar {
		query = m.Query
	}
	visible := calendar.Filter(m.Events, query, m.Settings.ShowAllDayEvents)
	return calendar.Bucket(visible, m.now(), calendar.DefaultHorizonDays)
}
