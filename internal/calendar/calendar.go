// Package calendar groups time-stamped events into relative, human-meaningful
// day buckets and detects the event the user is about to join. It is a pure
// read-model: events come wholesale from the calendar collaborator on each
// poll and are never mutated here.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/serendipious/solGPT/internal/model"
)

const (
	// DefaultHorizonDays is how many consecutive days get a bucket.
	DefaultHorizonDays = 3
	// PollInterval is how often events are refetched while enabled.
	PollInterval = 10 * time.Second

	// UpcomingLead keeps an event "upcoming" for this long after its start
	// instant has passed.
	UpcomingLead = 20 * time.Minute
	// UpcomingTrail is how far ahead of now an event may start and still be
	// considered upcoming.
	UpcomingTrail = 10 * time.Minute

	statusTitleMax = 32
)

// DayBucket is one relative day with the events belonging to it.
type DayBucket struct {
	Label  string
	Date   time.Time
	Events []model.Event
}

// Bucket groups events into horizonDays consecutive day buckets starting at
// refDay, in chronological order. An all-day event belongs to every bucket
// day inside its [Start, End] span, inclusive; a timed event belongs to the
// bucket matching its local start date.
func Bucket(events []model.Event, refDay time.Time, horizonDays int) []DayBucket {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	buckets := make([]DayBucket, 0, horizonDays)
	for i := 0; i < horizonDays; i++ {
		day := startOfDay(refDay).AddDate(0, 0, i)
		bucket := DayBucket{
			Label: RelativeDayLabel(day, refDay),
			Date:  day,
		}
		for _, event := range events {
			if belongsToDay(event, day) {
				bucket.Events = append(bucket.Events, event)
			}
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

func belongsToDay(event model.Event, day time.Time) bool {
	if event.IsAllDay {
		startDay := startOfDay(event.Start)
		endDay := startOfDay(event.End)
		if event.End.IsZero() {
			endDay = startDay
		}
		return !day.Before(startDay) && !day.After(endDay)
	}
	return sameDay(event.Start, day)
}

// RelativeDayLabel renders a day relative to ref: "today", "tomorrow", then
// the lowercase weekday name.
func RelativeDayLabel(day, ref time.Time) string {
	switch daysBetween(ref, day) {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	default:
		return strings.ToLower(day.Weekday().String())
	}
}

// FindUpcoming returns the first event (list order) starting within the next
// UpcomingTrail, kept upcoming for UpcomingLead after its start passes.
func FindUpcoming(events []model.Event, now time.Time) (model.Event, bool) {
	for _, event := range events {
		stillRelevant := !now.After(event.Start.Add(UpcomingLead))
		closeEnough := !event.Start.After(now.Add(UpcomingTrail))
		if stillRelevant && closeEnough {
			return event, true
		}
	}
	return model.Event{}, false
}

// NextToday returns the first event that has not been over for UpcomingTrail
// and still starts before the end of the day. It feeds the status-line
// countdown, which is recomputed on every poll.
func NextToday(events []model.Event, now time.Time) (model.Event, bool) {
	endOfDay := startOfDay(now).AddDate(0, 0, 1)
	for _, event := range events {
		if !now.After(event.Start.Add(UpcomingTrail)) && event.Start.Before(endOfDay) {
			return event, true
		}
	}
	return model.Event{}, false
}

// StatusTitle formats the status-line label for an event: remaining time as
// "<title> in 1h 5m" before start, "<title> has started" afterwards.
func StatusTitle(event model.Event, now time.Time) string {
	title := strings.TrimSpace(event.Title)
	if runes := []rune(title); len(runes) > statusTitleMax {
		title = string(runes[:statusTitleMax])
	}
	if !now.Before(event.Start) {
		return fmt.Sprintf("%s has started", title)
	}
	minutes := int(event.Start.Sub(now).Minutes())
	hours := minutes / 60
	if hours > 0 {
		return fmt.Sprintf("%s in %dh %dm", title, hours, minutes-hours*60)
	}
	return fmt.Sprintf("%s in %dm", title, minutes)
}

// Filter applies the live-query filter when a query is set; otherwise it
// drops declined and cancelled events, and all-day events when disabled.
func Filter(events []model.Event, query string, showAllDay bool) []model.Event {
	out := make([]model.Event, 0, len(events))
	lowered := strings.ToLower(strings.TrimSpace(query))
	for _, event := range events {
		if lowered != "" {
			if strings.Contains(strings.ToLower(event.Title), lowered) {
				out = append(out, event)
			}
			continue
		}
		if event.Status == model.EventStatusCanceled || event.Declined {
			continue
		}
		if !showAllDay && event.IsAllDay {
			continue
		}
		out = append(out, event)
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func daysBetween(from, to time.Time) int {
	// Rounding keeps DST-shortened days from collapsing into the previous one.
	hours := startOfDay(to).Sub(startOfDay(from)).Hours()
	if hours >= 0 {
		return int((hours + 12) / 24)
	}
	return -int((-hours + 12) / 24)
}
