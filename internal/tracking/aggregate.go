package tracking

import (
	"time"

	"github.com/serendipious/solGPT/internal/model"
)

// DefaultLookbackDays bounds the heatmap window; older periods are ignored
// entirely.
const DefaultLookbackDays = 10

type Totals struct {
	TodayMinutes int
	MonthMinutes int
}

// ComputeTotals reduces periods to today/month minute totals relative to
// ref. A period counts toward "today" iff its start's calendar day equals
// ref's day, and toward "month" iff its start's calendar month equals ref's
// month — attribution is by start only, periods are not split at midnight.
// Open periods count up to ref.
func ComputeTotals(periods []model.Period, ref time.Time) Totals {
	var today, month time.Duration
	for _, period := range periods {
		elapsed := period.EffectiveEnd(ref).Sub(period.Start)
		if elapsed < 0 {
			continue
		}
		if sameDay(period.Start, ref) {
			today += elapsed
		}
		if sameMonth(period.Start, ref) {
			month += elapsed
		}
	}
	return Totals{
		TodayMinutes: int(today.Minutes()),
		MonthMinutes: int(month.Minutes()),
	}
}

// Heatmap aggregates minutes per start day for periods whose start day is
// within lookbackDays of now, keyed by the day-start instant in unix
// milliseconds.
func Heatmap(periods []model.Period, now time.Time, lookbackDays int) map[int64]int {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	out := make(map[int64]int)
	cutoff := startOfDay(now).AddDate(0, 0, -lookbackDays)
	for _, period := range periods {
		day := startOfDay(period.Start)
		if day.Before(cutoff) {
			continue
		}
		elapsed := period.EffectiveEnd(now).Sub(period.Start)
		if elapsed < 0 {
			continue
		}
		out[day.UnixMilli()] += int(elapsed.Minutes())
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
