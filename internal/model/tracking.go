package model

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrPeriodRange    = errors.New("model: period end precedes start")
	ErrMultipleOpen   = errors.New("model: more than one open period")
	ErrUnknownProject = errors.New("model: unknown project")
)

// Period is one tracked interval. A nil End means the period is open and
// implicitly ends "now". Periods are append-only; closing sets End.
type Period struct {
	ID    string
	Start time.Time
	End   *time.Time
}

func (p Period) Open() bool { return p.End == nil }

// EffectiveEnd returns the stored end for closed periods and ref for open
// ones.
func (p Period) EffectiveEnd(ref time.Time) time.Time {
	if p.End != nil {
		return *p.End
	}
	return ref
}

func (p Period) Validate() error {
	if p.Start.IsZero() {
		return errors.New("model: period start is required")
	}
	if p.End != nil && p.End.Before(p.Start) {
		return ErrPeriodRange
	}
	return nil
}

type TrackingProject struct {
	ID      string
	Name    string
	Periods []Period
}

func (p TrackingProject) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("model: project id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("model: project name is required")
	}
	open := 0
	for _, period := range p.Periods {
		if err := period.Validate(); err != nil {
			return err
		}
		if period.Open() {
			open++
		}
	}
	if open > 1 {
		return ErrMultipleOpen
	}
	return nil
}

// OpenPeriod returns the index of the open period, if any.
func (p TrackingProject) OpenPeriod() (int, bool) {
	for i := len(p.Periods) - 1; i >= 0; i-- {
		if p.Periods[i].Open() {
			return i, true
		}
	}
	return 0, false
}
