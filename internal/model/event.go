package model

import (
	"errors"
	"time"
)

var ErrEventRange = errors.New("model: event end precedes start")

type EventStatus int

const (
	EventStatusNone      EventStatus = 0
	EventStatusConfirmed EventStatus = 1
	EventStatusTentative EventStatus = 2
	EventStatusCanceled  EventStatus = 3
)

// Event is a calendar entry produced wholesale by the calendar collaborator
// on each poll. The engine only reads events.
type Event struct {
	Title    string
	Start    time.Time
	End      time.Time
	IsAllDay bool
	Location string
	Notes    string
	URL      string
	Status   EventStatus
	Declined bool
}

func (e Event) Validate() error {
	if e.Start.IsZero() {
		return errors.New("model: event start is required")
	}
	if !e.End.IsZero() && e.End.Before(e.Start) {
		return ErrEventRange
	}
	return nil
}
