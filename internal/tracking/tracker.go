// Package tracking owns tracked projects and their time periods. Globally at
// most one period may be open: starting a period on any project first closes
// whatever is running elsewhere.
package tracking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/serendipious/solGPT/internal/model"
)

var (
	ErrEmptyName      = errors.New("tracking: project name is required")
	ErrUnknownProject = errors.New("tracking: unknown project")
	ErrNotTracking    = errors.New("tracking: no project is being tracked")
)

type Tracker struct {
	projects  []model.TrackingProject
	currentID string
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Restore replaces all tracker state from a persisted snapshot.
func (t *Tracker) Restore(projects []model.TrackingProject, currentID string) {
	t.projects = projects
	t.currentID = currentID
}

func (t *Tracker) Projects() []model.TrackingProject {
	return t.projects
}

func (t *Tracker) CreateProject(name string) (model.TrackingProject, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return model.TrackingProject{}, ErrEmptyName
	}
	project := model.TrackingProject{ID: uuid.NewString(), Name: trimmed}
	t.projects = append(t.projects, project)
	return project, nil
}

// Current returns the project with the open period, if any.
func (t *Tracker) Current() (model.TrackingProject, bool) {
	if t.currentID == "" {
		return model.TrackingProject{}, false
	}
	for _, project := range t.projects {
		if project.ID == t.currentID {
			return project, true
		}
	}
	return model.TrackingProject{}, false
}

// Track starts a new open period on the given project at now. Any open
// period anywhere is closed first with its end set to now, preserving the
// single-open-period invariant.
func (t *Tracker) Track(id string, now time.Time) error {
	index := -1
	for i, project := range t.projects {
		if project.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return ErrUnknownProject
	}

	t.closeOpenPeriods(now)
	t.projects[index].Periods = append(t.projects[index].Periods, model.Period{
		ID:    uuid.NewString(),
		Start: now,
	})
	t.currentID = id
	return nil
}

// Stop closes the currently open period at now.
func (t *Tracker) Stop(now time.Time) error {
	if t.currentID == "" {
		return ErrNotTracking
	}
	t.closeOpenPeriods(now)
	t.currentID = ""
	return nil
}

func (t *Tracker) closeOpenPeriods(now time.Time) {
	for i := range t.projects {
		for j := range t.projects[i].Periods {
			if t.projects[i].Periods[j].Open() {
				end := now
				t.projects[i].Periods[j].End = &end
			}
		}
	}
}

func (t *Tracker) CurrentID() string { return t.currentID }
