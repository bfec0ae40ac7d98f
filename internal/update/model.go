package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/serendipious/solGPT/internal/debounce"
	"github.com/serendipious/solGPT/internal/emoji"
	"github.com/serendipious/solGPT/internal/frequency"
	"github.com/serendipious/solGPT/internal/model"
	"github.com/serendipious/solGPT/internal/sources"
	"github.com/serendipious/solGPT/internal/storage"
	"github.com/serendipious/solGPT/internal/tracking"
)

const favoritesCapacity = 5

type StatusBar struct {
	Text    string
	IsError bool
}

type Settings struct {
	GithubSearchEnabled  bool
	GithubToken          string
	CalendarEnabled      bool
	ShowAllDayEvents     bool
	StatusBarItemEnabled bool
}

// Collaborators are the OS-facing adapters the engine drives. Zero values
// are replaced with noops so tests can construct a Model directly.
type Collaborators struct {
	Files      sources.FileSearcher
	Calendar   sources.CalendarSource
	Github     *sources.GitHubClient
	Translator sources.Translator
	Opener     sources.Opener
	Inserter   sources.Inserter
	Scripts    sources.ScriptRunner
}

// Model is the whole engine state. It recomputes the visible result list
// from the query and catalogs on every relevant mutation; async sources
// deliver through messages and are folded in on arrival.
type Model struct {
	Query         string
	Focused       model.Widget
	SelectedIndex int
	Results       []model.Item

	// Catalogs, in the order the composer consumes them.
	Apps         []model.Item
	Static       []model.Item
	CustomItems  []model.CustomItem
	BookmarkSets [][]model.Item
	Fallback     []model.Item

	// Async tiers.
	FileResults     []model.FileDescription
	RepoResults     []model.RepoResult
	TemporaryResult string
	Translations    []string

	Frequencies *frequency.Store
	Favorites   []string
	Emoji       *emoji.Picker
	EmojiIndex  int
	Tracker     *tracking.Tracker

	Events      []model.Event
	Upcoming    *model.Event
	StatusTitle string

	Settings Settings
	Note     string
	Status   StatusBar

	Quitting  bool
	LastError error

	deps      Collaborators
	store     storage.SnapshotStore
	debouncer *debounce.Runner
	async     chan tea.Msg

	queryInput   textinput.Model
	noteArea     textarea.Model
	projectInput textinput.Model
	spin         spinner.Model

	now func() time.Time
}

func NewModel() Model {
	m := Model{
		Focused:     model.WidgetSearch,
		Frequencies: frequency.New(),
		Emoji:       emoji.NewPicker(),
		Tracker:     tracking.NewTracker(),
		Fallback:    sources.FallbackItems(),
		Settings: Settings{
			CalendarEnabled:      true,
			ShowAllDayEvents:     true,
			StatusBarItemEnabled: true,
		},
		deps: Collaborators{
			Files:      sources.NewNoopFileSearcher(),
			Calendar:   sources.NoopCalendarSource{},
			Opener:     sources.ExecOpener{},
			Scripts:    noopScriptRunner{},
			Inserter:   noopInserter{},
			Translator: noopTranslator{},
		},
		async: make(chan tea.Msg, 16),
		now:   time.Now,
	}
	m.debouncer = newRepoDebouncer(debounce.DefaultDelay, m.async)
	m.initInputs()
	m.recompose()
	return m
}

func NewModelWithConfig(cfg RuntimeConfig, store storage.SnapshotStore, deps Collaborators) Model {
	m := NewModel()
	m.store = store
	if deps.Files != nil {
		m.deps.Files = deps.Files
	}
	if deps.Calendar != nil {
		m.deps.Calendar = deps.Calendar
	}
	if deps.Github != nil {
		m.deps.Github = deps.Github
	}
	if deps.Translator != nil {
		m.deps.Translator = deps.Translator
	}
	if deps.Opener != nil {
		m.deps.Opener = deps.Opener
	}
	if deps.Inserter != nil {
		m.deps.Inserter = deps.Inserter
	}
	if deps.Scripts != nil {
		m.deps.Scripts = deps.Scripts
	}
	if cfg.DebounceMillis > 0 {
		m.debouncer = newRepoDebouncer(time.Duration(cfg.DebounceMillis)*time.Millisecond, m.async)
	}
	if m.store != nil {
		if err := m.restoreState(); err != nil {
			m.LastError = err
			m.Status = StatusBar{Text: err.Error(), IsError: true}
		}
		if err := m.restoreCachedEvents(); err != nil {
			m.LastError = err
			m.Status = StatusBar{Text: err.Error(), IsError: true}
		}
	}
	// Environment config wins over the persisted snapshot.
	if cfg.GithubToken != "" {
		m.Settings.GithubToken = cfg.GithubToken
	}
	if cfg.DisableCalendar {
		m.Settings.CalendarEnabled = false
	}
	m.recompose()
	return m
}

func (m *Model) initInputs() {
	query := textinput.New()
	query.Placeholder = "Search for apps and commands..."
	query.Prompt = "❯ "
	query.Focus()
	m.queryInput = query

	note := textarea.New()
	note.Placeholder = "Scratchpad"
	m.noteArea = note

	project := textinput.New()
	project.Placeholder = "Project name"
	m.projectInput = project

	m.spin = spinner.New(spinner.WithSpinner(spinner.MiniDot))
}

// SetClock pins the reference instant used for calendar and tracking math.
func (m *Model) SetClock(now func() time.Time) { m.now = now }

// newRepoDebouncer bridges the timer goroutine back into the update loop:
// a due dispatch becomes a message, never a direct network call.
func newRepoDebouncer(delay time.Duration, async chan tea.Msg) *debounce.Runner {
	return debounce.NewRunner(delay, func(query string, gen uint64) {
		async <- RepoQueryDueMsg{Query: query, Gen: gen}
	})
}

type noopScriptRunner struct{}

func (noopScriptRunner) Run(string) error { return nil }

type noopInserter struct{}

func (noopInserter) InsertText(string) error { return nil }

type noopTranslator struct{}

func (noopTranslator) Translate(context.Context, string) ([]string, error) { return nil, nil }
