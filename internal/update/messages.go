package update

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/serendipious/solGPT/internal/calendar"
	"github.com/serendipious/solGPT/internal/model"
	"github.com/serendipious/solGPT/internal/sources"
)

// FileResultsMsg carries a batch from the native file searcher. Batches
// replace, never append.
type FileResultsMsg struct {
	Results []model.FileDescription
}

// RepoQueryDueMsg is emitted by the debouncer when a repo search window
// closes. The generation ties any eventual response back to this dispatch.
type RepoQueryDueMsg struct {
	Query string
	Gen   uint64
}

// RepoResultsMsg is a remote repo search response. Stale generations are
// dropped on arrival.
type RepoResultsMsg struct {
	Gen     uint64
	Results []model.RepoResult
	Err     error
}

type CalendarEventsMsg struct {
	Events []model.Event
	Err    error
}

// CalendarTickMsg drives the status-bar refresh cadence.
type CalendarTickMsg struct {
	At time.Time
}

type TranslationMsg struct {
	Query   string
	Results []string
	Err     error
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type AppErrorMsg struct {
	Err error
}

// waitForAsyncCmd blocks on the engine's internal channel and forwards the
// next message into the program. Re-armed after every delivery.
func waitForAsyncCmd(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

func waitForFileResultsCmd(files sources.FileSearcher) tea.Cmd {
	return func() tea.Msg {
		return FileResultsMsg{Results: <-files.Results()}
	}
}

func calendarTickCmd() tea.Cmd {
	return tea.Tick(calendar.PollInterval, func(t time.Time) tea.Msg {
		return CalendarTickMsg{At: t}
	})
}

func fetchEventsCmd(source sources.CalendarSource) tea.Cmd {
	return func() tea.Msg {
		events, err := source.FetchEvents(context.Background())
		return CalendarEventsMsg{Events: events, Err: err}
	}
}

func repoSearchCmd(client *sources.GitHubClient, query, token string, gen uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		results, err := client.Search(ctx, query, token)
		return RepoResultsMsg{Gen: gen, Results: results, Err: err}
	}
}

func translateCmd(translator sources.Translator, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		results, err := translator.Translate(ctx, query)
		return TranslationMsg{Query: query, Results: results, Err: err}
	}
}
