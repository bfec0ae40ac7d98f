package sources

import (
	"context"
	"os/exec"
	"runtime"

	"github.com/serendipious/solGPT/internal/model"
)

// FileSearcher is the native file-search collaborator. Search is a
// fire-and-forget request; results are pushed back on the Results channel
// rather than returned to the caller.
type FileSearcher interface {
	Search(query string)
	Results() <-chan []model.FileDescription
}

// NoopFileSearcher satisfies the contract on platforms without a native
// search collaborator; it never produces results.
type NoopFileSearcher struct {
	ch chan []model.FileDescription
}

func NewNoopFileSearcher() *NoopFileSearcher {
	return &NoopFileSearcher{ch: make(chan []model.FileDescription)}
}

func (s *NoopFileSearcher) Search(string)                           {}
func (s *NoopFileSearcher) Results() <-chan []model.FileDescription { return s.ch }

// CalendarSource fetches events wholesale on each poll.
type CalendarSource interface {
	FetchEvents(ctx context.Context) ([]model.Event, error)
}

// NoopCalendarSource reports no events.
type NoopCalendarSource struct{}

func (NoopCalendarSource) FetchEvents(context.Context) ([]model.Event, error) { return nil, nil }

// Translator resolves a query into translations. Remote; failures are
// recovered by the caller.
type Translator interface {
	Translate(ctx context.Context, query string) ([]string, error)
}

// Opener hands URLs and paths to the operating system.
type Opener interface {
	OpenURL(url string) error
	OpenPath(path string) error
}

// Inserter pastes text into the frontmost application.
type Inserter interface {
	InsertText(text string) error
}

// ScriptRunner executes a user-defined shortcut script.
type ScriptRunner interface {
	Run(script string) error
}

// ExecOpener shells out to the platform opener.
type ExecOpener struct{}

func (ExecOpener) OpenURL(url string) error   { return openWithSystem(url) }
func (ExecOpener) OpenPath(path string) error { return openWithSystem(path) }

func openWithSystem(target string) error {
	cmd := "xdg-open"
	if runtime.GOOS == "darwin" {
		cmd = "open"
	}
	return exec.Command(cmd, target).Start()
}
