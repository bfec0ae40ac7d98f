// Package debounce gates outbound remote searches so only the last query
// within a delay window is dispatched. The generation token doubles as the
// cancellation primitive: responses carrying a stale generation are dropped
// on arrival, there is no hard abort of in-flight work.
package debounce

import (
	"sync"
	"time"
)

const DefaultDelay = 500 * time.Millisecond

type Runner struct {
	delay    time.Duration
	dispatch func(query string, gen uint64)

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

func NewRunner(delay time.Duration, dispatch func(query string, gen uint64)) *Runner {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Runner{delay: delay, dispatch: dispatch}
}

// Submit schedules a dispatch for query after the delay window. A newer
// Submit within the window supersedes it: only the latest query is
// dispatched, carrying the generation returned here.
func (r *Runner) Submit(query string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.gen++
	gen := r.gen
	if r.timer != nil {
		r.timer.Stop()
	}
	r.timer = time.AfterFunc(r.delay, func() {
		// A later Submit bumped the generation; this dispatch is stale.
		if !r.Accept(gen) {
			return
		}
		r.dispatch(query, gen)
	})
	return gen
}

// Generation returns the current token. Responses must carry the generation
// of the Submit that caused them.
func (r *Runner) Generation() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gen
}

// Accept reports whether a response tagged with gen is still current and may
// be applied.
func (r *Runner) Accept(gen uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return gen == r.gen
}

// Stop cancels any pending dispatch and invalidates in-flight responses.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}
