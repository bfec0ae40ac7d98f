package debounce

import (
	"sync"
	"testing"
	"time"
)

type dispatchRecorder struct {
	mu      sync.Mutex
	queries []string
	gens    []uint64
}

func (d *dispatchRecorder) record(query string, gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.queries = append(d.queries, query)
	d.gens = append(d.gens, gen)
}

func (d *dispatchRecorder) snapshot() ([]string, []uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.queries...), append([]uint64(nil), d.gens...)
}

func TestBurstDispatchesOnlyLastQuery(t *testing.T) {
	rec := &dispatchRecorder{}
	runner := NewRunner(30*time.Millisecond, rec.record)
	defer runner.Stop()

	runner.Submit("s")
	runner.Submit("sa")
	last := runner.Submit("saf")

	time.Sleep(120 * time.Millisecond)
	queries, gens := rec.snapshot()
	if len(queries) != 1 {
		t.Fatalf("expected exactly one dispatch, got %d: %v", len(queries), queries)
	}
	if queries[0] != "saf" || gens[0] != last {
		t.Fatalf("expected (saf, %d), got (%s, %d)", last, queries[0], gens[0])
	}
}

func TestSpacedSubmitsEachDispatch(t *testing.T) {
	rec := &dispatchRecorder{}
	runner := NewRunner(10*time.Millisecond, rec.record)
	defer runner.Stop()

	runner.Submit("first")
	time.Sleep(60 * time.Millisecond)
	runner.Submit("second")
	time.Sleep(60 * time.Millisecond)

	queries, _ := rec.snapshot()
	if len(queries) != 2 || queries[0] != "first" || queries[1] != "second" {
		t.Fatalf("expected both spaced queries dispatched, got %v", queries)
	}
}

func TestAcceptRejectsStaleGeneration(t *testing.T) {
	runner := NewRunner(time.Hour, func(string, uint64) {})
	defer runner.Stop()

	genA := runner.Submit("a")
	genB := runner.Submit("b")

	if runner.Accept(genA) {
		t.Fatal("generation A must be stale after submitting B")
	}
	if !runner.Accept(genB) {
		t.Fatal("generation B must still be current")
	}
	if runner.Generation() != genB {
		t.Fatalf("current generation should be %d, got %d", genB, runner.Generation())
	}
}

func TestStopCancelsPendingDispatch(t *testing.T) {
	rec := &dispatchRecorder{}
	runner := NewRunner(20*time.Millisecond, rec.record)

	gen := runner.Submit("doomed")
	runner.Stop()

	time.Sleep(80 * time.Millisecond)
	if queries, _ := rec.snapshot(); len(queries) != 0 {
		t.Fatalf("expected no dispatch after Stop, got %v", queries)
	}
	if runner.Accept(gen) {
		t.Fatal("Stop must invalidate in-flight generations")
	}
}
