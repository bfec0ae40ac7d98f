// Package frequency tracks how often selectable keys are used so rankings
// can be biased toward historical picks. The same store backs search-result
// frequencies (unbounded) and emoji favorites (bounded with eviction).
package frequency

import "sort"

type Store struct {
	counts   map[string]int
	order    []string // insertion order, breaks eviction ties
	capacity int      // 0 means unbounded
	onChange func()
}

func New() *Store {
	return &Store{counts: make(map[string]int)}
}

// NewBounded returns a store that never tracks more than capacity keys.
// Recording a new key at capacity evicts the lowest-counter key first, ties
// broken by first-encountered order.
func NewBounded(capacity int) *Store {
	if capacity < 1 {
		capacity = 1
	}
	return &Store{counts: make(map[string]int), capacity: capacity}
}

// OnChange registers a hook fired after every mutation. The owner uses it to
// schedule a persistence write.
func (s *Store) OnChange(fn func()) { s.onChange = fn }

func (s *Store) Record(key string) {
	if key == "" {
		return
	}
	if _, tracked := s.counts[key]; tracked {
		s.counts[key]++
		s.changed()
		return
	}
	if s.capacity > 0 && len(s.counts) >= s.capacity {
		s.evictLowest()
	}
	s.counts[key] = 1
	s.order = append(s.order, key)
	s.changed()
}

// BiasFor returns the raw usage counter, 0 for untracked keys.
func (s *Store) BiasFor(key string) int { return s.counts[key] }

func (s *Store) Len() int { return len(s.counts) }

// Top returns up to n keys ordered by counter descending, ties broken by
// first-encountered order.
func (s *Store) Top(n int) []string {
	keys := make([]string, 0, len(s.counts))
	for _, key := range s.order {
		if _, tracked := s.counts[key]; tracked {
			keys = append(keys, key)
		}
	}
	pos := make(map[string]int, len(keys))
	for i, key := range keys {
		pos[key] = i
	}
	sort.SliceStable(keys, func(i, j int) bool {
		if s.counts[keys[i]] != s.counts[keys[j]] {
			return s.counts[keys[i]] > s.counts[keys[j]]
		}
		return pos[keys[i]] < pos[keys[j]]
	})
	if n > 0 && len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

func (s *Store) Snapshot() map[string]int {
	out := make(map[string]int, len(s.counts))
	for key, count := range s.counts {
		out[key] = count
	}
	return out
}

func (s *Store) Restore(counts map[string]int) {
	s.counts = make(map[string]int, len(counts))
	s.order = s.order[:0]
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if counts[key] <= 0 {
			continue
		}
		s.counts[key] = counts[key]
		s.order = append(s.order, key)
	}
}

func (s *Store) evictLowest() {
	lowestKey := ""
	lowest := 0
	for _, key := range s.order {
		count, tracked := s.counts[key]
		if !tracked {
			continue
		}
		if lowestKey == "" || count < lowest {
			lowestKey = key
			lowest = count
		}
	}
	if lowestKey == "" {
		return
	}
	delete(s.counts, lowestKey)
	for i, key := range s.order {
		if key == lowestKey {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Store) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}
