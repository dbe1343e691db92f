package scanner

import (
	"bytes"
	"sort"
	"sync"
)

// Sink collects successful results from all workers in completion order.
type Sink struct {
	mu      sync.Mutex
	results []Result
}

func NewSink() *Sink {
	return &Sink{}
}

func (s *Sink) Append(r Result) {
	s.mu.Lock()
	s.results = append(s.results, r)
	s.mu.Unlock()
}

func (s *Sink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.results)
}

// Drain empties the sink and returns its results sorted by URL, then body.
func (s *Sink) Drain() []Result {
	s.mu.Lock()
	results := s.results
	s.results = nil
	s.mu.Unlock()

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].URL != results[j].URL {
			return results[i].URL < results[j].URL
		}
		return bytes.Compare(results[i].Body, results[j].Body) < 0
	})
	return results
}
