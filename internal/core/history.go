package core

import (
	"errors"
	"fmt"
	"time"
)

// DefaultResultCapacity is how many results a Service keeps by default.
const DefaultResultCapacity = 100

// ErrResultNotFound is returned for unknown or evicted batch ids.
var ErrResultNotFound = errors.New("result not found")

type storedResult struct {
	result *Result
	at     time.Time
}

// ResultEntry summarizes a stored result.
type ResultEntry struct {
	BatchID   string    `json:"batchId"`
	SchemaKey string    `json:"schema"`
	Total     int       `json:"total"`
	Rejected  int       `json:"rejected"`
	At        time.Time `json:"at"`
}

// remember stores res, evicting the oldest result once the capacity is
// reached.
func (s *Service) remember(res *Result) {
	if s.maxResults <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.results[res.BatchID]; !ok {
		s.order = append(s.order, res.BatchID)
	}
	s.results[res.BatchID] = &storedResult{result: res, at: time.Now()}

	for len(s.order) > s.maxResults {
		delete(s.results, s.order[0])
		s.order = s.order[1:]
	}
}

// Result returns a stored result by batch id.
func (s *Service) Result(batchID string) (*Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.results[batchID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrResultNotFound, batchID)
	}
	return stored.result, nil
}

// RecentResults lists up to limit stored results, newest first.
func (s *Service) RecentResults(limit int) []ResultEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.order) {
		limit = len(s.order)
	}
	entries := make([]ResultEntry, 0, limit)
	for i := len(s.order) - 1; i >= 0 && len(entries) < limit; i-- {
		stored := s.results[s.order[i]]
		entries = append(entries, ResultEntry{
			BatchID:   stored.result.BatchID,
			SchemaKey: stored.result.SchemaKey,
			Total:     stored.result.Total,
			Rejected:  stored.result.Rejected(),
			At:        stored.at,
		})
	}
	return entries
}

// pruneResults removes results stored before cutoff and returns how many
// were removed.
func (s *Service) pruneResults(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.order[:0]
	removed := 0
	for _, id := range s.order {
		if s.results[id].at.Before(cutoff) {
			delete(s.results, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
	return removed
}
