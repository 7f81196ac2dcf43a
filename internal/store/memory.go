package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/fyrsmithlabs/prj/internal/record"
)

// MemoryStore holds records in a name-keyed map for the lifetime of the
// process. List returns records in insertion order. All point operations are
// O(1); enumerations are O(n).
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*record.Record
	order   []string // names in insertion order
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*record.Record),
	}
}

// Add persists a new record.
func (s *MemoryStore) Add(ctx context.Context, rec *record.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := rec.Name()
	if _, ok := s.records[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, name)
	}
	s.records[name] = rec
	s.order = append(s.order, name)
	return nil
}

// Get retrieves a record by name. A miss returns (nil, false, nil).
func (s *MemoryStore) Get(ctx context.Context, name string) (*record.Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[name]
	if !ok {
		return nil, false, nil
	}
	return rec, true, nil
}

// Update replaces an existing record, keyed by name.
func (s *MemoryStore) Update(ctx context.Context, rec *record.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := rec.Name()
	if _, ok := s.records[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	s.records[name] = rec
	return nil
}

// Delete removes a record by name.
func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	delete(s.records, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns all records in insertion order. The memory backend never
// produces scan failures.
func (s *MemoryStore) List(ctx context.Context) ([]*record.Record, []ScanFailure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := make([]*record.Record, 0, len(s.order))
	for _, name := range s.order {
		recs = append(recs, s.records[name])
	}
	return recs, nil, nil
}

// ListAboveCost returns records with cost strictly greater than threshold.
func (s *MemoryStore) ListAboveCost(ctx context.Context, threshold float64) ([]*record.Record, []ScanFailure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var recs []*record.Record
	for _, name := range s.order {
		if rec := s.records[name]; rec.Cost() > threshold {
			recs = append(recs, rec)
		}
	}
	return recs, nil, nil
}

// CountByCriteria counts records with cost >= minCost and the exact area.
func (s *MemoryStore) CountByCriteria(ctx context.Context, minCost float64, area string) (int, []ScanFailure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, rec := range s.records {
		if rec.Cost() >= minCost && rec.Area() == area {
			count++
		}
	}
	return count, nil, nil
}
