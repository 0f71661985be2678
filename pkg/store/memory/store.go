package memory

import (
	"sort"
	"sync"

	"github.com/finboard/finboard/pkg/models/domain"
	"github.com/google/uuid"
)

// Store holds the append-only financial series for one company. Records are
// kept sorted descending by period so direct iteration sees the most recent
// first; the aggregator re-sorts as it needs and does not depend on this.
//
// Appends are serialized and All returns a snapshot copy, so a reader never
// observes a half-applied append.
type Store struct {
	mu      sync.RWMutex
	records []domain.FinancialRecord
}

func NewStore() *Store {
	return &Store{}
}

// Append adds one record, assigning an ID when the caller did not.
// Records are never mutated or removed after this point.
func (s *Store) Append(rec domain.FinancialRecord) domain.FinancialRecord {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, rec)
	sort.SliceStable(s.records, func(i, j int) bool {
		return s.records[i].Period.After(s.records[j].Period)
	})

	return rec
}

// All returns a snapshot of every record, most recent first.
func (s *Store) All() []domain.FinancialRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]domain.FinancialRecord, len(s.records))
	copy(snapshot, s.records)
	return snapshot
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
