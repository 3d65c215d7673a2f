package memstore

import (
	"fmt"
	"sort"
	"sync"

	"friendlyenum/internal/domain"
)

// MemoryStore is the state store used when persistent state is disabled.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]domain.GenerationRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]domain.GenerationRecord),
	}
}

func (s *MemoryStore) PutRecord(rec domain.GenerationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.Implementation] = rec
	return nil
}

func (s *MemoryStore) GetRecord(implementation string) (domain.GenerationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[implementation]
	if !ok {
		return domain.GenerationRecord{}, fmt.Errorf("record not found: %s", implementation)
	}
	return rec, nil
}

func (s *MemoryStore) ListRecords() ([]domain.GenerationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recs := make([]domain.GenerationRecord, 0, len(s.records))
	for _, rec := range s.records {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].Implementation < recs[j].Implementation
	})
	return recs, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
