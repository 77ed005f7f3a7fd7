package persistence

import (
	"context"
	"sync"

	"github.com/wfunc/hangman/models"
)

// MemoryStore keeps everything in maps. State is lost on exit.
type MemoryStore struct {
	mu      sync.RWMutex
	rounds  map[string][]byte
	records map[string]models.GameRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rounds:  make(map[string][]byte),
		records: make(map[string]models.GameRecord),
	}
}

func (m *MemoryStore) SaveRound(ctx context.Context, slot string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[slot] = append([]byte(nil), data...)
	return nil
}

func (m *MemoryStore) LoadRound(ctx context.Context, slot string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.rounds[slot]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return append([]byte(nil), data...), nil
}

func (m *MemoryStore) SaveGameRecord(ctx context.Context, record models.GameRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.records[record.RoundID]; !exists {
		m.records[record.RoundID] = record
	}
	return nil
}

func (m *MemoryStore) Stats(ctx context.Context) (models.Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var s models.Stats
	for _, r := range m.records {
		s.TotalGames++
		switch r.Outcome {
		case models.OutcomeWin:
			s.Wins++
		case models.OutcomeLose:
			s.Losses++
		}
	}
	return s, nil
}

func (m *MemoryStore) Close() error { return nil }
