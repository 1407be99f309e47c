package tally

import (
	"context"
	"sync"

	"github.com/HuXin0817/dots-chain/pkg/models/chess"
)

type MemoryStore struct {
	mu     sync.Mutex
	totals map[int]*Tally
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{totals: make(map[int]*Tally)}
}

func (m *MemoryStore) get(BoardSize int) *Tally {
	t, c := m.totals[BoardSize]
	if !c {
		t = &Tally{BoardSize: BoardSize}
		m.totals[BoardSize] = t
	}
	return t
}

func (m *MemoryStore) Record(_ context.Context, s chess.Summary) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.get(s.BoardSize).Add(s)
	return nil
}

func (m *MemoryStore) RecordRun(_ context.Context, BoardSize int, summaries []chess.Summary) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.get(BoardSize).Merge(Of(BoardSize, summaries...))
	return nil
}

func (m *MemoryStore) Totals(_ context.Context, BoardSize int) (Tally, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t, c := m.totals[BoardSize]; c {
		return *t, nil
	}
	return Tally{BoardSize: BoardSize}, nil
}
