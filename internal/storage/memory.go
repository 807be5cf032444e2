package storage

import (
	"context"
	"sync"
	"time"

	"fintrack/internal/core"
)

// MemoryStore keeps transactions in process memory. It backs tests and the
// "memory" data backend for development.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	items  []core.Transaction
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) List(_ context.Context, offset, limit int) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if offset >= len(s.items) {
		return []core.Transaction{}, nil
	}
	end := len(s.items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]core.Transaction, end-offset)
	copy(out, s.items[offset:end])
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, id int64) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.items {
		if t.ID == id {
			return t, nil
		}
	}
	return core.Transaction{}, ErrNotFound
}

func (s *MemoryStore) Create(_ context.Context, in core.TransactionInput) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := core.Transaction{
		ID:          s.nextID,
		Description: in.Description,
		Amount:      in.Amount,
		Type:        in.Type,
		Category:    in.Category,
		Date:        in.Date,
		CreatedAt:   core.Date{Time: time.Now().UTC().Truncate(time.Second)},
	}
	s.nextID++
	s.items = append(s.items, t)
	return t, nil
}

func (s *MemoryStore) Update(_ context.Context, id int64, patch core.TransactionPatch) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			patch.Apply(&s.items[i])
			return s.items[i], nil
		}
	}
	return core.Transaction{}, ErrNotFound
}

func (s *MemoryStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) Close() error {
	return nil
}
