package scores

import (
	"context"
	"sync"
)

// MemoryRepository holds the score for the lifetime of the process.
type MemoryRepository struct {
	mu    sync.RWMutex
	score int
	ok    bool
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Store(_ context.Context, score int) error {
	if err := checkRange(score); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.score, r.ok = score, true
	return nil
}

func (r *MemoryRepository) Retrieve(_ context.Context) (int, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.score, r.ok, nil
}
