package cart

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrBadIndex = errors.New("cart index out of range")
)

// Repository persists the pending cart. Each buyer has exactly one slot
// holding the whole ordered item sequence; every operation is a full
// read-modify-write of that slot. Last write wins — there is no lock across
// concurrent writers.
type Repository interface {
	Append(ctx context.Context, buyerID int, item Item) ([]Item, error)
	RemoveAt(ctx context.Context, buyerID int, index int) ([]Item, error)
	List(ctx context.Context, buyerID int) ([]Item, error)
	Clear(ctx context.Context, buyerID int) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu    sync.RWMutex
	slots map[int][]Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{slots: make(map[int][]Item)}
}

func (r *InMemoryRepository) Append(ctx context.Context, buyerID int, item Item) ([]Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[buyerID] = append(r.slots[buyerID], item)
	return copyItems(r.slots[buyerID]), nil
}

func (r *InMemoryRepository) RemoveAt(ctx context.Context, buyerID int, index int) ([]Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.slots[buyerID]
	if index < 0 || index >= len(items) {
		return nil, ErrBadIndex
	}
	items = append(items[:index], items[index+1:]...)
	r.slots[buyerID] = items
	return copyItems(items), nil
}

func (r *InMemoryRepository) List(ctx context.Context, buyerID int) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyItems(r.slots[buyerID]), nil
}

func (r *InMemoryRepository) Clear(ctx context.Context, buyerID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, buyerID)
	return nil
}

func copyItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
