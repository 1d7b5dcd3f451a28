package order

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("order not found")
)

// Repository defines persistence operations for orders. One table backs
// both the buyer order history and the supply-chain view; transport
// assignment writes the same rows status updates do.
type Repository interface {
	Create(ord Order) (Order, error)
	GetByID(id string) (Order, error)
	ListByBuyer(buyerID int) ([]Order, error)
	List() ([]Order, error)
	UpdateStatus(id string, status string) error
	AssignTransport(id string, transport string) error
}

// InMemoryRepository is used by tests.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{orders: make([]Order, 0)}
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ord.OrderID == "" {
		ord.OrderID = uuid.NewString()
	}
	r.orders = append(r.orders, ord)
	return ord, nil
}

func (r *InMemoryRepository) GetByID(id string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ord := range r.orders {
		if ord.OrderID == id {
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) ListByBuyer(buyerID int) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0)
	for _, ord := range r.orders {
		if ord.BuyerID == buyerID {
			out = append(out, ord)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) List() ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

func (r *InMemoryRepository) UpdateStatus(id string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].OrderID == id {
			r.orders[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) AssignTransport(id string, transport string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].OrderID == id {
			r.orders[i].Transport = transport
			return nil
		}
	}
	return ErrNotFound
}
