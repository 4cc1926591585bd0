package memory

import (
	"sync"

	"github.com/rrcamj/khsx-metrics/pkg/domain/entities"
	"github.com/rrcamj/khsx-metrics/pkg/domain/repositories"
)

// OrderRepository stores the order-tracking snapshot in memory. Loads may
// race reads when the daemon refreshes a live snapshot, so every method
// takes the lock.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []entities.OrderRecord
}

// NewOrderRepository creates an in-memory order repository.
func NewOrderRepository(expectedOrders int) *OrderRepository {
	return &OrderRepository{
		orders: make([]entities.OrderRecord, 0, expectedOrders),
	}
}

// Verify interface compliance
var _ repositories.OrderRepository = (*OrderRepository)(nil)

// LoadOrders replaces the snapshot with the given records.
func (r *OrderRepository) LoadOrders(orders []entities.OrderRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders[:0], orders...)
	return nil
}

// GetAllOrders returns the full snapshot in load order.
func (r *OrderRepository) GetAllOrders() ([]entities.OrderRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.OrderRecord, len(r.orders))
	copy(out, r.orders)
	return out, nil
}
