package repositories

import "github.com/rrcamj/khsx-metrics/pkg/domain/entities"

// OrderRepository provides access to the order-tracking snapshot.
type OrderRepository interface {
	GetAllOrders() ([]entities.OrderRecord, error)
	LoadOrders(orders []entities.OrderRecord) error
}
