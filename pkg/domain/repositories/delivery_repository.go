package repositories

import (
	"time"

	"github.com/rrcamj/khsx-metrics/pkg/domain/entities"
)

// DeliveryRepository provides access to the delivered order lines (giao kho).
type DeliveryRepository interface {
	GetDeliveries(date time.Time) ([]entities.DeliveryLine, error)
	GetDeliveryDates(year int, month time.Month) ([]time.Time, error)
	LoadDeliveries(lines []entities.DeliveryLine) error
}
