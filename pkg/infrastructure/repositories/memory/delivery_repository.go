package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/rrcamj/khsx-metrics/pkg/domain/entities"
	"github.com/rrcamj/khsx-metrics/pkg/domain/repositories"
)

// DeliveryRepository stores the delivered order lines in memory, indexed by
// day. Loads may race reads when the daemon refreshes a live snapshot, so
// every method takes the lock.
type DeliveryRepository struct {
	mu         sync.RWMutex
	lines      []entities.DeliveryLine
	dayIndexes map[string][]int
}

// NewDeliveryRepository creates an in-memory delivery repository.
func NewDeliveryRepository(expectedLines int) *DeliveryRepository {
	return &DeliveryRepository{
		lines:      make([]entities.DeliveryLine, 0, expectedLines),
		dayIndexes: make(map[string][]int),
	}
}

// Verify interface compliance
var _ repositories.DeliveryRepository = (*DeliveryRepository)(nil)

// LoadDeliveries replaces the snapshot with the given lines.
func (r *DeliveryRepository) LoadDeliveries(lines []entities.DeliveryLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = r.lines[:0]
	r.dayIndexes = make(map[string][]int)
	for _, line := range lines {
		key := line.Date.Format(dayKeyLayout)
		r.dayIndexes[key] = append(r.dayIndexes[key], len(r.lines))
		r.lines = append(r.lines, line)
	}
	return nil
}

// GetDeliveries returns all lines delivered on a day.
func (r *DeliveryRepository) GetDeliveries(date time.Time) ([]entities.DeliveryLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	indexes := r.dayIndexes[date.Format(dayKeyLayout)]
	out := make([]entities.DeliveryLine, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, r.lines[i])
	}
	return out, nil
}

// GetDeliveryDates returns the sorted distinct days of a month that have at
// least one delivered line.
func (r *DeliveryRepository) GetDeliveryDates(year int, month time.Month) ([]time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var dates []time.Time
	for key, indexes := range r.dayIndexes {
		if len(indexes) == 0 {
			continue
		}
		day, err := time.Parse(dayKeyLayout, key)
		if err != nil {
			continue
		}
		if day.Year() == year && day.Month() == month {
			dates = append(dates, day)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}
