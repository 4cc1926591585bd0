package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/rrcamj/khsx-metrics/pkg/domain/entities"
	"github.com/rrcamj/khsx-metrics/pkg/domain/repositories"
)

const dayKeyLayout = "2006-01-02"

// MachineRepository stores the machine utilization snapshot and the master
// machine list in memory, indexed by day. Loads may race reads when the
// daemon refreshes a live snapshot, so every method takes the lock.
type MachineRepository struct {
	mu           sync.RWMutex
	observations []entities.MachineObservation
	dayIndexes   map[string][]int
	machineList  []string
}

// NewMachineRepository creates an in-memory machine repository.
func NewMachineRepository(expectedObservations int) *MachineRepository {
	return &MachineRepository{
		observations: make([]entities.MachineObservation, 0, expectedObservations),
		dayIndexes:   make(map[string][]int),
	}
}

// Verify interface compliance
var _ repositories.MachineRepository = (*MachineRepository)(nil)

// LoadObservations replaces the snapshot with the given observations.
func (r *MachineRepository) LoadObservations(observations []entities.MachineObservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observations = r.observations[:0]
	r.dayIndexes = make(map[string][]int)
	for _, obs := range observations {
		key := obs.Date.Format(dayKeyLayout)
		r.dayIndexes[key] = append(r.dayIndexes[key], len(r.observations))
		r.observations = append(r.observations, obs)
	}
	return nil
}

// LoadMachineList replaces the master machine list.
func (r *MachineRepository) LoadMachineList(machineIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.machineList = append(r.machineList[:0], machineIDs...)
	return nil
}

// GetObservations returns all observations recorded on a day.
func (r *MachineRepository) GetObservations(date time.Time) ([]entities.MachineObservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	indexes := r.dayIndexes[date.Format(dayKeyLayout)]
	out := make([]entities.MachineObservation, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, r.observations[i])
	}
	return out, nil
}

// GetObservationDates returns the sorted distinct days of a month that have
// at least one observation.
func (r *MachineRepository) GetObservationDates(year int, month time.Month) ([]time.Time, error) {
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

// GetMachineList returns the master machine list in load order.
func (r *MachineRepository) GetMachineList() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.machineList))
	copy(out, r.machineList)
	return out, nil
}
