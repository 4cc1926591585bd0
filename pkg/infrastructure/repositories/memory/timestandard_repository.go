package memory

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/rrcamj/khsx-metrics/pkg/domain/entities"
	"github.com/rrcamj/khsx-metrics/pkg/domain/repositories"
)

// TimeStandardRepository stores the QC completion-time standards and the
// machining process times in memory. Loads may race reads when the daemon
// refreshes a live snapshot, so every method takes the lock.
type TimeStandardRepository struct {
	mu           sync.RWMutex
	standards    map[string]decimal.Decimal
	processTimes map[string]entities.PartProcessTime
}

// NewTimeStandardRepository creates an in-memory time-standard repository.
func NewTimeStandardRepository(expectedStandards int) *TimeStandardRepository {
	return &TimeStandardRepository{
		standards:    make(map[string]decimal.Decimal, expectedStandards),
		processTimes: make(map[string]entities.PartProcessTime),
	}
}

// Verify interface compliance
var _ repositories.TimeStandardRepository = (*TimeStandardRepository)(nil)

func standardKey(partName, operationCode string) string {
	return partName + "|" + operationCode
}

// LoadTimeStandards replaces the completion-time standards.
func (r *TimeStandardRepository) LoadTimeStandards(standards []entities.TimeStandard) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.standards = make(map[string]decimal.Decimal, len(standards))
	for _, s := range standards {
		r.standards[standardKey(s.PartName, s.OperationCode)] = s.Minutes
	}
	return nil
}

// LoadProcessTimes replaces the machining process times.
func (r *TimeStandardRepository) LoadProcessTimes(times []entities.PartProcessTime) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.processTimes = make(map[string]entities.PartProcessTime, len(times))
	for _, t := range times {
		r.processTimes[t.PartName] = t
	}
	return nil
}

// StandardMinutes resolves (part, operation code) to minutes per unit. A
// missing entry is zero, never an error.
func (r *TimeStandardRepository) StandardMinutes(partName, operationCode string) decimal.Decimal {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.standards[standardKey(partName, operationCode)]
}

// ProcessTime resolves a part to its machining time and crew size.
func (r *TimeStandardRepository) ProcessTime(partName string) (entities.PartProcessTime, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pt, ok := r.processTimes[partName]
	return pt, ok
}
