package memory

import (
	"sync"
	"time"

	"github.com/rrcamj/khsx-metrics/pkg/domain/entities"
	"github.com/rrcamj/khsx-metrics/pkg/domain/repositories"
)

// LaborRepository stores the daily headcount snapshot and the shift schedule
// in memory, indexed by department and day. Loads may race reads when the
// daemon refreshes a live snapshot, so every method takes the lock.
type LaborRepository struct {
	mu          sync.RWMutex
	headcounts  map[string]entities.HeadcountRecord
	assignments []entities.ShiftAssignment
	shiftIndex  map[string][]int
}

// NewLaborRepository creates an in-memory labor repository.
func NewLaborRepository() *LaborRepository {
	return &LaborRepository{
		headcounts: make(map[string]entities.HeadcountRecord),
		shiftIndex: make(map[string][]int),
	}
}

// Verify interface compliance
var _ repositories.LaborRepository = (*LaborRepository)(nil)

func laborKey(department string, date time.Time) string {
	return department + "|" + date.Format(dayKeyLayout)
}

// LoadHeadcounts replaces the headcount snapshot. A later row for the same
// department and day overwrites an earlier one.
func (r *LaborRepository) LoadHeadcounts(records []entities.HeadcountRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.headcounts = make(map[string]entities.HeadcountRecord, len(records))
	for _, rec := range records {
		r.headcounts[laborKey(rec.Department, rec.Date)] = rec
	}
	return nil
}

// LoadShiftAssignments replaces the shift schedule.
func (r *LaborRepository) LoadShiftAssignments(assignments []entities.ShiftAssignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assignments = r.assignments[:0]
	r.shiftIndex = make(map[string][]int)
	for _, a := range assignments {
		key := laborKey(a.Department, a.Date)
		r.shiftIndex[key] = append(r.shiftIndex[key], len(r.assignments))
		r.assignments = append(r.assignments, a)
	}
	return nil
}

// GetHeadcount returns the headcount row for a department and day. ok=false
// means the snapshot has no row, which is a normal condition.
func (r *LaborRepository) GetHeadcount(department string, date time.Time) (entities.HeadcountRecord, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.headcounts[laborKey(department, date)]
	return rec, ok, nil
}

// GetShiftAssignments returns the schedule rows for a department and day.
func (r *LaborRepository) GetShiftAssignments(department string, date time.Time) ([]entities.ShiftAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	indexes := r.shiftIndex[laborKey(department, date)]
	out := make([]entities.ShiftAssignment, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, r.assignments[i])
	}
	return out, nil
}
