package repositories

import (
	"time"

	"github.com/rrcamj/khsx-metrics/pkg/domain/entities"
)

// LaborRepository provides access to the daily headcount snapshot and the
// shift schedule used as its fallback.
type LaborRepository interface {
	// GetHeadcount returns the headcount row for a department and day;
	// ok=false when the snapshot has no row, which is a normal condition.
	GetHeadcount(department string, date time.Time) (entities.HeadcountRecord, bool, error)
	GetShiftAssignments(department string, date time.Time) ([]entities.ShiftAssignment, error)
	LoadHeadcounts(records []entities.HeadcountRecord) error
	LoadShiftAssignments(assignments []entities.ShiftAssignment) error
}
