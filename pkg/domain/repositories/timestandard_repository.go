package repositories

import (
	"github.com/shopspring/decimal"

	"github.com/rrcamj/khsx-metrics/pkg/domain/entities"
)

// TimeStandardRepository provides the QC completion-time standards and the
// machining process times.
type TimeStandardRepository interface {
	// StandardMinutes resolves (part, operation code) to minutes per unit.
	// A missing entry is zero, never an error.
	StandardMinutes(partName, operationCode string) decimal.Decimal
	// ProcessTime resolves a part to its machining time and crew size;
	// ok=false when the part has no PKY row.
	ProcessTime(partName string) (entities.PartProcessTime, bool)
	LoadTimeStandards(standards []entities.TimeStandard) error
	LoadProcessTimes(times []entities.PartProcessTime) error
}
