package schedule

import (
	"time"

	"github.com/rrcamj/khsx-metrics/pkg/application/dto"
	"github.com/rrcamj/khsx-metrics/pkg/domain/entities"
)

// Day offsets from the legacy macros. Eligibility bounds the horizon of the
// report sheets; the classify offsets split them into overdue and due-soon.
const (
	productionEligibilityDays = 10
	qcEligibilityDays         = 8
	productionClassifyDays    = 5
	qcClassifyDays            = 3
)

// Service computes the overdue / due-soon metrics for the production and
// quality-control pipelines. "today" is always an explicit argument; the
// service never reads a clock.
type Service struct{}

// NewService creates a schedule service.
func NewService() *Service {
	return &Service{}
}

// Calculate runs the two-stage classification for both pipelines over the
// order snapshot.
func (s *Service) Calculate(orders []entities.OrderRecord, today time.Time) dto.ScheduleMetrics {
	today = truncateToDay(today)
	return dto.ScheduleMetrics{
		Production:     s.classify(s.eligibleProduction(orders, today), today, productionClassifyDays),
		QualityControl: s.classify(s.eligibleQC(orders, today), today, qcClassifyDays),
	}
}

// eligibleProduction applies the stage-1 production filter: not yet in QC,
// billet delivered, deadline within today+10.
func (s *Service) eligibleProduction(orders []entities.OrderRecord, today time.Time) []entities.OrderRecord {
	bound := today.AddDate(0, 0, productionEligibilityDays)
	var out []entities.OrderRecord
	for _, rec := range orders {
		if rec.InQC() || !entities.IsPresent(rec.BilletDelivery) {
			continue
		}
		if !rec.HasDeadline() || rec.CustomerDeadline.After(bound) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// eligibleQC applies the stage-1 QC filter: handed to QC, neither packed nor
// shipped, deadline within today+8, then deduplicated to one row per order
// key (the source table carries one row per operation; first seen wins).
func (s *Service) eligibleQC(orders []entities.OrderRecord, today time.Time) []entities.OrderRecord {
	bound := today.AddDate(0, 0, qcEligibilityDays)
	seen := make(map[string]bool)
	var out []entities.OrderRecord
	for _, rec := range orders {
		if !rec.InQC() || rec.Packed() || rec.Shipped() {
			continue
		}
		if !rec.HasDeadline() || rec.CustomerDeadline.After(bound) {
			continue
		}
		if seen[rec.OrderKey] {
			continue
		}
		seen[rec.OrderKey] = true
		out = append(out, rec)
	}
	return out
}

// classify splits stage-1 survivors by customer and by predicted / actual
// thresholds. The actual due-soon bucket is derived by identity, not
// refiltered.
func (s *Service) classify(eligible []entities.OrderRecord, today time.Time, classifyDays int) dto.DepartmentSchedule {
	predicted := today.AddDate(0, 0, classifyDays)

	var out dto.DepartmentSchedule
	out.RRCOverdue.Threshold = predicted
	out.RRCDueSoon.Threshold = predicted
	out.ExternalOverdue.Threshold = predicted
	out.ExternalDueSoon.Threshold = predicted
	out.RRCActualOverdue.Threshold = today
	out.RRCActualDueSoon.Threshold = today

	for _, rec := range eligible {
		if !rec.HasDeadline() {
			continue
		}
		overdue := !rec.CustomerDeadline.After(predicted)
		if rec.IsRRC() {
			if overdue {
				addBucket(&out.RRCOverdue, rec)
			} else {
				addBucket(&out.RRCDueSoon, rec)
			}
			if !rec.CustomerDeadline.After(today) {
				addBucket(&out.RRCActualOverdue, rec)
			}
		} else {
			if overdue {
				addBucket(&out.ExternalOverdue, rec)
			} else {
				addBucket(&out.ExternalDueSoon, rec)
			}
		}
	}

	out.RRCActualDueSoon.Total = out.RRCOverdue.Total + out.RRCDueSoon.Total - out.RRCActualOverdue.Total
	out.RRCActualDueSoon.Count = out.RRCOverdue.Count + out.RRCDueSoon.Count - out.RRCActualOverdue.Count
	return out
}

func addBucket(b *dto.ScheduleBucket, rec entities.OrderRecord) {
	b.Total += rec.Quantity
	b.Count++
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
