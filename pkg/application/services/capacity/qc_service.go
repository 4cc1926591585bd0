package capacity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rrcamj/khsx-metrics/pkg/application/dto"
	"github.com/rrcamj/khsx-metrics/pkg/domain/entities"
	"github.com/rrcamj/khsx-metrics/pkg/domain/repositories"
)

// Shift-equivalent working minutes for the QC headcount model.
const (
	twelveHourWorkMinutes = 600 // 10h
	eightHourWorkMinutes  = 390 // 6.5h
)

// PKT tier boundaries. Boundary quantities resolve to the lower tier.
var (
	tierSmall = decimal.NewFromInt(2)
	tierLarge = decimal.NewFromInt(10)
)

// QCService computes the headcount-time capacity percentages of the
// quality-control department for one day.
type QCService struct {
	laborRepo    repositories.LaborRepository
	deliveryRepo repositories.DeliveryRepository
	standardRepo repositories.TimeStandardRepository
	department   string
}

// NewQCService creates a QC capacity service for one department.
func NewQCService(
	laborRepo repositories.LaborRepository,
	deliveryRepo repositories.DeliveryRepository,
	standardRepo repositories.TimeStandardRepository,
	department string,
) *QCService {
	return &QCService{
		laborRepo:    laborRepo,
		deliveryRepo: deliveryRepo,
		standardRepo: standardRepo,
		department:   department,
	}
}

// Calculate computes the overall and direct capacity percentages for a day.
// A day with neither headcount data nor deliveries is reported as not
// computable.
func (s *QCService) Calculate(date time.Time) (dto.QCCapacity, error) {
	cohorts, haveHeadcount, err := s.resolveCohorts(date)
	if err != nil {
		return dto.QCCapacity{}, err
	}

	lines, err := s.deliveryRepo.GetDeliveries(date)
	if err != nil {
		return dto.QCCapacity{}, fmt.Errorf("failed to get deliveries: %w", err)
	}
	if !haveHeadcount && len(lines) == 0 {
		return dto.QCCapacity{
			Reason: "no headcount data or deliveries for this day",
		}, nil
	}

	numerator := s.completionMinutes(lines)

	overallDenom := decimal.NewFromInt(cohorts.total12 * twelveHourWorkMinutes).
		Add(decimal.NewFromInt(cohorts.total8 * eightHourWorkMinutes))
	directDenom := decimal.NewFromInt(cohorts.direct8 * eightHourWorkMinutes).
		Add(decimal.NewFromInt(cohorts.direct12 * twelveHourWorkMinutes))

	return dto.QCCapacity{
		Computable:        true,
		Overall:           percentage(numerator, overallDenom),
		Direct:            percentage(numerator, directDenom),
		Total12h:          cohorts.total12,
		Direct12h:         cohorts.direct12,
		Total8h:           cohorts.total8,
		Direct8h:          cohorts.direct8,
		OverallMinutes:    overallDenom,
		DirectMinutes:     directDenom,
		CompletionMinutes: numerator,
	}, nil
}

type qcCohorts struct {
	total12  int64
	direct12 int64
	total8   int64
	direct8  int64
}

// resolveCohorts reads the headcount row for the department and day. Absent
// or zero cohort counts fall back to the 12-hour-entry count of the shift
// schedule, except the direct 8-hour cohort, which has no fallback.
func (s *QCService) resolveCohorts(date time.Time) (qcCohorts, bool, error) {
	rec, haveRow, err := s.laborRepo.GetHeadcount(s.department, date)
	if err != nil {
		return qcCohorts{}, false, fmt.Errorf("failed to get headcount: %w", err)
	}

	assignments, err := s.laborRepo.GetShiftAssignments(s.department, date)
	if err != nil {
		return qcCohorts{}, false, fmt.Errorf("failed to get shift assignments: %w", err)
	}
	var twelveHourEntries int64
	for _, a := range assignments {
		if a.IsTwelveHour() {
			twelveHourEntries++
		}
	}

	cohorts := qcCohorts{
		total12:  fallbackCount(rec.Total12h, twelveHourEntries),
		direct12: fallbackCount(rec.Direct12h, twelveHourEntries),
		total8:   fallbackCount(rec.Total8h, twelveHourEntries),
		direct8:  rec.Direct8h,
	}
	haveData := haveRow || twelveHourEntries > 0
	return cohorts, haveData, nil
}

func fallbackCount(primary, fallback int64) int64 {
	if primary > 0 {
		return primary
	}
	return fallback
}

// completionMinutes sums the tiered inspection time over the delivered order
// lines. Missing (part, code) standards contribute zero.
func (s *QCService) completionMinutes(lines []entities.DeliveryLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(s.lineMinutes(line.PartName, line.Quantity))
	}
	return total
}

// lineMinutes computes one delivered line's inspection minutes: the
// quantity-tiered first/repeat terms, the linear auxiliary operations and the
// per-unit final checks.
func (s *QCService) lineMinutes(partName string, q decimal.Decimal) decimal.Decimal {
	one := decimal.NewFromInt(1)
	two := decimal.NewFromInt(2)

	inspectFirst := s.standardRepo.StandardMinutes(partName, entities.CodeInspectFirst)
	inspectRepeat := s.standardRepo.StandardMinutes(partName, entities.CodeInspectRepeat)
	measureFirst := s.standardRepo.StandardMinutes(partName, entities.CodeMeasureFirst)
	measureRepeat := s.standardRepo.StandardMinutes(partName, entities.CodeMeasureRepeat)

	var pkt decimal.Decimal
	switch {
	case q.LessThanOrEqual(tierSmall):
		pkt = q.Mul(inspectFirst).Add(q.Mul(measureFirst))
	case q.LessThanOrEqual(tierLarge):
		pkt = two.Mul(inspectFirst).
			Add(q.Sub(two).Mul(inspectRepeat)).
			Add(measureFirst).
			Add(q.Sub(two).Mul(measureRepeat))
	default:
		pkt = inspectFirst.
			Add(q.Sub(one).Mul(inspectRepeat)).
			Add(measureFirst).
			Add(q.Sub(one).Mul(measureRepeat))
	}

	other := decimal.Zero
	for _, code := range entities.OtherOperationCodes {
		other = other.Add(s.standardRepo.StandardMinutes(partName, code))
	}

	final := s.standardRepo.StandardMinutes(partName, entities.CodeFinalVisual).
		Add(s.standardRepo.StandardMinutes(partName, entities.CodeFinalMeasure))

	return pkt.Add(other.Mul(q)).Add(final.Mul(q))
}
