package capacity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rrcamj/khsx-metrics/pkg/application/dto"
	"github.com/rrcamj/khsx-metrics/pkg/domain/entities"
	"github.com/rrcamj/khsx-metrics/pkg/domain/repositories"
)

// Fleet-time model constants. The shift-equivalent minutes already embed the
// legacy overtime loading and must not be re-derived from shift lengths.
const (
	fleetSize              = 100
	twelveHourThreshold    = 620  // minutes per (machine, department) group
	longShiftEquivMinutes  = 1200 // 20h
	shortShiftEquivMinutes = 840  // 14h
	stoppedMachineMinutes  = 420  // 7h deducted per stopped machine
	crewSetupMinutes       = 40   // fixed per-line crew allowance
)

// overtimeLoad scales the processing numerator.
var overtimeLoad = decimal.NewFromFloat(1.2)

// ProductionService computes the machine-time capacity percentages for one
// day: delivered processing minutes against the fleet-time denominator.
type ProductionService struct {
	machineRepo  repositories.MachineRepository
	deliveryRepo repositories.DeliveryRepository
	standardRepo repositories.TimeStandardRepository
}

// NewProductionService creates a production capacity service.
func NewProductionService(
	machineRepo repositories.MachineRepository,
	deliveryRepo repositories.DeliveryRepository,
	standardRepo repositories.TimeStandardRepository,
) *ProductionService {
	return &ProductionService{
		machineRepo:  machineRepo,
		deliveryRepo: deliveryRepo,
		standardRepo: standardRepo,
	}
}

// Calculate computes the overall and direct capacity percentages for a day.
// A day with no machine observations is reported as not computable, which
// callers must keep distinguishable from a true zero.
func (s *ProductionService) Calculate(date time.Time) (dto.ProductionCapacity, error) {
	observations, err := s.machineRepo.GetObservations(date)
	if err != nil {
		return dto.ProductionCapacity{}, fmt.Errorf("failed to get machine observations: %w", err)
	}
	if len(observations) == 0 {
		return dto.ProductionCapacity{
			Reason: "no machine observations for this day",
		}, nil
	}

	machineList, err := s.machineRepo.GetMachineList()
	if err != nil {
		return dto.ProductionCapacity{}, fmt.Errorf("failed to get machine list: %w", err)
	}

	fleet := s.classifyFleet(observations, machineList)

	numerator, err := s.processingMinutes(date)
	if err != nil {
		return dto.ProductionCapacity{}, err
	}

	denominator := fleetDenominator(fleet.twelveHour, fleet.observed)
	directDenominator := denominator.Sub(
		decimal.NewFromInt(int64(fleet.stopped) * stoppedMachineMinutes))

	return dto.ProductionCapacity{
		Computable:         true,
		Overall:            percentage(numerator, denominator),
		Direct:             percentage(numerator, directDenominator),
		TwelveHourMachines: fleet.twelveHour,
		ObservedMachines:   fleet.observed,
		StoppedMachines:    fleet.stopped,
		TheoreticalMinutes: denominator,
		ProcessingMinutes:  numerator,
	}, nil
}

// fleetCounts is the per-day cohort classification of the machine fleet.
type fleetCounts struct {
	observed   int // T: distinct machine ids with any observation
	twelveHour int // B: machines with a department-group total >= 620 min
	stopped    int
}

// classifyFleet groups observations by (machine, department), classifies the
// 12-hour cohort and counts stopped machines. A machine is stopped when it is
// on the master list but unobserved, or when its largest stoppage reading is
// a full shift with no processing-related minutes at all.
func (s *ProductionService) classifyFleet(observations []entities.MachineObservation, machineList []string) fleetCounts {
	groupTotals := make(map[string]map[string]decimal.Decimal)
	maxStop := make(map[string]decimal.Decimal)
	productionSum := make(map[string]decimal.Decimal)

	for _, obs := range observations {
		if obs.MachineID == "" {
			continue
		}
		byDept, ok := groupTotals[obs.MachineID]
		if !ok {
			byDept = make(map[string]decimal.Decimal)
			groupTotals[obs.MachineID] = byDept
			maxStop[obs.MachineID] = decimal.Zero
			productionSum[obs.MachineID] = decimal.Zero
		}
		byDept[obs.Department] = byDept[obs.Department].Add(obs.TotalMinutes())

		for _, stop := range []decimal.Decimal{obs.StopMinutes(), obs.StopOtherMinutes()} {
			if stop.GreaterThan(maxStop[obs.MachineID]) {
				maxStop[obs.MachineID] = stop
			}
		}
		productionSum[obs.MachineID] = productionSum[obs.MachineID].Add(obs.ProductionMinutes())
	}

	threshold := decimal.NewFromInt(twelveHourThreshold)
	fullStop := decimal.NewFromInt(stoppedMachineMinutes)

	var counts fleetCounts
	counts.observed = len(groupTotals)
	for id, byDept := range groupTotals {
		for _, total := range byDept {
			if total.GreaterThanOrEqual(threshold) {
				counts.twelveHour++
				break
			}
		}
		if maxStop[id].GreaterThanOrEqual(fullStop) && productionSum[id].IsZero() {
			counts.stopped++
		}
	}
	for _, id := range machineList {
		if id == "" {
			continue
		}
		if _, ok := groupTotals[id]; !ok {
			counts.stopped++
		}
	}
	return counts
}

// processingMinutes sums the delivered order lines against the machining
// process-time table. Lines without a PKY match contribute nothing.
func (s *ProductionService) processingMinutes(date time.Time) (decimal.Decimal, error) {
	lines, err := s.deliveryRepo.GetDeliveries(date)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get deliveries: %w", err)
	}

	total := decimal.Zero
	crewAllowance := decimal.NewFromInt(crewSetupMinutes)
	for _, line := range lines {
		pt, ok := s.standardRepo.ProcessTime(line.PartName)
		if !ok {
			continue
		}
		minutes := line.Quantity.Mul(pt.MinutesPerUnit).
			Add(pt.Headcount.Mul(crewAllowance)).
			Mul(overtimeLoad)
		total = total.Add(minutes)
	}
	return total, nil
}

// fleetDenominator computes the theoretical fleet minutes. When nearly the
// whole observed fleet (>= 95%) ran the long shift, the full fixed fleet of
// 100 machines is assumed to run it.
func fleetDenominator(twelveHour, observed int) decimal.Decimal {
	if observed > 0 && twelveHour*100 >= observed*95 {
		return decimal.NewFromInt(fleetSize * longShiftEquivMinutes)
	}
	short := int64(fleetSize-twelveHour) * shortShiftEquivMinutes
	long := int64(twelveHour) * longShiftEquivMinutes
	return decimal.NewFromInt(short + long)
}

// percentage divides with the zero-denominator guard: 0, never an error.
func percentage(numerator, denominator decimal.Decimal) float64 {
	if denominator.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	v, _ := numerator.Div(denominator).Mul(decimal.NewFromInt(100)).Float64()
	return v
}
