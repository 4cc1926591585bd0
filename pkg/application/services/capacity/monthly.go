package capacity

import (
	"fmt"
	"sync"
	"time"

	"github.com/rrcamj/khsx-metrics/pkg/application/dto"
)

// CalculateMonth averages the daily capacity percentages over every day of
// the month that has machine observations. Days are computed concurrently;
// each day's computation touches disjoint input rows.
func (s *ProductionService) CalculateMonth(year int, month time.Month) (dto.MonthlyCapacity, error) {
	dates, err := s.machineRepo.GetObservationDates(year, month)
	if err != nil {
		return dto.MonthlyCapacity{}, fmt.Errorf("failed to get observation dates: %w", err)
	}
	if len(dates) == 0 {
		return dto.MonthlyCapacity{
			Reason: "no machine observations in this month",
		}, nil
	}

	days := make([]dayResult, len(dates))
	var wg sync.WaitGroup
	for i, date := range dates {
		wg.Add(1)
		go func(i int, date time.Time) {
			defer wg.Done()
			result, err := s.Calculate(date)
			days[i] = dayResult{
				overall:    result.Overall,
				direct:     result.Direct,
				computable: result.Computable,
				err:        err,
			}
		}(i, date)
	}
	wg.Wait()

	return meanOfDays(days)
}

// CalculateMonth averages the daily QC capacity percentages over every day of
// the month with delivered order lines.
func (s *QCService) CalculateMonth(year int, month time.Month) (dto.MonthlyCapacity, error) {
	dates, err := s.deliveryRepo.GetDeliveryDates(year, month)
	if err != nil {
		return dto.MonthlyCapacity{}, fmt.Errorf("failed to get delivery dates: %w", err)
	}
	if len(dates) == 0 {
		return dto.MonthlyCapacity{
			Reason: "no deliveries in this month",
		}, nil
	}

	days := make([]dayResult, len(dates))
	var wg sync.WaitGroup
	for i, date := range dates {
		wg.Add(1)
		go func(i int, date time.Time) {
			defer wg.Done()
			result, err := s.Calculate(date)
			days[i] = dayResult{
				overall:    result.Overall,
				direct:     result.Direct,
				computable: result.Computable,
				err:        err,
			}
		}(i, date)
	}
	wg.Wait()

	return meanOfDays(days)
}

type dayResult struct {
	overall    float64
	direct     float64
	computable bool
	err        error
}

// meanOfDays takes the arithmetic mean of the per-day percentages. Pooling
// numerators and denominators across the month would give a different answer
// whenever the daily fleet composition varies, so only per-day means are
// valid here.
func meanOfDays(days []dayResult) (dto.MonthlyCapacity, error) {
	var overallSum, directSum float64
	var used int
	for _, d := range days {
		if d.err != nil {
			return dto.MonthlyCapacity{}, d.err
		}
		if !d.computable {
			continue
		}
		overallSum += d.overall
		directSum += d.direct
		used++
	}
	if used == 0 {
		return dto.MonthlyCapacity{
			Reason: "no computable days in this month",
		}, nil
	}
	return dto.MonthlyCapacity{
		Computable: true,
		Overall:    overallSum / float64(used),
		Direct:     directSum / float64(used),
		DaysUsed:   used,
	}, nil
}
