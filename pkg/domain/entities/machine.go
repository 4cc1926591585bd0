package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Scheduled shift lengths in minutes. A stoppage cell equal to one of these
// marks a shift boundary, not real downtime, and is zeroed before summation.
var shiftSentinelMinutes = []int64{420, 630, 660}

// MachineObservation is one operation row of the machine utilization table
// (PHTCV). Several rows may exist per machine, department and day; the
// capacity model sums them before cohort classification.
type MachineObservation struct {
	MachineID  string
	Department string
	Date       time.Time
	ActualQty  decimal.Decimal // sl thực tế, treated as 1 when zero/absent
	Setup      decimal.Decimal // tgcb
	TrialRun   decimal.Decimal // chạy thử
	Fixture    decimal.Decimal // gá lắp, per unit
	Processing decimal.Decimal // gia công, per unit
	Stop       decimal.Decimal // dừng
	StopOther  decimal.Decimal // dừng khác
	Repair     decimal.Decimal // sửa
}

// NewMachineObservation normalizes one raw PHTCV row.
func NewMachineObservation(machineID, department string, date time.Time, actualQty, setup, trial, fixture, processing, stop, stopOther, repair string) MachineObservation {
	return MachineObservation{
		MachineID:  strings.TrimSpace(machineID),
		Department: strings.TrimSpace(department),
		Date:       date,
		ActualQty:  ParseMinutes(actualQty),
		Setup:      ParseMinutes(setup),
		TrialRun:   ParseMinutes(trial),
		Fixture:    ParseMinutes(fixture),
		Processing: ParseMinutes(processing),
		Stop:       ParseMinutes(stop),
		StopOther:  ParseMinutes(stopOther),
		Repair:     ParseMinutes(repair),
	}
}

// EffectiveQty returns the actual quantity with the zero/absent fallback of 1
// applied.
func (o MachineObservation) EffectiveQty() decimal.Decimal {
	if o.ActualQty.IsZero() {
		return decimal.NewFromInt(1)
	}
	return o.ActualQty
}

// StopMinutes returns the stoppage cell with the shift-boundary sentinels
// zeroed.
func (o MachineObservation) StopMinutes() decimal.Decimal {
	return dropShiftSentinel(o.Stop)
}

// StopOtherMinutes returns the secondary stoppage cell with the
// shift-boundary sentinels zeroed.
func (o MachineObservation) StopOtherMinutes() decimal.Decimal {
	return dropShiftSentinel(o.StopOther)
}

// TotalMinutes is this row's contribution to the machine's daily total:
// setup, trial run, fixture and processing scaled by actual quantity,
// sentinel-filtered stoppages and repair.
func (o MachineObservation) TotalMinutes() decimal.Decimal {
	qty := o.EffectiveQty()
	total := o.Setup.
		Add(o.TrialRun).
		Add(o.Fixture.Mul(qty)).
		Add(o.Processing.Mul(qty)).
		Add(o.StopMinutes()).
		Add(o.StopOtherMinutes()).
		Add(o.Repair)
	return total
}

// ProductionMinutes sums the processing-related categories only, used to
// decide whether an observed machine did any real work that day.
func (o MachineObservation) ProductionMinutes() decimal.Decimal {
	return o.Setup.Add(o.TrialRun).Add(o.Fixture).Add(o.Processing)
}

func dropShiftSentinel(v decimal.Decimal) decimal.Decimal {
	for _, s := range shiftSentinelMinutes {
		if v.Equal(decimal.NewFromInt(s)) {
			return decimal.Zero
		}
	}
	return v
}
