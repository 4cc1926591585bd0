package entities

import (
	"strings"
	"time"
)

// Shift type identifiers counted as 12-hour assignments in the shift
// schedule.
const (
	ShiftDay12   = "D12"
	ShiftNight12 = "S12"
)

// HeadcountRecord holds the registered worker counts for one department on
// one day, split by shift length and by the "direct" (hands-on) subset.
type HeadcountRecord struct {
	Department string
	Date       time.Time
	Total12h   int64 // workers registered for 12-hour shifts
	Direct12h  int64 // direct subset of the 12-hour cohort
	Total8h    int64 // workers registered for 8-hour shifts
	Direct8h   int64 // direct subset of the 8-hour cohort
}

// ShiftAssignment is one row of the shift schedule: a worker registered for a
// shift type in a department on a day.
type ShiftAssignment struct {
	Department string
	Date       time.Time
	ShiftType  string
}

// NewShiftAssignment normalizes one raw shift-schedule row.
func NewShiftAssignment(department string, date time.Time, shiftType string) ShiftAssignment {
	return ShiftAssignment{
		Department: strings.TrimSpace(department),
		Date:       date,
		ShiftType:  strings.TrimSpace(shiftType),
	}
}

// IsTwelveHour reports whether the assignment is a 12-hour shift type.
func (s ShiftAssignment) IsTwelveHour() bool {
	return s.ShiftType == ShiftDay12 || s.ShiftType == ShiftNight12
}
