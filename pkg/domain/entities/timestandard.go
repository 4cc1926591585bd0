package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// QC inspection operation codes from the completion-time standard table.
// The four PKT codes feed the quantity-tiered formula; the "other" codes are
// summed and scaled linearly; the two IXXL codes are always per-unit.
const (
	CodeInspectFirst  = "IKTBV"
	CodeInspectRepeat = "IKTHD"
	CodeMeasureFirst  = "IKMBV"
	CodeMeasureRepeat = "IKMHD"
	CodeFinalVisual   = "IXXLT"
	CodeFinalMeasure  = "IXXLM"
)

// OtherOperationCodes are the nine auxiliary QC operations whose standard
// minutes scale linearly with quantity.
var OtherOperationCodes = []string{
	"ITNBM", "ITTBS", "IVNBM", "IVTBS", "IRNBM", "IRNXS", "IRLSP", "IDLSS", "IDDGS",
}

// TimeStandard is one row of the completion-time standard table: the minutes
// per unit for one operation code on one part.
type TimeStandard struct {
	PartName      string // ten_chi_tiet
	OperationCode string // ma_cv
	Minutes       decimal.Decimal
}

// NewTimeStandard normalizes one raw time-standard row.
func NewTimeStandard(partName, operationCode, minutes string) TimeStandard {
	return TimeStandard{
		PartName:      strings.TrimSpace(partName),
		OperationCode: strings.TrimSpace(operationCode),
		Minutes:       ParseMinutes(minutes),
	}
}

// PartProcessTime is one row of the machining process-time table (PKY): the
// per-unit processing minutes and crew size for one part, feeding the
// production-capacity numerator.
type PartProcessTime struct {
	PartName       string
	MinutesPerUnit decimal.Decimal // thoi_gian
	Headcount      decimal.Decimal // tong_so_nc
}

// NewPartProcessTime normalizes one raw PKY row.
func NewPartProcessTime(partName, minutesPerUnit, headcount string) PartProcessTime {
	return PartProcessTime{
		PartName:       strings.TrimSpace(partName),
		MinutesPerUnit: ParseMinutes(minutesPerUnit),
		Headcount:      ParseMinutes(headcount),
	}
}
