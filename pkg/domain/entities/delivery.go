package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryLine is one delivered order line from the warehouse hand-off table
// (giao kho): the quantity of a part delivered on a day. Both capacity
// numerators are built from these lines.
type DeliveryLine struct {
	PartName string // ten_chi_tiet
	Quantity decimal.Decimal // sll / sl_giao
	Date     time.Time
}

// NewDeliveryLine normalizes one raw delivery row.
func NewDeliveryLine(partName, quantity string, date time.Time) DeliveryLine {
	return DeliveryLine{
		PartName: strings.TrimSpace(partName),
		Quantity: ParseMinutes(quantity),
		Date:     date,
	}
}
