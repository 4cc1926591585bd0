package entities

import (
	"strings"
	"time"
)

// RRCCustomer is the in-house customer code; every other trimmed value is an
// external customer.
const RRCCustomer = "RRC"

// AMJCustomer is excluded from the QC-stage external inventory metric only.
const AMJCustomer = "AMJ"

// Billet cells carrying these literals are non-empty but never qualify as a
// delivery.
const (
	BilletReversedOrder = "Đảo lệnh"
	BilletDefective     = "phôi lỗi"
)

// OrderRecord is one normalized row of the order-tracking table (KHSX).
// Dates that failed to parse are zero; the raw gate cells are kept trimmed so
// the classifiers can apply presence and sentinel tests exactly as the legacy
// formulas did.
type OrderRecord struct {
	OrderKey         string    // ORKD, dedupe key for QC-stage aggregates
	Quantity         int64     // Số lượng ĐH
	CustomerCode     string    // KH, trimmed
	CustomerDeadline time.Time // TH mới khách hàng, zero when absent/invalid
	BilletDelivery   string    // Ngày giao phôi sx AMJ, raw trimmed cell
	QCHandoff        string    // Ngày giao QLCL, raw trimmed cell
	PackedFlag       string    // Hàng gói Ok, raw trimmed cell
	ShippedFlag      string    // Ngày xuất hàng, raw trimmed cell
}

// NewOrderRecord normalizes one raw row. Every field is recoverable:
// unparseable quantities become 0 and unparseable deadlines become absent.
func NewOrderRecord(orderKey, quantity, customer, deadline, billet, qcHandoff, packed, shipped string) OrderRecord {
	rec := OrderRecord{
		OrderKey:       strings.TrimSpace(orderKey),
		Quantity:       ParseQuantity(quantity),
		CustomerCode:   strings.TrimSpace(customer),
		BilletDelivery: strings.TrimSpace(billet),
		QCHandoff:      strings.TrimSpace(qcHandoff),
		PackedFlag:     strings.TrimSpace(packed),
		ShippedFlag:    strings.TrimSpace(shipped),
	}
	if d, ok := ParseDate(deadline); ok {
		rec.CustomerDeadline = d
	}
	return rec
}

// IsRRC reports whether the row belongs to the in-house customer.
func (r OrderRecord) IsRRC() bool {
	return r.CustomerCode == RRCCustomer
}

// HasDeadline reports whether the customer deadline parsed to a real date.
func (r OrderRecord) HasDeadline() bool {
	return !r.CustomerDeadline.IsZero()
}

// InQC reports whether the order has been handed to quality control. Its
// negation marks the production stage; the two stages partition every order.
func (r OrderRecord) InQC() bool {
	return IsPresent(r.QCHandoff)
}

// BilletDateValid reports whether the billet cell is a real calendar date
// (the spreadsheet ISNUMBER test). Free text and bare punctuation fail.
func (r OrderRecord) BilletDateValid() bool {
	_, ok := ParseDate(r.BilletDelivery)
	return ok
}

// BilletQualifies reports whether the billet cell is non-empty and not one of
// the non-delivery sentinels.
func (r OrderRecord) BilletQualifies() bool {
	return IsPresent(r.BilletDelivery) &&
		r.BilletDelivery != BilletReversedOrder &&
		r.BilletDelivery != BilletDefective
}

// Packed reports whether the order is finished and packed.
func (r OrderRecord) Packed() bool {
	return IsPresent(r.PackedFlag)
}

// Shipped reports whether the order has left the plant.
func (r OrderRecord) Shipped() bool {
	return IsPresent(r.ShippedFlag)
}
