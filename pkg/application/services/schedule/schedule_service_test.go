package schedule

import (
	"testing"
	"time"

	"github.com/rrcamj/khsx-metrics/pkg/domain/entities"
)

var today = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

func prodOrder(key, qty, customer, deadline string) entities.OrderRecord {
	return entities.NewOrderRecord(key, qty, customer, deadline, "01/03/2025", "", "", "")
}

func qcOrder(key, qty, customer, deadline string) entities.OrderRecord {
	return entities.NewOrderRecord(key, qty, customer, deadline, "", "01/03/2025", "", "")
}

func TestCalculate_ProductionThresholds(t *testing.T) {
	// Predicted threshold = today+5 = 20/03; eligibility bound = today+10 = 25/03.
	orders := []entities.OrderRecord{
		prodOrder("A", "10", "RRC", "14/03/2025"), // overdue (already past)
		prodOrder("B", "20", "RRC", "20/03/2025"), // overdue (on threshold)
		prodOrder("C", "40", "RRC", "21/03/2025"), // due soon
		prodOrder("D", "80", "RRC", "26/03/2025"), // beyond eligibility bound
		prodOrder("E", "7", "XYZ", "18/03/2025"),  // external overdue
		prodOrder("F", "9", "XYZ", "24/03/2025"),  // external due soon
	}

	m := NewService().Calculate(orders, today)
	p := m.Production

	if p.RRCOverdue.Total != 30 || p.RRCOverdue.Count != 2 {
		t.Errorf("rrc overdue = %d (%d), want 30 (2)", p.RRCOverdue.Total, p.RRCOverdue.Count)
	}
	if p.RRCDueSoon.Total != 40 || p.RRCDueSoon.Count != 1 {
		t.Errorf("rrc due soon = %d (%d), want 40 (1)", p.RRCDueSoon.Total, p.RRCDueSoon.Count)
	}
	if p.ExternalOverdue.Total != 7 || p.ExternalDueSoon.Total != 9 {
		t.Errorf("external = %d/%d, want 7/9", p.ExternalOverdue.Total, p.ExternalDueSoon.Total)
	}

	wantThreshold := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	if !p.RRCOverdue.Threshold.Equal(wantThreshold) {
		t.Errorf("predicted threshold = %v, want %v", p.RRCOverdue.Threshold, wantThreshold)
	}
	if !p.RRCActualOverdue.Threshold.Equal(today) {
		t.Errorf("actual threshold = %v, want %v", p.RRCActualOverdue.Threshold, today)
	}
}

func TestCalculate_ActualDueSoonIdentity(t *testing.T) {
	orders := []entities.OrderRecord{
		prodOrder("A", "10", "RRC", "10/03/2025"), // actual overdue
		prodOrder("B", "20", "RRC", "15/03/2025"), // actual overdue (on today)
		prodOrder("C", "40", "RRC", "19/03/2025"), // predicted overdue only
		prodOrder("D", "80", "RRC", "23/03/2025"), // due soon
		qcOrder("E", "3", "RRC", "12/03/2025"),
		qcOrder("F", "5", "RRC", "20/03/2025"),
	}

	m := NewService().Calculate(orders, today)

	p := m.Production
	if p.RRCActualOverdue.Total != 30 {
		t.Errorf("actual overdue = %d, want 30", p.RRCActualOverdue.Total)
	}
	wantDerived := p.RRCOverdue.Total + p.RRCDueSoon.Total - p.RRCActualOverdue.Total
	if p.RRCActualDueSoon.Total != wantDerived {
		t.Errorf("actual due soon = %d, want derived %d", p.RRCActualDueSoon.Total, wantDerived)
	}
	if p.RRCActualDueSoon.Total != 120 {
		t.Errorf("actual due soon = %d, want 120", p.RRCActualDueSoon.Total)
	}

	q := m.QualityControl
	wantQC := q.RRCOverdue.Total + q.RRCDueSoon.Total - q.RRCActualOverdue.Total
	if q.RRCActualDueSoon.Total != wantQC {
		t.Errorf("qc actual due soon = %d, want derived %d", q.RRCActualDueSoon.Total, wantQC)
	}
}

func TestCalculate_QCPipeline(t *testing.T) {
	// QC eligibility bound = today+8 = 23/03; predicted threshold = today+3 = 18/03.
	orders := []entities.OrderRecord{
		qcOrder("A", "10", "RRC", "18/03/2025"), // overdue (on threshold)
		qcOrder("B", "20", "RRC", "19/03/2025"), // due soon
		qcOrder("C", "40", "RRC", "24/03/2025"), // beyond eligibility
		entities.NewOrderRecord("G", "5", "RRC", "16/03/2025", "", "01/03/2025", "Ok", ""), // packed
		entities.NewOrderRecord("H", "6", "RRC", "16/03/2025", "", "", "", ""),             // production stage
	}

	m := NewService().Calculate(orders, today)
	q := m.QualityControl

	if q.RRCOverdue.Total != 10 || q.RRCOverdue.Count != 1 {
		t.Errorf("qc rrc overdue = %d (%d), want 10 (1)", q.RRCOverdue.Total, q.RRCOverdue.Count)
	}
	if q.RRCDueSoon.Total != 20 || q.RRCDueSoon.Count != 1 {
		t.Errorf("qc rrc due soon = %d (%d), want 20 (1)", q.RRCDueSoon.Total, q.RRCDueSoon.Count)
	}

	wantThreshold := time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC)
	if !q.RRCOverdue.Threshold.Equal(wantThreshold) {
		t.Errorf("qc threshold = %v, want %v", q.RRCOverdue.Threshold, wantThreshold)
	}
}

func TestCalculate_QCDeduplicatesByOrderKey(t *testing.T) {
	// The QC source table has one row per operation; only the first row of
	// each order key may count.
	orders := []entities.OrderRecord{
		qcOrder("ORK1", "10", "RRC", "16/03/2025"),
		qcOrder("ORK1", "10", "RRC", "16/03/2025"),
		qcOrder("ORK1", "10", "RRC", "16/03/2025"),
		qcOrder("ORK2", "20", "RRC", "16/03/2025"),
	}

	m := NewService().Calculate(orders, today)
	q := m.QualityControl

	if q.RRCOverdue.Total != 30 || q.RRCOverdue.Count != 2 {
		t.Errorf("qc rrc overdue = %d (%d), want 30 (2) after dedupe", q.RRCOverdue.Total, q.RRCOverdue.Count)
	}
}

func TestCalculate_ProductionKeepsDuplicateKeys(t *testing.T) {
	// Production-stage aggregation is row-level; duplicate keys all count.
	orders := []entities.OrderRecord{
		prodOrder("ORK1", "10", "RRC", "16/03/2025"),
		prodOrder("ORK1", "10", "RRC", "16/03/2025"),
	}

	m := NewService().Calculate(orders, today)
	if m.Production.RRCOverdue.Total != 20 {
		t.Errorf("production overdue = %d, want 20", m.Production.RRCOverdue.Total)
	}
}

func TestCalculate_MissingDeadlineExcluded(t *testing.T) {
	orders := []entities.OrderRecord{
		entities.NewOrderRecord("A", "10", "RRC", "", "01/03/2025", "", "", ""),
		entities.NewOrderRecord("B", "20", "RRC", "not a date", "01/03/2025", "", "", ""),
	}

	m := NewService().Calculate(orders, today)
	p := m.Production
	if p.RRCOverdue.Total != 0 || p.RRCDueSoon.Total != 0 {
		t.Errorf("records without deadlines must be excluded, got %d/%d",
			p.RRCOverdue.Total, p.RRCDueSoon.Total)
	}
}
