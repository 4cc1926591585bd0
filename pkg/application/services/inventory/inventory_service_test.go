package inventory

import (
	"testing"

	"github.com/rrcamj/khsx-metrics/pkg/domain/entities"
)

func order(qty, customer, deadline, billet, qcHandoff, packed, shipped string) entities.OrderRecord {
	return entities.NewOrderRecord("K", qty, customer, deadline, billet, qcHandoff, packed, shipped)
}

func TestCalculate_EndToEndScenario(t *testing.T) {
	orders := []entities.OrderRecord{
		order("100", "RRC", "", "15/03/2025", "", "", ""),
		order("50", "ABC", "", "Đảo lệnh", "", "", ""),
		order("30", "RRC", "", "", "01/01/2025", "", ""),
	}

	svc := NewService()
	m := svc.Calculate(orders)

	if m.RRC.Total != 100 || m.RRC.Count != 1 {
		t.Errorf("rrc inventory = %d (%d rows), want 100 (1 row)", m.RRC.Total, m.RRC.Count)
	}
	if m.External.Total != 0 || m.External.Count != 0 {
		t.Errorf("external inventory = %d (%d rows), want 0 (0 rows)", m.External.Total, m.External.Count)
	}
	if m.RRCPKT.Total != 30 || m.RRCPKT.Count != 1 {
		t.Errorf("rrc pkt inventory = %d (%d rows), want 30 (1 row)", m.RRCPKT.Total, m.RRCPKT.Count)
	}
	if m.ExternalPKT.Total != 0 {
		t.Errorf("external pkt inventory = %d, want 0", m.ExternalPKT.Total)
	}
}

func TestExternalInventory_SentinelBilletExcluded(t *testing.T) {
	svc := NewService()

	for _, sentinel := range []string{"Đảo lệnh", "phôi lỗi"} {
		b := svc.ExternalInventory([]entities.OrderRecord{
			order("40", "ABC", "", sentinel, "", "", ""),
		})
		if b.Total != 0 {
			t.Errorf("billet %q: external inventory = %d, want 0", sentinel, b.Total)
		}
	}

	// Non-sentinel free text still qualifies for the external metric, which
	// only requires a non-empty cell.
	b := svc.ExternalInventory([]entities.OrderRecord{
		order("40", "ABC", "", "chờ phôi", "", "", ""),
	})
	if b.Total != 40 {
		t.Errorf("free-text billet: external inventory = %d, want 40", b.Total)
	}
}

func TestRRCInventory_RequiresCalendarDateBillet(t *testing.T) {
	svc := NewService()

	b := svc.RRCInventory([]entities.OrderRecord{
		order("25", "RRC", "", "chờ phôi", "", "", ""),
		order("75", "RRC", "", "10/04/2025", "", "", ""),
	})
	if b.Total != 75 || b.Count != 1 {
		t.Errorf("rrc inventory = %d (%d rows), want 75 (1 row)", b.Total, b.Count)
	}
}

func TestExternalPKT_AMJExcluded(t *testing.T) {
	svc := NewService()

	orders := []entities.OrderRecord{
		order("10", "AMJ", "", "", "01/01/2025", "", ""),
		order("20", "XYZ", "", "", "01/01/2025", "", ""),
	}

	b := svc.ExternalPKTInventory(orders)
	if b.Total != 20 || b.Count != 1 {
		t.Errorf("external pkt = %d (%d rows), want 20 (1 row)", b.Total, b.Count)
	}

	// The production-stage external metric does NOT exclude AMJ.
	prod := svc.ExternalInventory([]entities.OrderRecord{
		order("10", "AMJ", "", "05/05/2025", "", "", ""),
	})
	if prod.Total != 10 {
		t.Errorf("production-stage external = %d, want 10 (AMJ not excluded)", prod.Total)
	}
}

func TestStagePartition_NoDoubleCounting(t *testing.T) {
	svc := NewService()

	// Every combination of stage flags must land in at most one of the
	// production-stage and QC-stage groups.
	orders := []entities.OrderRecord{
		order("1", "RRC", "", "01/01/2025", "", "", ""),           // production
		order("2", "RRC", "", "01/01/2025", "02/01/2025", "", ""), // QC
		order("4", "ABC", "", "01/01/2025", "", "", ""),
		order("8", "ABC", "", "01/01/2025", "02/01/2025", "", ""),
	}

	m := svc.Calculate(orders)
	production := m.RRC.Total + m.External.Total
	qc := m.RRCPKT.Total + m.ExternalPKT.Total

	if production != 5 {
		t.Errorf("production-stage total = %d, want 5", production)
	}
	if qc != 10 {
		t.Errorf("qc-stage total = %d, want 10", qc)
	}
	if production+qc != 15 {
		t.Errorf("stages overlap: %d + %d != 15", production, qc)
	}
}

func TestCalculate_PackedOrShippedLeavesPKT(t *testing.T) {
	svc := NewService()

	orders := []entities.OrderRecord{
		order("10", "RRC", "", "", "01/01/2025", "Ok", ""),
		order("20", "RRC", "", "", "01/01/2025", "", "05/01/2025"),
		order("30", "RRC", "", "", "01/01/2025", "", ""),
	}

	b := svc.RRCPKTInventory(orders)
	if b.Total != 30 || b.Count != 1 {
		t.Errorf("rrc pkt = %d (%d rows), want 30 (1 row)", b.Total, b.Count)
	}
}
