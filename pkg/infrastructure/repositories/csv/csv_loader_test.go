package csv

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadOrders(t *testing.T) {
	path := writeFile(t, "orders.csv",
		"ORKD,Số lượng ĐH,KH,TH mới khách hàng,Ngày giao phôi sx AMJ,Ngày giao QLCL,Hàng gói Ok,Ngày xuất hàng\n"+
			"ORK1,\"1,250\",RRC,15/03/2025,01/03/2025,,,\n"+
			"ORK2,30,ABC,,Đảo lệnh,,,\n"+
			"short,row\n"+
			"ORK3,10,RRC,,,01/03/2025,Ok,\n")

	orders, err := NewLoader().LoadOrders(path)
	if err != nil {
		t.Fatalf("LoadOrders: %v", err)
	}
	// The two-column row is skipped, not fatal.
	if len(orders) != 3 {
		t.Fatalf("orders loaded = %d, want 3", len(orders))
	}

	if orders[0].OrderKey != "ORK1" || orders[0].Quantity != 1250 {
		t.Errorf("row 1 = %q qty %d, want ORK1 qty 1250", orders[0].OrderKey, orders[0].Quantity)
	}
	if !orders[0].HasDeadline() || !orders[0].BilletDateValid() {
		t.Error("row 1 should carry a parsed deadline and a date-valid billet cell")
	}
	if orders[1].BilletQualifies() {
		t.Error("row 2 sentinel billet must not qualify")
	}
	if !orders[2].InQC() || !orders[2].Packed() {
		t.Error("row 3 should be in QC and packed")
	}
}

func TestLoadOrders_HeaderMismatch(t *testing.T) {
	path := writeFile(t, "orders.csv",
		"order_key,qty\nORK1,10\n")

	if _, err := NewLoader().LoadOrders(path); err == nil {
		t.Fatal("expected a header-mismatch error")
	}
}

func TestLoadOrders_MissingFile(t *testing.T) {
	if _, err := NewLoader().LoadOrders(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatal("expected an open error for a missing file")
	}
}

func TestLoadObservations(t *testing.T) {
	path := writeFile(t, "phtcv.csv",
		"số máy,bộ phận,ngày,sl thực tế,tgcb,chạy thử,gá lắp,gia công,dừng,dừng khác,sửa\n"+
			"M01,Sản xuất 1,15/03/2025,2,\"10,5\",0,0,\"30,25\",0,0,0\n"+
			"M02,Sản xuất 1,not a date,1,100,0,0,0,0,0,0\n"+
			"M03,Sản xuất 2,16/03/2025,1,0,0,0,0,630,0,0\n")

	observations, err := NewLoader().LoadObservations(path)
	if err != nil {
		t.Fatalf("LoadObservations: %v", err)
	}
	// The unparseable-date row is skipped.
	if len(observations) != 2 {
		t.Fatalf("observations loaded = %d, want 2", len(observations))
	}

	want := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	if !observations[0].Date.Equal(want) {
		t.Errorf("row 1 date = %v, want %v", observations[0].Date, want)
	}
	// 10.5 + 30.25*2 = 71, decimal commas normalized.
	if !observations[0].TotalMinutes().Equal(decimal.NewFromInt(71)) {
		t.Errorf("row 1 total = %s, want 71", observations[0].TotalMinutes())
	}
	// Sentinel stop contributes nothing.
	if !observations[1].TotalMinutes().IsZero() {
		t.Errorf("row 3 total = %s, want 0", observations[1].TotalMinutes())
	}
}

func TestLoadMachineList(t *testing.T) {
	path := writeFile(t, "machines.csv",
		"số máy\nM01\n  \nM02\n")

	machines, err := NewLoader().LoadMachineList(path)
	if err != nil {
		t.Fatalf("LoadMachineList: %v", err)
	}
	if len(machines) != 2 || machines[0] != "M01" || machines[1] != "M02" {
		t.Errorf("machines = %v, want [M01 M02] with the blank row dropped", machines)
	}
}

func TestLoadDeliveries_BadDateSkipped(t *testing.T) {
	path := writeFile(t, "giao_kho.csv",
		"ten_chi_tiet,sl_giao,ngay_giao\n"+
			"TRUC-01,5,15/03/2025\n"+
			"TRUC-02,7,***\n")

	lines, err := NewLoader().LoadDeliveries(path)
	if err != nil {
		t.Fatalf("LoadDeliveries: %v", err)
	}
	if len(lines) != 1 || lines[0].PartName != "TRUC-01" {
		t.Errorf("lines = %v, want only the dated TRUC-01 row", lines)
	}
}
