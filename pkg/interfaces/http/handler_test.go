package http

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rrcamj/khsx-metrics/pkg/application/dto"
	"github.com/rrcamj/khsx-metrics/pkg/application/services/capacity"
	"github.com/rrcamj/khsx-metrics/pkg/application/services/inventory"
	"github.com/rrcamj/khsx-metrics/pkg/application/services/report"
	"github.com/rrcamj/khsx-metrics/pkg/application/services/schedule"
	"github.com/rrcamj/khsx-metrics/pkg/domain/entities"
	"github.com/rrcamj/khsx-metrics/pkg/infrastructure/cache"
	"github.com/rrcamj/khsx-metrics/pkg/infrastructure/config"
	"github.com/rrcamj/khsx-metrics/pkg/infrastructure/datastore"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := datastore.NewStore()
	err := store.Orders.LoadOrders([]entities.OrderRecord{
		entities.NewOrderRecord("ORK1", "100", "RRC", "", "15/03/2025", "", "", ""),
	})
	if err != nil {
		t.Fatalf("load orders: %v", err)
	}
	err = store.Machines.LoadObservations([]entities.MachineObservation{
		entities.NewMachineObservation("M01", "T1",
			time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			"", "700", "", "", "", "", "", ""),
	})
	if err != nil {
		t.Fatalf("load observations: %v", err)
	}

	productionSvc := capacity.NewProductionService(store.Machines, store.Deliveries, store.Standards)
	qcSvc := capacity.NewQCService(store.Labor, store.Deliveries, store.Standards, "0300_BPKT")
	reportSvc := report.NewService(store.Orders, inventory.NewService(), schedule.NewService(), productionSvc, qcSvc)

	h := NewHandler(reportSvc, productionSvc, qcSvc, store, config.DataConfig{},
		cache.NewReportCache(5*time.Minute), zap.NewNop())

	app := fiber.New()
	RegisterRoutes(app, h)
	return app
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestGetReport(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/report?date=2025-03-15", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var rep dto.DashboardReport
	if err := json.NewDecoder(resp.Body).Decode(&rep); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if rep.Inventory.RRC.Total != 100 {
		t.Errorf("rrc inventory = %d, want 100", rep.Inventory.RRC.Total)
	}
	if !rep.ProductionCapacity.Computable {
		t.Error("production capacity should be computable")
	}
}

func TestGetReport_InvalidDate(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/report?date=15/03/2025", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGetProductionCapacity_Month(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/capacity/production?month=2025-03", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var result dto.MonthlyCapacity
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if !result.Computable || result.DaysUsed != 1 {
		t.Errorf("monthly = computable=%v days=%d, want one computable day",
			result.Computable, result.DaysUsed)
	}
}

func TestGetQCCapacity_EmptyDayNotComputable(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/capacity/qc?date=2025-03-15", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var result dto.QCCapacity
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Computable {
		t.Error("empty day must be flagged not computable, not zero")
	}
}
