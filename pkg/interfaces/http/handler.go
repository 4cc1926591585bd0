package http

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rrcamj/khsx-metrics/pkg/application/dto"
	"github.com/rrcamj/khsx-metrics/pkg/application/services/capacity"
	"github.com/rrcamj/khsx-metrics/pkg/application/services/report"
	"github.com/rrcamj/khsx-metrics/pkg/infrastructure/cache"
	"github.com/rrcamj/khsx-metrics/pkg/infrastructure/config"
	"github.com/rrcamj/khsx-metrics/pkg/infrastructure/datastore"
	"github.com/rrcamj/khsx-metrics/pkg/infrastructure/repositories/csv"
)

const queryDateLayout = "2006-01-02"

// reportResult is the cached slice of a report served by the inventory and
// schedule endpoints.
type reportResult struct {
	Inventory dto.InventoryMetrics
	Schedule  dto.ScheduleMetrics
}

// Handler serves the planning metrics over HTTP.
type Handler struct {
	reportSvc     *report.Service
	productionSvc *capacity.ProductionService
	qcSvc         *capacity.QCService
	store         *datastore.Store
	dataCfg       config.DataConfig
	reportCache   *cache.ReportCache
	logger        *zap.Logger
	validate      *validator.Validate
	now           func() time.Time
}

// NewHandler creates an HTTP handler.
func NewHandler(
	reportSvc *report.Service,
	productionSvc *capacity.ProductionService,
	qcSvc *capacity.QCService,
	store *datastore.Store,
	dataCfg config.DataConfig,
	reportCache *cache.ReportCache,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		reportSvc:     reportSvc,
		productionSvc: productionSvc,
		qcSvc:         qcSvc,
		store:         store,
		dataCfg:       dataCfg,
		reportCache:   reportCache,
		logger:        logger,
		validate:      validator.New(),
		now:           time.Now,
	}
}

type dayQuery struct {
	Date string `query:"date" validate:"omitempty,datetime=2006-01-02"`
}

type capacityQuery struct {
	Date  string `query:"date" validate:"omitempty,datetime=2006-01-02"`
	Month string `query:"month" validate:"omitempty,datetime=2006-01"`
}

// Healthz reports liveness.
func (h *Handler) Healthz(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":      "OK",
		"server_time": h.now().Format(time.RFC3339),
	})
}

// GetReport serves the full metric battery for a reference day, cached.
func (h *Handler) GetReport(c *fiber.Ctx) error {
	day, err := h.parseDay(c)
	if err != nil {
		return err
	}

	if cached, ok := h.reportCache.Get(day); ok {
		return c.JSON(cached)
	}

	rep, err := h.reportSvc.Generate(day)
	if err != nil {
		h.logger.Error("failed to generate report", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate report")
	}
	h.reportCache.Set(day, rep)
	return c.JSON(rep)
}

// GetInventory serves the inventory aggregates.
func (h *Handler) GetInventory(c *fiber.Ctx) error {
	rep, err := h.freshOrCachedReport(c)
	if err != nil {
		return err
	}
	return c.JSON(rep.Inventory)
}

// GetSchedule serves the overdue/due-soon metrics.
func (h *Handler) GetSchedule(c *fiber.Ctx) error {
	rep, err := h.freshOrCachedReport(c)
	if err != nil {
		return err
	}
	return c.JSON(rep.Schedule)
}

// GetProductionCapacity serves the daily or monthly machine-time capacity.
func (h *Handler) GetProductionCapacity(c *fiber.Ctx) error {
	var q capacityQuery
	if err := h.parseQuery(c, &q); err != nil {
		return err
	}

	if q.Month != "" {
		year, month := mustParseMonth(q.Month)
		result, err := h.productionSvc.CalculateMonth(year, month)
		if err != nil {
			h.logger.Error("failed to calculate monthly production capacity", zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "failed to calculate capacity")
		}
		return c.JSON(result)
	}

	result, err := h.productionSvc.Calculate(h.dayOrToday(q.Date))
	if err != nil {
		h.logger.Error("failed to calculate production capacity", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "failed to calculate capacity")
	}
	return c.JSON(result)
}

// GetQCCapacity serves the daily or monthly headcount-time capacity.
func (h *Handler) GetQCCapacity(c *fiber.Ctx) error {
	var q capacityQuery
	if err := h.parseQuery(c, &q); err != nil {
		return err
	}

	if q.Month != "" {
		year, month := mustParseMonth(q.Month)
		result, err := h.qcSvc.CalculateMonth(year, month)
		if err != nil {
			h.logger.Error("failed to calculate monthly QC capacity", zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "failed to calculate capacity")
		}
		return c.JSON(result)
	}

	result, err := h.qcSvc.Calculate(h.dayOrToday(q.Date))
	if err != nil {
		h.logger.Error("failed to calculate QC capacity", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "failed to calculate capacity")
	}
	return c.JSON(result)
}

// RefreshCache reloads the CSV snapshots and drops every cached report.
func (h *Handler) RefreshCache(c *fiber.Ctx) error {
	if err := h.store.LoadFromCSV(csv.NewLoader(), h.dataCfg); err != nil {
		h.logger.Error("failed to reload planning data", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "failed to reload planning data")
	}
	h.reportCache.Clear()
	h.logger.Info("planning data reloaded, report cache cleared")
	return c.JSON(fiber.Map{"status": "refreshed"})
}

func (h *Handler) freshOrCachedReport(c *fiber.Ctx) (rep reportResult, err error) {
	day, err := h.parseDay(c)
	if err != nil {
		return rep, err
	}
	if cached, ok := h.reportCache.Get(day); ok {
		return reportResult{cached.Inventory, cached.Schedule}, nil
	}
	full, err := h.reportSvc.Generate(day)
	if err != nil {
		h.logger.Error("failed to generate report", zap.Error(err))
		return rep, fiber.NewError(fiber.StatusInternalServerError, "failed to generate report")
	}
	h.reportCache.Set(day, full)
	return reportResult{full.Inventory, full.Schedule}, nil
}

func (h *Handler) parseDay(c *fiber.Ctx) (time.Time, error) {
	var q dayQuery
	if err := h.parseQuery(c, &q); err != nil {
		return time.Time{}, err
	}
	return h.dayOrToday(q.Date), nil
}

func (h *Handler) parseQuery(c *fiber.Ctx, q interface{}) error {
	if err := c.QueryParser(q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}
	if err := h.validate.Struct(q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

func (h *Handler) dayOrToday(date string) time.Time {
	if date == "" {
		now := h.now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	day, _ := time.Parse(queryDateLayout, date)
	return day
}

// mustParseMonth assumes the validator already checked the layout.
func mustParseMonth(s string) (int, time.Month) {
	t, _ := time.Parse("2006-01", s)
	return t.Year(), t.Month()
}
