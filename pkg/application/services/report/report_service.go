package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rrcamj/khsx-metrics/pkg/application/dto"
	"github.com/rrcamj/khsx-metrics/pkg/application/services/capacity"
	"github.com/rrcamj/khsx-metrics/pkg/application/services/inventory"
	"github.com/rrcamj/khsx-metrics/pkg/application/services/schedule"
	"github.com/rrcamj/khsx-metrics/pkg/domain/repositories"
)

// Service assembles the full dashboard report from the individual metric
// services. The reference day is always passed in by the caller.
type Service struct {
	orderRepo     repositories.OrderRepository
	inventorySvc  *inventory.Service
	scheduleSvc   *schedule.Service
	productionSvc *capacity.ProductionService
	qcSvc         *capacity.QCService
	now           func() time.Time
}

// NewService creates a report service.
func NewService(
	orderRepo repositories.OrderRepository,
	inventorySvc *inventory.Service,
	scheduleSvc *schedule.Service,
	productionSvc *capacity.ProductionService,
	qcSvc *capacity.QCService,
) *Service {
	return &Service{
		orderRepo:     orderRepo,
		inventorySvc:  inventorySvc,
		scheduleSvc:   scheduleSvc,
		productionSvc: productionSvc,
		qcSvc:         qcSvc,
		now:           time.Now,
	}
}

// Generate computes the full metric battery for one reference day.
func (s *Service) Generate(today time.Time) (dto.DashboardReport, error) {
	orders, err := s.orderRepo.GetAllOrders()
	if err != nil {
		return dto.DashboardReport{}, fmt.Errorf("failed to get orders: %w", err)
	}

	production, err := s.productionSvc.Calculate(today)
	if err != nil {
		return dto.DashboardReport{}, fmt.Errorf("failed to calculate production capacity: %w", err)
	}
	qc, err := s.qcSvc.Calculate(today)
	if err != nil {
		return dto.DashboardReport{}, fmt.Errorf("failed to calculate QC capacity: %w", err)
	}

	return dto.DashboardReport{
		ID:                 uuid.New(),
		GeneratedAt:        s.now(),
		Today:              today,
		Inventory:          s.inventorySvc.Calculate(orders),
		Schedule:           s.scheduleSvc.Calculate(orders, today),
		ProductionCapacity: production,
		QCCapacity:         qc,
	}, nil
}
