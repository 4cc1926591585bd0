package inventory

import (
	"github.com/rrcamj/khsx-metrics/pkg/application/dto"
	"github.com/rrcamj/khsx-metrics/pkg/domain/entities"
)

// Service computes the four inventory aggregates over an order snapshot.
// Each aggregate mirrors one legacy SUMPRODUCT formula: a conjunction of
// predicates followed by a quantity sum. The service holds no state.
type Service struct{}

// NewService creates an inventory service.
func NewService() *Service {
	return &Service{}
}

// Calculate evaluates all four aggregates in a single pass over the
// snapshot.
func (s *Service) Calculate(orders []entities.OrderRecord) dto.InventoryMetrics {
	var m dto.InventoryMetrics
	for _, rec := range orders {
		if qualifiesRRC(rec) {
			add(&m.RRC, rec)
		}
		if qualifiesExternal(rec) {
			add(&m.External, rec)
		}
		if qualifiesRRCPKT(rec) {
			add(&m.RRCPKT, rec)
		}
		if qualifiesExternalPKT(rec) {
			add(&m.ExternalPKT, rec)
		}
	}
	return m
}

// RRCInventory sums production-stage orders for the in-house customer whose
// billet cell is a real calendar date.
func (s *Service) RRCInventory(orders []entities.OrderRecord) dto.InventoryBucket {
	return sum(orders, qualifiesRRC)
}

// ExternalInventory sums production-stage orders for external customers with
// a non-empty, non-sentinel billet cell.
func (s *Service) ExternalInventory(orders []entities.OrderRecord) dto.InventoryBucket {
	return sum(orders, qualifiesExternal)
}

// RRCPKTInventory sums QC-stage orders for the in-house customer that are
// neither packed nor shipped.
func (s *Service) RRCPKTInventory(orders []entities.OrderRecord) dto.InventoryBucket {
	return sum(orders, qualifiesRRCPKT)
}

// ExternalPKTInventory sums QC-stage orders for external customers that are
// neither packed nor shipped. AMJ is excluded here and only here.
func (s *Service) ExternalPKTInventory(orders []entities.OrderRecord) dto.InventoryBucket {
	return sum(orders, qualifiesExternalPKT)
}

func qualifiesRRC(r entities.OrderRecord) bool {
	return r.IsRRC() && !r.InQC() && r.BilletDateValid()
}

func qualifiesExternal(r entities.OrderRecord) bool {
	return !r.IsRRC() && !r.InQC() && r.BilletQualifies()
}

func qualifiesRRCPKT(r entities.OrderRecord) bool {
	return r.IsRRC() && r.InQC() && !r.Packed() && !r.Shipped()
}

func qualifiesExternalPKT(r entities.OrderRecord) bool {
	return !r.IsRRC() && r.CustomerCode != entities.AMJCustomer &&
		r.InQC() && !r.Packed() && !r.Shipped()
}

func sum(orders []entities.OrderRecord, pred func(entities.OrderRecord) bool) dto.InventoryBucket {
	var b dto.InventoryBucket
	for _, rec := range orders {
		if pred(rec) {
			add(&b, rec)
		}
	}
	return b
}

func add(b *dto.InventoryBucket, rec entities.OrderRecord) {
	b.Total += rec.Quantity
	b.Count++
}
