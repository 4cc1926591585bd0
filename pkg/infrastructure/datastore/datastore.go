package datastore

import (
	"fmt"

	"github.com/rrcamj/khsx-metrics/pkg/infrastructure/config"
	"github.com/rrcamj/khsx-metrics/pkg/infrastructure/repositories/csv"
	"github.com/rrcamj/khsx-metrics/pkg/infrastructure/repositories/memory"
)

// Store bundles the in-memory repositories for one loaded snapshot of the
// planning tables.
type Store struct {
	Orders     *memory.OrderRepository
	Machines   *memory.MachineRepository
	Labor      *memory.LaborRepository
	Standards  *memory.TimeStandardRepository
	Deliveries *memory.DeliveryRepository
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		Orders:     memory.NewOrderRepository(1024),
		Machines:   memory.NewMachineRepository(4096),
		Labor:      memory.NewLaborRepository(),
		Standards:  memory.NewTimeStandardRepository(4096),
		Deliveries: memory.NewDeliveryRepository(1024),
	}
}

// LoadFromCSV reads every configured CSV export into the store, replacing
// any previously loaded snapshot.
func (s *Store) LoadFromCSV(loader *csv.Loader, cfg config.DataConfig) error {
	orders, err := loader.LoadOrders(cfg.OrdersFile)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}
	if err := s.Orders.LoadOrders(orders); err != nil {
		return err
	}

	observations, err := loader.LoadObservations(cfg.ObservationsFile)
	if err != nil {
		return fmt.Errorf("failed to load machine observations: %w", err)
	}
	if err := s.Machines.LoadObservations(observations); err != nil {
		return err
	}

	machineList, err := loader.LoadMachineList(cfg.MachineListFile)
	if err != nil {
		return fmt.Errorf("failed to load machine list: %w", err)
	}
	if err := s.Machines.LoadMachineList(machineList); err != nil {
		return err
	}

	headcounts, err := loader.LoadHeadcounts(cfg.HeadcountsFile)
	if err != nil {
		return fmt.Errorf("failed to load headcounts: %w", err)
	}
	if err := s.Labor.LoadHeadcounts(headcounts); err != nil {
		return err
	}

	shifts, err := loader.LoadShiftAssignments(cfg.ShiftsFile)
	if err != nil {
		return fmt.Errorf("failed to load shift assignments: %w", err)
	}
	if err := s.Labor.LoadShiftAssignments(shifts); err != nil {
		return err
	}

	standards, err := loader.LoadTimeStandards(cfg.StandardsFile)
	if err != nil {
		return fmt.Errorf("failed to load time standards: %w", err)
	}
	if err := s.Standards.LoadTimeStandards(standards); err != nil {
		return err
	}

	processTimes, err := loader.LoadProcessTimes(cfg.ProcessTimesFile)
	if err != nil {
		return fmt.Errorf("failed to load process times: %w", err)
	}
	if err := s.Standards.LoadProcessTimes(processTimes); err != nil {
		return err
	}

	deliveries, err := loader.LoadDeliveries(cfg.DeliveriesFile)
	if err != nil {
		return fmt.Errorf("failed to load deliveries: %w", err)
	}
	if err := s.Deliveries.LoadDeliveries(deliveries); err != nil {
		return err
	}

	return nil
}
