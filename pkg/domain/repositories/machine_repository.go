package repositories

import (
	"time"

	"github.com/rrcamj/khsx-metrics/pkg/domain/entities"
)

// MachineRepository provides access to the machine utilization snapshot and
// the master machine list.
type MachineRepository interface {
	GetObservations(date time.Time) ([]entities.MachineObservation, error)
	GetObservationDates(year int, month time.Month) ([]time.Time, error)
	GetMachineList() ([]string, error)
	LoadObservations(observations []entities.MachineObservation) error
	LoadMachineList(machineIDs []string) error
}
