package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/rrcamj/khsx-metrics/pkg/domain/entities"
)

// Loader reads the planning-table snapshots from CSV exports. Header rows
// are validated strictly; data rows follow the substitution model instead:
// unparseable dates become absent, unparseable numbers become zero, and rows
// with the wrong column count are skipped rather than failing the load.
type Loader struct{}

// NewLoader creates a CSV loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadOrders reads the order-tracking table.
func (l *Loader) LoadOrders(filename string) ([]entities.OrderRecord, error) {
	header := []string{
		"ORKD", "Số lượng ĐH", "KH", "TH mới khách hàng",
		"Ngày giao phôi sx AMJ", "Ngày giao QLCL", "Hàng gói Ok", "Ngày xuất hàng",
	}
	rows, err := l.readTable(filename, "orders", header)
	if err != nil {
		return nil, err
	}

	orders := make([]entities.OrderRecord, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, entities.NewOrderRecord(
			row[0], row[1], row[2], row[3], row[4], row[5], row[6], row[7]))
	}
	return orders, nil
}

// LoadObservations reads the machine utilization table (PHTCV).
func (l *Loader) LoadObservations(filename string) ([]entities.MachineObservation, error) {
	header := []string{
		"số máy", "bộ phận", "ngày", "sl thực tế", "tgcb", "chạy thử",
		"gá lắp", "gia công", "dừng", "dừng khác", "sửa",
	}
	rows, err := l.readTable(filename, "machine observations", header)
	if err != nil {
		return nil, err
	}

	observations := make([]entities.MachineObservation, 0, len(rows))
	for _, row := range rows {
		date, ok := entities.ParseDate(row[2])
		if !ok {
			continue
		}
		observations = append(observations, entities.NewMachineObservation(
			row[0], row[1], date,
			row[3], row[4], row[5], row[6], row[7], row[8], row[9], row[10]))
	}
	return observations, nil
}

// LoadMachineList reads the master machine list.
func (l *Loader) LoadMachineList(filename string) ([]string, error) {
	rows, err := l.readTable(filename, "machine list", []string{"số máy"})
	if err != nil {
		return nil, err
	}

	machines := make([]string, 0, len(rows))
	for _, row := range rows {
		id := strings.TrimSpace(row[0])
		if id == "" {
			continue
		}
		machines = append(machines, id)
	}
	return machines, nil
}

// LoadHeadcounts reads the daily headcount table.
func (l *Loader) LoadHeadcounts(filename string) ([]entities.HeadcountRecord, error) {
	header := []string{
		"Department ID", "Working Date",
		"Tong So Nguoi Lam Them Gio 12h", "Tong So Nguoi Lam Truc Tiep 12h",
		"Tong So Nguoi Lam Them Gio 8h", "Tong So Nguoi Lam Truc Tiep 8h",
	}
	rows, err := l.readTable(filename, "headcounts", header)
	if err != nil {
		return nil, err
	}

	records := make([]entities.HeadcountRecord, 0, len(rows))
	for _, row := range rows {
		date, ok := entities.ParseDate(row[1])
		if !ok {
			continue
		}
		records = append(records, entities.HeadcountRecord{
			Department: strings.TrimSpace(row[0]),
			Date:       date,
			Total12h:   entities.ParseQuantity(row[2]),
			Direct12h:  entities.ParseQuantity(row[3]),
			Total8h:    entities.ParseQuantity(row[4]),
			Direct8h:   entities.ParseQuantity(row[5]),
		})
	}
	return records, nil
}

// LoadShiftAssignments reads the shift schedule.
func (l *Loader) LoadShiftAssignments(filename string) ([]entities.ShiftAssignment, error) {
	header := []string{"Department ID", "Work Date", "Shift Type ID"}
	rows, err := l.readTable(filename, "shift assignments", header)
	if err != nil {
		return nil, err
	}

	assignments := make([]entities.ShiftAssignment, 0, len(rows))
	for _, row := range rows {
		date, ok := entities.ParseDate(row[1])
		if !ok {
			continue
		}
		assignments = append(assignments, entities.NewShiftAssignment(row[0], date, row[2]))
	}
	return assignments, nil
}

// LoadTimeStandards reads the QC completion-time standard table.
func (l *Loader) LoadTimeStandards(filename string) ([]entities.TimeStandard, error) {
	header := []string{"ten_chi_tiet", "ma_cv", "Thoi_Gian"}
	rows, err := l.readTable(filename, "time standards", header)
	if err != nil {
		return nil, err
	}

	standards := make([]entities.TimeStandard, 0, len(rows))
	for _, row := range rows {
		standards = append(standards, entities.NewTimeStandard(row[0], row[1], row[2]))
	}
	return standards, nil
}

// LoadProcessTimes reads the machining process-time table (PKY).
func (l *Loader) LoadProcessTimes(filename string) ([]entities.PartProcessTime, error) {
	header := []string{"ten_chi_tiet", "thoi_gian", "tong_so_nc"}
	rows, err := l.readTable(filename, "process times", header)
	if err != nil {
		return nil, err
	}

	times := make([]entities.PartProcessTime, 0, len(rows))
	for _, row := range rows {
		times = append(times, entities.NewPartProcessTime(row[0], row[1], row[2]))
	}
	return times, nil
}

// LoadDeliveries reads the warehouse hand-off table (giao kho).
func (l *Loader) LoadDeliveries(filename string) ([]entities.DeliveryLine, error) {
	header := []string{"ten_chi_tiet", "sl_giao", "ngay_giao"}
	rows, err := l.readTable(filename, "deliveries", header)
	if err != nil {
		return nil, err
	}

	lines := make([]entities.DeliveryLine, 0, len(rows))
	for _, row := range rows {
		date, ok := entities.ParseDate(row[2])
		if !ok {
			continue
		}
		lines = append(lines, entities.NewDeliveryLine(row[0], row[1], date))
	}
	return lines, nil
}

// readTable opens a CSV export, validates the header and returns the data
// rows that have the expected column count.
func (l *Loader) readTable(filename, table string, expectedHeader []string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", table, filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", table, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s CSV must have a header row", table)
	}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("%s CSV header mismatch. Expected: %v, Got: %v",
			table, expectedHeader, records[0])
	}

	var rows [][]string
	for _, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			continue
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func validateHeader(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.TrimSpace(header[i]) != col {
			return false
		}
	}
	return true
}
