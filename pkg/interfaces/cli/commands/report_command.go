package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rrcamj/khsx-metrics/pkg/application/services/capacity"
	"github.com/rrcamj/khsx-metrics/pkg/application/services/inventory"
	"github.com/rrcamj/khsx-metrics/pkg/application/services/report"
	"github.com/rrcamj/khsx-metrics/pkg/application/services/schedule"
	"github.com/rrcamj/khsx-metrics/pkg/domain/entities"
	"github.com/rrcamj/khsx-metrics/pkg/infrastructure/config"
	"github.com/rrcamj/khsx-metrics/pkg/infrastructure/datastore"
	"github.com/rrcamj/khsx-metrics/pkg/infrastructure/repositories/csv"
	"github.com/rrcamj/khsx-metrics/pkg/interfaces/cli/output"
)

// Config holds configuration for the report command.
type Config struct {
	Date    string // reference day, DD/MM/YYYY; empty means the wall-clock day
	Month   string // optional capacity month, MM/YYYY
	Format  string // text or json
	Verbose bool
	Help    bool
}

// ReportCommand loads the CSV snapshots and prints the metric battery.
type ReportCommand struct {
	config  Config
	dataCfg config.DataConfig
	qcCfg   config.QCConfig
}

// NewReportCommand creates a report command.
func NewReportCommand(cfg Config, dataCfg config.DataConfig, qcCfg config.QCConfig) *ReportCommand {
	return &ReportCommand{
		config:  cfg,
		dataCfg: dataCfg,
		qcCfg:   qcCfg,
	}
}

// Execute runs the report command.
func (c *ReportCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	today, err := c.resolveToday()
	if err != nil {
		return err
	}

	if c.config.Verbose {
		fmt.Printf("Loading planning data from %s...\n", c.dataCfg.Dir)
	}
	store := datastore.NewStore()
	if err := store.LoadFromCSV(csv.NewLoader(), c.dataCfg); err != nil {
		return fmt.Errorf("error loading planning data: %w", err)
	}

	productionSvc := capacity.NewProductionService(store.Machines, store.Deliveries, store.Standards)
	qcSvc := capacity.NewQCService(store.Labor, store.Deliveries, store.Standards, c.qcCfg.Department)
	reportSvc := report.NewService(
		store.Orders,
		inventory.NewService(),
		schedule.NewService(),
		productionSvc,
		qcSvc,
	)

	rep, err := reportSvc.Generate(today)
	if err != nil {
		return fmt.Errorf("error generating report: %w", err)
	}

	if c.config.Format == "json" {
		if err := output.WriteJSON(os.Stdout, rep); err != nil {
			return err
		}
	} else {
		if err := output.WriteText(os.Stdout, rep); err != nil {
			return err
		}
	}

	if c.config.Month == "" {
		return nil
	}

	year, month, err := parseMonth(c.config.Month)
	if err != nil {
		return err
	}
	productionMonthly, err := productionSvc.CalculateMonth(year, month)
	if err != nil {
		return fmt.Errorf("error calculating monthly production capacity: %w", err)
	}
	qcMonthly, err := qcSvc.CalculateMonth(year, month)
	if err != nil {
		return fmt.Errorf("error calculating monthly QC capacity: %w", err)
	}
	if err := output.WriteMonthly(os.Stdout, "Monthly production capacity", productionMonthly); err != nil {
		return err
	}
	return output.WriteMonthly(os.Stdout, "Monthly QC capacity", qcMonthly)
}

func (c *ReportCommand) resolveToday() (time.Time, error) {
	if c.config.Date == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	day, ok := entities.ParseDate(c.config.Date)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid -date %q, expected DD/MM/YYYY", c.config.Date)
	}
	return day, nil
}

func parseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse("01/2006", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid -month %q, expected MM/YYYY", s)
	}
	return t.Year(), t.Month(), nil
}

func (c *ReportCommand) showHelp() {
	fmt.Println(`khsx - manufacturing planning metrics

Usage:
  khsx [flags]

Flags:
  -data string    directory with the CSV exports (default "./data")
  -date string    reference day as DD/MM/YYYY (default: today)
  -month string   also print monthly capacity means for MM/YYYY
  -format string  output format: text or json (default "text")
  -verbose        print progress while loading
  -help           show this help

Environment:
  QC_DEPARTMENT_ID  quality-control department id (default "0300_BPKT")
  ORDERS_FILE, OBSERVATIONS_FILE, ... override individual file names`)
}
