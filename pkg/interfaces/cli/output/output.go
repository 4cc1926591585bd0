package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rrcamj/khsx-metrics/pkg/application/dto"
)

const dateFormat = "02/01/2006"

// WriteJSON renders the report as indented JSON.
func WriteJSON(w io.Writer, report dto.DashboardReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// WriteText renders the report as a plain-text summary.
func WriteText(w io.Writer, report dto.DashboardReport) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Planning report for %s\n", report.Today.Format(dateFormat))
	b.WriteString(strings.Repeat("=", 40) + "\n\n")

	b.WriteString("Inventory\n")
	writeInventoryLine(&b, "  RRC (production)", report.Inventory.RRC)
	writeInventoryLine(&b, "  External (production)", report.Inventory.External)
	writeInventoryLine(&b, "  RRC (QC)", report.Inventory.RRCPKT)
	writeInventoryLine(&b, "  External (QC)", report.Inventory.ExternalPKT)
	b.WriteString("\n")

	b.WriteString("Schedule: production\n")
	writeSchedule(&b, report.Schedule.Production)
	b.WriteString("Schedule: quality control\n")
	writeSchedule(&b, report.Schedule.QualityControl)

	b.WriteString("Production capacity\n")
	if !report.ProductionCapacity.Computable {
		fmt.Fprintf(&b, "  not computable: %s\n", report.ProductionCapacity.Reason)
	} else {
		fmt.Fprintf(&b, "  overall %.2f%%  direct %.2f%%  (12h machines %d of %d observed, %d stopped)\n",
			report.ProductionCapacity.Overall,
			report.ProductionCapacity.Direct,
			report.ProductionCapacity.TwelveHourMachines,
			report.ProductionCapacity.ObservedMachines,
			report.ProductionCapacity.StoppedMachines)
	}
	b.WriteString("\n")

	b.WriteString("QC capacity\n")
	if !report.QCCapacity.Computable {
		fmt.Fprintf(&b, "  not computable: %s\n", report.QCCapacity.Reason)
	} else {
		fmt.Fprintf(&b, "  overall %.2f%%  direct %.2f%%  (12h %d/%d, 8h %d/%d direct)\n",
			report.QCCapacity.Overall,
			report.QCCapacity.Direct,
			report.QCCapacity.Direct12h,
			report.QCCapacity.Total12h,
			report.QCCapacity.Direct8h,
			report.QCCapacity.Total8h)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeInventoryLine(b *strings.Builder, label string, bucket dto.InventoryBucket) {
	fmt.Fprintf(b, "%-26s %8d pcs  (%d orders)\n", label, bucket.Total, bucket.Count)
}

func writeSchedule(b *strings.Builder, d dto.DepartmentSchedule) {
	fmt.Fprintf(b, "  RRC overdue %d / due soon %d (by %s)\n",
		d.RRCOverdue.Total, d.RRCDueSoon.Total, d.RRCOverdue.Threshold.Format(dateFormat))
	fmt.Fprintf(b, "  RRC actual overdue %d / actual due soon %d\n",
		d.RRCActualOverdue.Total, d.RRCActualDueSoon.Total)
	fmt.Fprintf(b, "  External overdue %d / due soon %d\n\n",
		d.ExternalOverdue.Total, d.ExternalDueSoon.Total)
}

// WriteMonthly renders a monthly capacity summary.
func WriteMonthly(w io.Writer, label string, m dto.MonthlyCapacity) error {
	if !m.Computable {
		_, err := fmt.Fprintf(w, "%s: not computable: %s\n", label, m.Reason)
		return err
	}
	_, err := fmt.Fprintf(w, "%s: overall %.2f%%  direct %.2f%%  (mean over %d days)\n",
		label, m.Overall, m.Direct, m.DaysUsed)
	return err
}
