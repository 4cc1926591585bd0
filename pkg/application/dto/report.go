package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryBucket is one inventory aggregate: summed order quantity and the
// number of surviving rows.
type InventoryBucket struct {
	Total int64 `json:"total"`
	Count int   `json:"count"`
}

// InventoryMetrics holds the four inventory aggregates. RRC/External count
// production-stage orders, the PKT pair counts QC-stage orders; the two
// groups partition on the QC hand-off date.
type InventoryMetrics struct {
	RRC         InventoryBucket `json:"rrc"`
	External    InventoryBucket `json:"external"`
	RRCPKT      InventoryBucket `json:"rrc_pkt"`
	ExternalPKT InventoryBucket `json:"external_pkt"`
}

// ScheduleBucket is one overdue or due-soon aggregate, reporting the
// threshold date it was split on for display and audit.
type ScheduleBucket struct {
	Total     int64     `json:"total"`
	Count     int       `json:"count"`
	Threshold time.Time `json:"threshold"`
}

// DepartmentSchedule holds the overdue/due-soon buckets for one pipeline
// (production or quality control).
//
// RRCActualDueSoon is derived by identity from the other RRC buckets, never
// filtered independently:
//
//	actual_due_soon = predicted_overdue + predicted_due_soon - actual_overdue
type DepartmentSchedule struct {
	RRCOverdue       ScheduleBucket `json:"rrc_overdue"`
	RRCDueSoon       ScheduleBucket `json:"rrc_due_soon"`
	ExternalOverdue  ScheduleBucket `json:"external_overdue"`
	ExternalDueSoon  ScheduleBucket `json:"external_due_soon"`
	RRCActualOverdue ScheduleBucket `json:"rrc_actual_overdue"`
	RRCActualDueSoon ScheduleBucket `json:"rrc_actual_due_soon"`
}

// ScheduleMetrics holds both pipelines' overdue/due-soon metrics.
type ScheduleMetrics struct {
	Production     DepartmentSchedule `json:"production"`
	QualityControl DepartmentSchedule `json:"quality_control"`
}

// ProductionCapacity is the machine-time utilization result for one day.
// Computable=false marks "no observations for this day", which the caller
// must keep distinguishable from a true zero.
type ProductionCapacity struct {
	Computable         bool            `json:"computable"`
	Reason             string          `json:"reason,omitempty"`
	Overall            float64         `json:"cs_overall"`
	Direct             float64         `json:"cs_direct"`
	TwelveHourMachines int             `json:"twelve_hour_machines"` // B
	ObservedMachines   int             `json:"observed_machines"`    // T
	StoppedMachines    int             `json:"stopped_machines"`
	TheoreticalMinutes decimal.Decimal `json:"theoretical_minutes"`
	ProcessingMinutes  decimal.Decimal `json:"processing_minutes"`
}

// QCCapacity is the headcount-time utilization result for one day.
type QCCapacity struct {
	Computable        bool            `json:"computable"`
	Reason            string          `json:"reason,omitempty"`
	Overall           float64         `json:"cs_overall"`
	Direct            float64         `json:"cs_direct"`
	Total12h          int64           `json:"total_12h"`
	Direct12h         int64           `json:"direct_12h"`
	Total8h           int64           `json:"total_8h"`
	Direct8h          int64           `json:"direct_8h"`
	OverallMinutes    decimal.Decimal `json:"overall_minutes"`
	DirectMinutes     decimal.Decimal `json:"direct_minutes"`
	CompletionMinutes decimal.Decimal `json:"completion_minutes"`
}

// MonthlyCapacity is the arithmetic mean of per-day capacity percentages over
// the days of a month that had observations.
type MonthlyCapacity struct {
	Computable bool    `json:"computable"`
	Reason     string  `json:"reason,omitempty"`
	Overall    float64 `json:"cs_overall"`
	Direct     float64 `json:"cs_direct"`
	DaysUsed   int     `json:"days_used"`
}

// DashboardReport is the full metric battery handed to the presentation
// layer.
type DashboardReport struct {
	ID                 uuid.UUID          `json:"id"`
	GeneratedAt        time.Time          `json:"generated_at"`
	Today              time.Time          `json:"today"`
	Inventory          InventoryMetrics   `json:"inventory"`
	Schedule           ScheduleMetrics    `json:"schedule"`
	ProductionCapacity ProductionCapacity `json:"production_capacity"`
	QCCapacity         QCCapacity         `json:"qc_capacity"`
}
