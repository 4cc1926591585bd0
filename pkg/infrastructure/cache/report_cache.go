package cache

import (
	"sync"
	"time"

	"github.com/rrcamj/khsx-metrics/pkg/application/dto"
)

// ReportCache holds computed dashboard reports for a bounded time, keyed by
// reference day. The metric services stay pure; staleness is decided here,
// with an explicit Clear for forced refreshes.
type ReportCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

type entry struct {
	report   dto.DashboardReport
	storedAt time.Time
}

// NewReportCache creates a report cache with the given time-to-live.
func NewReportCache(ttl time.Duration) *ReportCache {
	return &ReportCache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func dayKey(day time.Time) string {
	return day.Format("2006-01-02")
}

// Get returns the cached report for a reference day if it is still fresh.
func (c *ReportCache) Get(day time.Time) (dto.DashboardReport, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[dayKey(day)]
	if !ok || c.now().Sub(e.storedAt) > c.ttl {
		return dto.DashboardReport{}, false
	}
	return e.report, true
}

// Set stores a freshly computed report for a reference day.
func (c *ReportCache) Set(day time.Time, report dto.DashboardReport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[dayKey(day)] = entry{report: report, storedAt: c.now()}
}

// Clear drops every cached report.
func (c *ReportCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}
