package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var obsDate = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

func TestMachineObservation_ShiftSentinelExclusion(t *testing.T) {
	// dừng = 630 is a scheduled shift boundary, not downtime.
	obs := NewMachineObservation("36", "Sản xuất 1", obsDate,
		"1", "0", "0", "0", "0", "630", "0", "0")

	if !obs.StopMinutes().IsZero() {
		t.Errorf("expected sentinel stop 630 to contribute 0, got %s", obs.StopMinutes())
	}
	if !obs.TotalMinutes().IsZero() {
		t.Errorf("expected total 0 for sentinel-only row, got %s", obs.TotalMinutes())
	}

	for _, sentinel := range []string{"420", "630", "660"} {
		obs := NewMachineObservation("36", "Sản xuất 1", obsDate,
			"1", "0", "0", "0", "0", sentinel, sentinel, "0")
		if !obs.TotalMinutes().IsZero() {
			t.Errorf("sentinel %s: expected 0 total, got %s", sentinel, obs.TotalMinutes())
		}
	}

	// A non-sentinel stop survives.
	obs = NewMachineObservation("36", "Sản xuất 1", obsDate,
		"1", "0", "0", "0", "0", "425", "0", "0")
	if !obs.TotalMinutes().Equal(decimal.NewFromInt(425)) {
		t.Errorf("expected total 425, got %s", obs.TotalMinutes())
	}
}

func TestMachineObservation_QuantityScaling(t *testing.T) {
	// Fixture and processing scale by actual quantity; setup does not.
	obs := NewMachineObservation("12", "Sản xuất 2", obsDate,
		"3", "30", "10", "5", "20", "0", "0", "15")

	// 30 + 10 + 5*3 + 20*3 + 15 = 130
	if !obs.TotalMinutes().Equal(decimal.NewFromInt(130)) {
		t.Errorf("expected total 130, got %s", obs.TotalMinutes())
	}
}

func TestMachineObservation_ZeroQuantityFallsBackToOne(t *testing.T) {
	obs := NewMachineObservation("12", "Sản xuất 2", obsDate,
		"0", "0", "0", "0", "100", "0", "0", "0")

	if !obs.EffectiveQty().Equal(decimal.NewFromInt(1)) {
		t.Errorf("expected effective quantity 1, got %s", obs.EffectiveQty())
	}
	if !obs.TotalMinutes().Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected total 100, got %s", obs.TotalMinutes())
	}
}

func TestMachineObservation_DecimalCommaCells(t *testing.T) {
	obs := NewMachineObservation("7", "Sản xuất 1", obsDate,
		"2", "10,5", "0", "0", "30,25", "0", "0", "0")

	// 10.5 + 30.25*2 = 71
	if !obs.TotalMinutes().Equal(decimal.NewFromInt(71)) {
		t.Errorf("expected total 71, got %s", obs.TotalMinutes())
	}
}
