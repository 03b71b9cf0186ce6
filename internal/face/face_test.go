package face

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Rillus/Calendar-sub001/internal/config"
	"github.com/Rillus/Calendar-sub001/pkg/dateutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func testConfig() *config.Config {
	return &config.Config{
		Ring: config.RingConfig{
			CenterX:           200,
			CenterY:           200,
			Radius:            200,
			RotationDegrees:   45,
			Segments:          12,
			FullThresholdDays: 31,
			FullRadius:        1.0,
			NotchedRadius:     0.95,
			LargeArcMode:      "legacy",
		},
		Month: config.MonthViewConfig{
			WeekStartsOn: 1,
			Locale:       "en-GB",
			Today:        "2026-01-20",
		},
	}
}

func TestFace_Ring(t *testing.T) {
	f := NewFace(testConfig(), zaptest.NewLogger(t))

	segments, err := f.Ring(2024)
	if err != nil {
		t.Fatalf("Ring() error = %v", err)
	}
	if len(segments) != 12 {
		t.Fatalf("Ring() returned %d segments, want 12", len(segments))
	}

	tests := []struct {
		index     int
		label     string
		wantRatio float64
	}{
		{0, "Jan", 1.0},
		{1, "Feb", 0.95},
		{3, "Apr", 0.95},
		{7, "Aug", 1.0},
	}
	for _, tt := range tests {
		s := segments[tt.index]
		if s.Label != tt.label || s.OuterRadiusRatio != tt.wantRatio {
			t.Errorf("segment %d = (%q, %v), want (%q, %v)", tt.index, s.Label, s.OuterRadiusRatio, tt.label, tt.wantRatio)
		}
	}
	if segments[1].Days != 29 {
		t.Errorf("February 2024 days = %d, want 29", segments[1].Days)
	}
}

func TestFace_RingExplicitMonths(t *testing.T) {
	cfg := testConfig()
	cfg.Ring.Segments = 4
	cfg.Ring.Months = []config.RingMonthConfig{
		{Label: "Q1", Days: 31, Colour: []int{1, 2, 3}},
		{Label: "Q2", Days: 30},
		{Label: "Q3", Days: 31},
		{Label: "Q4", Days: 28},
	}
	f := NewFace(cfg, zap.NewNop())

	segments, err := f.Ring(2026)
	if err != nil {
		t.Fatalf("Ring() error = %v", err)
	}
	if len(segments) != 4 {
		t.Fatalf("Ring() returned %d segments, want 4", len(segments))
	}
	if segments[0].Colour.B != 3 || segments[0].OuterRadiusRatio != 1.0 {
		t.Errorf("Q1 segment = %+v", segments[0])
	}
	if segments[3].OuterRadiusRatio != 0.95 {
		t.Errorf("Q4 ratio = %v, want notched", segments[3].OuterRadiusRatio)
	}
	if math.Abs(segments[0].SizeDegrees-90) > 1e-9 {
		t.Errorf("Q1 size = %v, want 90", segments[0].SizeDegrees)
	}
}

func TestFace_Month(t *testing.T) {
	f := NewFace(testConfig(), zaptest.NewLogger(t))

	model, err := f.Month(time.Date(2026, 1, 15, 0, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("Month() error = %v", err)
	}
	if model.MonthLabel != "January 2026" {
		t.Errorf("MonthLabel = %q, want January 2026", model.MonthLabel)
	}
	if first := model.Weeks[0][0]; first.ISODate != "2025-12-29" || first.InMonth {
		t.Errorf("first cell = %+v, want out-of-month 2025-12-29", first)
	}
	for _, c := range model.Cells() {
		if c.IsToday != (c.ISODate == "2026-01-20") {
			t.Errorf("cell %s IsToday = %v", c.ISODate, c.IsToday)
		}
	}

	if _, err := f.Month(time.Time{}); !errors.Is(err, dateutil.ErrInvalidDate) {
		t.Errorf("Month(zero) error = %v, want ErrInvalidDate", err)
	}
}

func TestNewFace_LogsLocaleFallback(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	cfg := testConfig()
	cfg.Month.Locale = "ja-JP"

	f := NewFace(cfg, zap.New(core))

	if !f.Locale().Fallback {
		t.Error("Locale().Fallback = false, want true")
	}
	if logs.FilterMessage("Locale not supported, falling back").Len() != 1 {
		t.Errorf("fallback warning not logged: %v", logs.All())
	}

	model, err := f.Month(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Month() error = %v", err)
	}
	if model.MonthLabel != "January 2026" {
		t.Errorf("fallback MonthLabel = %q, want January 2026", model.MonthLabel)
	}
}
