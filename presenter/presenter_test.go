package presenter

import (
	"testing"

	"system-indicators/models"
)

func TestHoldCountdown(t *testing.T) {
	var h Hold

	if !h.Observe(true) {
		t.Fatalf("tick 1: expected visible")
	}
	for tick := 2; tick <= 10; tick++ {
		if !h.Observe(false) {
			t.Fatalf("tick %d: expected still visible", tick)
		}
	}
	if h.Observe(false) {
		t.Fatalf("tick 11: expected blank")
	}
	if h.Observe(false) || h.Remaining() != 0 {
		t.Fatalf("countdown should stay at 0, got %d", h.Remaining())
	}
}

func TestHoldRearms(t *testing.T) {
	var h Hold
	h.Observe(true)
	for i := 0; i < 5; i++ {
		h.Observe(false)
	}
	h.Observe(true)
	if h.Remaining() != HoldTicks {
		t.Fatalf("Remaining = %d, want %d", h.Remaining(), HoldTicks)
	}
}

func TestHoldNeverVisible(t *testing.T) {
	var h Hold
	if h.Observe(false) {
		t.Fatalf("expected blank without activity")
	}
}

func TestClamp01(t *testing.T) {
	cases := []struct {
		low, high, v, want float64
	}{
		{50, 80, 40, 0},
		{50, 80, 90, 1},
		{50, 80, 65, 0.5},
		{50, 80, 50, 0},
		{50, 80, 80, 1},
	}
	for _, tc := range cases {
		if got := Clamp01(tc.low, tc.high, tc.v); got != tc.want {
			t.Fatalf("Clamp01(%v, %v, %v) = %v, want %v", tc.low, tc.high, tc.v, got, tc.want)
		}
	}
}

func TestColor(t *testing.T) {
	cases := []struct {
		u    float64
		want string
	}{
		{0, "#000000"},
		{0.5, "#7f0000"},
		{1, "#ff0000"},
	}
	for _, tc := range cases {
		if got := Color(tc.u).Hex(); got != tc.want {
			t.Fatalf("Color(%v) = %s, want %s", tc.u, got, tc.want)
		}
	}
}

func TestUrgencyWithoutBand(t *testing.T) {
	if got := Urgency(nil, 1e9); got != 0 {
		t.Fatalf("Urgency without band = %v, want 0", got)
	}
	band := &models.Band{Low: 90, High: 100}
	if got := Urgency(band, 95); got != 0.5 {
		t.Fatalf("Urgency = %v, want 0.5", got)
	}
}
