package collector

import (
	"errors"
	"testing"
)

func TestMaxTemperature(t *testing.T) {
	temps := []Temperature{
		{Key: "acpitz", Celsius: 99},
		{Key: "coretemp_package_id_0", Celsius: 52},
		{Key: "coretemp_core_0", Celsius: 48},
		{Key: "coretemp_core_1", Celsius: 61.5},
		{Key: "coretempx", Celsius: 120},
	}

	got, err := MaxTemperature(temps, "coretemp")
	if err != nil {
		t.Fatalf("MaxTemperature: %v", err)
	}
	if got != 61.5 {
		t.Fatalf("MaxTemperature = %v, want 61.5", got)
	}

	if got, _ := MaxTemperature(temps, "acpitz"); got != 99 {
		t.Fatalf("exact key match = %v, want 99", got)
	}
}

func TestMaxTemperatureNoGroup(t *testing.T) {
	_, err := MaxTemperature([]Temperature{{Key: "k10temp_tctl", Celsius: 40}}, "coretemp")
	var re *ReadError
	if !errors.As(err, &re) {
		t.Fatalf("expected ReadError, got %v", err)
	}
}

func TestMaxTemperatureBelowZero(t *testing.T) {
	got, err := MaxTemperature([]Temperature{{Key: "probe_a", Celsius: -12}, {Key: "probe_b", Celsius: -3}}, "probe")
	if err != nil {
		t.Fatal(err)
	}
	if got != -3 {
		t.Fatalf("MaxTemperature = %v, want -3", got)
	}
}
