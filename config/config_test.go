package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"system-indicators/models"
)

const sampleConfig = `
window:
  geometry: "+10+2"
indicators:
  - load: {red: "2-8"}
  - cpu-usage: {red: "50-100"}
  - cpu-max-temperature: {red: "60-90"}
  - memory-usage:
  - network-throughput: {interface: eth0}
  - disk-throughput: {device: sda, label: D, source: psutil}
  - disk-usage: {band: {low: 80, high: 95}}
`

func TestParseSample(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.Geometry != (Geometry{X: 10, Y: 2}) {
		t.Fatalf("geometry = %+v", cfg.Geometry)
	}
	if len(cfg.Indicators) != 7 {
		t.Fatalf("got %d indicators, want 7", len(cfg.Indicators))
	}

	wantKinds := []models.Kind{
		models.KindLoad,
		models.KindCPUUsage,
		models.KindCPUTemperature,
		models.KindMemoryUsage,
		models.KindNetworkThroughput,
		models.KindDiskThroughput,
		models.KindDiskUsage,
	}
	for i, k := range wantKinds {
		if cfg.Indicators[i].Kind != k {
			t.Fatalf("indicator %d kind = %s, want %s", i, cfg.Indicators[i].Kind, k)
		}
	}

	load := cfg.Indicators[0]
	if load.Band == nil || load.Band.Low != 2 || load.Band.High != 8 {
		t.Fatalf("load band = %+v", load.Band)
	}
	if cfg.Indicators[3].Band != nil {
		t.Fatalf("memory-usage should have no band")
	}
	if got := cfg.Indicators[2].Sensor; got != DefaultSensor {
		t.Fatalf("sensor default = %q", got)
	}
	if got := cfg.Indicators[4].Source; got != models.SourceSysfs {
		t.Fatalf("network source default = %q", got)
	}
	disk := cfg.Indicators[5]
	if disk.Label != "D" || disk.Source != models.SourcePsutil {
		t.Fatalf("disk = %+v", disk)
	}
	usage := cfg.Indicators[6]
	if usage.Path != "/" || usage.Label != "/" || usage.Band.Low != 80 {
		t.Fatalf("disk-usage = %+v", usage)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"no indicators":     "window: {geometry: '+0+0'}\n",
		"unknown kind":      "indicators:\n  - gpu: {}\n",
		"two keys":          "indicators:\n  - {load: {}, cpu-usage: {}}\n",
		"bad red":           "indicators:\n  - load: {red: 'high'}\n",
		"inverted red":      "indicators:\n  - load: {red: '8-2'}\n",
		"red and band":      "indicators:\n  - load: {red: '1-2', band: {low: 1, high: 2}}\n",
		"missing interface": "indicators:\n  - network-throughput: {}\n",
		"missing device":    "indicators:\n  - disk-throughput: {label: D}\n",
		"missing host":      "indicators:\n  - ping: {}\n",
		"bad source":        "indicators:\n  - network-throughput: {interface: eth0, source: proc}\n",
		"source on load":    "indicators:\n  - load: {source: sysfs}\n",
		"bad geometry":      "window: {geometry: 'left'}\nindicators:\n  - load:\n",
		"not yaml":          "indicators: [",
	}

	for name, data := range cases {
		if _, err := Parse([]byte(data)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadWrapsConfigError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("indicators:\n  - load:\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path != path {
		t.Fatalf("Path = %q, want %q", cfg.Path, path)
	}
}

func TestParseGeometry(t *testing.T) {
	cases := []struct {
		in   string
		want Geometry
	}{
		{"", Geometry{}},
		{"+0+0", Geometry{}},
		{"300x20", Geometry{Width: 300, Height: 20}},
		{"80x1+5+3", Geometry{Width: 80, Height: 1, X: 5, Y: 3}},
	}

	for _, tc := range cases {
		got, err := ParseGeometry(tc.in)
		if err != nil {
			t.Fatalf("ParseGeometry(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseGeometry(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"x", "10x", "+1", "-1-1", "10x10+1"} {
		if _, err := ParseGeometry(bad); err == nil {
			t.Fatalf("ParseGeometry(%q): expected error", bad)
		}
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SYSIND_TEST_VALUE", "x")
	if got := getEnv("SYSIND_TEST_VALUE", "y"); got != "x" {
		t.Fatalf("getEnv = %q", got)
	}
	if got := getEnv("SYSIND_TEST_UNSET", "y"); got != "y" {
		t.Fatalf("getEnv fallback = %q", got)
	}
}
