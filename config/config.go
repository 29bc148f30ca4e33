package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"system-indicators/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath      = "config.yml"
	DefaultSensor    = "coretemp"
	DefaultSysfsRoot = "/sys"
	DefaultDiskPath  = "/"
)

// ConfigError is returned for any problem with the configuration file.
// It is fatal: nothing is displayed until the file is fixed.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Config is the parsed configuration file
type Config struct {
	Path       string
	Geometry   Geometry
	Indicators []models.IndicatorSpec
}

// Env holds settings taken from the environment (and .env)
type Env struct {
	ConfigPath string
	LogFile    string
	LogLevel   string
	SysfsRoot  string
}

// LoadEnv reads .env if present, then the process environment
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Ignoring unreadable .env", "err", err)
	}

	return Env{
		ConfigPath: getEnv("SYSIND_CONFIG", DefaultPath),
		LogFile:    getEnv("SYSIND_LOG_FILE", filepath.Join(os.TempDir(), "system-indicators.log")),
		LogLevel:   getEnv("SYSIND_LOG_LEVEL", "info"),
		SysfsRoot:  getEnv("SYSIND_SYSFS_ROOT", DefaultSysfsRoot),
	}
}

// getEnv returns the variable or a fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

type rawConfig struct {
	Window struct {
		Geometry string `yaml:"geometry"`
	} `yaml:"window"`
	Indicators []map[string]rawParams `yaml:"indicators"`
}

type rawParams struct {
	Red       string       `yaml:"red"`
	Band      *models.Band `yaml:"band"`
	Interface string       `yaml:"interface"`
	Device    string       `yaml:"device"`
	Label     string       `yaml:"label"`
	Sensor    string       `yaml:"sensor"`
	Path      string       `yaml:"path"`
	Host      string       `yaml:"host"`
	Source    string       `yaml:"source"`
}

// Load reads and validates the configuration file at path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes and validates configuration bytes
func Parse(data []byte) (*Config, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	geometry, err := ParseGeometry(raw.Window.Geometry)
	if err != nil {
		return nil, err
	}

	if len(raw.Indicators) == 0 {
		return nil, errors.New("no indicators configured")
	}

	cfg := &Config{Geometry: geometry}
	for i, item := range raw.Indicators {
		spec, err := parseIndicator(item)
		if err != nil {
			return nil, fmt.Errorf("indicator %d: %w", i+1, err)
		}
		cfg.Indicators = append(cfg.Indicators, spec)
	}
	return cfg, nil
}

func parseIndicator(item map[string]rawParams) (models.IndicatorSpec, error) {
	if len(item) != 1 {
		return models.IndicatorSpec{}, fmt.Errorf("expected exactly one kind per item, got %d", len(item))
	}

	var key string
	var p rawParams
	for k, v := range item {
		key, p = k, v
	}

	kind, err := models.ParseKind(key)
	if err != nil {
		return models.IndicatorSpec{}, err
	}

	spec := models.IndicatorSpec{
		Kind:      kind,
		Interface: p.Interface,
		Device:    p.Device,
		Label:     p.Label,
		Sensor:    p.Sensor,
		Path:      p.Path,
		Host:      p.Host,
		Source:    p.Source,
	}

	switch {
	case p.Red != "" && p.Band != nil:
		return spec, errors.New("set either red or band, not both")
	case p.Red != "":
		band, err := ParseRed(p.Red)
		if err != nil {
			return spec, err
		}
		spec.Band = &band
	case p.Band != nil:
		if err := p.Band.Validate(); err != nil {
			return spec, err
		}
		band := *p.Band
		spec.Band = &band
	}

	switch kind {
	case models.KindNetworkThroughput:
		if spec.Interface == "" {
			return spec, fmt.Errorf("%s: interface is required", kind)
		}
	case models.KindDiskThroughput:
		if spec.Device == "" {
			return spec, fmt.Errorf("%s: device is required", kind)
		}
		if spec.Label == "" {
			spec.Label = spec.Device
		}
	case models.KindCPUTemperature:
		if spec.Sensor == "" {
			spec.Sensor = DefaultSensor
		}
	case models.KindDiskUsage:
		if spec.Path == "" {
			spec.Path = DefaultDiskPath
		}
		if spec.Label == "" {
			spec.Label = spec.Path
		}
	case models.KindPing:
		if spec.Host == "" {
			return spec, fmt.Errorf("%s: host is required", kind)
		}
	}

	if kind.IsRate() {
		switch spec.Source {
		case "":
			spec.Source = models.SourceSysfs
		case models.SourceSysfs, models.SourcePsutil:
		default:
			return spec, fmt.Errorf("%s: unknown source %q", kind, spec.Source)
		}
	} else if spec.Source != "" {
		return spec, fmt.Errorf("%s: source only applies to throughput indicators", kind)
	}

	return spec, nil
}

// ParseRed parses the "low-high" band syntax, e.g. "50-80"
func ParseRed(s string) (models.Band, error) {
	lowStr, highStr, ok := strings.Cut(s, "-")
	if !ok {
		return models.Band{}, fmt.Errorf("red %q: expected low-high", s)
	}
	low, err := strconv.ParseFloat(strings.TrimSpace(lowStr), 64)
	if err != nil {
		return models.Band{}, fmt.Errorf("red %q: %w", s, err)
	}
	high, err := strconv.ParseFloat(strings.TrimSpace(highStr), 64)
	if err != nil {
		return models.Band{}, fmt.Errorf("red %q: %w", s, err)
	}
	band := models.Band{Low: low, High: high}
	if err := band.Validate(); err != nil {
		return models.Band{}, fmt.Errorf("red %q: %w", s, err)
	}
	return band, nil
}
