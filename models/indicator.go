package models

import "fmt"

// Kind identifies what an indicator measures
type Kind string

const (
	KindLoad              Kind = "load"
	KindCPUUsage          Kind = "cpu-usage"
	KindCPUTemperature    Kind = "cpu-temperature"
	KindMemoryUsage       Kind = "memory-usage"
	KindNetworkThroughput Kind = "network-throughput"
	KindDiskThroughput    Kind = "disk-throughput"
	KindSwapUsage         Kind = "swap-usage"
	KindDiskUsage         Kind = "disk-usage"
	KindContainers        Kind = "containers"
	KindPing              Kind = "ping"
)

// kindAliases maps alternative config keys to their kind
var kindAliases = map[string]Kind{
	"cpu-max-temperature": KindCPUTemperature,
}

var allKinds = []Kind{
	KindLoad,
	KindCPUUsage,
	KindCPUTemperature,
	KindMemoryUsage,
	KindNetworkThroughput,
	KindDiskThroughput,
	KindSwapUsage,
	KindDiskUsage,
	KindContainers,
	KindPing,
}

// ParseKind resolves a config key to a Kind
func ParseKind(s string) (Kind, error) {
	if k, ok := kindAliases[s]; ok {
		return k, nil
	}
	for _, k := range allKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown indicator kind %q", s)
}

// IsRate reports whether the kind displays a counter delta
func (k Kind) IsRate() bool {
	return k == KindNetworkThroughput || k == KindDiskThroughput
}

// Band is the urgency range a value is mapped into
type Band struct {
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
}

// Validate checks Low < High
func (b Band) Validate() error {
	if !(b.Low < b.High) {
		return fmt.Errorf("band low (%g) must be below high (%g)", b.Low, b.High)
	}
	return nil
}

// Counter source names
const (
	SourceSysfs  = "sysfs"
	SourcePsutil = "psutil"
)

// IndicatorSpec is the configured, immutable part of an indicator
type IndicatorSpec struct {
	Kind      Kind
	Interface string // network-throughput
	Device    string // disk-throughput
	Label     string // disk-throughput, disk-usage
	Sensor    string // cpu-temperature sensor group
	Path      string // disk-usage mount point
	Host      string // ping target
	Source    string // sysfs or psutil, rate kinds only
	Band      *Band
}

// Name is a short identifier used in logs and the check command
func (s IndicatorSpec) Name() string {
	switch s.Kind {
	case KindNetworkThroughput:
		return string(s.Kind) + ":" + s.Interface
	case KindDiskThroughput:
		return string(s.Kind) + ":" + s.Device
	case KindDiskUsage:
		return string(s.Kind) + ":" + s.Path
	case KindPing:
		return string(s.Kind) + ":" + s.Host
	case KindCPUTemperature:
		return string(s.Kind) + ":" + s.Sensor
	default:
		return string(s.Kind)
	}
}
