package collector

import (
	"context"
	"time"

	"system-indicators/models"
)

// Temperature is one sensor reading in degrees Celsius
type Temperature struct {
	Key     string
	Celsius float64
}

// System gives instantaneous host readings
type System interface {
	LoadAvg(ctx context.Context) (float64, error)
	CPUPercent(ctx context.Context) (float64, error)
	MemoryPercent(ctx context.Context) (float64, error)
	SwapPercent(ctx context.Context) (float64, error)
	DiskPercent(ctx context.Context, path string) (float64, error)
	Temperatures(ctx context.Context) ([]Temperature, error)
}

// IOPair is a pair of monotonically increasing counters for one device.
// Unit is the number of bytes one increment stands for.
type IOPair struct {
	In, Out uint64
	Unit    uint64
}

// Counters gives cumulative per-device counters
type Counters interface {
	// Interface returns received/transmitted bytes
	Interface(ctx context.Context, name string) (IOPair, error)
	// BlockDevice returns read/written counters
	BlockDevice(ctx context.Context, name string) (IOPair, error)
}

// Containers counts running containers
type Containers interface {
	Running(ctx context.Context) (int, error)
}

// Pinger measures round-trip time to a host
type Pinger interface {
	RTT(ctx context.Context, host string) (time.Duration, error)
}

// Sources bundles everything an indicator may sample from
type Sources struct {
	System     System
	Sysfs      Counters
	Psutil     Counters
	Containers Containers
	Pinger     Pinger
}

// Counters picks the counter source named in the indicator config
func (s Sources) Counters(source string) Counters {
	if source == models.SourcePsutil {
		return s.Psutil
	}
	return s.Sysfs
}
