package collector

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

// PsutilSystem reads host metrics through gopsutil
type PsutilSystem struct{}

// LoadAvg returns the 1-minute load average
func (PsutilSystem) LoadAvg(ctx context.Context) (float64, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return 0, readErr("load average", err)
	}
	return avg.Load1, nil
}

// CPUPercent returns overall utilisation since the previous call
func (PsutilSystem) CPUPercent(ctx context.Context) (float64, error) {
	percent, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return 0, readErr("cpu percent", err)
	}
	if len(percent) == 0 {
		return 0, readErr("cpu percent", errors.New("no value"))
	}
	return percent[0], nil
}

// MemoryPercent returns used RAM in percent
func (PsutilSystem) MemoryPercent(ctx context.Context) (float64, error) {
	v, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, readErr("virtual memory", err)
	}
	return v.UsedPercent, nil
}

// SwapPercent returns used swap in percent
func (PsutilSystem) SwapPercent(ctx context.Context) (float64, error) {
	s, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return 0, readErr("swap memory", err)
	}
	return s.UsedPercent, nil
}

// DiskPercent returns used space of the filesystem holding path
func (PsutilSystem) DiskPercent(ctx context.Context, path string) (float64, error) {
	u, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return 0, readErr("disk usage "+path, err)
	}
	return u.UsedPercent, nil
}

// Temperatures returns every sensor gopsutil can see
func (PsutilSystem) Temperatures(ctx context.Context) ([]Temperature, error) {
	stats, err := host.SensorsTemperaturesWithContext(ctx)
	// gopsutil reports partial results together with warnings
	if len(stats) == 0 {
		if err == nil {
			err = errors.New("no sensors")
		}
		return nil, readErr("temperatures", err)
	}

	temps := make([]Temperature, 0, len(stats))
	for _, s := range stats {
		temps = append(temps, Temperature{Key: s.SensorKey, Celsius: s.Temperature})
	}
	return temps, nil
}

// MaxTemperature returns the hottest sensor of a group, e.g. every
// "coretemp_*" core for the group "coretemp"
func MaxTemperature(temps []Temperature, group string) (float64, error) {
	found := false
	hottest := 0.0
	for _, t := range temps {
		if t.Key != group && !strings.HasPrefix(t.Key, group+"_") {
			continue
		}
		if !found || t.Celsius > hottest {
			hottest = t.Celsius
		}
		found = true
	}
	if !found {
		return 0, readErr("temperatures", fmt.Errorf("no sensor in group %q", group))
	}
	return hottest, nil
}
