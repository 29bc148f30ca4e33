package collector

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"
)

// BlockDevice returns bytes read and written; gopsutil already applies the
// sector size
func (PsutilCounters) BlockDevice(ctx context.Context, name string) (IOPair, error) {
	stats, err := disk.IOCountersWithContext(ctx, name)
	if err != nil {
		return IOPair{}, readErr("disk counters", err)
	}
	s, ok := stats[name]
	if !ok {
		return IOPair{}, readErr("disk counters", fmt.Errorf("device %q not found", name))
	}
	return IOPair{In: s.ReadBytes, Out: s.WriteBytes, Unit: 1}, nil
}
