package collector

import (
	"context"
	"fmt"

	gopsnet "github.com/shirou/gopsutil/v3/net"
)

// PsutilCounters reads device counters through gopsutil
type PsutilCounters struct{}

// Interface finds the named interface in the per-NIC counters
func (PsutilCounters) Interface(ctx context.Context, name string) (IOPair, error) {
	stats, err := gopsnet.IOCountersWithContext(ctx, true)
	if err != nil {
		return IOPair{}, readErr("net counters", err)
	}
	for _, s := range stats {
		if s.Name == name {
			return IOPair{In: s.BytesRecv, Out: s.BytesSent, Unit: 1}, nil
		}
	}
	return IOPair{}, readErr("net counters", fmt.Errorf("interface %q not found", name))
}
