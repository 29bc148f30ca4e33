package collector

import (
	"context"
	"errors"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

// DefaultPingTimeout keeps a ping inside the one-second tick
const DefaultPingTimeout = 500 * time.Millisecond

// ICMPPinger sends a single echo request per call
type ICMPPinger struct {
	Timeout    time.Duration
	Privileged bool
}

// RTT returns the round-trip time of one echo to host
func (p ICMPPinger) RTT(ctx context.Context, host string) (time.Duration, error) {
	pinger, err := probing.NewPinger(host)
	if err != nil {
		return 0, readErr("ping "+host, err)
	}

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultPingTimeout
	}
	pinger.Count = 1
	pinger.Timeout = timeout
	pinger.SetPrivileged(p.Privileged)

	if err := pinger.RunWithContext(ctx); err != nil {
		return 0, readErr("ping "+host, err)
	}

	stats := pinger.Statistics()
	if stats.PacketsRecv == 0 {
		return 0, readErr("ping "+host, errors.New("no reply"))
	}
	return stats.AvgRtt, nil
}
