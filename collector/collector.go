package collector

import (
	"io"
)

// NewSources wires the real metric sources. sysfsRoot is normally /sys.
func NewSources(sysfsRoot string) (Sources, io.Closer) {
	docker := &DockerContainers{}
	return Sources{
		System:     PsutilSystem{},
		Sysfs:      SysfsCounters{Root: sysfsRoot},
		Psutil:     PsutilCounters{},
		Containers: docker,
		Pinger:     ICMPPinger{Timeout: DefaultPingTimeout},
	}, docker
}
