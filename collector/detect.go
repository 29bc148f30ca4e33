package collector

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Capabilities lists which optional sources exist on this host
type Capabilities struct {
	HasNetSysfs     bool
	HasBlockSysfs   bool
	HasHwmon        bool
	HasDockerSocket bool
}

// DetectCapabilities probes the host once at startup and logs the result.
// Missing sources are not errors: indicators using them just never update.
func DetectCapabilities(sysfsRoot string) Capabilities {
	caps := Capabilities{
		HasNetSysfs:     fileExists(filepath.Join(sysfsRoot, "class", "net")),
		HasBlockSysfs:   fileExists(filepath.Join(sysfsRoot, "block")),
		HasHwmon:        fileExists(filepath.Join(sysfsRoot, "class", "hwmon")),
		HasDockerSocket: detectDocker(),
	}

	logCap("net sysfs", caps.HasNetSysfs, "network-throughput")
	logCap("block sysfs", caps.HasBlockSysfs, "disk-throughput")
	logCap("hwmon", caps.HasHwmon, "cpu-temperature")
	logCap("docker", caps.HasDockerSocket, "containers")
	return caps
}

func logCap(name string, available bool, usedBy string) {
	status := "unavailable"
	if available {
		status = "enabled"
	}
	slog.Info("Capability", "name", name, "status", status, "used_by", usedBy)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// detectDocker honours DOCKER_HOST for unix sockets and assumes remote
// hosts are reachable
func detectDocker() bool {
	if host := os.Getenv("DOCKER_HOST"); host != "" {
		if path, ok := strings.CutPrefix(host, "unix://"); ok {
			return fileExists(path)
		}
		return true
	}
	return fileExists("/var/run/docker.sock")
}
