package collector

import (
	"context"
	"path/filepath"
)

// SectorSize is the unit of the sector counters in /sys/block/*/stat
const SectorSize = 512

// Field positions in /sys/block/<dev>/stat
const (
	statReadSectors  = 2
	statWriteSectors = 6
)

// SysfsCounters reads counters straight from sysfs text files
type SysfsCounters struct {
	Root string
}

// Interface reads <root>/class/net/<name>/statistics/{rx,tx}_bytes
func (s SysfsCounters) Interface(_ context.Context, name string) (IOPair, error) {
	dir := filepath.Join(s.Root, "class", "net", name, "statistics")

	rx, err := readInteger(filepath.Join(dir, "rx_bytes"))
	if err != nil {
		return IOPair{}, err
	}
	tx, err := readInteger(filepath.Join(dir, "tx_bytes"))
	if err != nil {
		return IOPair{}, err
	}
	return IOPair{In: rx, Out: tx, Unit: 1}, nil
}

// BlockDevice reads sectors read and written from <root>/block/<name>/stat
func (s SysfsCounters) BlockDevice(_ context.Context, name string) (IOPair, error) {
	path := filepath.Join(s.Root, "block", name, "stat")

	fields, err := readFields(path)
	if err != nil {
		return IOPair{}, err
	}
	r, err := parseField(path, fields, statReadSectors)
	if err != nil {
		return IOPair{}, err
	}
	w, err := parseField(path, fields, statWriteSectors)
	if err != nil {
		return IOPair{}, err
	}
	return IOPair{In: r, Out: w, Unit: SectorSize}, nil
}
