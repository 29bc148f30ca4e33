package collector

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// readInteger reads a file holding a single unsigned integer
func readInteger(path string) (uint64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, readErr(path, err)
	}
	v, err := strconv.ParseUint(strings.TrimSpace(string(raw)), 10, 64)
	if err != nil {
		return 0, readErr(path, err)
	}
	return v, nil
}

// readFields reads a file and splits it on whitespace
func readFields(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, readErr(path, err)
	}
	return strings.Fields(string(raw)), nil
}

// parseField parses fields[i] as an unsigned integer
func parseField(path string, fields []string, i int) (uint64, error) {
	if i >= len(fields) {
		return 0, readErr(path, fmt.Errorf("expected at least %d fields, got %d", i+1, len(fields)))
	}
	v, err := strconv.ParseUint(fields[i], 10, 64)
	if err != nil {
		return 0, readErr(path, err)
	}
	return v, nil
}
