package presenter

import (
	"fmt"
	"math"
)

// SizeOf formats a byte count with a k/M/G/T suffix.
// Below 1024 there is no suffix; kilobytes are whole numbers; larger units
// get one decimal.
func SizeOf(num float64) string {
	if math.Abs(num) < 1024 {
		return fmt.Sprintf("%.0f", num)
	}
	num /= 1024
	if math.Abs(num) < 1024 {
		return fmt.Sprintf("%.0fk", num)
	}

	for _, unit := range []string{"k", "M", "G"} {
		if math.Abs(num) < 1024 {
			return fmt.Sprintf("%3.1f%s", num, unit)
		}
		num /= 1024
	}
	return fmt.Sprintf("%.1fT", num)
}
