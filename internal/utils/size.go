package utils

import (
	"fmt"

	"github.com/docker/go-units"
)

// HumanSize formats a byte count with binary units ("64KiB").
func HumanSize(n int) string {
	return units.BytesSize(float64(n))
}

// Ratio formats stored/raw as a percentage, or "-" when raw is zero.
func Ratio(stored, raw int) string {
	if raw == 0 {
		return "-"
	}
	return fmt.Sprintf("%.0f%%", float64(stored)*100/float64(raw))
}
