// Package util holds small formatting helpers shared across layers.
package util

import (
	"math"
	"strconv"
)

var byteUnits = []string{"KB", "MB", "GB", "TB"}

// HumanBytes renders a byte count with a binary unit, truncated to one decimal:
// 5242880 -> "5 MB", 1536 -> "1.5 KB".
func HumanBytes(n int64) string {
	if n < 1024 {
		return strconv.FormatInt(n, 10) + " B"
	}

	value := float64(n) / 1024
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}

	return strconv.FormatFloat(math.Trunc(value*10)/10, 'f', -1, 64) + " " + byteUnits[unit]
}
