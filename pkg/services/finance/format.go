package finance

import (
	"fmt"
	"math"
)

// formatCurrency renders a monetary magnitude with a magnitude-aware suffix:
// $1.2B, $3.4M, $5K, $42.
func formatCurrency(value float64) string {
	abs := math.Abs(value)
	switch {
	case abs >= 1e9:
		return fmt.Sprintf("$%.1fB", value/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("$%.1fM", value/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("$%.0fK", value/1e3)
	default:
		return fmt.Sprintf("$%.0f", value)
	}
}

func formatPercent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

// formatChange renders a delta with an explicit sign. Zero and non-finite
// deltas collapse to the single-space sentinel, which consumers display
// verbatim to distinguish "no comparison basis" from "0.0%". Ratio deltas
// are rendered as absolute percentage points ("+2.3 pts") rather than a
// relative percentage of an already-relative number.
func formatChange(change float64, points bool) string {
	if change == 0 || math.IsInf(change, 0) || math.IsNaN(change) {
		return " "
	}
	prefix := ""
	if change > 0 {
		prefix = "+"
	}
	if points {
		return fmt.Sprintf("%s%.1f pts", prefix, change*100)
	}
	return fmt.Sprintf("%s%.1f%%", prefix, change*100)
}
