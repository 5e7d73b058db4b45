package planner

import "math"

// Progress returns workbook completion as a whole percentage in [0, 100].
// A target of zero or less yields 0; overshooting the target caps at 100.
func Progress(currentPage, targetPage int) int {
	if targetPage <= 0 {
		return 0
	}
	pct := int(math.Round(float64(currentPage) / float64(targetPage) * 100))
	return max(0, min(pct, 100))
}
