package tui

import "strconv"

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func formatMeters(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
