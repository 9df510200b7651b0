package ui

import "fmt"

// HumanSize renders a byte count the way the previews and summary expect:
// plain bytes under 1 KiB, otherwise KB or MB with one decimal.
func HumanSize(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%dB", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1fKB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1fMB", float64(n)/(1024*1024))
	}
}
