// Package util holds small formatting helpers for log and error messages.
package util

import (
	"fmt"
	"time"
)

// FormatBytes formats a size in SI units, the way upload limits are configured:
// 10000000 reads "10.0 MB".
func FormatBytes(bytes int64) string {
	const unit = 1000
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	value := float64(bytes)
	for _, prefix := range "kMGTPE" {
		value /= unit
		if value < unit || prefix == 'E' {
			return fmt.Sprintf("%.1f %cB", value, prefix)
		}
	}

	return fmt.Sprintf("%d B", bytes)
}

// FormatDuration formats an elapsed time for humans: "850ms", "45s", "5m10s", "1h30m".
func FormatDuration(duration time.Duration) string {
	switch {
	case duration < time.Second:
		return duration.Round(time.Millisecond).String()
	case duration < time.Minute:
		return fmt.Sprintf("%ds", int(duration.Round(time.Second).Seconds()))
	case duration < time.Hour:
		duration = duration.Round(time.Second)

		return fmt.Sprintf("%dm%ds", int(duration.Minutes()), int(duration.Seconds())%60)
	default:
		duration = duration.Round(time.Minute)

		return fmt.Sprintf("%dh%dm", int(duration.Hours()), int(duration.Minutes())%60)
	}
}
