package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "under a kilobyte", bytes: 999, expected: "999 B"},
		{name: "fractional kilobyte", bytes: 1500, expected: "1.5 kB"},
		{name: "default upload limit", bytes: 10_000_000, expected: "10.0 MB"},
		{name: "request body limit", bytes: 12_000_000, expected: "12.0 MB"},
		{name: "gigabyte", bytes: 5_000_000_000, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatBytes(tt.bytes))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "sub-second migration", duration: 850*time.Millisecond + 300*time.Microsecond, expected: "850ms"},
		{name: "seconds", duration: 45 * time.Second, expected: "45s"},
		{name: "minutes and seconds", duration: 5*time.Minute + 10*time.Second, expected: "5m10s"},
		{name: "hours and minutes", duration: 90 * time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatDuration(tt.duration))
		})
	}
}
