package quote_test

import (
	"testing"

	"github.com/bookwell/booking-api/internal/quote"
)

func TestHoursBetween(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected float64
	}{
		{
			name:     "whole hours",
			start:    "10:00",
			end:      "14:00",
			expected: 4.00,
		},
		{
			name:     "half hour",
			start:    "10:00",
			end:      "14:30",
			expected: 4.50,
		},
		{
			name:     "quarter hour rounds to two decimals",
			start:    "09:00",
			end:      "09:20",
			expected: 0.33,
		},
		{
			name:     "same time is zero",
			start:    "12:00",
			end:      "12:00",
			expected: 0.00,
		},
		{
			name:     "overnight wraps past midnight",
			start:    "20:00",
			end:      "02:00",
			expected: 6.00,
		},
		{
			name:     "late overnight shift",
			start:    "22:00",
			end:      "02:00",
			expected: 4.00,
		},
		{
			name:     "placeholder hour reads as midnight",
			start:    "--:00",
			end:      "03:00",
			expected: 3.00,
		},
		{
			name:     "placeholder minute reads as zero",
			start:    "10:--",
			end:      "12:00",
			expected: 2.00,
		},
		{
			name:     "unparseable start yields zero",
			start:    "abc",
			end:      "12:00",
			expected: 0.00,
		},
		{
			name:     "unparseable end yields zero",
			start:    "10:00",
			end:      "noon",
			expected: 0.00,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := quote.HoursBetween(tc.start, tc.end)
			if result != tc.expected {
				t.Errorf("HoursBetween(%q, %q) = %v, want %v", tc.start, tc.end, result, tc.expected)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected int
	}{
		{
			name:     "same day counts as one",
			start:    "2026-03-01",
			end:      "2026-03-01",
			expected: 1,
		},
		{
			name:     "inclusive range",
			start:    "2026-03-01",
			end:      "2026-03-03",
			expected: 3,
		},
		{
			name:     "symmetric in argument order",
			start:    "2026-03-03",
			end:      "2026-03-01",
			expected: 3,
		},
		{
			name:     "across a month boundary",
			start:    "2026-02-27",
			end:      "2026-03-02",
			expected: 4,
		},
		{
			name:     "missing end defaults to one",
			start:    "2026-03-01",
			end:      "",
			expected: 1,
		},
		{
			name:     "missing start defaults to one",
			start:    "",
			end:      "2026-03-01",
			expected: 1,
		},
		{
			name:     "unparseable date defaults to one",
			start:    "not-a-date",
			end:      "2026-03-01",
			expected: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := quote.DaysBetween(tc.start, tc.end)
			if result != tc.expected {
				t.Errorf("DaysBetween(%q, %q) = %d, want %d", tc.start, tc.end, result, tc.expected)
			}
		})
	}
}

func TestEndTimeFromStart(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		duration int
		expected string
	}{
		{
			name:     "adds duration",
			start:    "10:00",
			duration: 45,
			expected: "10:45",
		},
		{
			name:     "crosses the hour",
			start:    "10:30",
			duration: 45,
			expected: "11:15",
		},
		{
			name:     "wraps past midnight",
			start:    "23:30",
			duration: 60,
			expected: "00:30",
		},
		{
			name:     "zero duration keeps the start",
			start:    "08:15",
			duration: 0,
			expected: "08:15",
		},
		{
			name:     "empty start yields empty",
			start:    "",
			duration: 60,
			expected: "",
		},
		{
			name:     "unparseable start yields empty",
			start:    "later",
			duration: 60,
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := quote.EndTimeFromStart(tc.start, tc.duration)
			if result != tc.expected {
				t.Errorf("EndTimeFromStart(%q, %d) = %q, want %q", tc.start, tc.duration, result, tc.expected)
			}
		})
	}
}

// A derived end time must round-trip: start plus the window measured by
// HoursBetween lands back on the derived end.
func TestEndTimeRoundTrip(t *testing.T) {
	starts := []string{"08:00", "13:45", "23:10"}
	durations := []int{30, 45, 90, 480}

	for _, start := range starts {
		for _, d := range durations {
			end := quote.EndTimeFromStart(start, d)
			hours := quote.HoursBetween(start, end)
			want := float64(d) / 60
			if hours != want {
				t.Errorf("HoursBetween(%q, %q) = %v, want %v", start, end, hours, want)
			}
		}
	}
}
