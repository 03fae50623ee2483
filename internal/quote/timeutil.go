package quote

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	minutesPerDay = 24 * 60
	dateLayout    = "2006-01-02"
)

// HoursBetween returns the number of hours between two "HH:MM" clock times,
// rounded to two decimals (half-up). A "--" placeholder in either component
// is read as "00". If an end earlier than the start is given, the window is
// assumed to wrap past midnight and a full day is added. Unparseable hours
// yield 0.
func HoursBetween(start, end string) float64 {
	startMin, ok := clockToMinutes(start)
	if !ok {
		return 0
	}
	endMin, ok := clockToMinutes(end)
	if !ok {
		return 0
	}

	diff := endMin - startMin
	if diff < 0 {
		diff += minutesPerDay
	}

	hours := decimal.NewFromInt(int64(diff)).Div(decimal.NewFromInt(60))
	f, _ := hours.Round(2).Float64()
	return f
}

// DaysBetween returns the inclusive day count between two "2006-01-02"
// dates: a same-day range counts as 1 and any partial day rounds up before
// the +1. The absolute difference is used, so the result is symmetric in
// argument order. A missing or unparseable date yields 1.
func DaysBetween(start, end string) int {
	if start == "" || end == "" {
		return 1
	}
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return 1
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return 1
	}

	days := math.Abs(endDate.Sub(startDate).Hours() / 24)
	return int(math.Ceil(days)) + 1
}

// EndTimeFromStart adds a duration to an "HH:MM" start time, wrapping modulo
// 24 hours. An empty or unparseable start yields an empty result.
func EndTimeFromStart(start string, durationMinutes int) string {
	if start == "" {
		return ""
	}
	startMin, ok := clockToMinutes(start)
	if !ok {
		return ""
	}

	total := (startMin + durationMinutes) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// clockToMinutes parses an "HH:MM" string into minutes since midnight.
// A "--" placeholder in the hour or minute position is treated as "00".
// Returns false when the hour component is not a number.
func clockToMinutes(clock string) (int, bool) {
	parts := strings.SplitN(clock, ":", 2)

	hourPart := parts[0]
	minutePart := "00"
	if len(parts) == 2 {
		minutePart = parts[1]
	}
	if hourPart == "--" {
		hourPart = "00"
	}
	if minutePart == "--" {
		minutePart = "00"
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil {
		minute = 0
	}

	return hour*60 + minute, true
}
