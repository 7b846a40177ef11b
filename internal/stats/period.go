package stats

import (
	"time"

	"bmb-admin/internal/util"
)

// Granularity is the time-grouping unit for the orders timeline.
type Granularity string

const (
	GranularityHour  Granularity = "hour"
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
)

// Period keywords accepted by the statistics endpoints.
const (
	PeriodToday     = "today"
	PeriodYesterday = "yesterday"
	PeriodWeek      = "week"
	PeriodMonth     = "month"
	PeriodLastMonth = "last_month"
	PeriodAll       = "all"
)

// Window is a [Start, End] aggregation window with its bucket granularity.
type Window struct {
	Start       time.Time
	End         time.Time
	Granularity Granularity
}

// TimePeriodDates maps a period keyword to its aggregation window, computed
// against the display timezone. Unrecognized keywords fall back to "all".
func TimePeriodDates(period string, now time.Time) Window {
	now = util.ToIST(now)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch period {
	case PeriodToday:
		return Window{Start: midnight, End: now, Granularity: GranularityHour}
	case PeriodYesterday:
		start := midnight.AddDate(0, 0, -1)
		return Window{Start: start, End: midnight.Add(-time.Nanosecond), Granularity: GranularityHour}
	case PeriodWeek:
		return Window{Start: now.AddDate(0, 0, -7), End: now, Granularity: GranularityDay}
	case PeriodMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Window{Start: start, End: now, Granularity: GranularityDay}
	case PeriodLastMonth:
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		start := firstOfMonth.AddDate(0, -1, 0)
		return Window{Start: start, End: firstOfMonth.Add(-time.Nanosecond), Granularity: GranularityDay}
	default: // all time
		return Window{Start: time.Time{}, End: now, Granularity: GranularityMonth}
	}
}

// ValidPeriod reports whether the keyword is one the panel offers.
func ValidPeriod(period string) bool {
	switch period {
	case PeriodToday, PeriodYesterday, PeriodWeek, PeriodMonth, PeriodLastMonth, PeriodAll:
		return true
	}
	return false
}
