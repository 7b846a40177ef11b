package stats

import (
	"testing"
	"time"

	"bmb-admin/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimePeriodDatesStartNeverAfterEnd(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

	for _, period := range []string{
		PeriodToday, PeriodYesterday, PeriodWeek, PeriodMonth, PeriodLastMonth, PeriodAll,
	} {
		w := TimePeriodDates(period, now)
		assert.False(t, w.Start.After(w.End), "period %q: start after end", period)
	}
}

func TestTimePeriodDatesToday(t *testing.T) {
	// 2025-03-15 10:30 UTC = 16:00 IST.
	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	w := TimePeriodDates(PeriodToday, now)

	assert.Equal(t, GranularityHour, w.Granularity)
	assert.Equal(t, 0, w.Start.Hour())
	assert.Equal(t, 0, w.Start.Minute())
	assert.Equal(t, 15, w.Start.Day())
	assert.Equal(t, time.March, w.Start.Month())
	assert.True(t, w.End.Equal(util.ToIST(now)))
}

func TestTimePeriodDatesWeek(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	w := TimePeriodDates(PeriodWeek, now)

	assert.Equal(t, GranularityDay, w.Granularity)
	assert.Equal(t, 7*24*time.Hour, w.End.Sub(w.Start))
}

func TestTimePeriodDatesMonth(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	w := TimePeriodDates(PeriodMonth, now)

	assert.Equal(t, GranularityDay, w.Granularity)
	assert.Equal(t, 1, w.Start.Day())
	assert.Equal(t, time.March, w.Start.Month())
	assert.Equal(t, 0, w.Start.Hour())
}

func TestTimePeriodDatesLastMonth(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	w := TimePeriodDates(PeriodLastMonth, now)

	require.Equal(t, time.February, w.Start.Month())
	assert.Equal(t, 1, w.Start.Day())
	assert.Equal(t, time.February, w.End.Month())
	assert.Equal(t, 28, w.End.Day())
}

func TestTimePeriodDatesAll(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	w := TimePeriodDates(PeriodAll, now)

	assert.Equal(t, GranularityMonth, w.Granularity)
	assert.True(t, w.Start.IsZero())
}

func TestTimePeriodDatesUnknownFallsBackToAll(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	w := TimePeriodDates("fortnight", now)

	assert.Equal(t, GranularityMonth, w.Granularity)
	assert.True(t, w.Start.IsZero())
}

func TestValidPeriod(t *testing.T) {
	assert.True(t, ValidPeriod("today"))
	assert.True(t, ValidPeriod("all"))
	assert.False(t, ValidPeriod("fortnight"))
	assert.False(t, ValidPeriod(""))
}
