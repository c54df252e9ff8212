package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var weekdaysMonFri = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

func TestTotalDays(t *testing.T) {
	tests := []struct {
		total, perDay float64
		want          int
	}{
		{10, 2, 5},
		{10, 3, 4},
		{1, 2, 1},
		{7.5, 2.5, 3},
	}
	for _, tt := range tests {
		got, err := TotalDays(tt.total, tt.perDay)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%v/%v", tt.total, tt.perDay)
	}

	_, err := TotalDays(0, 2)
	assert.ErrorIs(t, err, ErrInvalidHours)
	_, err = TotalDays(10, -1)
	assert.ErrorIs(t, err, ErrInvalidHours)
}

func TestScheduledDates_SkipsWeekends(t *testing.T) {
	// 2026-01-30 is a Friday.
	start := time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC)
	got, err := ScheduledDates(start, weekdaysMonFri, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "2026-01-30", got[0].Format(DateLayout))
	assert.Equal(t, "2026-02-02", got[1].Format(DateLayout))
	assert.Equal(t, "2026-02-03", got[2].Format(DateLayout))
}

func TestScheduledDates_Errors(t *testing.T) {
	start := time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC)

	_, err := ScheduledDates(start, nil, 3)
	assert.ErrorIs(t, err, ErrNoWeekdays)

	_, err = ScheduledDates(start, []time.Weekday{9}, 3)
	assert.Error(t, err)

	got, err := ScheduledDates(start, nil, 0)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-01-26", "2026 / 01 / 26"},
		{"2025-03-01T00:00:00Z", "2025 / 03 / 01"},
		{"2025-03-01T23:30:00+08:00", "2025 / 03 / 01"},
		{"2025-03-01T09:00:00.123Z", "2025 / 03 / 01"},
		{"2025-03-01T09:00:00", "2025 / 03 / 01"},
		{"2025-03-01 09:00:00", "2025 / 03 / 01"},
		{" 2026-01-26 ", "2026 / 01 / 26"},
		{"next monday", "next monday"},
		{"2025-13-01", "2025-13-01"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.in))
		})
	}
}

func TestBuild(t *testing.T) {
	s, err := Build(Request{
		TotalHours:  10,
		HoursPerDay: 2,
		StartDate:   "2026-01-26",
		Weekdays:    weekdaysMonFri,
		StartTime:   "09:10",
		EndTime:     "10:10",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-01-26", "2026-01-27", "2026-01-28", "2026-01-29", "2026-01-30"}, s.ScheduledDates)
	assert.Equal(t, "2026-01-26", s.StartDate)
	assert.Equal(t, 10.0, s.TotalHours)
	assert.Equal(t, 2.0, s.HoursPerDay)
}

func TestBuild_Invalid(t *testing.T) {
	base := Request{TotalHours: 4, HoursPerDay: 2, StartDate: "2026-01-26", Weekdays: weekdaysMonFri}

	r := base
	r.StartDate = "26/01/2026"
	_, err := Build(r)
	assert.ErrorIs(t, err, ErrInvalidDate)

	r = base
	r.StartTime, r.EndTime = "10:00", "09:00"
	_, err = Build(r)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	r = base
	r.HoursPerDay = 0
	_, err = Build(r)
	assert.ErrorIs(t, err, ErrInvalidHours)
}
