// Package schedule turns total course hours and a weekly pattern into the
// concrete class dates of a course.
package schedule

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"course-planner/internal/domain"
)

// DateLayout is the wire format of every schedule date.
const DateLayout = "2006-01-02"

// maxScanDays bounds the calendar walk in ScheduledDates.
const maxScanDays = 366 * 5

var (
	ErrInvalidHours  = errors.New("schedule: hours must be positive")
	ErrNoWeekdays    = errors.New("schedule: at least one weekday is required")
	ErrInvalidDate   = errors.New("schedule: invalid start date")
	ErrInvalidPeriod = errors.New("schedule: end time must be after start time")
)

// TotalDays is the number of class days needed to cover totalHours at
// hoursPerDay, rounded up.
func TotalDays(totalHours, hoursPerDay float64) (int, error) {
	if totalHours <= 0 || hoursPerDay <= 0 {
		return 0, ErrInvalidHours
	}
	return int(math.Ceil(totalHours / hoursPerDay)), nil
}

// ScheduledDates returns the first n dates on or after start falling on one
// of weekdays, in calendar order.
func ScheduledDates(start time.Time, weekdays []time.Weekday, n int) ([]time.Time, error) {
	if n <= 0 {
		return nil, nil
	}
	var allowed [7]bool
	selected := false
	for _, wd := range weekdays {
		if wd < time.Sunday || wd > time.Saturday {
			return nil, fmt.Errorf("schedule: invalid weekday %d", wd)
		}
		allowed[wd] = true
		selected = true
	}
	if !selected {
		return nil, ErrNoWeekdays
	}

	dates := make([]time.Time, 0, n)
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	for i := 0; len(dates) < n && i < maxScanDays; i++ {
		if allowed[day.Weekday()] {
			dates = append(dates, day)
		}
		day = day.AddDate(0, 0, 1)
	}
	return dates, nil
}

// timestampLayouts are also accepted by FormatDate. The calendar date is
// taken as written, without converting between zones.
var timestampLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// FormatDate renders a date or timestamp as "YYYY / MM / DD". Unparseable
// input is returned unchanged.
func FormatDate(date string) string {
	s := strings.TrimSpace(date)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006 / 01 / 02")
		}
	}
	return date
}

// Request is the input of Build.
type Request struct {
	TotalHours  float64
	HoursPerDay float64
	StartDate   string
	Weekdays    []time.Weekday
	StartTime   string
	EndTime     string
}

// Build computes the full schedule for a course.
func Build(req Request) (domain.Schedule, error) {
	days, err := TotalDays(req.TotalHours, req.HoursPerDay)
	if err != nil {
		return domain.Schedule{}, err
	}
	start, err := time.Parse(DateLayout, req.StartDate)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("%w: %q", ErrInvalidDate, req.StartDate)
	}
	if req.StartTime != "" && req.EndTime != "" {
		from, errFrom := time.Parse("15:04", req.StartTime)
		to, errTo := time.Parse("15:04", req.EndTime)
		if errFrom != nil || errTo != nil || !to.After(from) {
			return domain.Schedule{}, ErrInvalidPeriod
		}
	}

	dates, err := ScheduledDates(start, req.Weekdays, days)
	if err != nil {
		return domain.Schedule{}, err
	}
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(DateLayout)
	}
	return domain.Schedule{
		StartDate:      req.StartDate,
		ScheduledDates: out,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		HoursPerDay:    req.HoursPerDay,
		TotalHours:     req.TotalHours,
	}, nil
}
