package attendance

import (
	"math"
	"sort"
	"time"

	attendanceerrors "go-workforce/internal/attendance/errors"
)

type DateRange struct {
	Start time.Time
	End   time.Time
}

// AttendanceSummary is derived, never persisted. Absent counts both explicit
// ABSENT rows and employees with no record at all, so the headcount comes
// from the directory, not from the record set.
type AttendanceSummary struct {
	Start             time.Time
	End               time.Time
	Present           int
	Absent            int
	Late              int
	TotalEmployees    int
	PresentPercentage float64
	Days              []DaySummary
}

type DaySummary struct {
	Date    time.Time
	Present int
	Absent  int
	Late    int
}

// Summarize partitions records by clock-in date and counts status buckets.
// Pure and idempotent: the same inputs always produce the identical summary,
// day rows sorted by date.
func Summarize(records []AttendanceRecord, dateRange DateRange, totalEmployees int) (AttendanceSummary, error) {
	if dateRange.Start.After(dateRange.End) {
		return AttendanceSummary{}, attendanceerrors.ErrInvalidDateRange
	}
	if totalEmployees <= 0 {
		return AttendanceSummary{}, attendanceerrors.ErrInvalidHeadcount
	}

	summary := AttendanceSummary{
		Start:          dateRange.Start,
		End:            dateRange.End,
		TotalEmployees: totalEmployees,
	}

	byDay := make(map[time.Time]*DaySummary)
	for _, r := range records {
		day := dateOnly(r.ClockInDate)
		if day.Before(dateOnly(dateRange.Start)) || day.After(dateOnly(dateRange.End)) {
			continue
		}

		ds, ok := byDay[day]
		if !ok {
			ds = &DaySummary{Date: day}
			byDay[day] = ds
		}

		switch r.Status {
		case StatusAccurate, StatusLate, StatusEarly:
			summary.Present++
			ds.Present++
		case StatusAbsent:
			// Counted below via headcount, tracked per day here.
		}
		if r.ClockInStatus == PunctualityLate {
			summary.Late++
			ds.Late++
		}
	}

	for _, ds := range byDay {
		ds.Absent = totalEmployees - ds.Present
		summary.Days = append(summary.Days, *ds)
	}
	sort.Slice(summary.Days, func(i, j int) bool {
		return summary.Days[i].Date.Before(summary.Days[j].Date)
	})

	summary.Absent = totalEmployees - summary.Present
	if summary.Absent < 0 {
		summary.Absent = 0
	}
	summary.PresentPercentage = roundPercent(float64(summary.Present) / float64(totalEmployees) * 100)

	return summary, nil
}

func roundPercent(v float64) float64 {
	return math.Round(v*10) / 10
}
