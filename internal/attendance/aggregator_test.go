package attendance

import (
	"testing"
	"time"

	attendanceerrors "go-workforce/internal/attendance/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, 6, d, 0, 0, 0, 0, time.UTC)
}

func recordOn(d time.Time, status, inStatus string) AttendanceRecord {
	return AttendanceRecord{
		ID:            uuid.New(),
		EmployeeID:    uuid.New(),
		ClockInDate:   d,
		ClockInStatus: inStatus,
		Status:        status,
	}
}

func TestSummarize(t *testing.T) {
	dateRange := DateRange{Start: day(1), End: day(1)}

	t.Run("counts present late and absent against headcount", func(t *testing.T) {
		var records []AttendanceRecord
		for i := 0; i < 10; i++ {
			records = append(records, recordOn(day(1), StatusAccurate, PunctualityOnTime))
		}
		for i := 0; i < 2; i++ {
			records = append(records, recordOn(day(1), StatusLate, PunctualityLate))
		}
		records = append(records, recordOn(day(1), StatusAbsent, ""))

		summary, err := Summarize(records, dateRange, 15)

		assert.NoError(t, err)
		assert.Equal(t, 12, summary.Present)
		assert.Equal(t, 2, summary.Late)
		assert.Equal(t, 3, summary.Absent)
		assert.Equal(t, 15, summary.TotalEmployees)
		assert.Equal(t, 80.0, summary.PresentPercentage)
	})

	t.Run("early records count as present", func(t *testing.T) {
		records := []AttendanceRecord{
			recordOn(day(1), StatusEarly, PunctualityEarly),
			recordOn(day(1), StatusAccurate, PunctualityOnTime),
		}

		summary, err := Summarize(records, dateRange, 2)

		assert.NoError(t, err)
		assert.Equal(t, 2, summary.Present)
		assert.Equal(t, 0, summary.Absent)
		assert.Equal(t, 0, summary.Late)
		assert.Equal(t, 100.0, summary.PresentPercentage)
	})

	t.Run("missing records count as absent", func(t *testing.T) {
		summary, err := Summarize(nil, dateRange, 5)

		assert.NoError(t, err)
		assert.Equal(t, 0, summary.Present)
		assert.Equal(t, 5, summary.Absent)
		assert.Equal(t, 0.0, summary.PresentPercentage)
	})

	t.Run("per day breakdown sorted by date", func(t *testing.T) {
		records := []AttendanceRecord{
			recordOn(day(3), StatusAccurate, PunctualityOnTime),
			recordOn(day(2), StatusLate, PunctualityLate),
			recordOn(day(2), StatusAccurate, PunctualityOnTime),
		}

		summary, err := Summarize(records, DateRange{Start: day(1), End: day(4)}, 3)

		assert.NoError(t, err)
		if assert.Len(t, summary.Days, 2) {
			assert.Equal(t, day(2), summary.Days[0].Date)
			assert.Equal(t, 2, summary.Days[0].Present)
			assert.Equal(t, 1, summary.Days[0].Late)
			assert.Equal(t, 1, summary.Days[0].Absent)
			assert.Equal(t, day(3), summary.Days[1].Date)
			assert.Equal(t, 1, summary.Days[1].Present)
			assert.Equal(t, 2, summary.Days[1].Absent)
		}
	})

	t.Run("records outside the range are ignored", func(t *testing.T) {
		records := []AttendanceRecord{
			recordOn(day(1), StatusAccurate, PunctualityOnTime),
			recordOn(day(9), StatusAccurate, PunctualityOnTime),
		}

		summary, err := Summarize(records, dateRange, 3)

		assert.NoError(t, err)
		assert.Equal(t, 1, summary.Present)
		assert.Len(t, summary.Days, 1)
	})

	t.Run("percentage rounded to one decimal", func(t *testing.T) {
		records := []AttendanceRecord{
			recordOn(day(1), StatusAccurate, PunctualityOnTime),
		}

		summary, err := Summarize(records, dateRange, 3)

		assert.NoError(t, err)
		assert.Equal(t, 33.3, summary.PresentPercentage)
	})

	t.Run("idempotent over the same inputs", func(t *testing.T) {
		records := []AttendanceRecord{
			recordOn(day(1), StatusAccurate, PunctualityOnTime),
			recordOn(day(1), StatusLate, PunctualityLate),
		}

		first, err := Summarize(records, dateRange, 4)
		assert.NoError(t, err)
		second, err := Summarize(records, dateRange, 4)
		assert.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		_, err := Summarize(nil, DateRange{Start: day(2), End: day(1)}, 3)
		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDateRange)
	})

	t.Run("non-positive headcount rejected", func(t *testing.T) {
		_, err := Summarize(nil, dateRange, 0)
		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidHeadcount)
	})
}
