package attendance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-workforce/internal/attendance"
	attendanceerrors "go-workforce/internal/attendance/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	clockInFn       func(ctx context.Context, employeeID string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error)
	clockOutFn      func(ctx context.Context, employeeID string, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error)
	getHistoryFn    func(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error)
	summarizeFn     func(ctx context.Context, startDate, endDate string) (attendance.SummaryResponse, error)
	markAbsenteesFn func(ctx context.Context, date time.Time) (int, error)
}

func (f *fakeService) ClockIn(ctx context.Context, employeeID string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	return f.clockInFn(ctx, employeeID, req)
}
func (f *fakeService) ClockOut(ctx context.Context, employeeID string, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	return f.clockOutFn(ctx, employeeID, req)
}
func (f *fakeService) GetHistory(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	return f.getHistoryFn(ctx, employeeID)
}
func (f *fakeService) Summarize(ctx context.Context, startDate, endDate string) (attendance.SummaryResponse, error) {
	return f.summarizeFn(ctx, startDate, endDate)
}
func (f *fakeService) MarkAbsentees(ctx context.Context, date time.Time) (int, error) {
	if f.markAbsenteesFn != nil {
		return f.markAbsenteesFn(ctx, date)
	}
	return 0, nil
}

func TestHandler_ClockInAndHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)
	employeeID := uuid.New().String()

	svc := &fakeService{
		clockInFn: func(ctx context.Context, eid string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
			assert.Equal(t, employeeID, eid)
			return attendance.AttendanceResponse{ID: uuid.New().String(), EmployeeID: eid, Status: attendance.StatusAccurate}, nil
		},
		getHistoryFn: func(ctx context.Context, eid string) ([]attendance.AttendanceResponse, error) {
			return []attendance.AttendanceResponse{{ID: uuid.New().String()}, {ID: uuid.New().String()}}, nil
		},
	}

	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", employeeID)
	c.Request = httptest.NewRequest(http.MethodPost, "/attendance/clock-in", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.ClockIn(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Set("employee_id", employeeID)
	c2.Request = httptest.NewRequest(http.MethodGet, "/attendance", nil)
	h.GetHistory(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "\"ok\":true")
}

func TestHandler_ClockInErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("negative already clocked in maps to conflict", func(t *testing.T) {
		svc := &fakeService{
			clockInFn: func(ctx context.Context, eid string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
				return attendance.AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedIn
			},
		}
		h := attendance.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("employee_id", uuid.New().String())
		c.Request = httptest.NewRequest(http.MethodPost, "/attendance/clock-in", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")
		h.ClockIn(c)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("negative malformed body", func(t *testing.T) {
		h := attendance.NewHandler(&fakeService{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("employee_id", uuid.New().String())
		c.Request = httptest.NewRequest(http.MethodPost, "/attendance/clock-in", strings.NewReader(`{"notes":`))
		c.Request.Header.Set("Content-Type", "application/json")
		h.ClockIn(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_GetSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeService{
			summarizeFn: func(ctx context.Context, startDate, endDate string) (attendance.SummaryResponse, error) {
				assert.Equal(t, "2026-05-01", startDate)
				assert.Equal(t, "2026-05-05", endDate)
				return attendance.SummaryResponse{StartDate: startDate, EndDate: endDate, Present: 12, Absent: 3}, nil
			},
		}
		h := attendance.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/attendance/summary?start_date=2026-05-01&end_date=2026-05-05", nil)
		h.GetSummary(c)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "\"present\":12")
	})

	t.Run("negative missing query params", func(t *testing.T) {
		h := attendance.NewHandler(&fakeService{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/attendance/summary", nil)
		h.GetSummary(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
