package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	attendanceerrors "go-workforce/internal/attendance/errors"
	"go-workforce/internal/directory"
	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/schedule"
	"go-workforce/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const summaryCacheTTL = 15 * time.Minute

func summaryCacheKey(start, end string) string {
	return fmt.Sprintf("attendance:summary:%s:%s", start, end)
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, employeeID string, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, employeeID string, req ClockOutRequest) (AttendanceResponse, error)
	GetHistory(ctx context.Context, employeeID string) ([]AttendanceResponse, error)
	Summarize(ctx context.Context, startDate, endDate string) (SummaryResponse, error)
	MarkAbsentees(ctx context.Context, date time.Time) (int, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	windows   schedule.Provider
	directory directory.Repository
	outbox    kafka.OutboxRepository
	rdb       *redis.Client
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	windows schedule.Provider,
	dir directory.Repository,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		windows:   windows,
		directory: dir,
		outbox:    outbox,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

func (s *service) ClockIn(ctx context.Context, employeeID string, req ClockInRequest) (AttendanceResponse, error) {
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	now := time.Now().UTC()
	today := dateOnly(now)

	// A missing window is recoverable for batch callers: skip classification,
	// never default a record to ON_TIME.
	window, err := s.windows.GetShiftWindow(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrScheduleNotFound
		}
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("clock-in begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	if existing != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedIn
	}

	event := ClockEvent{EmployeeID: employeeUUID, Timestamp: now, Direction: DirectionIn}
	status, record := ClassifyClockIn(event, window)
	record.Notes = req.Notes

	if err := qtx.Create(ctx, &record); err != nil {
		s.logger.Error("clock-in persist failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if err := s.writeRecordedEvent(ctx, tx, record, DirectionIn, status); err != nil {
		return AttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("clock-in commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("clock-in recorded",
		zap.String("employee_id", employeeID),
		zap.String("clock_in_status", status),
	)

	s.invalidateSummaries(ctx)
	return mapToResponse(record), nil
}

func (s *service) ClockOut(ctx context.Context, employeeID string, req ClockOutRequest) (AttendanceResponse, error) {
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	now := time.Now().UTC()
	today := dateOnly(now)

	window, err := s.windows.GetShiftWindow(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrScheduleNotFound
		}
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("clock-out begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if existing.ClockOutTime != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedOut
	}

	event := ClockEvent{EmployeeID: employeeUUID, Timestamp: now, Direction: DirectionOut}
	record, err := ClassifyClockOut(event, window, *existing)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if req.Notes != nil {
		record.Notes = req.Notes
	}

	if err := qtx.Update(ctx, &record); err != nil {
		s.logger.Error("clock-out persist failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return AttendanceResponse{}, err
	}

	outStatus := ""
	if record.ClockOutStatus != nil {
		outStatus = *record.ClockOutStatus
	}
	if err := s.writeRecordedEvent(ctx, tx, record, DirectionOut, outStatus); err != nil {
		return AttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("clock-out commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("clock-out recorded",
		zap.String("employee_id", employeeID),
		zap.String("status", record.Status),
		zap.Float64("total_hours", record.TotalHours),
	)

	s.invalidateSummaries(ctx)
	return mapToResponse(record), nil
}

func (s *service) GetHistory(ctx context.Context, employeeID string) ([]AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}

	rows, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) Summarize(ctx context.Context, startDate, endDate string) (SummaryResponse, error) {
	start, err := parseDate(startDate)
	if err != nil {
		return SummaryResponse{}, err
	}
	end, err := parseDate(endDate)
	if err != nil {
		return SummaryResponse{}, err
	}
	if start.After(end) {
		return SummaryResponse{}, attendanceerrors.ErrInvalidDateRange
	}

	cacheKey := summaryCacheKey(startDate, endDate)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp SummaryResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	// Collapse concurrent identical summaries into one computation.
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		records, err := s.repo.FindByDateRange(ctx, start, end)
		if err != nil {
			return nil, err
		}

		headcount, err := s.directory.GetActiveEmployeeCount(ctx)
		if err != nil {
			return nil, err
		}

		summary, err := Summarize(records, DateRange{Start: start, End: end}, headcount)
		if err != nil {
			return nil, err
		}

		resp := mapSummaryToResponse(summary)

		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, payload, summaryCacheTTL)
			}
		}

		return resp, nil
	})

	if err != nil {
		return SummaryResponse{}, err
	}

	return v.(SummaryResponse), nil
}

// MarkAbsentees closes out a day: every active employee without a record for
// the date gets an ABSENT row. Runs from the worker after end of day.
func (s *service) MarkAbsentees(ctx context.Context, date time.Time) (int, error) {
	day := dateOnly(date)

	activeIDs, err := s.directory.ListActiveEmployeeIDs(ctx)
	if err != nil {
		return 0, err
	}

	recordedIDs, err := s.repo.ListEmployeeIDsWithRecordOnDate(ctx, day)
	if err != nil {
		return 0, err
	}

	recorded := make(map[string]struct{}, len(recordedIDs))
	for _, id := range recordedIDs {
		recorded[id] = struct{}{}
	}

	var absentees []AttendanceRecord
	for _, id := range activeIDs {
		if _, ok := recorded[id]; ok {
			continue
		}
		employeeUUID, err := uuid.Parse(id)
		if err != nil {
			s.logger.Warn("skipping malformed employee id in sweep", zap.String("employee_id", id))
			continue
		}
		absentees = append(absentees, AttendanceRecord{
			ID:          uuid.New(),
			EmployeeID:  employeeUUID,
			ClockInDate: day,
			Status:      StatusAbsent,
		})
	}

	if len(absentees) == 0 {
		return 0, nil
	}

	if err := s.repo.CreateBatch(ctx, absentees); err != nil {
		s.logger.Error("absence sweep persist failed",
			zap.String("date", day.Format("2006-01-02")),
			zap.Error(err),
		)
		return 0, err
	}

	s.logger.Info("absence sweep completed",
		zap.String("date", day.Format("2006-01-02")),
		zap.Int("marked_absent", len(absentees)),
	)

	s.invalidateSummaries(ctx)
	return len(absentees), nil
}

func (s *service) writeRecordedEvent(ctx context.Context, tx *sql.Tx, record AttendanceRecord, direction, clockStatus string) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.AttendanceRecordedEvent{
		EventType:     "attendance_recorded",
		RequestID:     rid,
		AttendanceID:  record.ID.String(),
		EmployeeID:    record.EmployeeID.String(),
		ClockInDate:   record.ClockInDate.Format("2006-01-02"),
		Direction:     direction,
		ClockStatus:   clockStatus,
		OverallStatus: record.Status,
		OccurredAt:    time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "attendance",
		AggregateID:   record.ID.String(),
		EventType:     event.EventType,
		Topic:         events.AttendanceRecordedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) invalidateSummaries(ctx context.Context) {
	if s.rdb == nil {
		return
	}

	iter := s.rdb.Scan(ctx, 0, "attendance:summary:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			s.logger.Warn("summary cache invalidation failed",
				zap.String("key", iter.Val()),
				zap.Error(err),
			)
		}
	}
	if err := iter.Err(); err != nil {
		s.logger.Warn("summary cache scan failed", zap.Error(err))
	}
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, attendanceerrors.ErrInvalidDateFormat
	}
	return t, nil
}
