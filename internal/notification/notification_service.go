package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-workforce/internal/events"
	notificationerrors "go-workforce/internal/notification/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	NotifyLeaveResolved(ctx context.Context, event events.LeaveResolvedEvent) error
	ListByRecipient(ctx context.Context, recipientID string) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, recipientID, id string) (NotificationResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, logger: l}
}

// NotifyLeaveResolved materializes the in-app notifications for a resolved
// leave request: one for the assigned supervisor when resolution produced
// one, and one for the relieving staff. Redelivered events hit the unique
// index and are skipped.
func (s *service) NotifyLeaveResolved(ctx context.Context, event events.LeaveResolvedEvent) error {
	leaveID, err := uuid.Parse(event.LeaveRequestID)
	if err != nil {
		return fmt.Errorf("leave_resolved event has invalid leave_request_id %q: %w", event.LeaveRequestID, err)
	}

	if event.SupervisorID != nil && *event.SupervisorID != "" {
		supervisorID, err := uuid.Parse(*event.SupervisorID)
		if err != nil {
			return fmt.Errorf("leave_resolved event has invalid supervisor_id %q: %w", *event.SupervisorID, err)
		}
		n := &Notification{
			ID:          uuid.New(),
			RecipientID: supervisorID,
			Type:        TypeLeaveDelegation,
			Title:       "Leave delegation assigned",
			Body: fmt.Sprintf(
				"You supervise the delegation for leave %s (%s to %s, resumption %s).",
				event.LeaveRequestID, event.StartDate, event.EndDate, event.ResumptionDate,
			),
			ReferenceID: leaveID,
		}
		if err := s.create(ctx, n); err != nil {
			return err
		}
	}

	relievingID, err := uuid.Parse(event.RelievingStaff)
	if err != nil {
		return fmt.Errorf("leave_resolved event has invalid relieving_staff_id %q: %w", event.RelievingStaff, err)
	}
	n := &Notification{
		ID:          uuid.New(),
		RecipientID: relievingID,
		Type:        TypeLeaveRelief,
		Title:       "Relieving duty assigned",
		Body: fmt.Sprintf(
			"You cover for an employee on leave from %s to %s; they resume on %s.",
			event.StartDate, event.EndDate, event.ResumptionDate,
		),
		ReferenceID: leaveID,
	}
	return s.create(ctx, n)
}

func (s *service) create(ctx context.Context, n *Notification) error {
	if err := s.repo.Create(ctx, n); err != nil {
		if isDuplicateNotification(err) {
			s.logger.Debug("notification already exists, skipping",
				zap.String("recipient_id", n.RecipientID.String()),
				zap.String("type", n.Type),
				zap.String("reference_id", n.ReferenceID.String()),
			)
			return nil
		}
		return err
	}
	s.logger.Info("notification created",
		zap.String("recipient_id", n.RecipientID.String()),
		zap.String("type", n.Type),
		zap.String("reference_id", n.ReferenceID.String()),
	)
	return nil
}

func (s *service) ListByRecipient(ctx context.Context, recipientID string) ([]NotificationResponse, error) {
	if _, err := uuid.Parse(recipientID); err != nil {
		return nil, notificationerrors.ErrInvalidRecipientID
	}
	rows, err := s.repo.FindAllByRecipient(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) MarkRead(ctx context.Context, recipientID, id string) (NotificationResponse, error) {
	if _, err := uuid.Parse(recipientID); err != nil {
		return NotificationResponse{}, notificationerrors.ErrInvalidRecipientID
	}

	n, err := s.repo.FindByIDAndRecipient(ctx, recipientID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotificationResponse{}, notificationerrors.ErrNotificationNotFound
		}
		return NotificationResponse{}, err
	}

	if !n.IsRead {
		n.IsRead = true
		now := time.Now().UTC()
		n.ReadAt = &now
		if err := s.repo.Update(ctx, n); err != nil {
			return NotificationResponse{}, err
		}
	}
	return mapToResponse(*n), nil
}

func isDuplicateNotification(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_notification_recipient_ref"
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_notification_recipient_ref")
}
